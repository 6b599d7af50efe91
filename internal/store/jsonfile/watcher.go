package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const (
	debounceDelay   = 50 * time.Millisecond
	eventBufferSize = 16
)

// Watcher reports when data files in a directory change on disk, so a
// running TUI can pick up mutations made by CLI invocations in another
// terminal. Events are debounced per file; the payload is the file's base
// name ("schedule.json").
type Watcher struct {
	dir     string
	watcher *fsnotify.Watcher

	mu          sync.Mutex
	subscribers []chan<- string
	debounce    map[string]*time.Timer

	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewWatcher watches the given data directory, creating it if needed.
func NewWatcher(dir string) (*Watcher, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		dir:      dir,
		watcher:  fsw,
		debounce: make(map[string]*time.Timer),
		ctx:      ctx,
		cancel:   cancel,
	}

	w.wg.Add(1)
	go w.run()

	return w, nil
}

// Subscribe returns a channel receiving changed file names. The channel is
// closed when the watcher closes.
func (w *Watcher) Subscribe() <-chan string {
	ch := make(chan string, eventBufferSize)

	w.mu.Lock()
	w.subscribers = append(w.subscribers, ch)
	w.mu.Unlock()

	return ch
}

// Close stops watching and closes all subscriber channels.
func (w *Watcher) Close() error {
	w.cancel()

	w.mu.Lock()
	for _, timer := range w.debounce {
		timer.Stop()
	}
	for _, ch := range w.subscribers {
		close(ch)
	}
	w.subscribers = nil
	w.mu.Unlock()

	err := w.watcher.Close()
	w.wg.Wait()
	return err
}

func (w *Watcher) run() {
	defer w.wg.Done()

	for {
		select {
		case <-w.ctx.Done():
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
		return
	}

	name := filepath.Base(event.Name)

	// Atomic saves land via rename from a .tmp sibling; only the final
	// JSON name matters.
	if !strings.HasSuffix(name, ".json") {
		return
	}

	w.mu.Lock()
	if timer, exists := w.debounce[name]; exists {
		timer.Stop()
	}
	w.debounce[name] = time.AfterFunc(debounceDelay, func() {
		w.notify(name)
	})
	w.mu.Unlock()
}

func (w *Watcher) notify(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	select {
	case <-w.ctx.Done():
		return
	default:
	}

	for _, ch := range w.subscribers {
		select {
		case ch <- name:
		default:
			// Subscriber is behind; dropping is fine, the next read
			// reloads the whole file anyway.
		}
	}

	delete(w.debounce, name)
}
