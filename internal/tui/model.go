// Package tui is the interactive timer view: a countdown over the current
// plan that also delivers session-start cues while it runs.
package tui

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/benahmedanass/pomodoro/internal/core/config"
	"github.com/benahmedanass/pomodoro/internal/core/schedule"
	"github.com/benahmedanass/pomodoro/internal/core/styles"
	"github.com/benahmedanass/pomodoro/internal/pomodoro"
)

// flashDuration is how long a cue banner stays on screen.
const flashDuration = 4 * time.Second

// Deps carries everything the timer view needs.
type Deps struct {
	Config  *config.Config
	Planner *pomodoro.Planner
	Cues    *pomodoro.Cues

	// Changes receives data file names when another process rewrites them.
	// Nil disables live reload.
	Changes <-chan string

	Build pomodoro.BuildInfo
}

type tickMsg time.Time

// reloadMsg reports a data file rewritten by another process.
type reloadMsg struct {
	file string
}

// Model is the bubbletea model for the timer view.
type Model struct {
	deps Deps
	keys KeyMap

	help        help.Model
	bar         progress.Model
	renameInput textinput.Model

	plan   schedule.Plan
	now    time.Time
	cursor int

	renaming bool
	renameID string

	pendingGenerate bool

	flash      string
	flashUntil time.Time

	width  int
	height int
}

// New creates the timer view over an already loaded planner.
func New(deps Deps) Model {
	ti := textinput.New()
	ti.Placeholder = "task name"
	ti.CharLimit = 80

	bar := progress.New(
		progress.WithSolidFill(string(styles.ColorPrimary)),
		progress.WithoutPercentage(),
	)

	plan, _ := deps.Planner.Snapshot()

	m := Model{
		deps:        deps,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		bar:         bar,
		renameInput: ti,
		plan:        plan,
		now:         time.Now(),
	}
	m.cursor = m.activeIndex()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.tick(), waitForChange(m.deps.Changes))
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.deps.Config.TUI.RefreshInterval.Std(), func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// waitForChange blocks on the watcher channel and resolves to a reloadMsg.
func waitForChange(ch <-chan string) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		name, ok := <-ch
		if !ok {
			return nil
		}
		return reloadMsg{file: name}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.bar.Width = barWidth(msg.Width)
		return m, nil

	case tickMsg:
		return m.handleTick(time.Time(msg))

	case reloadMsg:
		if err := m.deps.Planner.Load(context.Background()); err != nil {
			log.Warn().Err(err).Str("file", msg.file).Msg("reload after change")
		}
		m.refresh()
		return m, waitForChange(m.deps.Changes)

	case tea.KeyMsg:
		if m.renaming {
			return m.handleRenameKey(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	m.now = now
	m.refresh()

	if m.flash != "" && now.After(m.flashUntil) {
		m.flash = ""
	}

	if due := m.deps.Planner.Due(now); len(due) > 0 {
		bell := m.deps.Cues.Deliver(context.Background(), due)
		if bell {
			// Stderr is not managed by the renderer, so the BEL byte
			// reaches the terminal without disturbing the frame.
			_, _ = fmt.Fprint(os.Stderr, "\a")
		}

		last := due[len(due)-1]
		m.flash = cueBanner(last)
		m.flashUntil = now.Add(flashDuration)
	}

	return m, m.tick()
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.plan.Sessions)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.JumpActive):
		m.cursor = m.activeIndex()

	case key.Matches(msg, m.keys.Toggle):
		if s, ok := m.cursorSession(); ok {
			m.deps.Planner.ToggleStatus(context.Background(), s.ID)
			m.refresh()
		}

	case key.Matches(msg, m.keys.Distract):
		if s, ok := m.cursorSession(); ok {
			m.deps.Planner.AddDistraction(context.Background(), s.ID)
			m.refresh()
		}

	case key.Matches(msg, m.keys.Undistract):
		if s, ok := m.cursorSession(); ok {
			m.deps.Planner.RemoveDistraction(context.Background(), s.ID)
			m.refresh()
		}

	case key.Matches(msg, m.keys.Regenerate):
		// Hand off to the planning form; the command loop reopens the
		// view once the new plan lands.
		m.pendingGenerate = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Rename):
		if s, ok := m.cursorSession(); ok && s.IsWork() {
			m.renaming = true
			m.renameID = s.ID
			m.renameInput.SetValue(s.Task)
			m.renameInput.CursorEnd()
			return m, m.renameInput.Focus()
		}
	}

	return m, nil
}

func (m Model) handleRenameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.renaming = false
		m.renameInput.Blur()
		return m, nil

	case "enter":
		name := m.renameInput.Value()
		if name != "" {
			m.deps.Planner.RenameTask(context.Background(), m.renameID, name)
			m.refresh()
		}
		m.renaming = false
		m.renameInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.renameInput, cmd = m.renameInput.Update(msg)
	return m, cmd
}

// refresh re-reads the plan snapshot and keeps the cursor in range.
func (m *Model) refresh() {
	m.plan, _ = m.deps.Planner.Snapshot()
	if m.cursor >= len(m.plan.Sessions) {
		m.cursor = len(m.plan.Sessions) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m Model) cursorSession() (schedule.Session, bool) {
	if m.cursor < 0 || m.cursor >= len(m.plan.Sessions) {
		return schedule.Session{}, false
	}
	return m.plan.Sessions[m.cursor], true
}

// activeIndex returns the index of the session containing now, or 0.
func (m Model) activeIndex() int {
	for i, s := range m.plan.Sessions {
		if s.Contains(m.now) {
			return i
		}
	}
	return 0
}

// PendingGenerate reports whether the user quit the view asking to replan.
func (m Model) PendingGenerate() bool {
	return m.pendingGenerate
}

// cueBanner is the flash line shown when a session starts.
func cueBanner(s schedule.Session) string {
	if s.IsWork() {
		return fmt.Sprintf("%s  Focus: %s", styles.IconWork, s.Task)
	}
	return fmt.Sprintf("%s  Break until %s", styles.IconBreak, s.End.Format("15:04"))
}

func barWidth(width int) int {
	w := width - 4
	if w > 60 {
		w = 60
	}
	if w < 10 {
		w = 10
	}
	return w
}
