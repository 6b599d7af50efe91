// Package pomodoro is the coordinating service layer: it owns the current
// plan, its generation counter, and the stores, and is the only writer of
// either. Commands and the TUI consume it instead of reaching for raw
// stores.
package pomodoro

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/benahmedanass/pomodoro/internal/core/archive"
	"github.com/benahmedanass/pomodoro/internal/core/cue"
	"github.com/benahmedanass/pomodoro/internal/core/schedule"
)

// ScheduleStore persists the current plan.
type ScheduleStore interface {
	Load(ctx context.Context) (schedule.Plan, error)
	Save(ctx context.Context, plan schedule.Plan) error
}

// HistoryStore persists the bounded plan archive.
type HistoryStore interface {
	List(ctx context.Context) ([]archive.Entry, error)
	Push(ctx context.Context, entry archive.Entry) error
	Clear(ctx context.Context) error
}

// Planner owns the in-memory plan. Every replacement is atomic under the
// mutex and bumps the generation, so a poll tick that captured an older
// generation can never act on the new plan.
type Planner struct {
	mu         sync.Mutex
	plan       schedule.Plan
	generation uint64

	schedules ScheduleStore
	history   HistoryStore
	tracker   *cue.Tracker
	now       func() time.Time
	log       zerolog.Logger
}

// NewPlanner creates a planner over the given stores.
func NewPlanner(schedules ScheduleStore, history HistoryStore, tracker *cue.Tracker, logger zerolog.Logger) *Planner {
	return &Planner{
		schedules: schedules,
		history:   history,
		tracker:   tracker,
		now:       time.Now,
		log:       logger.With().Str("cmp", "planner").Logger(),
	}
}

// Load reads the stored plan into memory. Called at startup and whenever
// the data file changes under a running TUI. The generation is untouched;
// session IDs are stable, so cue marks stay valid across a reload.
func (p *Planner) Load(ctx context.Context) error {
	plan, err := p.schedules.Load(ctx)
	if err != nil {
		return err
	}

	p.mu.Lock()
	p.plan = plan
	p.mu.Unlock()

	p.log.Debug().Int("sessions", len(plan.Sessions)).Msg("plan loaded")
	return nil
}

// Generate builds a fresh plan and replaces the current one. The displaced
// plan, when non-empty, is archived under today's date first. The cue
// tracker is reset to the new generation so every new session is eligible
// to announce itself exactly once.
//
// Persistence is best effort: store failures are logged and the in-memory
// plan stays authoritative.
func (p *Planner) Generate(ctx context.Context, opts schedule.Options) schedule.Plan {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.plan.Empty() {
		entry := archive.Entry{
			Date:     archive.DateLabel(p.now()),
			Schedule: p.plan.Sessions,
		}
		if err := p.history.Push(ctx, entry); err != nil {
			p.log.Warn().Err(err).Msg("archive previous plan")
		}
	}

	plan := schedule.Plan{
		GeneratedAt: p.now(),
		Sessions:    schedule.Build(opts),
	}

	p.plan = plan
	p.generation++
	p.tracker.Reset(p.generation)

	if err := p.schedules.Save(ctx, plan); err != nil {
		p.log.Warn().Err(err).Msg("persist plan")
	}

	p.log.Info().
		Int("sessions", len(plan.Sessions)).
		Uint64("generation", p.generation).
		Msg("plan generated")

	return plan
}

// Snapshot returns the current plan and its generation. The slice is shared
// but never mutated in place, so readers may hold it across ticks.
func (p *Planner) Snapshot() (schedule.Plan, uint64) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.plan, p.generation
}

// Active returns the session containing now, if any.
func (p *Planner) Active(now time.Time) (schedule.Session, bool) {
	plan, _ := p.Snapshot()
	return schedule.ActiveAt(plan.Sessions, now)
}

// Due returns the sessions newly due for a start cue at now, at most once
// per session per generation.
func (p *Planner) Due(now time.Time) []schedule.Session {
	plan, generation := p.Snapshot()
	return p.tracker.Due(plan.Sessions, now, generation)
}

// ToggleStatus flips a session between completed and incomplete.
func (p *Planner) ToggleStatus(ctx context.Context, id string) (schedule.Session, bool) {
	return p.mutate(ctx, id, func(seq []schedule.Session) ([]schedule.Session, bool) {
		return schedule.ToggleStatus(seq, id)
	})
}

// AddDistraction increments a work session's distraction tally.
func (p *Planner) AddDistraction(ctx context.Context, id string) (schedule.Session, bool) {
	return p.mutate(ctx, id, func(seq []schedule.Session) ([]schedule.Session, bool) {
		return schedule.AddDistraction(seq, id)
	})
}

// RemoveDistraction decrements a work session's distraction tally.
func (p *Planner) RemoveDistraction(ctx context.Context, id string) (schedule.Session, bool) {
	return p.mutate(ctx, id, func(seq []schedule.Session) ([]schedule.Session, bool) {
		return schedule.RemoveDistraction(seq, id)
	})
}

// RenameTask replaces a session's task label.
func (p *Planner) RenameTask(ctx context.Context, id, name string) (schedule.Session, bool) {
	return p.mutate(ctx, id, func(seq []schedule.Session) ([]schedule.Session, bool) {
		return schedule.RenameTask(seq, id, name)
	})
}

// mutate applies a copy-on-write sequence transform and persists the result.
// Unknown ids and declined changes report false without an error; they race
// regenerations legitimately.
func (p *Planner) mutate(ctx context.Context, id string, fn func([]schedule.Session) ([]schedule.Session, bool)) (schedule.Session, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	next, ok := fn(p.plan.Sessions)
	if !ok {
		return schedule.Session{}, false
	}
	p.plan.Sessions = next

	if err := p.schedules.Save(ctx, p.plan); err != nil {
		p.log.Warn().Err(err).Str("id", id).Msg("persist mutation")
	}

	s, _ := schedule.Find(next, id)
	return s, true
}

// History returns the archived plans, newest first.
func (p *Planner) History(ctx context.Context) ([]archive.Entry, error) {
	return p.history.List(ctx)
}

// ClearHistory discards every archived plan.
func (p *Planner) ClearHistory(ctx context.Context) error {
	return p.history.Clear(ctx)
}
