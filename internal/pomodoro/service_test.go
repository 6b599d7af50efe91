package pomodoro

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/benahmedanass/pomodoro/internal/core/archive"
	"github.com/benahmedanass/pomodoro/internal/core/cue"
	"github.com/benahmedanass/pomodoro/internal/core/schedule"
)

// memScheduleStore is an in-memory ScheduleStore.
type memScheduleStore struct {
	mu      sync.Mutex
	plan    schedule.Plan
	saveErr error
	saves   int
}

func (m *memScheduleStore) Load(ctx context.Context) (schedule.Plan, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.plan, nil
}

func (m *memScheduleStore) Save(ctx context.Context, plan schedule.Plan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.plan = plan
	m.saves++
	return nil
}

// memHistoryStore is an in-memory HistoryStore.
type memHistoryStore struct {
	mu      sync.Mutex
	entries []archive.Entry
}

func (m *memHistoryStore) List(ctx context.Context) ([]archive.Entry, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.entries, nil
}

func (m *memHistoryStore) Push(ctx context.Context, entry archive.Entry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = archive.Push(m.entries, entry)
	return nil
}

func (m *memHistoryStore) Clear(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = nil
	return nil
}

func newTestPlanner(t *testing.T) (*Planner, *memScheduleStore, *memHistoryStore) {
	t.Helper()
	schedStore := &memScheduleStore{}
	histStore := &memHistoryStore{}
	p := NewPlanner(schedStore, histStore, cue.NewTracker(time.Second), zerolog.Nop())
	p.now = func() time.Time { return time.Date(2025, 6, 10, 8, 55, 0, 0, time.UTC) }
	return p, schedStore, histStore
}

func dayOpts() schedule.Options {
	start := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	return schedule.Options{
		Start: start,
		End:   start.Add(90 * time.Minute),
		Work:  25 * time.Minute,
		Break: 5 * time.Minute,
		Tasks: []string{"Write", "Review"},
	}
}

func TestPlanner_GeneratePersists(t *testing.T) {
	ctx := context.Background()
	p, schedStore, _ := newTestPlanner(t)

	plan := p.Generate(ctx, dayOpts())
	require.Len(t, plan.Sessions, 6)

	stored, err := schedStore.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, plan.Sessions, stored.Sessions)
}

func TestPlanner_GenerateArchivesPrevious(t *testing.T) {
	ctx := context.Background()
	p, _, _ := newTestPlanner(t)

	first := p.Generate(ctx, dayOpts())
	require.False(t, first.Empty())

	entries, err := p.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries, "first generation had nothing to archive")

	p.Generate(ctx, dayOpts())

	entries, err = p.History(ctx)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "2025-06-10", entries[0].Date)
	assert.Equal(t, first.Sessions, entries[0].Schedule)
}

func TestPlanner_GenerateBumpsGenerationAndResetsCues(t *testing.T) {
	ctx := context.Background()
	p, _, _ := newTestPlanner(t)

	plan := p.Generate(ctx, dayOpts())
	_, gen1 := p.Snapshot()

	// Fire the first session's cue.
	due := p.Due(plan.Sessions[0].Start)
	require.Len(t, due, 1)
	assert.Empty(t, p.Due(plan.Sessions[0].Start), "cue fired twice in one generation")

	p.Generate(ctx, dayOpts())
	_, gen2 := p.Snapshot()
	assert.Greater(t, gen2, gen1)

	// Identical inputs reproduce identical IDs, yet the reset makes the
	// session due again for the new generation.
	due = p.Due(plan.Sessions[0].Start)
	require.Len(t, due, 1)
	assert.Equal(t, plan.Sessions[0].ID, due[0].ID)
}

func TestPlanner_Load(t *testing.T) {
	ctx := context.Background()
	p, schedStore, _ := newTestPlanner(t)

	want := schedule.Plan{
		GeneratedAt: time.Date(2025, 6, 10, 8, 0, 0, 0, time.UTC),
		Sessions:    schedule.Build(dayOpts()),
	}
	schedStore.plan = want

	require.NoError(t, p.Load(ctx))

	got, _ := p.Snapshot()
	assert.Equal(t, want.Sessions, got.Sessions)
}

func TestPlanner_MutationsPersist(t *testing.T) {
	ctx := context.Background()
	p, schedStore, _ := newTestPlanner(t)

	plan := p.Generate(ctx, dayOpts())
	work := plan.Sessions[0]
	savesBefore := schedStore.saves

	s, ok := p.ToggleStatus(ctx, work.ID)
	require.True(t, ok)
	assert.Equal(t, schedule.StatusCompleted, s.Status)

	s, ok = p.AddDistraction(ctx, work.ID)
	require.True(t, ok)
	assert.Equal(t, 1, s.Distractions)

	s, ok = p.RemoveDistraction(ctx, work.ID)
	require.True(t, ok)
	assert.Equal(t, 0, s.Distractions)

	s, ok = p.RenameTask(ctx, work.ID, "  Deep work  ")
	require.True(t, ok)
	assert.Equal(t, "Deep work", s.Task)

	assert.Equal(t, savesBefore+4, schedStore.saves)

	stored, err := schedStore.Load(ctx)
	require.NoError(t, err)
	got, found := schedule.Find(stored.Sessions, work.ID)
	require.True(t, found)
	assert.Equal(t, "Deep work", got.Task)
	assert.Equal(t, schedule.StatusCompleted, got.Status)
}

func TestPlanner_MutationUnknownIDIsNoop(t *testing.T) {
	ctx := context.Background()
	p, schedStore, _ := newTestPlanner(t)

	p.Generate(ctx, dayOpts())
	savesBefore := schedStore.saves

	_, ok := p.ToggleStatus(ctx, "work-99-0")
	assert.False(t, ok)
	_, ok = p.AddDistraction(ctx, "nope")
	assert.False(t, ok)
	_, ok = p.RenameTask(ctx, "nope", "name")
	assert.False(t, ok)

	assert.Equal(t, savesBefore, schedStore.saves, "no-ops must not write")
}

func TestPlanner_MutationSurvivesSaveFailure(t *testing.T) {
	ctx := context.Background()
	p, schedStore, _ := newTestPlanner(t)

	plan := p.Generate(ctx, dayOpts())
	schedStore.saveErr = errors.New("disk full")

	s, ok := p.ToggleStatus(ctx, plan.Sessions[0].ID)
	require.True(t, ok, "in-memory state stays authoritative")
	assert.Equal(t, schedule.StatusCompleted, s.Status)

	got, _ := p.Snapshot()
	found, _ := schedule.Find(got.Sessions, plan.Sessions[0].ID)
	assert.Equal(t, schedule.StatusCompleted, found.Status)
}

func TestPlanner_Active(t *testing.T) {
	ctx := context.Background()
	p, _, _ := newTestPlanner(t)

	plan := p.Generate(ctx, dayOpts())

	s, ok := p.Active(plan.Sessions[0].Start.Add(time.Minute))
	require.True(t, ok)
	assert.Equal(t, plan.Sessions[0].ID, s.ID)

	_, ok = p.Active(plan.Sessions[len(plan.Sessions)-1].End.Add(time.Hour))
	assert.False(t, ok)
}

func TestPlanner_ClearHistory(t *testing.T) {
	ctx := context.Background()
	p, _, _ := newTestPlanner(t)

	p.Generate(ctx, dayOpts())
	p.Generate(ctx, dayOpts())

	entries, err := p.History(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, entries)

	require.NoError(t, p.ClearHistory(ctx))

	entries, err = p.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
}
