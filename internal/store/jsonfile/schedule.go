package jsonfile

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/benahmedanass/pomodoro/internal/core/schedule"
)

// ScheduleStore persists the current day plan to a single JSON file.
type ScheduleStore struct {
	path string
	mu   sync.RWMutex
	log  zerolog.Logger
}

// NewScheduleStore creates a schedule store at the given path.
func NewScheduleStore(path string, log zerolog.Logger) *ScheduleStore {
	return &ScheduleStore{path: path, log: log}
}

// Load reads the current plan. Absent or unreadable data comes back as an
// empty plan.
func (s *ScheduleStore) Load(ctx context.Context) (schedule.Plan, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var plan schedule.Plan
	if err := load(s.path, &plan, s.log); err != nil {
		return schedule.Plan{}, err
	}
	return plan, nil
}

// Save replaces the stored plan atomically.
func (s *ScheduleStore) Save(ctx context.Context, plan schedule.Plan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return save(s.path, plan)
}
