package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(hour, min int) time.Time {
	return time.Date(2025, 6, 10, hour, min, 0, 0, time.UTC)
}

func TestBuild_FullDay(t *testing.T) {
	got := Build(Options{
		Start: day(9, 0),
		End:   day(10, 30),
		Work:  25 * time.Minute,
		Break: 5 * time.Minute,
	})

	require.Len(t, got, 6)

	wants := []struct {
		kind  Kind
		start time.Time
		end   time.Time
	}{
		{KindWork, day(9, 0), day(9, 25)},
		{KindBreak, day(9, 25), day(9, 30)},
		{KindWork, day(9, 30), day(9, 55)},
		{KindBreak, day(9, 55), day(10, 0)},
		{KindWork, day(10, 0), day(10, 25)},
		{KindBreak, day(10, 25), day(10, 30)},
	}
	for i, want := range wants {
		assert.Equal(t, want.kind, got[i].Kind, "session %d kind", i)
		assert.Equal(t, want.start, got[i].Start, "session %d start", i)
		assert.Equal(t, want.end, got[i].End, "session %d end", i)
		assert.Equal(t, StatusIncomplete, got[i].Status, "session %d status", i)
	}
}

func TestBuild_TruncatesFinalWork(t *testing.T) {
	// 40 minutes of day, 25 minute sessions: second work is cut short.
	got := Build(Options{
		Start: day(9, 0),
		End:   day(9, 40),
		Work:  25 * time.Minute,
		Break: 5 * time.Minute,
	})

	require.Len(t, got, 3)
	assert.Equal(t, KindWork, got[2].Kind)
	assert.Equal(t, day(9, 30), got[2].Start)
	assert.Equal(t, day(9, 40), got[2].End)
	assert.Equal(t, 10*time.Minute, got[2].Duration())
}

func TestBuild_StopsWhenTrailingBreakCannotFit(t *testing.T) {
	// Work ends at 9:25 with 3 minutes left; a 5 minute break does not fit,
	// so the partition stops there and the last 3 minutes stay unscheduled.
	got := Build(Options{
		Start: day(9, 0),
		End:   day(9, 28),
		Work:  25 * time.Minute,
		Break: 5 * time.Minute,
	})

	require.Len(t, got, 1)
	assert.Equal(t, KindWork, got[0].Kind)
	assert.Equal(t, day(9, 0), got[0].Start)
	assert.Equal(t, day(9, 25), got[0].End)
}

func TestBuild_KeepsExactFitTrailingBreak(t *testing.T) {
	got := Build(Options{
		Start: day(9, 0),
		End:   day(9, 30),
		Work:  25 * time.Minute,
		Break: 5 * time.Minute,
	})

	require.Len(t, got, 2)
	assert.Equal(t, KindBreak, got[1].Kind)
	assert.Equal(t, day(9, 30), got[1].End)
}

func TestBuild_ZeroBreak(t *testing.T) {
	got := Build(Options{
		Start: day(9, 0),
		End:   day(10, 0),
		Work:  25 * time.Minute,
		Break: 0,
	})

	require.Len(t, got, 3)
	for i, s := range got {
		assert.Equal(t, KindWork, s.Kind, "session %d", i)
	}
	// Back to back with no gaps.
	assert.Equal(t, got[0].End, got[1].Start)
	assert.Equal(t, got[1].End, got[2].Start)
	assert.Equal(t, day(10, 0), got[2].End)
}

func TestBuild_DegenerateRange(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{
			name: "end equals start",
			opts: Options{Start: day(9, 0), End: day(9, 0), Work: 25 * time.Minute},
		},
		{
			name: "end before start",
			opts: Options{Start: day(9, 0), End: day(8, 0), Work: 25 * time.Minute},
		},
		{
			name: "zero work",
			opts: Options{Start: day(9, 0), End: day(17, 0), Work: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, Build(tt.opts))
		})
	}
}

func TestBuild_Contiguity(t *testing.T) {
	got := Build(Options{
		Start: day(8, 30),
		End:   day(17, 45),
		Work:  50 * time.Minute,
		Break: 10 * time.Minute,
	})
	require.NotEmpty(t, got)

	assert.Equal(t, day(8, 30), got[0].Start)
	for i := 1; i < len(got); i++ {
		assert.Equal(t, got[i-1].End, got[i].Start, "gap before session %d", i)
	}
	last := got[len(got)-1]
	assert.False(t, last.End.After(day(17, 45)))

	// Breaks never follow breaks and never open or close the plan with a
	// zero-length interval.
	for i, s := range got {
		assert.True(t, s.End.After(s.Start), "session %d has no length", i)
		if s.Kind == KindBreak {
			require.Greater(t, i, 0)
			assert.Equal(t, KindWork, got[i-1].Kind, "break %d not preceded by work", i)
		}
	}
}

func TestBuild_TaskCycling(t *testing.T) {
	got := Build(Options{
		Start: day(9, 0),
		End:   day(11, 30),
		Work:  25 * time.Minute,
		Break: 5 * time.Minute,
		Tasks: []string{"Write report", "Review PRs"},
	})

	var labels []string
	for _, s := range got {
		if s.IsWork() {
			labels = append(labels, s.Task)
		}
	}
	assert.Equal(t, []string{"Write report", "Review PRs", "Write report", "Review PRs", "Write report"}, labels)

	for _, s := range got {
		if !s.IsWork() {
			assert.Equal(t, BreakTask, s.Task)
		}
	}
}

func TestBuild_DefaultLabels(t *testing.T) {
	got := Build(Options{
		Start: day(9, 0),
		End:   day(10, 0),
		Work:  25 * time.Minute,
		Break: 5 * time.Minute,
	})

	require.NotEmpty(t, got)
	assert.Equal(t, "Work session #1", got[0].Task)
	assert.Equal(t, "Work session #2", got[2].Task)
}

func TestBuild_DeterministicIDs(t *testing.T) {
	opts := Options{
		Start: day(9, 0),
		End:   day(12, 0),
		Work:  25 * time.Minute,
		Break: 5 * time.Minute,
		Tasks: []string{"Deep work"},
	}

	first := Build(opts)
	second := Build(opts)
	require.Equal(t, len(first), len(second))

	seen := map[string]bool{}
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID, "session %d id not stable", i)
		assert.False(t, seen[first[i].ID], "duplicate id %s", first[i].ID)
		seen[first[i].ID] = true
	}

	// Shifting the start perturbs every derived id.
	shifted := Build(Options{
		Start: opts.Start.Add(time.Minute),
		End:   opts.End,
		Work:  opts.Work,
		Break: opts.Break,
		Tasks: opts.Tasks,
	})
	require.NotEmpty(t, shifted)
	assert.NotEqual(t, first[0].ID, shifted[0].ID)
}

func TestParseTasks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "  \n\t\n", nil},
		{"single", "Write report", []string{"Write report"}},
		{"multiple", "Write report\nReview PRs", []string{"Write report", "Review PRs"}},
		{"blank lines skipped", "Write report\n\n\nReview PRs\n", []string{"Write report", "Review PRs"}},
		{"trimmed", "  Write report \n\tReview PRs\t", []string{"Write report", "Review PRs"}},
		{"crlf", "Write report\r\nReview PRs", []string{"Write report", "Review PRs"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTasks(tt.in))
		})
	}
}
