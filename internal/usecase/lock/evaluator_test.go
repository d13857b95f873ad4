package lock

import (
	"testing"
	"time"
)

func testEvaluator(now time.Time) *Evaluator {
	evaluator := NewEvaluator()
	evaluator.now = func() time.Time { return now }
	return evaluator
}

func intPtr(v int) *int { return &v }

func TestEvaluatorIsLocked(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)
	evaluator := testEvaluator(now)

	tests := []struct {
		name    string
		start   time.Time
		horizon *int
		want    bool
	}{
		{
			name:    "nil horizon disables the lock",
			start:   time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
			horizon: nil,
			want:    false,
		},
		{
			name:    "today is never locked",
			start:   now,
			horizon: intPtr(7),
			want:    false,
		},
		{
			name:    "entry on the cutoff day is not locked",
			start:   time.Date(2026, 3, 8, 9, 0, 0, 0, time.UTC),
			horizon: intPtr(7),
			want:    false,
		},
		{
			name:    "entry one day behind the cutoff is locked",
			start:   time.Date(2026, 3, 7, 23, 59, 59, 0, time.UTC),
			horizon: intPtr(7),
			want:    true,
		},
		{
			name:    "zero horizon locks everything before today",
			start:   time.Date(2026, 3, 14, 23, 0, 0, 0, time.UTC),
			horizon: intPtr(0),
			want:    true,
		},
		{
			name:    "zero horizon keeps today editable",
			start:   time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
			horizon: intPtr(0),
			want:    false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := evaluator.IsLocked(tt.start, tt.horizon); got != tt.want {
				t.Errorf("IsLocked(%v, %v) = %v, want %v", tt.start, tt.horizon, got, tt.want)
			}
		})
	}
}

func TestEvaluatorCutoffDate(t *testing.T) {
	t.Parallel()
	now := time.Date(2026, 3, 15, 14, 30, 0, 0, time.UTC)
	evaluator := testEvaluator(now)

	if got := evaluator.CutoffDate(nil); got != nil {
		t.Errorf("CutoffDate(nil) = %v, want nil", got)
	}

	got := evaluator.CutoffDate(intPtr(7))
	want := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	if got == nil || !got.Equal(want) {
		t.Errorf("CutoffDate(7) = %v, want %v", got, want)
	}
}
