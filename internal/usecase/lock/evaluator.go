package lock

import "time"

// Evaluator decides whether a timestamp falls behind an organization's
// lock cutoff. Pure apart from the injected clock.
type Evaluator struct {
	now func() time.Time
}

func NewEvaluator() *Evaluator {
	return &Evaluator{now: time.Now}
}

// IsLocked reports whether t is behind the cutoff for the given lock
// horizon. A nil horizon means the lock feature is disabled for the
// organization and nothing is ever locked. The comparison is on
// calendar day: an entry dated exactly horizonDays ago sits on the
// cutoff day and is NOT locked.
func (e *Evaluator) IsLocked(t time.Time, horizonDays *int) bool {
	cutoff := e.CutoffDate(horizonDays)
	if cutoff == nil {
		return false
	}
	return startOfDay(t).Before(*cutoff)
}

// CutoffDate returns the start of the first unlocked day, or nil when
// the lock feature is disabled. Surfaced to clients in blocked
// responses.
func (e *Evaluator) CutoffDate(horizonDays *int) *time.Time {
	if horizonDays == nil {
		return nil
	}
	cutoff := startOfDay(e.now().AddDate(0, 0, -*horizonDays))
	return &cutoff
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
