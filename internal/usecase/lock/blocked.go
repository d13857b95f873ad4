package lock

import "time"

// Reason codes carried by blocked responses so clients can
// differentiate "locked, no unlock" from "locked, needs two unlocks".
const (
	ReasonLocked     = "time_entry_locked"
	ReasonDualUnlock = "dual_unlock_required"
	reasonNoUnlock   = "no active unlock request"
	reasonNoProject  = "time entry has no project to unlock"
)

const (
	lockedMessage = "This time entry is locked. You need to request unlock permission from a project manager."
	dualMessage   = "Changing the project of a locked time entry requires unlock permission for both the old and the new project."
)

// ProjectUnlockState describes one side of a dual-unlock check.
type ProjectUnlockState struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	HasUnlock bool   `json:"has_unlock"`
}

// MissingUnlock names a project the caller still needs an active
// unlock for.
type MissingUnlock struct {
	ProjectID   string `json:"project_id"`
	ProjectName string `json:"project_name"`
	Reason      string `json:"reason"`
}

// BlockedError is the gate's structured rejection. It is an expected,
// user-actionable outcome rather than a system fault.
type BlockedError struct {
	Message            string
	Code               string
	CutoffDate         *time.Time
	RequiresDualUnlock bool
	MissingUnlocks     []MissingUnlock
	OldProject         *ProjectUnlockState
	NewProject         *ProjectUnlockState
}

func (e *BlockedError) Error() string {
	return e.Message
}

