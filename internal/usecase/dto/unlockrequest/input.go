package unlockrequestdto

type CreateUnlockRequestInput struct {
	OrganizationID string
	ProjectID      string
	// RequesterMemberID is honored only when the acting member is an
	// owner or admin filing on behalf of someone else; empty means
	// the acting member requests for themselves.
	RequesterMemberID string
	Reason            *string
}

type ListUnlockRequestsInput struct {
	OrganizationID   string
	Status           string
	ProjectID        string
	MyRequests       bool
	PendingApprovals bool
	Page             int
	Limit            int
}
