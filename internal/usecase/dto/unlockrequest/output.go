package unlockrequestdto

import "github.com/solidtrack/timelock-service/internal/domain"

type Pagination struct {
	CurrentPage  int
	TotalPages   int
	TotalItems   int64
	ItemsPerPage int
}

type ListUnlockRequestsOutput struct {
	Requests   []*domain.UnlockRequest
	Pagination Pagination
}

// UnlockRequestDetail is a single request with its referenced
// entities resolved for presentation.
type UnlockRequestDetail struct {
	Request   *domain.UnlockRequest
	Project   *domain.Project
	Requester *domain.Member
	Approver  *domain.Member
}
