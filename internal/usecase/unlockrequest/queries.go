package unlockrequest

import (
	"context"
	"errors"

	"github.com/solidtrack/timelock-service/internal/domain"
	unlockrequestdto "github.com/solidtrack/timelock-service/internal/usecase/dto/unlockrequest"
)

// List applies the visibility rules: regular members only ever see
// their own requests, managers see requests for the projects they
// manage, and the pending_approvals filter narrows a manager's view
// to open review work.
func (uc *DefaultUsecase) List(ctx context.Context, actor *domain.Member, input *unlockrequestdto.ListUnlockRequestsInput) (*unlockrequestdto.ListUnlockRequestsOutput, error) {
	filter := domain.ListUnlockRequestsFilter{
		OrganizationID: input.OrganizationID,
		Status:         input.Status,
		ProjectID:      input.ProjectID,
		Page:           input.Page,
		Limit:          input.Limit,
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = defaultPageSize
	}

	isManager := actor.IsOwnerOrAdmin() || actor.Role == domain.RoleManager
	switch {
	case input.MyRequests || !isManager:
		filter.RequesterMemberID = actor.ID
	default:
		projectIDs, err := uc.resolver.ManagedProjectIDs(ctx, actor)
		if err != nil {
			return nil, err
		}
		if len(projectIDs) == 0 {
			// Manager of no projects sees only their own requests.
			filter.RequesterMemberID = actor.ID
		} else {
			filter.ProjectIDs = projectIDs
			filter.PendingOnly = input.PendingApprovals
		}
	}

	requests, total, err := uc.unlockRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	totalPages := total / int64(filter.Limit)
	if total%int64(filter.Limit) != 0 {
		totalPages++
	}
	return &unlockrequestdto.ListUnlockRequestsOutput{
		Requests: requests,
		Pagination: unlockrequestdto.Pagination{
			CurrentPage:  filter.Page,
			TotalPages:   int(totalPages),
			TotalItems:   total,
			ItemsPerPage: filter.Limit,
		},
	}, nil
}

// GetByID returns one request with project, requester and approver
// expanded.
func (uc *DefaultUsecase) GetByID(ctx context.Context, actor *domain.Member, orgID, requestID string) (*unlockrequestdto.UnlockRequestDetail, error) {
	request, err := uc.scopedRequest(ctx, orgID, requestID)
	if err != nil {
		return nil, err
	}
	allowed, err := uc.resolver.CanView(ctx, actor, request)
	if err != nil {
		return nil, err
	}
	if !allowed {
		return nil, domain.ErrForbidden
	}

	detail := &unlockrequestdto.UnlockRequestDetail{Request: request}
	if detail.Project, err = uc.projectRepo.GetByID(ctx, request.ProjectID); err != nil {
		return nil, err
	}
	if detail.Requester, err = uc.memberRepo.GetByID(ctx, request.RequesterMemberID); err != nil {
		return nil, err
	}
	if request.ApproverMemberID != nil {
		detail.Approver, err = uc.memberRepo.GetByID(ctx, *request.ApproverMemberID)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
	}
	return detail, nil
}
