package policy

import (
	"context"

	"github.com/solidtrack/timelock-service/internal/domain"
)

// Resolver is the single place capability questions are answered.
// The gate, the unlock request usecase and the HTTP handlers all go
// through it, so the dual-unlock gate and the approve/reject
// authorization can never diverge.
type Resolver struct {
	projectRepo domain.ProjectRepository
}

func NewResolver(projectRepo domain.ProjectRepository) *Resolver {
	return &Resolver{projectRepo: projectRepo}
}

// IsProjectManager reports whether the member may manage the project:
// owners and admins manage every project, managers only projects they
// are a member of.
func (r *Resolver) IsProjectManager(ctx context.Context, member *domain.Member, projectID string) (bool, error) {
	if member.IsOwnerOrAdmin() {
		return true, nil
	}
	if member.Role != domain.RoleManager {
		return false, nil
	}
	return r.projectRepo.IsProjectMember(ctx, projectID, member.ID)
}

// CanView: the requester always, project managers for their projects.
func (r *Resolver) CanView(ctx context.Context, member *domain.Member, request *domain.UnlockRequest) (bool, error) {
	if request.RequesterMemberID == member.ID {
		return true, nil
	}
	return r.IsProjectManager(ctx, member, request.ProjectID)
}

// CanCreate: any organization member may request an unlock for
// themselves.
func (r *Resolver) CanCreate(member *domain.Member) bool {
	return member != nil
}

// CanCreateFor: only owners and admins may file a request on behalf
// of another member. This is an authorization branch, not a form
// toggle.
func (r *Resolver) CanCreateFor(member *domain.Member, requesterMemberID string) bool {
	if requesterMemberID == "" || requesterMemberID == member.ID {
		return true
	}
	return member.IsOwnerOrAdmin()
}

// CanReview covers approve and reject, which share one rule.
func (r *Resolver) CanReview(ctx context.Context, member *domain.Member, request *domain.UnlockRequest) (bool, error) {
	return r.IsProjectManager(ctx, member, request.ProjectID)
}

// CanDelete: only the requester, and only while the request is still
// pending. There is no restore or force-delete path for this entity.
func (r *Resolver) CanDelete(member *domain.Member, request *domain.UnlockRequest) bool {
	return request.RequesterMemberID == member.ID && request.IsPending()
}

// ManagedProjectIDs lists the projects whose unlock requests the
// member may review.
func (r *Resolver) ManagedProjectIDs(ctx context.Context, member *domain.Member) ([]string, error) {
	if member.IsOwnerOrAdmin() {
		return r.projectRepo.ListIDsByOrganization(ctx, member.OrganizationID)
	}
	if member.Role == domain.RoleManager {
		return r.projectRepo.ListIDsByMember(ctx, member.ID)
	}
	return nil, nil
}
