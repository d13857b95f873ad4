package dto

import (
	"time"

	"github.com/solidtrack/timelock-service/internal/domain"
	unlockrequestdto "github.com/solidtrack/timelock-service/internal/usecase/dto/unlockrequest"
)

type ProjectResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type MemberResponse struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Role   string `json:"role"`
}

type UnlockRequestResponse struct {
	ID                string           `json:"id"`
	OrganizationID    string           `json:"organization_id"`
	ProjectID         string           `json:"project_id"`
	RequesterMemberID string           `json:"requester_member_id"`
	ApproverMemberID  *string          `json:"approver_member_id"`
	Reason            *string          `json:"reason"`
	Status            string           `json:"status"`
	IsActive          bool             `json:"is_active"`
	IsExpired         bool             `json:"is_expired"`
	ApprovedAt        *time.Time       `json:"approved_at"`
	RejectedAt        *time.Time       `json:"rejected_at"`
	ExpiresAt         *time.Time       `json:"expires_at"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
	Project           *ProjectResponse `json:"project,omitempty"`
	Requester         *MemberResponse  `json:"requester,omitempty"`
	Approver          *MemberResponse  `json:"approver,omitempty"`
}

type PaginationResponse struct {
	CurrentPage  int   `json:"current_page"`
	TotalPages   int   `json:"total_pages"`
	TotalItems   int64 `json:"total_items"`
	ItemsPerPage int   `json:"items_per_page"`
}

type ListUnlockRequestsResponse struct {
	Data       []UnlockRequestResponse `json:"data"`
	Pagination PaginationResponse      `json:"pagination"`
}

type TimeEntryResponse struct {
	ID             string     `json:"id"`
	OrganizationID string     `json:"organization_id"`
	MemberID       string     `json:"member_id"`
	ProjectID      *string    `json:"project_id"`
	Start          time.Time  `json:"start"`
	End            *time.Time `json:"end"`
	Description    string     `json:"description"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func ToUnlockRequestResponse(request *domain.UnlockRequest, now time.Time) UnlockRequestResponse {
	return UnlockRequestResponse{
		ID:                request.ID,
		OrganizationID:    request.OrganizationID,
		ProjectID:         request.ProjectID,
		RequesterMemberID: request.RequesterMemberID,
		ApproverMemberID:  request.ApproverMemberID,
		Reason:            request.Reason,
		Status:            string(request.Status),
		IsActive:          request.IsActive(now),
		IsExpired:         request.IsExpired(now),
		ApprovedAt:        request.ApprovedAt,
		RejectedAt:        request.RejectedAt,
		ExpiresAt:         request.ExpiresAt,
		CreatedAt:         request.CreatedAt,
		UpdatedAt:         request.UpdatedAt,
	}
}

func ToUnlockRequestDetailResponse(detail *unlockrequestdto.UnlockRequestDetail, now time.Time) UnlockRequestResponse {
	response := ToUnlockRequestResponse(detail.Request, now)
	if detail.Project != nil {
		response.Project = &ProjectResponse{ID: detail.Project.ID, Name: detail.Project.Name}
	}
	if detail.Requester != nil {
		response.Requester = &MemberResponse{ID: detail.Requester.ID, UserID: detail.Requester.UserID, Role: string(detail.Requester.Role)}
	}
	if detail.Approver != nil {
		response.Approver = &MemberResponse{ID: detail.Approver.ID, UserID: detail.Approver.UserID, Role: string(detail.Approver.Role)}
	}
	return response
}

func ToTimeEntryResponse(entry *domain.TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		ID:             entry.ID,
		OrganizationID: entry.OrganizationID,
		MemberID:       entry.MemberID,
		ProjectID:      entry.ProjectID,
		Start:          entry.Start,
		End:            entry.End,
		Description:    entry.Description,
		CreatedAt:      entry.CreatedAt,
		UpdatedAt:      entry.UpdatedAt,
	}
}
