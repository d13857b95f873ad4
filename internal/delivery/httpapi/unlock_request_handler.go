package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/solidtrack/timelock-service/internal/delivery/httpapi/dto"
	unlockrequestdto "github.com/solidtrack/timelock-service/internal/usecase/dto/unlockrequest"
	"github.com/solidtrack/timelock-service/internal/usecase/unlockrequest"
)

type UnlockRequestHandler struct {
	usecase unlockrequest.Usecase
}

func NewUnlockRequestHandler(usecase unlockrequest.Usecase) *UnlockRequestHandler {
	return &UnlockRequestHandler{usecase: usecase}
}

func (h *UnlockRequestHandler) List(c *gin.Context) {
	org := orgFromContext(c)
	member := memberFromContext(c)

	status := c.Query("status")
	switch status {
	case "", "pending", "approved", "rejected", "expired":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid status filter"})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	input := &unlockrequestdto.ListUnlockRequestsInput{
		OrganizationID:   org.ID,
		Status:           status,
		ProjectID:        c.Query("project_id"),
		MyRequests:       c.Query("my_requests") == "true",
		PendingApprovals: c.Query("pending_approvals") == "true",
		Page:             page,
		Limit:            limit,
	}
	output, err := h.usecase.List(c.Request.Context(), member, input)
	if err != nil {
		respondError(c, err)
		return
	}

	now := time.Now()
	data := make([]dto.UnlockRequestResponse, len(output.Requests))
	for i, request := range output.Requests {
		data[i] = dto.ToUnlockRequestResponse(request, now)
	}
	c.JSON(http.StatusOK, dto.ListUnlockRequestsResponse{
		Data: data,
		Pagination: dto.PaginationResponse{
			CurrentPage:  output.Pagination.CurrentPage,
			TotalPages:   output.Pagination.TotalPages,
			TotalItems:   output.Pagination.TotalItems,
			ItemsPerPage: output.Pagination.ItemsPerPage,
		},
	})
}

func (h *UnlockRequestHandler) Get(c *gin.Context) {
	org := orgFromContext(c)
	member := memberFromContext(c)

	detail, err := h.usecase.GetByID(c.Request.Context(), member, org.ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dto.ToUnlockRequestDetailResponse(detail, time.Now())})
}

func (h *UnlockRequestHandler) Create(c *gin.Context) {
	org := orgFromContext(c)
	member := memberFromContext(c)

	var req dto.CreateUnlockRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	request, err := h.usecase.Create(c.Request.Context(), member, &unlockrequestdto.CreateUnlockRequestInput{
		OrganizationID:    org.ID,
		ProjectID:         req.ProjectID,
		RequesterMemberID: req.RequesterMemberID,
		Reason:            req.Reason,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": dto.ToUnlockRequestResponse(request, time.Now())})
}

func (h *UnlockRequestHandler) Approve(c *gin.Context) {
	org := orgFromContext(c)
	member := memberFromContext(c)

	request, err := h.usecase.Approve(c.Request.Context(), member, org.ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dto.ToUnlockRequestResponse(request, time.Now())})
}

func (h *UnlockRequestHandler) Reject(c *gin.Context) {
	org := orgFromContext(c)
	member := memberFromContext(c)

	request, err := h.usecase.Reject(c.Request.Context(), member, org.ID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dto.ToUnlockRequestResponse(request, time.Now())})
}

func (h *UnlockRequestHandler) Delete(c *gin.Context) {
	org := orgFromContext(c)
	member := memberFromContext(c)

	if err := h.usecase.Delete(c.Request.Context(), member, org.ID, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
