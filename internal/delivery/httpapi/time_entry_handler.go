package httpapi

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/solidtrack/timelock-service/internal/delivery/httpapi/dto"
	timeentrydto "github.com/solidtrack/timelock-service/internal/usecase/dto/timeentry"
	"github.com/solidtrack/timelock-service/internal/usecase/timeentry"
)

// TimeEntryHandler exposes the gated mutation surface. Every write
// on a time entry passes the lock gate inside the usecase before it
// touches storage.
type TimeEntryHandler struct {
	usecase timeentry.Usecase
}

func NewTimeEntryHandler(usecase timeentry.Usecase) *TimeEntryHandler {
	return &TimeEntryHandler{usecase: usecase}
}

func (h *TimeEntryHandler) Create(c *gin.Context) {
	org := orgFromContext(c)
	member := memberFromContext(c)

	var req dto.CreateTimeEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	entry, err := h.usecase.Create(c.Request.Context(), org, member, &timeentrydto.CreateTimeEntryInput{
		ProjectID:   req.ProjectID,
		Start:       req.Start,
		End:         req.End,
		Description: req.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": dto.ToTimeEntryResponse(entry)})
}

func (h *TimeEntryHandler) Update(c *gin.Context) {
	org := orgFromContext(c)
	member := memberFromContext(c)

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}
	var req dto.UpdateTimeEntryRequest
	if err := json.Unmarshal(body, &req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}
	// A project reassignment to "no project" arrives as an explicit
	// null, which a pointer cannot tell apart from an absent key.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}
	_, setProject := raw["project_id"]

	entry, err := h.usecase.Update(c.Request.Context(), org, member, c.Param("id"), &timeentrydto.UpdateTimeEntryInput{
		Start:        req.Start,
		End:          req.End,
		Description:  req.Description,
		SetProjectID: setProject,
		ProjectID:    req.ProjectID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": dto.ToTimeEntryResponse(entry)})
}

func (h *TimeEntryHandler) Delete(c *gin.Context) {
	org := orgFromContext(c)
	member := memberFromContext(c)

	if err := h.usecase.Delete(c.Request.Context(), org, member, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *TimeEntryHandler) BulkUpdate(c *gin.Context) {
	org := orgFromContext(c)
	member := memberFromContext(c)

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}
	var req dto.BulkUpdateTimeEntriesRequest
	if err := json.Unmarshal(body, &req); err != nil || len(req.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}
	var raw struct {
		Changes map[string]json.RawMessage `json:"changes"`
	}
	if err := json.Unmarshal(body, &raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}
	_, setProject := raw.Changes["project_id"]

	updated, err := h.usecase.BulkUpdate(c.Request.Context(), org, member, &timeentrydto.BulkUpdateInput{
		IDs:          req.IDs,
		SetProjectID: setProject,
		ProjectID:    req.Changes.ProjectID,
		Description:  req.Changes.Description,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": updated})
}

func (h *TimeEntryHandler) BulkDelete(c *gin.Context) {
	org := orgFromContext(c)
	member := memberFromContext(c)

	var req dto.BulkDeleteTimeEntriesRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.IDs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request"})
		return
	}

	deleted, err := h.usecase.BulkDelete(c.Request.Context(), org, member, req.IDs)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
