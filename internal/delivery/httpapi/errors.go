package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/solidtrack/timelock-service/internal/domain"
	"github.com/solidtrack/timelock-service/internal/usecase/lock"
)

// respondError maps domain errors to the API error taxonomy:
// validation -> 400, forbidden -> generic 403, missing -> 404,
// conflicts -> 422, lock gate blocks -> 403 with the structured
// payload.
func respondError(c *gin.Context, err error) {
	var blockedErr *lock.BlockedError
	switch {
	case errors.As(err, &blockedErr):
		c.JSON(http.StatusForbidden, blockedBody(blockedErr))
	case errors.Is(err, domain.ErrDuplicateUnlockRequest):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "You already have an active or pending unlock request for this project"})
	case errors.Is(err, domain.ErrNotPending):
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Only pending requests can be approved or rejected"})
	case errors.Is(err, domain.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"message": "Forbidden"})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
	default:
		slog.Error("request failed", "path", c.FullPath(), "error", err.Error())
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
	}
}

func blockedBody(blocked *lock.BlockedError) gin.H {
	var cutoff *string
	if blocked.CutoffDate != nil {
		formatted := blocked.CutoffDate.Format(time.RFC3339)
		cutoff = &formatted
	}
	body := gin.H{
		"message":          blocked.Message,
		"locked":           true,
		"reason_code":      blocked.Code,
		"lock_cutoff_date": cutoff,
	}
	if blocked.RequiresDualUnlock {
		body["requires_dual_unlock"] = true
		body["missing_unlocks"] = blocked.MissingUnlocks
		body["old_project"] = blocked.OldProject
		body["new_project"] = blocked.NewProject
	}
	return body
}
