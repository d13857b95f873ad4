package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/solidtrack/timelock-service/internal/domain"
	"github.com/solidtrack/timelock-service/internal/usecase/lock"
)

func respond(t *testing.T, err error) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	respondError(c, err)

	var body map[string]interface{}
	if err := json.Unmarshal(recorder.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON body: %v", err)
	}
	return recorder, body
}

func TestRespondErrorMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"duplicate request", domain.ErrDuplicateUnlockRequest, http.StatusUnprocessableEntity},
		{"not pending", domain.ErrNotPending, http.StatusUnprocessableEntity},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"not found", domain.ErrNotFound, http.StatusNotFound},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder, body := respond(t, tt.err)
			if recorder.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", recorder.Code, tt.wantStatus)
			}
			if _, ok := body["message"]; !ok {
				t.Error("response body has no message")
			}
		})
	}
}

func TestRespondBlocked(t *testing.T) {
	t.Parallel()

	cutoff := time.Date(2026, 3, 8, 0, 0, 0, 0, time.UTC)
	recorder, body := respond(t, &lock.BlockedError{
		Message:    "locked",
		Code:       lock.ReasonLocked,
		CutoffDate: &cutoff,
	})

	if recorder.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", recorder.Code, http.StatusForbidden)
	}
	if body["locked"] != true {
		t.Error("locked flag missing")
	}
	if body["reason_code"] != lock.ReasonLocked {
		t.Errorf("reason_code = %v, want %q", body["reason_code"], lock.ReasonLocked)
	}
	if body["lock_cutoff_date"] != "2026-03-08T00:00:00Z" {
		t.Errorf("lock_cutoff_date = %v, want RFC3339 cutoff", body["lock_cutoff_date"])
	}
	if _, ok := body["requires_dual_unlock"]; ok {
		t.Error("plain block should not carry dual unlock fields")
	}
}

func TestRespondBlockedDualUnlock(t *testing.T) {
	t.Parallel()

	recorder, body := respond(t, &lock.BlockedError{
		Message:            "dual",
		Code:               lock.ReasonDualUnlock,
		RequiresDualUnlock: true,
		MissingUnlocks: []lock.MissingUnlock{
			{ProjectID: "beta", ProjectName: "Beta", Reason: "no active unlock request"},
		},
		OldProject: &lock.ProjectUnlockState{ID: "alpha", Name: "Alpha", HasUnlock: true},
		NewProject: &lock.ProjectUnlockState{ID: "beta", Name: "Beta"},
	})

	if recorder.Code != http.StatusForbidden {
		t.Errorf("status = %d, want %d", recorder.Code, http.StatusForbidden)
	}
	if body["requires_dual_unlock"] != true {
		t.Error("requires_dual_unlock missing")
	}
	missing, ok := body["missing_unlocks"].([]interface{})
	if !ok || len(missing) != 1 {
		t.Fatalf("missing_unlocks = %v, want one item", body["missing_unlocks"])
	}
	oldProject, ok := body["old_project"].(map[string]interface{})
	if !ok || oldProject["has_unlock"] != true {
		t.Errorf("old_project = %v, want has_unlock true", body["old_project"])
	}
}
