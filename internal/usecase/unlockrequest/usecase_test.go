package unlockrequest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/solidtrack/timelock-service/internal/domain"
	unlockrequestdto "github.com/solidtrack/timelock-service/internal/usecase/dto/unlockrequest"
	"github.com/solidtrack/timelock-service/internal/usecase/policy"
)

// memUnlockRepo is an in-memory UnlockRequestRepository mirroring the
// postgres repository's conditional-update contract.
type memUnlockRepo struct {
	requests map[string]*domain.UnlockRequest
}

func newMemUnlockRepo() *memUnlockRepo {
	return &memUnlockRepo{requests: map[string]*domain.UnlockRequest{}}
}

func (m *memUnlockRepo) Create(ctx context.Context, request *domain.UnlockRequest) error {
	for _, existing := range m.requests {
		if existing.OrganizationID == request.OrganizationID &&
			existing.ProjectID == request.ProjectID &&
			existing.RequesterMemberID == request.RequesterMemberID &&
			existing.IsPending() {
			return domain.ErrDuplicateUnlockRequest
		}
	}
	clone := *request
	m.requests[request.ID] = &clone
	return nil
}

func (m *memUnlockRepo) GetByID(ctx context.Context, id string) (*domain.UnlockRequest, error) {
	request, ok := m.requests[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *request
	return &clone, nil
}

func (m *memUnlockRepo) List(ctx context.Context, filter domain.ListUnlockRequestsFilter) ([]*domain.UnlockRequest, int64, error) {
	var out []*domain.UnlockRequest
	for _, request := range m.requests {
		if request.OrganizationID != filter.OrganizationID {
			continue
		}
		if filter.RequesterMemberID != "" && request.RequesterMemberID != filter.RequesterMemberID {
			continue
		}
		if len(filter.ProjectIDs) > 0 && !contains(filter.ProjectIDs, request.ProjectID) {
			continue
		}
		if filter.PendingOnly && !request.IsPending() {
			continue
		}
		clone := *request
		out = append(out, &clone)
	}
	return out, int64(len(out)), nil
}

func (m *memUnlockRepo) Approve(ctx context.Context, id, approverMemberID string, approvedAt, expiresAt time.Time) error {
	request, ok := m.requests[id]
	if !ok {
		return domain.ErrNotFound
	}
	if !request.IsPending() {
		return domain.ErrNotPending
	}
	request.Status = domain.UnlockRequestApproved
	request.ApproverMemberID = &approverMemberID
	request.ApprovedAt = &approvedAt
	request.ExpiresAt = &expiresAt
	return nil
}

func (m *memUnlockRepo) Reject(ctx context.Context, id, approverMemberID string, rejectedAt time.Time) error {
	request, ok := m.requests[id]
	if !ok {
		return domain.ErrNotFound
	}
	if !request.IsPending() {
		return domain.ErrNotPending
	}
	request.Status = domain.UnlockRequestRejected
	request.ApproverMemberID = &approverMemberID
	request.RejectedAt = &rejectedAt
	return nil
}

func (m *memUnlockRepo) Delete(ctx context.Context, id string) error {
	if _, ok := m.requests[id]; !ok {
		return domain.ErrNotFound
	}
	delete(m.requests, id)
	return nil
}

func (m *memUnlockRepo) FindActive(ctx context.Context, orgID, projectID, memberID string, now time.Time) (*domain.UnlockRequest, error) {
	for _, request := range m.requests {
		if request.OrganizationID == orgID &&
			request.ProjectID == projectID &&
			request.RequesterMemberID == memberID &&
			request.IsActive(now) {
			clone := *request
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (m *memUnlockRepo) HasActive(ctx context.Context, orgID, projectID, memberID string, now time.Time) (bool, error) {
	_, err := m.FindActive(ctx, orgID, projectID, memberID, now)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func (m *memUnlockRepo) HasPendingOrActive(ctx context.Context, orgID, projectID, memberID string, now time.Time) (bool, error) {
	for _, request := range m.requests {
		if request.OrganizationID != orgID ||
			request.ProjectID != projectID ||
			request.RequesterMemberID != memberID {
			continue
		}
		if request.IsPending() || request.IsActive(now) {
			return true, nil
		}
	}
	return false, nil
}

func contains(ids []string, id string) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

type memProjectRepo struct {
	projects    map[string]*domain.Project
	memberships map[string][]string
}

func (m *memProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	project, ok := m.projects[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return project, nil
}

func (m *memProjectRepo) IsProjectMember(ctx context.Context, projectID, memberID string) (bool, error) {
	return contains(m.memberships[projectID], memberID), nil
}

func (m *memProjectRepo) ListIDsByOrganization(ctx context.Context, orgID string) ([]string, error) {
	var ids []string
	for id, project := range m.projects {
		if project.OrganizationID == orgID {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *memProjectRepo) ListIDsByMember(ctx context.Context, memberID string) ([]string, error) {
	var ids []string
	for projectID, members := range m.memberships {
		if contains(members, memberID) {
			ids = append(ids, projectID)
		}
	}
	return ids, nil
}

type memMemberRepo struct {
	members map[string]*domain.Member
}

func (m *memMemberRepo) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	member, ok := m.members[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return member, nil
}

func (m *memMemberRepo) GetByUserAndOrganization(ctx context.Context, userID, orgID string) (*domain.Member, error) {
	for _, member := range m.members {
		if member.UserID == userID && member.OrganizationID == orgID {
			return member, nil
		}
	}
	return nil, domain.ErrNotFound
}

type fixture struct {
	uc       *DefaultUsecase
	unlocks  *memUnlockRepo
	now      time.Time
	employee *domain.Member
	manager  *domain.Member
	admin    *domain.Member
	other    *domain.Member
}

// newFixture wires a usecase over in-memory repositories with one
// organization, projects "alpha" and "beta", and a manager assigned
// to alpha only.
func newFixture() *fixture {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	employee := &domain.Member{ID: "emp-1", OrganizationID: "org-1", UserID: "u1", Role: domain.RoleEmployee}
	manager := &domain.Member{ID: "mgr-1", OrganizationID: "org-1", UserID: "u2", Role: domain.RoleManager}
	admin := &domain.Member{ID: "adm-1", OrganizationID: "org-1", UserID: "u3", Role: domain.RoleAdmin}
	other := &domain.Member{ID: "emp-2", OrganizationID: "org-1", UserID: "u4", Role: domain.RoleEmployee}

	projects := &memProjectRepo{
		projects: map[string]*domain.Project{
			"alpha": {ID: "alpha", OrganizationID: "org-1", Name: "Alpha"},
			"beta":  {ID: "beta", OrganizationID: "org-1", Name: "Beta"},
			"gamma": {ID: "gamma", OrganizationID: "org-2", Name: "Gamma"},
		},
		memberships: map[string][]string{"alpha": {"mgr-1"}},
	}
	members := &memMemberRepo{members: map[string]*domain.Member{
		employee.ID: employee,
		manager.ID:  manager,
		admin.ID:    admin,
		other.ID:    other,
	}}
	unlocks := newMemUnlockRepo()

	uc := NewDefaultUsecase(unlocks, projects, members, policy.NewResolver(projects), nil, nil)
	uc.now = func() time.Time { return now }

	return &fixture{
		uc:       uc,
		unlocks:  unlocks,
		now:      now,
		employee: employee,
		manager:  manager,
		admin:    admin,
		other:    other,
	}
}

func (f *fixture) createPending(t *testing.T, actor *domain.Member, projectID string) *domain.UnlockRequest {
	t.Helper()
	request, err := f.uc.Create(context.Background(), actor, &unlockrequestdto.CreateUnlockRequestInput{
		OrganizationID: "org-1",
		ProjectID:      projectID,
	})
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	return request
}

func TestCreate(t *testing.T) {
	t.Parallel()

	t.Run("files a pending request", func(t *testing.T) {
		f := newFixture()
		request := f.createPending(t, f.employee, "alpha")
		if request.Status != domain.UnlockRequestPending {
			t.Errorf("Status = %q, want pending", request.Status)
		}
		if request.RequesterMemberID != f.employee.ID {
			t.Errorf("RequesterMemberID = %q, want %q", request.RequesterMemberID, f.employee.ID)
		}
		if request.ID == "" {
			t.Error("request id not assigned")
		}
	})

	t.Run("duplicate pending request is rejected", func(t *testing.T) {
		f := newFixture()
		f.createPending(t, f.employee, "alpha")
		_, err := f.uc.Create(context.Background(), f.employee, &unlockrequestdto.CreateUnlockRequestInput{
			OrganizationID: "org-1",
			ProjectID:      "alpha",
		})
		if !errors.Is(err, domain.ErrDuplicateUnlockRequest) {
			t.Errorf("Create() error = %v, want ErrDuplicateUnlockRequest", err)
		}
	})

	t.Run("active approved request also counts as duplicate", func(t *testing.T) {
		f := newFixture()
		request := f.createPending(t, f.employee, "alpha")
		if _, err := f.uc.Approve(context.Background(), f.manager, "org-1", request.ID); err != nil {
			t.Fatalf("Approve() error: %v", err)
		}
		_, err := f.uc.Create(context.Background(), f.employee, &unlockrequestdto.CreateUnlockRequestInput{
			OrganizationID: "org-1",
			ProjectID:      "alpha",
		})
		if !errors.Is(err, domain.ErrDuplicateUnlockRequest) {
			t.Errorf("Create() error = %v, want ErrDuplicateUnlockRequest", err)
		}
	})

	t.Run("second request for another project is fine", func(t *testing.T) {
		f := newFixture()
		f.createPending(t, f.employee, "alpha")
		f.createPending(t, f.employee, "beta")
	})

	t.Run("project in another organization is forbidden", func(t *testing.T) {
		f := newFixture()
		_, err := f.uc.Create(context.Background(), f.employee, &unlockrequestdto.CreateUnlockRequestInput{
			OrganizationID: "org-1",
			ProjectID:      "gamma",
		})
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("Create() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("on behalf of requires admin", func(t *testing.T) {
		f := newFixture()
		input := &unlockrequestdto.CreateUnlockRequestInput{
			OrganizationID:    "org-1",
			ProjectID:         "alpha",
			RequesterMemberID: f.other.ID,
		}
		if _, err := f.uc.Create(context.Background(), f.employee, input); !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("employee on-behalf-of error = %v, want ErrForbidden", err)
		}
		request, err := f.uc.Create(context.Background(), f.admin, input)
		if err != nil {
			t.Fatalf("admin on-behalf-of error: %v", err)
		}
		if request.RequesterMemberID != f.other.ID {
			t.Errorf("RequesterMemberID = %q, want %q", request.RequesterMemberID, f.other.ID)
		}
	})
}

func TestApprove(t *testing.T) {
	t.Parallel()

	t.Run("starts the grant window", func(t *testing.T) {
		f := newFixture()
		request := f.createPending(t, f.employee, "alpha")
		approved, err := f.uc.Approve(context.Background(), f.manager, "org-1", request.ID)
		if err != nil {
			t.Fatalf("Approve() error: %v", err)
		}
		if approved.Status != domain.UnlockRequestApproved {
			t.Errorf("Status = %q, want approved", approved.Status)
		}
		if approved.ApproverMemberID == nil || *approved.ApproverMemberID != f.manager.ID {
			t.Errorf("ApproverMemberID = %v, want %q", approved.ApproverMemberID, f.manager.ID)
		}
		wantExpiry := f.now.Add(domain.UnlockDuration)
		if approved.ExpiresAt == nil || !approved.ExpiresAt.Equal(wantExpiry) {
			t.Errorf("ExpiresAt = %v, want %v", approved.ExpiresAt, wantExpiry)
		}
	})

	t.Run("manager of another project may not approve", func(t *testing.T) {
		f := newFixture()
		request := f.createPending(t, f.employee, "beta")
		if _, err := f.uc.Approve(context.Background(), f.manager, "org-1", request.ID); !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("Approve() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("requester may not approve their own request", func(t *testing.T) {
		f := newFixture()
		request := f.createPending(t, f.employee, "alpha")
		if _, err := f.uc.Approve(context.Background(), f.employee, "org-1", request.ID); !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("Approve() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("second approval loses the race", func(t *testing.T) {
		f := newFixture()
		request := f.createPending(t, f.employee, "alpha")
		if _, err := f.uc.Approve(context.Background(), f.manager, "org-1", request.ID); err != nil {
			t.Fatalf("first Approve() error: %v", err)
		}
		if _, err := f.uc.Approve(context.Background(), f.admin, "org-1", request.ID); !errors.Is(err, domain.ErrNotPending) {
			t.Errorf("second Approve() error = %v, want ErrNotPending", err)
		}
	})

	t.Run("wrong organization is forbidden, not found elsewhere", func(t *testing.T) {
		f := newFixture()
		request := f.createPending(t, f.employee, "alpha")
		if _, err := f.uc.Approve(context.Background(), f.admin, "org-2", request.ID); !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("Approve() error = %v, want ErrForbidden", err)
		}
	})
}

func TestReject(t *testing.T) {
	t.Parallel()

	f := newFixture()
	request := f.createPending(t, f.employee, "alpha")
	rejected, err := f.uc.Reject(context.Background(), f.manager, "org-1", request.ID)
	if err != nil {
		t.Fatalf("Reject() error: %v", err)
	}
	if rejected.Status != domain.UnlockRequestRejected {
		t.Errorf("Status = %q, want rejected", rejected.Status)
	}
	if rejected.ExpiresAt != nil {
		t.Errorf("ExpiresAt = %v, want nil", rejected.ExpiresAt)
	}
	if rejected.RejectedAt == nil || !rejected.RejectedAt.Equal(f.now) {
		t.Errorf("RejectedAt = %v, want %v", rejected.RejectedAt, f.now)
	}

	if _, err := f.uc.Approve(context.Background(), f.manager, "org-1", request.ID); !errors.Is(err, domain.ErrNotPending) {
		t.Errorf("Approve() after reject error = %v, want ErrNotPending", err)
	}
}

func TestDelete(t *testing.T) {
	t.Parallel()

	t.Run("requester deletes their pending request", func(t *testing.T) {
		f := newFixture()
		request := f.createPending(t, f.employee, "alpha")
		if err := f.uc.Delete(context.Background(), f.employee, "org-1", request.ID); err != nil {
			t.Fatalf("Delete() error: %v", err)
		}
		if _, err := f.unlocks.GetByID(context.Background(), request.ID); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("GetByID() after delete error = %v, want ErrNotFound", err)
		}
	})

	t.Run("approved request stays on record", func(t *testing.T) {
		f := newFixture()
		request := f.createPending(t, f.employee, "alpha")
		if _, err := f.uc.Approve(context.Background(), f.manager, "org-1", request.ID); err != nil {
			t.Fatalf("Approve() error: %v", err)
		}
		if err := f.uc.Delete(context.Background(), f.employee, "org-1", request.ID); !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("Delete() error = %v, want ErrForbidden", err)
		}
	})

	t.Run("only the requester may delete", func(t *testing.T) {
		f := newFixture()
		request := f.createPending(t, f.employee, "alpha")
		if err := f.uc.Delete(context.Background(), f.admin, "org-1", request.ID); !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("Delete() error = %v, want ErrForbidden", err)
		}
	})
}

func TestListVisibility(t *testing.T) {
	t.Parallel()

	f := newFixture()
	f.createPending(t, f.employee, "alpha")
	f.createPending(t, f.other, "beta")

	t.Run("employee sees only their own requests", func(t *testing.T) {
		out, err := f.uc.List(context.Background(), f.employee, &unlockrequestdto.ListUnlockRequestsInput{OrganizationID: "org-1"})
		if err != nil {
			t.Fatalf("List() error: %v", err)
		}
		if len(out.Requests) != 1 || out.Requests[0].RequesterMemberID != f.employee.ID {
			t.Errorf("employee sees %d requests, want only their own", len(out.Requests))
		}
	})

	t.Run("manager sees their projects only", func(t *testing.T) {
		out, err := f.uc.List(context.Background(), f.manager, &unlockrequestdto.ListUnlockRequestsInput{OrganizationID: "org-1"})
		if err != nil {
			t.Fatalf("List() error: %v", err)
		}
		if len(out.Requests) != 1 || out.Requests[0].ProjectID != "alpha" {
			t.Errorf("manager sees %d requests, want the alpha request only", len(out.Requests))
		}
	})

	t.Run("admin sees everything", func(t *testing.T) {
		out, err := f.uc.List(context.Background(), f.admin, &unlockrequestdto.ListUnlockRequestsInput{OrganizationID: "org-1"})
		if err != nil {
			t.Fatalf("List() error: %v", err)
		}
		if len(out.Requests) != 2 {
			t.Errorf("admin sees %d requests, want 2", len(out.Requests))
		}
	})

	t.Run("my_requests narrows a manager's view", func(t *testing.T) {
		out, err := f.uc.List(context.Background(), f.manager, &unlockrequestdto.ListUnlockRequestsInput{
			OrganizationID: "org-1",
			MyRequests:     true,
		})
		if err != nil {
			t.Fatalf("List() error: %v", err)
		}
		if len(out.Requests) != 0 {
			t.Errorf("manager's own requests = %d, want 0", len(out.Requests))
		}
	})
}

func TestGetByID(t *testing.T) {
	t.Parallel()

	f := newFixture()
	request := f.createPending(t, f.employee, "alpha")

	detail, err := f.uc.GetByID(context.Background(), f.employee, "org-1", request.ID)
	if err != nil {
		t.Fatalf("GetByID() error: %v", err)
	}
	if detail.Project == nil || detail.Project.ID != "alpha" {
		t.Errorf("Project = %+v, want alpha", detail.Project)
	}
	if detail.Requester == nil || detail.Requester.ID != f.employee.ID {
		t.Errorf("Requester = %+v, want %q", detail.Requester, f.employee.ID)
	}

	if _, err := f.uc.GetByID(context.Background(), f.other, "org-1", request.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("GetByID() by unrelated member error = %v, want ErrForbidden", err)
	}
}
