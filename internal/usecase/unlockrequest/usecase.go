package unlockrequest

import (
	"context"
	"time"

	"github.com/solidtrack/timelock-service/internal/domain"
	"github.com/solidtrack/timelock-service/internal/infrastructure/metrics"
	unlockrequestdto "github.com/solidtrack/timelock-service/internal/usecase/dto/unlockrequest"
	"github.com/solidtrack/timelock-service/internal/usecase/policy"
)

const defaultPageSize = 20

type Usecase interface {
	Create(ctx context.Context, actor *domain.Member, input *unlockrequestdto.CreateUnlockRequestInput) (*domain.UnlockRequest, error)
	Approve(ctx context.Context, actor *domain.Member, orgID, requestID string) (*domain.UnlockRequest, error)
	Reject(ctx context.Context, actor *domain.Member, orgID, requestID string) (*domain.UnlockRequest, error)
	Delete(ctx context.Context, actor *domain.Member, orgID, requestID string) error
	GetByID(ctx context.Context, actor *domain.Member, orgID, requestID string) (*unlockrequestdto.UnlockRequestDetail, error)
	List(ctx context.Context, actor *domain.Member, input *unlockrequestdto.ListUnlockRequestsInput) (*unlockrequestdto.ListUnlockRequestsOutput, error)
}

type DefaultUsecase struct {
	unlockRepo  domain.UnlockRequestRepository
	projectRepo domain.ProjectRepository
	memberRepo  domain.MemberRepository
	resolver    *policy.Resolver
	publisher   domain.EventPublisher
	metrics     *metrics.LockMetrics
	now         func() time.Time
}

func NewDefaultUsecase(
	unlockRepo domain.UnlockRequestRepository,
	projectRepo domain.ProjectRepository,
	memberRepo domain.MemberRepository,
	resolver *policy.Resolver,
	publisher domain.EventPublisher,
	lockMetrics *metrics.LockMetrics,
) *DefaultUsecase {
	return &DefaultUsecase{
		unlockRepo:  unlockRepo,
		projectRepo: projectRepo,
		memberRepo:  memberRepo,
		resolver:    resolver,
		publisher:   publisher,
		metrics:     lockMetrics,
		now:         time.Now,
	}
}

// scopedRequest loads a request and enforces the tenancy boundary. A
// request living in another organization is reported as forbidden,
// never as "exists elsewhere".
func (uc *DefaultUsecase) scopedRequest(ctx context.Context, orgID, requestID string) (*domain.UnlockRequest, error) {
	request, err := uc.unlockRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.OrganizationID != orgID {
		return nil, domain.ErrForbidden
	}
	return request, nil
}
