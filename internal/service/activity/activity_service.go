package activity

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/uuid"

	"github.com/securify-app/securify-backend/internal/entity"
	"github.com/securify-app/securify-backend/internal/repository"
	"github.com/securify-app/securify-backend/internal/service/cache"
)

// topDomainsCacheTTL bounds the staleness of the all-time ranking served from
// redis. Counter updates land in postgres immediately, so cached rankings lag
// at most this long.
const topDomainsCacheTTL = 30 * time.Second

// storeTimeout caps every store round-trip so a hung database surfaces as an
// error instead of pinning the request.
const storeTimeout = 10 * time.Second

type ActivityService interface {
	Recent(ctx context.Context, userID uuid.UUID, filter entity.RecentFilter) (*entity.RecentActivitiesResponse, error)
	AllTimeMostRequested(ctx context.Context, userID uuid.UUID, limit int, categories []string) ([]entity.Domain, error)
	MostRequested(ctx context.Context, userID uuid.UUID, filter entity.MostRequestedFilter) ([]entity.DomainRequestCount, error)
	Log(ctx context.Context, proxyID uuid.UUID, req entity.LogActivityRequest) (*entity.Activity, error)
}

type activityService struct {
	users      repository.UserRepository
	domains    repository.DomainRepository
	activities repository.ActivityRepository
	cache      *cache.Service
	logger     *slog.Logger
}

func NewActivityService(
	users repository.UserRepository,
	domains repository.DomainRepository,
	activities repository.ActivityRepository,
	cacheService *cache.Service,
	logger *slog.Logger,
) ActivityService {
	return &activityService{
		users:      users,
		domains:    domains,
		activities: activities,
		cache:      cacheService,
		logger:     logger,
	}
}

// Recent returns the page of activities looking backwards from StartDate,
// newest first, together with the oldest returned timestamp and the row count.
func (s *activityService) Recent(ctx context.Context, userID uuid.UUID, filter entity.RecentFilter) (*entity.RecentActivitiesResponse, error) {
	if err := entity.ValidateCategories(filter.Categories); err != nil {
		return nil, err
	}
	if err := validateOptionalLimit(filter.Limit); err != nil {
		return nil, err
	}

	window, err := entity.NewTimeWindow(filter.StartDate, filter.EndDate)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	proxyID, err := s.users.GetProxyID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve proxy: %w", err)
	}

	activities, err := s.activities.GetByFilter(ctx, entity.ActivityFilter{
		ProxyID:    proxyID,
		Window:     window,
		Categories: filter.Categories,
		Limit:      filter.Limit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get activities: %w", err)
	}

	if len(activities) == 0 {
		return nil, entity.ErrActivitiesNotFound
	}

	return &entity.RecentActivitiesResponse{
		Activities:  activities,
		LastEndDate: activities[len(activities)-1].Timestamp,
		Count:       len(activities),
	}, nil
}

// AllTimeMostRequested ranks a proxy's domains by their lifetime access
// counter. The result is served through redis when available.
func (s *activityService) AllTimeMostRequested(ctx context.Context, userID uuid.UUID, limit int, categories []string) ([]entity.Domain, error) {
	if err := entity.ValidateCategories(categories); err != nil {
		return nil, err
	}
	if limit < 1 {
		return nil, entity.ErrInvalidLimit
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	proxyID, err := s.users.GetProxyID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve proxy: %w", err)
	}

	cacheKey := fmt.Sprintf("alltime:%s:%d:%s", proxyID, limit, strings.Join(categories, ","))
	if s.cache != nil {
		var cached []entity.Domain
		if err := s.cache.Get(ctx, cacheKey, &cached); err == nil && len(cached) > 0 {
			return cached, nil
		}
	}

	domains, err := s.domains.GetTopByAccessCount(ctx, entity.TopDomainsFilter{
		ProxyID:    proxyID,
		Limit:      limit,
		Categories: categories,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get top domains: %w", err)
	}

	if len(domains) == 0 {
		return nil, entity.ErrDomainsNotFound
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, cacheKey, domains, topDomainsCacheTTL); err != nil {
			s.logger.Warn("failed to cache top domains", slog.String("key", cacheKey), slog.Any("error", err))
		}
	}

	return domains, nil
}

// MostRequested ranks domains by request count inside a closed window. Both
// bounds are mandatory; the limit applies after aggregation.
func (s *activityService) MostRequested(ctx context.Context, userID uuid.UUID, filter entity.MostRequestedFilter) ([]entity.DomainRequestCount, error) {
	if err := entity.ValidateCategories(filter.Categories); err != nil {
		return nil, err
	}
	if err := validateOptionalLimit(filter.Limit); err != nil {
		return nil, err
	}

	endDate := filter.EndDate
	window, err := entity.NewTimeWindow(filter.StartDate, &endDate)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	proxyID, err := s.users.GetProxyID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve proxy: %w", err)
	}

	activities, err := s.activities.GetByFilter(ctx, entity.ActivityFilter{
		ProxyID:    proxyID,
		Window:     window,
		Categories: filter.Categories,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get activities: %w", err)
	}

	if len(activities) == 0 {
		return nil, entity.ErrActivitiesNotFound
	}

	return aggregateActivities(activities, filter.Limit), nil
}

// Log records one domain access: the counter upsert must succeed before the
// event is acknowledged, while a failed activity append is only logged. An
// updated counter without its activity row is an accepted inconsistency.
func (s *activityService) Log(ctx context.Context, proxyID uuid.UUID, req entity.LogActivityRequest) (*entity.Activity, error) {
	if err := entity.ValidateCategories([]string{req.Category}); err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, storeTimeout)
	defer cancel()

	domainID, err := s.domains.RecordAccess(ctx, proxyID, req.DomainName, req.Category)
	if err != nil {
		return nil, fmt.Errorf("failed to record access: %w", err)
	}

	activity := &entity.Activity{
		DomainID:   domainID,
		DomainName: req.DomainName,
		ProxyID:    proxyID,
		Timestamp:  time.Now().UTC(),
		Category:   req.Category,
	}

	if err := s.activities.Create(ctx, activity); err != nil {
		s.logger.Error("failed to append activity after counter update",
			slog.String("proxyID", proxyID.String()),
			slog.String("domainName", req.DomainName),
			slog.Any("error", err))
	}

	return activity, nil
}

func validateOptionalLimit(limit *int) error {
	if limit != nil && *limit < 1 {
		return entity.ErrInvalidLimit
	}
	return nil
}
