package activity

import (
	"context"
	"fmt"
	"sort"
	"sync"

	uuid2 "github.com/gofrs/uuid"
	"github.com/google/uuid"

	"github.com/securify-app/securify-backend/internal/entity"
)

type fakeUserRepo struct {
	proxies map[uuid2.UUID]uuid2.UUID
	fail    bool
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{proxies: make(map[uuid2.UUID]uuid2.UUID)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	user.ID = uuid2.UUID(uuid.New())
	f.proxies[user.ID] = user.ProxyID
	return nil
}

func (f *fakeUserRepo) GetByID(ctx context.Context, id uuid2.UUID) (*entity.User, error) {
	proxyID, ok := f.proxies[id]
	if !ok {
		return nil, nil
	}
	return &entity.User{ID: id, ProxyID: proxyID}, nil
}

func (f *fakeUserRepo) GetProxyID(ctx context.Context, userID uuid2.UUID) (uuid2.UUID, error) {
	if f.fail {
		return uuid2.Nil, fmt.Errorf("%w: connection refused", entity.ErrStoreUnavailable)
	}
	proxyID, ok := f.proxies[userID]
	if !ok {
		return uuid2.Nil, entity.ErrUserNotFound
	}
	return proxyID, nil
}

// fakeDomainRepo mirrors the atomic upsert contract: one row per
// (proxy, domain) and a counter bumped under the lock in a single step.
type fakeDomainRepo struct {
	mu      sync.Mutex
	domains map[string]*entity.Domain
	fail    bool
}

func newFakeDomainRepo() *fakeDomainRepo {
	return &fakeDomainRepo{domains: make(map[string]*entity.Domain)}
}

func domainKey(proxyID uuid2.UUID, domainName string) string {
	return proxyID.String() + "|" + domainName
}

func (f *fakeDomainRepo) RecordAccess(ctx context.Context, proxyID uuid2.UUID, domainName, category string) (uuid2.UUID, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.fail {
		return uuid2.Nil, fmt.Errorf("%w: connection refused", entity.ErrStoreUnavailable)
	}

	key := domainKey(proxyID, domainName)
	if existing, ok := f.domains[key]; ok {
		existing.AccessCount++
		existing.Category = category
		return existing.ID, nil
	}

	domain := &entity.Domain{
		ID:          uuid2.UUID(uuid.New()),
		ProxyID:     proxyID,
		DomainName:  domainName,
		Category:    category,
		AccessCount: 1,
	}
	f.domains[key] = domain
	return domain.ID, nil
}

func (f *fakeDomainRepo) GetTopByAccessCount(ctx context.Context, filter entity.TopDomainsFilter) ([]entity.Domain, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	categoryFilter := make(map[string]bool, len(filter.Categories))
	for _, c := range filter.Categories {
		categoryFilter[c] = true
	}

	var domains []entity.Domain
	for _, d := range f.domains {
		if d.ProxyID != filter.ProxyID {
			continue
		}
		if len(categoryFilter) > 0 && !categoryFilter[d.Category] {
			continue
		}
		domains = append(domains, *d)
	}

	sort.Slice(domains, func(i, j int) bool {
		if domains[i].AccessCount != domains[j].AccessCount {
			return domains[i].AccessCount > domains[j].AccessCount
		}
		return domains[i].DomainName < domains[j].DomainName
	})

	if filter.Limit > 0 && filter.Limit < len(domains) {
		domains = domains[:filter.Limit]
	}
	return domains, nil
}

func (f *fakeDomainRepo) get(proxyID uuid2.UUID, domainName string) *entity.Domain {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.domains[domainKey(proxyID, domainName)]
}

func (f *fakeDomainRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.domains)
}

type fakeActivityRepo struct {
	mu         sync.Mutex
	activities []entity.Activity
	failCreate bool
}

func newFakeActivityRepo() *fakeActivityRepo {
	return &fakeActivityRepo{}
}

func (f *fakeActivityRepo) Create(ctx context.Context, activity *entity.Activity) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failCreate {
		return fmt.Errorf("%w: connection refused", entity.ErrStoreUnavailable)
	}

	activity.ID = uuid2.UUID(uuid.New())
	f.activities = append(f.activities, *activity)
	return nil
}

func (f *fakeActivityRepo) GetByFilter(ctx context.Context, filter entity.ActivityFilter) ([]entity.Activity, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	categoryFilter := make(map[string]bool, len(filter.Categories))
	for _, c := range filter.Categories {
		categoryFilter[c] = true
	}

	var matched []entity.Activity
	for _, a := range f.activities {
		if a.ProxyID != filter.ProxyID {
			continue
		}
		if a.Timestamp.After(filter.Window.Start) {
			continue
		}
		if filter.Window.End != nil && a.Timestamp.Before(*filter.Window.End) {
			continue
		}
		if len(categoryFilter) > 0 && !categoryFilter[a.Category] {
			continue
		}
		matched = append(matched, a)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})

	if filter.Limit != nil && *filter.Limit < len(matched) {
		matched = matched[:*filter.Limit]
	}
	return matched, nil
}

func (f *fakeActivityRepo) len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.activities)
}
