package repository

import (
	"context"
	"fmt"

	uuid2 "github.com/gofrs/uuid"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/securify-app/securify-backend/internal/entity"
)

type DomainRepository interface {
	RecordAccess(ctx context.Context, proxyID uuid2.UUID, domainName, category string) (uuid2.UUID, error)
	GetTopByAccessCount(ctx context.Context, filter entity.TopDomainsFilter) ([]entity.Domain, error)
}

type domainRepository struct {
	db *sqlx.DB
}

func NewDomainRepository(db *sqlx.DB) DomainRepository {
	return &domainRepository{db: db}
}

// RecordAccess creates the (proxy, domain) row with access_count = 1 or bumps
// the existing counter and category in a single statement. The upsert is the
// only write to the counter, so concurrent calls for the same domain never
// lose an increment and never create a duplicate row.
func (r *domainRepository) RecordAccess(ctx context.Context, proxyID uuid2.UUID, domainName, category string) (uuid2.UUID, error) {
	query := `
		INSERT INTO domains (id, proxy_id, domain_name, category, access_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, 1, now(), now())
		ON CONFLICT (proxy_id, domain_name)
		DO UPDATE SET
			access_count = domains.access_count + 1,
			category = EXCLUDED.category,
			updated_at = now()
		RETURNING id`

	var domainID uuid2.UUID
	err := r.db.QueryRowContext(ctx, query, uuid2.UUID(uuid.New()), proxyID, domainName, category).Scan(&domainID)
	if err != nil {
		return uuid2.Nil, fmt.Errorf("%w: %v", entity.ErrStoreUnavailable, err)
	}

	return domainID, nil
}

func (r *domainRepository) GetTopByAccessCount(ctx context.Context, filter entity.TopDomainsFilter) ([]entity.Domain, error) {
	query := `
		SELECT id, proxy_id, domain_name, category, access_count, created_at, updated_at
		FROM domains
		WHERE proxy_id = $1`
	args := []interface{}{filter.ProxyID}
	argIndex := 2

	if len(filter.Categories) > 0 {
		query += fmt.Sprintf(" AND category = ANY($%d)", argIndex)
		args = append(args, pq.Array(filter.Categories))
		argIndex++
	}

	query += " ORDER BY access_count DESC, domain_name ASC"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, filter.Limit)
	}

	var domains []entity.Domain
	if err := r.db.SelectContext(ctx, &domains, query, args...); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrStoreUnavailable, err)
	}

	return domains, nil
}
