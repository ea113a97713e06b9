package repository

import (
	"context"
	"fmt"
	"time"

	uuid2 "github.com/gofrs/uuid"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/securify-app/securify-backend/internal/entity"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *entity.Activity) error
	GetByFilter(ctx context.Context, filter entity.ActivityFilter) ([]entity.Activity, error)
}

type activityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *entity.Activity) error {
	activity.ID = uuid2.UUID(uuid.New())
	activity.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO activities (id, domain_id, domain_name, proxy_id, timestamp, category, created_at)
		VALUES (:id, :domain_id, :domain_name, :proxy_id, :timestamp, :category, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, activity); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrStoreUnavailable, err)
	}
	return nil
}

// GetByFilter returns activities for a proxy inside the window, newest first.
// The secondary sort on id keeps ordering stable when timestamps collide.
func (r *activityRepository) GetByFilter(ctx context.Context, filter entity.ActivityFilter) ([]entity.Activity, error) {
	query := `
		SELECT id, domain_id, domain_name, proxy_id, timestamp, category, created_at
		FROM activities
		WHERE proxy_id = $1 AND timestamp <= $2`
	args := []interface{}{filter.ProxyID, filter.Window.Start}
	argIndex := 3

	if filter.Window.End != nil {
		query += fmt.Sprintf(" AND timestamp >= $%d", argIndex)
		args = append(args, *filter.Window.End)
		argIndex++
	}

	if len(filter.Categories) > 0 {
		query += fmt.Sprintf(" AND category = ANY($%d)", argIndex)
		args = append(args, pq.Array(filter.Categories))
		argIndex++
	}

	query += " ORDER BY timestamp DESC, id DESC"

	if filter.Limit != nil {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, *filter.Limit)
	}

	var activities []entity.Activity
	if err := r.db.SelectContext(ctx, &activities, query, args...); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrStoreUnavailable, err)
	}

	return activities, nil
}
