package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	uuid2 "github.com/gofrs/uuid"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/securify-app/securify-backend/internal/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id uuid2.UUID) (*entity.User, error)
	GetProxyID(ctx context.Context, userID uuid2.UUID) (uuid2.UUID, error)
}

type userRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entity.User) error {
	user.ID = uuid2.UUID(uuid.New())
	user.CreatedAt = time.Now().UTC()

	query := `
		INSERT INTO users (id, username, proxy_id, created_at)
		VALUES (:id, :username, :proxy_id, :created_at)`

	if _, err := r.db.NamedExecContext(ctx, query, user); err != nil {
		return fmt.Errorf("%w: %v", entity.ErrStoreUnavailable, err)
	}
	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id uuid2.UUID) (*entity.User, error) {
	var user entity.User
	query := `SELECT id, username, proxy_id, created_at FROM users WHERE id = $1`

	err := r.db.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", entity.ErrStoreUnavailable, err)
	}

	return &user, nil
}

// GetProxyID resolves the proxy a user administers. Every activity read
// path goes through this lookup first.
func (r *userRepository) GetProxyID(ctx context.Context, userID uuid2.UUID) (uuid2.UUID, error) {
	var proxyID uuid2.UUID
	query := `SELECT proxy_id FROM users WHERE id = $1`

	err := r.db.GetContext(ctx, &proxyID, query, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return uuid2.Nil, entity.ErrUserNotFound
		}
		return uuid2.Nil, fmt.Errorf("%w: %v", entity.ErrStoreUnavailable, err)
	}

	return proxyID, nil
}
