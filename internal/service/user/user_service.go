package user

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid"

	"github.com/securify-app/securify-backend/internal/entity"
	"github.com/securify-app/securify-backend/internal/model/request"
	"github.com/securify-app/securify-backend/internal/model/response"
	"github.com/securify-app/securify-backend/internal/repository"
)

type UserService struct {
	Repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) *UserService {
	return &UserService{Repo: repo}
}

func (s *UserService) CreateUser(ctx context.Context, req *request.CreateUser) (response.User, error) {
	proxyID, err := uuid.FromString(req.ProxyID)
	if err != nil {
		return response.User{}, fmt.Errorf("invalid proxyID: %w", err)
	}

	user := &entity.User{
		Username: req.Username,
		ProxyID:  proxyID,
	}

	if err := s.Repo.Create(ctx, user); err != nil {
		return response.User{}, fmt.Errorf("failed to create user: %w", err)
	}

	return response.User{
		ID:        user.ID,
		Username:  user.Username,
		ProxyID:   user.ProxyID,
		CreatedAt: &user.CreatedAt,
	}, nil
}

func (s *UserService) GetUserByID(ctx context.Context, userID uuid.UUID) (response.User, error) {
	user, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		return response.User{}, err
	}

	if user == nil {
		return response.User{}, entity.ErrUserNotFound
	}

	return response.User{
		ID:        user.ID,
		Username:  user.Username,
		ProxyID:   user.ProxyID,
		CreatedAt: &user.CreatedAt,
	}, nil
}
