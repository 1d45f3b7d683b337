package user

import (
	"context"
	"log/slog"

	"github.com/fieldhr/hrms-backend-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type UserServiceImpl struct {
	userRepo user.UserRepository
	logger   *slog.Logger
}

func NewUserService(userRepo user.UserRepository, logger *slog.Logger) user.UserService {
	return &UserServiceImpl{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (s *UserServiceImpl) Create(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, err
	}

	created, err := s.userRepo.Create(ctx, user.User{
		Name:         req.Name,
		Email:        req.Email,
		Role:         user.Role(req.Role),
		PasswordHash: string(hash),
	})
	if err != nil {
		return user.UserResponse{}, err
	}

	s.logger.Info("user created",
		slog.String("user_id", created.ID),
		slog.String("role", string(created.Role)),
	)

	return user.ToResponse(created), nil
}

func (s *UserServiceImpl) GetByID(ctx context.Context, id string) (user.UserResponse, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return user.UserResponse{}, err
	}
	return user.ToResponse(u), nil
}

func (s *UserServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, user.ToResponse(u))
	}
	return result, nil
}
