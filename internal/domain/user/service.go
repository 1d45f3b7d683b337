package user

import "context"

// UserService defines business logic for user administration
type UserService interface {
	// Create registers a new user (admin only).
	Create(ctx context.Context, req CreateUserRequest) (UserResponse, error)

	// GetByID returns one user.
	GetByID(ctx context.Context, id string) (UserResponse, error)

	// List returns all users.
	List(ctx context.Context) ([]UserResponse, error)
}
