package ports

import (
	"context"

	"github.com/pairui/mission-board/internal/core/domain"
)

// UpdateProfileInput carries partial profile changes. All fields are opaque
// presentation data.
type UpdateProfileInput struct {
	Bio       *string
	Avatar    *string
	Skills    []string
	Portfolio *string
}

// UpdateAccountInput carries username and/or role changes.
type UpdateAccountInput struct {
	Username *string
	Role     *string
}

// UserService defines account and profile use-case operations.
type UserService interface {
	Current(ctx context.Context, userID string) (*domain.User, error)
	GetByID(ctx context.Context, userID string) (*domain.User, error)
	SelectRole(ctx context.Context, userID, role string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*domain.User, error)
	UpdateAccount(ctx context.Context, userID string, input UpdateAccountInput) (*domain.User, error)
}
