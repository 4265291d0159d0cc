package ports

import (
	"context"

	"github.com/pairui/mission-board/internal/core/domain"
)

// AuthService implements registration and login against the users collection.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
