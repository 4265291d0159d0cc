package ports

import (
	"context"

	"github.com/pairui/mission-board/internal/core/domain"
)

// UserUpdate carries partial account/profile changes. Nil pointers leave the
// field untouched.
type UserUpdate struct {
	Username  *string
	Role      *string
	Bio       *string
	Avatar    *string
	Skills    []string
	Portfolio *string
}

// UserRepository defines persistence operations for user aggregates,
// including the atomic credit mutations the ledger is built on.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, id string, update UserUpdate) (*domain.User, error)

	// Debit atomically subtracts amount from the user's balance if and only
	// if the balance covers it; returns domain.ErrInsufficientCredits
	// otherwise. The balance can never go negative.
	Debit(ctx context.Context, id string, amount int64) error

	// Credit atomically adds amount to the user's balance.
	Credit(ctx context.Context, id string, amount int64) error
}
