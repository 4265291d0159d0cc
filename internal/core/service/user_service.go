package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/pairui/mission-board/internal/core/domain"
	"github.com/pairui/mission-board/internal/core/ports"
)

// UserService covers account and profile operations. Role changes here never
// touch existing missions: a mission's creator role is a snapshot taken at
// creation time.
type UserService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(users ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{users: users, logger: logger}
}

func (s *UserService) Current(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

func (s *UserService) GetByID(ctx context.Context, userID string) (*domain.User, error) {
	return s.users.FindByID(ctx, userID)
}

// SelectRole sets the user's marketplace role to developer or designer.
func (s *UserService) SelectRole(ctx context.Context, userID, role string) (*domain.User, error) {
	if !domain.ValidRole(role) {
		return nil, domain.ErrInvalidRole
	}

	user, err := s.users.Update(ctx, userID, ports.UserUpdate{Role: &role})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("user_id", userID).Str("role", role).Msg("role selected")
	return user, nil
}

// UpdateProfile mutates presentation-only profile fields.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, input ports.UpdateProfileInput) (*domain.User, error) {
	return s.users.Update(ctx, userID, ports.UserUpdate{
		Bio:       input.Bio,
		Avatar:    input.Avatar,
		Skills:    input.Skills,
		Portfolio: input.Portfolio,
	})
}

// UpdateAccount changes username and/or role.
func (s *UserService) UpdateAccount(ctx context.Context, userID string, input ports.UpdateAccountInput) (*domain.User, error) {
	if input.Role != nil && !domain.ValidRole(*input.Role) {
		return nil, domain.ErrInvalidRole
	}

	return s.users.Update(ctx, userID, ports.UserUpdate{
		Username: input.Username,
		Role:     input.Role,
	})
}
