package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/pairui/mission-board/internal/api/metrics"
	"github.com/pairui/mission-board/internal/core/ports"
)

// LedgerService moves credits between the system escrow and user balances.
// Each operation is a single atomic update on one user document; the balance
// guard on Escrow lives in the repository so concurrent debits cannot
// overdraw an account.
type LedgerService struct {
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewLedgerService(users ports.UserRepository, logger zerolog.Logger) *LedgerService {
	return &LedgerService{users: users, logger: logger}
}

// Escrow debits amount from the user's balance. Fails with
// domain.ErrInsufficientCredits when the balance does not cover it.
func (s *LedgerService) Escrow(ctx context.Context, userID string, amount int64) error {
	if err := s.users.Debit(ctx, userID, amount); err != nil {
		return fmt.Errorf("escrow: %w", err)
	}
	metrics.CreditsMovedTotal.WithLabelValues("escrow").Add(float64(amount))
	s.logger.Info().Str("user_id", userID).Int64("amount", amount).Msg("credits escrowed")
	return nil
}

// Refund returns escrowed credits to the creator.
func (s *LedgerService) Refund(ctx context.Context, userID string, amount int64) error {
	if err := s.users.Credit(ctx, userID, amount); err != nil {
		return fmt.Errorf("refund: %w", err)
	}
	metrics.CreditsMovedTotal.WithLabelValues("refund").Add(float64(amount))
	s.logger.Info().Str("user_id", userID).Int64("amount", amount).Msg("credits refunded")
	return nil
}

// Payout transfers the escrow to the accepted applicant.
func (s *LedgerService) Payout(ctx context.Context, userID string, amount int64) error {
	if err := s.users.Credit(ctx, userID, amount); err != nil {
		return fmt.Errorf("payout: %w", err)
	}
	metrics.CreditsMovedTotal.WithLabelValues("payout").Add(float64(amount))
	s.logger.Info().Str("user_id", userID).Int64("amount", amount).Msg("credits paid out")
	return nil
}
