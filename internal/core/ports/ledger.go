package ports

import "context"

// Ledger performs the credit balance mutations tied one-to-one with mission
// lifecycle events. Each call is a single atomic update on one user account.
type Ledger interface {
	// Escrow debits the creator at mission creation. Fails with
	// domain.ErrInsufficientCredits when the balance does not cover amount.
	Escrow(ctx context.Context, userID string, amount int64) error

	// Refund returns escrowed credits to the creator on mission deletion.
	Refund(ctx context.Context, userID string, amount int64) error

	// Payout transfers the escrow to the accepted applicant on completion.
	Payout(ctx context.Context, userID string, amount int64) error
}
