package repositories

import (
	"context"

	"insure-dw.backend/internal/domain/entities"
)

// StatsRepository defines the read-only counts backing the analytics API
type StatsRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountUsersWithQuotes(ctx context.Context) (int64, error)
	CountUsersWithPolicies(ctx context.Context) (int64, error)

	CountQuotes(ctx context.Context) (int64, error)
	CountBoundQuotes(ctx context.Context) (int64, error)
	CountBindableQuotes(ctx context.Context) (int64, error)

	CountPolicies(ctx context.Context) (int64, error)
	CountPoliciesWithPayments(ctx context.Context) (int64, error)

	CountPayments(ctx context.Context) (int64, error)
	CountSuccessfulPayments(ctx context.Context) (int64, error)

	// CountPaymentsByType returns total and successful counts for one type
	CountPaymentsByType(ctx context.Context, paymentType entities.PaymentType) (total int64, successful int64, err error)
}
