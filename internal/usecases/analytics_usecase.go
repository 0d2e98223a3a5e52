package usecases

import (
	"context"

	"github.com/shopspring/decimal"

	"insure-dw.backend/internal/domain/entities"
	domainerrors "insure-dw.backend/internal/domain/errors"
	"insure-dw.backend/internal/domain/repositories"
)

// AnalyticsUsecase aggregates warehouse counts into reporting payloads
type AnalyticsUsecase struct {
	statsRepo repositories.StatsRepository
}

// NewAnalyticsUsecase creates a new analytics usecase
func NewAnalyticsUsecase(statsRepo repositories.StatsRepository) *AnalyticsUsecase {
	return &AnalyticsUsecase{statsRepo: statsRepo}
}

// percentage returns part/total as a percentage rounded to two decimal
// places, and 0 when total is zero.
func percentage(part, total int64) float64 {
	if total == 0 {
		return 0
	}
	rate := decimal.NewFromInt(part).
		Div(decimal.NewFromInt(total)).
		Mul(decimal.NewFromInt(100)).
		Round(2)
	f, _ := rate.Float64()
	return f
}

// GeneralStats returns overall warehouse counts and payment success rate
func (u *AnalyticsUsecase) GeneralStats(ctx context.Context) (*entities.GeneralStats, error) {
	users, err := u.statsRepo.CountUsers(ctx)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	quotes, err := u.statsRepo.CountQuotes(ctx)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	policies, err := u.statsRepo.CountPolicies(ctx)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	payments, err := u.statsRepo.CountPayments(ctx)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	successful, err := u.statsRepo.CountSuccessfulPayments(ctx)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}

	return &entities.GeneralStats{
		TotalUsers:         users,
		TotalQuotes:        quotes,
		TotalPolicies:      policies,
		TotalPayments:      payments,
		SuccessfulPayments: successful,
		PaymentSuccessRate: percentage(successful, payments),
	}, nil
}

// PaymentTypeStats returns the per-type payment breakdown keyed by the
// stored display name ("Credit", "Debit", "Prepaid")
func (u *AnalyticsUsecase) PaymentTypeStats(ctx context.Context) (map[string]*entities.PaymentTypeStats, error) {
	out := make(map[string]*entities.PaymentTypeStats, 3)
	for _, paymentType := range entities.PaymentTypes() {
		total, successful, err := u.statsRepo.CountPaymentsByType(ctx, paymentType)
		if err != nil {
			return nil, domainerrors.Internal(err)
		}
		out[string(paymentType)] = &entities.PaymentTypeStats{
			Total:       total,
			Successful:  successful,
			Failed:      total - successful,
			SuccessRate: percentage(successful, total),
		}
	}
	return out, nil
}

// UserStats returns user conversion statistics
func (u *AnalyticsUsecase) UserStats(ctx context.Context) (*entities.UserStats, error) {
	users, err := u.statsRepo.CountUsers(ctx)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	withQuotes, err := u.statsRepo.CountUsersWithQuotes(ctx)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	withPolicies, err := u.statsRepo.CountUsersWithPolicies(ctx)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}

	return &entities.UserStats{
		TotalUsers:        users,
		UsersWithQuotes:   withQuotes,
		UsersWithPolicies: withPolicies,
		UsersWithoutQuote: users - withQuotes,
		ConversionRate:    percentage(withPolicies, withQuotes),
	}, nil
}

// QuoteStats returns quote bind statistics
func (u *AnalyticsUsecase) QuoteStats(ctx context.Context) (*entities.QuoteStats, error) {
	quotes, err := u.statsRepo.CountQuotes(ctx)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	bound, err := u.statsRepo.CountBoundQuotes(ctx)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	bindable, err := u.statsRepo.CountBindableQuotes(ctx)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}

	return &entities.QuoteStats{
		TotalQuotes:    quotes,
		BoundQuotes:    bound,
		UnboundQuotes:  quotes - bound,
		BindableQuotes: bindable,
		BindRate:       percentage(bound, quotes),
	}, nil
}

// PolicyStats returns policy payment-adoption statistics
func (u *AnalyticsUsecase) PolicyStats(ctx context.Context) (*entities.PolicyStats, error) {
	policies, err := u.statsRepo.CountPolicies(ctx)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	withPayments, err := u.statsRepo.CountPoliciesWithPayments(ctx)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}

	return &entities.PolicyStats{
		TotalPolicies:           policies,
		PoliciesWithPayments:    withPayments,
		PoliciesWithoutPayments: policies - withPayments,
		PaymentAdoptionRate:     percentage(withPayments, policies),
	}, nil
}
