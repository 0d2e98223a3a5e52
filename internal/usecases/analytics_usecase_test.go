package usecases_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"insure-dw.backend/internal/domain/entities"
	"insure-dw.backend/internal/usecases"
)

func TestAnalyticsUsecase_GeneralStats(t *testing.T) {
	statsRepo := new(MockStatsRepository)
	uc := usecases.NewAnalyticsUsecase(statsRepo)
	ctx := context.Background()

	statsRepo.On("CountUsers", ctx).Return(int64(10), nil)
	statsRepo.On("CountQuotes", ctx).Return(int64(20), nil)
	statsRepo.On("CountPolicies", ctx).Return(int64(8), nil)
	statsRepo.On("CountPayments", ctx).Return(int64(3), nil)
	statsRepo.On("CountSuccessfulPayments", ctx).Return(int64(2), nil)

	stats, err := uc.GeneralStats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 10, stats.TotalUsers)
	require.EqualValues(t, 3, stats.TotalPayments)
	require.InDelta(t, 66.67, stats.PaymentSuccessRate, 0.001)
}

func TestAnalyticsUsecase_GeneralStatsEmpty(t *testing.T) {
	statsRepo := new(MockStatsRepository)
	uc := usecases.NewAnalyticsUsecase(statsRepo)
	ctx := context.Background()

	statsRepo.On("CountUsers", ctx).Return(int64(0), nil)
	statsRepo.On("CountQuotes", ctx).Return(int64(0), nil)
	statsRepo.On("CountPolicies", ctx).Return(int64(0), nil)
	statsRepo.On("CountPayments", ctx).Return(int64(0), nil)
	statsRepo.On("CountSuccessfulPayments", ctx).Return(int64(0), nil)

	stats, err := uc.GeneralStats(ctx)
	require.NoError(t, err)
	require.Zero(t, stats.PaymentSuccessRate)
}

func TestAnalyticsUsecase_PaymentTypeStats(t *testing.T) {
	statsRepo := new(MockStatsRepository)
	uc := usecases.NewAnalyticsUsecase(statsRepo)
	ctx := context.Background()

	statsRepo.On("CountPaymentsByType", ctx, entities.PaymentTypeCredit).Return(int64(4), int64(3), nil)
	statsRepo.On("CountPaymentsByType", ctx, entities.PaymentTypeDebit).Return(int64(0), int64(0), nil)
	statsRepo.On("CountPaymentsByType", ctx, entities.PaymentTypePrepaid).Return(int64(2), int64(1), nil)

	stats, err := uc.PaymentTypeStats(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 3)
	require.EqualValues(t, 1, stats["Credit"].Failed)
	require.InDelta(t, 75.0, stats["Credit"].SuccessRate, 0.001)
	require.Zero(t, stats["Debit"].SuccessRate)
	require.InDelta(t, 50.0, stats["Prepaid"].SuccessRate, 0.001)
}

func TestAnalyticsUsecase_UserStats(t *testing.T) {
	statsRepo := new(MockStatsRepository)
	uc := usecases.NewAnalyticsUsecase(statsRepo)
	ctx := context.Background()

	statsRepo.On("CountUsers", ctx).Return(int64(10), nil)
	statsRepo.On("CountUsersWithQuotes", ctx).Return(int64(4), nil)
	statsRepo.On("CountUsersWithPolicies", ctx).Return(int64(2), nil)

	stats, err := uc.UserStats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 6, stats.UsersWithoutQuote)
	// conversion rate is policies over quoted users, not over all users
	require.InDelta(t, 50.0, stats.ConversionRate, 0.001)
}

func TestAnalyticsUsecase_UserStatsNoQuotedUsers(t *testing.T) {
	statsRepo := new(MockStatsRepository)
	uc := usecases.NewAnalyticsUsecase(statsRepo)
	ctx := context.Background()

	statsRepo.On("CountUsers", ctx).Return(int64(3), nil)
	statsRepo.On("CountUsersWithQuotes", ctx).Return(int64(0), nil)
	statsRepo.On("CountUsersWithPolicies", ctx).Return(int64(0), nil)

	stats, err := uc.UserStats(ctx)
	require.NoError(t, err)
	require.Zero(t, stats.ConversionRate)
}

func TestAnalyticsUsecase_QuoteStats(t *testing.T) {
	statsRepo := new(MockStatsRepository)
	uc := usecases.NewAnalyticsUsecase(statsRepo)
	ctx := context.Background()

	statsRepo.On("CountQuotes", ctx).Return(int64(8), nil)
	statsRepo.On("CountBoundQuotes", ctx).Return(int64(2), nil)
	statsRepo.On("CountBindableQuotes", ctx).Return(int64(5), nil)

	stats, err := uc.QuoteStats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 6, stats.UnboundQuotes)
	require.InDelta(t, 25.0, stats.BindRate, 0.001)
}

func TestAnalyticsUsecase_PolicyStats(t *testing.T) {
	statsRepo := new(MockStatsRepository)
	uc := usecases.NewAnalyticsUsecase(statsRepo)
	ctx := context.Background()

	statsRepo.On("CountPolicies", ctx).Return(int64(4), nil)
	statsRepo.On("CountPoliciesWithPayments", ctx).Return(int64(3), nil)

	stats, err := uc.PolicyStats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, stats.PoliciesWithoutPayments)
	require.InDelta(t, 75.0, stats.PaymentAdoptionRate, 0.001)
}
