package usecases_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/volatiletech/null/v8"

	"insure-dw.backend/internal/domain/entities"
	domainerrors "insure-dw.backend/internal/domain/errors"
	"insure-dw.backend/internal/usecases"
)

func newPolicyUsecase() (*usecases.PolicyUsecase, *MockPolicyRepository, *MockQuoteRepository, *MockUserRepository) {
	policyRepo := new(MockPolicyRepository)
	quoteRepo := new(MockQuoteRepository)
	userRepo := new(MockUserRepository)
	return usecases.NewPolicyUsecase(policyRepo, quoteRepo, userRepo), policyRepo, quoteRepo, userRepo
}

func boundQuote(id, userID uint) *entities.Quote {
	return &entities.Quote{
		ID:         id,
		UserID:     userID,
		CreateTime: time.Now().Add(-time.Hour),
		BindTime:   null.TimeFrom(time.Now()),
		Bindable:   true,
	}
}

func TestPolicyUsecase_CreatePolicy(t *testing.T) {
	uc, policyRepo, quoteRepo, userRepo := newPolicyUsecase()
	ctx := context.Background()

	userRepo.On("GetByID", ctx, uint(1)).Return(&entities.User{ID: 1, Name: "Alice"}, nil)
	quoteRepo.On("GetByID", ctx, uint(10)).Return(boundQuote(10, 1), nil)
	policyRepo.On("GetByQuote", ctx, uint(10)).Return(nil, domainerrors.ErrNotFound)
	policyRepo.On("Create", ctx, mock.AnythingOfType("*entities.Policy")).Run(func(args mock.Arguments) {
		args.Get(1).(*entities.Policy).ID = 100
	}).Return(nil)

	policy, err := uc.CreatePolicy(ctx, &entities.CreatePolicyInput{UserID: 1, QuoteID: 10})
	require.NoError(t, err)
	require.EqualValues(t, 100, policy.ID)
	require.EqualValues(t, 10, policy.QuoteID)
}

func TestPolicyUsecase_CreatePolicyPreconditions(t *testing.T) {
	ctx := context.Background()
	var appErr *domainerrors.AppError

	t.Run("user missing", func(t *testing.T) {
		uc, _, _, userRepo := newPolicyUsecase()
		userRepo.On("GetByID", ctx, uint(1)).Return(nil, domainerrors.ErrNotFound)
		_, err := uc.CreatePolicy(ctx, &entities.CreatePolicyInput{UserID: 1, QuoteID: 10})
		require.ErrorAs(t, err, &appErr)
		require.Equal(t, 404, appErr.Status)
	})

	t.Run("quote missing", func(t *testing.T) {
		uc, _, quoteRepo, userRepo := newPolicyUsecase()
		userRepo.On("GetByID", ctx, uint(1)).Return(&entities.User{ID: 1}, nil)
		quoteRepo.On("GetByID", ctx, uint(10)).Return(nil, domainerrors.ErrNotFound)
		_, err := uc.CreatePolicy(ctx, &entities.CreatePolicyInput{UserID: 1, QuoteID: 10})
		require.ErrorAs(t, err, &appErr)
		require.Equal(t, 404, appErr.Status)
	})

	t.Run("ownership mismatch", func(t *testing.T) {
		uc, _, quoteRepo, userRepo := newPolicyUsecase()
		userRepo.On("GetByID", ctx, uint(1)).Return(&entities.User{ID: 1}, nil)
		quoteRepo.On("GetByID", ctx, uint(10)).Return(boundQuote(10, 2), nil)
		_, err := uc.CreatePolicy(ctx, &entities.CreatePolicyInput{UserID: 1, QuoteID: 10})
		require.ErrorAs(t, err, &appErr)
		require.Equal(t, 400, appErr.Status)
	})

	t.Run("quote not bound", func(t *testing.T) {
		uc, _, quoteRepo, userRepo := newPolicyUsecase()
		userRepo.On("GetByID", ctx, uint(1)).Return(&entities.User{ID: 1}, nil)
		quoteRepo.On("GetByID", ctx, uint(10)).Return(&entities.Quote{ID: 10, UserID: 1, Bindable: true}, nil)
		_, err := uc.CreatePolicy(ctx, &entities.CreatePolicyInput{UserID: 1, QuoteID: 10})
		require.ErrorAs(t, err, &appErr)
		require.Equal(t, 400, appErr.Status)
	})

	t.Run("duplicate policy", func(t *testing.T) {
		uc, policyRepo, quoteRepo, userRepo := newPolicyUsecase()
		userRepo.On("GetByID", ctx, uint(1)).Return(&entities.User{ID: 1}, nil)
		quoteRepo.On("GetByID", ctx, uint(10)).Return(boundQuote(10, 1), nil)
		policyRepo.On("GetByQuote", ctx, uint(10)).Return(&entities.Policy{ID: 99, UserID: 1, QuoteID: 10}, nil)
		_, err := uc.CreatePolicy(ctx, &entities.CreatePolicyInput{UserID: 1, QuoteID: 10})
		require.ErrorAs(t, err, &appErr)
		require.Equal(t, 400, appErr.Status)
	})
}

func TestPolicyUsecase_DeletePolicy(t *testing.T) {
	uc, policyRepo, _, _ := newPolicyUsecase()
	ctx := context.Background()

	policyRepo.On("Delete", ctx, uint(1)).Return(nil)
	require.NoError(t, uc.DeletePolicy(ctx, 1))

	policyRepo.On("Delete", ctx, uint(2)).Return(domainerrors.ErrNotFound)
	err := uc.DeletePolicy(ctx, 2)
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 404, appErr.Status)
}
