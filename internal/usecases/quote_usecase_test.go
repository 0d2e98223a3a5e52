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

func newQuoteUsecase() (*usecases.QuoteUsecase, *MockQuoteRepository, *MockUserRepository) {
	quoteRepo := new(MockQuoteRepository)
	userRepo := new(MockUserRepository)
	return usecases.NewQuoteUsecase(quoteRepo, userRepo), quoteRepo, userRepo
}

func TestQuoteUsecase_CreateQuoteDefaultsBindable(t *testing.T) {
	uc, quoteRepo, userRepo := newQuoteUsecase()
	ctx := context.Background()

	userRepo.On("GetByID", ctx, uint(1)).Return(&entities.User{ID: 1, Name: "Alice"}, nil)
	quoteRepo.On("Create", ctx, mock.AnythingOfType("*entities.Quote")).Run(func(args mock.Arguments) {
		args.Get(1).(*entities.Quote).ID = 3
	}).Return(nil)

	quote, err := uc.CreateQuote(ctx, &entities.CreateQuoteInput{UserID: 1})
	require.NoError(t, err)
	require.EqualValues(t, 3, quote.ID)
	require.True(t, quote.Bindable)
	require.False(t, quote.Bound())

	notBindable := false
	quote, err = uc.CreateQuote(ctx, &entities.CreateQuoteInput{UserID: 1, Bindable: &notBindable})
	require.NoError(t, err)
	require.False(t, quote.Bindable)
}

func TestQuoteUsecase_CreateQuoteUserMissing(t *testing.T) {
	uc, _, userRepo := newQuoteUsecase()
	ctx := context.Background()

	userRepo.On("GetByID", ctx, uint(9)).Return(nil, domainerrors.ErrNotFound)

	_, err := uc.CreateQuote(ctx, &entities.CreateQuoteInput{UserID: 9})
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 404, appErr.Status)
}

func TestQuoteUsecase_BindQuote(t *testing.T) {
	uc, quoteRepo, _ := newQuoteUsecase()
	ctx := context.Background()

	quoteRepo.On("GetByID", ctx, uint(1)).Return(&entities.Quote{ID: 1, UserID: 1, CreateTime: time.Now(), Bindable: true}, nil)
	quoteRepo.On("SetBindTime", ctx, uint(1), mock.AnythingOfType("time.Time")).Return(nil)

	quote, err := uc.BindQuote(ctx, 1)
	require.NoError(t, err)
	require.True(t, quote.Bound())
}

func TestQuoteUsecase_BindQuoteRejections(t *testing.T) {
	uc, quoteRepo, _ := newQuoteUsecase()
	ctx := context.Background()

	quoteRepo.On("GetByID", ctx, uint(1)).Return(&entities.Quote{ID: 1, Bindable: false}, nil)
	_, err := uc.BindQuote(ctx, 1)
	var appErr *domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 400, appErr.Status)

	quoteRepo.On("GetByID", ctx, uint(2)).Return(&entities.Quote{
		ID: 2, Bindable: true, BindTime: null.TimeFrom(time.Now()),
	}, nil)
	_, err = uc.BindQuote(ctx, 2)
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 400, appErr.Status)

	quoteRepo.On("GetByID", ctx, uint(3)).Return(nil, domainerrors.ErrNotFound)
	_, err = uc.BindQuote(ctx, 3)
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, 404, appErr.Status)
}

func TestQuoteUsecase_ListBindable(t *testing.T) {
	uc, quoteRepo, _ := newQuoteUsecase()
	ctx := context.Background()

	quoteRepo.On("ListBindable", ctx).Return([]*entities.Quote{{ID: 1, Bindable: true}}, nil)

	quotes, err := uc.ListBindableQuotes(ctx)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
}
