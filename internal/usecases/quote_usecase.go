package usecases

import (
	"context"
	"errors"
	"fmt"
	"time"

	"insure-dw.backend/internal/domain/entities"
	domainerrors "insure-dw.backend/internal/domain/errors"
	"insure-dw.backend/internal/domain/repositories"
)

// QuoteUsecase handles quote business logic
type QuoteUsecase struct {
	quoteRepo repositories.QuoteRepository
	userRepo  repositories.UserRepository

	// now is swappable for tests
	now func() time.Time
}

// NewQuoteUsecase creates a new quote usecase
func NewQuoteUsecase(
	quoteRepo repositories.QuoteRepository,
	userRepo repositories.UserRepository,
) *QuoteUsecase {
	return &QuoteUsecase{
		quoteRepo: quoteRepo,
		userRepo:  userRepo,
		now:       time.Now,
	}
}

// CreateQuote creates a quote for an existing user. Bindable defaults to
// true when the input omits it.
func (u *QuoteUsecase) CreateQuote(ctx context.Context, input *entities.CreateQuoteInput) (*entities.Quote, error) {
	if _, err := u.userRepo.GetByID(ctx, input.UserID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(fmt.Sprintf("user %d not found", input.UserID))
		}
		return nil, domainerrors.Internal(err)
	}

	bindable := true
	if input.Bindable != nil {
		bindable = *input.Bindable
	}

	quote := &entities.Quote{
		UserID:     input.UserID,
		CreateTime: u.now().UTC(),
		Bindable:   bindable,
	}
	if err := u.quoteRepo.Create(ctx, quote); err != nil {
		return nil, domainerrors.Internal(err)
	}
	return quote, nil
}

// GetQuote gets a quote by ID
func (u *QuoteUsecase) GetQuote(ctx context.Context, id uint) (*entities.Quote, error) {
	quote, err := u.quoteRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(fmt.Sprintf("quote %d not found", id))
		}
		return nil, domainerrors.Internal(err)
	}
	return quote, nil
}

// ListQuotes lists quotes with pagination
func (u *QuoteUsecase) ListQuotes(ctx context.Context, limit, offset int) ([]*entities.Quote, int64, error) {
	quotes, total, err := u.quoteRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, domainerrors.Internal(err)
	}
	return quotes, total, nil
}

// ListBindableQuotes lists quotes open for binding
func (u *QuoteUsecase) ListBindableQuotes(ctx context.Context) ([]*entities.Quote, error) {
	quotes, err := u.quoteRepo.ListBindable(ctx)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	return quotes, nil
}

// BindQuote records the bind timestamp on a quote. Binding is one-way:
// a quote that is not bindable, or already bound, is rejected.
func (u *QuoteUsecase) BindQuote(ctx context.Context, id uint) (*entities.Quote, error) {
	quote, err := u.GetQuote(ctx, id)
	if err != nil {
		return nil, err
	}
	if !quote.Bindable {
		return nil, domainerrors.BadRequest(fmt.Sprintf("quote %d is not bindable", id))
	}
	if quote.Bound() {
		return nil, domainerrors.BadRequest(fmt.Sprintf("quote %d is already bound", id))
	}

	bindTime := u.now().UTC()
	if err := u.quoteRepo.SetBindTime(ctx, id, bindTime); err != nil {
		return nil, domainerrors.Internal(err)
	}
	quote.BindTime.SetValid(bindTime)
	return quote, nil
}
