package usecases

import (
	"context"
	"errors"
	"fmt"

	"insure-dw.backend/internal/domain/entities"
	domainerrors "insure-dw.backend/internal/domain/errors"
	"insure-dw.backend/internal/domain/repositories"
)

// PolicyUsecase handles policy business logic
type PolicyUsecase struct {
	policyRepo repositories.PolicyRepository
	quoteRepo  repositories.QuoteRepository
	userRepo   repositories.UserRepository
}

// NewPolicyUsecase creates a new policy usecase
func NewPolicyUsecase(
	policyRepo repositories.PolicyRepository,
	quoteRepo repositories.QuoteRepository,
	userRepo repositories.UserRepository,
) *PolicyUsecase {
	return &PolicyUsecase{
		policyRepo: policyRepo,
		quoteRepo:  quoteRepo,
		userRepo:   userRepo,
	}
}

// CreatePolicy creates a policy from a bound quote. The quote must exist,
// belong to the requesting user, be bound, and not already back a policy.
func (u *PolicyUsecase) CreatePolicy(ctx context.Context, input *entities.CreatePolicyInput) (*entities.Policy, error) {
	if _, err := u.userRepo.GetByID(ctx, input.UserID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(fmt.Sprintf("user %d not found", input.UserID))
		}
		return nil, domainerrors.Internal(err)
	}

	quote, err := u.quoteRepo.GetByID(ctx, input.QuoteID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(fmt.Sprintf("quote %d not found", input.QuoteID))
		}
		return nil, domainerrors.Internal(err)
	}

	if quote.UserID != input.UserID {
		return nil, domainerrors.BadRequest(fmt.Sprintf("quote %d does not belong to user %d", input.QuoteID, input.UserID))
	}
	if !quote.Bound() {
		return nil, domainerrors.BadRequest(fmt.Sprintf("quote %d is not bound", input.QuoteID))
	}

	if _, err := u.policyRepo.GetByQuote(ctx, input.QuoteID); err == nil {
		return nil, domainerrors.BadRequest(fmt.Sprintf("quote %d already has a policy", input.QuoteID))
	} else if !errors.Is(err, domainerrors.ErrNotFound) {
		return nil, domainerrors.Internal(err)
	}

	policy := &entities.Policy{
		UserID:  input.UserID,
		QuoteID: input.QuoteID,
	}
	if err := u.policyRepo.Create(ctx, policy); err != nil {
		return nil, domainerrors.Internal(err)
	}
	return policy, nil
}

// GetPolicy gets a policy by ID
func (u *PolicyUsecase) GetPolicy(ctx context.Context, id uint) (*entities.Policy, error) {
	policy, err := u.policyRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(fmt.Sprintf("policy %d not found", id))
		}
		return nil, domainerrors.Internal(err)
	}
	return policy, nil
}

// ListPolicies lists policies with pagination
func (u *PolicyUsecase) ListPolicies(ctx context.Context, limit, offset int) ([]*entities.Policy, int64, error) {
	policies, total, err := u.policyRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, domainerrors.Internal(err)
	}
	return policies, total, nil
}

// DeletePolicy removes a policy. Its payment transactions are kept as
// historical rows.
func (u *PolicyUsecase) DeletePolicy(ctx context.Context, id uint) error {
	if err := u.policyRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound(fmt.Sprintf("policy %d not found", id))
		}
		return domainerrors.Internal(err)
	}
	return nil
}
