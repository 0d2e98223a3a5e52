package usecases

import (
	"context"
	"errors"
	"fmt"

	"insure-dw.backend/internal/domain/entities"
	domainerrors "insure-dw.backend/internal/domain/errors"
	"insure-dw.backend/internal/domain/repositories"
)

// UserUsecase handles user business logic
type UserUsecase struct {
	userRepo   repositories.UserRepository
	quoteRepo  repositories.QuoteRepository
	policyRepo repositories.PolicyRepository
}

// NewUserUsecase creates a new user usecase
func NewUserUsecase(
	userRepo repositories.UserRepository,
	quoteRepo repositories.QuoteRepository,
	policyRepo repositories.PolicyRepository,
) *UserUsecase {
	return &UserUsecase{
		userRepo:   userRepo,
		quoteRepo:  quoteRepo,
		policyRepo: policyRepo,
	}
}

// CreateUser creates a new user. Name and email are stored as given;
// the warehouse ingests upstream records verbatim.
func (u *UserUsecase) CreateUser(ctx context.Context, input *entities.CreateUserInput) (*entities.User, error) {
	user := &entities.User{Name: input.Name}
	if input.Email != "" {
		user.Email.SetValid(input.Email)
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		return nil, domainerrors.Internal(err)
	}
	return user, nil
}

// GetUser gets a user by ID
func (u *UserUsecase) GetUser(ctx context.Context, id uint) (*entities.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(fmt.Sprintf("user %d not found", id))
		}
		return nil, domainerrors.Internal(err)
	}
	return user, nil
}

// ListUsers lists users with pagination. limit <= 0 returns all users.
func (u *UserUsecase) ListUsers(ctx context.Context, limit, offset int) ([]*entities.User, int64, error) {
	users, total, err := u.userRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, domainerrors.Internal(err)
	}
	return users, total, nil
}

// UpdateUser applies a partial update to a user
func (u *UserUsecase) UpdateUser(ctx context.Context, id uint, input *entities.UpdateUserInput) (*entities.User, error) {
	user, err := u.GetUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		// An explicit empty string clears the address.
		if *input.Email == "" {
			user.Email.Valid = false
			user.Email.String = ""
		} else {
			user.Email.SetValid(*input.Email)
		}
	}

	if err := u.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(fmt.Sprintf("user %d not found", id))
		}
		return nil, domainerrors.Internal(err)
	}
	return user, nil
}

// DeleteUser removes a user. Quotes and policies referencing the user are
// not touched; the warehouse keeps them as historical rows.
func (u *UserUsecase) DeleteUser(ctx context.Context, id uint) error {
	if err := u.userRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.NotFound(fmt.Sprintf("user %d not found", id))
		}
		return domainerrors.Internal(err)
	}
	return nil
}

// ListUserQuotes lists all quotes belonging to a user
func (u *UserUsecase) ListUserQuotes(ctx context.Context, userID uint) ([]*entities.Quote, error) {
	if _, err := u.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	quotes, err := u.quoteRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	return quotes, nil
}

// ListUserPolicies lists all policies belonging to a user
func (u *UserUsecase) ListUserPolicies(ctx context.Context, userID uint) ([]*entities.Policy, error) {
	if _, err := u.GetUser(ctx, userID); err != nil {
		return nil, err
	}
	policies, err := u.policyRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	return policies, nil
}
