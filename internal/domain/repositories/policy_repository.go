package repositories

import (
	"context"

	"insure-dw.backend/internal/domain/entities"
)

// PolicyRepository defines policy data operations
type PolicyRepository interface {
	Create(ctx context.Context, policy *entities.Policy) error
	GetByID(ctx context.Context, id uint) (*entities.Policy, error)
	GetByQuote(ctx context.Context, quoteID uint) (*entities.Policy, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Policy, int64, error)
	ListByUser(ctx context.Context, userID uint) ([]*entities.Policy, error)
	Delete(ctx context.Context, id uint) error
}
