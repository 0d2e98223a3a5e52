package repositories

import (
	"context"

	"github.com/volatiletech/null/v8"
	"insure-dw.backend/internal/domain/entities"
)

// PaymentRepository defines payment transaction data operations
type PaymentRepository interface {
	Create(ctx context.Context, payment *entities.PaymentTransaction) error
	GetByID(ctx context.Context, id uint) (*entities.PaymentTransaction, error)
	List(ctx context.Context, limit, offset int) ([]*entities.PaymentTransaction, int64, error)
	ListByPolicy(ctx context.Context, policyID uint) ([]*entities.PaymentTransaction, error)
	ListBySuccess(ctx context.Context, success bool) ([]*entities.PaymentTransaction, error)
	ListByType(ctx context.Context, paymentType entities.PaymentType) ([]*entities.PaymentTransaction, error)

	// LatestSuccessTimeForUser returns the timestamp of the most recent
	// successful transaction across all policies owned by the user, or an
	// invalid null.Time when the user has none.
	LatestSuccessTimeForUser(ctx context.Context, userID uint) (null.Time, error)

	// CountFailedForUser counts failed transactions across the user's policies
	CountFailedForUser(ctx context.Context, userID uint) (int64, error)
}
