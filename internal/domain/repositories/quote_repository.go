package repositories

import (
	"context"
	"time"

	"insure-dw.backend/internal/domain/entities"
)

// QuoteRepository defines quote data operations
type QuoteRepository interface {
	Create(ctx context.Context, quote *entities.Quote) error
	GetByID(ctx context.Context, id uint) (*entities.Quote, error)
	List(ctx context.Context, limit, offset int) ([]*entities.Quote, int64, error)
	ListByUser(ctx context.Context, userID uint) ([]*entities.Quote, error)
	ListBindable(ctx context.Context) ([]*entities.Quote, error)
	SetBindTime(ctx context.Context, id uint, bindTime time.Time) error
}
