package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"insure-dw.backend/internal/domain/entities"
	domainerrors "insure-dw.backend/internal/domain/errors"
	"insure-dw.backend/internal/infrastructure/models"
)

// QuoteRepository implements quote data operations
type QuoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository creates a new quote repository
func NewQuoteRepository(db *gorm.DB) *QuoteRepository {
	return &QuoteRepository{db: db}
}

// Create creates a new quote and backfills the assigned id
func (r *QuoteRepository) Create(ctx context.Context, quote *entities.Quote) error {
	m := &models.Quote{
		UserID:     quote.UserID,
		CreateTime: quote.CreateTime,
		BindTime:   quote.BindTime.Ptr(),
		Bindable:   quote.Bindable,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	quote.ID = m.ID
	return nil
}

// GetByID gets a quote by ID
func (r *QuoteRepository) GetByID(ctx context.Context, id uint) (*entities.Quote, error) {
	var m models.Quote
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return quoteToEntity(&m), nil
}

// List lists quotes ordered by id. limit <= 0 returns all rows.
func (r *QuoteRepository) List(ctx context.Context, limit, offset int) ([]*entities.Quote, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Quote{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var quoteModels []models.Quote
	if err := query.Find(&quoteModels).Error; err != nil {
		return nil, 0, err
	}
	return quotesToEntities(quoteModels), total, nil
}

// ListByUser lists all quotes belonging to one user
func (r *QuoteRepository) ListByUser(ctx context.Context, userID uint) ([]*entities.Quote, error) {
	var quoteModels []models.Quote
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&quoteModels).Error; err != nil {
		return nil, err
	}
	return quotesToEntities(quoteModels), nil
}

// ListBindable lists quotes that are bindable and not yet bound
func (r *QuoteRepository) ListBindable(ctx context.Context) ([]*entities.Quote, error) {
	var quoteModels []models.Quote
	if err := r.db.WithContext(ctx).Where("bindable = ? AND bind_time IS NULL", true).Order("id ASC").Find(&quoteModels).Error; err != nil {
		return nil, err
	}
	return quotesToEntities(quoteModels), nil
}

// SetBindTime records the bind timestamp on a quote
func (r *QuoteRepository) SetBindTime(ctx context.Context, id uint, bindTime time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.Quote{}).Where("id = ?", id).Update("bind_time", bindTime)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func quoteToEntity(m *models.Quote) *entities.Quote {
	return &entities.Quote{
		ID:         m.ID,
		UserID:     m.UserID,
		CreateTime: m.CreateTime,
		BindTime:   null.TimeFromPtr(m.BindTime),
		Bindable:   m.Bindable,
	}
}

func quotesToEntities(quoteModels []models.Quote) []*entities.Quote {
	quotes := make([]*entities.Quote, 0, len(quoteModels))
	for i := range quoteModels {
		quotes = append(quotes, quoteToEntity(&quoteModels[i]))
	}
	return quotes
}
