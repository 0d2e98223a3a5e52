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

// PaymentRepository implements payment transaction data operations
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create creates a new payment transaction and backfills the assigned id
func (r *PaymentRepository) Create(ctx context.Context, payment *entities.PaymentTransaction) error {
	m := &models.PaymentTransaction{
		Time:        payment.Time,
		PaymentType: string(payment.PaymentType),
		PolicyID:    payment.PolicyID,
		Success:     payment.Success,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	payment.ID = m.ID
	return nil
}

// GetByID gets a payment transaction by ID
func (r *PaymentRepository) GetByID(ctx context.Context, id uint) (*entities.PaymentTransaction, error) {
	var m models.PaymentTransaction
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return paymentToEntity(&m), nil
}

// List lists payment transactions ordered by id. limit <= 0 returns all rows.
func (r *PaymentRepository) List(ctx context.Context, limit, offset int) ([]*entities.PaymentTransaction, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.PaymentTransaction{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var paymentModels []models.PaymentTransaction
	if err := query.Find(&paymentModels).Error; err != nil {
		return nil, 0, err
	}
	return paymentsToEntities(paymentModels), total, nil
}

// ListByPolicy lists all transactions against one policy
func (r *PaymentRepository) ListByPolicy(ctx context.Context, policyID uint) ([]*entities.PaymentTransaction, error) {
	var paymentModels []models.PaymentTransaction
	if err := r.db.WithContext(ctx).Where("policy_id = ?", policyID).Order("id ASC").Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	return paymentsToEntities(paymentModels), nil
}

// ListBySuccess lists transactions filtered by outcome
func (r *PaymentRepository) ListBySuccess(ctx context.Context, success bool) ([]*entities.PaymentTransaction, error) {
	var paymentModels []models.PaymentTransaction
	if err := r.db.WithContext(ctx).Where("success = ?", success).Order("id ASC").Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	return paymentsToEntities(paymentModels), nil
}

// ListByType lists transactions of one payment type
func (r *PaymentRepository) ListByType(ctx context.Context, paymentType entities.PaymentType) ([]*entities.PaymentTransaction, error) {
	var paymentModels []models.PaymentTransaction
	if err := r.db.WithContext(ctx).Where("payment_type = ?", string(paymentType)).Order("id ASC").Find(&paymentModels).Error; err != nil {
		return nil, err
	}
	return paymentsToEntities(paymentModels), nil
}

// LatestSuccessTimeForUser returns the newest successful transaction time
// across all policies owned by the user
func (r *PaymentRepository) LatestSuccessTimeForUser(ctx context.Context, userID uint) (null.Time, error) {
	var times []time.Time
	err := r.db.WithContext(ctx).
		Model(&models.PaymentTransaction{}).
		Joins("JOIN policies ON policies.id = payment_transactions.policy_id").
		Where("policies.user_id = ? AND payment_transactions.success = ?", userID, true).
		Order("payment_transactions.time DESC").
		Limit(1).
		Pluck("payment_transactions.time", &times).Error
	if err != nil {
		return null.Time{}, err
	}
	if len(times) == 0 {
		return null.Time{}, nil
	}
	return null.TimeFrom(times[0]), nil
}

// CountFailedForUser counts failed transactions across the user's policies
func (r *PaymentRepository) CountFailedForUser(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.PaymentTransaction{}).
		Joins("JOIN policies ON policies.id = payment_transactions.policy_id").
		Where("policies.user_id = ? AND payment_transactions.success = ?", userID, false).
		Count(&count).Error
	return count, err
}

func paymentToEntity(m *models.PaymentTransaction) *entities.PaymentTransaction {
	return &entities.PaymentTransaction{
		ID:          m.ID,
		Time:        m.Time,
		PaymentType: entities.PaymentType(m.PaymentType),
		PolicyID:    m.PolicyID,
		Success:     m.Success,
	}
}

func paymentsToEntities(paymentModels []models.PaymentTransaction) []*entities.PaymentTransaction {
	payments := make([]*entities.PaymentTransaction, 0, len(paymentModels))
	for i := range paymentModels {
		payments = append(payments, paymentToEntity(&paymentModels[i]))
	}
	return payments
}
