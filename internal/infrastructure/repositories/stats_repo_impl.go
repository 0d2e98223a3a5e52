package repositories

import (
	"context"

	"gorm.io/gorm"

	"insure-dw.backend/internal/domain/entities"
	"insure-dw.backend/internal/infrastructure/models"
)

// StatsRepository implements the counts backing the analytics API
type StatsRepository struct {
	db *gorm.DB
}

// NewStatsRepository creates a new stats repository
func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{db: db}
}

// CountUsers counts all users
func (r *StatsRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.User{}).Count(&count).Error
	return count, err
}

// CountUsersWithQuotes counts users having at least one quote
func (r *StatsRepository) CountUsersWithQuotes(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN quotes ON quotes.user_id = users.id").
		Distinct("users.id").
		Count(&count).Error
	return count, err
}

// CountUsersWithPolicies counts users having at least one policy
func (r *StatsRepository) CountUsersWithPolicies(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.User{}).
		Joins("JOIN policies ON policies.user_id = users.id").
		Distinct("users.id").
		Count(&count).Error
	return count, err
}

// CountQuotes counts all quotes
func (r *StatsRepository) CountQuotes(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Quote{}).Count(&count).Error
	return count, err
}

// CountBoundQuotes counts quotes that have been bound into a policy
func (r *StatsRepository) CountBoundQuotes(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Quote{}).
		Where("bind_time IS NOT NULL").
		Count(&count).Error
	return count, err
}

// CountBindableQuotes counts quotes flagged bindable
func (r *StatsRepository) CountBindableQuotes(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Quote{}).
		Where("bindable = ?", true).
		Count(&count).Error
	return count, err
}

// CountPolicies counts all policies
func (r *StatsRepository) CountPolicies(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Policy{}).Count(&count).Error
	return count, err
}

// CountPoliciesWithPayments counts policies having at least one transaction
func (r *StatsRepository) CountPoliciesWithPayments(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Policy{}).
		Joins("JOIN payment_transactions ON payment_transactions.policy_id = policies.id").
		Distinct("policies.id").
		Count(&count).Error
	return count, err
}

// CountPayments counts all payment transactions
func (r *StatsRepository) CountPayments(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PaymentTransaction{}).Count(&count).Error
	return count, err
}

// CountSuccessfulPayments counts successful payment transactions
func (r *StatsRepository) CountSuccessfulPayments(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.PaymentTransaction{}).
		Where("success = ?", true).
		Count(&count).Error
	return count, err
}

// CountPaymentsByType returns total and successful counts for one type
func (r *StatsRepository) CountPaymentsByType(ctx context.Context, paymentType entities.PaymentType) (int64, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).
		Model(&models.PaymentTransaction{}).
		Where("payment_type = ?", string(paymentType)).
		Count(&total).Error
	if err != nil {
		return 0, 0, err
	}

	var successful int64
	err = r.db.WithContext(ctx).
		Model(&models.PaymentTransaction{}).
		Where("payment_type = ? AND success = ?", string(paymentType), true).
		Count(&successful).Error
	if err != nil {
		return 0, 0, err
	}
	return total, successful, nil
}
