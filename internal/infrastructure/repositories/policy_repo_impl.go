package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"insure-dw.backend/internal/domain/entities"
	domainerrors "insure-dw.backend/internal/domain/errors"
	"insure-dw.backend/internal/infrastructure/models"
)

// PolicyRepository implements policy data operations
type PolicyRepository struct {
	db *gorm.DB
}

// NewPolicyRepository creates a new policy repository
func NewPolicyRepository(db *gorm.DB) *PolicyRepository {
	return &PolicyRepository{db: db}
}

// Create creates a new policy and backfills the assigned id
func (r *PolicyRepository) Create(ctx context.Context, policy *entities.Policy) error {
	m := &models.Policy{
		UserID:  policy.UserID,
		QuoteID: policy.QuoteID,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	policy.ID = m.ID
	return nil
}

// GetByID gets a policy by ID
func (r *PolicyRepository) GetByID(ctx context.Context, id uint) (*entities.Policy, error) {
	var m models.Policy
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return policyToEntity(&m), nil
}

// GetByQuote gets the policy created from a quote, if any
func (r *PolicyRepository) GetByQuote(ctx context.Context, quoteID uint) (*entities.Policy, error) {
	var m models.Policy
	if err := r.db.WithContext(ctx).Where("quote_id = ?", quoteID).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return policyToEntity(&m), nil
}

// List lists policies ordered by id. limit <= 0 returns all rows.
func (r *PolicyRepository) List(ctx context.Context, limit, offset int) ([]*entities.Policy, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Policy{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).Order("id ASC")
	if limit > 0 {
		query = query.Limit(limit).Offset(offset)
	}

	var policyModels []models.Policy
	if err := query.Find(&policyModels).Error; err != nil {
		return nil, 0, err
	}
	return policiesToEntities(policyModels), total, nil
}

// ListByUser lists all policies belonging to one user
func (r *PolicyRepository) ListByUser(ctx context.Context, userID uint) ([]*entities.Policy, error) {
	var policyModels []models.Policy
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("id ASC").Find(&policyModels).Error; err != nil {
		return nil, err
	}
	return policiesToEntities(policyModels), nil
}

// Delete removes a policy row
func (r *PolicyRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.Policy{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func policyToEntity(m *models.Policy) *entities.Policy {
	return &entities.Policy{
		ID:      m.ID,
		UserID:  m.UserID,
		QuoteID: m.QuoteID,
	}
}

func policiesToEntities(policyModels []models.Policy) []*entities.Policy {
	policies := make([]*entities.Policy, 0, len(policyModels))
	for i := range policyModels {
		policies = append(policies, policyToEntity(&policyModels[i]))
	}
	return policies
}
