package repositories

import (
	"context"
	"errors"

	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"insure-dw.backend/internal/domain/entities"
	domainerrors "insure-dw.backend/internal/domain/errors"
	"insure-dw.backend/internal/infrastructure/models"
)

// FeatureRepository implements the feature store cache on the warehouse db
type FeatureRepository struct {
	db *gorm.DB
}

// NewFeatureRepository creates a new feature repository
func NewFeatureRepository(db *gorm.DB) *FeatureRepository {
	return &FeatureRepository{db: db}
}

// Upsert writes the cache row for (feature type, entity id). An existing
// row is overwritten in place. Read-then-write without a lock: the later
// of two concurrent writers wins.
func (r *FeatureRepository) Upsert(ctx context.Context, feature *entities.Feature) error {
	var existing models.Feature
	err := r.db.WithContext(ctx).
		Where("feature_type = ? AND entity_id = ?", string(feature.FeatureType), feature.EntityID).
		First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}
		m := &models.Feature{
			FeatureType:  string(feature.FeatureType),
			EntityID:     feature.EntityID,
			FeatureValue: feature.FeatureValue.Ptr(),
			ComputedAt:   feature.ComputedAt,
		}
		if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
			return err
		}
		feature.ID = m.ID
		return nil
	}

	updates := map[string]interface{}{
		"feature_value": feature.FeatureValue.Ptr(),
		"computed_at":   feature.ComputedAt,
	}
	if err := r.db.WithContext(ctx).Model(&models.Feature{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
		return err
	}
	feature.ID = existing.ID
	return nil
}

// Get reads the cache row for (feature type, entity id)
func (r *FeatureRepository) Get(ctx context.Context, featureType entities.FeatureType, entityID string) (*entities.Feature, error) {
	var m models.Feature
	err := r.db.WithContext(ctx).
		Where("feature_type = ? AND entity_id = ?", string(featureType), entityID).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return featureToEntity(&m), nil
}

// EnsureMetadata inserts any missing metadata rows. Existing rows are
// left untouched so startup seeding can run on every boot.
func (r *FeatureRepository) EnsureMetadata(ctx context.Context, items []*entities.FeatureMetadata) error {
	for _, item := range items {
		var count int64
		err := r.db.WithContext(ctx).
			Model(&models.FeatureMetadata{}).
			Where("feature_type = ?", string(item.FeatureType)).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}
		m := &models.FeatureMetadata{
			FeatureType: string(item.FeatureType),
			Name:        item.Name,
			Description: item.Description,
			EntityType:  item.EntityType,
			DataType:    item.DataType,
			CreatedAt:   item.CreatedAt,
		}
		if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
			return err
		}
	}
	return nil
}

// ListMetadata lists all registered feature metadata
func (r *FeatureRepository) ListMetadata(ctx context.Context) ([]*entities.FeatureMetadata, error) {
	var metadataModels []models.FeatureMetadata
	if err := r.db.WithContext(ctx).Order("id ASC").Find(&metadataModels).Error; err != nil {
		return nil, err
	}

	items := make([]*entities.FeatureMetadata, 0, len(metadataModels))
	for i := range metadataModels {
		m := &metadataModels[i]
		items = append(items, &entities.FeatureMetadata{
			ID:          m.ID,
			FeatureType: entities.FeatureType(m.FeatureType),
			Name:        m.Name,
			Description: m.Description,
			EntityType:  m.EntityType,
			DataType:    m.DataType,
			CreatedAt:   m.CreatedAt,
		})
	}
	return items, nil
}

func featureToEntity(m *models.Feature) *entities.Feature {
	return &entities.Feature{
		ID:           m.ID,
		FeatureType:  entities.FeatureType(m.FeatureType),
		EntityID:     m.EntityID,
		FeatureValue: null.StringFromPtr(m.FeatureValue),
		ComputedAt:   m.ComputedAt,
	}
}
