package repositories

import (
	"context"

	"insure-dw.backend/internal/domain/entities"
)

// FeatureRepository defines feature store cache operations
type FeatureRepository interface {
	// Upsert writes the cache row for (feature type, entity id),
	// overwriting value and timestamp when the row already exists. The
	// read-then-write is not guarded against concurrent writers; the
	// later write wins, which is acceptable at this request volume.
	Upsert(ctx context.Context, feature *entities.Feature) error

	Get(ctx context.Context, featureType entities.FeatureType, entityID string) (*entities.Feature, error)

	// EnsureMetadata inserts any missing metadata rows; existing rows
	// are left untouched, so startup seeding is idempotent.
	EnsureMetadata(ctx context.Context, items []*entities.FeatureMetadata) error

	ListMetadata(ctx context.Context) ([]*entities.FeatureMetadata, error)
}
