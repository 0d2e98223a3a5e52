package usecases

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"insure-dw.backend/internal/domain/entities"
	domainerrors "insure-dw.backend/internal/domain/errors"
	"insure-dw.backend/internal/domain/repositories"
	"insure-dw.backend/pkg/logger"
)

// FeatureStoreUsecase computes derived features from the entity store and
// caches them in the features table. The cache holds at most one row per
// (feature type, entity id); a cached NULL is treated as a miss and
// recomputed on every read.
type FeatureStoreUsecase struct {
	featureRepo repositories.FeatureRepository
	userRepo    repositories.UserRepository
	quoteRepo   repositories.QuoteRepository
	paymentRepo repositories.PaymentRepository

	now func() time.Time
}

// NewFeatureStoreUsecase creates a new feature store usecase
func NewFeatureStoreUsecase(
	featureRepo repositories.FeatureRepository,
	userRepo repositories.UserRepository,
	quoteRepo repositories.QuoteRepository,
	paymentRepo repositories.PaymentRepository,
) *FeatureStoreUsecase {
	return &FeatureStoreUsecase{
		featureRepo: featureRepo,
		userRepo:    userRepo,
		quoteRepo:   quoteRepo,
		paymentRepo: paymentRepo,
		now:         time.Now,
	}
}

// DefaultMetadata returns the metadata rows seeded at startup
func DefaultMetadata(now time.Time) []*entities.FeatureMetadata {
	return []*entities.FeatureMetadata{
		{
			FeatureType: entities.FeatureUserPolicyTimeOfPurchase,
			Name:        "User Policy Time of Purchase",
			Description: "Timestamp of the user's most recent successful payment transaction",
			EntityType:  "user",
			DataType:    "datetime",
			CreatedAt:   now,
		},
		{
			FeatureType: entities.FeatureQuoteCreationToBindingTime,
			Name:        "Quote Creation to Binding Time",
			Description: "Seconds elapsed between quote creation and binding",
			EntityType:  "quote",
			DataType:    "integer",
			CreatedAt:   now,
		},
		{
			FeatureType: entities.FeatureUserFailedTransactionCount,
			Name:        "User Failed Transaction Count",
			Description: "Number of failed payment transactions across the user's policies",
			EntityType:  "user",
			DataType:    "integer",
			CreatedAt:   now,
		},
		{
			FeatureType: entities.FeaturePaymentType,
			Name:        "Payment Type",
			Description: "Payment type of a single transaction",
			EntityType:  "transaction",
			DataType:    "string",
			CreatedAt:   now,
		},
	}
}

// EnsureMetadata seeds any missing metadata rows; safe to run every boot
func (u *FeatureStoreUsecase) EnsureMetadata(ctx context.Context) error {
	return u.featureRepo.EnsureMetadata(ctx, DefaultMetadata(u.now().UTC()))
}

// ListMetadata lists the registered feature metadata
func (u *FeatureStoreUsecase) ListMetadata(ctx context.Context) ([]*entities.FeatureMetadata, error) {
	items, err := u.featureRepo.ListMetadata(ctx)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	return items, nil
}

// parseEntityID converts the wire entity id to a warehouse row id
func parseEntityID(entityID string) (uint, error) {
	id, err := strconv.ParseUint(entityID, 10, 64)
	if err != nil {
		return 0, domainerrors.BadRequest(fmt.Sprintf("invalid entity id %q", entityID))
	}
	return uint(id), nil
}

// Compute derives the feature value from the entity store. A missing
// referenced entity yields a nil value, not an error.
func (u *FeatureStoreUsecase) Compute(ctx context.Context, featureType entities.FeatureType, entityID string) (interface{}, error) {
	id, err := parseEntityID(entityID)
	if err != nil {
		return nil, err
	}

	switch featureType {
	case entities.FeatureUserPolicyTimeOfPurchase:
		latest, err := u.paymentRepo.LatestSuccessTimeForUser(ctx, id)
		if err != nil {
			return nil, err
		}
		if !latest.Valid {
			return nil, nil
		}
		return latest.Time, nil

	case entities.FeatureQuoteCreationToBindingTime:
		quote, err := u.quoteRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return nil, nil
			}
			return nil, err
		}
		if !quote.Bound() {
			return nil, nil
		}
		// whole seconds; sub-second remainder is dropped
		return int64(quote.BindTime.Time.Sub(quote.CreateTime).Seconds()), nil

	case entities.FeatureUserFailedTransactionCount:
		count, err := u.paymentRepo.CountFailedForUser(ctx, id)
		if err != nil {
			return nil, err
		}
		return count, nil

	case entities.FeaturePaymentType:
		payment, err := u.paymentRepo.GetByID(ctx, id)
		if err != nil {
			if errors.Is(err, domainerrors.ErrNotFound) {
				return nil, nil
			}
			return nil, err
		}
		return string(payment.PaymentType), nil
	}

	return nil, fmt.Errorf("unknown feature type %q", featureType)
}

// serializeValue renders a computed value for the cache column. Times are
// stored as RFC3339Nano, everything else as JSON; nil maps to NULL.
func serializeValue(value interface{}) (null.String, error) {
	if value == nil {
		return null.String{}, nil
	}
	if t, ok := value.(time.Time); ok {
		return null.StringFrom(t.Format(time.RFC3339Nano)), nil
	}
	b, err := json.Marshal(value)
	if err != nil {
		return null.String{}, err
	}
	return null.StringFrom(string(b)), nil
}

// deserializeValue parses a cached column back to its wire form
func deserializeValue(featureType entities.FeatureType, raw string) (interface{}, error) {
	if featureType == entities.FeatureUserPolicyTimeOfPurchase {
		t, err := time.Parse(time.RFC3339Nano, raw)
		if err != nil {
			return nil, err
		}
		return t, nil
	}
	var v interface{}
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		return nil, err
	}
	return v, nil
}

// Store writes a feature value to the cache. Nil values are stored as
// NULL rows so the computation timestamp is still recorded.
func (u *FeatureStoreUsecase) Store(ctx context.Context, featureType entities.FeatureType, entityID string, value interface{}) error {
	serialized, err := serializeValue(value)
	if err != nil {
		return err
	}
	return u.featureRepo.Upsert(ctx, &entities.Feature{
		FeatureType:  featureType,
		EntityID:     entityID,
		FeatureValue: serialized,
		ComputedAt:   u.now().UTC(),
	})
}

// GetStored reads a cached feature value. A missing row and a cached NULL
// both report a miss.
func (u *FeatureStoreUsecase) GetStored(ctx context.Context, featureType entities.FeatureType, entityID string) (interface{}, bool, error) {
	feature, err := u.featureRepo.Get(ctx, featureType, entityID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	if !feature.FeatureValue.Valid {
		return nil, false, nil
	}
	value, err := deserializeValue(featureType, feature.FeatureValue.String)
	if err != nil {
		return nil, false, err
	}
	return value, true, nil
}

// GetOrCompute returns the cached value when present, otherwise computes
// and caches it. force skips the cache read. The second return reports
// whether the value came from the cache.
func (u *FeatureStoreUsecase) GetOrCompute(ctx context.Context, featureType entities.FeatureType, entityID string, force bool) (interface{}, bool, error) {
	if !force {
		value, hit, err := u.GetStored(ctx, featureType, entityID)
		if err != nil {
			return nil, false, err
		}
		if hit {
			return value, true, nil
		}
	}

	value, err := u.Compute(ctx, featureType, entityID)
	if err != nil {
		return nil, false, err
	}
	if err := u.Store(ctx, featureType, entityID, value); err != nil {
		return nil, false, err
	}
	return value, false, nil
}

// ComputeOne resolves one feature request. The failure is reported both
// in-band on the result and as the returned error, classified as a 400
// for a malformed request and a 500 for anything else.
func (u *FeatureStoreUsecase) ComputeOne(ctx context.Context, req *entities.FeatureRequest, force bool) (*entities.FeatureResult, error) {
	result := &entities.FeatureResult{
		FeatureType: req.FeatureType,
		EntityID:    string(req.EntityID),
	}

	featureType, ok := entities.ParseFeatureType(req.FeatureType)
	if !ok {
		result.Error = fmt.Sprintf("unknown feature type %q", req.FeatureType)
		return result, domainerrors.BadRequest(result.Error)
	}

	value, _, err := u.GetOrCompute(ctx, featureType, string(req.EntityID), force)
	if err != nil {
		result.Error = err.Error()
		var appErr *domainerrors.AppError
		if !errors.As(err, &appErr) {
			err = domainerrors.Internal(err)
		}
		return result, err
	}
	result.FeatureValue = wireValue(value)
	result.Success = true
	return result, nil
}

// BatchCompute resolves requests in order; one failed item does not stop
// the rest. Failures stay in-band.
func (u *FeatureStoreUsecase) BatchCompute(ctx context.Context, reqs []*entities.FeatureRequest, force bool) []*entities.FeatureResult {
	results := make([]*entities.FeatureResult, 0, len(reqs))
	for _, req := range reqs {
		result, _ := u.ComputeOne(ctx, req, force)
		results = append(results, result)
	}
	return results
}

// ExtractAll recomputes every feature for every entity in the warehouse.
// Per-entity failures are logged and counted as skips.
func (u *FeatureStoreUsecase) ExtractAll(ctx context.Context) (*entities.ExtractCounts, error) {
	counts := &entities.ExtractCounts{}

	users, _, err := u.userRepo.List(ctx, 0, 0)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	for _, user := range users {
		entityID := strconv.FormatUint(uint64(user.ID), 10)
		if u.computeAndStore(ctx, entities.FeatureUserPolicyTimeOfPurchase, entityID) {
			counts.UserPolicyTimeOfPurchase++
		}
		if u.computeAndStore(ctx, entities.FeatureUserFailedTransactionCount, entityID) {
			counts.UserFailedTransactionCount++
		}
	}

	quotes, _, err := u.quoteRepo.List(ctx, 0, 0)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	for _, quote := range quotes {
		entityID := strconv.FormatUint(uint64(quote.ID), 10)
		if u.computeAndStore(ctx, entities.FeatureQuoteCreationToBindingTime, entityID) {
			counts.QuoteCreationToBindingTime++
		}
	}

	payments, _, err := u.paymentRepo.List(ctx, 0, 0)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	for _, payment := range payments {
		entityID := strconv.FormatUint(uint64(payment.ID), 10)
		if u.computeAndStore(ctx, entities.FeaturePaymentType, entityID) {
			counts.PaymentType++
		}
	}

	return counts, nil
}

func (u *FeatureStoreUsecase) computeAndStore(ctx context.Context, featureType entities.FeatureType, entityID string) bool {
	value, err := u.Compute(ctx, featureType, entityID)
	if err != nil {
		logger.Warn(ctx, "feature extraction skipped",
			zap.String("feature_type", string(featureType)), zap.String("entity_id", entityID), zap.Error(err))
		return false
	}
	if err := u.Store(ctx, featureType, entityID, value); err != nil {
		logger.Warn(ctx, "feature store write failed",
			zap.String("feature_type", string(featureType)), zap.String("entity_id", entityID), zap.Error(err))
		return false
	}
	return true
}

// wireValue makes a value JSON friendly for the response body
func wireValue(value interface{}) interface{} {
	if t, ok := value.(time.Time); ok {
		return t.Format(time.RFC3339Nano)
	}
	return value
}
