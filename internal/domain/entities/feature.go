package entities

import (
	"encoding/json"
	"time"

	"github.com/volatiletech/null/v8"
)

// FeatureType identifies a derived value computed from the entity store
type FeatureType string

const (
	FeatureUserPolicyTimeOfPurchase   FeatureType = "user_policy_time_of_purchase"
	FeatureQuoteCreationToBindingTime FeatureType = "quote_creation_to_binding_time"
	FeatureUserFailedTransactionCount FeatureType = "user_failed_transaction_count"
	FeaturePaymentType                FeatureType = "payment_type"
)

// ParseFeatureType maps a wire string to a feature type
func ParseFeatureType(s string) (FeatureType, bool) {
	switch FeatureType(s) {
	case FeatureUserPolicyTimeOfPurchase,
		FeatureQuoteCreationToBindingTime,
		FeatureUserFailedTransactionCount,
		FeaturePaymentType:
		return FeatureType(s), true
	}
	return "", false
}

// Feature is a cache row in the feature store, keyed by
// (feature type, entity id). At most one row exists per key.
type Feature struct {
	ID           uint        `json:"id"`
	FeatureType  FeatureType `json:"feature_type"`
	EntityID     string      `json:"entity_id"`
	FeatureValue null.String `json:"feature_value"`
	ComputedAt   time.Time   `json:"computed_at"`
}

// FeatureMetadata describes one feature type for the discovery API
type FeatureMetadata struct {
	ID          uint        `json:"-"`
	FeatureType FeatureType `json:"feature_type"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	EntityType  string      `json:"entity_type"`
	DataType    string      `json:"data_type"`
	CreatedAt   time.Time   `json:"created_at"`
}

// EntityID accepts both numeric and string ids in request payloads
type EntityID string

func (e *EntityID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*e = EntityID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*e = EntityID(n.String())
	return nil
}

// FeatureRequest is one item of a single or batch feature request
type FeatureRequest struct {
	FeatureType string   `json:"feature_type"`
	EntityID    EntityID `json:"entity_id"`
}

// FeatureResult is the per-item outcome of a feature computation.
// Failures are reported in-band so one bad item cannot abort a batch.
type FeatureResult struct {
	FeatureType  string      `json:"feature_type"`
	EntityID     string      `json:"entity_id"`
	FeatureValue interface{} `json:"feature_value"`
	Success      bool        `json:"success"`
	Error        string      `json:"error,omitempty"`
}

// ExtractCounts reports how many entities were successfully processed
// per feature type during a bulk extraction run
type ExtractCounts struct {
	UserPolicyTimeOfPurchase   int `json:"user_policy_time_of_purchase"`
	QuoteCreationToBindingTime int `json:"quote_creation_to_binding_time"`
	UserFailedTransactionCount int `json:"user_failed_transaction_count"`
	PaymentType                int `json:"payment_type"`
}
