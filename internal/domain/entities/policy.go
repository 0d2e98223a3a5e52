package entities

// Policy represents an active insurance contract created from a bound quote
type Policy struct {
	ID      uint `json:"id"`
	UserID  uint `json:"user_id"`
	QuoteID uint `json:"quote_id"`
}

// CreatePolicyInput represents input for creating a policy
type CreatePolicyInput struct {
	UserID  uint `json:"user_id" binding:"required"`
	QuoteID uint `json:"quote_id" binding:"required"`
}
