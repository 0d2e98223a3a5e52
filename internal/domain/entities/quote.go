package entities

import (
	"time"

	"github.com/volatiletech/null/v8"
)

// Quote represents a price offer made to a user. Binding is a one-way
// transition recorded as BindTime; a quote binds at most once, and only
// when Bindable is true.
type Quote struct {
	ID         uint      `json:"id"`
	UserID     uint      `json:"user_id"`
	CreateTime time.Time `json:"create_time"`
	BindTime   null.Time `json:"bind_time"`
	Bindable   bool      `json:"bindable"`
}

// Bound reports whether the quote has been bound
func (q *Quote) Bound() bool {
	return q.BindTime.Valid
}

// CreateQuoteInput represents input for creating a quote.
// Bindable defaults to true when omitted.
type CreateQuoteInput struct {
	UserID   uint  `json:"user_id" binding:"required"`
	Bindable *bool `json:"bindable"`
}
