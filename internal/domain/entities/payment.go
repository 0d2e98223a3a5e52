package entities

import "time"

// PaymentType is the stored display form of a payment type
type PaymentType string

const (
	PaymentTypeCredit  PaymentType = "Credit"
	PaymentTypeDebit   PaymentType = "Debit"
	PaymentTypePrepaid PaymentType = "Prepaid"
)

// paymentTypeCodes maps the accepted (case-sensitive) input codes to the
// stored display strings. This is an explicit table, not a case transform.
var paymentTypeCodes = map[string]PaymentType{
	"CREDIT":  PaymentTypeCredit,
	"DEBIT":   PaymentTypeDebit,
	"PREPAID": PaymentTypePrepaid,
}

// ParsePaymentType maps an input code such as "CREDIT" to its payment type
func ParsePaymentType(code string) (PaymentType, bool) {
	pt, ok := paymentTypeCodes[code]
	return pt, ok
}

// PaymentTypes lists all payment types in a stable order
func PaymentTypes() []PaymentType {
	return []PaymentType{PaymentTypeCredit, PaymentTypeDebit, PaymentTypePrepaid}
}

// PaymentTransaction represents a simulated payment attempt against a policy
type PaymentTransaction struct {
	ID          uint        `json:"id"`
	Time        time.Time   `json:"time"`
	PaymentType PaymentType `json:"payment_type"`
	PolicyID    uint        `json:"policy_id"`
	Success     bool        `json:"success"`
}

// CreatePaymentInput represents input for creating a payment transaction
type CreatePaymentInput struct {
	PolicyID    uint   `json:"policy_id" binding:"required"`
	PaymentType string `json:"payment_type" binding:"required"`
}
