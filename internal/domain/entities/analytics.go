package entities

// GeneralStats holds overall entity counts and the payment success rate
type GeneralStats struct {
	TotalUsers         int64   `json:"total_users"`
	TotalQuotes        int64   `json:"total_quotes"`
	TotalPolicies      int64   `json:"total_policies"`
	TotalPayments      int64   `json:"total_payments"`
	SuccessfulPayments int64   `json:"successful_payments"`
	PaymentSuccessRate float64 `json:"payment_success_rate"`
}

// PaymentTypeStats holds the per-type payment breakdown
type PaymentTypeStats struct {
	Total       int64   `json:"total"`
	Successful  int64   `json:"successful"`
	Failed      int64   `json:"failed"`
	SuccessRate float64 `json:"success_rate"`
}

// UserStats holds user conversion statistics
type UserStats struct {
	TotalUsers        int64   `json:"total_users"`
	UsersWithQuotes   int64   `json:"users_with_quotes"`
	UsersWithPolicies int64   `json:"users_with_policies"`
	UsersWithoutQuote int64   `json:"users_without_quotes"`
	ConversionRate    float64 `json:"conversion_rate"`
}

// QuoteStats holds quote bind statistics
type QuoteStats struct {
	TotalQuotes    int64   `json:"total_quotes"`
	BoundQuotes    int64   `json:"bound_quotes"`
	UnboundQuotes  int64   `json:"unbound_quotes"`
	BindableQuotes int64   `json:"bindable_quotes"`
	BindRate       float64 `json:"bind_rate"`
}

// PolicyStats holds policy payment-adoption statistics
type PolicyStats struct {
	TotalPolicies           int64   `json:"total_policies"`
	PoliciesWithPayments    int64   `json:"policies_with_payments"`
	PoliciesWithoutPayments int64   `json:"policies_without_payments"`
	PaymentAdoptionRate     float64 `json:"payment_adoption_rate"`
}
