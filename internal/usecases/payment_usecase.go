package usecases

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"insure-dw.backend/internal/domain/entities"
	domainerrors "insure-dw.backend/internal/domain/errors"
	"insure-dw.backend/internal/domain/repositories"
)

// Authorizer decides whether a simulated payment attempt succeeds
type Authorizer interface {
	Authorize(paymentType entities.PaymentType) bool
}

// RandomAuthorizer approves payments with a fixed per-type probability
type RandomAuthorizer struct {
	rng *rand.Rand
}

// NewRandomAuthorizer creates an authorizer seeded from the clock
func NewRandomAuthorizer() *RandomAuthorizer {
	return &RandomAuthorizer{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// successRates are the approval probabilities per payment type
var successRates = map[entities.PaymentType]float64{
	entities.PaymentTypeCredit:  0.85,
	entities.PaymentTypeDebit:   0.90,
	entities.PaymentTypePrepaid: 0.75,
}

// Authorize rolls against the configured rate for the type
func (a *RandomAuthorizer) Authorize(paymentType entities.PaymentType) bool {
	rate, ok := successRates[paymentType]
	if !ok {
		rate = 0.80
	}
	return a.rng.Float64() < rate
}

// PaymentUsecase handles payment transaction business logic
type PaymentUsecase struct {
	paymentRepo repositories.PaymentRepository
	policyRepo  repositories.PolicyRepository
	authorizer  Authorizer

	now func() time.Time
}

// NewPaymentUsecase creates a new payment usecase
func NewPaymentUsecase(
	paymentRepo repositories.PaymentRepository,
	policyRepo repositories.PolicyRepository,
	authorizer Authorizer,
) *PaymentUsecase {
	return &PaymentUsecase{
		paymentRepo: paymentRepo,
		policyRepo:  policyRepo,
		authorizer:  authorizer,
		now:         time.Now,
	}
}

// CreatePayment records a simulated payment attempt against a policy.
// The payment type code is case sensitive; the authorizer decides the
// outcome and the transaction is stored either way.
func (u *PaymentUsecase) CreatePayment(ctx context.Context, input *entities.CreatePaymentInput) (*entities.PaymentTransaction, error) {
	if _, err := u.policyRepo.GetByID(ctx, input.PolicyID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(fmt.Sprintf("policy %d not found", input.PolicyID))
		}
		return nil, domainerrors.Internal(err)
	}

	paymentType, ok := entities.ParsePaymentType(input.PaymentType)
	if !ok {
		return nil, domainerrors.BadRequest(fmt.Sprintf("invalid payment type %q, expected CREDIT, DEBIT or PREPAID", input.PaymentType))
	}

	payment := &entities.PaymentTransaction{
		Time:        u.now().UTC(),
		PaymentType: paymentType,
		PolicyID:    input.PolicyID,
		Success:     u.authorizer.Authorize(paymentType),
	}
	if err := u.paymentRepo.Create(ctx, payment); err != nil {
		return nil, domainerrors.Internal(err)
	}
	return payment, nil
}

// GetPayment gets a payment transaction by ID
func (u *PaymentUsecase) GetPayment(ctx context.Context, id uint) (*entities.PaymentTransaction, error) {
	payment, err := u.paymentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(fmt.Sprintf("payment transaction %d not found", id))
		}
		return nil, domainerrors.Internal(err)
	}
	return payment, nil
}

// ListPayments lists payment transactions with pagination
func (u *PaymentUsecase) ListPayments(ctx context.Context, limit, offset int) ([]*entities.PaymentTransaction, int64, error) {
	payments, total, err := u.paymentRepo.List(ctx, limit, offset)
	if err != nil {
		return nil, 0, domainerrors.Internal(err)
	}
	return payments, total, nil
}

// ListPolicyPayments lists all transactions against one policy
func (u *PaymentUsecase) ListPolicyPayments(ctx context.Context, policyID uint) ([]*entities.PaymentTransaction, error) {
	if _, err := u.policyRepo.GetByID(ctx, policyID); err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.NotFound(fmt.Sprintf("policy %d not found", policyID))
		}
		return nil, domainerrors.Internal(err)
	}
	payments, err := u.paymentRepo.ListByPolicy(ctx, policyID)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	return payments, nil
}

// ListPaymentsBySuccess lists transactions filtered by outcome
func (u *PaymentUsecase) ListPaymentsBySuccess(ctx context.Context, success bool) ([]*entities.PaymentTransaction, error) {
	payments, err := u.paymentRepo.ListBySuccess(ctx, success)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	return payments, nil
}

// ListPaymentsByType lists transactions of one payment type. The code is
// the case sensitive input form, e.g. CREDIT.
func (u *PaymentUsecase) ListPaymentsByType(ctx context.Context, code string) ([]*entities.PaymentTransaction, error) {
	paymentType, ok := entities.ParsePaymentType(code)
	if !ok {
		return nil, domainerrors.BadRequest(fmt.Sprintf("invalid payment type %q, expected CREDIT, DEBIT or PREPAID", code))
	}
	payments, err := u.paymentRepo.ListByType(ctx, paymentType)
	if err != nil {
		return nil, domainerrors.Internal(err)
	}
	return payments, nil
}
