package handlers_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"insure-dw.backend/internal/domain/entities"
	domainerrors "insure-dw.backend/internal/domain/errors"
	"insure-dw.backend/internal/interfaces/http/handlers"
)

type stubPaymentService struct {
	createFn        func(ctx context.Context, input *entities.CreatePaymentInput) (*entities.PaymentTransaction, error)
	getFn           func(ctx context.Context, id uint) (*entities.PaymentTransaction, error)
	listFn          func(ctx context.Context, limit, offset int) ([]*entities.PaymentTransaction, int64, error)
	listBySuccessFn func(ctx context.Context, success bool) ([]*entities.PaymentTransaction, error)
	listByTypeFn    func(ctx context.Context, code string) ([]*entities.PaymentTransaction, error)
}

func (s *stubPaymentService) CreatePayment(ctx context.Context, input *entities.CreatePaymentInput) (*entities.PaymentTransaction, error) {
	return s.createFn(ctx, input)
}

func (s *stubPaymentService) GetPayment(ctx context.Context, id uint) (*entities.PaymentTransaction, error) {
	return s.getFn(ctx, id)
}

func (s *stubPaymentService) ListPayments(ctx context.Context, limit, offset int) ([]*entities.PaymentTransaction, int64, error) {
	return s.listFn(ctx, limit, offset)
}

func (s *stubPaymentService) ListPaymentsBySuccess(ctx context.Context, success bool) ([]*entities.PaymentTransaction, error) {
	return s.listBySuccessFn(ctx, success)
}

func (s *stubPaymentService) ListPaymentsByType(ctx context.Context, code string) ([]*entities.PaymentTransaction, error) {
	return s.listByTypeFn(ctx, code)
}

func paymentRouter(svc *stubPaymentService) *gin.Engine {
	h := handlers.NewPaymentHandler(svc)
	r := gin.New()
	r.POST("/payments", h.CreatePayment)
	r.GET("/payments", h.ListPayments)
	r.GET("/payments/:id", h.GetPayment)
	return r
}

func TestPaymentHandler_CreatePayment(t *testing.T) {
	svc := &stubPaymentService{
		createFn: func(_ context.Context, input *entities.CreatePaymentInput) (*entities.PaymentTransaction, error) {
			require.Equal(t, "CREDIT", input.PaymentType)
			return &entities.PaymentTransaction{
				ID: 1, Time: time.Now(), PaymentType: entities.PaymentTypeCredit, PolicyID: input.PolicyID, Success: true,
			}, nil
		},
	}

	w := doRequest(t, paymentRouter(svc), http.MethodPost, "/payments", gin.H{"policy_id": 3, "payment_type": "CREDIT"})
	require.Equal(t, http.StatusCreated, w.Code)

	body := decodeBody(t, w)
	require.Equal(t, "Credit", body["payment_type"])
	require.Equal(t, true, body["success"])
}

func TestPaymentHandler_CreatePaymentInvalidType(t *testing.T) {
	svc := &stubPaymentService{
		createFn: func(_ context.Context, _ *entities.CreatePaymentInput) (*entities.PaymentTransaction, error) {
			return nil, domainerrors.BadRequest(`invalid payment type "credit", expected CREDIT, DEBIT or PREPAID`)
		},
	}
	w := doRequest(t, paymentRouter(svc), http.MethodPost, "/payments", gin.H{"policy_id": 3, "payment_type": "credit"})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentHandler_ListPaymentsFilters(t *testing.T) {
	svc := &stubPaymentService{
		listBySuccessFn: func(_ context.Context, success bool) ([]*entities.PaymentTransaction, error) {
			require.False(t, success)
			return []*entities.PaymentTransaction{{ID: 2, Success: false}}, nil
		},
		listByTypeFn: func(_ context.Context, code string) ([]*entities.PaymentTransaction, error) {
			require.Equal(t, "DEBIT", code)
			return []*entities.PaymentTransaction{{ID: 3, PaymentType: entities.PaymentTypeDebit}}, nil
		},
	}
	router := paymentRouter(svc)

	w := doRequest(t, router, http.MethodGet, "/payments?success=false", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, decodeBody(t, w)["payments"], 1)

	w = doRequest(t, router, http.MethodGet, "/payments?type=DEBIT", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, router, http.MethodGet, "/payments?success=maybe", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	w = doRequest(t, router, http.MethodGet, "/payments?type=CASH", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestPaymentHandler_ListPaymentsPaginated(t *testing.T) {
	svc := &stubPaymentService{
		listFn: func(_ context.Context, limit, offset int) ([]*entities.PaymentTransaction, int64, error) {
			require.Equal(t, 10, limit)
			require.Equal(t, 0, offset)
			return []*entities.PaymentTransaction{{ID: 1}}, 1, nil
		},
	}
	w := doRequest(t, paymentRouter(svc), http.MethodGet, "/payments?limit=10", nil)
	require.Equal(t, http.StatusOK, w.Code)
}
