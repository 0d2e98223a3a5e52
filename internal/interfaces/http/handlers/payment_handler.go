package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"insure-dw.backend/internal/domain/entities"
	domainerrors "insure-dw.backend/internal/domain/errors"
	"insure-dw.backend/internal/interfaces/http/response"
	"insure-dw.backend/pkg/utils"
)

type PaymentService interface {
	CreatePayment(ctx context.Context, input *entities.CreatePaymentInput) (*entities.PaymentTransaction, error)
	GetPayment(ctx context.Context, id uint) (*entities.PaymentTransaction, error)
	ListPayments(ctx context.Context, limit, offset int) ([]*entities.PaymentTransaction, int64, error)
	ListPaymentsBySuccess(ctx context.Context, success bool) ([]*entities.PaymentTransaction, error)
	ListPaymentsByType(ctx context.Context, code string) ([]*entities.PaymentTransaction, error)
}

// PaymentHandler handles payment transaction endpoints
type PaymentHandler struct {
	paymentUsecase PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUsecase PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentUsecase: paymentUsecase}
}

// CreatePayment records a simulated payment attempt
// POST /api/v1/payments
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var input entities.CreatePaymentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	payment, err := h.paymentUsecase.CreatePayment(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, payment)
}

// GetPayment gets a payment transaction by ID
// GET /api/v1/payments/:id
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	payment, err := h.paymentUsecase.GetPayment(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, payment)
}

// ListPayments lists payment transactions. ?success= and ?type= filter
// the full set; otherwise the listing is paginated.
// GET /api/v1/payments
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	if raw, ok := c.GetQuery("success"); ok {
		success, err := strconv.ParseBool(raw)
		if err != nil {
			response.Error(c, domainerrors.BadRequest("invalid success filter"))
			return
		}
		payments, err := h.paymentUsecase.ListPaymentsBySuccess(c.Request.Context(), success)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"payments": payments})
		return
	}

	if code, ok := c.GetQuery("type"); ok {
		if !utils.ValidatePaymentTypeCode(code) {
			response.Error(c, domainerrors.BadRequest(fmt.Sprintf("invalid type filter %q, expected CREDIT, DEBIT or PREPAID", code)))
			return
		}
		payments, err := h.paymentUsecase.ListPaymentsByType(c.Request.Context(), code)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.Success(c, http.StatusOK, gin.H{"payments": payments})
		return
	}

	params := pagination(c)
	payments, total, err := h.paymentUsecase.ListPayments(c.Request.Context(), params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"payments":   payments,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}
