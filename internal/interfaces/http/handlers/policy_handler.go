package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"insure-dw.backend/internal/domain/entities"
	domainerrors "insure-dw.backend/internal/domain/errors"
	"insure-dw.backend/internal/interfaces/http/response"
	"insure-dw.backend/pkg/utils"
)

type PolicyService interface {
	CreatePolicy(ctx context.Context, input *entities.CreatePolicyInput) (*entities.Policy, error)
	GetPolicy(ctx context.Context, id uint) (*entities.Policy, error)
	ListPolicies(ctx context.Context, limit, offset int) ([]*entities.Policy, int64, error)
	DeletePolicy(ctx context.Context, id uint) error
}

type PolicyPaymentService interface {
	ListPolicyPayments(ctx context.Context, policyID uint) ([]*entities.PaymentTransaction, error)
}

// PolicyHandler handles policy endpoints
type PolicyHandler struct {
	policyUsecase  PolicyService
	paymentUsecase PolicyPaymentService
}

// NewPolicyHandler creates a new policy handler
func NewPolicyHandler(policyUsecase PolicyService, paymentUsecase PolicyPaymentService) *PolicyHandler {
	return &PolicyHandler{policyUsecase: policyUsecase, paymentUsecase: paymentUsecase}
}

// CreatePolicy creates a policy from a bound quote
// POST /api/v1/policies
func (h *PolicyHandler) CreatePolicy(c *gin.Context) {
	var input entities.CreatePolicyInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	policy, err := h.policyUsecase.CreatePolicy(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, policy)
}

// GetPolicy gets a policy by ID
// GET /api/v1/policies/:id
func (h *PolicyHandler) GetPolicy(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	policy, err := h.policyUsecase.GetPolicy(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, policy)
}

// ListPolicies lists policies with pagination
// GET /api/v1/policies
func (h *PolicyHandler) ListPolicies(c *gin.Context) {
	params := pagination(c)

	policies, total, err := h.policyUsecase.ListPolicies(c.Request.Context(), params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"policies":   policies,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// DeletePolicy removes a policy
// DELETE /api/v1/policies/:id
func (h *PolicyHandler) DeletePolicy(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.policyUsecase.DeletePolicy(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "policy deleted"})
}

// ListPolicyPayments lists the transactions against one policy
// GET /api/v1/policies/:id/payments
func (h *PolicyHandler) ListPolicyPayments(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	payments, err := h.paymentUsecase.ListPolicyPayments(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"payments": payments})
}
