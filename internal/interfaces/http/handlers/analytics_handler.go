package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"insure-dw.backend/internal/domain/entities"
	"insure-dw.backend/internal/interfaces/http/response"
)

type AnalyticsService interface {
	GeneralStats(ctx context.Context) (*entities.GeneralStats, error)
	PaymentTypeStats(ctx context.Context) (map[string]*entities.PaymentTypeStats, error)
	UserStats(ctx context.Context) (*entities.UserStats, error)
	QuoteStats(ctx context.Context) (*entities.QuoteStats, error)
	PolicyStats(ctx context.Context) (*entities.PolicyStats, error)
}

// AnalyticsHandler handles aggregate reporting endpoints
type AnalyticsHandler struct {
	analyticsUsecase AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsUsecase AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsUsecase: analyticsUsecase}
}

// GeneralStats returns overall warehouse statistics
// GET /api/v1/analytics/stats
func (h *AnalyticsHandler) GeneralStats(c *gin.Context) {
	stats, err := h.analyticsUsecase.GeneralStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// PaymentTypeStats returns the per-type payment breakdown
// GET /api/v1/analytics/payment-stats
func (h *AnalyticsHandler) PaymentTypeStats(c *gin.Context) {
	stats, err := h.analyticsUsecase.PaymentTypeStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// UserStats returns user conversion statistics
// GET /api/v1/analytics/user-stats
func (h *AnalyticsHandler) UserStats(c *gin.Context) {
	stats, err := h.analyticsUsecase.UserStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// QuoteStats returns quote bind statistics
// GET /api/v1/analytics/quote-stats
func (h *AnalyticsHandler) QuoteStats(c *gin.Context) {
	stats, err := h.analyticsUsecase.QuoteStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}

// PolicyStats returns policy payment-adoption statistics
// GET /api/v1/analytics/policy-stats
func (h *AnalyticsHandler) PolicyStats(c *gin.Context) {
	stats, err := h.analyticsUsecase.PolicyStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, stats)
}
