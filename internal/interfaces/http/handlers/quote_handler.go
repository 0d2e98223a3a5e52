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

type QuoteService interface {
	CreateQuote(ctx context.Context, input *entities.CreateQuoteInput) (*entities.Quote, error)
	GetQuote(ctx context.Context, id uint) (*entities.Quote, error)
	ListQuotes(ctx context.Context, limit, offset int) ([]*entities.Quote, int64, error)
	ListBindableQuotes(ctx context.Context) ([]*entities.Quote, error)
	BindQuote(ctx context.Context, id uint) (*entities.Quote, error)
}

// QuoteHandler handles quote endpoints
type QuoteHandler struct {
	quoteUsecase QuoteService
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteUsecase QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteUsecase: quoteUsecase}
}

// CreateQuote creates a new quote
// POST /api/v1/quotes
func (h *QuoteHandler) CreateQuote(c *gin.Context) {
	var input entities.CreateQuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	quote, err := h.quoteUsecase.CreateQuote(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusCreated, quote)
}

// GetQuote gets a quote by ID
// GET /api/v1/quotes/:id
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	quote, err := h.quoteUsecase.GetQuote(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, quote)
}

// ListQuotes lists quotes with pagination
// GET /api/v1/quotes
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	params := pagination(c)

	quotes, total, err := h.quoteUsecase.ListQuotes(c.Request.Context(), params.Limit, params.CalculateOffset())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"quotes":     quotes,
		"pagination": utils.CalculateMeta(total, params.Page, params.Limit),
	})
}

// ListBindableQuotes lists quotes open for binding
// GET /api/v1/quotes/bindable
func (h *QuoteHandler) ListBindableQuotes(c *gin.Context) {
	quotes, err := h.quoteUsecase.ListBindableQuotes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"quotes": quotes})
}

// BindQuote binds a quote
// PATCH /api/v1/quotes/:id
func (h *QuoteHandler) BindQuote(c *gin.Context) {
	id, err := parseID(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	quote, err := h.quoteUsecase.BindQuote(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, quote)
}
