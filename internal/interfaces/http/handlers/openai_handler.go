package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"insure-dw.backend/internal/domain/entities"
	domainerrors "insure-dw.backend/internal/domain/errors"
	"insure-dw.backend/internal/interfaces/http/response"
)

type NLQueryService interface {
	SetAPIKey(ctx context.Context, key string) error
	HasAPIKey(ctx context.Context) (bool, error)
	ClearAPIKey(ctx context.Context) error
	Schema(ctx context.Context) (string, error)
	Convert(ctx context.Context, question string) (*entities.ConvertedQuery, error)
	Execute(ctx context.Context, sql string, limit int) (*entities.SQLResult, error)
	Query(ctx context.Context, input *entities.NLQueryInput) (*entities.ConvertedQuery, *entities.SQLResult, error)
}

// OpenAIHandler handles the natural language query gateway endpoints
type OpenAIHandler struct {
	nlQueryUsecase NLQueryService
}

// NewOpenAIHandler creates a new gateway handler
func NewOpenAIHandler(nlQueryUsecase NLQueryService) *OpenAIHandler {
	return &OpenAIHandler{nlQueryUsecase: nlQueryUsecase}
}

// SetAPIKey validates and stores the OpenAI API key
// POST /api/v1/openai/set-key
func (h *OpenAIHandler) SetAPIKey(c *gin.Context) {
	var body struct {
		APIKey string `json:"api_key" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.nlQueryUsecase.SetAPIKey(c.Request.Context(), body.APIKey); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "api key configured"})
}

// KeyStatus reports whether an API key is configured
// GET /api/v1/openai/status
func (h *OpenAIHandler) KeyStatus(c *gin.Context) {
	configured, err := h.nlQueryUsecase.HasAPIKey(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"configured": configured})
}

// DeleteAPIKey removes the stored API key
// DELETE /api/v1/openai/key
func (h *OpenAIHandler) DeleteAPIKey(c *gin.Context) {
	if err := h.nlQueryUsecase.ClearAPIKey(c.Request.Context()); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "api key removed"})
}

// Schema returns the queryable table layout as plain text
// GET /api/v1/openai/schema
func (h *OpenAIHandler) Schema(c *gin.Context) {
	schema, err := h.nlQueryUsecase.Schema(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"schema": schema})
}

// ConvertQuery translates a natural language question to SQL without
// executing it
// POST /api/v1/openai/convert
func (h *OpenAIHandler) ConvertQuery(c *gin.Context) {
	var input entities.NLQueryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	converted, err := h.nlQueryUsecase.Convert(c.Request.Context(), input.Query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, converted)
}

// NaturalQuery converts a natural language question and runs the result
// POST /api/v1/openai/query
func (h *OpenAIHandler) NaturalQuery(c *gin.Context) {
	var input entities.NLQueryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	converted, result, err := h.nlQueryUsecase.Query(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"sql":         converted.SQL,
		"explanation": converted.Explanation,
		"result":      result,
	})
}

// ExecuteSQL vets and runs a SQL statement directly
// POST /api/v1/openai/sql
func (h *OpenAIHandler) ExecuteSQL(c *gin.Context) {
	var input entities.SQLQueryInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.nlQueryUsecase.Execute(c.Request.Context(), input.SQL, input.Limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}
