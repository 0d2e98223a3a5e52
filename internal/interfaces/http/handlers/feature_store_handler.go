package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"insure-dw.backend/internal/domain/entities"
	domainerrors "insure-dw.backend/internal/domain/errors"
	"insure-dw.backend/internal/interfaces/http/response"
)

type FeatureStoreService interface {
	ComputeOne(ctx context.Context, req *entities.FeatureRequest, force bool) (*entities.FeatureResult, error)
	BatchCompute(ctx context.Context, reqs []*entities.FeatureRequest, force bool) []*entities.FeatureResult
	ExtractAll(ctx context.Context) (*entities.ExtractCounts, error)
	ListMetadata(ctx context.Context) ([]*entities.FeatureMetadata, error)
}

// FeatureStoreHandler handles feature store endpoints
type FeatureStoreHandler struct {
	featureUsecase FeatureStoreService
}

// NewFeatureStoreHandler creates a new feature store handler
func NewFeatureStoreHandler(featureUsecase FeatureStoreService) *FeatureStoreHandler {
	return &FeatureStoreHandler{featureUsecase: featureUsecase}
}

// forceRecompute reads the ?force= flag
func forceRecompute(c *gin.Context) bool {
	force, _ := strconv.ParseBool(c.DefaultQuery("force", "false"))
	return force
}

// ComputeFeature resolves a single feature request
// POST /api/v1/features/inference
func (h *FeatureStoreHandler) ComputeFeature(c *gin.Context) {
	var req entities.FeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}
	if req.FeatureType == "" || req.EntityID == "" {
		response.Error(c, domainerrors.BadRequest("feature_type and entity_id are required"))
		return
	}

	result, err := h.featureUsecase.ComputeOne(c.Request.Context(), &req, forceRecompute(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}

// BatchComputeFeatures resolves a batch of feature requests. Per-item
// failures are reported in-band with a 200.
// POST /api/v1/features/training
func (h *FeatureStoreHandler) BatchComputeFeatures(c *gin.Context) {
	var body struct {
		Features []*entities.FeatureRequest `json:"features" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	results := h.featureUsecase.BatchCompute(c.Request.Context(), body.Features, forceRecompute(c))
	response.Success(c, http.StatusOK, gin.H{"results": results})
}

// ExtractAllFeatures recomputes every feature for every entity
// POST /api/v1/features/extract
func (h *FeatureStoreHandler) ExtractAllFeatures(c *gin.Context) {
	counts, err := h.featureUsecase.ExtractAll(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"message":          "feature extraction completed",
		"processed_counts": counts,
	})
}

// ListFeatureMetadata lists the registered feature metadata
// GET /api/v1/features/discovery
func (h *FeatureStoreHandler) ListFeatureMetadata(c *gin.Context) {
	items, err := h.featureUsecase.ListMetadata(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"features": items})
}
