package handlers

import (
	"net/http"

	"court-proforma/internal/analysis"
	"court-proforma/internal/api/models"
	"court-proforma/internal/engine"

	"github.com/gin-gonic/gin"
	lru "github.com/hashicorp/golang-lru"
)

const cacheSize = 128

type cachedCompute struct {
	result   *engine.Result
	warnings []string
}

// ComputeHandler serves the weekly/annual orchestrator. Results are cached by
// the canonical config hash since the pipeline is deterministic.
type ComputeHandler struct {
	cache *lru.Cache
}

// NewComputeHandler creates a compute handler with an LRU result cache.
func NewComputeHandler() *ComputeHandler {
	cache, _ := lru.New(cacheSize)
	return &ComputeHandler{cache: cache}
}

// Run handles POST /api/v1/compute.
func (h *ComputeHandler) Run(c *gin.Context) {
	var req models.ComputeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	cfg, warnings, err := buildConfig(req.Config)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_CONFIG", Message: err.Error()},
		})
		return
	}

	key := configKey(cfg)
	if v, ok := h.cache.Get(key); ok {
		cached := v.(cachedCompute)
		c.JSON(http.StatusOK, h.buildResponse(cached.result, cached.warnings, true, req.Options))
		return
	}

	result, err := engine.Compute(cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "COMPUTE_ERROR", Message: err.Error()},
		})
		return
	}

	h.cache.Add(key, cachedCompute{result: result, warnings: warnings})
	c.JSON(http.StatusOK, h.buildResponse(result, warnings, false, req.Options))
}

func (h *ComputeHandler) buildResponse(result *engine.Result, warnings []string, cached bool, opts models.ComputeOptions) models.ComputeResponse {
	out := *result
	if !opts.IncludeDebug {
		out.CourtDebug = engine.CourtRevenueDebug{}
		out.LeagueDebug = engine.LeagueRevenueDebug{}
	}
	return models.ComputeResponse{
		Status:   "completed",
		Cached:   cached,
		Result:   &out,
		Warnings: warnings,
	}
}

// Compare handles POST /api/v1/scenarios/compare: the orchestrator is run for
// each named variation overlaid on the base config. Invalid variations are
// skipped rather than failing the whole comparison.
func (h *ComputeHandler) Compare(c *gin.Context) {
	var req models.CompareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	comparison := make([]models.ComparisonResult, 0, len(req.Variations))
	potentials := make([]analysis.ScenarioPotential, 0, len(req.Variations))
	for _, v := range req.Variations {
		cfg, warnings, err := buildConfig(req.BaseConfig, v.Config)
		if err != nil {
			continue
		}
		result, err := engine.Compute(cfg)
		if err != nil {
			continue
		}
		comparison = append(comparison, models.ComparisonResult{
			Name:            v.Name,
			Annual:          result.Annual,
			Density:         result.Density,
			UtilizedCHYear:  result.UtilizedCHYear,
			AvailableCHYear: result.AvailableCHYear,
			Warnings:        append(warnings, result.Warnings...),
		})
		potentials = append(potentials, analysis.Potential(v.Name, result))
	}

	c.JSON(http.StatusOK, models.CompareResponse{
		Comparison: comparison,
		Ranking:    analysis.RankByRevPACH(potentials),
	})
}
