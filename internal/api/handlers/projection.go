package handlers

import (
	"net/http"

	"court-proforma/internal/api/models"
	"court-proforma/internal/projection"

	"github.com/gin-gonic/gin"
)

// ProjectionHandler serves the 24-month growth projection.
type ProjectionHandler struct{}

// NewProjectionHandler creates a projection handler.
func NewProjectionHandler() *ProjectionHandler {
	return &ProjectionHandler{}
}

// Run handles POST /api/v1/projection.
func (h *ProjectionHandler) Run(c *gin.Context) {
	var req models.ProjectionRequest
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

	proj, err := projection.Build(cfg)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "PROJECTION_ERROR", Message: err.Error()},
		})
		return
	}

	resp := models.ProjectionResponse{
		Status:   "completed",
		Summary:  proj.Summary,
		Warnings: warnings,
	}
	if req.Options.IncludeMonths {
		resp.Months = proj.Months
	}
	c.JSON(http.StatusOK, resp)
}
