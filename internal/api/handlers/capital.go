package handlers

import (
	"net/http"

	"court-proforma/internal/api/models"
	"court-proforma/internal/finance"

	"github.com/gin-gonic/gin"
)

// CapitalHandler serves the sources & uses table with the solved loan.
type CapitalHandler struct{}

// NewCapitalHandler creates a capital handler.
func NewCapitalHandler() *CapitalHandler {
	return &CapitalHandler{}
}

// Run handles POST /api/v1/capital.
func (h *CapitalHandler) Run(c *gin.Context) {
	var req models.CapitalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_REQUEST", Message: err.Error()},
		})
		return
	}

	cfg, _, err := buildConfig(req.Config)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{Code: "INVALID_CONFIG", Message: err.Error()},
		})
		return
	}

	c.JSON(http.StatusOK, models.CapitalResponse{
		Status:  "completed",
		Capital: finance.BuildCapitalStructure(cfg.Finance),
	})
}
