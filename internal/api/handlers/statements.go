package handlers

import (
	"net/http"

	"court-proforma/internal/api/models"
	"court-proforma/internal/projection"
	"court-proforma/internal/statements"

	"github.com/gin-gonic/gin"
)

// StatementsHandler serves the P&L and balance-sheet builder.
type StatementsHandler struct{}

// NewStatementsHandler creates a statements handler.
func NewStatementsHandler() *StatementsHandler {
	return &StatementsHandler{}
}

// Run handles POST /api/v1/statements.
func (h *StatementsHandler) Run(c *gin.Context) {
	var req models.StatementsRequest
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

	// statements.Build panics on internal-consistency failures; the recovery
	// middleware turns that into a 500.
	stmts := statements.Build(cfg, proj)

	c.JSON(http.StatusOK, models.StatementsResponse{
		Status:     "completed",
		Statements: stmts,
		Warnings:   warnings,
	})
}
