package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorHandler recovers from panics and returns a JSON error envelope.
// The engine panics only on internal-consistency failures (EBITDA cross-check,
// balance-sheet drift), so a recovered panic is always an internal error.
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": gin.H{
				"code":    "INTERNAL_ERROR",
				"message": fmt.Sprintf("%v", recovered),
			},
		})
		c.Abort()
	})
}
