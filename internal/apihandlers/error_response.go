package apihandlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"querykeys/internal/models"
)

// NoKeywordsMessage is the fixed message returned when a query yields nothing.
const NoKeywordsMessage = "No valid keywords extracted"

// JSONError sends a structured error response
// Example: { "status": "error", "message": "No valid keywords extracted" }
func JSONError(ctx *gin.Context, status int, msg string) {
	ctx.JSON(status, models.StatusMessage{Status: models.StatusError, Message: msg})
}

// Convenience wrappers
func BadRequest(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusBadRequest, msg)
}

func NoKeywords(ctx *gin.Context) {
	BadRequest(ctx, NoKeywordsMessage)
}

func Internal(ctx *gin.Context, msg string) {
	JSONError(ctx, http.StatusInternalServerError, msg)
}
