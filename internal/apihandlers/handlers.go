package apihandlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"querykeys/internal/app"
	"querykeys/internal/downstream"
	"querykeys/internal/models"
	"querykeys/pkg/categorizer"
)

type APIHandler struct {
	App *app.App
}

func NewAPIHandler(app *app.App) *APIHandler {
	return &APIHandler{App: app}
}

// NewRouter builds the gin engine with every API route registered.
func NewRouter(app *app.App) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery(), cors.Default(), RequestID())

	h := NewAPIHandler(app)

	router.POST("/process", h.ProcessHandler)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/process", h.ProcessHandler)
		v1.POST("/extract", h.ExtractHandler)
		v1.GET("/vocabulary", h.VocabularyHandler)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return router
}

// ProcessHandler extracts keywords from the posted query and forwards them to
// the search service. Downstream failures still answer 200 with status "error".
func (h *APIHandler) ProcessHandler(c *gin.Context) {
	req := parseProcessRequest(c)
	log.WithField("request_id", c.GetString(requestIDKey)).Debugf("Received process request: %+v", req)

	ctx := downstream.ContextWithRequestID(c.Request.Context(), c.GetString(requestIDKey))
	result, err := h.App.ProcessService.Process(ctx, req.Query)
	if err != nil {
		if errors.Is(err, models.ErrNoKeywords) {
			NoKeywords(c)
		} else {
			Internal(c, fmt.Sprintf("ProcessHandler: processing failed: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, models.ProcessResponse{
		Status:       result.Status,
		Data:         result.Keywords,
		NodeResponse: result.NodeResponse,
	})
}

// ExtractHandler runs extraction only; the search service is never called.
func (h *APIHandler) ExtractHandler(c *gin.Context) {
	req := parseProcessRequest(c)

	keywords, err := h.App.ProcessService.Extract(req.Query)
	if err != nil {
		if errors.Is(err, models.ErrNoKeywords) {
			NoKeywords(c)
		} else {
			Internal(c, fmt.Sprintf("ExtractHandler: extraction failed: %v", err))
		}
		return
	}

	c.JSON(http.StatusOK, models.ExtractResponse{
		Status: models.StatusSuccess,
		Data:   keywords,
	})
}

// VocabularyHandler lists the active words and stems per category.
func (h *APIHandler) VocabularyHandler(c *gin.Context) {
	stemmed := h.App.Extractor.Vocabulary()

	entries := make([]models.VocabularyEntry, 0, len(categorizer.Categories))
	for _, category := range categorizer.Categories {
		entries = append(entries, models.VocabularyEntry{
			Category: category,
			Words:    h.App.Vocabulary[category],
			Stems:    stemmed.Stems(category),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"items": entries,
	})
}

// parseProcessRequest reads the JSON body. A missing or malformed body is
// treated as an empty query, which then fails extraction.
func parseProcessRequest(c *gin.Context) models.ProcessRequest {
	var req models.ProcessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.WithField("request_id", c.GetString(requestIDKey)).Debugf("Unreadable request body, treating as empty query: %v", err)
		return models.ProcessRequest{}
	}
	return req
}
