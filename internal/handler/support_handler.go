package handler

import (
	"errors"
	"net/http"

	"culturebridge/internal/service"
	"culturebridge/pkg/log"

	"github.com/gin-gonic/gin"
)

// SupportHandler serves the support center search endpoints.
type SupportHandler struct {
	supportService service.SupportService
}

// NewSupportHandler creates a SupportHandler.
func NewSupportHandler(supportService service.SupportService) *SupportHandler {
	return &SupportHandler{supportService: supportService}
}

// Search ranks support centers against a conversation.
func (h *SupportHandler) Search(c *gin.Context) {
	var req service.SupportSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "messages are required"})
		return
	}

	result, err := h.supportService.Search(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrNotConfigured) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "support search is not configured"})
			return
		}
		log.Errorf("[SupportHandler] Search failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "support search failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// EmbedCenters rebuilds the support center collection from the bundled
// fixtures. Admin only.
func (h *SupportHandler) EmbedCenters(c *gin.Context) {
	result, err := h.supportService.EmbedCenters(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNotConfigured) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "support search is not configured"})
			return
		}
		log.Errorf("[SupportHandler] Embedding centers failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to embed centers"})
		return
	}

	c.JSON(http.StatusOK, result)
}
