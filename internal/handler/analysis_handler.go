package handler

import (
	"net/http"

	"culturebridge/internal/model"
	"culturebridge/internal/service"
	"culturebridge/pkg/log"

	"github.com/gin-gonic/gin"
)

// AnalysisHandler serves the emotion analysis endpoints.
type AnalysisHandler struct {
	analysisService service.AnalysisService
}

// NewAnalysisHandler creates an AnalysisHandler.
func NewAnalysisHandler(analysisService service.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{analysisService: analysisService}
}

type analyzeRequest struct {
	Messages []model.Message `json:"messages"`
	Language string          `json:"language"`
}

// Analyze runs the full pipeline over a finished conversation.
func (h *AnalysisHandler) Analyze(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "messages are required"})
		return
	}

	log.Infof("[AnalysisHandler] Analyzing conversation with %d messages", len(req.Messages))
	result, err := h.analysisService.Analyze(c.Request.Context(), req.Messages, req.Language)
	if err != nil {
		log.Errorf("[AnalysisHandler] Analysis failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "analysis failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

type evaluateRequest struct {
	UserAnswer string `json:"userAnswer"`
	Context    string `json:"context"`
	Language   string `json:"language"`
}

// Evaluate scores a practice answer. The situation context may be empty;
// only the answer itself is required.
func (h *AnalysisHandler) Evaluate(c *gin.Context) {
	var req evaluateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.UserAnswer == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userAnswer is required"})
		return
	}

	evaluation, err := h.analysisService.Evaluate(c.Request.Context(), req.UserAnswer, req.Context, req.Language)
	if err != nil {
		log.Errorf("[AnalysisHandler] Evaluation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "evaluation failed"})
		return
	}

	c.JSON(http.StatusOK, evaluation)
}

type cannedSimilarRequest struct {
	Messages []model.Message `json:"messages"`
}

// CannedSimilar picks the pre-generated clip closest to a conversation.
func (h *AnalysisHandler) CannedSimilar(c *gin.Context) {
	var req cannedSimilarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "messages are required"})
		return
	}

	match, err := h.analysisService.PickCannedScenario(c.Request.Context(), req.Messages)
	if err != nil {
		log.Errorf("[AnalysisHandler] Canned match failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to match a scenario"})
		return
	}

	c.JSON(http.StatusOK, match)
}
