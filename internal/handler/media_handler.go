package handler

import (
	"errors"
	"net/http"

	"culturebridge/internal/model"
	"culturebridge/internal/prompt"
	"culturebridge/internal/service"
	"culturebridge/pkg/log"

	"github.com/gin-gonic/gin"
)

// MediaHandler serves the media generation endpoints.
type MediaHandler struct {
	mediaService service.MediaService
}

// NewMediaHandler creates a MediaHandler.
func NewMediaHandler(mediaService service.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: mediaService}
}

type videoRequest struct {
	ScenarioID string `json:"scenarioId"`
	SceneType  string `json:"sceneType"`
}

// GenerateVideo produces a clip for a scenario scene.
func (h *MediaHandler) GenerateVideo(c *gin.Context) {
	var req videoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.ScenarioID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "scenarioId is required"})
		return
	}
	if req.SceneType == "" {
		req.SceneType = prompt.SceneCorrect
	}

	result, err := h.mediaService.GenerateVideo(c.Request.Context(), req.ScenarioID, req.SceneType)
	if err != nil {
		if errors.Is(err, service.ErrUnknownScenario) {
			c.JSON(http.StatusNotFound, gin.H{"error": "scenario not found"})
			return
		}
		log.Errorf("[MediaHandler] Video generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "video generation failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// VideoStatus answers a poll for a previously submitted job.
func (h *MediaHandler) VideoStatus(c *gin.Context) {
	videoID := c.Query("videoId")
	if videoID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "videoId is required"})
		return
	}

	job, err := h.mediaService.GetVideoStatus(c.Request.Context(), videoID)
	if err != nil {
		log.Errorf("[MediaHandler] Video status failed for %s: %v", videoID, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch video status"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"videoId": job.ID,
		"status":  job.Status,
		"url":     job.URL,
	})
}

type simulateRequest struct {
	Messages []model.Message `json:"messages"`
}

// Simulate generates an illustration straight from a conversation.
func (h *MediaHandler) Simulate(c *gin.Context) {
	var req simulateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if len(req.Messages) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "messages are required"})
		return
	}

	img, err := h.mediaService.Simulate(c.Request.Context(), req.Messages)
	if err != nil {
		log.Errorf("[MediaHandler] Simulation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "simulation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":        "completed",
		"fallbackImage": img.Source(),
		"source":        service.SourceTogetherImage,
	})
}

type imageRequest struct {
	Prompt string `json:"prompt"`
}

// GenerateImage produces one still image from a raw prompt.
func (h *MediaHandler) GenerateImage(c *gin.Context) {
	var req imageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Prompt == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "prompt is required"})
		return
	}

	img, err := h.mediaService.GenerateImage(c.Request.Context(), req.Prompt)
	if err != nil {
		log.Errorf("[MediaHandler] Image generation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "image generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"imageUrl":      img.Source(),
		"revisedPrompt": img.RevisedPrompt,
	})
}

type ttsRequest struct {
	Text string `json:"text"`
}

// Synthesize renders text as speech and returns the audio bytes.
func (h *MediaHandler) Synthesize(c *gin.Context) {
	var req ttsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Text == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	result, err := h.mediaService.Synthesize(c.Request.Context(), req.Text)
	if err != nil {
		log.Errorf("[MediaHandler] Speech synthesis failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "speech synthesis failed"})
		return
	}

	if result.StorageURL != "" {
		c.Header("X-Audio-URL", result.StorageURL)
	}
	c.Data(http.StatusOK, result.ContentType, result.Audio)
}

// Transcribe converts an uploaded audio clip into text.
func (h *MediaHandler) Transcribe(c *gin.Context) {
	fileHeader, err := c.FormFile("audio")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "audio file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read audio file"})
		return
	}
	defer file.Close()

	text, err := h.mediaService.Transcribe(c.Request.Context(), file, fileHeader.Filename)
	if err != nil {
		log.Errorf("[MediaHandler] Transcription failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "transcription failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"text": text})
}
