// Package handler contains the Gin HTTP handlers.
package handler

import (
	"encoding/json"
	"net/http"

	"culturebridge/internal/model"
	"culturebridge/internal/service"
	"culturebridge/pkg/log"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// ChatHandler serves the counseling conversation endpoints.
type ChatHandler struct {
	chatService service.ChatService
	upgrader    websocket.Upgrader
}

// NewChatHandler creates a ChatHandler.
func NewChatHandler(chatService service.ChatService) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

type chatRequest struct {
	SessionID string          `json:"sessionId"`
	Message   string          `json:"message"`
	History   []model.Message `json:"history"`
	Language  string          `json:"language"`
}

// Chat handles one conversational turn.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	reply, err := h.chatService.Respond(c.Request.Context(), req.SessionID, req.Message, req.History, req.Language)
	if err != nil {
		log.Errorf("[ChatHandler] Chat failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate response"})
		return
	}

	c.JSON(http.StatusOK, reply)
}

// StreamChat upgrades to a websocket and streams the assistant's reply.
// The client sends one JSON frame with the same shape as the POST body.
func (h *ChatHandler) StreamChat(c *gin.Context) {
	ws, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Errorf("[ChatHandler] Websocket upgrade failed: %v", err)
		return
	}
	defer ws.Close()

	_, frame, err := ws.ReadMessage()
	if err != nil {
		log.Errorf("[ChatHandler] Failed to read websocket request: %v", err)
		return
	}

	var req chatRequest
	if err := json.Unmarshal(frame, &req); err != nil || req.Message == "" {
		_ = ws.WriteMessage(websocket.TextMessage, []byte(`{"error":"invalid request"}`))
		return
	}

	if err := h.chatService.StreamResponse(c.Request.Context(), req.SessionID, req.Message, req.History, req.Language, ws); err != nil {
		log.Errorf("[ChatHandler] Stream failed: %v", err)
		_ = ws.WriteMessage(websocket.TextMessage, []byte(`{"error":"failed to generate response"}`))
	}
}
