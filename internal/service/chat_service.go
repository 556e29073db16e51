// Package service contains the application's business logic layer.
package service

import (
	"context"
	"strings"
	"time"

	"culturebridge/internal/model"
	"culturebridge/internal/prompt"
	"culturebridge/internal/repository"
	"culturebridge/pkg/llm"
	"culturebridge/pkg/log"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// minTurnsForAnalysis is the conversation length, counting the message
// just received, after which there is enough context to analyze.
const minTurnsForAnalysis = 4

// ChatReply is the assistant's answer plus the readiness signal for the
// analysis step.
type ChatReply struct {
	Message       model.Message `json:"message"`
	NeedsMoreInfo bool          `json:"needsMoreInfo"`
}

// ChatService drives the counseling conversation.
type ChatService interface {
	Respond(ctx context.Context, sessionID, message string, history []model.Message, lang string) (*ChatReply, error)
	StreamResponse(ctx context.Context, sessionID, message string, history []model.Message, lang string, ws *websocket.Conn) error
}

type chatService struct {
	llmClient        llm.Client
	conversationRepo repository.ConversationRepository
}

// NewChatService creates a ChatService.
func NewChatService(llmClient llm.Client, conversationRepo repository.ConversationRepository) ChatService {
	return &chatService{
		llmClient:        llmClient,
		conversationRepo: conversationRepo,
	}
}

// mergedHistory prefers the turns the client sent; a session with no
// client-side history falls back to the server-side copy.
func (s *chatService) mergedHistory(ctx context.Context, sessionID string, history []model.Message) []model.Message {
	if len(history) > 0 || sessionID == "" {
		return history
	}
	stored, err := s.conversationRepo.GetHistory(ctx, sessionID)
	if err != nil {
		log.Errorf("[ChatService] Failed to load conversation history: %v", err)
		return history
	}
	return stored
}

func toLLMHistory(history []model.Message) []llm.Message {
	msgs := make([]llm.Message, 0, len(history))
	for _, m := range history {
		msgs = append(msgs, llm.Message{Role: m.Role, Content: m.Content})
	}
	return msgs
}

// needsMoreInfo reports whether the conversation, counting the turn just
// received, is still too short to analyze.
func needsMoreInfo(history []model.Message) bool {
	return len(history)+1 < minTurnsForAnalysis
}

// Respond generates one assistant turn and persists the exchange when the
// request carries a session id.
func (s *chatService) Respond(ctx context.Context, sessionID, message string, history []model.Message, lang string) (*ChatReply, error) {
	history = s.mergedHistory(ctx, sessionID, history)

	answer, err := s.llmClient.Chat(ctx, message, toLLMHistory(history), prompt.ChatSystemPrompt(lang))
	if err != nil {
		return nil, err
	}

	now := time.Now()
	userMsg := model.Message{ID: uuid.NewString(), Role: model.RoleUser, Content: message, Timestamp: now}
	assistantMsg := model.Message{ID: uuid.NewString(), Role: model.RoleAssistant, Content: answer, Timestamp: now}

	if sessionID != "" {
		// Use a background context so a canceled request does not lose
		// an already generated answer.
		if err := s.conversationRepo.AppendMessages(context.Background(), sessionID, userMsg, assistantMsg); err != nil {
			log.Errorf("[ChatService] Failed to save conversation history: %v", err)
		}
	}

	return &ChatReply{
		Message:       assistantMsg,
		NeedsMoreInfo: needsMoreInfo(history),
	}, nil
}

// wsWriterInterceptor forwards streamed chunks to the websocket while
// accumulating the full answer for persistence.
type wsWriterInterceptor struct {
	conn    *websocket.Conn
	builder *strings.Builder
}

func (w *wsWriterInterceptor) WriteMessage(messageType int, data []byte) error {
	w.builder.Write(data)
	return w.conn.WriteMessage(messageType, data)
}

// StreamResponse behaves like Respond but streams the answer chunk by
// chunk over a websocket, ending with a done frame that carries the
// readiness signal.
func (s *chatService) StreamResponse(ctx context.Context, sessionID, message string, history []model.Message, lang string, ws *websocket.Conn) error {
	history = s.mergedHistory(ctx, sessionID, history)

	interceptor := &wsWriterInterceptor{conn: ws, builder: &strings.Builder{}}
	if err := s.llmClient.StreamChat(ctx, message, toLLMHistory(history), prompt.ChatSystemPrompt(lang), interceptor); err != nil {
		return err
	}

	done := `{"done":true,"needsMoreInfo":false}`
	if needsMoreInfo(history) {
		done = `{"done":true,"needsMoreInfo":true}`
	}
	if err := ws.WriteMessage(websocket.TextMessage, []byte(done)); err != nil {
		return err
	}

	fullAnswer := interceptor.builder.String()
	if sessionID != "" && fullAnswer != "" {
		now := time.Now()
		err := s.conversationRepo.AppendMessages(context.Background(), sessionID,
			model.Message{ID: uuid.NewString(), Role: model.RoleUser, Content: message, Timestamp: now},
			model.Message{ID: uuid.NewString(), Role: model.RoleAssistant, Content: fullAnswer, Timestamp: now},
		)
		if err != nil {
			log.Errorf("[ChatService] Failed to save conversation history: %v", err)
		}
	}

	return nil
}
