// Package llm provides a client for an OpenAI-compatible chat-completion API.
package llm

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"culturebridge/internal/config"

	"github.com/gorilla/websocket"
)

// MessageWriter receives streamed response chunks. Both a websocket.Conn
// and an intercepting wrapper satisfy it.
type MessageWriter interface {
	WriteMessage(messageType int, data []byte) error
}

// Message is one role-tagged conversation turn.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ProviderError reports a failed provider call: a transport error or a
// non-success HTTP status, with the response body attached.
type ProviderError struct {
	Status int
	Body   string
	Err    error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("llm provider error: %v", e.Err)
	}
	return fmt.Sprintf("llm provider returned status %d: %s", e.Status, e.Body)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// ParseError reports model output that is not valid JSON after fence
// stripping. Raw carries the original text for diagnosis.
type ParseError struct {
	Raw string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("llm response is not valid JSON: %q", e.Raw)
}

// Client is the gateway to the hosted chat-completion service.
type Client interface {
	// Chat sends the system prompt, prior turns and the new user message,
	// returning the raw assistant text.
	Chat(ctx context.Context, message string, history []Message, systemPrompt string) (string, error)
	// CompleteJSON sends a task prompt in the provider's JSON mode and
	// returns the parsed-as-raw JSON document. The returned bytes are
	// syntactically valid JSON; no shape validation is performed.
	CompleteJSON(ctx context.Context, prompt string) (json.RawMessage, error)
	// StreamChat behaves like Chat but writes response chunks to writer
	// as they arrive.
	StreamChat(ctx context.Context, message string, history []Message, systemPrompt string, writer MessageWriter) error
}

const jsonSystemPrompt = "You are a helpful assistant that responds in JSON format. Always return valid JSON."

type openAICompatibleClient struct {
	cfg    config.LLMConfig
	client *http.Client
}

// NewClient creates a chat-completion client from the configuration.
func NewClient(cfg config.LLMConfig) Client {
	return &openAICompatibleClient{
		cfg:    cfg,
		client: &http.Client{},
	}
}

type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	Stream         bool            `json:"stream,omitempty"`
	Temperature    float64         `json:"temperature,omitempty"`
	MaxTokens      int             `json:"max_tokens,omitempty"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
}

type responseFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

type streamResponse struct {
	Choices []struct {
		Delta struct {
			Content string `json:"content"`
		} `json:"delta"`
	} `json:"choices"`
}

func composeMessages(systemPrompt string, history []Message, message string) []Message {
	msgs := make([]Message, 0, len(history)+2)
	msgs = append(msgs, Message{Role: "system", Content: systemPrompt})
	msgs = append(msgs, history...)
	msgs = append(msgs, Message{Role: "user", Content: message})
	return msgs
}

func (c *openAICompatibleClient) Chat(ctx context.Context, message string, history []Message, systemPrompt string) (string, error) {
	reqBody := chatRequest{
		Model:       c.cfg.ChatModel,
		Messages:    composeMessages(systemPrompt, history, message),
		Temperature: 0.8,
		MaxTokens:   1000,
	}

	var resp chatResponse
	if err := c.post(ctx, reqBody, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", &ProviderError{Status: http.StatusOK, Body: "empty choices"}
	}
	return resp.Choices[0].Message.Content, nil
}

func (c *openAICompatibleClient) CompleteJSON(ctx context.Context, prompt string) (json.RawMessage, error) {
	reqBody := chatRequest{
		Model: c.cfg.AnalysisModel,
		Messages: []Message{
			{Role: "system", Content: jsonSystemPrompt},
			{Role: "user", Content: prompt},
		},
		Temperature:    0.7,
		MaxTokens:      2048,
		ResponseFormat: &responseFormat{Type: "json_object"},
	}

	var resp chatResponse
	if err := c.post(ctx, reqBody, &resp); err != nil {
		return nil, err
	}
	if len(resp.Choices) == 0 {
		return nil, &ProviderError{Status: http.StatusOK, Body: "empty choices"}
	}

	text := StripJSONFence(resp.Choices[0].Message.Content)
	if !json.Valid([]byte(text)) {
		return nil, &ParseError{Raw: resp.Choices[0].Message.Content}
	}
	return json.RawMessage(text), nil
}

// post sends one chat-completions request and decodes the response into out.
func (c *openAICompatibleClient) post(ctx context.Context, reqBody chatRequest, out interface{}) error {
	reqBytes, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.cfg.BaseURL+"/chat/completions", bytes.NewReader(reqBytes))
	if err != nil {
		return fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return &ProviderError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return &ProviderError{Status: resp.StatusCode, Body: string(bodyBytes)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode chat response: %w", err)
	}
	return nil
}

func (c *openAICompatibleClient) StreamChat(ctx context.Context, message string, history []Message, systemPrompt string, writer MessageWriter) error {
	reqBody := chatRequest{
		Model:       c.cfg.ChatModel,
		Messages:    composeMessages(systemPrompt, history, message),
		Stream:      true,
		Temperature: 0.8,
		MaxTokens:   1000,
	}

	reqBytes, err := json.Marshal(reqBody)
	if err != nil {
		return fmt.Errorf("failed to marshal chat request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.cfg.BaseURL+"/chat/completions", bytes.NewReader(reqBytes))
	if err != nil {
		return fmt.Errorf("failed to create chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.client.Do(req)
	if err != nil {
		return &ProviderError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return &ProviderError{Status: resp.StatusCode, Body: string(bodyBytes)}
	}

	reader := bufio.NewReader(resp.Body)
	for {
		line, err := reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				break
			}
			return fmt.Errorf("failed to read from stream: %w", err)
		}

		if strings.HasPrefix(line, "data: ") {
			data := strings.TrimPrefix(line, "data: ")
			if strings.TrimSpace(data) == "[DONE]" {
				break
			}

			var chunk streamResponse
			if err := json.Unmarshal([]byte(data), &chunk); err != nil {
				continue
			}

			if len(chunk.Choices) > 0 {
				content := chunk.Choices[0].Delta.Content
				if content == "" {
					continue
				}
				if err := writer.WriteMessage(websocket.TextMessage, []byte(content)); err != nil {
					return fmt.Errorf("failed to write stream chunk: %w", err)
				}
			}
		}
	}
	return nil
}

// StripJSONFence removes a Markdown code-fence wrapper (```json ... ```)
// from model output. Stripping text without fences is a no-op, so the
// operation is idempotent.
func StripJSONFence(text string) string {
	trimmed := strings.TrimSpace(text)
	if !strings.HasPrefix(trimmed, "```") {
		return trimmed
	}
	trimmed = strings.TrimPrefix(trimmed, "```json")
	trimmed = strings.TrimPrefix(trimmed, "```")
	trimmed = strings.TrimSuffix(strings.TrimSpace(trimmed), "```")
	return strings.TrimSpace(trimmed)
}
