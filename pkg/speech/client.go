// Package speech provides clients for hosted speech-to-text and
// text-to-speech services.
package speech

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"culturebridge/internal/config"
	"culturebridge/pkg/log"
)

// Client is the gateway to the hosted speech services.
type Client interface {
	// Transcribe converts one whole recorded clip into text. The source
	// language hint comes from configuration.
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
	// Synthesize renders text as speech, returning the audio bytes and
	// their content type for direct playback.
	Synthesize(ctx context.Context, text string) ([]byte, string, error)
}

type openAICompatibleClient struct {
	cfg    config.SpeechConfig
	client *http.Client
}

// NewClient creates a speech client from the configuration.
func NewClient(cfg config.SpeechConfig) Client {
	return &openAICompatibleClient{
		cfg:    cfg,
		client: &http.Client{},
	}
}

func (c *openAICompatibleClient) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return "", fmt.Errorf("failed to create multipart file: %w", err)
	}
	if _, err := io.Copy(part, audio); err != nil {
		return "", fmt.Errorf("failed to copy audio data: %w", err)
	}
	if err := writer.WriteField("model", c.cfg.TranscribeModel); err != nil {
		return "", fmt.Errorf("failed to write model field: %w", err)
	}
	if err := writer.WriteField("language", c.cfg.Language); err != nil {
		return "", fmt.Errorf("failed to write language field: %w", err)
	}
	if err := writer.WriteField("response_format", "json"); err != nil {
		return "", fmt.Errorf("failed to write response_format field: %w", err)
	}
	if err := writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.cfg.BaseURL+"/audio/transcriptions", &buf)
	if err != nil {
		return "", fmt.Errorf("failed to create transcription request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to call transcription api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		log.Errorf("[SpeechClient] transcription API returned %s: %s", resp.Status, string(bodyBytes))
		return "", fmt.Errorf("transcription api returned non-200 status: %s", resp.Status)
	}

	var transcription struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&transcription); err != nil {
		return "", fmt.Errorf("failed to decode transcription response: %w", err)
	}
	return transcription.Text, nil
}

func (c *openAICompatibleClient) Synthesize(ctx context.Context, text string) ([]byte, string, error) {
	reqBody := map[string]interface{}{
		"model": c.cfg.TTSModel,
		"voice": c.cfg.Voice,
		"input": text,
		"speed": 1.0,
	}
	reqBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, "", fmt.Errorf("failed to marshal tts request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.cfg.BaseURL+"/audio/speech", bytes.NewReader(reqBytes))
	if err != nil {
		return nil, "", fmt.Errorf("failed to create tts request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to call tts api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		log.Errorf("[SpeechClient] TTS API returned %s: %s", resp.Status, string(bodyBytes))
		return nil, "", fmt.Errorf("tts api returned non-200 status: %s", resp.Status)
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", fmt.Errorf("failed to read tts audio: %w", err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "audio/mpeg"
	}
	return audio, contentType, nil
}
