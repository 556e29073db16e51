// Package media provides a client for a hosted image/video generation API.
package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"culturebridge/internal/config"
	"culturebridge/pkg/log"
)

// Status is the normalized lifecycle of an asynchronous generation job.
type Status string

const (
	StatusPending    Status = "pending"
	StatusGenerating Status = "generating"
	StatusCompleted  Status = "completed"
	StatusFailed     Status = "failed"
)

// VideoJob is the provider's view of one submitted video generation.
type VideoJob struct {
	ID     string
	Status Status
	URL    string
}

// Image is one generated still image: either a data URI or a provider URL,
// with the provider's revised prompt when given.
type Image struct {
	DataURI       string
	URL           string
	RevisedPrompt string
}

// Source returns whichever representation the provider produced.
func (i Image) Source() string {
	if i.DataURI != "" {
		return i.DataURI
	}
	return i.URL
}

// Client is the gateway to the media generation backend.
type Client interface {
	// CreateVideo submits a video generation job and returns its id.
	CreateVideo(ctx context.Context, prompt string) (string, error)
	// GetVideo fetches the current status of a job.
	GetVideo(ctx context.Context, videoID string) (VideoJob, error)
	// GenerateImage produces one still image, retrying once on the
	// fallback model when the primary returns no image data.
	GenerateImage(ctx context.Context, prompt string) (Image, error)
}

type togetherClient struct {
	cfg    config.MediaConfig
	client *http.Client
}

// NewClient creates a media generation client from the configuration.
func NewClient(cfg config.MediaConfig) Client {
	return &togetherClient{
		cfg:    cfg,
		client: &http.Client{},
	}
}

func (c *togetherClient) request(ctx context.Context, method, path string, body interface{}, out interface{}) error {
	if c.cfg.APIKey == "" {
		return fmt.Errorf("media api key is missing")
	}

	var reqBody io.Reader
	if body != nil {
		reqBytes, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal media request: %w", err)
		}
		reqBody = bytes.NewReader(reqBytes)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.cfg.BaseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create media request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to call media api: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("media api returned status %d: %s", resp.StatusCode, string(bodyBytes))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode media response: %w", err)
	}
	return nil
}

// videoResponse tolerates the provider's drifting field names for task id,
// status and video URL.
type videoResponse struct {
	ID       string `json:"id"`
	TaskID   string `json:"task_id"`
	Status   string `json:"status"`
	State    string `json:"state"`
	VideoURL string `json:"video_url"`
	Video    string `json:"video"`
	URL      string `json:"url"`
	Task     struct {
		Status string `json:"status"`
	} `json:"task"`
	Output []struct {
		URL    string `json:"url"`
		Status string `json:"status"`
	} `json:"output"`
	Data []struct {
		URL string `json:"url"`
	} `json:"data"`
}

func (r videoResponse) taskID() string {
	if r.ID != "" {
		return r.ID
	}
	return r.TaskID
}

func (r videoResponse) rawStatus() string {
	for _, s := range []string{r.Status, r.State, r.Task.Status} {
		if s != "" {
			return s
		}
	}
	if len(r.Output) > 0 {
		return r.Output[0].Status
	}
	return ""
}

func (r videoResponse) videoURL() string {
	for _, u := range []string{r.VideoURL, r.Video, r.URL} {
		if u != "" {
			return u
		}
	}
	if len(r.Output) > 0 && r.Output[0].URL != "" {
		return r.Output[0].URL
	}
	if len(r.Data) > 0 {
		return r.Data[0].URL
	}
	return ""
}

// NormalizeStatus maps the provider's status vocabulary onto the four
// normalized values. Unknown statuses are reported as pending.
func NormalizeStatus(raw string) Status {
	switch raw {
	case "completed", "succeeded", "success", "Completed", "COMPLETED":
		return StatusCompleted
	case "failed", "error", "Failed", "FAILED":
		return StatusFailed
	case "generating", "processing", "running", "queued":
		return StatusGenerating
	default:
		return StatusPending
	}
}

func (c *togetherClient) CreateVideo(ctx context.Context, prompt string) (string, error) {
	var resp videoResponse
	err := c.request(ctx, "POST", "/videos", map[string]string{
		"model":  c.cfg.VideoModel,
		"prompt": prompt,
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.taskID() == "" {
		return "", fmt.Errorf("video backend did not return a task id")
	}
	return resp.taskID(), nil
}

func (c *togetherClient) GetVideo(ctx context.Context, videoID string) (VideoJob, error) {
	var resp videoResponse
	if err := c.request(ctx, "GET", "/videos/"+videoID, nil, &resp); err != nil {
		return VideoJob{}, err
	}
	return VideoJob{
		ID:     videoID,
		Status: NormalizeStatus(resp.rawStatus()),
		URL:    resp.videoURL(),
	}, nil
}

// imageResponse tolerates the drifting container field for generated
// images across provider models.
type imageResponse struct {
	Data    []imageItem `json:"data"`
	Output  []imageItem `json:"output"`
	Images  []imageItem `json:"images"`
	Results []imageItem `json:"results"`
}

type imageItem struct {
	B64JSON       string `json:"b64_json"`
	Base64        string `json:"base64"`
	URL           string `json:"url"`
	RevisedPrompt string `json:"revised_prompt"`
}

func (r imageResponse) first() *imageItem {
	for _, items := range [][]imageItem{r.Data, r.Output, r.Images, r.Results} {
		if len(items) > 0 {
			return &items[0]
		}
	}
	return nil
}

func (c *togetherClient) GenerateImage(ctx context.Context, prompt string) (Image, error) {
	img, err := c.generateWithModel(ctx, c.cfg.ImageModel, prompt)
	if err == nil {
		return img, nil
	}
	if c.cfg.FallbackImageModel == "" || c.cfg.FallbackImageModel == c.cfg.ImageModel {
		return Image{}, err
	}

	log.Warnf("[MediaClient] primary image model failed (%v), retrying with %s", err, c.cfg.FallbackImageModel)
	return c.generateWithModel(ctx, c.cfg.FallbackImageModel, prompt)
}

func (c *togetherClient) generateWithModel(ctx context.Context, model, prompt string) (Image, error) {
	var resp imageResponse
	err := c.request(ctx, "POST", "/images/generations", map[string]interface{}{
		"model":  model,
		"prompt": prompt,
		"steps":  10,
		"n":      1,
	}, &resp)
	if err != nil {
		return Image{}, err
	}

	item := resp.first()
	if item == nil {
		return Image{}, fmt.Errorf("image backend returned no image data")
	}

	img := Image{RevisedPrompt: item.RevisedPrompt}
	switch {
	case item.B64JSON != "":
		img.DataURI = "data:image/png;base64," + item.B64JSON
	case item.Base64 != "":
		img.DataURI = "data:image/png;base64," + item.Base64
	case item.URL != "":
		img.URL = item.URL
	default:
		return Image{}, fmt.Errorf("image backend returned no image data")
	}
	return img, nil
}
