package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"culturebridge/internal/model"
	"culturebridge/internal/service"
	"culturebridge/pkg/media"

	"github.com/gin-gonic/gin"
)

type fakeMediaService struct {
	video *service.VideoResult
	job   *media.VideoJob
	image *media.Image
	tts   *service.TTSResult
	text  string
	err   error
}

func (f *fakeMediaService) GenerateVideo(ctx context.Context, scenarioID, sceneType string) (*service.VideoResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.video, nil
}

func (f *fakeMediaService) GetVideoStatus(ctx context.Context, videoID string) (*media.VideoJob, error) {
	return f.job, f.err
}

func (f *fakeMediaService) Simulate(ctx context.Context, messages []model.Message) (*media.Image, error) {
	return f.image, f.err
}

func (f *fakeMediaService) GenerateImage(ctx context.Context, imagePrompt string) (*media.Image, error) {
	return f.image, f.err
}

func (f *fakeMediaService) Synthesize(ctx context.Context, text string) (*service.TTSResult, error) {
	return f.tts, f.err
}

func (f *fakeMediaService) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	return f.text, f.err
}

func setupMediaRouter(svc service.MediaService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewMediaHandler(svc)
	r.POST("/video", h.GenerateVideo)
	r.GET("/video", h.VideoStatus)
	r.POST("/simulate", h.Simulate)
	r.POST("/tts", h.Synthesize)
	return r
}

func TestGenerateVideoMissingScenario(t *testing.T) {
	r := setupMediaRouter(&fakeMediaService{})

	resp := postJSON(t, r, "/video", map[string]string{"sceneType": "correct"})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestGenerateVideoUnknownScenario(t *testing.T) {
	r := setupMediaRouter(&fakeMediaService{
		err: fmt.Errorf("%w: nope", service.ErrUnknownScenario),
	})

	resp := postJSON(t, r, "/video", map[string]string{"scenarioId": "nope"})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestGenerateVideoCannedResponse(t *testing.T) {
	r := setupMediaRouter(&fakeMediaService{
		video: &service.VideoResult{
			ScenarioID: "bap-meogeosseo",
			SceneType:  "comparison",
			Status:     "completed",
			URL:        "https://cdn/canned.mp4",
			Source:     service.SourceCanned,
		},
	})

	resp := postJSON(t, r, "/video", map[string]string{"scenarioId": "bap-meogeosseo"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var out service.VideoResult
	json.Unmarshal(resp.Body.Bytes(), &out)
	if out.Source != service.SourceCanned || out.URL == "" {
		t.Errorf("unexpected result %+v", out)
	}
}

func TestGenerateVideoFallbackBodyShape(t *testing.T) {
	r := setupMediaRouter(&fakeMediaService{
		video: &service.VideoResult{
			ScenarioID:    "oneul-jom-bappeune",
			SceneType:     "wrong",
			Status:        "completed",
			VideoID:       "job-7",
			FallbackImage: "data:image/png;base64,abc",
			Source:        service.SourceTogetherImage,
		},
	})

	resp := postJSON(t, r, "/video", map[string]string{
		"scenarioId": "oneul-jom-bappeune",
		"sceneType":  "wrong",
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["status"] != "completed" {
		t.Errorf("status key missing or wrong: %v", body["status"])
	}
	if body["fallbackImage"] != "data:image/png;base64,abc" {
		t.Errorf("fallbackImage key missing or wrong: %v", body["fallbackImage"])
	}
	if _, ok := body["url"]; ok {
		t.Error("url must be omitted on the image fallback path")
	}
	if body["scenarioId"] != "oneul-jom-bappeune" || body["source"] != service.SourceTogetherImage {
		t.Errorf("unexpected body %v", body)
	}
}

func TestSimulateBodyShape(t *testing.T) {
	r := setupMediaRouter(&fakeMediaService{
		image: &media.Image{DataURI: "data:image/png;base64,sim"},
	})

	resp := postJSON(t, r, "/simulate", map[string]interface{}{
		"messages": []model.Message{{Role: model.RoleUser, Content: "집주인이 화를 냈어요"}},
	})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode body: %v", err)
	}
	if body["status"] != "completed" {
		t.Errorf("status key missing or wrong: %v", body["status"])
	}
	if body["fallbackImage"] != "data:image/png;base64,sim" {
		t.Errorf("fallbackImage key missing or wrong: %v", body["fallbackImage"])
	}
	if body["source"] != service.SourceTogetherImage {
		t.Errorf("unexpected source %v", body["source"])
	}
}

func TestVideoStatusRequiresID(t *testing.T) {
	r := setupMediaRouter(&fakeMediaService{})

	req := httptest.NewRequest(http.MethodGet, "/video", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestVideoStatus(t *testing.T) {
	r := setupMediaRouter(&fakeMediaService{
		job: &media.VideoJob{ID: "job-1", Status: media.StatusCompleted, URL: "https://cdn/v.mp4"},
	})

	req := httptest.NewRequest(http.MethodGet, "/video?videoId=job-1", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var out map[string]string
	json.Unmarshal(resp.Body.Bytes(), &out)
	if out["status"] != "completed" || out["url"] == "" {
		t.Errorf("unexpected body %v", out)
	}
}

func TestSynthesizeReturnsAudioBytes(t *testing.T) {
	r := setupMediaRouter(&fakeMediaService{
		tts: &service.TTSResult{Audio: []byte("mp3-bytes"), ContentType: "audio/mpeg"},
	})

	resp := postJSON(t, r, "/tts", map[string]string{"text": "안녕하세요"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "audio/mpeg" {
		t.Errorf("expected audio/mpeg, got %q", ct)
	}
	if resp.Body.String() != "mp3-bytes" {
		t.Errorf("audio bytes lost")
	}
}
