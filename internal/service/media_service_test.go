package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"culturebridge/internal/config"
	"culturebridge/internal/model"
	"culturebridge/internal/scenario"
	"culturebridge/pkg/media"
)

// fakeMedia counts backend traffic and replays scripted outcomes.
type fakeMedia struct {
	createID    string
	createErr   error
	createCalls int

	jobs     []media.VideoJob
	jobErr   error
	getCalls int

	image      media.Image
	imageErr   error
	imageCalls int
	lastPrompt string
}

func (f *fakeMedia) CreateVideo(ctx context.Context, prompt string) (string, error) {
	f.createCalls++
	f.lastPrompt = prompt
	return f.createID, f.createErr
}

func (f *fakeMedia) GetVideo(ctx context.Context, videoID string) (media.VideoJob, error) {
	i := f.getCalls
	f.getCalls++
	if f.jobErr != nil {
		return media.VideoJob{}, f.jobErr
	}
	if i >= len(f.jobs) {
		return f.jobs[len(f.jobs)-1], nil
	}
	return f.jobs[i], nil
}

func (f *fakeMedia) GenerateImage(ctx context.Context, prompt string) (media.Image, error) {
	f.imageCalls++
	f.lastPrompt = prompt
	return f.image, f.imageErr
}

type fakeSpeech struct {
	text        string
	audio       []byte
	contentType string
	err         error
}

func (f *fakeSpeech) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	return f.text, f.err
}

func (f *fakeSpeech) Synthesize(ctx context.Context, text string) ([]byte, string, error) {
	return f.audio, f.contentType, f.err
}

func newTestMediaService(m *fakeMedia, s *fakeSpeech, maxAttempts int) MediaService {
	return NewMediaService(m, s, nil, config.MediaConfig{
		PollIntervalSec: 1,
		MaxPollAttempts: maxAttempts,
	})
}

func TestGenerateVideoCannedPrecedence(t *testing.T) {
	fake := &fakeMedia{createID: "job-1"}
	svc := newTestMediaService(fake, &fakeSpeech{}, 1)

	result, err := svc.GenerateVideo(context.Background(), "bap-meogeosseo", "comparison")
	if err != nil {
		t.Fatalf("GenerateVideo failed: %v", err)
	}
	if result.Source != SourceCanned {
		t.Errorf("expected canned source, got %q", result.Source)
	}
	if result.URL == "" || result.Status != "completed" {
		t.Errorf("canned result must carry the clip URL and a completed status, got %+v", result)
	}
	if fake.createCalls != 0 || fake.getCalls != 0 || fake.imageCalls != 0 {
		t.Errorf("canned scenarios must not touch the backends: create=%d get=%d image=%d",
			fake.createCalls, fake.getCalls, fake.imageCalls)
	}
}

func TestGenerateVideoUnknownScenario(t *testing.T) {
	svc := newTestMediaService(&fakeMedia{}, &fakeSpeech{}, 1)
	_, err := svc.GenerateVideo(context.Background(), "no-such-scenario", "correct")
	if !errors.Is(err, ErrUnknownScenario) {
		t.Fatalf("expected ErrUnknownScenario, got %v", err)
	}
}

func TestGenerateVideoCorrectSceneUsesStoredPrompt(t *testing.T) {
	sc, ok := scenario.FindByID("eodi-ga")
	if !ok {
		t.Fatal("catalog scenario missing")
	}

	fake := &fakeMedia{
		createID: "job-1",
		jobs: []media.VideoJob{
			{ID: "job-1", Status: media.StatusCompleted, URL: "https://cdn.example/video.mp4"},
		},
	}
	svc := newTestMediaService(fake, &fakeSpeech{}, 1)

	if _, err := svc.GenerateVideo(context.Background(), "eodi-ga", "correct"); err != nil {
		t.Fatalf("GenerateVideo failed: %v", err)
	}
	if fake.lastPrompt != sc.VideoPrompt {
		t.Errorf("the correct scene must submit the scenario's own prompt, got %q", fake.lastPrompt)
	}

	wrong := &fakeMedia{
		createID: "job-2",
		jobs: []media.VideoJob{
			{ID: "job-2", Status: media.StatusCompleted, URL: "https://cdn.example/video2.mp4"},
		},
	}
	svc = newTestMediaService(wrong, &fakeSpeech{}, 1)
	if _, err := svc.GenerateVideo(context.Background(), "eodi-ga", "wrong"); err != nil {
		t.Fatalf("GenerateVideo failed: %v", err)
	}
	if wrong.lastPrompt == sc.VideoPrompt {
		t.Error("the wrong scene must use the generated framing, not the stored prompt")
	}
}

func TestGenerateVideoCompletes(t *testing.T) {
	fake := &fakeMedia{
		createID: "job-1",
		jobs: []media.VideoJob{
			{ID: "job-1", Status: media.StatusCompleted, URL: "https://cdn.example/video.mp4"},
		},
	}
	svc := newTestMediaService(fake, &fakeSpeech{}, 2)

	result, err := svc.GenerateVideo(context.Background(), "eodi-ga", "correct")
	if err != nil {
		t.Fatalf("GenerateVideo failed: %v", err)
	}
	if result.Source != SourceTogetherVideo {
		t.Errorf("expected video source, got %q", result.Source)
	}
	if result.URL != "https://cdn.example/video.mp4" {
		t.Errorf("unexpected URL %q", result.URL)
	}
	if fake.imageCalls != 0 {
		t.Errorf("image fallback must not run after a completed video")
	}
}

func TestGenerateVideoSubmitFailureFallsBackToImage(t *testing.T) {
	fake := &fakeMedia{
		createErr: errors.New("provider down"),
		image:     media.Image{URL: "https://cdn.example/still.png"},
	}
	svc := newTestMediaService(fake, &fakeSpeech{}, 1)

	result, err := svc.GenerateVideo(context.Background(), "eodi-ga", "wrong")
	if err != nil {
		t.Fatalf("GenerateVideo failed: %v", err)
	}
	if result.Source != SourceTogetherImage {
		t.Errorf("expected image source, got %q", result.Source)
	}
	if result.FallbackImage != "https://cdn.example/still.png" {
		t.Errorf("unexpected image URL %q", result.FallbackImage)
	}
	if result.Status != "completed" || result.URL != "" {
		t.Errorf("degraded run must report status completed with no url, got %+v", result)
	}
	if fake.getCalls != 0 {
		t.Errorf("a failed submission must not be polled")
	}
}

func TestGenerateVideoTimeoutFallsBackToImage(t *testing.T) {
	fake := &fakeMedia{
		createID: "job-1",
		jobs:     []media.VideoJob{{ID: "job-1", Status: media.StatusGenerating}},
		image:    media.Image{DataURI: "data:image/png;base64,xyz"},
	}
	svc := newTestMediaService(fake, &fakeSpeech{}, 2)

	result, err := svc.GenerateVideo(context.Background(), "eodi-ga", "comparison")
	if err != nil {
		t.Fatalf("GenerateVideo failed: %v", err)
	}
	if result.Source != SourceTogetherImage {
		t.Errorf("expected image source after a stalled job, got %q", result.Source)
	}
	if result.Status != "completed" || result.URL != "" || result.FallbackImage == "" {
		t.Errorf("stalled job must degrade to a completed image result, got %+v", result)
	}
	if fake.getCalls != 2 {
		t.Errorf("expected 2 polls, got %d", fake.getCalls)
	}
}

func TestGenerateVideoBothBackendsFail(t *testing.T) {
	fake := &fakeMedia{
		createErr: errors.New("video down"),
		imageErr:  errors.New("image down"),
	}
	svc := newTestMediaService(fake, &fakeSpeech{}, 1)

	if _, err := svc.GenerateVideo(context.Background(), "eodi-ga", "correct"); err == nil {
		t.Fatal("expected an error when both backends fail")
	}
}

func TestGetVideoStatusFallsThroughToProvider(t *testing.T) {
	fake := &fakeMedia{
		jobs: []media.VideoJob{{ID: "job-9", Status: media.StatusGenerating}},
	}
	svc := newTestMediaService(fake, &fakeSpeech{}, 1)

	job, err := svc.GetVideoStatus(context.Background(), "job-9")
	if err != nil {
		t.Fatalf("GetVideoStatus failed: %v", err)
	}
	if job.Status != media.StatusGenerating {
		t.Errorf("unexpected status %q", job.Status)
	}
}

func TestSimulateUsesConversation(t *testing.T) {
	fake := &fakeMedia{image: media.Image{URL: "https://cdn.example/sim.png"}}
	svc := newTestMediaService(fake, &fakeSpeech{}, 1)

	img, err := svc.Simulate(context.Background(), []model.Message{
		{Role: model.RoleUser, Content: "집주인이 갑자기 화를 냈어요"},
	})
	if err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}
	if img.Source() != "https://cdn.example/sim.png" {
		t.Errorf("unexpected image %+v", img)
	}
	if !strings.Contains(fake.lastPrompt, "집주인이 갑자기 화를 냈어요") {
		t.Error("simulation prompt must embed the conversation")
	}
}

func TestSynthesize(t *testing.T) {
	speech := &fakeSpeech{audio: []byte("mp3-bytes"), contentType: "audio/mpeg"}
	svc := newTestMediaService(&fakeMedia{}, speech, 1)

	result, err := svc.Synthesize(context.Background(), "안녕하세요")
	if err != nil {
		t.Fatalf("Synthesize failed: %v", err)
	}
	if string(result.Audio) != "mp3-bytes" || result.ContentType != "audio/mpeg" {
		t.Errorf("unexpected result %+v", result)
	}
	if result.StorageURL != "" {
		t.Error("storage URL must be empty when the artifact store is disabled")
	}
}

func TestTranscribe(t *testing.T) {
	speech := &fakeSpeech{text: "밥 먹었어?"}
	svc := newTestMediaService(&fakeMedia{}, speech, 1)

	text, err := svc.Transcribe(context.Background(), strings.NewReader("audio"), "clip.webm")
	if err != nil {
		t.Fatalf("Transcribe failed: %v", err)
	}
	if text != "밥 먹었어?" {
		t.Errorf("unexpected transcript %q", text)
	}
}
