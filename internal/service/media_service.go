package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"culturebridge/internal/config"
	"culturebridge/internal/model"
	"culturebridge/internal/prompt"
	"culturebridge/internal/repository"
	"culturebridge/internal/scenario"
	"culturebridge/pkg/log"
	"culturebridge/pkg/media"
	"culturebridge/pkg/speech"
	"culturebridge/pkg/storage"

	"github.com/google/uuid"
)

// Video sources, in order of preference.
const (
	SourceCanned        = "canned"
	SourceTogetherVideo = "together-video"
	SourceTogetherImage = "together-image"
)

const (
	defaultPollInterval    = 5 * time.Second
	defaultMaxPollAttempts = 12
)

// ErrUnknownScenario is returned when a video request names a scenario id
// missing from the catalog.
var ErrUnknownScenario = errors.New("unknown scenario")

// VideoResult is the outcome of one video request, whichever source
// produced it. A degraded run carries FallbackImage instead of URL but
// still reports status "completed"; only Source tells the paths apart.
type VideoResult struct {
	ScenarioID    string `json:"scenarioId"`
	SceneType     string `json:"sceneType,omitempty"`
	Status        string `json:"status"`
	VideoID       string `json:"videoId,omitempty"`
	URL           string `json:"url,omitempty"`
	FallbackImage string `json:"fallbackImage,omitempty"`
	Source        string `json:"source"`
}

// TTSResult carries synthesized audio, plus a storage URL when the
// artifact store is enabled.
type TTSResult struct {
	Audio       []byte
	ContentType string
	StorageURL  string
}

// MediaService generates simulation media: videos with an image fallback,
// still images, speech synthesis and transcription.
type MediaService interface {
	GenerateVideo(ctx context.Context, scenarioID, sceneType string) (*VideoResult, error)
	GetVideoStatus(ctx context.Context, videoID string) (*media.VideoJob, error)
	Simulate(ctx context.Context, messages []model.Message) (*media.Image, error)
	GenerateImage(ctx context.Context, imagePrompt string) (*media.Image, error)
	Synthesize(ctx context.Context, text string) (*TTSResult, error)
	Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error)
}

type mediaService struct {
	mediaClient  media.Client
	speechClient speech.Client
	videoJobRepo repository.VideoJobRepository
	pollInterval time.Duration
	maxAttempts  int
}

// NewMediaService creates a MediaService with the poll cadence from the
// media configuration.
func NewMediaService(mediaClient media.Client, speechClient speech.Client, videoJobRepo repository.VideoJobRepository, cfg config.MediaConfig) MediaService {
	interval := time.Duration(cfg.PollIntervalSec) * time.Second
	if interval <= 0 {
		interval = defaultPollInterval
	}
	attempts := cfg.MaxPollAttempts
	if attempts <= 0 {
		attempts = defaultMaxPollAttempts
	}
	return &mediaService{
		mediaClient:  mediaClient,
		speechClient: speechClient,
		videoJobRepo: videoJobRepo,
		pollInterval: interval,
		maxAttempts:  attempts,
	}
}

// GenerateVideo produces a clip for a scenario scene. A canned clip wins
// unconditionally; otherwise a generation job is submitted and polled, and
// a still image stands in when the video never completes. Only a failed
// image fallback surfaces an error.
func (s *mediaService) GenerateVideo(ctx context.Context, scenarioID, sceneType string) (*VideoResult, error) {
	if url := scenario.FindCannedVideo(scenarioID); url != "" {
		log.Infof("[MediaService] Serving canned video for scenario %s", scenarioID)
		return &VideoResult{
			ScenarioID: scenarioID,
			SceneType:  sceneType,
			Status:     string(media.StatusCompleted),
			URL:        url,
			Source:     SourceCanned,
		}, nil
	}

	sc, ok := scenario.FindByID(scenarioID)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScenario, scenarioID)
	}

	// The "correct" scene plays the scenario's hand-written prompt as is;
	// the other scenes need the generated framing.
	videoPrompt := sc.VideoPrompt
	if sceneType != "" && sceneType != prompt.SceneCorrect {
		videoPrompt = prompt.VideoPrompt(sc, sceneType)
	}

	videoID, err := s.mediaClient.CreateVideo(ctx, videoPrompt)
	if err == nil && videoID != "" {
		s.saveJob(ctx, media.VideoJob{ID: videoID, Status: media.StatusPending})
		if job := s.pollVideo(ctx, videoID); job != nil {
			return &VideoResult{
				ScenarioID: scenarioID,
				SceneType:  sceneType,
				Status:     string(media.StatusCompleted),
				VideoID:    job.ID,
				URL:        job.URL,
				Source:     SourceTogetherVideo,
			}, nil
		}
	} else if err != nil {
		log.Warnf("[MediaService] Video submission failed for scenario %s: %v", scenarioID, err)
	}

	log.Infof("[MediaService] Falling back to image generation for scenario %s", scenarioID)
	img, err := s.mediaClient.GenerateImage(ctx, videoPrompt)
	if err != nil {
		return nil, fmt.Errorf("video and image generation both failed: %w", err)
	}
	return &VideoResult{
		ScenarioID:    scenarioID,
		SceneType:     sceneType,
		Status:        string(media.StatusCompleted),
		VideoID:       videoID,
		FallbackImage: img.Source(),
		Source:        SourceTogetherImage,
	}, nil
}

// pollVideo watches a job until it completes, fails, or the attempt budget
// runs out. Only a completed job with a URL counts as success.
func (s *mediaService) pollVideo(ctx context.Context, videoID string) *media.VideoJob {
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(s.pollInterval):
		}

		job, err := s.mediaClient.GetVideo(ctx, videoID)
		if err != nil {
			log.Warnf("[MediaService] Poll %d/%d for job %s failed: %v", attempt, s.maxAttempts, videoID, err)
			continue
		}
		s.saveJob(ctx, job)

		switch job.Status {
		case media.StatusCompleted:
			if job.URL != "" {
				return &job
			}
			log.Warnf("[MediaService] Job %s completed without a URL", videoID)
			return nil
		case media.StatusFailed:
			log.Warnf("[MediaService] Job %s failed at the provider", videoID)
			return nil
		}
	}
	log.Warnf("[MediaService] Job %s did not complete within %d polls", videoID, s.maxAttempts)
	return nil
}

func (s *mediaService) saveJob(ctx context.Context, job media.VideoJob) {
	if s.videoJobRepo == nil {
		return
	}
	if err := s.videoJobRepo.SaveJob(ctx, job); err != nil {
		log.Errorf("[MediaService] Failed to save video job %s: %v", job.ID, err)
	}
}

// GetVideoStatus answers a status poll, preferring the mirrored snapshot
// and falling through to the provider on a cache miss.
func (s *mediaService) GetVideoStatus(ctx context.Context, videoID string) (*media.VideoJob, error) {
	if s.videoJobRepo != nil {
		job, err := s.videoJobRepo.GetJob(ctx, videoID)
		if err != nil {
			log.Errorf("[MediaService] Failed to read video job %s: %v", videoID, err)
		} else if job != nil {
			return job, nil
		}
	}

	job, err := s.mediaClient.GetVideo(ctx, videoID)
	if err != nil {
		return nil, err
	}
	s.saveJob(ctx, job)
	return &job, nil
}

// Simulate generates an illustration straight from the conversation, for
// situations not covered by the catalog.
func (s *mediaService) Simulate(ctx context.Context, messages []model.Message) (*media.Image, error) {
	img, err := s.mediaClient.GenerateImage(ctx, prompt.SimulationPrompt(messages))
	if err != nil {
		return nil, fmt.Errorf("simulation image generation failed: %w", err)
	}
	return &img, nil
}

// GenerateImage produces a single still image from a raw prompt.
func (s *mediaService) GenerateImage(ctx context.Context, imagePrompt string) (*media.Image, error) {
	img, err := s.mediaClient.GenerateImage(ctx, imagePrompt)
	if err != nil {
		return nil, err
	}
	return &img, nil
}

// Synthesize renders text as speech. When the artifact store is enabled
// the audio is additionally uploaded and a presigned URL attached; upload
// failures only log.
func (s *mediaService) Synthesize(ctx context.Context, text string) (*TTSResult, error) {
	audio, contentType, err := s.speechClient.Synthesize(ctx, text)
	if err != nil {
		return nil, err
	}

	result := &TTSResult{Audio: audio, ContentType: contentType}
	if storage.Enabled() {
		objectName := fmt.Sprintf("tts/%s.mp3", uuid.NewString())
		bucket := config.Conf.MinIO.BucketName
		if err := storage.PutObject(ctx, bucket, objectName, contentType, audio); err != nil {
			log.Errorf("[MediaService] Failed to store TTS audio: %v", err)
		} else if url, err := storage.GetPresignedURL(bucket, objectName, 24*time.Hour); err == nil {
			result.StorageURL = url
		}
	}
	return result, nil
}

// Transcribe converts a recorded clip into text.
func (s *mediaService) Transcribe(ctx context.Context, audio io.Reader, filename string) (string, error) {
	return s.speechClient.Transcribe(ctx, audio, filename)
}
