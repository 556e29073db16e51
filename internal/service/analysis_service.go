package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"culturebridge/internal/model"
	"culturebridge/internal/prompt"
	"culturebridge/internal/scenario"
	"culturebridge/pkg/kafka"
	"culturebridge/pkg/llm"
	"culturebridge/pkg/log"
	"culturebridge/pkg/tasks"

	"github.com/google/uuid"
)

// maxRelatedScenarios caps how many catalog entries an analysis links to.
const maxRelatedScenarios = 3

// AnalysisResult bundles everything the report page needs from one
// analysis run.
type AnalysisResult struct {
	Analysis         model.EmotionAnalysis `json:"analysis"`
	Solution         model.Solution        `json:"solution"`
	RelatedScenarios []model.Scenario      `json:"relatedScenarios"`
}

// CannedMatch is the picker's verdict: a catalog scenario id plus its
// pre-generated clip.
type CannedMatch struct {
	ScenarioID string `json:"scenarioId"`
	VideoURL   string `json:"videoUrl"`
}

// AnalysisService runs the two-call emotion analysis pipeline.
type AnalysisService interface {
	Analyze(ctx context.Context, messages []model.Message, lang string) (*AnalysisResult, error)
	Evaluate(ctx context.Context, userAnswer, situationContext, lang string) (*model.Evaluation, error)
	PickCannedScenario(ctx context.Context, messages []model.Message) (*CannedMatch, error)
}

type analysisService struct {
	llmClient llm.Client
}

// NewAnalysisService creates an AnalysisService.
func NewAnalysisService(llmClient llm.Client) AnalysisService {
	return &analysisService{llmClient: llmClient}
}

// normalizeInsight fills the gaps lenient providers leave: a missing
// confidence becomes 0.5, a missing category "daily", missing emotions
// "confusion". The conversation can always be analyzed somehow.
func normalizeInsight(insight *model.AnalysisInsight) {
	if insight.Confidence == 0 {
		insight.Confidence = 0.5
	}
	if insight.Category == "" {
		insight.Category = model.CategoryDaily
	}
	if len(insight.Emotions) == 0 {
		insight.Emotions = []model.Emotion{model.EmotionConfusion}
	}
}

// relatedScenarios matches catalog entries to the insight, degrading from
// keyword match to category match to a catch-all so the result is never
// empty.
func relatedScenarios(insight model.AnalysisInsight) []model.Scenario {
	matched := scenario.ByKeywords(insight.Keywords)
	if len(matched) == 0 {
		matched = scenario.ByCategory(insight.Category)
	}
	if len(matched) == 0 {
		matched = scenario.All()
	}
	if len(matched) > maxRelatedScenarios {
		matched = matched[:maxRelatedScenarios]
	}
	return matched
}

// Analyze runs the full pipeline: classify the conversation, generate a
// solution, attach related scenarios, then queue the report for archival.
func (s *analysisService) Analyze(ctx context.Context, messages []model.Message, lang string) (*AnalysisResult, error) {
	conversation := prompt.FormatConversation(messages)

	log.Infof("[AnalysisService] Step 1: classifying conversation (%d turns)", len(messages))
	rawAnalysis, err := s.llmClient.CompleteJSON(ctx, prompt.AnalysisPrompt(conversation, lang))
	if err != nil {
		return nil, fmt.Errorf("emotion analysis failed: %w", err)
	}

	var insight model.AnalysisInsight
	if err := json.Unmarshal(rawAnalysis, &insight); err != nil {
		return nil, fmt.Errorf("failed to decode analysis response: %w", err)
	}
	normalizeInsight(&insight)

	log.Infof("[AnalysisService] Step 2: generating solution for category %q", insight.Category)
	rawSolution, err := s.llmClient.CompleteJSON(ctx, prompt.SolutionPrompt(insight.SituationSummary, insight.Emotions, insight.Category, lang))
	if err != nil {
		return nil, fmt.Errorf("solution generation failed: %w", err)
	}

	var solution model.Solution
	if err := json.Unmarshal(rawSolution, &solution); err != nil {
		return nil, fmt.Errorf("failed to decode solution response: %w", err)
	}

	log.Infof("[AnalysisService] Step 3: matching related scenarios")
	result := &AnalysisResult{
		Analysis:         insight.Analysis(),
		Solution:         solution,
		RelatedScenarios: relatedScenarios(insight),
	}

	s.archiveReport(result, messages, lang)

	return result, nil
}

// archiveReport publishes the finished analysis to the report queue.
// Archival is best effort; a broker outage never fails the request.
func (s *analysisService) archiveReport(result *AnalysisResult, messages []model.Message, lang string) {
	analysisJSON, err := json.Marshal(result.Analysis)
	if err != nil {
		log.Errorf("[AnalysisService] Failed to marshal analysis for archive: %v", err)
		return
	}
	solutionJSON, err := json.Marshal(result.Solution)
	if err != nil {
		log.Errorf("[AnalysisService] Failed to marshal solution for archive: %v", err)
		return
	}
	scenarioIDs := make([]string, 0, len(result.RelatedScenarios))
	for _, sc := range result.RelatedScenarios {
		scenarioIDs = append(scenarioIDs, sc.ID)
	}

	task := tasks.ReportArchiveTask{
		ReportID:      uuid.NewString(),
		Lang:          lang,
		Category:      string(result.Analysis.Category),
		AnalysisJSON:  string(analysisJSON),
		SolutionJSON:  string(solutionJSON),
		ScenarioIDs:   scenarioIDs,
		TranscriptLen: len(messages),
		GeneratedAt:   time.Now(),
	}
	if err := kafka.ProduceReportTask(task); err != nil {
		log.Errorf("[AnalysisService] Failed to queue report %s for archive: %v", task.ReportID, err)
	}
}

// Evaluate scores a practice answer against a situation.
func (s *analysisService) Evaluate(ctx context.Context, userAnswer, situationContext, lang string) (*model.Evaluation, error) {
	raw, err := s.llmClient.CompleteJSON(ctx, prompt.EvaluationPrompt(userAnswer, situationContext, lang))
	if err != nil {
		return nil, fmt.Errorf("evaluation failed: %w", err)
	}

	var evaluation model.Evaluation
	if err := json.Unmarshal(raw, &evaluation); err != nil {
		return nil, fmt.Errorf("failed to decode evaluation response: %w", err)
	}
	return &evaluation, nil
}

// PickCannedScenario asks the model which pre-generated clip fits the
// conversation best. Any failure, including an id outside the candidate
// list, falls back to the first candidate: the caller always gets a clip.
func (s *analysisService) PickCannedScenario(ctx context.Context, messages []model.Message) (*CannedMatch, error) {
	candidates := scenario.CannedVideos()
	if len(candidates) == 0 {
		return nil, fmt.Errorf("no canned videos available")
	}

	promptCandidates := make([]prompt.CannedCandidate, 0, len(candidates))
	for _, c := range candidates {
		title := c.ScenarioID
		if sc, ok := scenario.FindByID(c.ScenarioID); ok {
			title = sc.Korean
		}
		promptCandidates = append(promptCandidates, prompt.CannedCandidate{ID: c.ScenarioID, Title: title})
	}

	fallback := &CannedMatch{ScenarioID: candidates[0].ScenarioID, VideoURL: candidates[0].URL}

	raw, err := s.llmClient.CompleteJSON(ctx, prompt.BestCannedPrompt(prompt.FormatConversation(messages), promptCandidates))
	if err != nil {
		log.Warnf("[AnalysisService] Canned picker failed, using first candidate: %v", err)
		return fallback, nil
	}

	var choice struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(raw, &choice); err != nil {
		log.Warnf("[AnalysisService] Canned picker returned malformed JSON, using first candidate: %v", err)
		return fallback, nil
	}

	if url := scenario.FindCannedVideo(choice.ID); url != "" {
		return &CannedMatch{ScenarioID: choice.ID, VideoURL: url}, nil
	}
	log.Warnf("[AnalysisService] Canned picker chose unknown id %q, using first candidate", choice.ID)
	return fallback, nil
}
