// Package prompt renders the instruction strings sent to the language
// model. Everything here is pure string construction: no side effects, no
// remote calls, and empty inputs still produce valid prompts.
package prompt

import (
	"fmt"
	"strings"

	"culturebridge/internal/model"
)

// Scene types for media prompts.
const (
	SceneWrong      = "wrong"
	SceneCorrect    = "correct"
	SceneComparison = "comparison"
)

// chatSystemPromptKo steers the open-ended counseling dialogue.
const chatSystemPromptKo = `당신은 한국에 적응 중인 외국인과 이주민을 돕는 따뜻하고 공감적인 AI 상담사입니다.

역할:
- 사용자가 겪은 문화적 갈등 상황을 자연스러운 대화로 파악합니다
- 2-3턴의 대화로 충분한 맥락을 수집합니다
- 감정을 인정하고 공감을 먼저 표현합니다
- 한국 문화를 비판하지 않고 객관적으로 설명합니다

대화 가이드라인:
1. 사용자의 이야기를 경청하고 공감을 표현하세요
2. 구체적인 상황을 파악하기 위해 자연스럽게 질문하세요
3. 감정 상태를 파악하세요 ("그때 기분이 어땠어요?")
4. 충분한 정보가 모이면 분석을 시작할 수 있다고 안내하세요

톤:
- 따뜻하고 친근한 말투
- 격식을 차리지 않은 자연스러운 대화
- 공감과 이해를 표현하는 언어 사용`

const chatSystemPromptEn = `You are a warm, empathetic AI counselor helping foreigners and immigrants adjusting to life in Korea.

Role:
- Understand the cultural conflict the user experienced through natural conversation
- Gather enough context within 2-3 turns
- Acknowledge feelings and express empathy first
- Explain Korean culture objectively, without criticizing it

Guidelines:
1. Listen to the user's story and show empathy
2. Ask natural follow-up questions to understand the specific situation
3. Check how the user felt ("How did that make you feel?")
4. Once you have enough information, let the user know the analysis can begin

Tone:
- Warm and friendly
- Casual, natural conversation
- Language that expresses empathy and understanding`

// ChatSystemPrompt returns the counseling system prompt for the language.
func ChatSystemPrompt(lang string) string {
	if lang == "en" {
		return chatSystemPromptEn
	}
	return chatSystemPromptKo
}

// FormatConversation flattens a message list into a role-prefixed
// transcript, one turn per line.
func FormatConversation(messages []model.Message) string {
	lines := make([]string, 0, len(messages))
	for _, msg := range messages {
		role := "AI"
		if msg.Role == model.RoleUser {
			role = "사용자"
		}
		lines = append(lines, fmt.Sprintf("%s: %s", role, msg.Content))
	}
	return strings.Join(lines, "\n")
}

func emotionVocabulary() string {
	names := make([]string, len(model.Emotions))
	for i, e := range model.Emotions {
		names[i] = fmt.Sprintf("%q", string(e))
	}
	return strings.Join(names, ", ")
}

// AnalysisPrompt instructs the model to classify a conversation. The JSON
// contract and the closed emotion/category vocabularies are spelled out in
// the instructions; nothing enforces them locally.
func AnalysisPrompt(conversation, lang string) string {
	if lang == "en" {
		return fmt.Sprintf(`Analyze the cultural conflict the user experienced in the following conversation.

Conversation:
%s

Respond with a JSON object in exactly this shape:
{
  "emotions": any that apply among [%s],
  "category": one of "school" | "workplace" | "daily" | "relationship",
  "subcategory": a specific sub-topic such as "professor relationship" or "group project",
  "confidence": a number between 0.0 and 1.0,
  "situation_summary": "summary of the situation (1-2 sentences)",
  "cultural_context": "explanation of the Korean cultural context",
  "keywords": ["related", "keywords"]
}

Emotion categories:
- confusion, embarrassment, frustration, anger, sadness, loneliness, anxiety

Situation categories:
- school: classes, professors, group projects
- workplace: bosses, coworkers, company dinners
- daily: landlords, neighbors, administration
- relationship: friends, partners, gatherings`, conversation, emotionVocabulary())
	}

	return fmt.Sprintf(`다음 대화에서 사용자가 겪은 문화적 갈등 상황을 분석해주세요.

대화 내용:
%s

다음 형식의 JSON으로 분석 결과를 제공해주세요:
{
  "emotions": [%s] 중 해당되는 감정들,
  "category": "school" | "workplace" | "daily" | "relationship" 중 하나,
  "subcategory": "교수 관계", "조별과제", "상사 관계" 등 구체적 하위 카테고리,
  "confidence": 0.0 ~ 1.0 사이의 신뢰도,
  "situation_summary": "상황 요약 (1-2문장)",
  "cultural_context": "한국 문화적 맥락 설명",
  "keywords": ["관련", "키워드", "배열"]
}

감정 카테고리:
- confusion: 혼란
- embarrassment: 당혹/수치
- frustration: 좌절
- anger: 분노
- sadness: 슬픔
- loneliness: 외로움
- anxiety: 불안

상황 카테고리:
- school: 학교생활 (수업, 교수관계, 조별과제)
- workplace: 직장생활 (상사, 동료, 회식문화)
- daily: 일상생활 (집주인, 이웃, 행정처리)
- relationship: 대인관계 (친구, 연인, 모임)`, conversation, emotionVocabulary())
}

// SolutionPrompt instructs the model to produce culturally-contextualized
// advice, seeded by the first call's summary and classification.
func SolutionPrompt(situationSummary string, emotions []model.Emotion, category model.Category, lang string) string {
	names := make([]string, len(emotions))
	for i, e := range emotions {
		names[i] = string(e)
	}
	joined := strings.Join(names, ", ")

	if lang == "en" {
		return fmt.Sprintf(`Provide a solution for the following cultural conflict the user experienced.

Situation: %s
Emotions: %s
Category: %s

Respond with a JSON object in exactly this shape:
{
  "culturalContext": "the Korean cultural background of this situation (2-3 sentences)",
  "explanation": "an objective explanation of why this happened (2-3 sentences)",
  "correctResponse": "how to respond next time (a concrete example)",
  "additionalTips": ["tip 1", "tip 2", "tip 3"]
}

Guidelines:
- Explain Korean culture objectively, do not criticize it
- Give practical, concrete advice
- Keep a warm, empathetic tone
- Acknowledge the user's feelings`, situationSummary, joined, category)
	}

	return fmt.Sprintf(`사용자가 겪은 다음 문화적 갈등 상황에 대한 솔루션을 제공해주세요.

상황: %s
감정: %s
카테고리: %s

다음 형식의 JSON으로 솔루션을 제공해주세요:
{
  "culturalContext": "이 상황의 한국 문화적 배경 설명 (2-3문장)",
  "explanation": "왜 이런 일이 발생했는지 객관적으로 설명 (2-3문장)",
  "correctResponse": "다음에는 이렇게 대응하면 좋습니다 (구체적 예시)",
  "additionalTips": ["추가 팁 1", "추가 팁 2", "추가 팁 3"]
}

가이드라인:
- 한국 문화를 비판하지 말고 객관적으로 설명하세요
- 실용적이고 구체적인 조언을 제공하세요
- 따뜻하고 공감적인 톤을 유지하세요
- 사용자의 감정을 인정하세요`, situationSummary, joined, category)
}

// EvaluationPrompt asks the model to score a practice answer against a
// situation.
func EvaluationPrompt(userAnswer, situationContext, lang string) string {
	if lang == "en" {
		return fmt.Sprintf(`Score the user's reply for appropriateness to the situation.

Context:
%s

User answer:
%s

Return JSON:
{
  "score": 0-100,
  "feedback": "short feedback",
  "betterAnswer": "better example answer"
}`, situationContext, userAnswer)
	}

	return fmt.Sprintf(`다음 답변을 상황에 맞는지 평가해 주세요.

상황:
%s

사용자 답변:
%s

JSON 형태로 출력:
{
  "score": 0-100 점수 (적절성),
  "feedback": "짧은 피드백",
  "betterAnswer": "더 나은 예시 답변"
}`, situationContext, userAnswer)
}

// VideoPrompt frames a scenario for media generation. The three scene
// types produce different narrative framings of the same situation.
func VideoPrompt(s model.Scenario, sceneType string) string {
	const base = "한국 문화 상황 시뮬레이션 영상"

	switch sceneType {
	case SceneWrong:
		return fmt.Sprintf("%s: \"%s\" 표현을 잘못 이해하여 어색한 상황이 발생하는 장면. 맥락: %s. 8초 분량. 자연스러운 한국어 대화와 ambient 소리 포함.", base, s.Korean, s.Context)
	case SceneComparison:
		return fmt.Sprintf("%s: \"%s\" 표현의 잘못된 이해와 올바른 이해를 비교하는 장면. 먼저 잘못 이해한 경우를 보여주고, 다음으로 올바르게 대응하는 모습을 보여줌. 맥락: %s. 10초 분량. 자연스러운 한국어 대화와 ambient 소리 포함.", base, s.Korean, s.Context)
	default:
		response := ""
		if s.CorrectResponse != "" {
			response = fmt.Sprintf("올바른 응답: \"%s\". ", s.CorrectResponse)
		}
		return fmt.Sprintf("%s: \"%s\" 표현에 올바르게 대응하는 장면. %s맥락: %s. 8초 분량. 밝고 긍정적인 분위기. 자연스러운 한국어 대화와 ambient 소리 포함.", base, s.Korean, response, s.Context)
	}
}

// SimulationPrompt builds an illustration prompt directly from a
// conversation, for situations that have no catalog scenario.
func SimulationPrompt(messages []model.Message) string {
	return fmt.Sprintf(`A realistic illustration of an everyday situation in Korea, drawn from the following conversation between a foreigner and a counselor.

Conversation:
%s

Show the cultural misunderstanding moment in a single scene. Natural lighting, warm tones, no text or captions in the image.`, FormatConversation(messages))
}

// CannedCandidate is one entry offered to the best-match picker.
type CannedCandidate struct {
	ID    string
	Title string
}

// BestCannedPrompt asks the model to pick exactly one candidate id for the
// conversation.
func BestCannedPrompt(conversation string, candidates []CannedCandidate) string {
	var list strings.Builder
	for _, c := range candidates {
		fmt.Fprintf(&list, "- %s: %s\n", c.ID, c.Title)
	}

	return fmt.Sprintf(`다음 대화 내용과 가장 관련 있는 상황을 아래 후보 중에서 하나만 골라주세요.

대화 내용:
%s

후보 목록:
%s
다음 형식의 JSON으로 답해주세요. id는 반드시 후보 목록에 있는 값이어야 합니다:
{"id": "선택한 후보의 id"}`, conversation, list.String())
}
