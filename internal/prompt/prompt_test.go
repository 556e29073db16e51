package prompt

import (
	"strings"
	"testing"

	"culturebridge/internal/model"
)

func TestFormatConversationRolePrefixes(t *testing.T) {
	messages := []model.Message{
		{Role: model.RoleUser, Content: "밥 먹었어?라고 물어봤어요"},
		{Role: model.RoleAssistant, Content: "그건 인사예요"},
	}

	got := FormatConversation(messages)
	want := "사용자: 밥 먹었어?라고 물어봤어요\nAI: 그건 인사예요"
	if got != want {
		t.Fatalf("FormatConversation = %q, want %q", got, want)
	}
}

func TestFormatConversationEmpty(t *testing.T) {
	if got := FormatConversation(nil); got != "" {
		t.Fatalf("expected empty transcript, got %q", got)
	}
}

func TestAnalysisPromptContainsContractAndVocabulary(t *testing.T) {
	p := AnalysisPrompt("사용자: 회식에서 일이 있었어요", "ko")

	if !strings.Contains(p, "회식에서 일이 있었어요") {
		t.Error("conversation missing from prompt")
	}
	for _, field := range []string{"emotions", "category", "subcategory", "confidence", "situation_summary", "cultural_context", "keywords"} {
		if !strings.Contains(p, field) {
			t.Errorf("JSON field %q missing from prompt", field)
		}
	}
	for _, e := range model.Emotions {
		if !strings.Contains(p, string(e)) {
			t.Errorf("emotion %q missing from prompt", e)
		}
	}
	for _, c := range model.Categories {
		if !strings.Contains(p, string(c)) {
			t.Errorf("category %q missing from prompt", c)
		}
	}
}

func TestAnalysisPromptEnglish(t *testing.T) {
	p := AnalysisPrompt("transcript", "en")
	if !strings.Contains(p, "Analyze the cultural conflict") {
		t.Error("expected the English prompt variant")
	}
	if !strings.Contains(p, "situation_summary") {
		t.Error("English prompt must keep the same JSON contract")
	}
}

func TestSolutionPromptIncludesClassification(t *testing.T) {
	p := SolutionPrompt("상사가 화를 냈어요", []model.Emotion{model.EmotionConfusion, model.EmotionAnxiety}, model.CategoryWorkplace, "ko")

	if !strings.Contains(p, "상사가 화를 냈어요") {
		t.Error("situation summary missing")
	}
	if !strings.Contains(p, "confusion, anxiety") {
		t.Error("emotions missing")
	}
	if !strings.Contains(p, "workplace") {
		t.Error("category missing")
	}
	for _, field := range []string{"culturalContext", "explanation", "correctResponse", "additionalTips"} {
		if !strings.Contains(p, field) {
			t.Errorf("JSON field %q missing from prompt", field)
		}
	}
}

func TestVideoPromptSceneTypes(t *testing.T) {
	sc := model.Scenario{
		ID:              "bap-meogeosseo",
		Korean:          "밥 먹었어?",
		Context:         "지나가다 마주친 상황",
		CorrectResponse: "네, 먹었어요!",
	}

	wrong := VideoPrompt(sc, SceneWrong)
	if !strings.Contains(wrong, "잘못 이해") || !strings.Contains(wrong, "8초") {
		t.Errorf("wrong scene prompt malformed: %q", wrong)
	}

	correct := VideoPrompt(sc, SceneCorrect)
	if !strings.Contains(correct, "네, 먹었어요!") || !strings.Contains(correct, "8초") {
		t.Errorf("correct scene prompt malformed: %q", correct)
	}

	comparison := VideoPrompt(sc, SceneComparison)
	if !strings.Contains(comparison, "비교") || !strings.Contains(comparison, "10초") {
		t.Errorf("comparison scene prompt malformed: %q", comparison)
	}

	// An unknown scene type falls back to the correct-response framing.
	if got := VideoPrompt(sc, "whatever"); got != correct {
		t.Errorf("unknown scene type should render like the correct scene")
	}
}

func TestBestCannedPromptListsCandidates(t *testing.T) {
	p := BestCannedPrompt("사용자: 안녕하세요", []CannedCandidate{
		{ID: "bap-meogeosseo", Title: "밥 먹었어?"},
		{ID: "daeume-boja", Title: "다음에 보자"},
	})

	for _, want := range []string{"bap-meogeosseo", "daeume-boja", "밥 먹었어?", "다음에 보자", `{"id"`} {
		if !strings.Contains(p, want) {
			t.Errorf("%q missing from prompt", want)
		}
	}
}

func TestChatSystemPromptByLanguage(t *testing.T) {
	if !strings.Contains(ChatSystemPrompt("ko"), "상담사") {
		t.Error("Korean system prompt missing")
	}
	if !strings.Contains(ChatSystemPrompt("en"), "counselor") {
		t.Error("English system prompt missing")
	}
	if ChatSystemPrompt("") != ChatSystemPrompt("ko") {
		t.Error("unknown language should default to Korean")
	}
}
