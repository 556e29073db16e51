package model

// Emotion is one of the seven emotional states the analysis prompt allows.
type Emotion string

const (
	EmotionConfusion     Emotion = "confusion"
	EmotionEmbarrassment Emotion = "embarrassment"
	EmotionFrustration   Emotion = "frustration"
	EmotionAnger         Emotion = "anger"
	EmotionSadness       Emotion = "sadness"
	EmotionLoneliness    Emotion = "loneliness"
	EmotionAnxiety       Emotion = "anxiety"
)

// Emotions lists the closed vocabulary in prompt order.
var Emotions = []Emotion{
	EmotionConfusion,
	EmotionEmbarrassment,
	EmotionFrustration,
	EmotionAnger,
	EmotionSadness,
	EmotionLoneliness,
	EmotionAnxiety,
}

// Category is one of the four situation categories.
type Category string

const (
	CategorySchool       Category = "school"
	CategoryWorkplace    Category = "workplace"
	CategoryDaily        Category = "daily"
	CategoryRelationship Category = "relationship"
)

// Categories lists the closed vocabulary in prompt order.
var Categories = []Category{
	CategorySchool,
	CategoryWorkplace,
	CategoryDaily,
	CategoryRelationship,
}

// EmotionAnalysis is the classification returned to clients. The enum
// membership of Emotions and Category is enforced only by the prompt
// contract, not by local validation.
type EmotionAnalysis struct {
	Emotions    []Emotion `json:"emotions"`
	Category    Category  `json:"category"`
	Subcategory string    `json:"subcategory,omitempty"`
	Confidence  float64   `json:"confidence"`
}

// AnalysisInsight is the full first-call response shape, carrying the
// summary, cultural context and keywords the pipeline feeds into the
// second call and the scenario search.
type AnalysisInsight struct {
	Emotions         []Emotion `json:"emotions"`
	Category         Category  `json:"category"`
	Subcategory      string    `json:"subcategory"`
	Confidence       float64   `json:"confidence"`
	SituationSummary string    `json:"situation_summary"`
	CulturalContext  string    `json:"cultural_context"`
	Keywords         []string  `json:"keywords"`
}

// Analysis extracts the client-facing classification.
func (in AnalysisInsight) Analysis() EmotionAnalysis {
	return EmotionAnalysis{
		Emotions:    in.Emotions,
		Category:    in.Category,
		Subcategory: in.Subcategory,
		Confidence:  in.Confidence,
	}
}

// Solution is the culturally-contextualized advice from the second call.
type Solution struct {
	CulturalContext string   `json:"culturalContext"`
	Explanation     string   `json:"explanation"`
	CorrectResponse string   `json:"correctResponse"`
	AdditionalTips  []string `json:"additionalTips,omitempty"`
}

// Evaluation scores a user's practice answer against a situation.
type Evaluation struct {
	Score        int    `json:"score"`
	Feedback     string `json:"feedback"`
	BetterAnswer string `json:"betterAnswer"`
}
