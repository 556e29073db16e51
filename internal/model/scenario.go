package model

// Scenario describes one idiomatic Korean phrase or social situation:
// its literal and actual meaning, the cultural context behind it and a
// template prompt for media generation. Scenarios are defined statically
// and never mutated.
type Scenario struct {
	ID              string   `json:"id"`
	Category        Category `json:"category"`
	Korean          string   `json:"korean"`
	Literal         string   `json:"literal,omitempty"`
	Actual          string   `json:"actual,omitempty"`
	Context         string   `json:"context"`
	CorrectResponse string   `json:"correctResponse,omitempty"`
	RealPromise     string   `json:"realPromise,omitempty"`
	Signs           []string `json:"signs,omitempty"`
	PoliteRefusal   []string `json:"politeRefusal,omitempty"`
	Tips            []string `json:"tips,omitempty"`
	VideoPrompt     string   `json:"videoPrompt"`
}
