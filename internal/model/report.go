package model

import "time"

// ReportPayload is the one-shot analysis snapshot handed to the report
// page. Clients keep it in browser local storage; the server additionally
// archives it through the kafka pipeline.
type ReportPayload struct {
	Analysis         EmotionAnalysis `json:"analysis"`
	Solution         Solution        `json:"solution"`
	RelatedScenarios []Scenario      `json:"relatedScenarios"`
	Messages         []Message       `json:"messages"`
	Lang             string          `json:"lang"`
	GeneratedAt      time.Time       `json:"generatedAt"`
}

// Report is the archived form of a completed analysis. The nested
// structures are stored as JSON text columns.
type Report struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Lang          string    `gorm:"size:8" json:"lang"`
	Category      string    `gorm:"size:32;index" json:"category"`
	AnalysisJSON  string    `gorm:"type:text" json:"-"`
	SolutionJSON  string    `gorm:"type:text" json:"-"`
	ScenarioIDs   string    `gorm:"size:255" json:"scenarioIds"`
	TranscriptLen int       `json:"transcriptLen"`
	GeneratedAt   time.Time `json:"generatedAt"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (Report) TableName() string {
	return "reports"
}
