// Package tasks defines the structures carried over Kafka.
package tasks

import "time"

// ReportArchiveTask asks the background processor to persist one completed
// analysis into the report archive.
type ReportArchiveTask struct {
	ReportID      string    `json:"report_id"`
	Lang          string    `json:"lang"`
	Category      string    `json:"category"`
	AnalysisJSON  string    `json:"analysis_json"`
	SolutionJSON  string    `json:"solution_json"`
	ScenarioIDs   []string  `json:"scenario_ids"`
	TranscriptLen int       `json:"transcript_len"`
	GeneratedAt   time.Time `json:"generated_at"`
}
