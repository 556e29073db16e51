// Package pipeline consumes background tasks from the message queue.
package pipeline

import (
	"context"
	"fmt"
	"strings"

	"culturebridge/internal/model"
	"culturebridge/internal/repository"
	"culturebridge/pkg/log"
	"culturebridge/pkg/tasks"
)

// Processor persists report archive tasks into the database.
type Processor struct {
	reportRepo repository.ReportRepository
}

// NewProcessor creates a Processor.
func NewProcessor(reportRepo repository.ReportRepository) *Processor {
	return &Processor{reportRepo: reportRepo}
}

// Process stores one completed analysis as a report row. Errors are
// returned so the consumer can retry the message.
func (p *Processor) Process(ctx context.Context, task tasks.ReportArchiveTask) error {
	report := &model.Report{
		ID:            task.ReportID,
		Lang:          task.Lang,
		Category:      task.Category,
		AnalysisJSON:  task.AnalysisJSON,
		SolutionJSON:  task.SolutionJSON,
		ScenarioIDs:   strings.Join(task.ScenarioIDs, ","),
		TranscriptLen: task.TranscriptLen,
		GeneratedAt:   task.GeneratedAt,
	}

	if err := p.reportRepo.Create(report); err != nil {
		return fmt.Errorf("failed to persist report %s: %w", task.ReportID, err)
	}

	log.Infof("[Pipeline] Archived report %s (category=%s)", task.ReportID, task.Category)
	return nil
}
