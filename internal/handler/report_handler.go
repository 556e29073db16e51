package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"culturebridge/internal/model"
	"culturebridge/internal/repository"
	"culturebridge/internal/scenario"
	"culturebridge/pkg/log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ReportHandler serves the archived report surface. Admin only.
type ReportHandler struct {
	reportRepo repository.ReportRepository
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(reportRepo repository.ReportRepository) *ReportHandler {
	return &ReportHandler{reportRepo: reportRepo}
}

// List returns one page of archived reports.
func (h *ReportHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	reports, total, err := h.reportRepo.List(page, pageSize)
	if err != nil {
		log.Errorf("[ReportHandler] Failed to list reports: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list reports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"total": total, "reports": reports})
}

// Get returns one archived report expanded back into the payload shape
// the client snapshotted. Conversation messages are not archived, so the
// payload carries everything except the transcript itself.
func (h *ReportHandler) Get(c *gin.Context) {
	id := c.Param("id")

	report, err := h.reportRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "report not found"})
			return
		}
		log.Errorf("[ReportHandler] Failed to load report %s: %v", id, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load report"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"report":  report,
		"payload": reportToPayload(report),
	})
}

// reportToPayload rebuilds the client-facing snapshot from the archived
// row: nested JSON columns are expanded and the scenario ids resolved
// against the catalog.
func reportToPayload(report *model.Report) model.ReportPayload {
	payload := model.ReportPayload{
		Lang:        report.Lang,
		GeneratedAt: report.GeneratedAt,
	}
	if report.AnalysisJSON != "" {
		if err := json.Unmarshal([]byte(report.AnalysisJSON), &payload.Analysis); err != nil {
			log.Warnf("[ReportHandler] Malformed analysis column on report %s: %v", report.ID, err)
		}
	}
	if report.SolutionJSON != "" {
		if err := json.Unmarshal([]byte(report.SolutionJSON), &payload.Solution); err != nil {
			log.Warnf("[ReportHandler] Malformed solution column on report %s: %v", report.ID, err)
		}
	}
	for _, scenarioID := range strings.Split(report.ScenarioIDs, ",") {
		if sc, ok := scenario.FindByID(scenarioID); ok {
			payload.RelatedScenarios = append(payload.RelatedScenarios, sc)
		}
	}
	return payload
}
