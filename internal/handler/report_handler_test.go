package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"culturebridge/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type fakeReportRepo struct {
	report *model.Report
}

func (f *fakeReportRepo) Create(report *model.Report) error { return nil }

func (f *fakeReportRepo) FindByID(id string) (*model.Report, error) {
	if f.report == nil || f.report.ID != id {
		return nil, gorm.ErrRecordNotFound
	}
	return f.report, nil
}

func (f *fakeReportRepo) List(page, pageSize int) ([]model.Report, int64, error) {
	if f.report == nil {
		return nil, 0, nil
	}
	return []model.Report{*f.report}, 1, nil
}

func setupReportRouter(repo *fakeReportRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewReportHandler(repo)
	r.GET("/reports/:id", h.Get)
	return r
}

func getPath(t *testing.T, r *gin.Engine, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestGetReportNotFound(t *testing.T) {
	r := setupReportRouter(&fakeReportRepo{})

	resp := getPath(t, r, "/reports/missing")
	if resp.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.Code)
	}
}

func TestGetReportExpandsPayload(t *testing.T) {
	generatedAt := time.Date(2026, 8, 30, 21, 5, 0, 0, time.UTC)
	r := setupReportRouter(&fakeReportRepo{
		report: &model.Report{
			ID:           "rep-1",
			Lang:         "ko",
			Category:     "workplace",
			AnalysisJSON: `{"emotions":["confusion"],"category":"workplace","confidence":0.8}`,
			SolutionJSON: `{"culturalContext":"회식 문화","explanation":"설명","correctResponse":"정중한 거절"}`,
			ScenarioIDs:  "hoesik-sul,unknown-id",
			GeneratedAt:  generatedAt,
		},
	})

	resp := getPath(t, r, "/reports/rep-1")
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	var out struct {
		Payload model.ReportPayload `json:"payload"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &out); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	p := out.Payload
	if p.Analysis.Category != model.CategoryWorkplace || len(p.Analysis.Emotions) != 1 {
		t.Errorf("analysis column not expanded: %+v", p.Analysis)
	}
	if p.Solution.CorrectResponse != "정중한 거절" {
		t.Errorf("solution column not expanded: %+v", p.Solution)
	}
	if len(p.RelatedScenarios) != 1 || p.RelatedScenarios[0].ID != "hoesik-sul" {
		t.Errorf("scenario ids must resolve against the catalog, dropping unknowns: %+v", p.RelatedScenarios)
	}
	if p.Lang != "ko" || !p.GeneratedAt.Equal(generatedAt) {
		t.Errorf("payload metadata lost: %+v", p)
	}
}
