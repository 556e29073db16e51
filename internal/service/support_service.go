package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"culturebridge/internal/model"
	"culturebridge/internal/prompt"
	"culturebridge/internal/support"
	"culturebridge/pkg/embedding"
	"culturebridge/pkg/log"
	"culturebridge/pkg/vector"
)

// ErrNotConfigured is returned when the embedding or vector store settings
// are absent. Callers see it before any network traffic happens.
var ErrNotConfigured = errors.New("support search is not configured")

// SupportSearchRequest narrows a conversation into a help request. The
// query text is built from the transcript; kind and mode only bias the
// embedding (mode additionally becomes a hard filter when not "all").
type SupportSearchRequest struct {
	Messages []model.Message `json:"messages"`
	Language string          `json:"language"` // ko | en, default ko
	Mode     string          `json:"mode"`     // online | offline | all | ""
	Kind     string          `json:"kind"`     // community | counseling | all | ""
	TopK     int             `json:"topK"`
}

// SupportSearchResponse is the ranked answer plus the collection it came
// from.
type SupportSearchResponse struct {
	Collection string                `json:"collection"`
	Count      int                   `json:"count"`
	Results    []model.SupportResult `json:"results"`
}

// EmbedCentersResult reports an index rebuild.
type EmbedCentersResult struct {
	Collection string `json:"collection"`
	Upserted   int    `json:"upserted"`
}

// SupportService finds support centers by semantic similarity.
type SupportService interface {
	Search(ctx context.Context, req SupportSearchRequest) (*SupportSearchResponse, error)
	EmbedCenters(ctx context.Context) (*EmbedCentersResult, error)
}

type supportService struct {
	embeddingClient embedding.Client
	vectorClient    *vector.Client
}

// NewSupportService creates a SupportService. Either client may be nil
// when the corresponding backend is not configured.
func NewSupportService(embeddingClient embedding.Client, vectorClient *vector.Client) SupportService {
	return &supportService{
		embeddingClient: embeddingClient,
		vectorClient:    vectorClient,
	}
}

func (s *supportService) configured() bool {
	return s.embeddingClient != nil && s.vectorClient != nil
}

// queryText flattens the conversation and folds language-appropriate kind
// and mode hints into the embedded query so that the similarity ranking
// reflects them even without a hard filter.
func queryText(req SupportSearchRequest) string {
	ko := req.Language != "en"

	var preference string
	switch req.Kind {
	case "community":
		if ko {
			preference = "커뮤니티, 모임, 동료 지지"
		} else {
			preference = "community, peer support, group meeting"
		}
	case "counseling":
		if ko {
			preference = "상담, 심리 상담, 전문가 상담"
		} else {
			preference = "counseling, therapy, professional help"
		}
	}

	var modeText string
	switch req.Mode {
	case "online":
		if ko {
			modeText = "온라인 지원"
		} else {
			modeText = "online support"
		}
	case "offline":
		if ko {
			modeText = "오프라인 대면 지원"
		} else {
			modeText = "offline in-person support"
		}
	}

	parts := make([]string, 0, 3)
	for _, p := range []string{prompt.FormatConversation(req.Messages), preference, modeText} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "\n")
}

func toString(v interface{}) string {
	s, _ := v.(string)
	return s
}

func toStringSlice(v interface{}) []string {
	raw, ok := v.([]interface{})
	if !ok {
		return nil
	}
	out := make([]string, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func hitToResult(hit vector.Hit) model.SupportResult {
	p := hit.Payload
	return model.SupportResult{
		ID:          hit.ID,
		Score:       hit.Score,
		CenterID:    toString(p["center_id"]),
		Name:        toString(p["name"]),
		NameKo:      toString(p["name_ko"]),
		Type:        toString(p["type"]),
		City:        toString(p["city"]),
		District:    toString(p["district"]),
		Services:    toStringSlice(p["services"]),
		Languages:   toStringSlice(p["languages"]),
		SessionType: toStringSlice(p["session_type"]),
		Website:     toString(p["website"]),
		Phone:       toString(p["phone"]),
		Address:     toString(p["address"]),
		Description: toString(p["description"]),
	}
}

// Search embeds the query and runs a filtered similarity search. The
// session type becomes a hard filter only for an explicit online/offline
// mode; "all" and empty modes rank every center.
func (s *supportService) Search(ctx context.Context, req SupportSearchRequest) (*SupportSearchResponse, error) {
	if !s.configured() {
		return nil, ErrNotConfigured
	}

	queryVector, err := s.embeddingClient.CreateEmbedding(ctx, queryText(req))
	if err != nil {
		return nil, fmt.Errorf("failed to embed search query: %w", err)
	}

	var filter *vector.Filter
	if req.Mode == "online" || req.Mode == "offline" {
		filter = &vector.Filter{Field: "session_type", Value: req.Mode}
	}

	topK := req.TopK
	if topK <= 0 {
		topK = vector.DefaultTopK
	}

	hits, err := s.vectorClient.Search(ctx, queryVector, topK, filter)
	if err != nil {
		return nil, fmt.Errorf("support search failed: %w", err)
	}

	results := make([]model.SupportResult, 0, len(hits))
	for _, hit := range hits {
		results = append(results, hitToResult(hit))
	}
	return &SupportSearchResponse{
		Collection: s.vectorClient.Collection(),
		Count:      len(results),
		Results:    results,
	}, nil
}

// EmbedCenters builds the support center collection from the bundled
// fixtures: create the collection, embed every center's description text
// in one batch, and upsert the points with their payloads.
func (s *supportService) EmbedCenters(ctx context.Context) (*EmbedCentersResult, error) {
	if !s.configured() {
		return nil, ErrNotConfigured
	}

	centers := support.Centers()

	log.Infof("[SupportService] Embedding %d support centers into %q", len(centers), s.vectorClient.Collection())
	if err := s.vectorClient.EnsureCollection(ctx); err != nil {
		return nil, fmt.Errorf("failed to ensure collection: %w", err)
	}
	if err := s.vectorClient.CreatePayloadIndex(ctx, "session_type"); err != nil {
		return nil, fmt.Errorf("failed to create payload index: %w", err)
	}

	texts := make([]string, 0, len(centers))
	for _, c := range centers {
		texts = append(texts, c.EmbeddingText)
	}
	vectors, err := s.embeddingClient.CreateEmbeddings(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("failed to embed centers: %w", err)
	}

	points := make([]vector.Point, 0, len(centers))
	for i, c := range centers {
		points = append(points, vector.Point{
			ID:     strconv.Itoa(i + 1),
			Vector: vectors[i],
			Payload: map[string]interface{}{
				"center_id":    c.ID,
				"name":         c.Name,
				"name_ko":      c.NameKo,
				"type":         c.Type,
				"city":         c.City,
				"district":     c.District,
				"services":     c.Services,
				"languages":    c.Languages,
				"session_type": c.SessionType,
				"website":      c.Website,
				"phone":        c.Phone,
				"address":      c.Address,
				"description":  c.Description,
			},
		})
	}

	if err := s.vectorClient.UpsertPoints(ctx, points); err != nil {
		return nil, fmt.Errorf("failed to upsert centers: %w", err)
	}

	log.Infof("[SupportService] Embedded %d support centers", len(points))
	return &EmbedCentersResult{
		Collection: s.vectorClient.Collection(),
		Upserted:   len(points),
	}, nil
}
