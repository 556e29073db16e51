// Package vector adapts Elasticsearch into the vector store used for
// support-center recommendations: one index of cosine dense vectors with a
// JSON payload per point.
package vector

import (
	"bytes"
	"context"
	"crypto/tls"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"culturebridge/internal/config"
	"culturebridge/pkg/log"

	"github.com/elastic/go-elasticsearch/v8"
)

// Point is one stored vector with its metadata payload.
type Point struct {
	ID      string                 `json:"id"`
	Vector  []float32              `json:"vector"`
	Payload map[string]interface{} `json:"payload"`
}

// Hit is one ranked search result.
type Hit struct {
	ID      string                 `json:"id"`
	Score   float64                `json:"score"`
	Payload map[string]interface{} `json:"payload"`
}

// Filter restricts search candidates to points whose payload field equals
// the given value.
type Filter struct {
	Field string
	Value string
}

// DefaultTopK is the result count used when the caller passes topK <= 0.
const DefaultTopK = 3

// Client is the gateway to the vector store.
type Client struct {
	es    *elasticsearch.Client
	index string
	dims  int
}

// NewClient connects to the vector store. dims fixes the dimensionality of
// every stored vector.
func NewClient(cfg config.ElasticsearchConfig, dims int) (*Client, error) {
	esCfg := elasticsearch.Config{
		Addresses: []string{cfg.Addresses},
		Username:  cfg.Username,
		Password:  cfg.Password,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		},
	}
	client, err := elasticsearch.NewClient(esCfg)
	if err != nil {
		return nil, err
	}
	return &Client{es: client, index: cfg.IndexName, dims: dims}, nil
}

// Collection returns the name of the backing collection.
func (c *Client) Collection() string {
	return c.index
}

// EnsureCollection declares the collection with the fixed dimensionality
// and cosine distance. An already existing collection is success.
func (c *Client) EnsureCollection(ctx context.Context) error {
	res, err := c.es.Indices.Exists([]string{c.index}, c.es.Indices.Exists.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("failed to check collection existence: %w", err)
	}
	defer res.Body.Close()
	if !res.IsError() && res.StatusCode == http.StatusOK {
		log.Infof("collection '%s' already exists", c.index)
		return nil
	}
	if res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("unexpected status %d while checking collection", res.StatusCode)
	}

	mapping := fmt.Sprintf(`{
		"mappings": {
			"properties": {
				"vector": {
					"type": "dense_vector",
					"dims": %d,
					"index": true,
					"similarity": "cosine"
				},
				"payload": { "type": "object", "dynamic": true }
			}
		}
	}`, c.dims)

	res, err = c.es.Indices.Create(
		c.index,
		c.es.Indices.Create.WithContext(ctx),
		c.es.Indices.Create.WithBody(strings.NewReader(mapping)),
	)
	if err != nil {
		return fmt.Errorf("failed to create collection '%s': %w", c.index, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		// Concurrent creation races report "already exists" here; treat as success.
		if strings.Contains(string(body), "resource_already_exists_exception") {
			return nil
		}
		return fmt.Errorf("vector store error creating collection: %s", string(body))
	}

	log.Infof("collection '%s' created", c.index)
	return nil
}

// CreatePayloadIndex declares a keyword mapping for a payload field so that
// equality filters can run against it. Re-declaring an existing field is a
// no-op on the server side.
func (c *Client) CreatePayloadIndex(ctx context.Context, field string) error {
	body := fmt.Sprintf(`{
		"properties": {
			"payload": {
				"properties": {
					"%s": { "type": "keyword" }
				}
			}
		}
	}`, field)

	res, err := c.es.Indices.PutMapping(
		[]string{c.index},
		strings.NewReader(body),
		c.es.Indices.PutMapping.WithContext(ctx),
	)
	if err != nil {
		return fmt.Errorf("failed to create payload index on '%s': %w", field, err)
	}
	defer res.Body.Close()
	if res.IsError() {
		respBody, _ := io.ReadAll(res.Body)
		return fmt.Errorf("vector store error creating payload index: %s", string(respBody))
	}
	return nil
}

// UpsertPoints inserts or replaces the given points as one bulk request.
func (c *Client) UpsertPoints(ctx context.Context, points []Point) error {
	if len(points) == 0 {
		return errors.New("no points to upsert")
	}

	var buf bytes.Buffer
	for _, p := range points {
		meta := map[string]map[string]string{"index": {"_id": p.ID}}
		metaBytes, err := json.Marshal(meta)
		if err != nil {
			return fmt.Errorf("failed to marshal bulk action: %w", err)
		}
		doc := map[string]interface{}{
			"vector":  p.Vector,
			"payload": p.Payload,
		}
		docBytes, err := json.Marshal(doc)
		if err != nil {
			return fmt.Errorf("failed to marshal point %s: %w", p.ID, err)
		}
		buf.Write(metaBytes)
		buf.WriteByte('\n')
		buf.Write(docBytes)
		buf.WriteByte('\n')
	}

	res, err := c.es.Bulk(
		bytes.NewReader(buf.Bytes()),
		c.es.Bulk.WithContext(ctx),
		c.es.Bulk.WithIndex(c.index),
		c.es.Bulk.WithRefresh("true"),
	)
	if err != nil {
		return fmt.Errorf("bulk upsert failed: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return fmt.Errorf("vector store error on bulk upsert: %s", string(body))
	}

	var bulkResp struct {
		Errors bool `json:"errors"`
	}
	if err := json.NewDecoder(res.Body).Decode(&bulkResp); err != nil {
		return fmt.Errorf("failed to decode bulk response: %w", err)
	}
	if bulkResp.Errors {
		return errors.New("bulk upsert reported item-level errors")
	}

	log.Infof("upserted %d points into '%s'", len(points), c.index)
	return nil
}

// Search runs a cosine similarity search, optionally restricted by an
// equality filter. topK <= 0 falls back to DefaultTopK. There is no
// minimum-score threshold: up to topK hits come back regardless of
// relevance.
func (c *Client) Search(ctx context.Context, queryVector []float32, topK int, filter *Filter) ([]Hit, error) {
	if topK <= 0 {
		topK = DefaultTopK
	}

	knn := map[string]interface{}{
		"field":          "vector",
		"query_vector":   queryVector,
		"k":              topK,
		"num_candidates": topK * 10,
	}
	if filter != nil {
		knn["filter"] = map[string]interface{}{
			"term": map[string]interface{}{
				"payload." + filter.Field: filter.Value,
			},
		}
	}
	query := map[string]interface{}{
		"knn":     knn,
		"size":    topK,
		"_source": []string{"payload"},
	}

	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(query); err != nil {
		return nil, fmt.Errorf("failed to encode search query: %w", err)
	}

	res, err := c.es.Search(
		c.es.Search.WithContext(ctx),
		c.es.Search.WithIndex(c.index),
		c.es.Search.WithBody(&buf),
	)
	if err != nil {
		return nil, fmt.Errorf("vector search failed: %w", err)
	}
	defer res.Body.Close()
	if res.IsError() {
		body, _ := io.ReadAll(res.Body)
		return nil, fmt.Errorf("vector store error on search: %s", string(body))
	}

	var esResponse struct {
		Hits struct {
			Hits []struct {
				ID     string  `json:"_id"`
				Score  float64 `json:"_score"`
				Source struct {
					Payload map[string]interface{} `json:"payload"`
				} `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&esResponse); err != nil {
		return nil, fmt.Errorf("failed to decode search response: %w", err)
	}

	hits := make([]Hit, 0, len(esResponse.Hits.Hits))
	for _, h := range esResponse.Hits.Hits {
		hits = append(hits, Hit{ID: h.ID, Score: h.Score, Payload: h.Source.Payload})
	}
	return hits, nil
}
