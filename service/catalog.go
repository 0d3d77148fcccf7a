package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/greeshma-prabhu/marketing-tool/config"
	"github.com/greeshma-prabhu/marketing-tool/pkg/logger"
)

// CatalogService proxies an external template catalog API so the frontend
// never calls it cross-origin. Any upstream failure degrades to an empty
// template list; the caller falls back to the built-in templates.
type CatalogService struct {
	config     *config.CatalogConfig
	httpClient *http.Client
}

// CatalogTemplate is one entry of the external catalog, normalized to the
// fields the frontend renders.
type CatalogTemplate struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ThumbnailURL string `json:"thumbnail_url"`
	PreviewURL   string `json:"preview_url,omitempty"`
	Category     string `json:"category"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
}

// catalogListResponse tolerates the upstream's varying response shapes.
type catalogListResponse struct {
	Templates []map[string]any `json:"templates"`
	Data      []map[string]any `json:"data"`
	Results   []map[string]any `json:"results"`
	Items     []map[string]any `json:"items"`
}

func NewCatalogService(cfg *config.CatalogConfig) *CatalogService {
	return &CatalogService{
		config: cfg,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

// FetchTemplates queries the upstream catalog. Failures of any kind (no
// key, network, bad status, bad JSON) return an empty list, never an error.
func (s *CatalogService) FetchTemplates(ctx context.Context, category string, limit int) []CatalogTemplate {
	if s.config.APIKey == "" || s.config.APIURL == "" {
		return []CatalogTemplate{}
	}
	if category == "" {
		category = s.config.DefaultCategory
	}
	if limit <= 0 {
		limit = 20
	}

	req, err := http.NewRequestWithContext(ctx, "GET", s.config.APIURL+"/templates", nil)
	if err != nil {
		return []CatalogTemplate{}
	}
	q := req.URL.Query()
	q.Set("category", category)
	q.Set("limit", strconv.Itoa(limit))
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Authorization", "Bearer "+s.config.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		logger.Warn(ctx, "catalog request failed", "error", err)
		return []CatalogTemplate{}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		logger.Warn(ctx, "catalog returned non-OK status", "status", resp.StatusCode)
		return []CatalogTemplate{}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return []CatalogTemplate{}
	}

	var parsed catalogListResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		logger.Warn(ctx, "catalog response unparseable", "error", err)
		return []CatalogTemplate{}
	}

	entries := parsed.Templates
	if entries == nil {
		entries = parsed.Data
	}
	if entries == nil {
		entries = parsed.Results
	}
	if entries == nil {
		entries = parsed.Items
	}

	templates := make([]CatalogTemplate, 0, len(entries))
	for i, entry := range entries {
		if len(templates) >= limit {
			break
		}
		templates = append(templates, normalizeCatalogEntry(entry, i, category))
	}

	return templates
}

func normalizeCatalogEntry(entry map[string]any, index int, category string) CatalogTemplate {
	id := stringField(entry, "id", "template_id")
	if id == "" {
		id = fmt.Sprintf("catalog-%d", index)
	}
	name := stringField(entry, "name", "title")
	if name == "" {
		name = "Untitled Template"
	}
	description := stringField(entry, "description", "desc")
	if description == "" {
		description = "Professional template"
	}

	tpl := CatalogTemplate{
		ID:           id,
		Name:         name,
		Description:  description,
		ThumbnailURL: stringField(entry, "thumbnail_url", "thumbnail", "preview_url"),
		PreviewURL:   stringField(entry, "preview_url", "thumbnail_url"),
		Category:     category,
		Width:        intField(entry, "width", 210),
		Height:       intField(entry, "height", 297),
	}
	if c := stringField(entry, "category"); c != "" {
		tpl.Category = c
	}
	return tpl
}

func stringField(entry map[string]any, keys ...string) string {
	for _, key := range keys {
		if v, ok := entry[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func intField(entry map[string]any, key string, fallback int) int {
	switch v := entry[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	}
	return fallback
}
