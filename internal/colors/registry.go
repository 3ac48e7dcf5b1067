// Package colors resolves GitHub linguist colours for languages from a
// public colour registry document.
package colors

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultRegistryURL is the ozh/github-colors document.
const DefaultRegistryURL = "https://raw.githubusercontent.com/ozh/github-colors/master/colors.json"

// Entry is one language in the registry. Color is nil for languages the
// registry lists without a colour.
type Entry struct {
	Color *string `json:"color"`
	URL   string  `json:"url"`
}

// Document maps a language name to its registry entry.
type Document map[string]Entry

// Registry downloads the colour document.
type Registry struct {
	url        string
	httpClient *http.Client
}

// NewRegistry creates a registry client for the document at url.
func NewRegistry(url string, timeout time.Duration) *Registry {
	return &Registry{url: url, httpClient: &http.Client{Timeout: timeout}}
}

// Fetch downloads and decodes the registry document.
func (r *Registry) Fetch(ctx context.Context) (Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := r.httpClient.Do(req) //nolint:gosec // registry URL is configured
	if err != nil {
		return nil, fmt.Errorf("fetch colour registry: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch colour registry: status %d: %s", resp.StatusCode, body)
	}

	var doc Document
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, fmt.Errorf("parse colour registry: %w", err)
	}
	return doc, nil
}

// Colors fetches the registry and resolves langs against it.
func (r *Registry) Colors(ctx context.Context, langs []string) (map[string]string, error) {
	doc, err := r.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return Resolve(doc, langs), nil
}

// Resolve returns the colour of every language in langs that the document
// lists with a colour. Other languages are left out.
func Resolve(doc Document, langs []string) map[string]string {
	out := make(map[string]string, len(langs))
	for _, name := range langs {
		entry, ok := doc[name]
		if !ok || entry.Color == nil || *entry.Color == "" {
			continue
		}
		out[name] = *entry.Color
	}
	return out
}
