// Package github reads repositories, repository languages and profile data
// from the GitHub REST API.
package github

import (
	"cmp"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"
)

const (
	apiVersion = "2022-11-28"
	perPage    = 100
)

// Client is a minimal read-only GitHub REST client.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
}

// NewClient creates a client for the API at baseURL. An empty token makes
// unauthenticated requests. A zero timeout means no client timeout.
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// Repository is the subset of repository fields the portfolio uses.
type Repository struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	HTMLURL     string   `json:"html_url"`
	Topics      []string `json:"topics"`
	Fork        bool     `json:"fork"`
}

// LanguageBytes is one entry of a repository's language breakdown.
type LanguageBytes struct {
	Name  string
	Bytes int64
}

// APIError is returned for non-success responses.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github API %d: %s", e.StatusCode, e.Message)
}

// ListRepositories returns the repositories owned by account in API order.
func (c *Client) ListRepositories(ctx context.Context, account string) ([]Repository, error) {
	var all []Repository
	for page := 1; ; page++ {
		q := url.Values{}
		q.Set("type", "owner")
		q.Set("per_page", fmt.Sprint(perPage))
		q.Set("page", fmt.Sprint(page))

		var repos []Repository
		reqURL := fmt.Sprintf("%s/users/%s/repos?%s", c.baseURL, url.PathEscape(account), q.Encode())
		if err := c.getJSON(ctx, reqURL, &repos); err != nil {
			return nil, fmt.Errorf("list repositories for %s: %w", account, err)
		}
		all = append(all, repos...)
		if len(repos) < perPage {
			return all, nil
		}
	}
}

// Languages returns the language byte counts of a repository, largest first.
func (c *Client) Languages(ctx context.Context, owner, repo string) ([]LanguageBytes, error) {
	var raw map[string]int64
	reqURL := fmt.Sprintf("%s/repos/%s/%s/languages", c.baseURL, url.PathEscape(owner), url.PathEscape(repo))
	if err := c.getJSON(ctx, reqURL, &raw); err != nil {
		return nil, fmt.Errorf("languages for %s/%s: %w", owner, repo, err)
	}

	langs := make([]LanguageBytes, 0, len(raw))
	for name, n := range raw {
		langs = append(langs, LanguageBytes{Name: name, Bytes: n})
	}
	slices.SortFunc(langs, func(a, b LanguageBytes) int {
		if d := cmp.Compare(b.Bytes, a.Bytes); d != 0 {
			return d
		}
		return strings.Compare(a.Name, b.Name)
	})
	return langs, nil
}

// Tagline returns the profile bio of account, or "" when none is set.
func (c *Client) Tagline(ctx context.Context, account string) (string, error) {
	var user struct {
		Bio *string `json:"bio"`
	}
	reqURL := fmt.Sprintf("%s/users/%s", c.baseURL, url.PathEscape(account))
	if err := c.getJSON(ctx, reqURL, &user); err != nil {
		return "", fmt.Errorf("profile for %s: %w", account, err)
	}
	if user.Bio == nil {
		return "", nil
	}
	return strings.TrimSpace(*user.Bio), nil
}

func (c *Client) getJSON(ctx context.Context, reqURL string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("X-GitHub-Api-Version", apiVersion)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req) //nolint:gosec // URL is built from the configured API base
	if err != nil {
		return fmt.Errorf("http request: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Message: apiMessage(body)}
	}

	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}

// apiMessage extracts the "message" field GitHub puts in error bodies.
func apiMessage(body []byte) string {
	var e struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return strings.TrimSpace(string(body))
}
