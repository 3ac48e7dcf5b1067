package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func TestListRepositories(t *testing.T) {
	var gotAuth, gotAccept, gotVersion string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotVersion = r.Header.Get("X-GitHub-Api-Version")

		assert.Equal(t, "/users/octocat/repos", r.URL.Path)
		assert.Equal(t, "owner", r.URL.Query().Get("type"))
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))
		writeJSON(t, w, []map[string]any{
			{"name": "lift-sim", "description": "Lift simulator", "html_url": "https://github.com/octocat/lift-sim", "topics": []string{"app", "javafx"}},
			{"name": "octocat", "description": nil, "html_url": "https://github.com/octocat/octocat", "topics": []string{}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/", "ghp_secret", 0)
	repos, err := c.ListRepositories(context.Background(), "octocat")
	require.NoError(t, err)

	require.Len(t, repos, 2)
	assert.Equal(t, "lift-sim", repos[0].Name)
	assert.Equal(t, "Lift simulator", repos[0].Description)
	assert.Equal(t, []string{"app", "javafx"}, repos[0].Topics)
	assert.Equal(t, "", repos[1].Description, "null description decodes as empty")

	assert.Equal(t, "Bearer ghp_secret", gotAuth)
	assert.Equal(t, "application/vnd.github+json", gotAccept)
	assert.Equal(t, apiVersion, gotVersion)
}

func TestListRepositoriesPaginates(t *testing.T) {
	var pages []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		pages = append(pages, page)

		n := perPage
		if page == "2" {
			n = 3
		}
		repos := make([]Repository, n)
		for i := range repos {
			repos[i].Name = fmt.Sprintf("repo-%s-%d", page, i)
		}
		writeJSON(t, w, repos)
	}))
	defer srv.Close()

	repos, err := NewClient(srv.URL, "", 0).ListRepositories(context.Background(), "octocat")
	require.NoError(t, err)

	assert.Len(t, repos, perPage+3)
	assert.Equal(t, []string{"1", "2"}, pages)
	assert.Equal(t, "repo-1-0", repos[0].Name)
	assert.Equal(t, "repo-2-2", repos[len(repos)-1].Name)
}

func TestUnauthenticatedRequestHasNoAuthHeader(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		writeJSON(t, w, []Repository{})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "", 0).ListRepositories(context.Background(), "octocat")
	require.NoError(t, err)
}

func TestAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message":"API rate limit exceeded"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "", 0).ListRepositories(context.Background(), "octocat")
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Equal(t, "API rate limit exceeded", apiErr.Message)
}

func TestAPIErrorPlainBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "bad gateway", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "", 0).Languages(context.Background(), "octocat", "repo")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "bad gateway", apiErr.Message)
}

func TestLanguagesSortedByBytes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octocat/lift-sim/languages", r.URL.Path)
		writeJSON(t, w, map[string]int64{"Java": 5000, "CSS": 200, "Makefile": 200, "Kotlin": 9000})
	}))
	defer srv.Close()

	langs, err := NewClient(srv.URL, "", 0).Languages(context.Background(), "octocat", "lift-sim")
	require.NoError(t, err)

	assert.Equal(t, []LanguageBytes{
		{Name: "Kotlin", Bytes: 9000},
		{Name: "Java", Bytes: 5000},
		{Name: "CSS", Bytes: 200},
		{Name: "Makefile", Bytes: 200},
	}, langs)
}

func TestMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"Go":`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "", 0).Languages(context.Background(), "octocat", "repo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse response")
}

func TestTagline(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bio", `{"login":"octocat","bio":"  Android developer  "}`, "Android developer"},
		{"null bio", `{"login":"octocat","bio":null}`, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/users/octocat", r.URL.Path)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			got, err := NewClient(srv.URL, "", 0).Tagline(context.Background(), "octocat")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// fakeAPI serves a repository listing and per-repository languages.
type fakeAPI struct {
	t        *testing.T
	repos    []string
	failRepo string
	delay    time.Duration

	inFlight atomic.Int32
	peak     atomic.Int32
	mu       sync.Mutex
	served   []string
}

func (f *fakeAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/users/octocat/repos" {
		repos := make([]Repository, len(f.repos))
		for i, name := range f.repos {
			repos[i] = Repository{Name: name, Topics: []string{}}
		}
		writeJSON(f.t, w, repos)
		return
	}

	n := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		p := f.peak.Load()
		if n <= p || f.peak.CompareAndSwap(p, n) {
			break
		}
	}

	repo := r.URL.Path[len("/repos/octocat/") : len(r.URL.Path)-len("/languages")]
	f.mu.Lock()
	f.served = append(f.served, repo)
	f.mu.Unlock()

	select {
	case <-time.After(f.delay):
	case <-r.Context().Done():
		return
	}

	if repo == f.failRepo {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"boom"}`))
		return
	}
	idx, _ := strconv.Atoi(repo[len("repo"):])
	writeJSON(f.t, w, map[string]int64{"Go": int64(100 * (idx + 1))})
}

func repoNames(n int) []string {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("repo%d", i)
	}
	return names
}

func TestFetchRepositoriesBoundedAndOrdered(t *testing.T) {
	api := &fakeAPI{t: t, repos: append(repoNames(12), "OctoCat"), delay: 20 * time.Millisecond}
	srv := httptest.NewServer(api)
	defer srv.Close()

	got, err := NewClient(srv.URL, "", 0).FetchRepositories(context.Background(), "octocat", "octocat", 3)
	require.NoError(t, err)

	require.Len(t, got, 12, "profile repository is excluded case-insensitively")
	for i, r := range got {
		assert.Equal(t, fmt.Sprintf("repo%d", i), r.Name)
		require.Len(t, r.Languages, 1)
		assert.Equal(t, int64(100*(i+1)), r.Languages[0].Bytes)
	}
	assert.LessOrEqual(t, api.peak.Load(), int32(3))
	assert.Greater(t, api.peak.Load(), int32(1), "requests should overlap")

	api.mu.Lock()
	defer api.mu.Unlock()
	assert.Len(t, api.served, 12)
	assert.NotContains(t, api.served, "OctoCat")
}

func TestFetchRepositoriesFailFast(t *testing.T) {
	api := &fakeAPI{t: t, repos: repoNames(6), failRepo: "repo2", delay: 5 * time.Millisecond}
	srv := httptest.NewServer(api)
	defer srv.Close()

	got, err := NewClient(srv.URL, "", 0).FetchRepositories(context.Background(), "octocat", "", 2)
	require.Error(t, err)
	assert.Nil(t, got, "no partial results")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
}

func TestFetchRepositoriesZeroLimit(t *testing.T) {
	api := &fakeAPI{t: t, repos: repoNames(3)}
	srv := httptest.NewServer(api)
	defer srv.Close()

	got, err := NewClient(srv.URL, "", 0).FetchRepositories(context.Background(), "octocat", "", 0)
	require.NoError(t, err)
	assert.Len(t, got, 3)
	assert.Equal(t, int32(1), api.peak.Load())
}

func TestFetchRepositoriesListingFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not Found"}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "", 0).FetchRepositories(context.Background(), "octocat", "", 4)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}
