package githubstats

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestFetcher creates a GitHubFetcher that talks to a mock HTTP
// server instead of the real API.
func setupTestFetcher(t *testing.T, handler http.Handler) (*GitHubFetcher, *httptest.Server) {
	server := httptest.NewServer(handler)

	client := github.NewClient(server.Client())
	baseURL, err := url.Parse(server.URL + "/")
	require.NoError(t, err)
	client.BaseURL = baseURL

	fetcher := &GitHubFetcher{
		client: client,
		logger: log.New(io.Discard, "", 0),
	}
	return fetcher, server
}

func TestGitHubFetcher_FetchRepo(t *testing.T) {
	testCases := []struct {
		name        string
		handlerFunc func(w http.ResponseWriter, r *http.Request)
		expected    RepoSummary
		expectError bool
	}{
		{
			name: "happy path - parses stars, forks and update time",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/repos/karimhelal/Portfolio", r.URL.Path)
				w.WriteHeader(http.StatusOK)
				fmt.Fprint(w, `{"name": "Portfolio", "stargazers_count": 42, "forks_count": 7, "updated_at": "2025-05-01T10:30:00Z"}`)
			},
			expected: RepoSummary{
				Name:      "Portfolio",
				Stars:     42,
				Forks:     7,
				UpdatedAt: time.Date(2025, 5, 1, 10, 30, 0, 0, time.UTC),
			},
		},
		{
			name: "missing counts default to zero",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				fmt.Fprint(w, `{"name": "Portfolio"}`)
			},
			expected: RepoSummary{Name: "Portfolio"},
		},
		{
			name: "missing name falls back to the requested repo",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				fmt.Fprint(w, `{"stargazers_count": 3}`)
			},
			expected: RepoSummary{Name: "Portfolio", Stars: 3},
		},
		{
			name: "not found is an error",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
				fmt.Fprint(w, `{"message": "Not Found"}`)
			},
			expectError: true,
		},
		{
			name: "server error is an error",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
				fmt.Fprint(w, `{"message": "Internal Server Error"}`)
			},
			expectError: true,
		},
		{
			name: "malformed body is an error",
			handlerFunc: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusOK)
				fmt.Fprint(w, `{"name": "Portfolio", "stargazers_count":`)
			},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher, server := setupTestFetcher(t, http.HandlerFunc(tc.handlerFunc))
			defer server.Close()

			got, err := fetcher.FetchRepo(context.Background(), "karimhelal", "Portfolio")
			if tc.expectError {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "karimhelal/Portfolio")
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tc.expected, got)
			}
		})
	}
}
