package githubstats

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
)

// Fetcher retrieves metadata for a single repository.
type Fetcher interface {
	FetchRepo(ctx context.Context, owner, name string) (RepoSummary, error)
}

// GitHubFetcher is the production Fetcher, backed by the GitHub REST API.
type GitHubFetcher struct {
	client *github.Client
	logger *log.Logger
}

// NewGitHubFetcher creates a fetcher for the public GitHub API. The token
// is optional: without one, requests are unauthenticated and subject to
// the lower rate limit, which is why results are cached upstream. Either
// way the transport waits out secondary rate limits instead of failing.
func NewGitHubFetcher(token string, logger *log.Logger) (Fetcher, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	var transport http.RoundTripper = rateLimitWaiter
	if token != "" {
		transport = &oauth2.Transport{
			Base:   rateLimitWaiter,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		}
	}
	return &GitHubFetcher{
		client: github.NewClient(&http.Client{Transport: transport}),
		logger: logger,
	}, nil
}

// FetchRepo fetches one repository's metadata. A non-2xx status, a
// transport failure, and an unparseable body all come back as errors;
// the caller drops the repository from the batch in every case.
func (f *GitHubFetcher) FetchRepo(ctx context.Context, owner, name string) (RepoSummary, error) {
	f.logger.Printf("github: GET repos/%s/%s", owner, name)
	repo, _, err := f.client.Repositories.Get(ctx, owner, name)
	if err != nil {
		return RepoSummary{}, fmt.Errorf("failed to fetch %s/%s: %w", owner, name, err)
	}

	summary := RepoSummary{
		// Missing counts decode to zero via go-github's nil-safe getters.
		Name:      repo.GetName(),
		Stars:     repo.GetStargazersCount(),
		Forks:     repo.GetForksCount(),
		UpdatedAt: repo.GetUpdatedAt().Time,
	}
	if summary.Name == "" {
		summary.Name = name
	}
	return summary, nil
}
