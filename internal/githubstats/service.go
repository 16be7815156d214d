package githubstats

import (
	"context"
	"log"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
)

// Service answers stat requests for a fixed list of repositories, going
// to the network only when the cached batch has expired.
type Service struct {
	fetcher Fetcher
	cache   *Cache
	owner   string
	repos   []string
	logger  *log.Logger
	now     func() time.Time
}

// NewService creates a stats service for the given account and repository
// list.
func NewService(fetcher Fetcher, owner string, repos []string, logger *log.Logger) *Service {
	return &Service{
		fetcher: fetcher,
		cache:   NewCache(CacheWindow),
		owner:   owner,
		repos:   repos,
		logger:  logger,
		now:     time.Now,
	}
}

// GetStats returns the current result set, fetching it if the cache has
// expired. Each repository is fetched concurrently; a repository that
// fails for any reason is dropped from the batch without aborting the
// rest. When every fetch fails the result is an empty set, not an error,
// so callers degrade to placeholder values instead of an error page. Even
// an empty set refreshes the cache, so a flaky API isn't hammered on
// every page load.
func (s *Service) GetStats(ctx context.Context) []RepoSummary {
	if cached, ok := s.cache.Get(s.now()); ok {
		s.logger.Println("stats: serving cached result set")
		return cached
	}

	s.logger.Printf("stats: fetching %d repositories for %s", len(s.repos), s.owner)

	var (
		mu        sync.Mutex
		summaries []RepoSummary
	)
	eg, egCtx := errgroup.WithContext(ctx)
	for _, name := range s.repos {
		name := name
		eg.Go(func() error {
			summary, err := s.fetcher.FetchRepo(egCtx, s.owner, name)
			if err != nil {
				s.logger.Printf("stats: dropping %s: %v", name, err)
				return nil
			}
			mu.Lock()
			summaries = append(summaries, summary)
			mu.Unlock()
			return nil
		})
	}
	// Goroutines convert their own failures to omissions, so the group
	// never returns an error; Wait is just the join point.
	_ = eg.Wait()

	// Completion order is nondeterministic, so sort by name for stable
	// rendering across refreshes.
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Name < summaries[j].Name
	})
	if summaries == nil {
		summaries = []RepoSummary{}
	}

	s.cache.Set(summaries, s.now())
	s.logger.Printf("stats: cached %d of %d repositories", len(summaries), len(s.repos))
	return summaries
}

// LastFetchedAt reports when the cached batch was stored, and false if no
// fetch has completed yet.
func (s *Service) LastFetchedAt() (time.Time, bool) {
	return s.cache.FetchedAt()
}
