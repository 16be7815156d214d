package githubstats

import (
	"context"
	"errors"
	"io"
	"log"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// mockFetcher is a mock implementation of the Fetcher interface, so the
// service can be tested without touching the GitHub API.
type mockFetcher struct {
	mock.Mock
}

func (m *mockFetcher) FetchRepo(ctx context.Context, owner, name string) (RepoSummary, error) {
	args := m.Called(ctx, owner, name)
	return args.Get(0).(RepoSummary), args.Error(1)
}

// newTestService wires a service to a mock fetcher and a controllable
// clock. Advance the clock through the returned pointer.
func newTestService(fetcher Fetcher, repos []string) (*Service, *time.Time) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	svc := NewService(fetcher, "karimhelal", repos, log.New(io.Discard, "", 0))
	svc.now = func() time.Time { return now }
	return svc, &now
}

func TestServiceGetStats_CachesWithinWindow(t *testing.T) {
	fetcher := new(mockFetcher)
	fetcher.On("FetchRepo", mock.Anything, "karimhelal", "repo-a").
		Return(RepoSummary{Name: "repo-a", Stars: 5, Forks: 2}, nil).Once()
	fetcher.On("FetchRepo", mock.Anything, "karimhelal", "repo-b").
		Return(RepoSummary{Name: "repo-b", Stars: 1, Forks: 0}, nil).Once()

	svc, now := newTestService(fetcher, []string{"repo-a", "repo-b"})

	first := svc.GetStats(context.Background())
	*now = now.Add(CacheWindow - time.Second)
	second := svc.GetStats(context.Background())

	// The second call must be served from cache: one fetch per repo total.
	fetcher.AssertNumberOfCalls(t, "FetchRepo", 2)
	assert.Equal(t, first, second)
	fetcher.AssertExpectations(t)
}

func TestServiceGetStats_RefetchesAfterWindow(t *testing.T) {
	fetcher := new(mockFetcher)
	fetcher.On("FetchRepo", mock.Anything, "karimhelal", "repo-a").
		Return(RepoSummary{Name: "repo-a", Stars: 5, Forks: 2}, nil)
	fetcher.On("FetchRepo", mock.Anything, "karimhelal", "repo-b").
		Return(RepoSummary{Name: "repo-b", Stars: 1, Forks: 0}, nil)

	svc, now := newTestService(fetcher, []string{"repo-a", "repo-b"})

	svc.GetStats(context.Background())
	*now = now.Add(CacheWindow + time.Second)
	svc.GetStats(context.Background())

	// One request per repository on each side of the window.
	fetcher.AssertNumberOfCalls(t, "FetchRepo", 4)
}

func TestServiceGetStats_AllFail(t *testing.T) {
	fetcher := new(mockFetcher)
	fetcher.On("FetchRepo", mock.Anything, "karimhelal", mock.Anything).
		Return(RepoSummary{}, errors.New("github api error"))

	svc, now := newTestService(fetcher, []string{"repo-a", "repo-b"})

	got := svc.GetStats(context.Background())
	assert.NotNil(t, got)
	assert.Empty(t, got)

	// An empty result still refreshes the cache, so the next call within
	// the window stays off the network.
	*now = now.Add(time.Minute)
	again := svc.GetStats(context.Background())
	assert.Empty(t, again)
	fetcher.AssertNumberOfCalls(t, "FetchRepo", 2)
}

func TestServiceGetStats_PartialFailure(t *testing.T) {
	fetcher := new(mockFetcher)
	fetcher.On("FetchRepo", mock.Anything, "karimhelal", "repo-a").
		Return(RepoSummary{Name: "repo-a", Stars: 5, Forks: 2}, nil)
	fetcher.On("FetchRepo", mock.Anything, "karimhelal", "repo-b").
		Return(RepoSummary{}, errors.New("503 service unavailable"))

	svc, _ := newTestService(fetcher, []string{"repo-a", "repo-b"})

	got := svc.GetStats(context.Background())
	assert.Equal(t, []RepoSummary{{Name: "repo-a", Stars: 5, Forks: 2}}, got)
}

func TestServiceGetStats_SortsByName(t *testing.T) {
	fetcher := new(mockFetcher)
	fetcher.On("FetchRepo", mock.Anything, "karimhelal", "zebra").
		Return(RepoSummary{Name: "zebra", Stars: 1}, nil)
	fetcher.On("FetchRepo", mock.Anything, "karimhelal", "alpha").
		Return(RepoSummary{Name: "alpha", Stars: 2}, nil)

	svc, _ := newTestService(fetcher, []string{"zebra", "alpha"})

	got := svc.GetStats(context.Background())
	assert.Equal(t, []string{"alpha", "zebra"}, []string{got[0].Name, got[1].Name})
}

func TestTotals(t *testing.T) {
	testCases := []struct {
		name      string
		summaries []RepoSummary
		expected  StatTotals
	}{
		{
			name: "sums across repositories",
			summaries: []RepoSummary{
				{Name: "repo-a", Stars: 5, Forks: 2},
				{Name: "repo-b", Stars: 3, Forks: 1},
			},
			expected: StatTotals{Stars: 8, Forks: 3},
		},
		{
			name:      "empty set yields zero totals",
			summaries: []RepoSummary{},
			expected:  StatTotals{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Totals(tc.summaries))
		})
	}
}
