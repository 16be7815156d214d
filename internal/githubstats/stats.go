// Package githubstats fetches public repository metadata from the GitHub
// API and caches the result set in memory for a fixed window, so repeated
// page loads don't burn through the unauthenticated rate limit.
package githubstats

import "time"

// CacheWindow is how long a fetched result set stays valid before the
// next request triggers a fresh round of API calls.
const CacheWindow = 5 * time.Minute

// RepoSummary is the subset of repository metadata shown on the site.
type RepoSummary struct {
	Name      string    `json:"name"`
	Stars     int       `json:"stars"`
	Forks     int       `json:"forks"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StatTotals holds the aggregate counts across all fetched repositories.
type StatTotals struct {
	Stars int `json:"stars"`
	Forks int `json:"forks"`
}

// Totals sums stars and forks over a result set.
func Totals(summaries []RepoSummary) StatTotals {
	var t StatTotals
	for _, s := range summaries {
		t.Stars += s.Stars
		t.Forks += s.Forks
	}
	return t
}
