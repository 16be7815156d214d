package main

// GitHubOwner is the account whose repositories are shown in the
// projects section. Override with the GITHUB_OWNER environment variable.
const GitHubOwner = "karimhelal"

// GitHubRepos is the fixed list of repositories whose stars and forks
// are fetched and rendered on the home page.
var GitHubRepos = []string{
	"Portfolio",
	"pathfinder",
	"devlog",
	"go-chat",
}

var (
	AboutMe = `I'm a software engineer who enjoys taking ideas apart to see what makes
	them tick, then rebuilding them a little better. Most of what I build starts as a
	weekend experiment and ends up teaching me something about systems design,
	networking, or the web platform. Away from the keyboard I'm usually bouldering,
	making coffee I have no business fussing over, or planning my next trip.`

	ProjectOne = `This very site: a Go-served portfolio built with Gin and HTMX, with
	live repository stats pulled from the GitHub API and a privacy-conscious visitor
	counter backed by SQLite.`

	ProjectTwo = `An interactive pathfinding visualizer that animates Dijkstra, A*,
	and BFS across editable grids, with step-by-step playback and weighted terrain.`

	ProjectThree = `A minimal developer journal with markdown entries, full-text
	search, and daily streak tracking, synced across devices through a small REST
	API.`

	ProjectFour = `A terminal chat application written in Go using websockets and the
	Charmbracelet TUI libraries, with rooms, presence, and message history.`
)
