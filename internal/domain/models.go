package domain

import "time"

type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusPending   ProjectStatus = "pending"
)

// ExpRange bounds the EXP values all issues of a project may receive.
// Invariant: Min <= Max.
type ExpRange struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Project is created on the first successful upstream fetch of a
// previously-unseen repository. Immutable afterwards; the exp range is set
// once at creation and never recomputed.
type Project struct {
	ID       string        `json:"id"`
	Name     string        `json:"name"`
	Content  string        `json:"content"`
	GitLink  string        `json:"gitLink"`
	Status   ProjectStatus `json:"status"`
	ExpRange ExpRange      `json:"expRange"`
}

// RepoData is the flattened upstream repository metadata mapped out of the
// raw GitHub response at the client boundary.
type RepoData struct {
	Name        string    `json:"name"`
	GitLink     string    `json:"gitLink"`
	Description string    `json:"description"`
	Stars       int       `json:"stars"`
	Forks       int       `json:"forks"`
	OpenIssues  int       `json:"issues"`
	Language    string    `json:"language"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProjectSnapshot is the cacheable point-in-time view of a single project.
type ProjectSnapshot struct {
	Name         string   `json:"name"`
	GitLink      string   `json:"gitLink"`
	Description  string   `json:"description"`
	Stars        int      `json:"stars"`
	Forks        int      `json:"forks"`
	ClosedIssues int      `json:"closedIssues"`
	Language     string   `json:"language"`
	ExpRange     ExpRange `json:"expRange"`
}

// ProjectOverview pairs a stored project with its latest upstream data.
// LatestData is nil when that single refresh failed; the listing as a whole
// still succeeds.
type ProjectOverview struct {
	Project    Project   `json:"project"`
	LatestData *RepoData `json:"latestData"`
}

type IssueAuthor struct {
	Login string `json:"login"`
	URL   string `json:"html_url"`
}

// IssueView is reconstructed on every sync and never persisted.
type IssueView struct {
	ID             int64       `json:"id"`
	Number         int         `json:"number"`
	Title          string      `json:"title"`
	URL            string      `json:"url"`
	State          string      `json:"state"`
	CreatedAt      time.Time   `json:"createdAt"`
	UpdatedAt      time.Time   `json:"updatedAt"`
	Author         IssueAuthor `json:"user"`
	Comments       int         `json:"comments"`
	Labels         []string    `json:"labels"`
	PullRequestURL string      `json:"pullRequestUrl,omitempty"`
	Body           string      `json:"body"`
	Exp            int         `json:"exp"`
}

// IssueBundle splits a project's issues by state for broadcast payloads.
type IssueBundle struct {
	Open   []IssueView `json:"open"`
	Closed []IssueView `json:"closed"`
}

type Comment struct {
	ID        int64       `json:"id"`
	Author    IssueAuthor `json:"user"`
	Body      string      `json:"body"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

// IssueEnrollment links a user to an issue they claim to resolve.
// Read-only for this service; created by the enrollment flow elsewhere.
type IssueEnrollment struct {
	Owner       string
	Repo        string
	IssueNumber int
	UserID      string
	GithubLogin string
}

type UserAnalytics struct {
	UserID    string `json:"userId"`
	ExpPoints int    `json:"expPoints"`
	League    string `json:"league"`
	Rank      string `json:"rank"`
}

// MergeEvent carries the fields of a pull-request-merged notification that
// the award flow needs.
type MergeEvent struct {
	Owner    string `json:"owner"`
	Repo     string `json:"repo"`
	Title    string `json:"title"`
	MergedBy string `json:"mergedBy"`
}
