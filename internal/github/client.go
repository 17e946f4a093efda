// Package github wraps the upstream GitHub REST API. The raw go-github
// shapes are mapped into domain structs here and never escape this package.
package github

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
	"github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"

	"exphub/internal/domain"
)

// Client fetches repository, issue and comment data. Calls can be made with
// a per-user token; without one they run with the service-level credentials
// (or anonymously when none were configured).
type Client struct {
	base   *github.Client
	logger *log.Logger
}

// NewClient builds a client whose transport waits out GitHub secondary rate
// limits. fallbackToken authenticates calls made without a user identity and
// may be empty.
func NewClient(fallbackToken string, logger *log.Logger) (*Client, error) {
	waiter, err := github_ratelimit.NewRateLimitWaiter(nil,
		github_ratelimit.WithSingleSleepLimit(time.Hour, nil))
	if err != nil {
		return nil, fmt.Errorf("create rate limit waiter: %w", err)
	}

	httpClient := &http.Client{Transport: waiter}
	if fallbackToken != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: fallbackToken})
		httpClient = &http.Client{
			Transport: &oauth2.Transport{
				Base:   waiter,
				Source: ts,
			},
		}
	}

	return &Client{
		base:   github.NewClient(httpClient),
		logger: logger,
	}, nil
}

func (c *Client) rest(token string) *github.Client {
	if token == "" {
		return c.base
	}
	return c.base.WithAuthToken(token)
}

// GetRepository fetches repository metadata.
func (c *Client) GetRepository(ctx context.Context, token, owner, name string) (*domain.RepoData, error) {
	c.logger.Printf("fetching repository %s/%s from upstream", owner, name)

	repo, _, err := c.rest(token).Repositories.Get(ctx, owner, name)
	if err != nil {
		return nil, fmt.Errorf("%w: get repository %s/%s: %v", domain.ErrUpstreamUnavailable, owner, name, err)
	}
	if repo == nil {
		return nil, fmt.Errorf("%w: get repository %s/%s: empty response", domain.ErrUpstreamUnavailable, owner, name)
	}

	return convertRepository(repo), nil
}

// ListIssues fetches a single page of up to perPage issues in the requested
// state ("open", "closed" or "all"). The returned views carry no EXP yet.
func (c *Client) ListIssues(ctx context.Context, token, owner, name, state string, perPage int) ([]domain.IssueView, error) {
	opts := &github.IssueListByRepoOptions{
		State: state,
		ListOptions: github.ListOptions{
			Page:    1,
			PerPage: perPage,
		},
	}

	issues, _, err := c.rest(token).Issues.ListByRepo(ctx, owner, name, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: list %s issues of %s/%s: %v", domain.ErrUpstreamUnavailable, state, owner, name, err)
	}

	views := make([]domain.IssueView, 0, len(issues))
	for _, issue := range issues {
		views = append(views, convertIssue(issue))
	}
	return views, nil
}

// CountClosedIssues counts closed issues on the first page only. The count
// feeds the exp range heuristic, which does not need an exact total.
func (c *Client) CountClosedIssues(ctx context.Context, token, owner, name string) (int, error) {
	opts := &github.IssueListByRepoOptions{
		State: "closed",
		ListOptions: github.ListOptions{
			Page:    1,
			PerPage: 100,
		},
	}

	issues, _, err := c.rest(token).Issues.ListByRepo(ctx, owner, name, opts)
	if err != nil {
		return 0, fmt.Errorf("%w: count closed issues of %s/%s: %v", domain.ErrUpstreamUnavailable, owner, name, err)
	}

	return len(issues), nil
}

// ListComments fetches the first page of an issue's comments in creation
// order.
func (c *Client) ListComments(ctx context.Context, token, owner, name string, issueNumber int) ([]domain.Comment, error) {
	sort := "created"
	direction := "asc"
	opts := &github.IssueListCommentsOptions{
		Sort:      &sort,
		Direction: &direction,
		ListOptions: github.ListOptions{
			Page:    1,
			PerPage: 100,
		},
	}

	comments, _, err := c.rest(token).Issues.ListComments(ctx, owner, name, issueNumber, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: list comments of %s/%s#%d: %v", domain.ErrUpstreamUnavailable, owner, name, issueNumber, err)
	}

	out := make([]domain.Comment, 0, len(comments))
	for _, comment := range comments {
		out = append(out, convertComment(comment))
	}
	return out, nil
}

func convertRepository(repo *github.Repository) *domain.RepoData {
	return &domain.RepoData{
		Name:        repo.GetName(),
		GitLink:     repo.GetHTMLURL(),
		Description: repo.GetDescription(),
		Stars:       repo.GetStargazersCount(),
		Forks:       repo.GetForksCount(),
		OpenIssues:  repo.GetOpenIssuesCount(),
		Language:    repo.GetLanguage(),
		UpdatedAt:   repo.GetUpdatedAt().Time,
	}
}

func convertIssue(issue *github.Issue) domain.IssueView {
	labels := make([]string, 0, len(issue.Labels))
	for _, label := range issue.Labels {
		labels = append(labels, label.GetName())
	}

	return domain.IssueView{
		ID:        issue.GetID(),
		Number:    issue.GetNumber(),
		Title:     issue.GetTitle(),
		URL:       issue.GetHTMLURL(),
		State:     issue.GetState(),
		CreatedAt: issue.GetCreatedAt().Time,
		UpdatedAt: issue.GetUpdatedAt().Time,
		Author: domain.IssueAuthor{
			Login: issue.GetUser().GetLogin(),
			URL:   issue.GetUser().GetHTMLURL(),
		},
		Comments:       issue.GetComments(),
		Labels:         labels,
		PullRequestURL: issue.GetPullRequestLinks().GetHTMLURL(),
		Body:           issue.GetBody(),
	}
}

func convertComment(comment *github.IssueComment) domain.Comment {
	return domain.Comment{
		ID: comment.GetID(),
		Author: domain.IssueAuthor{
			Login: comment.GetUser().GetLogin(),
			URL:   comment.GetUser().GetHTMLURL(),
		},
		Body:      comment.GetBody(),
		CreatedAt: comment.GetCreatedAt().Time,
		UpdatedAt: comment.GetUpdatedAt().Time,
	}
}
