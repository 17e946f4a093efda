package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"exphub/internal/cache"
	"exphub/internal/domain"
	"exphub/internal/scoring"
)

const (
	issuePageSize     = 100
	maxRefreshWorkers = 5
)

type ProjectStorage interface {
	CreateProject(ctx context.Context, project domain.Project) error
	GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error)
	GetProjectByGitLink(ctx context.Context, gitLink string) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]domain.Project, error)
}

type UserStorage interface {
	GetUserToken(ctx context.Context, userID string) (string, error)
}

type EnrollmentStorage interface {
	GetEnrollment(ctx context.Context, owner, repo string, issueNumber int) (*domain.IssueEnrollment, error)
}

type AnalyticsStorage interface {
	AddUserExp(ctx context.Context, userID string, delta int) error
	GetUserAnalytics(ctx context.Context, userID string) (*domain.UserAnalytics, error)
}

type txManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Fetcher is the upstream boundary. An empty token means the service-level
// credentials (or anonymous access).
type Fetcher interface {
	GetRepository(ctx context.Context, token, owner, name string) (*domain.RepoData, error)
	ListIssues(ctx context.Context, token, owner, name, state string, perPage int) ([]domain.IssueView, error)
	CountClosedIssues(ctx context.Context, token, owner, name string) (int, error)
	ListComments(ctx context.Context, token, owner, name string, issueNumber int) ([]domain.Comment, error)
}

// Broadcaster pushes refreshed issue sets to a project's subscribers.
type Broadcaster interface {
	PublishIssues(projectID string, issues *domain.IssueBundle)
}

type Service struct {
	projectStore   ProjectStorage
	userStore      UserStorage
	enrollStore    EnrollmentStorage
	analyticsStore AnalyticsStorage
	tx             txManager

	fetcher     Fetcher
	cache       *cache.Cache
	broadcaster Broadcaster
	logger      *log.Logger
}

func NewService(
	projectStore ProjectStorage,
	userStore UserStorage,
	enrollStore EnrollmentStorage,
	analyticsStore AnalyticsStorage,
	tx txManager,
	fetcher Fetcher,
	snapshots *cache.Cache,
	broadcaster Broadcaster,
	logger *log.Logger,
) *Service {
	return &Service{
		projectStore:   projectStore,
		userStore:      userStore,
		enrollStore:    enrollStore,
		analyticsStore: analyticsStore,
		tx:             tx,
		fetcher:        fetcher,
		cache:          snapshots,
		broadcaster:    broadcaster,
		logger:         logger,
	}
}

// SyncProject returns the cached snapshot for owner/name or fetches it from
// upstream. A repository seen for the first time is persisted as a Project
// with its exp range computed once from the current activity metrics.
func (s *Service) SyncProject(ctx context.Context, userID, owner, name string) (*domain.ProjectSnapshot, error) {
	key := cache.RepoKey(owner, name)
	if v, ok := s.cache.Get(key); ok {
		return v.(*domain.ProjectSnapshot), nil
	}

	v, err := s.cache.Do(key, func() (any, error) {
		return s.fetchProjectSnapshot(ctx, userID, owner, name)
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.ProjectSnapshot), nil
}

func (s *Service) fetchProjectSnapshot(ctx context.Context, userID, owner, name string) (*domain.ProjectSnapshot, error) {
	token := s.userToken(ctx, userID)

	data, err := s.fetcher.GetRepository(ctx, token, owner, name)
	if err != nil {
		return nil, err
	}

	closedCount, err := s.fetcher.CountClosedIssues(ctx, token, owner, name)
	if err != nil {
		return nil, err
	}

	project, err := s.projectStore.GetProjectByGitLink(ctx, data.GitLink)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		content := data.Description
		if content == "" {
			content = "No description provided"
		}
		project = &domain.Project{
			ID:       uuid.NewString(),
			Name:     data.Name,
			Content:  content,
			GitLink:  data.GitLink,
			Status:   domain.ProjectStatusActive,
			ExpRange: scoring.ComputeExpRange(data.Forks, closedCount, data.Stars),
		}
		if err := s.projectStore.CreateProject(ctx, *project); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, err
	}

	snapshot := &domain.ProjectSnapshot{
		Name:         data.Name,
		GitLink:      data.GitLink,
		Description:  data.Description,
		Stars:        data.Stars,
		Forks:        data.Forks,
		ClosedIssues: closedCount,
		Language:     data.Language,
		ExpRange:     project.ExpRange,
	}

	s.cache.Set(cache.RepoKey(owner, name), snapshot)
	return snapshot, nil
}

// SyncAllProjects returns an overview of every known project with its
// latest upstream data. A failed refresh degrades that single entry to a
// nil LatestData instead of failing the whole listing.
func (s *Service) SyncAllProjects(ctx context.Context, userID string) ([]domain.ProjectOverview, error) {
	if v, ok := s.cache.Get(cache.AllProjectsKey); ok {
		return v.([]domain.ProjectOverview), nil
	}

	v, err := s.cache.Do(cache.AllProjectsKey, func() (any, error) {
		projects, err := s.projectStore.ListProjects(ctx)
		if err != nil {
			return nil, err
		}

		token := s.userToken(ctx, userID)
		overviews := make([]domain.ProjectOverview, len(projects))

		eg, egCtx := errgroup.WithContext(ctx)
		eg.SetLimit(maxRefreshWorkers)

		for i, project := range projects {
			i, project := i, project
			eg.Go(func() error {
				overviews[i] = domain.ProjectOverview{Project: project}

				owner, name, err := splitGitLink(project.GitLink)
				if err != nil {
					s.logger.Printf("skip refresh of project %s: %v", project.ID, err)
					return nil
				}

				data, err := s.fetcher.GetRepository(egCtx, token, owner, name)
				if err != nil {
					s.logger.Printf("refresh of %s failed: %v", project.GitLink, err)
					return nil
				}

				overviews[i].LatestData = data
				return nil
			})
		}
		_ = eg.Wait() // workers swallow their own failures

		s.cache.Set(cache.AllProjectsKey, overviews)
		return overviews, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.ProjectOverview), nil
}

// SyncIssues returns up to issuePageSize issues of the project in the given
// state ("open", "closed" or "all"), each scored inside the project's exp
// range. force bypasses and overwrites the cache entry.
func (s *Service) SyncIssues(ctx context.Context, userID, projectID, state string, force bool) ([]domain.IssueView, error) {
	key := cache.IssuesKey(projectID, state)

	if !force {
		if v, ok := s.cache.Get(key); ok {
			return v.([]domain.IssueView), nil
		}
	}

	fill := func() (any, error) {
		project, err := s.projectStore.GetProjectByID(ctx, projectID)
		if errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", domain.ErrProjectNotFound, projectID)
		}
		if err != nil {
			return nil, err
		}

		owner, name, err := splitGitLink(project.GitLink)
		if err != nil {
			return nil, err
		}

		token := s.userToken(ctx, userID)
		issues, err := s.fetcher.ListIssues(ctx, token, owner, name, state, issuePageSize)
		if err != nil {
			return nil, err
		}

		for i := range issues {
			issues[i].Exp = scoring.ComputeIssueExp(
				issues[i].Comments,
				len(issues[i].Labels),
				len(issues[i].Body),
				project.ExpRange.Min,
				project.ExpRange.Max,
			)
		}

		s.cache.Set(key, issues)
		return issues, nil
	}

	var (
		v   any
		err error
	)
	if force {
		// A forced refresh must hit upstream itself, not piggyback on an
		// in-flight fill that may already be serving pre-event data.
		v, err = fill()
	} else {
		v, err = s.cache.Do(key, fill)
	}
	if err != nil {
		return nil, err
	}
	return v.([]domain.IssueView), nil
}

// RefreshProjectIssues force-resyncs both issue lists of a project and
// bundles them for broadcast.
func (s *Service) RefreshProjectIssues(ctx context.Context, projectID string) (*domain.IssueBundle, error) {
	open, err := s.SyncIssues(ctx, "", projectID, "open", true)
	if err != nil {
		return nil, err
	}

	closed, err := s.SyncIssues(ctx, "", projectID, "closed", true)
	if err != nil {
		return nil, err
	}

	return &domain.IssueBundle{Open: open, Closed: closed}, nil
}

// SyncFirstComment surfaces only the opening discussion entry of an issue.
// Returns nil without caching when the issue has no comments yet.
func (s *Service) SyncFirstComment(ctx context.Context, userID, owner, repo string, issueNumber int) (*domain.Comment, error) {
	key := cache.CommentsKey(owner, repo, issueNumber)
	if v, ok := s.cache.Get(key); ok {
		return v.(*domain.Comment), nil
	}

	v, err := s.cache.Do(key, func() (any, error) {
		token := s.userToken(ctx, userID)
		comments, err := s.fetcher.ListComments(ctx, token, owner, repo, issueNumber)
		if err != nil {
			return nil, err
		}

		if len(comments) == 0 {
			return (*domain.Comment)(nil), nil
		}

		first := comments[0]
		s.cache.Set(key, &first)
		return &first, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Comment), nil
}

// ProjectByGitLink resolves the internal project behind an upstream
// repository link.
func (s *Service) ProjectByGitLink(ctx context.Context, gitLink string) (*domain.Project, error) {
	project, err := s.projectStore.GetProjectByGitLink(ctx, gitLink)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", domain.ErrProjectNotFound, gitLink)
	}
	if err != nil {
		return nil, err
	}
	return project, nil
}

// UserAnalytics returns the accumulated EXP, league and rank of a user.
func (s *Service) UserAnalytics(ctx context.Context, userID string) (*domain.UserAnalytics, error) {
	return s.analyticsStore.GetUserAnalytics(ctx, userID)
}

func (s *Service) userToken(ctx context.Context, userID string) string {
	if userID == "" {
		return ""
	}

	token, err := s.userStore.GetUserToken(ctx, userID)
	if err != nil {
		s.logger.Printf("lookup token of user %s: %v", userID, err)
		return ""
	}
	return token
}

// splitGitLink extracts owner and repository name from an upstream
// "https://github.com/{owner}/{name}" link.
func splitGitLink(gitLink string) (string, string, error) {
	path := strings.TrimPrefix(gitLink, "https://github.com/")
	path = strings.Trim(path, "/")

	parts := strings.Split(path, "/")
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid git link %q, expected 'https://github.com/owner/name'", gitLink)
	}
	return parts[0], parts[1], nil
}
