package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"exphub/internal/domain"
)

func TestService_HandleMergedPullRequest_AwardsEnrolledUser(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService(t)

	enrollment := &domain.IssueEnrollment{
		Owner:       "octocat",
		Repo:        "hello",
		IssueNumber: 42,
		UserID:      "u1",
		GithubLogin: "alice",
	}

	m.enrollments.
		On("GetEnrollment", mock.Anything, "octocat", "hello", 42).
		Return(enrollment, nil).Once()
	m.analytics.
		On("AddUserExp", mock.Anything, "u1", 100).
		Return(nil).Once()

	// The opportunistic refresh runs after the award; with no stored
	// projects it publishes nothing.
	m.projects.On("ListProjects", mock.Anything).Return([]domain.Project{}, nil).Once()

	err := svc.HandleMergedPullRequest(ctx, domain.MergeEvent{
		Owner:    "octocat",
		Repo:     "hello",
		Title:    "Close #42: fix the frobnicator",
		MergedBy: "alice",
	})
	require.NoError(t, err)
}

func TestService_HandleMergedPullRequest_MismatchedUserIsNoop(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService(t)

	enrollment := &domain.IssueEnrollment{
		Owner:       "octocat",
		Repo:        "hello",
		IssueNumber: 42,
		UserID:      "u1",
		GithubLogin: "alice",
	}

	m.enrollments.
		On("GetEnrollment", mock.Anything, "octocat", "hello", 42).
		Return(enrollment, nil).Once()
	// No AddUserExp expectation: crediting anyone fails the test.

	err := svc.HandleMergedPullRequest(ctx, domain.MergeEvent{
		Owner:    "octocat",
		Repo:     "hello",
		Title:    "close #42",
		MergedBy: "mallory",
	})
	require.NoError(t, err)
}

func TestService_HandleMergedPullRequest_NoEnrollmentIsNoop(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService(t)

	m.enrollments.
		On("GetEnrollment", mock.Anything, "octocat", "hello", 7).
		Return(nil, domain.ErrNotFound).Once()

	err := svc.HandleMergedPullRequest(ctx, domain.MergeEvent{
		Owner:    "octocat",
		Repo:     "hello",
		Title:    "close #7",
		MergedBy: "alice",
	})
	require.NoError(t, err)
}

func TestService_HandleMergedPullRequest_TitleWithoutIssueRefIsNoop(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService(t)

	err := svc.HandleMergedPullRequest(ctx, domain.MergeEvent{
		Owner:    "octocat",
		Repo:     "hello",
		Title:    "refactor the widget pipeline",
		MergedBy: "alice",
	})
	require.NoError(t, err)
}

func TestService_HandleMergedPullRequest_RefreshPublishesIssueLists(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService(t)

	enrollment := &domain.IssueEnrollment{
		Owner:       "octocat",
		Repo:        "hello",
		IssueNumber: 42,
		UserID:      "u1",
		GithubLogin: "alice",
	}
	project := domain.Project{
		ID:       "p1",
		GitLink:  "https://github.com/octocat/hello",
		ExpRange: domain.ExpRange{Min: 100, Max: 400},
	}

	m.enrollments.
		On("GetEnrollment", mock.Anything, "octocat", "hello", 42).
		Return(enrollment, nil).Once()
	m.analytics.
		On("AddUserExp", mock.Anything, "u1", 100).
		Return(nil).Once()

	m.projects.On("ListProjects", mock.Anything).Return([]domain.Project{project}, nil).Once()
	m.projects.On("GetProjectByID", mock.Anything, "p1").Return(&project, nil).Twice()
	m.fetcher.
		On("ListIssues", mock.Anything, "", "octocat", "hello", "open", 100).
		Return([]domain.IssueView{{ID: 1, State: "open"}}, nil).Once()
	m.fetcher.
		On("ListIssues", mock.Anything, "", "octocat", "hello", "closed", 100).
		Return([]domain.IssueView{{ID: 2, State: "closed"}}, nil).Once()

	m.broadcaster.
		On("PublishIssues", "p1", mock.MatchedBy(func(b *domain.IssueBundle) bool {
			return len(b.Open) == 1 && len(b.Closed) == 1
		})).
		Once()

	err := svc.HandleMergedPullRequest(ctx, domain.MergeEvent{
		Owner:    "octocat",
		Repo:     "hello",
		Title:    "CLOSE  #42",
		MergedBy: "Alice", // login match is case-insensitive
	})
	require.NoError(t, err)
}
