package service

import (
	"context"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"exphub/internal/domain"
)

// mergeAward is the fixed EXP credit per confirmed merge.
const mergeAward = 100

var issueCloseRe = regexp.MustCompile(`(?i)close\s*#(\d+)`)

// HandleMergedPullRequest credits EXP for a merged pull request. The PR
// title must reference the resolved issue ("close #N", case-insensitive),
// an enrollment for that issue must exist, and the merging user must be the
// enrolled one; anything else is a silent no-op, since the merge is not
// attributable to a tracked claim.
func (s *Service) HandleMergedPullRequest(ctx context.Context, event domain.MergeEvent) error {
	m := issueCloseRe.FindStringSubmatch(event.Title)
	if m == nil {
		return nil
	}
	issueNumber, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}

	enrollment, err := s.enrollStore.GetEnrollment(ctx, event.Owner, event.Repo, issueNumber)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	if !strings.EqualFold(enrollment.GithubLogin, event.MergedBy) {
		return nil
	}

	err = s.tx.WithTx(ctx, func(ctx context.Context) error {
		return s.analyticsStore.AddUserExp(ctx, enrollment.UserID, mergeAward)
	})
	if err != nil {
		return err
	}

	s.logger.Printf("awarded %d exp to user %s for %s/%s#%d",
		mergeAward, enrollment.UserID, event.Owner, event.Repo, issueNumber)

	// Opportunistic refresh: subscribers get fresh issue lists, but a
	// failure here must not undo the award.
	s.refreshAllProjectIssues(ctx)
	return nil
}

func (s *Service) refreshAllProjectIssues(ctx context.Context) {
	projects, err := s.projectStore.ListProjects(ctx)
	if err != nil {
		s.logger.Printf("post-merge refresh: list projects: %v", err)
		return
	}

	for _, project := range projects {
		bundle, err := s.RefreshProjectIssues(ctx, project.ID)
		if err != nil {
			s.logger.Printf("post-merge refresh of project %s: %v", project.ID, err)
			continue
		}
		s.broadcaster.PublishIssues(project.ID, bundle)
	}
}
