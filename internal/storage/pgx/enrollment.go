package pgx

import (
	"context"
	"errors"

	"exphub/internal/domain"

	"github.com/jackc/pgx/v5"
)

// GetEnrollment resolves the claim on (owner, repo, issue_number) together
// with the enrolled user's GitHub login, which the award flow matches
// against the merging user.
func (s *Storage) GetEnrollment(ctx context.Context, owner, repo string, issueNumber int) (*domain.IssueEnrollment, error) {
	const query = `
		SELECT e.owner, e.repo, e.issue_number, e.user_id, u.github_login
		  FROM issue_enrollments e
		  JOIN users u ON u.id = e.user_id
		 WHERE e.owner = $1
		   AND e.repo = $2
		   AND e.issue_number = $3;
	`

	var enrollment domain.IssueEnrollment
	err := s.getExecutor(ctx).QueryRow(ctx, query, owner, repo, issueNumber).Scan(
		&enrollment.Owner,
		&enrollment.Repo,
		&enrollment.IssueNumber,
		&enrollment.UserID,
		&enrollment.GithubLogin,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &enrollment, nil
}
