package pgx

import (
	"context"
	"errors"

	"exphub/internal/domain"

	"github.com/jackc/pgx/v5"
)

// AddUserExp credits delta EXP points to a user, creating the analytics row
// seeded at the awarded value when none exists yet.
func (s *Storage) AddUserExp(ctx context.Context, userID string, delta int) error {
	const query = `
		INSERT INTO user_analytics (user_id, exp_points, league, rank)
		VALUES ($1, $2, 'bronze', 'unranked')
		ON CONFLICT (user_id)
		DO UPDATE SET exp_points = user_analytics.exp_points + EXCLUDED.exp_points;
	`

	_, err := s.getExecutor(ctx).Exec(ctx, query, userID, delta)
	return err
}

func (s *Storage) GetUserAnalytics(ctx context.Context, userID string) (*domain.UserAnalytics, error) {
	const query = `
		SELECT user_id, exp_points, league, rank
		  FROM user_analytics
		 WHERE user_id = $1;
	`

	var analytics domain.UserAnalytics
	err := s.getExecutor(ctx).QueryRow(ctx, query, userID).Scan(
		&analytics.UserID,
		&analytics.ExpPoints,
		&analytics.League,
		&analytics.Rank,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	return &analytics, nil
}
