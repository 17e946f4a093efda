package pgx

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5"
)

// GetUserToken returns the stored GitHub access token of a user, or an empty
// string when the user is unknown or has no token. Upstream fetches fall
// back to unauthenticated access in that case.
func (s *Storage) GetUserToken(ctx context.Context, userID string) (string, error) {
	const query = `
		SELECT github_access_token
		  FROM users
		 WHERE id = $1;
	`

	var token sql.NullString
	err := s.getExecutor(ctx).QueryRow(ctx, query, userID).Scan(&token)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", err
	}

	if !token.Valid {
		return "", nil
	}
	return token.String, nil
}
