package pgx

import (
	"context"
	"errors"

	"exphub/internal/domain"

	"github.com/jackc/pgx/v5"
)

func (s *Storage) CreateProject(ctx context.Context, project domain.Project) error {
	const query = `
		INSERT INTO projects (id, name, content, git_link, status, exp_min, exp_max)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`

	_, err := s.getExecutor(ctx).Exec(ctx, query,
		project.ID,
		project.Name,
		project.Content,
		project.GitLink,
		string(project.Status),
		project.ExpRange.Min,
		project.ExpRange.Max,
	)
	return err
}

func (s *Storage) GetProjectByID(ctx context.Context, projectID string) (*domain.Project, error) {
	const query = `
		SELECT id, name, content, git_link, status, exp_min, exp_max
		  FROM projects
		 WHERE id = $1;
	`

	return s.scanProject(s.getExecutor(ctx).QueryRow(ctx, query, projectID))
}

func (s *Storage) GetProjectByGitLink(ctx context.Context, gitLink string) (*domain.Project, error) {
	const query = `
		SELECT id, name, content, git_link, status, exp_min, exp_max
		  FROM projects
		 WHERE git_link = $1;
	`

	return s.scanProject(s.getExecutor(ctx).QueryRow(ctx, query, gitLink))
}

func (s *Storage) ListProjects(ctx context.Context) ([]domain.Project, error) {
	const query = `
		SELECT id, name, content, git_link, status, exp_min, exp_max
		  FROM projects
		 ORDER BY name;
	`

	rows, err := s.getExecutor(ctx).Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := make([]domain.Project, 0)
	for rows.Next() {
		var dao projectDAO
		if err := rows.Scan(
			&dao.ID,
			&dao.Name,
			&dao.Content,
			&dao.GitLink,
			&dao.Status,
			&dao.ExpMin,
			&dao.ExpMax,
		); err != nil {
			return nil, err
		}
		projects = append(projects, projectDAOToDomain(dao))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return projects, nil
}

func (s *Storage) scanProject(row pgx.Row) (*domain.Project, error) {
	var dao projectDAO
	err := row.Scan(
		&dao.ID,
		&dao.Name,
		&dao.Content,
		&dao.GitLink,
		&dao.Status,
		&dao.ExpMin,
		&dao.ExpMax,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	project := projectDAOToDomain(dao)
	return &project, nil
}
