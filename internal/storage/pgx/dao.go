package pgx

import (
	"exphub/internal/domain"
)

type projectDAO struct {
	ID      string
	Name    string
	Content string
	GitLink string
	Status  string
	ExpMin  int
	ExpMax  int
}

func projectDAOToDomain(p projectDAO) domain.Project {
	return domain.Project{
		ID:      p.ID,
		Name:    p.Name,
		Content: p.Content,
		GitLink: p.GitLink,
		Status:  domain.ProjectStatus(p.Status),
		ExpRange: domain.ExpRange{
			Min: p.ExpMin,
			Max: p.ExpMax,
		},
	}
}
