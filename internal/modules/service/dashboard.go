package service

import (
	"context"

	"github.com/buildra-io/sitetrack/internal/modules/repo"
	"github.com/google/uuid"
)

// DashboardService summarizes the portfolio: per-chain counts by status
// plus each project's current progress. Progress reads go through the
// Redis mirror first and fall back to the stored column.
type DashboardService interface {
	Summary(ctx context.Context) (*DashboardOutput, error)
}

type dashboardService struct {
	projects repo.ProjectRepo
	progress ProgressService
}

func NewDashboardService(projects repo.ProjectRepo, progress ProgressService) DashboardService {
	return &dashboardService{projects: projects, progress: progress}
}

type DashboardProject struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Chain    string    `json:"chain"`
	Status   string    `json:"status"`
	Progress int       `json:"progress"`
}

type DashboardOutput struct {
	StatusCounts map[string]map[string]int `json:"status_counts"` // chain -> status -> count
	Projects     []DashboardProject        `json:"projects"`
}

func (s *dashboardService) Summary(ctx context.Context) (*DashboardOutput, error) {
	projects, err := s.projects.List(ctx, "", "")
	if err != nil {
		return nil, err
	}

	out := &DashboardOutput{
		StatusCounts: map[string]map[string]int{},
		Projects:     make([]DashboardProject, 0, len(projects)),
	}

	for _, p := range projects {
		if out.StatusCounts[p.Chain] == nil {
			out.StatusCounts[p.Chain] = map[string]int{}
		}
		out.StatusCounts[p.Chain][p.Status]++

		progress := p.Progress
		if cached, ok := s.progress.Cached(ctx, p.ID); ok {
			progress = cached
		}

		out.Projects = append(out.Projects, DashboardProject{
			ID:       p.ID,
			Name:     p.Name,
			Chain:    p.Chain,
			Status:   p.Status,
			Progress: progress,
		})
	}

	return out, nil
}
