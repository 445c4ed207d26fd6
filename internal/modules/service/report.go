package service

import (
	"context"
	"sort"

	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/buildra-io/sitetrack/internal/modules/repo"
	"github.com/google/uuid"
)

// ReportService assembles the project report payload: header, progress,
// items grouped by scope, milestones and the open task list ordered by
// priority. Rendering is the client's problem.
type ReportService interface {
	ProjectReport(ctx context.Context, projectID uuid.UUID) (*ProjectReportOutput, error)
}

type reportService struct {
	projects   repo.ProjectRepo
	items      repo.ItemRepo
	milestones repo.MilestoneRepo
	tasks      repo.TaskRepo
}

func NewReportService(projects repo.ProjectRepo, items repo.ItemRepo, milestones repo.MilestoneRepo, tasks repo.TaskRepo) ReportService {
	return &reportService{projects: projects, items: items, milestones: milestones, tasks: tasks}
}

type ProjectReportOutput struct {
	Project         *model.Project             `json:"project"`
	OwnerItems      []*model.ProjectItem       `json:"owner_items"`
	ContractorItems []*model.ProjectItem       `json:"contractor_items"`
	Milestones      []*model.TimelineMilestone `json:"milestones"`
	OpenTasks       []*model.Task              `json:"open_tasks"`
}

var priorityRank = map[string]int{
	model.PriorityHigh:   0,
	model.PriorityMedium: 1,
	model.PriorityLow:    2,
}

// SortTasksByPriority orders tasks high before medium before low, with
// earlier due dates first inside a priority band and dateless tasks last.
func SortTasksByPriority(tasks []*model.Task) {
	sort.SliceStable(tasks, func(i, j int) bool {
		ri, rj := priorityRank[tasks[i].Priority], priorityRank[tasks[j].Priority]
		if ri != rj {
			return ri < rj
		}
		di, dj := tasks[i].DueDate, tasks[j].DueDate
		switch {
		case di == nil && dj == nil:
			return false
		case di == nil:
			return false
		case dj == nil:
			return true
		default:
			return di.Before(*dj)
		}
	})
}

func (s *reportService) ProjectReport(ctx context.Context, projectID uuid.UUID) (*ProjectReportOutput, error) {
	project, err := s.projects.Get(ctx, projectID)
	if err != nil {
		return nil, err
	}

	items, err := s.items.ListByProject(ctx, projectID, "")
	if err != nil {
		return nil, err
	}

	milestones, err := s.milestones.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	out := &ProjectReportOutput{
		Project:         project,
		OwnerItems:      []*model.ProjectItem{},
		ContractorItems: []*model.ProjectItem{},
		Milestones:      milestones,
		OpenTasks:       []*model.Task{},
	}
	for _, i := range items {
		if i.Scope == model.ScopeContractor {
			out.ContractorItems = append(out.ContractorItems, i)
		} else {
			out.OwnerItems = append(out.OwnerItems, i)
		}
	}
	for _, t := range tasks {
		if t.Status != model.TaskDone {
			out.OpenTasks = append(out.OpenTasks, t)
		}
	}
	SortTasksByPriority(out.OpenTasks)

	return out, nil
}
