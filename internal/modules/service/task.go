package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/buildra-io/sitetrack/internal/modules/repo"
	"github.com/google/uuid"
)

// columnEnd is an index past any real column, so a move with it appends.
const columnEnd = 1 << 30

// TaskService owns the Kanban board: task CRUD, the per-column ordering
// and moves within/across columns. All caller-supplied status strings go
// through model.NormalizeTaskStatus before they reach the store.
type TaskService interface {
	Create(ctx context.Context, actor *model.User, t *model.Task) error
	Update(ctx context.Context, actor *model.User, in UpdateTaskInput) (*model.Task, error)
	Board(ctx context.Context, projectID uuid.UUID) (*BoardOutput, error)
	Move(ctx context.Context, actor *model.User, in MoveTaskInput) (*model.Task, error)
	Delete(ctx context.Context, actor *model.User, projectID, taskID uuid.UUID) error
}

// UpdateTaskInput is a partial update: nil fields are left untouched.
// A status change is routed through the board move so the affected
// columns stay densely indexed.
type UpdateTaskInput struct {
	TaskID      uuid.UUID
	Title       *string
	Description *string
	Priority    *string
	Status      *string
	AssignedTo  *uuid.UUID
	DueDate     *time.Time
}

type taskService struct {
	r     repo.TaskRepo
	audit AuditService
}

func NewTaskService(r repo.TaskRepo, audit AuditService) TaskService {
	return &taskService{r: r, audit: audit}
}

func (s *taskService) Create(ctx context.Context, actor *model.User, t *model.Task) error {
	t.Status = model.NormalizeTaskStatus(t.Status)
	if t.Priority == "" {
		t.Priority = model.PriorityMedium
	}
	if !model.IsValidTaskPriority(t.Priority) {
		return fmt.Errorf("invalid task priority: %s", t.Priority)
	}

	if err := s.r.Create(ctx, t); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, "task.create", "task", &t.ID, map[string]interface{}{
		"project_id": t.ProjectID.String(),
		"title":      t.Title,
		"status":     t.Status,
	})
	return nil
}

func (s *taskService) Update(ctx context.Context, actor *model.User, in UpdateTaskInput) (*model.Task, error) {
	if in.TaskID == uuid.Nil {
		return nil, errors.New("task id is empty")
	}

	t, err := s.r.Get(ctx, in.TaskID)
	if err != nil {
		return nil, err
	}

	if in.Title != nil {
		t.Title = *in.Title
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Priority != nil {
		t.Priority = *in.Priority
	}
	if in.AssignedTo != nil {
		t.AssignedTo = in.AssignedTo
	}
	if in.DueDate != nil {
		t.DueDate = in.DueDate
	}

	if !model.IsValidTaskPriority(t.Priority) {
		return nil, fmt.Errorf("invalid task priority: %s", t.Priority)
	}
	if err := s.r.Update(ctx, t); err != nil {
		return nil, err
	}

	// A status change is a board move to the end of the new column.
	if in.Status != nil {
		if toStatus := model.NormalizeTaskStatus(*in.Status); toStatus != t.Status {
			if t, err = s.r.Move(ctx, t.ProjectID, t.ID, toStatus, columnEnd); err != nil {
				return nil, err
			}
		}
	}

	s.audit.Record(ctx, actor, "task.update", "task", &t.ID, nil)
	return t, nil
}

// BoardOutput groups a project's tasks by column, each column ordered by
// order_index.
type BoardOutput struct {
	Columns map[string][]*model.Task `json:"columns"`
}

func (s *taskService) Board(ctx context.Context, projectID uuid.UUID) (*BoardOutput, error) {
	tasks, err := s.r.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}

	out := &BoardOutput{Columns: make(map[string][]*model.Task, len(model.TaskColumns))}
	for _, col := range model.TaskColumns {
		out.Columns[col] = []*model.Task{}
	}
	for _, t := range tasks {
		out.Columns[t.Status] = append(out.Columns[t.Status], t)
	}
	return out, nil
}

type MoveTaskInput struct {
	ProjectID uuid.UUID
	TaskID    uuid.UUID
	ToStatus  string
	ToIndex   int
}

func (s *taskService) Move(ctx context.Context, actor *model.User, in MoveTaskInput) (*model.Task, error) {
	if in.TaskID == uuid.Nil {
		return nil, errors.New("task id is empty")
	}

	toStatus := model.NormalizeTaskStatus(in.ToStatus)
	moved, err := s.r.Move(ctx, in.ProjectID, in.TaskID, toStatus, in.ToIndex)
	if err != nil {
		return nil, err
	}

	s.audit.Record(ctx, actor, "task.move", "task", &in.TaskID, map[string]interface{}{
		"project_id": in.ProjectID.String(),
		"to_status":  toStatus,
		"to_index":   in.ToIndex,
	})
	return moved, nil
}

func (s *taskService) Delete(ctx context.Context, actor *model.User, projectID, taskID uuid.UUID) error {
	if taskID == uuid.Nil {
		return errors.New("task id is empty")
	}
	if err := s.r.Delete(ctx, projectID, taskID); err != nil {
		return err
	}

	s.audit.Record(ctx, actor, "task.delete", "task", &taskID, map[string]interface{}{
		"project_id": projectID.String(),
	})
	return nil
}
