package repo

import (
	"context"
	"fmt"

	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TaskRepo interface {
	Create(ctx context.Context, t *model.Task) error
	Update(ctx context.Context, t *model.Task) error
	Get(ctx context.Context, taskID uuid.UUID) (*model.Task, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]*model.Task, error)
	Move(ctx context.Context, projectID, taskID uuid.UUID, toStatus string, toIndex int) (*model.Task, error)
	Delete(ctx context.Context, projectID uuid.UUID, taskID uuid.UUID) error
}

type taskRepo struct{ db *gorm.DB }

func NewTaskRepo(db *gorm.DB) TaskRepo {
	return &taskRepo{db: db}
}

// Create appends the task at the end of its status column.
func (r *taskRepo) Create(ctx context.Context, t *model.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var next int
		if err := tx.Model(&model.Task{}).
			Where("project_id = ? AND status = ?", t.ProjectID, t.Status).
			Select("COALESCE(MAX(order_index) + 1, 0)").
			Scan(&next).Error; err != nil {
			return err
		}
		t.OrderIndex = next
		return tx.Create(t).Error
	})
}

// taskUpdates lists the mutable columns so zero values persist. Status and
// order_index are absent: column membership and position only change
// through Move, which keeps both columns densely indexed.
func taskUpdates(t *model.Task) map[string]interface{} {
	return map[string]interface{}{
		"title":       t.Title,
		"description": t.Description,
		"priority":    t.Priority,
		"assigned_to": t.AssignedTo,
		"due_date":    t.DueDate,
	}
}

func (r *taskRepo) Update(ctx context.Context, t *model.Task) error {
	return r.db.WithContext(ctx).Model(&model.Task{}).
		Where("id = ?", t.ID).
		Updates(taskUpdates(t)).Error
}

func (r *taskRepo) Get(ctx context.Context, taskID uuid.UUID) (*model.Task, error) {
	var t model.Task
	return &t, r.db.WithContext(ctx).Where("id = ?", taskID).First(&t).Error
}

func (r *taskRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]*model.Task, error) {
	var tasks []*model.Task
	return tasks, r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("status ASC, order_index ASC, created_at ASC").
		Find(&tasks).Error
}

// Move repositions a task within its column or across columns. Both
// affected columns are rewritten with dense 0-based order_index values,
// and the task's status becomes the destination column's value. The whole
// sequence runs in one transaction, so a crash cannot leave a column with
// duplicate or gapped indexes.
func (r *taskRepo) Move(ctx context.Context, projectID, taskID uuid.UUID, toStatus string, toIndex int) (*model.Task, error) {
	var moved model.Task

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("id = ? AND project_id = ?", taskID, projectID).First(&moved).Error; err != nil {
			return err
		}
		fromStatus := moved.Status
		sameColumn := toStatus == fromStatus

		source, err := listColumn(tx, projectID, fromStatus)
		if err != nil {
			return err
		}
		var dest []model.Task
		if !sameColumn {
			if dest, err = listColumn(tx, projectID, toStatus); err != nil {
				return err
			}
		}

		src, dst, err := planMove(source, dest, taskID, toStatus, toIndex, sameColumn)
		if err != nil {
			return err
		}

		if err := writeColumn(tx, src); err != nil {
			return err
		}
		return writeColumn(tx, dst)
	})
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, taskID)
}

// planMove splices the task out of its source column and into the
// destination column at the clamped index, then assigns the destination
// status and dense 0-based order indexes. For a same-column move pass
// sameColumn=true with a nil dest; the whole rewritten column comes back
// as dst and src is empty.
func planMove(source, dest []model.Task, taskID uuid.UUID, toStatus string, toIndex int, sameColumn bool) (src, dst []model.Task, err error) {
	idx := -1
	for i, t := range source {
		if t.ID == taskID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, nil, fmt.Errorf("task %s not in its source column", taskID)
	}
	moved := source[idx]

	rest := make([]model.Task, 0, len(source)-1)
	rest = append(rest, source[:idx]...)
	rest = append(rest, source[idx+1:]...)

	if sameColumn {
		dest = rest
	} else {
		src = rest
	}

	if toIndex < 0 {
		toIndex = 0
	}
	if toIndex > len(dest) {
		toIndex = len(dest)
	}

	moved.Status = toStatus
	dst = make([]model.Task, 0, len(dest)+1)
	dst = append(dst, dest[:toIndex]...)
	dst = append(dst, moved)
	dst = append(dst, dest[toIndex:]...)

	for i := range src {
		src[i].OrderIndex = i
	}
	for i := range dst {
		dst[i].OrderIndex = i
		dst[i].Status = toStatus
	}
	return src, dst, nil
}

func (r *taskRepo) Delete(ctx context.Context, projectID uuid.UUID, taskID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ? AND project_id = ?", taskID, projectID).
		Delete(&model.Task{}).Error
}

func listColumn(tx *gorm.DB, projectID uuid.UUID, status string) ([]model.Task, error) {
	var tasks []model.Task
	return tasks, tx.
		Where("project_id = ? AND status = ?", projectID, status).
		Order("order_index ASC, created_at ASC, id ASC").
		Find(&tasks).Error
}

// writeColumn persists the status and order index planMove assigned to
// each task.
func writeColumn(tx *gorm.DB, tasks []model.Task) error {
	for _, t := range tasks {
		if err := tx.Model(&model.Task{}).
			Where("id = ?", t.ID).
			Updates(map[string]interface{}{"order_index": t.OrderIndex, "status": t.Status}).Error; err != nil {
			return err
		}
	}
	return nil
}
