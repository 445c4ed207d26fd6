package repo

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/buildra-io/sitetrack/internal/modules/model"
)

func TestMilestoneUpdates_AllColumnsIncluded(t *testing.T) {
	updates := milestoneUpdates(&model.TimelineMilestone{
		ID:     uuid.New(),
		Name:   "Handover",
		Status: model.MilestoneNotStarted,
	})

	for _, col := range []string{"name", "planned_date", "actual_date", "status"} {
		assert.Contains(t, updates, col)
	}
	assert.Equal(t, model.MilestoneNotStarted, updates["status"])
}
