package repo

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/buildra-io/sitetrack/internal/modules/model"
)

func TestItemUpdates_ZeroValuesIncluded(t *testing.T) {
	updates := itemUpdates(&model.ProjectItem{
		ID:                   uuid.New(),
		Name:                 "Flooring",
		Scope:                model.ScopeContractor,
		Status:               model.ItemNotOrdered,
		CompletionPercentage: 0,
		Notes:                "",
		LPOStatus:            model.LPONA,
	})

	// A reset to 0% must reach the store, not be skipped as a zero value.
	pct, ok := updates["completion_percentage"]
	assert.True(t, ok)
	assert.Equal(t, 0, pct)

	// Same for cleared notes.
	notes, ok := updates["notes"]
	assert.True(t, ok)
	assert.Equal(t, "", notes)

	for _, col := range []string{"name", "category", "scope", "status", "company_id", "lpo_status"} {
		assert.Contains(t, updates, col)
	}
}
