package repo

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/buildra-io/sitetrack/internal/modules/model"
)

func TestProjectUpdates_ZeroValuesIncluded(t *testing.T) {
	updates := projectUpdates(&model.Project{
		ID:    uuid.New(),
		Name:  "BK Marina Mall",
		Chain: model.ChainBK,
		Notes: "",
	})

	notes, ok := updates["notes"]
	assert.True(t, ok)
	assert.Equal(t, "", notes)

	for _, col := range []string{"name", "chain", "location", "main_contractor", "status", "start_date", "end_date"} {
		assert.Contains(t, updates, col)
	}

	// Progress is derived and must never ride along on a field update.
	assert.NotContains(t, updates, "progress")
}
