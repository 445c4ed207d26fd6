package service

import (
	"testing"
	"time"

	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/stretchr/testify/assert"
)

func TestSortTasksByPriority(t *testing.T) {
	day := func(d int) *time.Time {
		ts := time.Date(2025, 6, d, 0, 0, 0, 0, time.UTC)
		return &ts
	}

	tasks := []*model.Task{
		{Title: "low early", Priority: model.PriorityLow, DueDate: day(1)},
		{Title: "high no date", Priority: model.PriorityHigh},
		{Title: "medium late", Priority: model.PriorityMedium, DueDate: day(20)},
		{Title: "high late", Priority: model.PriorityHigh, DueDate: day(15)},
		{Title: "high early", Priority: model.PriorityHigh, DueDate: day(2)},
		{Title: "medium no date", Priority: model.PriorityMedium},
	}

	SortTasksByPriority(tasks)

	titles := make([]string, len(tasks))
	for i, task := range tasks {
		titles[i] = task.Title
	}
	assert.Equal(t, []string{
		"high early",
		"high late",
		"high no date",
		"medium late",
		"medium no date",
		"low early",
	}, titles)
}

func TestSortTasksByPriority_StableWithinSamePriorityAndDate(t *testing.T) {
	due := time.Date(2025, 6, 5, 0, 0, 0, 0, time.UTC)
	tasks := []*model.Task{
		{Title: "first", Priority: model.PriorityHigh, DueDate: &due},
		{Title: "second", Priority: model.PriorityHigh, DueDate: &due},
	}

	SortTasksByPriority(tasks)

	assert.Equal(t, "first", tasks[0].Title)
	assert.Equal(t, "second", tasks[1].Title)
}
