package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTaskStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"todo", TaskTodo},
		{"in_progress", TaskInProgress},
		{"in-progress", TaskInProgress},
		{"in progress", TaskInProgress},
		{"IN PROGRESS", TaskInProgress},
		{"Review", TaskReview},
		{"done", TaskDone},
		{"  done  ", TaskDone},
		{"", TaskTodo},
		{"blocked", TaskTodo},
		{"DONE!", TaskTodo},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeTaskStatus(tt.input))
		})
	}
}

func TestIsValidTaskPriority(t *testing.T) {
	assert.True(t, IsValidTaskPriority(PriorityLow))
	assert.True(t, IsValidTaskPriority(PriorityMedium))
	assert.True(t, IsValidTaskPriority(PriorityHigh))
	assert.False(t, IsValidTaskPriority("urgent"))
	assert.False(t, IsValidTaskPriority(""))
}

func TestTaskColumnsOrder(t *testing.T) {
	assert.Equal(t, []string{TaskTodo, TaskInProgress, TaskReview, TaskDone}, TaskColumns)
}
