package service

import (
	"testing"

	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/stretchr/testify/assert"
)

func TestMilestoneScore(t *testing.T) {
	tests := []struct {
		status   string
		expected int
	}{
		{model.MilestoneNotStarted, 0},
		{model.MilestoneInProgress, 50},
		{model.MilestoneCompleted, 100},
		{model.MilestoneDelayed, 25},
		{"unknown", 0},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.expected, MilestoneScore(tt.status))
		})
	}
}

func TestItemScore_OwnerScope(t *testing.T) {
	tests := []struct {
		status   string
		expected int
	}{
		{model.ItemNotOrdered, 0},
		{model.ItemOrdered, 30},
		{model.ItemPartiallyOrdered, 50},
		{model.ItemDelivered, 75},
		{model.ItemInstalled, 100},
		{"unknown", 0},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			item := model.ProjectItem{Scope: model.ScopeOwner, Status: tt.status}
			assert.Equal(t, tt.expected, ItemScore(item))
		})
	}
}

func TestItemScore_ContractorScope(t *testing.T) {
	tests := []struct {
		name       string
		completion int
		expected   int
	}{
		{"zero", 0, 0},
		{"partial", 40, 40},
		{"full", 100, 100},
		{"clamped below", -5, 0},
		{"clamped above", 180, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := model.ProjectItem{
				Scope:                model.ScopeContractor,
				Status:               model.ItemInstalled, // must be ignored for contractor scope
				CompletionPercentage: tt.completion,
			}
			assert.Equal(t, tt.expected, ItemScore(item))
		})
	}
}

func TestCalculateProgress(t *testing.T) {
	tests := []struct {
		name       string
		items      []model.ProjectItem
		milestones []model.TimelineMilestone
		expected   int
	}{
		{
			name:     "empty project",
			expected: 0,
		},
		{
			name:       "rounds half up",
			items:      []model.ProjectItem{{Scope: model.ScopeOwner, Status: model.ItemInstalled}},
			milestones: []model.TimelineMilestone{{Status: model.MilestoneDelayed}},
			expected:   63, // (100+25)/2 = 62.5 -> 63
		},
		{
			name: "equal weight across entity kinds",
			items: []model.ProjectItem{
				{Scope: model.ScopeOwner, Status: model.ItemOrdered},     // 30
				{Scope: model.ScopeContractor, CompletionPercentage: 90}, // 90
			},
			milestones: []model.TimelineMilestone{
				{Status: model.MilestoneCompleted},  // 100
				{Status: model.MilestoneNotStarted}, // 0
			},
			expected: 55, // (30+90+100+0)/4
		},
		{
			name:       "milestones only",
			milestones: []model.TimelineMilestone{{Status: model.MilestoneInProgress}},
			expected:   50,
		},
		{
			name:     "items only",
			items:    []model.ProjectItem{{Scope: model.ScopeOwner, Status: model.ItemDelivered}},
			expected: 75,
		},
		{
			name: "all complete",
			items: []model.ProjectItem{
				{Scope: model.ScopeOwner, Status: model.ItemInstalled},
				{Scope: model.ScopeContractor, CompletionPercentage: 100},
			},
			milestones: []model.TimelineMilestone{{Status: model.MilestoneCompleted}},
			expected:   100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CalculateProgress(tt.items, tt.milestones))
		})
	}
}
