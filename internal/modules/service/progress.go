package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/buildra-io/sitetrack/internal/infra/metrics"
	"github.com/buildra-io/sitetrack/internal/modules/model"
	"github.com/buildra-io/sitetrack/internal/modules/repo"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// MilestoneScore maps a milestone status onto its contribution out of 100.
func MilestoneScore(status string) int {
	switch status {
	case model.MilestoneNotStarted:
		return 0
	case model.MilestoneInProgress:
		return 50
	case model.MilestoneCompleted:
		return 100
	case model.MilestoneDelayed:
		return 25
	}
	return 0
}

// ItemScore maps an item onto its contribution out of 100. Owner items
// score from the order status ladder; contractor items score directly
// from their completion percentage.
func ItemScore(i model.ProjectItem) int {
	if i.Scope == model.ScopeContractor {
		if i.CompletionPercentage < 0 {
			return 0
		}
		if i.CompletionPercentage > 100 {
			return 100
		}
		return i.CompletionPercentage
	}

	switch i.Status {
	case model.ItemNotOrdered:
		return 0
	case model.ItemOrdered:
		return 30
	case model.ItemPartiallyOrdered:
		return 50
	case model.ItemDelivered:
		return 75
	case model.ItemInstalled:
		return 100
	}
	return 0
}

// CalculateProgress is the pure aggregation: every item and milestone
// contributes an equal weight of 100 to the denominator regardless of
// scope or category, and the result is the rounded (half up) average of
// the per-entity scores. Empty input yields 0.
func CalculateProgress(items []model.ProjectItem, milestones []model.TimelineMilestone) int {
	n := len(items) + len(milestones)
	if n == 0 {
		return 0
	}

	sum := 0
	for _, i := range items {
		sum += ItemScore(i)
	}
	for _, m := range milestones {
		sum += MilestoneScore(m.Status)
	}

	return int(math.Floor(float64(sum)/float64(n) + 0.5))
}

// ProgressService recomputes and persists a project's aggregate progress.
// Every item and milestone mutation goes through Recompute.
type ProgressService interface {
	// Recompute re-derives the project's progress from its current items
	// and milestones and stores it on the project row. Errors are not
	// propagated: a failed recompute logs a warning and reports 0, so a
	// zero return is not a reliable "no work" signal.
	Recompute(ctx context.Context, projectID uuid.UUID) int

	// Cached returns the last stored progress value from Redis.
	Cached(ctx context.Context, projectID uuid.UUID) (int, bool)
}

type progressService struct {
	projects repo.ProjectRepo
	rdb      *redis.Client
	log      *zap.Logger
}

func NewProgressService(projects repo.ProjectRepo, rdb *redis.Client, log *zap.Logger) ProgressService {
	return &progressService{projects: projects, rdb: rdb, log: log}
}

func progressKey(projectID uuid.UUID) string {
	return fmt.Sprintf("progress:%s", projectID)
}

func (s *progressService) Recompute(ctx context.Context, projectID uuid.UUID) int {
	start := time.Now()
	progress, err := s.projects.RecomputeProgress(ctx, projectID, CalculateProgress)
	if err != nil {
		metrics.RecordProgressRecompute("error", time.Since(start))
		s.log.Sugar().Warnw("progress recompute failed", "project_id", projectID, "err", err)
		return 0
	}
	metrics.RecordProgressRecompute("ok", time.Since(start))

	if s.rdb != nil {
		if err := s.rdb.Set(ctx, progressKey(projectID), progress, 0).Err(); err != nil {
			s.log.Sugar().Debugw("progress cache write failed", "project_id", projectID, "err", err)
		}
	}

	return progress
}

func (s *progressService) Cached(ctx context.Context, projectID uuid.UUID) (int, bool) {
	if s.rdb == nil {
		return 0, false
	}
	raw, err := s.rdb.Get(ctx, progressKey(projectID)).Result()
	if err != nil {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
