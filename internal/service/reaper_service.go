package service

import (
	"context"
	"time"

	"synapsex-be/internal/pkg/logger"
	"synapsex-be/internal/repository/specification"
	"synapsex-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const reaperLeaseKey = "story_reaper:lease"

type IReaperService interface {
	// Run sweeps on a fixed interval until ctx is cancelled.
	Run(ctx context.Context)
	// SweepOnce removes stories expired longer than the retention window.
	// Returns the number of stories removed.
	SweepOnce(ctx context.Context) (int, error)
}

// reaperService garbage-collects expired stories. Expiry itself is a
// read-time predicate; the reaper only reclaims rows nobody can see
// anymore, after a retention grace period.
type reaperService struct {
	uowFactory unitofwork.RepositoryFactory
	logger     logger.ILogger

	// Optional. With redis, a SETNX lease keeps concurrent instances from
	// sweeping the same rows; without it every instance sweeps, which is
	// safe but wasteful.
	rdb *redis.Client

	retention time.Duration
	interval  time.Duration
	now       func() time.Time
}

func NewReaperService(
	uowFactory unitofwork.RepositoryFactory,
	rdb *redis.Client,
	log logger.ILogger,
	retention time.Duration,
	interval time.Duration,
) IReaperService {
	if retention <= 0 {
		retention = 72 * time.Hour
	}
	if interval <= 0 {
		interval = time.Hour
	}
	return &reaperService{
		uowFactory: uowFactory,
		rdb:        rdb,
		logger:     log,
		retention:  retention,
		interval:   interval,
		now:        time.Now,
	}
}

func (s *reaperService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if !s.acquireLease(ctx) {
				continue
			}
			removed, err := s.SweepOnce(ctx)
			if err != nil {
				s.logger.Error("Reaper", "Sweep failed", map[string]interface{}{"error": err.Error()})
				continue
			}
			if removed > 0 {
				s.logger.Info("Reaper", "Swept expired stories", map[string]interface{}{"removed": removed})
			}
		}
	}
}

// acquireLease grabs the sweep lease for one interval. The lease expires on
// its own, so a crashed holder never blocks the next sweep.
func (s *reaperService) acquireLease(ctx context.Context) bool {
	if s.rdb == nil {
		return true
	}
	ok, err := s.rdb.SetNX(ctx, reaperLeaseKey, "1", s.interval).Result()
	if err != nil {
		s.logger.Warn("Reaper", "Lease check failed, sweeping anyway", map[string]interface{}{"error": err.Error()})
		return true
	}
	return ok
}

func (s *reaperService) SweepOnce(ctx context.Context) (int, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	cutoff := s.now().Add(-s.retention)

	expired, err := uow.StoryRepository().FindAll(ctx, specification.ExpiredBefore{Cutoff: cutoff})
	if err != nil {
		return 0, err
	}

	removed := 0
	for _, story := range expired {
		// One transaction per story so a single failure doesn't roll back
		// the whole batch.
		if err := s.reapStory(ctx, story.Id); err != nil {
			s.logger.Warn("Reaper", "Failed to reap story", map[string]interface{}{
				"story_id": story.Id,
				"error":    err.Error(),
			})
			continue
		}
		removed++
	}
	return removed, nil
}

func (s *reaperService) reapStory(ctx context.Context, storyId uuid.UUID) error {
	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.Begin(ctx); err != nil {
		return err
	}
	defer uow.Rollback()

	if err := uow.StoryViewRepository().DeleteAllByStoryId(ctx, storyId); err != nil {
		return err
	}
	if err := uow.StoryMessageRepository().DeleteAllByStoryId(ctx, storyId); err != nil {
		return err
	}
	if err := uow.StoryRepository().Delete(ctx, storyId); err != nil {
		return err
	}
	return uow.Commit()
}
