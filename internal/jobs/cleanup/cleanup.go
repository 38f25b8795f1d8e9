// Package cleanup prunes per-session view caches once their admin session has
// expired. Sessions live in redis with a TTL; the in-memory caches need this
// sweep or they grow with every login.
package cleanup

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	authsvc "github.com/jayeshnarola-afk/pet-meeting-admin/internal/services/auth"
)

type ViewCache interface {
	CachedSessions() []string
	DropView(sid string)
}

type sessionChecker interface {
	Get(ctx context.Context, sid string) (authsvc.SessionRecord, error)
}

type Job struct {
	sessions sessionChecker
	caches   []ViewCache
	interval time.Duration
	logger   *zap.Logger
}

func New(sessions sessionChecker, caches []ViewCache, interval time.Duration, logger *zap.Logger) *Job {
	if interval <= 0 {
		interval = time.Hour
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Job{
		sessions: sessions,
		caches:   caches,
		interval: interval,
		logger:   logger,
	}
}

// Run performs one sweep: every cached view whose session no longer exists is
// dropped.
func (j *Job) Run(ctx context.Context) error {
	if j.sessions == nil {
		return nil
	}

	dropped := 0
	for _, cache := range j.caches {
		for _, sid := range cache.CachedSessions() {
			_, err := j.sessions.Get(ctx, sid)
			if err == nil {
				continue
			}
			if !errors.Is(err, authsvc.ErrSessionNotFound) {
				return fmt.Errorf("check session %s: %w", sid, err)
			}
			cache.DropView(sid)
			dropped++
		}
	}

	if dropped > 0 {
		j.logger.Info("pruned expired view caches", zap.Int("dropped", dropped))
	}
	return nil
}

// Start runs sweeps on the configured interval until the context ends.
func (j *Job) Start(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := j.Run(ctx); err != nil {
				j.logger.Warn("view cache sweep failed", zap.Error(err))
			}
		}
	}
}
