package jobs

import (
	"context"
	"log"
	"time"
)

// tokenPruneRepo is the slice of DesignTokenRepository the job needs
type tokenPruneRepo interface {
	PruneInactiveBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// TokenHistoryPruneJob periodically deletes inactive design token rows
// older than the retention window
type TokenHistoryPruneJob struct {
	repo     tokenPruneRepo
	maxAge   time.Duration
	interval time.Duration
	stop     chan struct{}
}

func NewTokenHistoryPruneJob(repo tokenPruneRepo, maxAge, interval time.Duration) *TokenHistoryPruneJob {
	return &TokenHistoryPruneJob{
		repo:     repo,
		maxAge:   maxAge,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

func (j *TokenHistoryPruneJob) Start(ctx context.Context) {
	log.Println("🕐 Starting token history prune job...")

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Println("⏹️ Token history prune job stopped (context cancelled)")
			return
		case <-j.stop:
			log.Println("⏹️ Token history prune job stopped")
			return
		case <-ticker.C:
			j.pruneOnce(ctx)
		}
	}
}

func (j *TokenHistoryPruneJob) Stop() {
	close(j.stop)
}

func (j *TokenHistoryPruneJob) pruneOnce(ctx context.Context) {
	cutoff := time.Now().Add(-j.maxAge)

	removed, err := j.repo.PruneInactiveBefore(ctx, cutoff)
	if err != nil {
		log.Printf("❌ Error pruning token history: %v", err)
		return
	}

	if removed > 0 {
		log.Printf("✅ Pruned %d token history rows", removed)
	}
}
