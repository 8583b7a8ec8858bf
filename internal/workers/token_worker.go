package workers

import (
	"context"
	"time"

	"skillswap_backend/internal/logger"
	"skillswap_backend/internal/repositories"
)

const tokenCleanupInterval = 6 * time.Hour

// TokenWorker removes expired refresh tokens in the background.
type TokenWorker struct {
	tokenRepo repositories.RefreshTokenRepository
	interval  time.Duration
}

func NewTokenWorker(tokenRepo repositories.RefreshTokenRepository) *TokenWorker {
	return &TokenWorker{
		tokenRepo: tokenRepo,
		interval:  tokenCleanupInterval,
	}
}

// Start launches the cleanup loop. It stops when ctx is cancelled.
func (w *TokenWorker) Start(ctx context.Context) {
	go w.cleanExpiredTokens(ctx)
}

func (w *TokenWorker) cleanExpiredTokens(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("token worker stopped")
			return
		case <-ticker.C:
			removed, err := w.tokenRepo.CleanExpired(ctx)
			if err != nil {
				logger.WithError(err).Error("failed to clean expired refresh tokens")
				continue
			}
			if removed > 0 {
				logger.Info("cleaned expired refresh tokens", "count", removed)
			}
		}
	}
}
