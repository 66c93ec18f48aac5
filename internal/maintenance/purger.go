package maintenance

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/weiyuzhang/dealerhub/internal/metrics"
	"github.com/weiyuzhang/dealerhub/internal/repository"
)

// TokenPurger deletes expired and used magic tokens on a cron schedule.
type TokenPurger struct {
	users    repository.UserRepository
	logger   *slog.Logger
	cronExpr string
}

func NewTokenPurger(users repository.UserRepository, logger *slog.Logger, cronExpr string) *TokenPurger {
	return &TokenPurger{
		users:    users,
		logger:   logger.With("component", "token_purger"),
		cronExpr: cronExpr,
	}
}

// Start registers the cron entry and blocks until ctx is cancelled.
func (p *TokenPurger) Start(ctx context.Context) error {
	c := cron.New()
	_, err := c.AddFunc(p.cronExpr, func() {
		p.purge(ctx)
	})
	if err != nil {
		return err
	}

	c.Start()
	p.logger.Info("token purger started", "cron", p.cronExpr)

	<-ctx.Done()
	stopCtx := c.Stop()
	<-stopCtx.Done()
	p.logger.Info("token purger shut down")
	return nil
}

func (p *TokenPurger) purge(ctx context.Context) {
	purgeCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	n, err := p.users.PurgeExpiredTokens(purgeCtx, time.Now())
	if err != nil {
		p.logger.Error("purge expired tokens", "error", err)
		return
	}
	if n > 0 {
		metrics.TokensPurgedTotal.Add(float64(n))
		p.logger.Info("purged magic tokens", "count", n)
	}
}
