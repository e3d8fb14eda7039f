package process

import (
	"context"
	"log/slog"
	"time"

	"github.com/arnav-motiramani/daily-doodles/internal/store"
	"github.com/arnav-motiramani/daily-doodles/pkg/register"
)

type TokenProcess struct {
	store store.AccessTokenStore
}

func NewTokenProcess(store store.AccessTokenStore) *TokenProcess {
	return &TokenProcess{store: store}
}

// ClearExpiredTokens 清理过期的登录凭证
func (p *TokenProcess) ClearExpiredTokens(ctx context.Context) error {
	return p.store.DeleteExpired(ctx, time.Now().Unix())
}

func init() {
	register.RegisterFunc(ProcessKey{}, func(provider *Process) {
		provider.Cron().AddFunc("0 4 * * *", func() {
			err := NewTokenProcess(provider.Core().Store().AccessTokenStore()).ClearExpiredTokens(context.Background())
			if err != nil {
				slog.Error("Failed to clear expired access tokens", slog.String("error", err.Error()))
			} else {
				slog.Info("Successfully cleared expired access tokens")
			}
		})
	})
}
