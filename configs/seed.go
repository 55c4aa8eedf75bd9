package configs

import (
	"context"

	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/repository"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/utils"
	"go.uber.org/zap"
)

// SeedSession stores DEV_ACCESS_TOKEN under DEV_SESSION_ID so a local UI can
// skip the login screen.
func SeedSession(ctx context.Context, cfg *Config, tokens repository.TokenStore, log *zap.Logger) error {
	if cfg.DevSessionID == "" || cfg.DevAccessToken == "" {
		log.Debug("skip seeding session: missing DEV_SESSION_ID/DEV_ACCESS_TOKEN")
		return nil
	}
	exp := utils.TokenExpiry(cfg.DevAccessToken)
	if err := tokens.Put(ctx, cfg.DevSessionID, cfg.DevAccessToken, exp); err != nil {
		return err
	}
	log.Info("seeded dev session", zap.String("session", cfg.DevSessionID))
	return nil
}
