package services

import (
	"context"
	"errors"
	"time"

	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/repository"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/utils"
	"go.uber.org/zap"
)

// credential returns the usable access token of a session, or "" when there
// is none. Storage errors read as "no credential".
func credential(ctx context.Context, tokens repository.TokenStore, sessionID string, now time.Time, log *zap.Logger) string {
	if tokens == nil || sessionID == "" {
		return ""
	}
	tok, err := tokens.Get(ctx, sessionID)
	if err != nil {
		if !errors.Is(err, repository.ErrSessionNotFound) {
			log.Warn("token store read failed", zap.String("session", sessionID), zap.Error(err))
		}
		return ""
	}
	if !utils.TokenUsable(tok, now) {
		return ""
	}
	return tok
}
