package repository

import (
	"context"
	"errors"
	"time"

	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrSessionNotFound = errors.New("session not found")

// TokenStore is the client-side storage of access tokens, keyed by UI session.
type TokenStore interface {
	Get(ctx context.Context, sessionID string) (string, error)
	Put(ctx context.Context, sessionID, token string, expiresAt *time.Time) error
	Delete(ctx context.Context, sessionID string) error
}

type SessionRepository struct{ DB *gorm.DB }

func NewSessionRepository(db *gorm.DB) *SessionRepository { return &SessionRepository{DB: db} }

func (r *SessionRepository) Get(ctx context.Context, sessionID string) (string, error) {
	var s entity.Session
	err := r.DB.WithContext(ctx).Where("session_id = ?", sessionID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", ErrSessionNotFound
	}
	if err != nil {
		return "", err
	}
	// expired rows are dropped lazily
	if s.ExpiresAt != nil && !time.Now().Before(*s.ExpiresAt) {
		_ = r.Delete(ctx, sessionID)
		return "", ErrSessionNotFound
	}
	return s.AccessToken, nil
}

// Put upserts the token of a session.
func (r *SessionRepository) Put(ctx context.Context, sessionID, token string, expiresAt *time.Time) error {
	row := entity.Session{SessionID: sessionID, AccessToken: token, ExpiresAt: expiresAt}
	return r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"access_token", "expires_at", "updated_at"}),
	}).Create(&row).Error
}

func (r *SessionRepository) Delete(ctx context.Context, sessionID string) error {
	return r.DB.WithContext(ctx).Where("session_id = ?", sessionID).Delete(&entity.Session{}).Error
}

// PurgeExpired removes every row whose expiry has passed.
func (r *SessionRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.DB.WithContext(ctx).Where("expires_at IS NOT NULL AND expires_at <= ?", now).Delete(&entity.Session{})
	return res.RowsAffected, res.Error
}
