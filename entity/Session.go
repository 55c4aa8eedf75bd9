package entity

import "time"

// Session is the locally stored credential for one UI session.
type Session struct {
	SessionID   string     `gorm:"primaryKey;size:64" json:"sessionId"`
	AccessToken string     `gorm:"not null" json:"-"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
