package models

import "time"

// AuthToken is the single live bearer credential of a user. Issuing a new
// one deletes the previous row, so a user never holds two valid tokens.
type AuthToken struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TokenValue string `gorm:"size:64;uniqueIndex;not null" json:"-"`

	UserID string `gorm:"size:36;index;not null" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	IssuedAt time.Time `gorm:"autoCreateTime" json:"issued_at"`
}
