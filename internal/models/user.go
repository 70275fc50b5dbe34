package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	FullName    string `gorm:"size:255;uniqueIndex;not null" json:"full_name"`
	PhoneNumber string `gorm:"size:17;uniqueIndex;not null" json:"phone_number"`

	// Empty hash means the account has no usable password.
	PasswordHash string `gorm:"size:255" json:"-"`

	IsActive    bool `gorm:"default:true" json:"is_active"`
	IsStaff     bool `gorm:"default:false" json:"is_staff"`
	IsSuperuser bool `gorm:"default:false" json:"is_superuser"`

	DateJoined time.Time `gorm:"autoCreateTime" json:"date_joined"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
