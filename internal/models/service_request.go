package models

import "time"

type ServiceRequest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID string `gorm:"size:36;index;not null" json:"user_id"`
	User   User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`

	Services []Service `gorm:"many2many:service_request_services;" json:"services"`

	// Callback phone for this request, may differ from the profile phone.
	PhoneNumber string `gorm:"size:17;not null" json:"phone_number"`
	Address     string `gorm:"type:text;not null" json:"address"`

	// Free text on purpose, scheduling is negotiated over the phone.
	ServiceDay string `gorm:"type:text;not null" json:"service_day"`

	Details string `gorm:"type:text" json:"details"`

	CreatedAt time.Time `json:"created_at"`
}
