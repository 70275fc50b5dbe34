package models

import "time"

// Service is a catalog entry with parallel English/Arabic field sets.
// Prices are stored as free text so language-specific formatting survives.
type Service struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Title   string `gorm:"size:200;not null" json:"title"`
	TitleAr string `gorm:"size:200;not null" json:"title_ar"`

	Description   string `gorm:"type:text;not null" json:"description"`
	DescriptionAr string `gorm:"type:text;not null" json:"description_ar"`

	Price   string `gorm:"type:text;not null" json:"price"`
	PriceAr string `gorm:"type:text;not null" json:"price_ar"`

	Details   string `gorm:"type:text" json:"details"`
	DetailsAr string `gorm:"type:text" json:"details_ar"`

	Image string `gorm:"size:255" json:"image"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
