package offer

import (
	"time"

	"github.com/google/uuid"
)

// Offer is a promotional landing-page offer (new patient special, whitening
// deal, and so on).
type Offer struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Title         string     `gorm:"type:text;not null" json:"title"`
	Slug          string     `gorm:"type:text;uniqueIndex;not null" json:"slug"`
	Description   string     `gorm:"type:text" json:"description"`
	Badge         string     `gorm:"type:text" json:"badge"`
	Price         string     `gorm:"type:text" json:"price"`
	OriginalPrice string     `gorm:"type:text" json:"original_price"`
	CTALabel      string     `gorm:"type:text" json:"cta_label"`
	CTAURL        string     `gorm:"type:text" json:"cta_url"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	IsActive      bool       `gorm:"not null;default:true" json:"is_active"`
	SortOrder     int        `gorm:"not null;default:0" json:"sort_order"`
	CreatedAt     time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}
