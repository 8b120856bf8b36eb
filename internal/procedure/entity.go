package procedure

import (
	"github.com/google/uuid"
)

// Procedure is one treatment offering in the catalog. Key is the stable join
// key used by quiz option point maps and submission recommendations.
type Procedure struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Key         string    `gorm:"type:text;uniqueIndex;not null" json:"key"`
	Name        string    `gorm:"type:text;not null" json:"name"`
	Description string    `gorm:"type:text" json:"description"`

	// Services-page content. The catalog doubles as the public services
	// listing, so the marketing fields live here too.
	FullDescription string `gorm:"type:text" json:"full_description"`
	Image           string `gorm:"type:text" json:"image"`
	PriceRange      string `gorm:"type:text" json:"price_range"`
	Featured        bool   `gorm:"not null;default:false" json:"featured"`

	Timeframe     string   `gorm:"type:text" json:"timeframe"`
	Icon          string   `gorm:"type:text;default:'🦷'" json:"icon"`
	ColorGradient string   `gorm:"type:text;default:'from-teal-400 to-cyan-500'" json:"color_gradient"`
	Category      Category `gorm:"type:text" json:"category"`
	SortOrder     int      `gorm:"not null;default:0" json:"sort_order"`
	IsActive      bool     `gorm:"not null;default:true" json:"is_active"`
}
