package question

import (
	"time"

	"github.com/google/uuid"
)

type Question struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Prompt        string    `gorm:"type:text;not null" json:"prompt"`
	Subtitle      string    `gorm:"type:text" json:"subtitle"`
	Category      string    `gorm:"type:text;not null" json:"category"`
	Icon          string    `gorm:"type:text;default:'⭐'" json:"icon"`
	FunFact       string    `gorm:"type:text" json:"fun_fact"`
	IsMultiSelect bool      `gorm:"not null;default:false" json:"is_multi_select"`
	SortOrder     int       `gorm:"not null;default:0" json:"sort_order"`
	IsActive      bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	Options []Option `gorm:"foreignKey:QuestionID;constraint:OnDelete:CASCADE" json:"options,omitempty"`
}

// Option belongs to exactly one question. Points maps procedure keys to the
// weight this choice contributes toward that procedure.
type Option struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	QuestionID uuid.UUID `gorm:"type:uuid;not null;index" json:"question_id"`
	Label      string    `gorm:"type:text;not null" json:"label"`
	Emoji      string    `gorm:"type:text;default:'✓'" json:"emoji"`
	Points     PointMap  `gorm:"type:jsonb;not null" json:"points"`
	SortOrder  int       `gorm:"not null;default:0" json:"sort_order"`
}
