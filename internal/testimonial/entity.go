package testimonial

import (
	"time"

	"github.com/google/uuid"
)

// Testimonial is a patient review shown on the site. ProcedureID is
// optional; when set, views carry the procedure's display name.
type Testimonial struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	PatientName  string     `gorm:"type:text;not null" json:"patient_name"`
	PatientPhoto string     `gorm:"type:text" json:"patient_photo"`
	Content      string     `gorm:"type:text;not null" json:"content"`
	Rating       int        `gorm:"not null;default:5" json:"rating"`
	ProcedureID  *uuid.UUID `gorm:"type:uuid" json:"procedure_id"`
	Featured     bool       `gorm:"not null;default:false" json:"featured"`
	IsPublished  bool       `gorm:"not null;default:true" json:"is_published"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// View joins in the procedure name for display.
type View struct {
	Testimonial
	ProcedureName string `json:"procedure_name"`
}
