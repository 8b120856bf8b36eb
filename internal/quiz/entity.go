package quiz

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Submission is the immutable record of one completed quiz. Only
// NotificationSent is ever updated after insert.
type Submission struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	FirstName       string         `gorm:"type:text" json:"first_name"`
	Email           string         `gorm:"type:text;index" json:"email"`
	Phone           string         `gorm:"type:text" json:"phone"`
	SmileType       string         `gorm:"type:text" json:"smile_type"`
	SmileTypeName   string         `gorm:"type:text" json:"smile_type_name"`
	Recommendations datatypes.JSON `gorm:"type:jsonb" json:"recommendations"`

	// Timeline and PrimaryInterest may hold several values joined by ", ";
	// analytics groups on the literal stored string.
	Timeline        string `gorm:"type:text" json:"timeline"`
	PrimaryInterest string `gorm:"type:text" json:"primary_interest"`

	Source      string `gorm:"type:text" json:"source"`
	UTMSource   string `gorm:"type:text" json:"utm_source"`
	UTMMedium   string `gorm:"type:text" json:"utm_medium"`
	UTMCampaign string `gorm:"type:text" json:"utm_campaign"`
	IPAddress   string `gorm:"type:text" json:"ip_address"`
	UserAgent   string `gorm:"type:text" json:"user_agent"`

	CompletedAt      time.Time `gorm:"autoCreateTime" json:"completed_at"`
	NotificationSent bool      `gorm:"not null;default:false" json:"notification_sent"`

	Answers []SubmissionAnswer `gorm:"foreignKey:SubmissionID;constraint:OnDelete:CASCADE" json:"answers,omitempty"`
}

// SubmissionAnswer is the persisted copy of one answer, kept for the admin
// detail view.
type SubmissionAnswer struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	SubmissionID    uuid.UUID      `gorm:"type:uuid;not null;index" json:"submission_id"`
	QuestionID      uuid.UUID      `gorm:"type:uuid;not null" json:"question_id"`
	SelectedOptions datatypes.JSON `gorm:"type:jsonb;not null" json:"selected_options"`
}
