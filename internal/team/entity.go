package team

import (
	"time"

	"github.com/google/uuid"
)

type Category string

const (
	CategoryDentist   Category = "dentist"
	CategoryExecutive Category = "executive"
	CategoryHygienist Category = "hygienist"
	CategoryStaff     Category = "staff"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryDentist, CategoryExecutive, CategoryHygienist, CategoryStaff:
		return true
	}
	return false
}

// Member is one person on the practice's team page. Slug is stable and unique;
// BioPageEnabled governs whether the member gets a standalone bio page.
type Member struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string    `gorm:"type:text;not null" json:"name"`
	Title          string    `gorm:"type:text" json:"title"`
	Bio            string    `gorm:"type:text" json:"bio"`
	FullBio        string    `gorm:"type:text" json:"full_bio"`
	Photo          string    `gorm:"type:text" json:"photo"`
	Email          string    `gorm:"type:text" json:"email"`
	Specialties    string    `gorm:"type:text" json:"specialties"`
	Credentials    string    `gorm:"type:text" json:"credentials"`
	Category       Category  `gorm:"type:text;not null;default:'staff'" json:"category"`
	BioPageEnabled bool      `gorm:"not null;default:false" json:"bio_page_enabled"`
	Slug           string    `gorm:"type:text;uniqueIndex;not null" json:"slug"`
	SortOrder      int       `gorm:"not null;default:0" json:"sort_order"`
	IsPublished    bool      `gorm:"not null;default:true" json:"is_published"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

// GroupedMembers is the team page's sectioned view.
type GroupedMembers struct {
	Dentists   []Member `json:"dentists"`
	Executives []Member `json:"executives"`
	Hygienists []Member `json:"hygienists"`
	Staff      []Member `json:"staff"`
}
