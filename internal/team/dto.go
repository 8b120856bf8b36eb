package team

type CreateMemberDTO struct {
	Name           string   `json:"name"`
	Title          string   `json:"title"`
	Bio            string   `json:"bio"`
	FullBio        string   `json:"full_bio"`
	Photo          string   `json:"photo"`
	Email          string   `json:"email"`
	Specialties    string   `json:"specialties"`
	Credentials    string   `json:"credentials"`
	Category       Category `json:"category"`
	BioPageEnabled bool     `json:"bio_page_enabled"`
	Slug           string   `json:"slug"`
	SortOrder      int      `json:"sort_order"`
}

type UpdateMemberDTO struct {
	Name           *string   `json:"name"`
	Title          *string   `json:"title"`
	Bio            *string   `json:"bio"`
	FullBio        *string   `json:"full_bio"`
	Photo          *string   `json:"photo"`
	Email          *string   `json:"email"`
	Specialties    *string   `json:"specialties"`
	Credentials    *string   `json:"credentials"`
	Category       *Category `json:"category"`
	BioPageEnabled *bool     `json:"bio_page_enabled"`
	Slug           *string   `json:"slug"`
	SortOrder      *int      `json:"sort_order"`
	IsPublished    *bool     `json:"is_published"`
}
