package offer

import "time"

type CreateOfferDTO struct {
	Title         string     `json:"title"`
	Slug          string     `json:"slug"`
	Description   string     `json:"description"`
	Badge         string     `json:"badge"`
	Price         string     `json:"price"`
	OriginalPrice string     `json:"original_price"`
	CTALabel      string     `json:"cta_label"`
	CTAURL        string     `json:"cta_url"`
	ExpiresAt     *time.Time `json:"expires_at"`
	SortOrder     int        `json:"sort_order"`
}

type UpdateOfferDTO struct {
	Title         *string    `json:"title"`
	Slug          *string    `json:"slug"`
	Description   *string    `json:"description"`
	Badge         *string    `json:"badge"`
	Price         *string    `json:"price"`
	OriginalPrice *string    `json:"original_price"`
	CTALabel      *string    `json:"cta_label"`
	CTAURL        *string    `json:"cta_url"`
	ExpiresAt     *time.Time `json:"expires_at"`
	IsActive      *bool      `json:"is_active"`
	SortOrder     *int       `json:"sort_order"`
}
