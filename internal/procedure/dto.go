package procedure

type CreateProcedureDTO struct {
	Key             string   `json:"key"`
	Name            string   `json:"name"`
	Description     string   `json:"description"`
	FullDescription string   `json:"full_description"`
	Image           string   `json:"image"`
	PriceRange      string   `json:"price_range"`
	Featured        bool     `json:"featured"`
	Timeframe       string   `json:"timeframe"`
	Icon            string   `json:"icon"`
	ColorGradient   string   `json:"color_gradient"`
	Category        Category `json:"category"`
	SortOrder       int      `json:"sort_order"`
}

type UpdateProcedureDTO struct {
	Name            *string   `json:"name"`
	Description     *string   `json:"description"`
	FullDescription *string   `json:"full_description"`
	Image           *string   `json:"image"`
	PriceRange      *string   `json:"price_range"`
	Featured        *bool     `json:"featured"`
	Timeframe       *string   `json:"timeframe"`
	Icon            *string   `json:"icon"`
	ColorGradient   *string   `json:"color_gradient"`
	Category        *Category `json:"category"`
	SortOrder       *int      `json:"sort_order"`
	IsActive        *bool     `json:"is_active"`
}
