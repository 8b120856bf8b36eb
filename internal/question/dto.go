package question

import "github.com/google/uuid"

type CreateQuestionDTO struct {
	Prompt        string            `json:"prompt"`
	Subtitle      string            `json:"subtitle"`
	Category      string            `json:"category"`
	Icon          string            `json:"icon"`
	FunFact       string            `json:"fun_fact"`
	IsMultiSelect bool              `json:"is_multi_select"`
	SortOrder     int               `json:"sort_order"`
	Options       []CreateOptionDTO `json:"options"`
}

type UpdateQuestionDTO struct {
	Prompt        *string `json:"prompt"`
	Subtitle      *string `json:"subtitle"`
	Category      *string `json:"category"`
	Icon          *string `json:"icon"`
	FunFact       *string `json:"fun_fact"`
	IsMultiSelect *bool   `json:"is_multi_select"`
	SortOrder     *int    `json:"sort_order"`
	IsActive      *bool   `json:"is_active"`
}

type CreateOptionDTO struct {
	Label     string   `json:"label"`
	Emoji     string   `json:"emoji"`
	Points    PointMap `json:"points"`
	SortOrder int      `json:"sort_order"`
}

type UpdateOptionDTO struct {
	Label     *string   `json:"label"`
	Emoji     *string   `json:"emoji"`
	Points    *PointMap `json:"points"`
	SortOrder *int      `json:"sort_order"`
}

type QuestionWithOptionsDTO struct {
	Question *Question `json:"question"`
	Options  []Option  `json:"options"`
}

// AddOptionDTO is CreateOptionDTO plus the owning question, used by the
// standalone option endpoint.
type AddOptionDTO struct {
	QuestionID uuid.UUID `json:"question_id"`
	CreateOptionDTO
}
