package quiz

import (
	"encoding/json"
	"strings"

	"github.com/google/uuid"
)

// UUIDList accepts either a single ID or an array of IDs, matching what the
// quiz frontend sends for single- and multi-select questions.
type UUIDList []uuid.UUID

func (l *UUIDList) UnmarshalJSON(b []byte) error {
	var many []uuid.UUID
	if err := json.Unmarshal(b, &many); err == nil {
		*l = many
		return nil
	}

	var one uuid.UUID
	if err := json.Unmarshal(b, &one); err != nil {
		return err
	}
	*l = UUIDList{one}
	return nil
}

// MultiValue accepts either a string or an array of strings; arrays are
// stored joined by ", " and analytics groups on the joined form.
type MultiValue string

func (v *MultiValue) UnmarshalJSON(b []byte) error {
	var many []string
	if err := json.Unmarshal(b, &many); err == nil {
		*v = MultiValue(strings.Join(many, ", "))
		return nil
	}

	var one string
	if err := json.Unmarshal(b, &one); err != nil {
		return err
	}
	*v = MultiValue(one)
	return nil
}

type AnswerDTO struct {
	QuestionID uuid.UUID `json:"question_id"`
	Selected   UUIDList  `json:"selected"`
}

type SubmitQuizDTO struct {
	FirstName string      `json:"first_name"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Answers   []AnswerDTO `json:"answers"`

	Timeline        MultiValue `json:"timeline"`
	PrimaryInterest MultiValue `json:"primary_interest"`

	Source      string `json:"source"`
	UTMSource   string `json:"utm_source"`
	UTMMedium   string `json:"utm_medium"`
	UTMCampaign string `json:"utm_campaign"`
}

// RequestMeta carries attribution captured by the routing layer.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

type SubmitQuizResponse struct {
	SubmissionID    uuid.UUID        `json:"submission_id"`
	SmileType       string           `json:"smile_type"`
	SmileTypeName   string           `json:"smile_type_name"`
	Recommendations []Recommendation `json:"recommendations"`
}

type SubmissionListDTO struct {
	Submissions []Submission `json:"submissions"`
	Total       int64        `json:"total"`
}

// AnswerDetail is a SubmissionAnswer joined with its question's prompt and
// category for the admin detail view.
type AnswerDetail struct {
	SubmissionAnswer
	Prompt   string `json:"prompt"`
	Category string `json:"category"`
}

type SubmissionDetailDTO struct {
	Submission *Submission    `json:"submission"`
	Answers    []AnswerDetail `json:"answers"`
}
