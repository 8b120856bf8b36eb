package testimonial

import "github.com/google/uuid"

type CreateTestimonialDTO struct {
	PatientName  string     `json:"patient_name"`
	PatientPhoto string     `json:"patient_photo"`
	Content      string     `json:"content"`
	Rating       int        `json:"rating"`
	ProcedureID  *uuid.UUID `json:"procedure_id"`
	Featured     bool       `json:"featured"`
}

type UpdateTestimonialDTO struct {
	PatientName  *string    `json:"patient_name"`
	PatientPhoto *string    `json:"patient_photo"`
	Content      *string    `json:"content"`
	Rating       *int       `json:"rating"`
	ProcedureID  *uuid.UUID `json:"procedure_id"`
	Featured     *bool      `json:"featured"`
	IsPublished  *bool      `json:"is_published"`
}
