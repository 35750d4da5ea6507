package types

import "github.com/go-playground/validator/v10"

// Cover letter tones offered by the writer.
const (
	ToneProfessional = "professional"
	ToneFriendly     = "friendly"
	ToneTechnical    = "technical"
)

// Interview question types.
const (
	QuestionsBehavioral   = "behavioral"
	QuestionsTechnical    = "technical"
	QuestionsSystemDesign = "system_design"
)

// Alert digest frequencies.
const (
	FrequencyDaily    = "daily"
	FrequencyWeekly   = "weekly"
	FrequencyBiweekly = "biweekly"
	FrequencyMonthly  = "monthly"
)

// ParseProfileRequest carries pasted resume text. File uploads use the
// multipart form instead.
type ParseProfileRequest struct {
	ResumeText string `json:"resume_text" validate:"required,min=1"`
	UserID     string `json:"user_id,omitempty"`
}

// CoverLetterRequest asks for a tailored cover letter. Exactly one of
// JobDescription or JobURL must be provided.
type CoverLetterRequest struct {
	JobDescription string `json:"job_description" validate:"required_without=JobURL"`
	JobURL         string `json:"job_url,omitempty" validate:"omitempty,url"`
	Tone           string `json:"tone" validate:"required,oneof=professional friendly technical"`
}

// ReportRequest asks for a job-fit optimization report.
type ReportRequest struct {
	JobDescription string `json:"job_description" validate:"required_without=JobURL"`
	JobURL         string `json:"job_url,omitempty" validate:"omitempty,url"`
}

// StartInterviewRequest opens a mock interview session.
type StartInterviewRequest struct {
	Role         string `json:"role" validate:"required,min=1"`
	QuestionType string `json:"question_type" validate:"required,oneof=behavioral technical system_design"`
}

// InterviewMessageRequest is one candidate answer in an open session.
type InterviewMessageRequest struct {
	Message string `json:"message" validate:"required,min=1"`
}

// AlertPreferencesRequest collects keywords and a digest frequency for the
// job-opening alert engine.
type AlertPreferencesRequest struct {
	Keywords  string `json:"keywords" validate:"required,min=1"`
	Frequency string `json:"frequency" validate:"required,oneof=daily weekly biweekly monthly"`
	UserID    string `json:"user_id,omitempty"`
}

// Validate validates the ParseProfileRequest using the validator.
func (r *ParseProfileRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the CoverLetterRequest using the validator.
func (r *CoverLetterRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the ReportRequest using the validator.
func (r *ReportRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the StartInterviewRequest using the validator.
func (r *StartInterviewRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the InterviewMessageRequest using the validator.
func (r *InterviewMessageRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the AlertPreferencesRequest using the validator.
func (r *AlertPreferencesRequest) Validate() error {
	return validator.New().Struct(r)
}
