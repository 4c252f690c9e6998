package models

import "time"

type FormKind string

const (
	FormText    FormKind = "text"
	FormImage   FormKind = "image"
	FormPayment FormKind = "payment"
)

func (k FormKind) Valid() bool {
	switch k {
	case FormText, FormImage, FormPayment:
		return true
	}
	return false
}

type SubmissionStatus string

const (
	SubmissionIdle       SubmissionStatus = "idle"
	SubmissionSubmitting SubmissionStatus = "submitting"
	SubmissionSuccess    SubmissionStatus = "success"
	SubmissionFailed     SubmissionStatus = "failed"
)

type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeError   NoticeLevel = "error"
)

// Notice is a one-time message shown next to a form.
type Notice struct {
	Level   NoticeLevel `json:"level"`
	Title   string      `json:"title"`
	Message string      `json:"message"`
}

// FormState is the view state of one form instance.
type FormState struct {
	Form      FormKind         `json:"form"`
	Status    SubmissionStatus `json:"status"`
	Result    string           `json:"result,omitempty"`
	Notice    *Notice          `json:"notice,omitempty"`
	UpdatedAt time.Time        `json:"updated_at"`
}

func NewFormState(kind FormKind) *FormState {
	return &FormState{Form: kind, Status: SubmissionIdle}
}

// TriggerDisabled reports whether the submit control must be disabled.
func (s *FormState) TriggerDisabled() bool {
	return s.Status == SubmissionSubmitting
}
