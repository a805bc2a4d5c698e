package domain

import (
	"context"
	"errors"
	"time"
)

// AppointmentRequest is the patient-entered booking form. It lives for a
// single submit attempt and is never persisted.
type AppointmentRequest struct {
	Name   string `json:"name" validate:"appt_name" example:"Juan Perez"`
	Phone  string `json:"phone" validate:"appt_phone" example:"2381234567"`
	Reason string `json:"reason" validate:"appt_reason" example:"Dolor de cabeza persistente"`
	Date   string `json:"date" validate:"required" example:"2026-10-26"`
	Time   string `json:"time" validate:"required" example:"09:30"`
}

// Value returns the raw value of a form field by its identifier.
func (r AppointmentRequest) Value(field string) string {
	switch field {
	case "name":
		return r.Name
	case "phone":
		return r.Phone
	case "reason":
		return r.Reason
	case "date":
		return r.Date
	case "time":
		return r.Time
	}
	return ""
}

// FieldValidationState is the visual marker attached to a form field.
type FieldValidationState string

const (
	FieldUnvalidated FieldValidationState = "unvalidated"
	FieldValid       FieldValidationState = "valid"
	FieldInvalid     FieldValidationState = "invalid"
)

// SubmissionOutcome is the terminal result of one submit cycle.
type SubmissionOutcome string

const (
	OutcomeSuccess          SubmissionOutcome = "success"
	OutcomeValidationFailed SubmissionOutcome = "validation_failed"
	OutcomeWeekendRejected  SubmissionOutcome = "weekend_rejected"
	OutcomeHandoffError     SubmissionOutcome = "handoff_error"
)

var (
	ErrFieldInvalid              = errors.New("field invalid")
	ErrWeekendSelected           = errors.New("weekend selected")
	ErrHandoffConstructionFailed = errors.New("handoff construction failed")
	ErrSubmissionInProgress      = errors.New("submission already in progress")
)

// FieldCheck is the answer to a live single-field validation.
type FieldCheck struct {
	Field string               `json:"field"`
	Valid bool                 `json:"valid"`
	State FieldValidationState `json:"state"`
}

// FieldCheckRequest asks for a single field to be validated.
type FieldCheckRequest struct {
	Field string `json:"field" binding:"required,oneof=name phone reason date time"`
	Value string `json:"value"`
}

// SubmissionResult is returned to the booking page after a submit cycle.
// Success only means the messaging link was produced; nobody has confirmed
// the appointment yet.
type SubmissionResult struct {
	SubmissionID  string            `json:"submission_id"`
	Outcome       SubmissionOutcome `json:"outcome"`
	DeepLink      string            `json:"deep_link,omitempty"`
	Notification  *Notification     `json:"notification,omitempty"`
	InvalidFields []string          `json:"invalid_fields,omitempty"`
}

// AppointmentUsecase is the booking page's server-side surface.
type AppointmentUsecase interface {
	Constraints(ctx context.Context) PickerConstraints
	Slots(ctx context.Context, date string) ([]string, error)
	ValidateField(ctx context.Context, req *FieldCheckRequest) FieldCheck
	Submit(ctx context.Context, req *AppointmentRequest) (*SubmissionResult, error)
	ContactLink(ctx context.Context) (string, error)
}

// SubmissionEvent is the audit record of a submit cycle. It carries no
// patient data beyond a hashed phone number.
type SubmissionEvent struct {
	ID        string            `json:"id"`
	RequestID string            `json:"request_id,omitempty"`
	Outcome   SubmissionOutcome `json:"outcome"`
	PhoneHash string            `json:"phone_hash,omitempty"`
	ClientIP  string            `json:"client_ip,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
}

// SubmissionEventRepository persists audit records.
type SubmissionEventRepository interface {
	Create(ctx context.Context, event *SubmissionEvent) error
	CountByOutcomeSince(ctx context.Context, since time.Time) (map[SubmissionOutcome]int, error)
}
