package booking

import (
	"sync"

	"clinic-booking-backend/internal/domain"
	"clinic-booking-backend/pkg/validation"
)

// FieldOrder is the tab order of the booking form.
var FieldOrder = []string{
	validation.FieldName,
	validation.FieldPhone,
	validation.FieldDate,
	validation.FieldTime,
	validation.FieldReason,
}

// MultilineField keeps Enter as a newline instead of advancing focus.
const MultilineField = validation.FieldReason

// Picker is a date or time widget whose selection can be cleared.
type Picker interface {
	Clear()
}

// Form holds the field values and their validation markers.
type Form struct {
	mu           sync.Mutex
	values       map[string]string
	markers      map[string]domain.FieldValidationState
	wasValidated bool
	pickers      []Picker
}

func NewForm(pickers ...Picker) *Form {
	return &Form{
		values:  make(map[string]string, len(FieldOrder)),
		markers: make(map[string]domain.FieldValidationState, len(FieldOrder)),
		pickers: pickers,
	}
}

// FormFromRequest fills a new form with a submitted request.
func FormFromRequest(req domain.AppointmentRequest, pickers ...Picker) *Form {
	f := NewForm(pickers...)
	for _, field := range FieldOrder {
		f.values[field] = req.Value(field)
	}
	return f
}

// IsField reports whether field belongs to the booking form.
func IsField(field string) bool {
	for _, f := range FieldOrder {
		if f == field {
			return true
		}
	}
	return false
}

func (f *Form) Set(field, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[field] = value
}

func (f *Form) Value(field string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values[field]
}

// Request snapshots the current values.
func (f *Form) Request() domain.AppointmentRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return domain.AppointmentRequest{
		Name:   f.values[validation.FieldName],
		Phone:  f.values[validation.FieldPhone],
		Reason: f.values[validation.FieldReason],
		Date:   f.values[validation.FieldDate],
		Time:   f.values[validation.FieldTime],
	}
}

// Validate checks one field and refreshes its marker. Blank values are
// invalid but left unmarked.
func (f *Form) Validate(field string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.validateLocked(field)
}

func (f *Form) validateLocked(field string) bool {
	value := f.values[field]
	valid := validation.ValidateField(field, value)
	switch {
	case validation.IsBlank(value):
		f.markers[field] = domain.FieldUnvalidated
	case valid:
		f.markers[field] = domain.FieldValid
	default:
		f.markers[field] = domain.FieldInvalid
	}
	return valid
}

// ValidateAll validates every field and returns the invalid ones in form order.
func (f *Form) ValidateAll() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	var invalid []string
	for _, field := range FieldOrder {
		if !f.validateLocked(field) {
			invalid = append(invalid, field)
		}
	}
	return invalid
}

// MarkInvalid flags a field that passed its own rule but failed a
// cross-field or schedule check.
func (f *Form) MarkInvalid(field string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.markers[field] = domain.FieldInvalid
}

func (f *Form) Marker(field string) domain.FieldValidationState {
	f.mu.Lock()
	defer f.mu.Unlock()
	if m, ok := f.markers[field]; ok {
		return m
	}
	return domain.FieldUnvalidated
}

// SetWasValidated switches the form to inline error display.
func (f *Form) SetWasValidated(v bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.wasValidated = v
}

func (f *Form) WasValidated() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.wasValidated
}

// Reset clears values, markers and pickers.
func (f *Form) Reset() {
	f.mu.Lock()
	f.values = make(map[string]string, len(FieldOrder))
	f.markers = make(map[string]domain.FieldValidationState, len(FieldOrder))
	f.wasValidated = false
	pickers := f.pickers
	f.mu.Unlock()

	for _, p := range pickers {
		if p != nil {
			p.Clear()
		}
	}
}

// NextField returns the field after field in tab order.
func NextField(field string) (string, bool) {
	for i, f := range FieldOrder {
		if f == field && i+1 < len(FieldOrder) {
			return FieldOrder[i+1], true
		}
	}
	return "", false
}
