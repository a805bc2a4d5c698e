package booking

import (
	"testing"

	"clinic-booking-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestFormMarkers(t *testing.T) {
	f := NewForm()

	f.Set("name", "Al")
	assert.False(t, f.Validate("name"))
	assert.Equal(t, domain.FieldInvalid, f.Marker("name"))

	f.Set("name", "Ana")
	assert.True(t, f.Validate("name"))
	assert.Equal(t, domain.FieldValid, f.Marker("name"))

	// blank: invalid for submission, but no marker
	f.Set("name", "  ")
	f.Validate("name")
	assert.Equal(t, domain.FieldUnvalidated, f.Marker("name"))

	f.Set("phone", "")
	assert.False(t, f.Validate("phone"))
	assert.Equal(t, domain.FieldUnvalidated, f.Marker("phone"))

	assert.Equal(t, domain.FieldUnvalidated, f.Marker("reason"))
}

func TestFormValidateAll(t *testing.T) {
	req := validRequest()
	req.Name = "Al"
	req.Phone = "12345"
	f := FormFromRequest(req)

	assert.Equal(t, []string{"name", "phone"}, f.ValidateAll())
	assert.Equal(t, domain.FieldValid, f.Marker("reason"))

	f = FormFromRequest(validRequest())
	assert.Empty(t, f.ValidateAll())
	assert.Equal(t, validRequest(), f.Request())
}

func TestFormReset(t *testing.T) {
	datePicker, timePicker := &countingPicker{}, &countingPicker{}
	f := FormFromRequest(validRequest(), datePicker, timePicker)
	f.ValidateAll()
	f.SetWasValidated(true)

	f.Reset()

	assert.Equal(t, domain.AppointmentRequest{}, f.Request())
	for _, field := range FieldOrder {
		assert.Equal(t, domain.FieldUnvalidated, f.Marker(field), field)
	}
	assert.False(t, f.WasValidated())
	assert.Equal(t, 1, datePicker.cleared)
	assert.Equal(t, 1, timePicker.cleared)
}

func TestNextField(t *testing.T) {
	next, ok := NextField("name")
	assert.True(t, ok)
	assert.Equal(t, "phone", next)

	next, ok = NextField("time")
	assert.True(t, ok)
	assert.Equal(t, "reason", next)

	_, ok = NextField("reason")
	assert.False(t, ok)

	_, ok = NextField("nope")
	assert.False(t, ok)
}
