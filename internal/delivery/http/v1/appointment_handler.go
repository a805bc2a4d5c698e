package v1

import (
	"net/http"

	"clinic-booking-backend/internal/delivery/http/response"
	"clinic-booking-backend/internal/domain"
	"clinic-booking-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	appointmentUC domain.AppointmentUsecase
}

// NewAppointmentHandler registers the booking page routes. submitLimit guards
// only the submission endpoint.
func NewAppointmentHandler(public *gin.RouterGroup, appointmentUC domain.AppointmentUsecase, submitLimit gin.HandlerFunc) {
	handler := &AppointmentHandler{
		appointmentUC: appointmentUC,
	}

	appointments := public.Group("/appointments")
	appointments.GET("/constraints", handler.GetConstraints)
	appointments.GET("/slots", handler.GetSlots)
	appointments.POST("/validate", handler.ValidateField)
	appointments.POST("", submitLimit, handler.Submit)
}

// GetConstraints godoc
// @Summary      Picker constraints
// @Description  Date window, disabled weekdays and the time grid for the booking pickers.
// @Tags         appointments
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.PickerConstraints}
// @Router       /appointments/constraints [get]
func (h *AppointmentHandler) GetConstraints(c *gin.Context) {
	response.Success(c, http.StatusOK, "Restricciones de agenda", h.appointmentUC.Constraints(c.Request.Context()))
}

// GetSlots godoc
// @Summary      Selectable times
// @Description  Times offered for a date; empty on weekends and outside the booking window.
// @Tags         appointments
// @Produce      json
// @Param        date  query     string  true  "Date (YYYY-MM-DD)"
// @Success      200   {object}  response.Response{data=[]string}
// @Failure      400   {object}  response.Response
// @Router       /appointments/slots [get]
func (h *AppointmentHandler) GetSlots(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		c.Error(apperror.BadRequest("El parámetro date es obligatorio"))
		return
	}

	slots, err := h.appointmentUC.Slots(c.Request.Context(), date)
	if err != nil {
		c.Error(err)
		return
	}
	if slots == nil {
		slots = []string{}
	}
	response.Success(c, http.StatusOK, "Horarios disponibles", slots)
}

// ValidateField godoc
// @Summary      Validate one field
// @Description  Live validation marker for a single form field. Blank values stay unvalidated.
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        field  body      domain.FieldCheckRequest  true  "Field and value"
// @Success      200    {object}  response.Response{data=domain.FieldCheck}
// @Failure      400    {object}  response.Response
// @Router       /appointments/validate [post]
func (h *AppointmentHandler) ValidateField(c *gin.Context) {
	var req domain.FieldCheckRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Campo desconocido o solicitud inválida"))
		return
	}

	response.Success(c, http.StatusOK, "Campo validado", h.appointmentUC.ValidateField(c.Request.Context(), &req))
}

// Submit godoc
// @Summary      Submit an appointment request
// @Description  Validates the form and returns the WhatsApp deep link carrying the formatted request.
// @Description  Success only means the link was produced; the clinic confirms over WhatsApp.
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Param        appointment  body      domain.AppointmentRequest  true  "Appointment form"
// @Success      200          {object}  response.Response{data=domain.SubmissionResult}
// @Failure      400          {object}  response.Response
// @Failure      422          {object}  response.Response
// @Failure      429          {object}  response.Response
// @Failure      502          {object}  response.Response
// @Router       /appointments [post]
func (h *AppointmentHandler) Submit(c *gin.Context) {
	var req domain.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Solicitud inválida"))
		return
	}

	result, err := h.appointmentUC.Submit(c.Request.Context(), &req)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, result.Notification.Text, result)
}
