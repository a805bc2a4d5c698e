package v1

import (
	"net/http"

	"clinic-booking-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	appointmentUC domain.AppointmentUsecase
}

// NewContactHandler registers the floating contact button route
func NewContactHandler(public *gin.RouterGroup, appointmentUC domain.AppointmentUsecase) {
	handler := &ContactHandler{
		appointmentUC: appointmentUC,
	}

	public.GET("/contact/whatsapp", handler.OpenWhatsApp)
}

// OpenWhatsApp godoc
// @Summary      Floating contact button
// @Description  Redirects to a WhatsApp chat with the clinic, pre-filled with a greeting.
// @Tags         contact
// @Success      302
// @Failure      500  {object}  response.Response
// @Router       /contact/whatsapp [get]
func (h *ContactHandler) OpenWhatsApp(c *gin.Context) {
	link, err := h.appointmentUC.ContactLink(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.Redirect(http.StatusFound, link)
}
