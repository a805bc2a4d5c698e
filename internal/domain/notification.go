package domain

import "time"

type NotificationKind string

const (
	NotificationSuccess NotificationKind = "success"
	NotificationError   NotificationKind = "error"
)

// User-facing notification texts.
const (
	MsgValidationFailed = "Por favor, completa todos los campos correctamente."
	MsgWeekendRejected  = "Por favor, selecciona un día entre lunes y viernes."
	MsgHandoffSuccess   = "¡Cita agendada exitosamente! Se abrirá WhatsApp para confirmar."
	MsgHandoffFailed    = "Hubo un error al agendar la cita. Por favor intenta nuevamente."
)

type Notification struct {
	ID      uint64           `json:"-"`
	Text    string           `json:"text"`
	Kind    NotificationKind `json:"kind"`
	ShownAt time.Time        `json:"shown_at"`
}
