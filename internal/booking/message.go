package booking

import (
	"fmt"
	"strings"
	"time"

	"clinic-booking-backend/internal/domain"
	"clinic-booking-backend/pkg/deeplink"

	"golang.org/x/text/language"
)

const messageTemplate = `🏥 *NUEVA SOLICITUD DE CITA MÉDICA* 🏥

📋 *DATOS DE LA CITA:*
• Fecha: %s
• Hora: %s

👤 *DATOS DEL PACIENTE:*
• Nombre: %s
• Teléfono: %s

📝 *MOTIVO DE CONSULTA:*
%s

---
*Por favor confirmar la cita a la brevedad posible.*`

type dateNames struct {
	weekdays [7]string
	months   [12]string
	long     func(n dateNames, d time.Time) string
}

var catalogs = map[language.Tag]dateNames{
	language.Spanish: {
		weekdays: [7]string{"domingo", "lunes", "martes", "miércoles", "jueves", "viernes", "sábado"},
		months: [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio",
			"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		long: func(n dateNames, d time.Time) string {
			return fmt.Sprintf("%s, %d de %s de %d", n.weekdays[d.Weekday()], d.Day(), n.months[d.Month()-1], d.Year())
		},
	},
	language.English: {
		weekdays: [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
		months: [12]string{"January", "February", "March", "April", "May", "June",
			"July", "August", "September", "October", "November", "December"},
		long: func(n dateNames, d time.Time) string {
			return fmt.Sprintf("%s, %s %d, %d", n.weekdays[d.Weekday()], n.months[d.Month()-1], d.Day(), d.Year())
		},
	},
}

// Spanish first: it is the fallback for any unsupported locale.
var supported = []language.Tag{language.Spanish, language.English}

var matcher = language.NewMatcher(supported)

// Formatter renders an appointment request as the handoff message.
type Formatter struct {
	tag   language.Tag
	names dateNames
}

// NewFormatter picks the closest supported locale for the long date.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.Spanish
	}
	_, idx, _ := matcher.Match(tag)
	base := supported[idx]
	return &Formatter{tag: base, names: catalogs[base]}
}

// Locale is the base language used for dates, e.g. "es".
func (f *Formatter) Locale() string {
	return f.tag.String()
}

// FormatDate renders YYYY-MM-DD as a long date, e.g. "lunes, 19 de octubre de 2026".
func (f *Formatter) FormatDate(value string) (string, error) {
	d, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrBadDate, value)
	}
	return f.names.long(f.names, d), nil
}

// FormatTime converts HH:MM (24h) to 12-hour time. Minutes are kept verbatim.
func FormatTime(value string) (string, error) {
	hour, _, ok := splitClock(value)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrBadTime, value)
	}
	_, minutes, _ := strings.Cut(strings.TrimSpace(value), ":")

	suffix := "AM"
	if hour >= 12 {
		suffix = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%s %s", display, minutes, suffix), nil
}

// FormatMessage renders the plain handoff message.
func (f *Formatter) FormatMessage(req domain.AppointmentRequest) (string, error) {
	date, err := f.FormatDate(req.Date)
	if err != nil {
		return "", err
	}
	clock, err := FormatTime(req.Time)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf(messageTemplate, date, clock, req.Name, req.Phone, req.Reason), nil
}

// EncodedMessage renders the message percent-encoded for a URL query string.
func (f *Formatter) EncodedMessage(req domain.AppointmentRequest) (string, error) {
	msg, err := f.FormatMessage(req)
	if err != nil {
		return "", err
	}
	return deeplink.EncodeURIComponent(msg), nil
}
