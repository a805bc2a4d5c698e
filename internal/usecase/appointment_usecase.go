package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"clinic-booking-backend/internal/booking"
	"clinic-booking-backend/internal/domain"
	"clinic-booking-backend/pkg/apperror"
	"clinic-booking-backend/pkg/audit"
	"clinic-booking-backend/pkg/deeplink"
	"clinic-booking-backend/pkg/metrics"
	"clinic-booking-backend/pkg/scheduler"
	"clinic-booking-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

const defaultSubmitTimeout = 10 * time.Second

// AppointmentOptions carries the deploy-time settings of the booking flow.
type AppointmentOptions struct {
	Handoff         booking.Handoff
	Timing          booking.Timing
	NotificationTTL time.Duration
	SubmitTimeout   time.Duration
	Locale          string
}

type appointmentUsecase struct {
	schedule  *booking.Schedule
	formatter *booking.Formatter
	sched     scheduler.Scheduler
	validate  *validator.Validate
	metrics   *metrics.BookingMetrics
	audit     *audit.Logger
	log       *slog.Logger
	opts      AppointmentOptions
}

// NewAppointmentUsecase wires the booking core behind the HTTP surface.
// metrics and auditLogger may be nil.
func NewAppointmentUsecase(
	schedule *booking.Schedule,
	sched scheduler.Scheduler,
	validate *validator.Validate,
	m *metrics.BookingMetrics,
	auditLogger *audit.Logger,
	log *slog.Logger,
	opts AppointmentOptions,
) domain.AppointmentUsecase {
	if sched == nil {
		sched = scheduler.System()
	}
	if validate == nil {
		validate = validation.New()
	}
	if auditLogger == nil {
		auditLogger = audit.New(nil, "clinic-booking", "test")
	}
	if log == nil {
		log = slog.Default()
	}
	if opts.SubmitTimeout <= 0 {
		opts.SubmitTimeout = defaultSubmitTimeout
	}
	if opts.NotificationTTL <= 0 {
		opts.NotificationTTL = booking.DefaultNotificationTTL
	}
	return &appointmentUsecase{
		schedule:  schedule,
		formatter: booking.NewFormatter(opts.Locale),
		sched:     sched,
		validate:  validate,
		metrics:   m,
		audit:     auditLogger,
		log:       log,
		opts:      opts,
	}
}

func (u *appointmentUsecase) Constraints(ctx context.Context) domain.PickerConstraints {
	return u.schedule.Constraints(u.formatter.Locale())
}

func (u *appointmentUsecase) Slots(ctx context.Context, date string) ([]string, error) {
	d, err := u.schedule.ParseDate(date)
	if err != nil {
		return nil, apperror.BadRequest("La fecha debe tener el formato AAAA-MM-DD")
	}
	return u.schedule.Slots(d), nil
}

func (u *appointmentUsecase) ValidateField(ctx context.Context, req *domain.FieldCheckRequest) domain.FieldCheck {
	valid := validation.ValidateField(req.Field, req.Value)
	u.metrics.ObserveFieldCheck(req.Field, valid)

	state := domain.FieldInvalid
	switch {
	case validation.IsBlank(req.Value):
		state = domain.FieldUnvalidated
	case valid:
		state = domain.FieldValid
	}
	return domain.FieldCheck{Field: req.Field, Valid: valid, State: state}
}

// Submit runs one submit cycle on a fresh controller and waits for its
// terminal outcome. Rejections come back as a 422 AppError and handoff
// failures as a 502, both carrying the result in Details.
func (u *appointmentUsecase) Submit(ctx context.Context, req *domain.AppointmentRequest) (*domain.SubmissionResult, error) {
	start := u.sched.Now()
	submissionID := uuid.NewString()

	outcome := make(chan booking.Result, 1)
	ctrl := booking.NewController(booking.Deps{
		Form:      booking.FormFromRequest(*req),
		Schedule:  u.schedule,
		Formatter: u.formatter,
		Notifier:  booking.NewNotifier(u.sched, u.opts.NotificationTTL),
		// The page opens the returned link itself.
		Opener:    booking.OpenerFunc(func(string) error { return nil }),
		Scheduler: u.sched,
		Logger:    u.log.With("submission_id", submissionID),
	}, u.opts.Handoff, u.opts.Timing)
	ctrl.OnOutcome(func(r booking.Result) {
		select {
		case outcome <- r:
		default:
		}
	})

	if err := ctrl.Submit(); err != nil {
		return nil, apperror.Internal(err)
	}

	ctx, cancel := context.WithTimeout(ctx, u.opts.SubmitTimeout)
	defer cancel()

	var res booking.Result
	select {
	case res = <-outcome:
	case <-ctx.Done():
		return nil, apperror.Internal(fmt.Errorf("submission %s: %w", submissionID, ctx.Err()))
	}

	u.metrics.ObserveSubmission(string(res.Outcome), u.sched.Now().Sub(start).Seconds())
	u.audit.LogSubmission(ctx, submissionID, string(res.Outcome), req.Phone,
		ctxString(ctx, domain.KeyClientIP), ctxString(ctx, domain.KeyRequestID), nil)

	note := res.Notification
	result := &domain.SubmissionResult{
		SubmissionID:  submissionID,
		Outcome:       res.Outcome,
		DeepLink:      res.DeepLink,
		Notification:  &note,
		InvalidFields: res.InvalidFields,
	}

	switch res.Outcome {
	case domain.OutcomeSuccess:
		return result, nil
	case domain.OutcomeValidationFailed:
		return result, apperror.Unprocessable(note.Text, res.Err).WithDetails(map[string]interface{}{
			"submission": result,
			"errors":     u.fieldErrors(req, res.InvalidFields),
		})
	case domain.OutcomeWeekendRejected:
		return result, apperror.Unprocessable(note.Text, res.Err).WithDetails(map[string]interface{}{
			"submission": result,
		})
	default:
		return result, apperror.BadGateway(note.Text, res.Err).WithDetails(map[string]interface{}{
			"submission": result,
		})
	}
}

// fieldErrors explains each invalid field in Spanish. Rule failures come from
// the struct validator; anything left is a picker constraint violation.
func (u *appointmentUsecase) fieldErrors(req *domain.AppointmentRequest, invalid []string) []validation.FieldError {
	var out []validation.FieldError
	seen := make(map[string]bool)
	if err := u.validate.Struct(req); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) {
			for _, fe := range validation.FormatValidationErrors(err) {
				seen[fe.Field] = true
				out = append(out, fe)
			}
		}
	}
	for _, field := range invalid {
		if !seen[field] {
			out = append(out, validation.ScheduleError(field))
		}
	}
	return out
}

func (u *appointmentUsecase) ContactLink(ctx context.Context) (string, error) {
	link, err := deeplink.ContactLink(u.opts.Handoff.Host, u.opts.Handoff.Contact)
	if err != nil {
		u.log.Error("contact link", "error", err)
		return "", apperror.Internal(fmt.Errorf("%w: %w", domain.ErrHandoffConstructionFailed, err))
	}
	u.metrics.ObserveContactLink()
	u.audit.Log(ctx, audit.Event{
		Event:     audit.EventContactOpened,
		IP:        ctxString(ctx, domain.KeyClientIP),
		RequestID: ctxString(ctx, domain.KeyRequestID),
	})
	return link, nil
}

func ctxString(ctx context.Context, key domain.CtxKey) string {
	v, _ := ctx.Value(key).(string)
	return v
}
