// Package audit records submission outcomes as structured events without
// patient data.
package audit

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// EventType represents the type of audit event
type EventType string

const (
	EventSubmissionAccepted EventType = "submission_accepted"
	EventSubmissionRejected EventType = "submission_rejected"
	EventHandoffFailed      EventType = "handoff_failed"
	EventRateLimitTriggered EventType = "rate_limit_triggered"
	EventContactOpened      EventType = "contact_opened"
)

// Event is one audit record.
type Event struct {
	Timestamp    time.Time              `json:"timestamp"`
	Service      string                 `json:"service"`
	Environment  string                 `json:"env"`
	Level        string                 `json:"level"`
	Event        EventType              `json:"event"`
	SubmissionID string                 `json:"submission_id,omitempty"`
	Outcome      string                 `json:"outcome,omitempty"`
	PhoneHash    string                 `json:"phone_hash,omitempty"`
	IP           string                 `json:"ip,omitempty"`
	UserAgent    string                 `json:"user_agent,omitempty"`
	RequestID    string                 `json:"request_id,omitempty"`
	Details      map[string]interface{} `json:"details,omitempty"`
}

// Logger writes audit events through zap and optionally persists them.
type Logger struct {
	zapLogger   *zap.Logger
	serviceName string
	environment string
	persistFunc func(ctx context.Context, event Event) error
	wg          sync.WaitGroup
}

var (
	defaultLogger *Logger
	defaultMu     sync.Mutex
)

// Init builds the production audit logger and makes it the default.
func Init(serviceName, environment string) *Logger {
	config := zap.NewProductionConfig()
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.MessageKey = "message"
	config.OutputPaths = []string{"stdout"}
	config.ErrorOutputPaths = []string{"stderr"}

	logger, err := config.Build(zap.AddCaller())
	if err != nil {
		logger, _ = zap.NewProduction()
	}

	l := New(logger, serviceName, environment)
	defaultMu.Lock()
	defaultLogger = l
	defaultMu.Unlock()
	return l
}

// New wraps an existing zap logger.
func New(z *zap.Logger, serviceName, environment string) *Logger {
	if z == nil {
		z = zap.NewNop()
	}
	return &Logger{zapLogger: z, serviceName: serviceName, environment: environment}
}

// Default returns the default audit logger, creating one on first use.
func Default() *Logger {
	defaultMu.Lock()
	l := defaultLogger
	defaultMu.Unlock()
	if l == nil {
		return Init("clinic-booking", Environment())
	}
	return l
}

// SetPersistFunc sets the function to persist events to database
func (l *Logger) SetPersistFunc(f func(ctx context.Context, event Event) error) {
	l.persistFunc = f
}

// Log logs an audit event
func (l *Logger) Log(ctx context.Context, event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now().UTC()
	}
	event.Service = l.serviceName
	event.Environment = l.environment

	level := zapcore.InfoLevel
	switch event.Event {
	case EventSubmissionRejected, EventRateLimitTriggered:
		level = zapcore.WarnLevel
	case EventHandoffFailed:
		level = zapcore.ErrorLevel
	}
	event.Level = level.String()

	fields := []zap.Field{
		zap.String("service", event.Service),
		zap.String("env", event.Environment),
		zap.String("event", string(event.Event)),
	}
	if event.SubmissionID != "" {
		fields = append(fields, zap.String("submission_id", event.SubmissionID))
	}
	if event.Outcome != "" {
		fields = append(fields, zap.String("outcome", event.Outcome))
	}
	if event.PhoneHash != "" {
		fields = append(fields, zap.String("phone_hash", event.PhoneHash))
	}
	if event.IP != "" {
		fields = append(fields, zap.String("ip", event.IP))
	}
	if event.UserAgent != "" {
		fields = append(fields, zap.String("user_agent", event.UserAgent))
	}
	if event.RequestID != "" {
		fields = append(fields, zap.String("request_id", event.RequestID))
	}
	if len(event.Details) > 0 {
		detailsJSON, _ := json.Marshal(event.Details)
		fields = append(fields, zap.String("details", string(detailsJSON)))
	}

	l.zapLogger.Log(level, string(event.Event), fields...)

	if l.persistFunc != nil {
		l.wg.Add(1)
		go func(e Event) {
			defer l.wg.Done()
			// request context may already be canceled
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()

			if err := l.persistFunc(ctx, e); err != nil {
				l.zapLogger.Error("Failed to persist audit event", zap.Error(err))
			}
		}(event)
	}
}

// LogSubmission records the outcome of a submit cycle.
func (l *Logger) LogSubmission(ctx context.Context, submissionID, outcome, phone, ip, requestID string, details map[string]interface{}) {
	event := EventSubmissionAccepted
	switch outcome {
	case "validation_failed", "weekend_rejected":
		event = EventSubmissionRejected
	case "handoff_error":
		event = EventHandoffFailed
	}
	l.Log(ctx, Event{
		Event:        event,
		SubmissionID: submissionID,
		Outcome:      outcome,
		PhoneHash:    HashPhone(phone),
		IP:           ip,
		RequestID:    requestID,
		Details:      details,
	})
}

// LogRateLimitTriggered logs when rate limiting is triggered
func (l *Logger) LogRateLimitTriggered(ctx context.Context, ip, userAgent, requestID, endpoint string) {
	l.Log(ctx, Event{
		Event:     EventRateLimitTriggered,
		IP:        ip,
		UserAgent: userAgent,
		RequestID: requestID,
		Details:   map[string]interface{}{"endpoint": endpoint},
	})
}

// Wait blocks until in-flight persistence finishes.
func (l *Logger) Wait() {
	l.wg.Wait()
}

// Sync flushes any buffered log entries
func (l *Logger) Sync() error {
	return l.zapLogger.Sync()
}

// HashPhone hashes the digits of a phone number so repeated submissions can
// be correlated without storing the number. Empty input stays empty.
func HashPhone(phone string) string {
	digits := make([]byte, 0, len(phone))
	for i := 0; i < len(phone); i++ {
		if phone[i] >= '0' && phone[i] <= '9' {
			digits = append(digits, phone[i])
		}
	}
	if len(digits) == 0 {
		return ""
	}
	hash := sha256.Sum256(digits)
	return hex.EncodeToString(hash[:8])
}

// Environment derives the deployment environment from GIN_MODE
func Environment() string {
	if os.Getenv("GIN_MODE") == "release" {
		return "production"
	}
	return "development"
}
