package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // zone database for minimal container images

	"github.com/joho/godotenv"
)

type Config struct {
	Port     string
	LogLevel string
	// Contact target (phone number) the booking requests are handed off to.
	// Substituted at deploy time, never changed by the patient.
	WhatsAppNumber string
	MessagingHost  string
	Locale         string
	TimeZone       string
	Location       *time.Location
	// Booking window and business hours
	BookingWindowDays int
	OpenTime          string
	CloseTime         string
	SlotMinutes       int
	// UI timings (milliseconds in env, durations here)
	HandoffDelay     time.Duration
	ResetDelay       time.Duration
	NotificationTTL  time.Duration
	SubmitTimeout    time.Duration
	AllowedOrigins   []string
	ProductionOrigin string
	// Optional audit sink
	DBUrl        string
	AuditLogToDB bool
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds int
	RateLimitSubmitLimit   int
	RateLimitGlobalLimit   int
	// Outcome report upload (S3 or Wasabi), optional
	ReportBucket      string
	S3Provider        string
	S3AccessKeyID     string
	S3SecretAccessKey string
	S3Region          string
	S3Endpoint        string
}

func LoadConfig() (*Config, error) {
	// Load .env file when present (local development)
	_ = godotenv.Load()

	cfg := &Config{
		Port:              getEnv("PORT", "8080"),
		LogLevel:          getEnv("LOG_LEVEL", "debug"),
		WhatsAppNumber:    getEnv("WHATSAPP_NUMBER", "+522381228849"),
		MessagingHost:     strings.TrimRight(getEnv("MESSAGING_HOST", "wa.me"), "/"),
		Locale:            getEnv("LOCALE", "es-ES"),
		TimeZone:          getEnv("TIMEZONE", "America/Mexico_City"),
		BookingWindowDays: getEnvInt("BOOKING_WINDOW_DAYS", 365),
		OpenTime:          getEnv("OPEN_TIME", "08:00"),
		CloseTime:         getEnv("CLOSE_TIME", "17:00"),
		SlotMinutes:       getEnvInt("SLOT_MINUTES", 30),
		HandoffDelay:      getEnvMillis("HANDOFF_DELAY_MS", 1000),
		ResetDelay:        getEnvMillis("RESET_DELAY_MS", 2000),
		NotificationTTL:   getEnvMillis("NOTIFICATION_TTL_MS", 5000),
		SubmitTimeout:     getEnvMillis("SUBMIT_TIMEOUT_MS", 10000),
		AllowedOrigins:    getEnvList("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://127.0.0.1:5500"}),
		ProductionOrigin:  strings.TrimRight(getEnv("PRODUCTION_ORIGIN", ""), "/"),
		DBUrl:             getEnv("DATABASE_URL", ""),
		AuditLogToDB:      getEnvBool("AUDIT_LOG_TO_DB", true),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),
		RateLimitSubmitLimit:   getEnvInt("RATE_LIMIT_SUBMIT_LIMIT", 5),
		RateLimitGlobalLimit:   getEnvInt("RATE_LIMIT_GLOBAL_LIMIT", 100),
		// Outcome report upload
		ReportBucket:      getEnv("REPORT_BUCKET", ""),
		S3Provider:        getEnv("S3_PROVIDER", "aws"),
		S3AccessKeyID:     getEnv("S3_ACCESS_KEY_ID", ""),
		S3SecretAccessKey: getEnv("S3_SECRET_ACCESS_KEY", ""),
		S3Region:          getEnv("S3_REGION", "us-east-1"),
		S3Endpoint:        getEnv("S3_ENDPOINT", ""),
	}

	loc, err := time.LoadLocation(cfg.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE %q: %w", cfg.TimeZone, err)
	}
	cfg.Location = loc

	if cfg.SlotMinutes <= 0 {
		return nil, fmt.Errorf("SLOT_MINUTES must be positive, got %d", cfg.SlotMinutes)
	}

	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL not configured. Submission audit events are only logged.")
	}
	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

// getEnvMillis reads a millisecond count as a duration
func getEnvMillis(key string, fallback int) time.Duration {
	return time.Duration(getEnvInt(key, fallback)) * time.Millisecond
}

// getEnvBool returns a boolean environment variable or fallback if not set/invalid
func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return fallback
}

// getEnvList splits a comma separated variable, dropping empty entries
func getEnvList(key string, fallback []string) []string {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimRight(strings.TrimSpace(part), "/"); part != "" {
			out = append(out, part)
		}
	}
	return out
}
