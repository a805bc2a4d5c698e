package postgres

import (
	"context"
	"fmt"
	"time"

	"clinic-booking-backend/internal/domain"
	"clinic-booking-backend/pkg/apperror"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

type submissionEventRepo struct {
	db DB
}

func NewSubmissionEventRepository(db DB) domain.SubmissionEventRepository {
	return &submissionEventRepo{db: db}
}

func (r *submissionEventRepo) Create(ctx context.Context, event *domain.SubmissionEvent) error {
	query := `INSERT INTO submission_events (id, request_id, outcome, phone_hash, client_ip, created_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		event.ID, nullIfEmpty(event.RequestID), string(event.Outcome),
		nullIfEmpty(event.PhoneHash), nullIfEmpty(event.ClientIP), event.CreatedAt,
	)
	if err != nil {
		return apperror.Internal(fmt.Errorf("insert submission event: %w", err))
	}
	return nil
}

func (r *submissionEventRepo) CountByOutcomeSince(ctx context.Context, since time.Time) (map[domain.SubmissionOutcome]int, error) {
	query := `SELECT outcome, COUNT(*) FROM submission_events WHERE created_at >= $1 GROUP BY outcome`
	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, apperror.Internal(fmt.Errorf("count submission events: %w", err))
	}
	defer rows.Close()

	counts := make(map[domain.SubmissionOutcome]int)
	for rows.Next() {
		var outcome string
		var n int
		if err := rows.Scan(&outcome, &n); err != nil {
			return nil, apperror.Internal(err)
		}
		counts[domain.SubmissionOutcome(outcome)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Internal(err)
	}
	return counts, nil
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
