package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"clinic-booking-backend/internal/domain"
	"clinic-booking-backend/pkg/apperror"

	pgxmock "github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmissionEventCreate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubmissionEventRepository(mock)
	at := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	event := &domain.SubmissionEvent{
		ID:        "7f1c7c3e-9a53-4a63-9d6b-2f1f3c1c0a01",
		Outcome:   domain.OutcomeSuccess,
		PhoneHash: "abcdef0123456789",
		CreatedAt: at,
	}
	hash := "abcdef0123456789"

	mock.ExpectExec("INSERT INTO submission_events").
		WithArgs(event.ID, (*string)(nil), "success", &hash, (*string)(nil), at).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), event))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmissionEventCreateWrapsDBError(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubmissionEventRepository(mock)
	mock.ExpectExec("INSERT INTO submission_events").WillReturnError(errors.New("connection reset"))

	err = repo.Create(context.Background(), &domain.SubmissionEvent{ID: "x", Outcome: domain.OutcomeHandoffError})
	var appErr *apperror.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, 500, appErr.Code)
	assert.NotContains(t, appErr.Message, "connection reset")
}

func TestSubmissionEventCountByOutcome(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSubmissionEventRepository(mock)
	since := time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)

	rows := pgxmock.NewRows([]string{"outcome", "count"}).
		AddRow("success", 12).
		AddRow("weekend_rejected", 3)
	mock.ExpectQuery("SELECT outcome, COUNT").WithArgs(since).WillReturnRows(rows)

	counts, err := repo.CountByOutcomeSince(context.Background(), since)
	require.NoError(t, err)
	assert.Equal(t, 12, counts[domain.OutcomeSuccess])
	assert.Equal(t, 3, counts[domain.OutcomeWeekendRejected])
	assert.NoError(t, mock.ExpectationsWereMet())
}
