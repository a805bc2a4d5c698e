package main

import (
	"context"
	"testing"
	"time"

	"clinic-booking-backend/internal/domain"
	"clinic-booking-backend/pkg/audit"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRepo struct {
	events []*domain.SubmissionEvent
}

func (r *recordingRepo) Create(_ context.Context, e *domain.SubmissionEvent) error {
	r.events = append(r.events, e)
	return nil
}

func (r *recordingRepo) CountByOutcomeSince(context.Context, time.Time) (map[domain.SubmissionOutcome]int, error) {
	return nil, nil
}

func TestSubmissionPersisterStoresOnlySubmissions(t *testing.T) {
	repo := &recordingRepo{}
	persist := submissionPersister(repo)
	at := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)

	require.NoError(t, persist(context.Background(), audit.Event{Event: audit.EventRateLimitTriggered, IP: "1.2.3.4"}))
	require.NoError(t, persist(context.Background(), audit.Event{
		Event:        audit.EventSubmissionRejected,
		SubmissionID: "4b2d1c6e-0f4a-4c55-8f57-8a7d9d2f1e11",
		Outcome:      "weekend_rejected",
		PhoneHash:    "abcdef0123456789",
		IP:           "1.2.3.4",
		RequestID:    "r1",
		Timestamp:    at,
	}))

	require.Len(t, repo.events, 1)
	e := repo.events[0]
	assert.Equal(t, domain.OutcomeWeekendRejected, e.Outcome)
	assert.Equal(t, "abcdef0123456789", e.PhoneHash)
	assert.Equal(t, "r1", e.RequestID)
	assert.Equal(t, at, e.CreatedAt)
}
