package booking

import (
	"testing"
	"time"

	"clinic-booking-backend/pkg/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleWindow(t *testing.T) {
	s := testSchedule(t, scheduler.NewFake(testNow))

	assert.Equal(t, "2026-10-19", s.MinDate().Format(dateLayout))
	assert.Equal(t, "2027-10-19", s.MaxDate().Format(dateLayout))

	for value, want := range map[string]bool{
		"2026-10-16": false, // past Friday
		"2026-10-19": true,  // today
		"2027-10-19": true,  // last selectable day
		"2027-10-20": false,
	} {
		d, err := s.ParseDate(value)
		require.NoError(t, err)
		assert.Equal(t, want, s.InWindow(d), value)
	}
}

func TestScheduleWeekendsDisabled(t *testing.T) {
	s := testSchedule(t, scheduler.NewFake(testNow))

	for _, value := range []string{saturday, sunday} {
		d, err := s.ParseDate(value)
		require.NoError(t, err)
		assert.True(t, IsWeekend(d), value)
		assert.True(t, s.IsDisabled(d), value)
		assert.Empty(t, s.Slots(d), value)
	}

	d, err := s.ParseDate(nextMonday)
	require.NoError(t, err)
	assert.False(t, s.IsDisabled(d))
}

func TestScheduleDateIsCalendarDateInZone(t *testing.T) {
	loc, err := time.LoadLocation("America/Mexico_City")
	require.NoError(t, err)
	rules := DefaultScheduleRules()
	rules.Location = loc
	// 02:00 UTC Tuesday is still Monday evening in Mexico City
	s, err := NewSchedule(scheduler.NewFake(time.Date(2026, 10, 20, 2, 0, 0, 0, time.UTC)), rules)
	require.NoError(t, err)

	assert.Equal(t, "2026-10-19", s.MinDate().Format(dateLayout))
	d, err := s.ParseDate(saturday)
	require.NoError(t, err)
	assert.Equal(t, time.Saturday, d.Weekday())
}

func TestScheduleSlotsAndGrid(t *testing.T) {
	s := testSchedule(t, scheduler.NewFake(testNow))
	d, err := s.ParseDate(nextMonday)
	require.NoError(t, err)

	slots := s.Slots(d)
	require.Len(t, slots, 19)
	assert.Equal(t, "08:00", slots[0])
	assert.Equal(t, "08:30", slots[1])
	assert.Equal(t, "17:00", slots[len(slots)-1])

	for value, want := range map[string]bool{
		"08:00": true,
		"9:30":  true,
		"12:00": true,
		"17:00": true,
		"07:30": false,
		"17:30": false,
		"09:15": false,
		"25:00": false,
		"0930":  false,
		"+9:30": false,
		"-9:30": false,
		"9:+3":  false,
		"":      false,
	} {
		assert.Equal(t, want, s.OnGrid(value), value)
	}
}

func TestScheduleConstraints(t *testing.T) {
	s := testSchedule(t, scheduler.NewFake(testNow))
	c := s.Constraints("es")

	assert.Equal(t, "2026-10-19", c.MinDate)
	assert.Equal(t, "2027-10-19", c.MaxDate)
	assert.ElementsMatch(t, []int{0, 6}, c.DisabledWeekdays)
	assert.Equal(t, "08:00", c.MinTime)
	assert.Equal(t, "17:00", c.MaxTime)
	assert.Equal(t, 30, c.MinuteIncrement)
	assert.True(t, c.Time24h)
	assert.Equal(t, FieldOrder, c.Fields)
}

func TestNewScheduleRejectsBadRules(t *testing.T) {
	clock := scheduler.NewFake(testNow)

	rules := DefaultScheduleRules()
	rules.Open = "8am"
	_, err := NewSchedule(clock, rules)
	assert.ErrorIs(t, err, ErrBadTime)

	rules = DefaultScheduleRules()
	rules.Open, rules.Close = "17:00", "08:00"
	_, err = NewSchedule(clock, rules)
	assert.Error(t, err)

	rules = DefaultScheduleRules()
	rules.Step = 0
	_, err = NewSchedule(clock, rules)
	assert.Error(t, err)
}
