package booking

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"clinic-booking-backend/internal/domain"
	"clinic-booking-backend/pkg/scheduler"
	"clinic-booking-backend/pkg/validation"
)

const dateLayout = "2006-01-02"

var (
	ErrBadDate = errors.New("date must be YYYY-MM-DD")
	ErrBadTime = errors.New("time must be HH:MM")
)

// ScheduleRules are the business-day and business-hour constraints handed to
// the pickers.
type ScheduleRules struct {
	WindowDays int
	Open       string
	Close      string
	Step       time.Duration
	Location   *time.Location
}

// DefaultScheduleRules: today through one year ahead, 08:00-17:00 every 30 minutes.
func DefaultScheduleRules() ScheduleRules {
	return ScheduleRules{
		WindowDays: 365,
		Open:       "08:00",
		Close:      "17:00",
		Step:       30 * time.Minute,
		Location:   time.Local,
	}
}

// Schedule answers date/time constraint questions relative to a clock.
type Schedule struct {
	clock      scheduler.Clock
	loc        *time.Location
	windowDays int
	open       int // minutes since midnight
	close      int
	step       int
	rules      ScheduleRules
}

func NewSchedule(clock scheduler.Clock, rules ScheduleRules) (*Schedule, error) {
	if rules.Location == nil {
		rules.Location = time.Local
	}
	open, err := ParseClock(rules.Open)
	if err != nil {
		return nil, fmt.Errorf("open time: %w", err)
	}
	closing, err := ParseClock(rules.Close)
	if err != nil {
		return nil, fmt.Errorf("close time: %w", err)
	}
	step := int(rules.Step / time.Minute)
	if step <= 0 || closing < open {
		return nil, fmt.Errorf("invalid business hours %s-%s every %s", rules.Open, rules.Close, rules.Step)
	}
	if rules.WindowDays < 0 {
		return nil, fmt.Errorf("invalid booking window %d", rules.WindowDays)
	}
	return &Schedule{
		clock:      clock,
		loc:        rules.Location,
		windowDays: rules.WindowDays,
		open:       open,
		close:      closing,
		step:       step,
		rules:      rules,
	}, nil
}

// Today is midnight of the current day in the schedule's zone.
func (s *Schedule) Today() time.Time {
	now := s.clock.Now().In(s.loc)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)
}

func (s *Schedule) MinDate() time.Time { return s.Today() }

func (s *Schedule) MaxDate() time.Time { return s.Today().AddDate(0, 0, s.windowDays) }

// ParseDate reads a YYYY-MM-DD calendar date in the schedule's zone.
func (s *Schedule) ParseDate(value string) (time.Time, error) {
	d, err := time.ParseInLocation(dateLayout, strings.TrimSpace(value), s.loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrBadDate, value)
	}
	return d, nil
}

// IsWeekend reports whether d falls on Saturday or Sunday.
func IsWeekend(d time.Time) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// InWindow reports whether d is within [today, today+window], inclusive.
func (s *Schedule) InWindow(d time.Time) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, s.loc)
	return !day.Before(s.MinDate()) && !day.After(s.MaxDate())
}

// IsDisabled is the picker's disable predicate.
func (s *Schedule) IsDisabled(d time.Time) bool {
	return IsWeekend(d) || !s.InWindow(d)
}

// OnGrid reports whether an HH:MM value is a selectable appointment time.
func (s *Schedule) OnGrid(value string) bool {
	m, err := ParseClock(value)
	if err != nil {
		return false
	}
	return m >= s.open && m <= s.close && (m-s.open)%s.step == 0
}

// Slots lists the selectable times of a date, empty when the date is disabled.
func (s *Schedule) Slots(d time.Time) []string {
	if s.IsDisabled(d) {
		return nil
	}
	var slots []string
	for m := s.open; m <= s.close; m += s.step {
		slots = append(slots, fmt.Sprintf("%02d:%02d", m/60, m%60))
	}
	return slots
}

// Constraints is the picker configuration for the booking page.
func (s *Schedule) Constraints(locale string) domain.PickerConstraints {
	return domain.PickerConstraints{
		MinDate:          s.MinDate().Format(dateLayout),
		MaxDate:          s.MaxDate().Format(dateLayout),
		DisabledWeekdays: []int{int(time.Sunday), int(time.Saturday)},
		MinTime:          s.rules.Open,
		MaxTime:          s.rules.Close,
		MinuteIncrement:  s.step,
		Locale:           locale,
		DateFormat:       "Y-m-d",
		TimeFormat:       "H:i",
		Time24h:          true,
		Fields:           append([]string(nil), FieldOrder...),
	}
}

// ParseClock converts HH:MM (24h) to minutes since midnight.
func ParseClock(value string) (int, error) {
	h, m, ok := splitClock(value)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrBadTime, value)
	}
	return h*60 + m, nil
}

func splitClock(value string) (hour, minute int, ok bool) {
	hh, mm, found := strings.Cut(strings.TrimSpace(value), ":")
	if !found || len(hh) == 0 || len(hh) > 2 || len(mm) != 2 || !digits(hh) || !digits(mm) {
		return 0, 0, false
	}
	hour, err := strconv.Atoi(hh)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, false
	}
	minute, err = strconv.Atoi(mm)
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}

// digits reports whether s is ASCII digits only. Atoi alone would take a sign.
func digits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// check re-validates the picker constraints at submit time. It returns the
// offending field, if any, and whether the date is a weekend.
func (s *Schedule) check(req domain.AppointmentRequest) (invalid []string, weekend bool) {
	d, err := s.ParseDate(req.Date)
	if err != nil {
		invalid = append(invalid, validation.FieldDate)
	} else if IsWeekend(d) {
		return nil, true
	} else if !s.InWindow(d) {
		invalid = append(invalid, validation.FieldDate)
	}
	if !s.OnGrid(req.Time) {
		invalid = append(invalid, validation.FieldTime)
	}
	return invalid, false
}
