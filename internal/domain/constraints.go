package domain

// PickerConstraints configures the date and time pickers of the booking page.
type PickerConstraints struct {
	MinDate          string   `json:"min_date" example:"2026-10-19"`
	MaxDate          string   `json:"max_date" example:"2027-10-19"`
	DisabledWeekdays []int    `json:"disabled_weekdays" example:"0,6"`
	MinTime          string   `json:"min_time" example:"08:00"`
	MaxTime          string   `json:"max_time" example:"17:00"`
	MinuteIncrement  int      `json:"minute_increment" example:"30"`
	Locale           string   `json:"locale" example:"es"`
	DateFormat       string   `json:"date_format" example:"Y-m-d"`
	TimeFormat       string   `json:"time_format" example:"H:i"`
	Time24h          bool     `json:"time_24hr"`
	Fields           []string `json:"fields"`
}
