package entity

import "strings"

// DayOfWeek is one of the seven working days a schedule entry can fall on.
type DayOfWeek string

const (
	Monday    DayOfWeek = "MONDAY"
	Tuesday   DayOfWeek = "TUESDAY"
	Wednesday DayOfWeek = "WEDNESDAY"
	Thursday  DayOfWeek = "THURSDAY"
	Friday    DayOfWeek = "FRIDAY"
	Saturday  DayOfWeek = "SATURDAY"
	Sunday    DayOfWeek = "SUNDAY"
)

var daysOfWeek = []DayOfWeek{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

func (d DayOfWeek) IsValid() bool {
	for _, day := range daysOfWeek {
		if d == day {
			return true
		}
	}
	return false
}

// ParseDayOfWeek matches the seven day names case-insensitively.
func ParseDayOfWeek(value string) (DayOfWeek, bool) {
	for _, day := range daysOfWeek {
		if strings.EqualFold(value, string(day)) {
			return day, true
		}
	}
	return "", false
}
