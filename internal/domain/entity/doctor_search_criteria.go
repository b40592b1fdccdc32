package entity

// DoctorSearchCriteria is a validated doctor search. Zero values and nil
// pointers mean the criterion is not applied.
type DoctorSearchCriteria struct {
	Name            string
	Speciality      *Speciality
	WorkingSchedule string
	WorkingDay      *DayOfWeek
	StartTime       *TimeOfDay
	EndTime         *TimeOfDay
	Page            int
	Size            int
}

// HasTimeWindow reports whether at least one time bound was supplied.
func (c *DoctorSearchCriteria) HasTimeWindow() bool {
	return c.StartTime != nil || c.EndTime != nil
}

// TimeWindow returns the requested window; a missing bound is open on
// that side.
func (c *DoctorSearchCriteria) TimeWindow() (TimeOfDay, TimeOfDay) {
	start, end := StartOfDay, EndOfDay
	if c.StartTime != nil {
		start = *c.StartTime
	}
	if c.EndTime != nil {
		end = *c.EndTime
	}
	return start, end
}
