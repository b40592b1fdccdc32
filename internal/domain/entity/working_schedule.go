package entity

import "github.com/google/uuid"

// WorkingSchedule is one recurring weekly slot of a doctor, e.g. the
// "Mon-Fri" morning shift on MONDAY from 08:00 to 12:00.
type WorkingSchedule struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID  uuid.UUID `gorm:"type:uuid;not null;index" json:"doctor_id"`
	Position  int       `gorm:"not null;default:0" json:"-"`
	Label     string    `gorm:"type:varchar(100);not null" json:"label"`
	Day       DayOfWeek `gorm:"type:varchar(10);not null;index" json:"day"`
	StartTime TimeOfDay `gorm:"type:time;not null" json:"start_time"`
	EndTime   TimeOfDay `gorm:"type:time;not null" json:"end_time"`
}

func (WorkingSchedule) TableName() string {
	return "working_schedules"
}

// Overlaps reports whether the entry shares at least one minute with
// the closed window [start, end].
func (s WorkingSchedule) Overlaps(start, end TimeOfDay) bool {
	return s.StartTime <= end && s.EndTime >= start
}
