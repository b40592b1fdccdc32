package search

import (
	"strings"

	"doctor-profile-service/internal/domain/entity"
)

// Strategy narrows a candidate list down to the doctors matching one
// criterion. Implementations keep the input order and never modify the
// input slice.
type Strategy func(doctors []entity.Doctor) []entity.Doctor

func keep(doctors []entity.Doctor, match func(d *entity.Doctor) bool) []entity.Doctor {
	result := make([]entity.Doctor, 0, len(doctors))
	for i := range doctors {
		if match(&doctors[i]) {
			result = append(result, doctors[i])
		}
	}
	return result
}

func anySchedule(d *entity.Doctor, match func(s *entity.WorkingSchedule) bool) bool {
	for i := range d.WorkingSchedules {
		if match(&d.WorkingSchedules[i]) {
			return true
		}
	}
	return false
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// ByName keeps doctors whose name contains fragment, ignoring case.
func ByName(fragment string) Strategy {
	return func(doctors []entity.Doctor) []entity.Doctor {
		return keep(doctors, func(d *entity.Doctor) bool {
			return containsFold(d.Name, fragment)
		})
	}
}

func BySpeciality(speciality entity.Speciality) Strategy {
	return func(doctors []entity.Doctor) []entity.Doctor {
		return keep(doctors, func(d *entity.Doctor) bool {
			return d.Speciality == speciality
		})
	}
}

// ByWorkingSchedule keeps doctors with a schedule entry whose label
// contains label, ignoring case.
func ByWorkingSchedule(label string) Strategy {
	return func(doctors []entity.Doctor) []entity.Doctor {
		return keep(doctors, func(d *entity.Doctor) bool {
			return anySchedule(d, func(s *entity.WorkingSchedule) bool {
				return containsFold(s.Label, label)
			})
		})
	}
}

func ByWorkingDay(day entity.DayOfWeek) Strategy {
	return func(doctors []entity.Doctor) []entity.Doctor {
		return keep(doctors, func(d *entity.Doctor) bool {
			return anySchedule(d, func(s *entity.WorkingSchedule) bool {
				return s.Day == day
			})
		})
	}
}

// ByTimeWindow keeps doctors with a schedule entry overlapping [start, end].
func ByTimeWindow(start, end entity.TimeOfDay) Strategy {
	return func(doctors []entity.Doctor) []entity.Doctor {
		return keep(doctors, func(d *entity.Doctor) bool {
			return anySchedule(d, func(s *entity.WorkingSchedule) bool {
				return s.Overlaps(start, end)
			})
		})
	}
}
