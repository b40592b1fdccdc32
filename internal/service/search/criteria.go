package search

import (
	"errors"
	"fmt"

	"doctor-profile-service/internal/domain/entity"
)

// ErrInvalidCriterion is matched by every criteria validation failure.
var ErrInvalidCriterion = errors.New("invalid search criterion")

const (
	FieldSpeciality = "speciality"
	FieldWorkingDay = "working day"
	FieldStartTime  = "start time"
	FieldEndTime    = "end time"
)

// InvalidCriterionError names the rejected field and the raw value verbatim.
type InvalidCriterionError struct {
	Field string
	Value string
}

func (e *InvalidCriterionError) Error() string {
	switch e.Field {
	case FieldStartTime, FieldEndTime:
		return fmt.Sprintf("Invalid %s format: %s. Expected format: HH:mm", e.Field, e.Value)
	default:
		return fmt.Sprintf("Invalid %s: %s", e.Field, e.Value)
	}
}

func (e *InvalidCriterionError) Unwrap() error {
	return ErrInvalidCriterion
}

// RawCriteria holds the search parameters as they arrive from the request.
type RawCriteria struct {
	Name            string
	Speciality      string
	WorkingSchedule string
	WorkingDay      string
	StartTime       string
	EndTime         string
	Page            int
	Size            int
}

// ParseCriteria turns raw parameters into typed criteria. Empty strings
// mean "not constrained". A single time bound is accepted; the engine
// treats the other side as open.
func ParseCriteria(raw RawCriteria) (*entity.DoctorSearchCriteria, error) {
	criteria := &entity.DoctorSearchCriteria{
		Name:            raw.Name,
		WorkingSchedule: raw.WorkingSchedule,
		Page:            raw.Page,
		Size:            raw.Size,
	}

	if raw.Speciality != "" {
		speciality, ok := entity.ParseSpeciality(raw.Speciality)
		if !ok {
			return nil, &InvalidCriterionError{Field: FieldSpeciality, Value: raw.Speciality}
		}
		criteria.Speciality = &speciality
	}

	if raw.WorkingDay != "" {
		day, ok := entity.ParseDayOfWeek(raw.WorkingDay)
		if !ok {
			return nil, &InvalidCriterionError{Field: FieldWorkingDay, Value: raw.WorkingDay}
		}
		criteria.WorkingDay = &day
	}

	start, err := parseTime(FieldStartTime, raw.StartTime)
	if err != nil {
		return nil, err
	}
	criteria.StartTime = start

	end, err := parseTime(FieldEndTime, raw.EndTime)
	if err != nil {
		return nil, err
	}
	criteria.EndTime = end

	return criteria, nil
}

func parseTime(field, value string) (*entity.TimeOfDay, error) {
	if value == "" {
		return nil, nil
	}
	t, err := entity.ParseTimeOfDay(value)
	if err != nil {
		return nil, &InvalidCriterionError{Field: field, Value: value}
	}
	return &t, nil
}
