package dto

import (
	"time"

	"github.com/google/uuid"
)

// Request DTOs

// DoctorSearchRequest carries the raw search query parameters. Criteria
// are parsed by the search service; only pagination is checked here.
type DoctorSearchRequest struct {
	Name            string `validate:"omitempty,max=255"`
	Speciality      string `validate:"omitempty"`
	WorkingSchedule string `validate:"omitempty,max=100"`
	WorkingDay      string `validate:"omitempty"`
	StartTime       string `validate:"omitempty"`
	EndTime         string `validate:"omitempty"`
	Page            int    `validate:"gte=0"`
	Size            int    `validate:"gte=1,lte=100"`
}

type WorkingScheduleRequest struct {
	Label     string `json:"label" validate:"required,max=100"`
	Day       string `json:"day" validate:"required"`
	StartTime string `json:"start_time" validate:"required"` // Format: HH:mm
	EndTime   string `json:"end_time" validate:"required"`   // Format: HH:mm
}

type CreateDoctorRequest struct {
	Name             string                   `json:"name" validate:"required,min=2,max=255"`
	Speciality       string                   `json:"speciality" validate:"required"`
	WorkingSchedules []WorkingScheduleRequest `json:"working_schedules" validate:"omitempty,dive"`
}

type UpdateDoctorRequest struct {
	Name             string                    `json:"name" validate:"omitempty,min=2,max=255"`
	Speciality       string                    `json:"speciality" validate:"omitempty"`
	WorkingSchedules *[]WorkingScheduleRequest `json:"working_schedules" validate:"omitempty,dive"`
}

// Response DTOs

type WorkingScheduleResponse struct {
	Label     string `json:"label"`
	Day       string `json:"day"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type DoctorResponse struct {
	ID               uuid.UUID                 `json:"id"`
	Name             string                    `json:"name"`
	Speciality       string                    `json:"speciality"`
	SpecialityName   string                    `json:"speciality_name"`
	WorkingSchedules []WorkingScheduleResponse `json:"working_schedules"`
	CreatedAt        time.Time                 `json:"created_at"`
	UpdatedAt        time.Time                 `json:"updated_at"`
}

type DoctorPageResponse struct {
	Doctors       []DoctorResponse `json:"doctors"`
	Page          int              `json:"page"`
	Size          int              `json:"size"`
	TotalElements int              `json:"total_elements"`
	TotalPages    int              `json:"total_pages"`
}
