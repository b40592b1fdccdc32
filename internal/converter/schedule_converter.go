package converter

import (
	"doctor-profile-service/internal/delivery/dto"
	"doctor-profile-service/internal/domain/entity"
)

// WorkingSchedulesToResponses converts schedule entries, preserving order
func WorkingSchedulesToResponses(schedules []entity.WorkingSchedule) []dto.WorkingScheduleResponse {
	responses := make([]dto.WorkingScheduleResponse, len(schedules))
	for i, schedule := range schedules {
		responses[i] = dto.WorkingScheduleResponse{
			Label:     schedule.Label,
			Day:       string(schedule.Day),
			StartTime: schedule.StartTime.String(),
			EndTime:   schedule.EndTime.String(),
		}
	}
	return responses
}
