package converter

import (
	"doctor-profile-service/internal/delivery/dto"
	"doctor-profile-service/internal/domain/entity"
)

// DoctorToResponse converts a Doctor entity to DoctorResponse DTO
func DoctorToResponse(doctor *entity.Doctor) *dto.DoctorResponse {
	if doctor == nil {
		return nil
	}

	return &dto.DoctorResponse{
		ID:               doctor.ID,
		Name:             doctor.Name,
		Speciality:       string(doctor.Speciality),
		SpecialityName:   doctor.Speciality.DisplayName(),
		WorkingSchedules: WorkingSchedulesToResponses(doctor.WorkingSchedules),
		CreatedAt:        doctor.CreatedAt,
		UpdatedAt:        doctor.UpdatedAt,
	}
}

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i := range doctors {
		responses[i] = *DoctorToResponse(&doctors[i])
	}
	return responses
}

// DoctorPageToResponse converts a search result page, keeping its metadata
func DoctorPageToResponse(page *entity.DoctorPage) *dto.DoctorPageResponse {
	return &dto.DoctorPageResponse{
		Doctors:       DoctorsToResponses(page.Content),
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
	}
}
