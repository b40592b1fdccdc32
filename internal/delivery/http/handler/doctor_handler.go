package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"doctor-profile-service/internal/delivery/dto"
	"doctor-profile-service/internal/service/search"
	"doctor-profile-service/internal/usecase"
	"doctor-profile-service/pkg/response"
	"doctor-profile-service/pkg/validator"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

type DoctorHandler struct {
	doctorUsecase   usecase.DoctorProfileUsecase
	validator       *validator.CustomValidator
	defaultPageSize int
}

func NewDoctorHandler(doctorUsecase usecase.DoctorProfileUsecase, validator *validator.CustomValidator, defaultPageSize int) *DoctorHandler {
	if defaultPageSize <= 0 {
		defaultPageSize = search.DefaultPageSize
	}
	return &DoctorHandler{
		doctorUsecase:   doctorUsecase,
		validator:       validator,
		defaultPageSize: defaultPageSize,
	}
}

func (h *DoctorHandler) SearchDoctors(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, size, ok := h.pagination(w, r)
	if !ok {
		return
	}

	req := dto.DoctorSearchRequest{
		Name:            query.Get("name"),
		Speciality:      query.Get("speciality"),
		WorkingSchedule: query.Get("workingSchedule"),
		WorkingDay:      query.Get("workingDay"),
		StartTime:       query.Get("startTime"),
		EndTime:         query.Get("endTime"),
		Page:            page,
		Size:            size,
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.doctorUsecase.SearchDoctors(r.Context(), &req)
	if err != nil {
		writeSearchError(w, err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Doctors retrieved successfully", result.Doctors, pageMeta(result))
}

func (h *DoctorHandler) GetAllDoctors(w http.ResponseWriter, r *http.Request) {
	page, size, ok := h.pagination(w, r)
	if !ok {
		return
	}

	req := dto.DoctorSearchRequest{Page: page, Size: size}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.doctorUsecase.GetAllDoctors(r.Context(), page, size)
	if err != nil {
		writeSearchError(w, err)
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "All doctors retrieved successfully", result.Doctors, pageMeta(result))
}

func (h *DoctorHandler) GetDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	doctor, err := h.doctorUsecase.GetDoctor(r.Context(), doctorID)
	if err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to get doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor details retrieved successfully", doctor)
}

func (h *DoctorHandler) CreateDoctor(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.CreateDoctor(r.Context(), &req)
	if err != nil {
		writeWriteError(w, err, "Failed to create doctor")
		return
	}

	response.Success(w, http.StatusCreated, "Doctor created successfully", doctor)
}

func (h *DoctorHandler) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	var req dto.UpdateDoctorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body")
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	doctor, err := h.doctorUsecase.UpdateDoctor(r.Context(), doctorID, &req)
	if err != nil {
		writeWriteError(w, err, "Failed to update doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor updated successfully", doctor)
}

func (h *DoctorHandler) DeleteDoctor(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	doctorID, err := uuid.Parse(vars["id"])
	if err != nil {
		response.BadRequest(w, "Invalid doctor ID")
		return
	}

	if err := h.doctorUsecase.DeleteDoctor(r.Context(), doctorID); err != nil {
		if errors.Is(err, usecase.ErrDoctorNotFound) {
			response.NotFound(w, "Doctor not found")
			return
		}
		response.InternalServerError(w, "Failed to delete doctor")
		return
	}

	response.Success(w, http.StatusOK, "Doctor deleted successfully", nil)
}

// pagination reads page and size, writing a 400 response when either is
// not an integer.
func (h *DoctorHandler) pagination(w http.ResponseWriter, r *http.Request) (int, int, bool) {
	page, err := intParam(r, "page", 0)
	if err != nil {
		response.BadRequest(w, "Invalid page parameter")
		return 0, 0, false
	}
	size, err := intParam(r, "size", h.defaultPageSize)
	if err != nil {
		response.BadRequest(w, "Invalid size parameter")
		return 0, 0, false
	}
	return page, size, true
}

func intParam(r *http.Request, name string, fallback int) (int, error) {
	value := r.URL.Query().Get(name)
	if value == "" {
		return fallback, nil
	}
	return strconv.Atoi(value)
}

func pageMeta(result *dto.DoctorPageResponse) *response.Meta {
	return response.NewMeta(result.Page, result.Size, int64(result.TotalElements))
}

func writeSearchError(w http.ResponseWriter, err error) {
	var invalid *search.InvalidCriterionError
	if errors.As(err, &invalid) {
		response.BadRequest(w, invalid.Error())
		return
	}
	response.InternalServerError(w, "Failed to search doctors")
}

func writeWriteError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrDoctorNotFound):
		response.NotFound(w, "Doctor not found")
	case errors.Is(err, usecase.ErrInvalidSpeciality),
		errors.Is(err, usecase.ErrInvalidWorkingDay),
		errors.Is(err, usecase.ErrInvalidTimeFormat),
		errors.Is(err, usecase.ErrInvalidTimeRange):
		response.BadRequest(w, err.Error())
	case errors.Is(err, usecase.ErrDuplicateWorkingSchedule):
		response.Conflict(w, "Duplicate working schedule entry")
	default:
		response.InternalServerError(w, fallback)
	}
}
