package handler

import (
	"errors"
	"net/http"
	"strconv"

	"doctor-profile-service/internal/delivery/dto"
	"doctor-profile-service/internal/usecase"
	"doctor-profile-service/pkg/response"
	"doctor-profile-service/pkg/validator"

	"github.com/gorilla/mux"
)

const defaultAuditLogPageSize = 20

type AuditLogHandler struct {
	auditLogUsecase usecase.AuditLogUsecase
	validator       *validator.CustomValidator
}

func NewAuditLogHandler(auditLogUsecase usecase.AuditLogUsecase, validator *validator.CustomValidator) *AuditLogHandler {
	return &AuditLogHandler{
		auditLogUsecase: auditLogUsecase,
		validator:       validator,
	}
}

func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	auditLogID, err := strconv.ParseInt(vars["id"], 10, 64)
	if err != nil {
		response.BadRequest(w, "Invalid audit log ID")
		return
	}

	auditLog, err := h.auditLogUsecase.GetAuditLog(r.Context(), auditLogID)
	if err != nil {
		if errors.Is(err, usecase.ErrAuditLogNotFound) {
			response.NotFound(w, "Audit log not found")
			return
		}
		response.InternalServerError(w, "Failed to get audit log")
		return
	}

	response.Success(w, http.StatusOK, "Audit log retrieved successfully", auditLog)
}

// ListAuditLogs serves GET /admin/audit-logs?action=&actorId=&doctorId=&page=&size=
func (h *AuditLogHandler) ListAuditLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	page, err := intParam(r, "page", 0)
	if err != nil {
		response.BadRequest(w, "Invalid page parameter")
		return
	}
	size, err := intParam(r, "size", defaultAuditLogPageSize)
	if err != nil {
		response.BadRequest(w, "Invalid size parameter")
		return
	}

	req := dto.AuditLogListRequest{
		Action:   query.Get("action"),
		ActorID:  query.Get("actorId"),
		DoctorID: query.Get("doctorId"),
		Page:     page,
		Size:     size,
	}
	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	result, err := h.auditLogUsecase.ListAuditLogs(r.Context(), &req)
	if err != nil {
		response.InternalServerError(w, "Failed to get audit logs")
		return
	}

	response.SuccessWithMeta(w, http.StatusOK, "Audit logs retrieved successfully", result.Logs,
		response.NewMeta(result.Page, result.Size, result.Total))
}
