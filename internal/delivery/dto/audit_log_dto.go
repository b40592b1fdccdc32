package dto

import (
	"time"

	"doctor-profile-service/internal/domain/entity"
)

// Request DTOs

// AuditLogListRequest is read from the query string of the audit log listing.
type AuditLogListRequest struct {
	Action   string `validate:"omitempty,oneof=doctor.create doctor.update doctor.delete"`
	ActorID  string `validate:"omitempty,max=100"`
	DoctorID string `validate:"omitempty,uuid"`
	Page     int    `validate:"gte=0"`
	Size     int    `validate:"gte=1,lte=100"`
}

// Response DTOs

type AuditLogResponse struct {
	ID        int64       `json:"id"`
	ActorID   string      `json:"actor_id,omitempty"`
	Action    string      `json:"action"`
	Metadata  entity.JSON `json:"metadata"`
	CreatedAt time.Time   `json:"created_at"`
}

type AuditLogPageResponse struct {
	Logs  []AuditLogResponse `json:"logs"`
	Page  int                `json:"page"`
	Size  int                `json:"size"`
	Total int64              `json:"total"`
}
