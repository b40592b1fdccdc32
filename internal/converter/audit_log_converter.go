package converter

import (
	"doctor-profile-service/internal/delivery/dto"
	"doctor-profile-service/internal/domain/entity"
)

func AuditLogToResponse(log *entity.AuditLog) *dto.AuditLogResponse {
	if log == nil {
		return nil
	}

	return &dto.AuditLogResponse{
		ID:        log.ID,
		ActorID:   log.ActorID,
		Action:    log.Action,
		Metadata:  log.Metadata,
		CreatedAt: log.CreatedAt,
	}
}

// AuditLogPageToResponse converts one window of audit logs; Logs is never nil
func AuditLogPageToResponse(logs []entity.AuditLog, page, size int, total int64) *dto.AuditLogPageResponse {
	responses := make([]dto.AuditLogResponse, len(logs))
	for i := range logs {
		responses[i] = *AuditLogToResponse(&logs[i])
	}
	return &dto.AuditLogPageResponse{
		Logs:  responses,
		Page:  page,
		Size:  size,
		Total: total,
	}
}
