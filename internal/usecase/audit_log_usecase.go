package usecase

import (
	"context"
	"errors"

	"doctor-profile-service/internal/converter"
	"doctor-profile-service/internal/delivery/dto"
	"doctor-profile-service/internal/domain/entity"
	"doctor-profile-service/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrAuditLogNotFound = errors.New("audit log not found")
)

type AuditLogUsecase interface {
	ListAuditLogs(ctx context.Context, req *dto.AuditLogListRequest) (*dto.AuditLogPageResponse, error)
	GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error)
}

type auditLogUsecase struct {
	db           *gorm.DB
	log          *logrus.Logger
	auditLogRepo repository.AuditLogRepository
}

func NewAuditLogUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	auditLogRepo repository.AuditLogRepository,
) AuditLogUsecase {
	return &auditLogUsecase{
		db:           db,
		log:          log,
		auditLogRepo: auditLogRepo,
	}
}

// ListAuditLogs returns the admin change history, newest first. A doctor
// id narrows it to the changes made to that doctor.
func (u *auditLogUsecase) ListAuditLogs(ctx context.Context, req *dto.AuditLogListRequest) (*dto.AuditLogPageResponse, error) {
	logs, total, err := u.auditLogRepo.Search(u.db.WithContext(ctx), entity.AuditLogFilter{
		Action:   req.Action,
		ActorID:  req.ActorID,
		EntityID: req.DoctorID,
		Limit:    req.Size,
		Offset:   req.Page * req.Size,
	})
	if err != nil {
		u.log.Warnf("Failed to search audit logs: %+v", err)
		return nil, err
	}

	return converter.AuditLogPageToResponse(logs, req.Page, req.Size, total), nil
}

func (u *auditLogUsecase) GetAuditLog(ctx context.Context, id int64) (*dto.AuditLogResponse, error) {
	auditLog, err := u.auditLogRepo.FindByID(u.db.WithContext(ctx), id)
	if err != nil {
		u.log.Warnf("Failed to find audit log: %+v", err)
		return nil, err
	}
	if auditLog == nil {
		return nil, ErrAuditLogNotFound
	}

	return converter.AuditLogToResponse(auditLog), nil
}
