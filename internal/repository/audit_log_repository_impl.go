package repository

import (
	"errors"

	"doctor-profile-service/internal/domain/entity"
	domainRepo "doctor-profile-service/internal/domain/repository"

	"gorm.io/gorm"
)

type auditLogRepository struct{}

func NewAuditLogRepository() domainRepo.AuditLogRepository {
	return &auditLogRepository{}
}

func (r *auditLogRepository) Create(db *gorm.DB, log *entity.AuditLog) error {
	return db.Create(log).Error
}

func (r *auditLogRepository) Search(db *gorm.DB, filter entity.AuditLogFilter) ([]entity.AuditLog, int64, error) {
	var total int64
	if err := filtered(db, filter).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []entity.AuditLog{}, 0, nil
	}

	var logs []entity.AuditLog
	err := filtered(db, filter).
		Order("created_at DESC, id DESC").
		Limit(filter.Limit).
		Offset(filter.Offset).
		Find(&logs).Error
	if err != nil {
		return nil, 0, err
	}
	return logs, total, nil
}

func filtered(db *gorm.DB, filter entity.AuditLogFilter) *gorm.DB {
	query := db.Model(&entity.AuditLog{})
	if filter.Action != "" {
		query = query.Where("action = ?", filter.Action)
	}
	if filter.ActorID != "" {
		query = query.Where("actor_id = ?", filter.ActorID)
	}
	if filter.EntityID != "" {
		query = query.Where("metadata->>'entity_id' = ?", filter.EntityID)
	}
	return query
}

func (r *auditLogRepository) FindByID(db *gorm.DB, id int64) (*entity.AuditLog, error) {
	var log entity.AuditLog
	err := db.Where("id = ?", id).First(&log).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &log, nil
}
