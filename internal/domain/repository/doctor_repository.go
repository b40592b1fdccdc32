package repository

import (
	"doctor-profile-service/internal/domain/entity"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DoctorRepository interface {
	Create(db *gorm.DB, doctor *entity.Doctor) error
	FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error)
	FindAll(db *gorm.DB) ([]entity.Doctor, error)
	Update(db *gorm.DB, doctor *entity.Doctor) error
	ReplaceSchedules(db *gorm.DB, doctorID uuid.UUID, schedules []entity.WorkingSchedule) error
	Delete(db *gorm.DB, id uuid.UUID) (int64, error)
}
