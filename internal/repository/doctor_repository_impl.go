package repository

import (
	"errors"

	"doctor-profile-service/internal/domain/entity"
	domainRepo "doctor-profile-service/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type doctorRepository struct{}

func NewDoctorRepository() domainRepo.DoctorRepository {
	return &doctorRepository{}
}

func orderedSchedules(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC, id ASC")
}

func (r *doctorRepository) Create(db *gorm.DB, doctor *entity.Doctor) error {
	for i := range doctor.WorkingSchedules {
		doctor.WorkingSchedules[i].Position = i
	}
	return db.Create(doctor).Error
}

func (r *doctorRepository) FindByID(db *gorm.DB, id uuid.UUID) (*entity.Doctor, error) {
	var doctor entity.Doctor
	err := db.Preload("WorkingSchedules", orderedSchedules).Where("id = ?", id).First(&doctor).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &doctor, nil
}

// FindAll returns every doctor in a stable order (oldest first) with
// schedules in their stored order.
func (r *doctorRepository) FindAll(db *gorm.DB) ([]entity.Doctor, error) {
	var doctors []entity.Doctor
	err := db.Preload("WorkingSchedules", orderedSchedules).
		Order("created_at ASC, id ASC").
		Find(&doctors).Error
	if err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *doctorRepository) Update(db *gorm.DB, doctor *entity.Doctor) error {
	return db.Omit("WorkingSchedules").Save(doctor).Error
}

// ReplaceSchedules drops the doctor's current schedule entries and stores
// the given ones in order.
func (r *doctorRepository) ReplaceSchedules(db *gorm.DB, doctorID uuid.UUID, schedules []entity.WorkingSchedule) error {
	if err := db.Where("doctor_id = ?", doctorID).Delete(&entity.WorkingSchedule{}).Error; err != nil {
		return err
	}
	if len(schedules) == 0 {
		return nil
	}
	for i := range schedules {
		schedules[i].ID = 0
		schedules[i].DoctorID = doctorID
		schedules[i].Position = i
	}
	return db.Create(&schedules).Error
}

func (r *doctorRepository) Delete(db *gorm.DB, id uuid.UUID) (int64, error) {
	result := db.Where("id = ?", id).Delete(&entity.Doctor{})
	return result.RowsAffected, result.Error
}
