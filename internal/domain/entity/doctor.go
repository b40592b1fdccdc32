package entity

import (
	"time"

	"github.com/google/uuid"
)

// Doctor is a practitioner profile listed in the directory.
type Doctor struct {
	ID         uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name       string     `gorm:"type:varchar(255);not null;index" json:"name"`
	Speciality Speciality `gorm:"type:varchar(50);not null;index" json:"speciality"`
	CreatedAt  time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time  `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	WorkingSchedules []WorkingSchedule `gorm:"foreignKey:DoctorID;constraint:OnDelete:CASCADE" json:"working_schedules"`
}

func (Doctor) TableName() string {
	return "doctors"
}
