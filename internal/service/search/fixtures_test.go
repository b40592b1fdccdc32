package search_test

import (
	"context"

	"doctor-profile-service/internal/domain/entity"

	"github.com/google/uuid"
	testifymock "github.com/stretchr/testify/mock"
)

// MockDoctorSource is a mock implementation of search.DoctorSource
type MockDoctorSource struct {
	testifymock.Mock
}

func (m *MockDoctorSource) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	args := m.Called(ctx)
	doctors, _ := args.Get(0).([]entity.Doctor)
	return doctors, args.Error(1)
}

func (m *MockDoctorSource) FindByID(ctx context.Context, id uuid.UUID) (*entity.Doctor, error) {
	args := m.Called(ctx, id)
	doctor, _ := args.Get(0).(*entity.Doctor)
	return doctor, args.Error(1)
}

func tod(value string) entity.TimeOfDay {
	t, err := entity.ParseTimeOfDay(value)
	if err != nil {
		panic(err)
	}
	return t
}

func schedule(label string, day entity.DayOfWeek, start, end string) entity.WorkingSchedule {
	return entity.WorkingSchedule{Label: label, Day: day, StartTime: tod(start), EndTime: tod(end)}
}

func names(doctors []entity.Doctor) []string {
	result := make([]string, len(doctors))
	for i, d := range doctors {
		result[i] = d.Name
	}
	return result
}

func fixtureDoctors() []entity.Doctor {
	return []entity.Doctor{
		{
			ID:         uuid.New(),
			Name:       "Dr. John",
			Speciality: entity.SpecialityDokterUmum,
			WorkingSchedules: []entity.WorkingSchedule{
				schedule("Mon-Fri", entity.Monday, "08:00", "12:00"),
				schedule("Mon-Fri", entity.Tuesday, "13:00", "17:00"),
			},
		},
		{
			ID:         uuid.New(),
			Name:       "Dr. Jane",
			Speciality: entity.SpecialitySpesialisAnak,
			WorkingSchedules: []entity.WorkingSchedule{
				schedule("Weekend", entity.Saturday, "09:00", "14:00"),
			},
		},
		{
			ID:         uuid.New(),
			Name:       "dr. Johnny Smith",
			Speciality: entity.SpecialitySpesialisKulit,
			WorkingSchedules: []entity.WorkingSchedule{
				schedule("Evening Shift", entity.Monday, "18:00", "22:00"),
			},
		},
		{
			ID:         uuid.New(),
			Name:       "Dr. Siti",
			Speciality: entity.SpecialityDokterUmum,
		},
	}
}
