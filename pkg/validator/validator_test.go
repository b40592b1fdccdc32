package validator_test

import (
	"testing"

	"doctor-profile-service/internal/delivery/dto"
	"doctor-profile-service/pkg/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCustomValidator(t *testing.T) {
	v := validator.NewValidator()

	t.Run("valid search pagination", func(t *testing.T) {
		assert.NoError(t, v.Validate(&dto.DoctorSearchRequest{Page: 0, Size: 10}))
	})

	t.Run("negative page and zero size", func(t *testing.T) {
		err := v.Validate(&dto.DoctorSearchRequest{Page: -1, Size: 0})
		require.Error(t, err)

		errs := v.FormatValidationErrors(err)
		assert.Equal(t, "Page must be greater than or equal to 0", errs["Page"])
		assert.Equal(t, "Size must be greater than or equal to 1", errs["Size"])
	})

	t.Run("size above limit", func(t *testing.T) {
		err := v.Validate(&dto.DoctorSearchRequest{Size: 101})
		require.Error(t, err)
		assert.Equal(t, "Size must be less than or equal to 100", v.FormatValidationErrors(err)["Size"])
	})

	t.Run("nested schedule uses json names", func(t *testing.T) {
		err := v.Validate(&dto.CreateDoctorRequest{
			Name:             "Dr. John",
			Speciality:       "Dokter Umum",
			WorkingSchedules: []dto.WorkingScheduleRequest{{Label: "Mon-Fri", Day: "MONDAY", StartTime: "08:00"}},
		})
		require.Error(t, err)
		assert.Equal(t, "end_time is required", v.FormatValidationErrors(err)["end_time"])
	})
}
