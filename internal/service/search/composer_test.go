package search_test

import (
	"testing"

	"doctor-profile-service/internal/domain/entity"
	"doctor-profile-service/internal/service/search"

	"github.com/stretchr/testify/assert"
)

func TestStrategies_SelectedByCriteria(t *testing.T) {
	speciality := entity.SpecialityDokterUmum
	day := entity.Monday
	start := tod("08:00")

	assert.Empty(t, search.Strategies(nil))
	assert.Empty(t, search.Strategies(&entity.DoctorSearchCriteria{Page: 2, Size: 5}))
	assert.Len(t, search.Strategies(&entity.DoctorSearchCriteria{Name: "John"}), 1)
	assert.Len(t, search.Strategies(&entity.DoctorSearchCriteria{StartTime: &start}), 1)
	assert.Len(t, search.Strategies(&entity.DoctorSearchCriteria{
		Name:            "John",
		Speciality:      &speciality,
		WorkingSchedule: "Mon-Fri",
		WorkingDay:      &day,
		StartTime:       &start,
	}), 5)
}

func TestCompose(t *testing.T) {
	doctors := fixtureDoctors()

	t.Run("no strategies keeps everyone in order", func(t *testing.T) {
		assert.Equal(t, names(doctors), names(search.Compose()(doctors)))
	})

	t.Run("conjunction", func(t *testing.T) {
		speciality := entity.SpecialityDokterUmum
		day := entity.Monday
		criteria := &entity.DoctorSearchCriteria{Speciality: &speciality, WorkingDay: &day}

		got := search.Compose(search.Strategies(criteria)...)(doctors)
		assert.Equal(t, []string{"Dr. John"}, names(got))
	})

	t.Run("lone start bound is open ended", func(t *testing.T) {
		start := tod("17:30")
		criteria := &entity.DoctorSearchCriteria{StartTime: &start}

		got := search.Compose(search.Strategies(criteria)...)(doctors)
		assert.Equal(t, []string{"dr. Johnny Smith"}, names(got))
	})

	t.Run("lone end bound is open ended", func(t *testing.T) {
		end := tod("08:30")
		criteria := &entity.DoctorSearchCriteria{EndTime: &end}

		got := search.Compose(search.Strategies(criteria)...)(doctors)
		assert.Equal(t, []string{"Dr. John"}, names(got))
	})

	t.Run("day and time window may match different entries", func(t *testing.T) {
		day := entity.Tuesday
		start, end := tod("09:00"), tod("10:00")
		criteria := &entity.DoctorSearchCriteria{WorkingDay: &day, StartTime: &start, EndTime: &end}

		got := search.Compose(search.Strategies(criteria)...)(doctors)
		assert.Equal(t, []string{"Dr. John"}, names(got))
	})
}
