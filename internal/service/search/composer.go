package search

import "doctor-profile-service/internal/domain/entity"

// Strategies returns one strategy per criterion present in c, cheapest
// comparison first.
func Strategies(c *entity.DoctorSearchCriteria) []Strategy {
	var strategies []Strategy
	if c == nil {
		return strategies
	}

	if c.Speciality != nil {
		strategies = append(strategies, BySpeciality(*c.Speciality))
	}
	if c.WorkingDay != nil {
		strategies = append(strategies, ByWorkingDay(*c.WorkingDay))
	}
	if c.Name != "" {
		strategies = append(strategies, ByName(c.Name))
	}
	if c.WorkingSchedule != "" {
		strategies = append(strategies, ByWorkingSchedule(c.WorkingSchedule))
	}
	if c.HasTimeWindow() {
		strategies = append(strategies, ByTimeWindow(c.TimeWindow()))
	}
	return strategies
}

// Compose returns the conjunction of the given strategies. With no
// strategies every doctor is kept.
func Compose(strategies ...Strategy) Strategy {
	return func(doctors []entity.Doctor) []entity.Doctor {
		for _, strategy := range strategies {
			if len(doctors) == 0 {
				break
			}
			doctors = strategy(doctors)
		}
		return doctors
	}
}
