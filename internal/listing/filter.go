package listing

import (
	"strings"

	"github.com/unclebandit/advocates-backend/internal/model"
)

// Matches reports whether search occurs, ignoring case, in the advocate's
// name, city, degree, years of experience or any specialty. An empty search
// matches everything.
func Matches(a model.Advocate, search string) bool {
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)

	for _, field := range []string{a.FirstName, a.LastName, a.City, a.Degree, a.YearsOfExperience} {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	for _, specialty := range a.Specialties {
		if strings.Contains(strings.ToLower(specialty), needle) {
			return true
		}
	}
	return false
}

// Filter returns the advocates matching search, in their original order.
func Filter(advocates []model.Advocate, search string) []model.Advocate {
	filtered := make([]model.Advocate, 0, len(advocates))
	for _, a := range advocates {
		if Matches(a, search) {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
