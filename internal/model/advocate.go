// internal/model/advocate.go
package model

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Advocate is a directory record as served by the API and shown in the listing.
// Numeric columns are carried as text so the listing can match on them.
type Advocate struct {
	ID                int      `db:"id" json:"id,omitempty"`
	FirstName         string   `db:"first_name" json:"firstName"`
	LastName          string   `db:"last_name" json:"lastName"`
	City              string   `db:"city" json:"city"`
	Degree            string   `db:"degree" json:"degree"`
	Specialties       []string `db:"specialties" json:"specialties"`
	YearsOfExperience string   `db:"years_of_experience" json:"yearsOfExperience"`
	PhoneNumber       string   `db:"phone_number" json:"phoneNumber"`
}

// RawAdvocate is an advocate as it arrives from outside: the seed file,
// an API response or a queue message. YearsOfExperience and PhoneNumber
// may be numbers or strings.
type RawAdvocate struct {
	ID                int      `json:"id,omitempty" yaml:"id,omitempty"`
	FirstName         string   `json:"firstName" yaml:"firstName"`
	LastName          string   `json:"lastName" yaml:"lastName"`
	City              string   `json:"city" yaml:"city"`
	Degree            string   `json:"degree" yaml:"degree"`
	Specialties       []string `json:"specialties" yaml:"specialties"`
	YearsOfExperience any      `json:"yearsOfExperience" yaml:"yearsOfExperience"`
	PhoneNumber       any      `json:"phoneNumber" yaml:"phoneNumber"`
}

// Normalize coerces the numeric-like fields to text.
func (r RawAdvocate) Normalize() Advocate {
	specialties := make([]string, len(r.Specialties))
	copy(specialties, r.Specialties)

	return Advocate{
		ID:                r.ID,
		FirstName:         r.FirstName,
		LastName:          r.LastName,
		City:              r.City,
		Degree:            r.Degree,
		Specialties:       specialties,
		YearsOfExperience: TextOf(r.YearsOfExperience),
		PhoneNumber:       TextOf(r.PhoneNumber),
	}
}

// NormalizeAll normalizes a slice of raw records, preserving order.
func NormalizeAll(raw []RawAdvocate) []Advocate {
	advocates := make([]Advocate, 0, len(raw))
	for _, r := range raw {
		advocates = append(advocates, r.Normalize())
	}
	return advocates
}

// TextOf renders a scalar the way it would be displayed. Floats are printed
// without exponent so that phone numbers decoded as float64 stay intact.
func TextOf(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		if i, err := val.Int64(); err == nil {
			return strconv.FormatInt(i, 10)
		}
		if f, err := val.Float64(); err == nil {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
		return val.String()
	case int:
		return strconv.Itoa(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'f', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
