package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/unclebandit/advocates-backend/internal/model"
)

func TestTextOf(t *testing.T) {
	cases := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "555-123-4567", "555-123-4567"},
		{"int", 10, "10"},
		{"int64", int64(5551234567), "5551234567"},
		{"float64 without exponent", float64(5551234567), "5551234567"},
		{"json number", json.Number("12"), "12"},
		{"json number with fraction zero", json.Number("10.0"), "10"},
		{"json number in exponent form", json.Number("5.551234567e9"), "5551234567"},
		{"json number with fraction", json.Number("10.5"), "10.5"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, model.TextOf(tc.in))
		})
	}
}

func TestNormalizeDoesNotShareSpecialties(t *testing.T) {
	raw := model.RawAdvocate{
		FirstName:         "John",
		Specialties:       []string{"Bipolar"},
		YearsOfExperience: 10,
		PhoneNumber:       int64(5551234567),
	}

	a := raw.Normalize()
	raw.Specialties[0] = "changed"

	assert.Equal(t, "10", a.YearsOfExperience)
	assert.Equal(t, "5551234567", a.PhoneNumber)
	assert.Equal(t, []string{"Bipolar"}, a.Specialties)
}

func TestNormalizeFromJSON(t *testing.T) {
	body := `{"firstName":"Jane","lastName":"Smith","city":"Los Angeles","degree":"PhD",
		"specialties":["LGBTQ"],"yearsOfExperience":8,"phoneNumber":5559876543}`

	var raw model.RawAdvocate
	assert.NoError(t, json.Unmarshal([]byte(body), &raw))

	a := raw.Normalize()
	assert.Equal(t, "8", a.YearsOfExperience)
	assert.Equal(t, "5559876543", a.PhoneNumber)
}
