package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAdvocatesDefaultsToBundledSeed(t *testing.T) {
	advocates, err := loadAdvocates("")
	require.NoError(t, err)
	assert.Len(t, advocates, 15)
}

func TestLoadAdvocatesFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "advocates.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
- firstName: Rosa
  lastName: Parks
  city: Montgomery
  degree: MSW
  specialties: ["Personal growth"]
  yearsOfExperience: 20
  phoneNumber: "334-555-0100"
`), 0o644))

	advocates, err := loadAdvocates(path)
	require.NoError(t, err)
	require.Len(t, advocates, 1)
	assert.Equal(t, "20", advocates[0].YearsOfExperience)
	assert.Equal(t, "334-555-0100", advocates[0].PhoneNumber)
}

func TestLoadAdvocatesMissingFile(t *testing.T) {
	_, err := loadAdvocates(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
