// internal/seed/seed.go
package seed

import (
	_ "embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/unclebandit/advocates-backend/internal/model"
)

//go:embed advocates.yaml
var advocatesYAML []byte

var loadRaw = sync.OnceValues(func() ([]model.RawAdvocate, error) {
	return Parse(advocatesYAML)
})

// Parse decodes a YAML list of advocates.
func Parse(data []byte) ([]model.RawAdvocate, error) {
	var raw []model.RawAdvocate
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse seed advocates: %w", err)
	}
	return raw, nil
}

// Raw returns the bundled records as written in the seed file.
func Raw() []model.RawAdvocate {
	raw, err := loadRaw()
	if err != nil {
		// the file is embedded at build time, so this only fires on a broken build
		panic(err)
	}
	out := make([]model.RawAdvocate, len(raw))
	for i, r := range raw {
		r.Specialties = append([]string(nil), r.Specialties...)
		out[i] = r
	}
	return out
}

// Advocates returns a fresh, normalized copy of the bundled records.
func Advocates() []model.Advocate {
	return model.NormalizeAll(Raw())
}
