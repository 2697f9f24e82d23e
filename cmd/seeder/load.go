package main

import (
	"fmt"
	"os"

	"github.com/unclebandit/advocates-backend/internal/model"
	"github.com/unclebandit/advocates-backend/internal/seed"
)

// loadAdvocates reads advocates from path, or returns the bundled list when path is empty.
func loadAdvocates(path string) ([]model.Advocate, error) {
	if path == "" {
		return seed.Advocates(), nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	raw, err := seed.Parse(content)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return model.NormalizeAll(raw), nil
}
