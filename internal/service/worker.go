package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"go.uber.org/zap"

	appErrors "github.com/unclebandit/advocates-backend/internal/errors"
	"github.com/unclebandit/advocates-backend/internal/model"
)

// AdvocateWriter defines the methods the worker needs
type AdvocateWriter interface {
	Upsert(ctx context.Context, a *model.Advocate) error
}

// ImportWorker writes queued advocate records to the store.
type ImportWorker struct {
	Repo AdvocateWriter
	Log  *zap.Logger
}

// Constructor
func NewImportWorker(repo AdvocateWriter, log *zap.Logger) *ImportWorker {
	return &ImportWorker{Repo: repo, Log: log}
}

// Handle imports one advocate message. Malformed messages return an error
// wrapping appErrors.ErrInvalidMessage.
func (w *ImportWorker) Handle(ctx context.Context, body []byte) error {
	dec := json.NewDecoder(bytes.NewReader(body))
	dec.UseNumber()

	var raw model.RawAdvocate
	if err := dec.Decode(&raw); err != nil {
		return fmt.Errorf("%w: %v", appErrors.ErrInvalidMessage, err)
	}

	advocate := raw.Normalize()
	if err := validate(advocate); err != nil {
		return err
	}

	if err := w.Repo.Upsert(ctx, &advocate); err != nil {
		return fmt.Errorf("import %s %s: %w", advocate.FirstName, advocate.LastName, err)
	}

	w.Log.Info("📩 Imported advocate",
		zap.Int("id", advocate.ID),
		zap.String("first_name", advocate.FirstName),
		zap.String("last_name", advocate.LastName))
	return nil
}

func validate(a model.Advocate) error {
	var missing []string
	if strings.TrimSpace(a.FirstName) == "" {
		missing = append(missing, "firstName")
	}
	if strings.TrimSpace(a.LastName) == "" {
		missing = append(missing, "lastName")
	}
	if strings.TrimSpace(a.PhoneNumber) == "" {
		missing = append(missing, "phoneNumber")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", appErrors.ErrInvalidMessage, strings.Join(missing, ", "))
	}
	return nil
}
