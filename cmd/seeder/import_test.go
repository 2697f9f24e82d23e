package main

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/unclebandit/advocates-backend/internal/model"
	"github.com/unclebandit/advocates-backend/internal/seed"
)

type recordingWriter struct {
	mu      sync.Mutex
	written map[string]model.Advocate
	failFor string
}

func (w *recordingWriter) Upsert(ctx context.Context, a *model.Advocate) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if a.FirstName == w.failFor {
		return errors.New("connection reset")
	}
	if w.written == nil {
		w.written = make(map[string]model.Advocate)
	}
	w.written[a.FirstName+" "+a.LastName] = *a
	return nil
}

func TestImportInProcessWritesEverySeedRecord(t *testing.T) {
	writer := &recordingWriter{}

	n, err := importInProcess(context.Background(), writer, seed.Advocates(), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 15, n)

	require.Len(t, writer.written, 15)
	john := writer.written["John Doe"]
	assert.Equal(t, "New York", john.City)
	assert.Equal(t, "10", john.YearsOfExperience)
	assert.Equal(t, "5551234567", john.PhoneNumber)
}

func TestImportInProcessDropsInvalidRecords(t *testing.T) {
	writer := &recordingWriter{}
	advocates := seed.Advocates()[:2]
	advocates[1].PhoneNumber = ""

	n, err := importInProcess(context.Background(), writer, advocates, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.Len(t, writer.written, 1)
}

func TestImportInProcessStopsRetryingWhenCancelled(t *testing.T) {
	writer := &recordingWriter{failFor: "John"}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	n, err := importInProcess(ctx, writer, seed.Advocates()[:1], zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Empty(t, writer.written)
}
