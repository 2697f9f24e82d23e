package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appErrors "github.com/unclebandit/advocates-backend/internal/errors"
	"github.com/unclebandit/advocates-backend/internal/service"
)

func TestImportWorkerHandle(t *testing.T) {
	repo := &MockAdvocateRepo{}
	worker := service.NewImportWorker(repo, zap.NewNop())

	body := []byte(`{"firstName":"John","lastName":"Doe","city":"New York","degree":"MD",
		"specialties":["Bipolar"],"yearsOfExperience":10,"phoneNumber":5551234567}`)

	require.NoError(t, worker.Handle(context.Background(), body))
	require.Len(t, repo.advocates, 1)

	got := repo.advocates[0]
	assert.Equal(t, "10", got.YearsOfExperience)
	assert.Equal(t, "5551234567", got.PhoneNumber)
	assert.Equal(t, []string{"Bipolar"}, got.Specialties)
}

func TestImportWorkerRejectsMalformedJSON(t *testing.T) {
	repo := &MockAdvocateRepo{}
	worker := service.NewImportWorker(repo, zap.NewNop())

	err := worker.Handle(context.Background(), []byte(`{"firstName":`))

	assert.ErrorIs(t, err, appErrors.ErrInvalidMessage)
	assert.Empty(t, repo.advocates)
}

func TestImportWorkerRejectsMissingFields(t *testing.T) {
	repo := &MockAdvocateRepo{}
	worker := service.NewImportWorker(repo, zap.NewNop())

	err := worker.Handle(context.Background(), []byte(`{"firstName":"John","yearsOfExperience":3}`))

	assert.ErrorIs(t, err, appErrors.ErrInvalidMessage)
	assert.Contains(t, err.Error(), "lastName")
	assert.Contains(t, err.Error(), "phoneNumber")
}

func TestImportWorkerStoreErrorIsRetryable(t *testing.T) {
	repo := &MockAdvocateRepo{upsertErr: appErrors.NewConnectivityError("upsert advocate", errors.New("connection refused"))}
	worker := service.NewImportWorker(repo, zap.NewNop())

	err := worker.Handle(context.Background(), []byte(`{"firstName":"John","lastName":"Doe","phoneNumber":"5551234567","yearsOfExperience":"10"}`))

	assert.Error(t, err)
	assert.NotErrorIs(t, err, appErrors.ErrInvalidMessage)
	assert.True(t, appErrors.IsDataSourceUnavailable(err))
}
