package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/unclebandit/advocates-backend/internal/errors"
	"github.com/unclebandit/advocates-backend/internal/model"
)

func TestNumericColumns(t *testing.T) {
	years, phone, err := numericColumns(&model.Advocate{YearsOfExperience: " 12 ", PhoneNumber: "(555) 123-4567"})
	require.NoError(t, err)
	assert.Equal(t, int64(12), years)
	assert.Equal(t, int64(5551234567), phone)
}

func TestNumericColumnsRejectsText(t *testing.T) {
	_, _, err := numericColumns(&model.Advocate{YearsOfExperience: "ten", PhoneNumber: "5551234567"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidMessage)

	_, _, err = numericColumns(&model.Advocate{YearsOfExperience: "10", PhoneNumber: "n/a"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidMessage)
}

func TestClassify(t *testing.T) {
	queryErr := classify("list advocates", &pq.Error{Code: "42P01", Message: `relation "advocates" does not exist`})
	assert.Equal(t, appErrors.KindQuery, appErrors.KindOf(queryErr))

	connErr := classify("list advocates", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"))
	assert.Equal(t, appErrors.KindConnectivity, appErrors.KindOf(connErr))
}

func TestListAllWithoutDatabase(t *testing.T) {
	repo := &AdvocateRepository{}
	_, err := repo.ListAll(context.Background())
	assert.True(t, appErrors.IsDataSourceUnavailable(err))
	assert.Equal(t, appErrors.KindConnectivity, appErrors.KindOf(err))
}
