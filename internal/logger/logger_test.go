package logger_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/unclebandit/advocates-backend/internal/logger"
)

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := logger.New("loud")
	assert.Error(t, err)
}

func TestNewFileWritesJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "browse.log")

	log, err := logger.NewFile("info", path)
	require.NoError(t, err)
	log.Info("loaded advocates", zap.Int("count", 15))
	_ = log.Sync()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"msg":"loaded advocates"`)
	assert.Contains(t, string(data), `"count":15`)
}
