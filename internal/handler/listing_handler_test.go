package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/unclebandit/advocates-backend/internal/handler"
	"github.com/unclebandit/advocates-backend/internal/service"
)

func render(t *testing.T, target string) string {
	t.Helper()
	h := &handler.ListingHandler{
		Service: &service.AdvocateService{Log: zap.NewNop()},
		Log:     zap.NewNop(),
	}

	w := httptest.NewRecorder()
	h.ServeListing(w, httptest.NewRequest(http.MethodGet, target, nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
	return w.Body.String()
}

func TestServeListingShowsEverything(t *testing.T) {
	body := render(t, "/")

	assert.Contains(t, body, "15 advocates found")
	assert.Contains(t, body, "John Doe")
	assert.Contains(t, body, "Amanda Hall")
	assert.Contains(t, body, `href="tel:5551234567"`)
	assert.Contains(t, body, "(555) 123-4567")
	assert.Contains(t, body, "10 years")
	assert.NotContains(t, body, "No advocates found")
}

func TestServeListingFilters(t *testing.T) {
	body := render(t, "/?q=new")

	assert.Contains(t, body, "1 advocate found")
	assert.Contains(t, body, "John Doe")
	assert.NotContains(t, body, "Jane Smith")
	assert.Contains(t, body, `value="new"`)
}

func TestServeListingEmptyState(t *testing.T) {
	body := render(t, "/?q=zzz")

	assert.Contains(t, body, "0 advocates found")
	assert.Contains(t, body, "No advocates found")
	assert.Contains(t, body, "Try adjusting your search criteria")
}

func TestServeListingEscapesSearch(t *testing.T) {
	body := render(t, "/?q=%3Cscript%3E")

	assert.NotContains(t, body, "<script>")
	assert.Contains(t, body, "&lt;script&gt;")
}
