// internal/handler/listing_handler.go
package handler

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"net/http"

	"go.uber.org/zap"

	"github.com/unclebandit/advocates-backend/internal/listing"
	"github.com/unclebandit/advocates-backend/internal/model"
	"github.com/unclebandit/advocates-backend/internal/service"
)

//go:embed templates/listing.html
var templates embed.FS

var listingTemplate = template.Must(
	template.New("listing.html").
		Funcs(template.FuncMap{"phone": listing.FormatPhoneNumber}).
		ParseFS(templates, "templates/listing.html"),
)

// ListingHandler renders the searchable advocate table as HTML.
type ListingHandler struct {
	Service *service.AdvocateService
	Log     *zap.Logger
}

type listingPage struct {
	Search     string
	Summary    string
	Advocates  []model.Advocate
	Empty      bool
	EmptyTitle string
	EmptyHint  string
}

// ServeListing handles GET /?q=<search>.
func (h *ListingHandler) ServeListing(w http.ResponseWriter, r *http.Request) {
	view := listing.New(h.Log)
	view.Load(r.Context(), listing.FetcherFunc(func(ctx context.Context) ([]model.Advocate, error) {
		return h.Service.ListAdvocates(ctx), nil
	}))
	view.Search(r.URL.Query().Get("q"))

	page := listingPage{
		Search:     view.SearchText(),
		Summary:    listing.ResultSummary(len(view.Filtered())),
		Advocates:  view.Filtered(),
		Empty:      view.Empty(),
		EmptyTitle: listing.EmptyTitle,
		EmptyHint:  listing.EmptyHint,
	}

	var buf bytes.Buffer
	if err := listingTemplate.Execute(&buf, page); err != nil {
		h.Log.Error("❌ failed to render listing", zap.Error(err))
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteTo(w)
}
