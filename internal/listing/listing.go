// Package listing holds the state behind the advocate listing: the list as
// fetched, the current search text and the filtered view derived from both.
package listing

import (
	"context"

	"go.uber.org/zap"

	"github.com/unclebandit/advocates-backend/internal/model"
	"github.com/unclebandit/advocates-backend/internal/seed"
)

// Fetcher loads the full advocate list, normalized.
type Fetcher interface {
	FetchAdvocates(ctx context.Context) ([]model.Advocate, error)
}

// FetcherFunc adapts a function to Fetcher.
type FetcherFunc func(ctx context.Context) ([]model.Advocate, error)

func (f FetcherFunc) FetchAdvocates(ctx context.Context) ([]model.Advocate, error) {
	return f(ctx)
}

// Listing is not safe for concurrent use; each view owns one.
type Listing struct {
	all      []model.Advocate
	filtered []model.Advocate
	search   string
	log      *zap.Logger
}

func New(log *zap.Logger) *Listing {
	if log == nil {
		log = zap.NewNop()
	}
	return &Listing{log: log}
}

// Load fetches the full list once. If the fetch fails the bundled seed list
// is used instead. The search text is cleared. It reports whether the
// fallback was taken.
func (l *Listing) Load(ctx context.Context, f Fetcher) (usedFallback bool) {
	l.log.Debug("fetching advocates")

	advocates, err := f.FetchAdvocates(ctx)
	if err != nil {
		l.log.Warn("Error fetching advocates, using bundled seed data", zap.Error(err))
		advocates = seed.Advocates()
		usedFallback = true
	}
	l.SetAdvocates(advocates)
	return usedFallback
}

// SetAdvocates replaces the full list and resets the view.
func (l *Listing) SetAdvocates(advocates []model.Advocate) {
	if advocates == nil {
		advocates = []model.Advocate{}
	}
	l.all = advocates
	l.Reset()
}

// Search recomputes the filtered list for s and returns a copy of it.
func (l *Listing) Search(s string) []model.Advocate {
	l.search = s
	if s == "" {
		l.filtered = l.all
	} else {
		l.filtered = Filter(l.all, s)
	}
	l.log.Debug("filtering advocates", zap.String("search", s), zap.Int("matches", len(l.filtered)))
	return clone(l.filtered)
}

// Reset clears the search text and restores the full list.
func (l *Listing) Reset() {
	l.search = ""
	l.filtered = l.all
}

// All and Filtered return copies; callers may modify them freely.
func (l *Listing) All() []model.Advocate      { return clone(l.all) }
func (l *Listing) Filtered() []model.Advocate { return clone(l.filtered) }
func (l *Listing) SearchText() string         { return l.search }

func clone(advocates []model.Advocate) []model.Advocate {
	out := make([]model.Advocate, len(advocates))
	for i, a := range advocates {
		a.Specialties = append([]string(nil), a.Specialties...)
		out[i] = a
	}
	return out
}

// Empty reports whether the empty-state message should be shown.
func (l *Listing) Empty() bool {
	return len(l.filtered) == 0
}
