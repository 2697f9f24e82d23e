// Package tui is the terminal rendition of the advocate listing: a search
// box that refilters on every keystroke above a table of results.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/unclebandit/advocates-backend/internal/listing"
	"github.com/unclebandit/advocates-backend/internal/model"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(lipgloss.Color("#265b4e")).Padding(0, 1)
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#97b5a9"))
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#334155"))
	countStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f766e"))
	termStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#0f766e"))
	emptyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b"))
	helpStyle     = lipgloss.NewStyle().Faint(true)
)

type column struct {
	title string
	width int
}

var columns = []column{
	{"NAME", 20},
	{"LOCATION", 15},
	{"CREDENTIALS", 12},
	{"SPECIALTIES", 48},
	{"EXPERIENCE", 11},
	{"CONTACT", 15},
}

// loadedMsg carries the result of the initial fetch back to Update.
type loadedMsg struct {
	advocates []model.Advocate
	err       error
}

// Model is the bubbletea model for the listing.
type Model struct {
	listing *listing.Listing
	fetcher listing.Fetcher
	input   textinput.Model
	loaded  bool
	log     *zap.Logger
}

func NewModel(fetcher listing.Fetcher, log *zap.Logger) Model {
	if log == nil {
		log = zap.NewNop()
	}
	input := textinput.New()
	input.Placeholder = "Search by name, city, degree, or specialty..."
	input.Prompt = "Search Advocates: "
	input.CharLimit = 128
	input.Focus()

	return Model{
		listing: listing.New(log),
		fetcher: fetcher,
		input:   input,
		log:     log,
	}
}

// Init issues the one fetch for the lifetime of the view.
func (m Model) Init() tea.Cmd {
	fetcher := m.fetcher
	return func() tea.Msg {
		advocates, err := fetcher.FetchAdvocates(context.Background())
		return loadedMsg{advocates: advocates, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		m.listing.Load(context.Background(), listing.FetcherFunc(func(context.Context) ([]model.Advocate, error) {
			return msg.advocates, msg.err
		}))
		m.input.SetValue("")
		m.loaded = true
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC:
			return m, tea.Quit
		case tea.KeyEsc:
			m.input.SetValue("")
			m.listing.Reset()
			return m, nil
		}

		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		if after := m.input.Value(); after != before {
			m.listing.Search(after)
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// Listing exposes the underlying state, mainly for tests.
func (m Model) Listing() *listing.Listing {
	return m.listing
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Solace Advocates"))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("Find experienced healthcare advocates to help navigate your care"))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	b.WriteString("Searching for: " + termStyle.Render(m.listing.SearchText()))
	b.WriteString("\n\n")

	if !m.loaded {
		return b.String()
	}

	filtered := m.listing.Filtered()
	b.WriteString(countStyle.Render(listing.ResultSummary(len(filtered))))
	b.WriteString("\n\n")

	header := make([]string, len(columns))
	for i, c := range columns {
		header[i] = headerStyle.Render(cell(c.title, c.width))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteString("\n")

	for _, a := range filtered {
		b.WriteString(renderRow(a))
		b.WriteString("\n")
	}

	if len(filtered) == 0 {
		b.WriteString("\n")
		b.WriteString(emptyStyle.Render(listing.EmptyTitle))
		b.WriteString("\n")
		b.WriteString(emptyStyle.Render(listing.EmptyHint))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("esc reset search • ctrl+c quit"))
	return b.String()
}

func renderRow(a model.Advocate) string {
	values := []string{
		a.FirstName + " " + a.LastName,
		a.City,
		a.Degree,
		strings.Join(a.Specialties, ", "),
		fmt.Sprintf("%s years", a.YearsOfExperience),
		listing.FormatPhoneNumber(a.PhoneNumber),
	}
	cells := make([]string, len(columns))
	for i, c := range columns {
		cells[i] = cell(values[i], c.width)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

// cell pads or truncates s to width, keeping one column of gutter.
func cell(s string, width int) string {
	return lipgloss.NewStyle().Width(width).MaxWidth(width).PaddingRight(1).Render(s)
}
