// Package browse is an interactive list of the composed route table,
// filtered through the console's search box.
//
// The list never inspects the search input directly: it subscribes to the
// box's update channel like any other list view and recomputes its visible
// rows on every emission, starting with the mount-time "".
package browse

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/jpl-au/juggler/internal/route"
	"github.com/jpl-au/juggler/internal/searchbox"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	urlStyle      = lipgloss.NewStyle()
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	trailStyle    = lipgloss.NewStyle().Faint(true)
	redirectStyle = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("244"))
	helpStyle     = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

// rows is the list state written by the update subscription. It lives
// behind a pointer because bubbletea passes the model by value.
type rows struct {
	query   string
	visible []route.Entry
	cursor  int
	offset  int // first visible row when the list is taller than the window
}

// follow scrolls so the cursor stays inside a window of page rows. A page
// of zero shows every row.
func (r *rows) follow(page int) {
	if page <= 0 {
		r.offset = 0
		return
	}
	if r.cursor < r.offset {
		r.offset = r.cursor
	}
	if r.cursor >= r.offset+page {
		r.offset = r.cursor - page + 1
	}
	r.offset = max(min(r.offset, len(r.visible)-page), 0)
}

// Model is the bubbletea model for the browse view.
type Model struct {
	title    string
	entries  []route.Entry
	search   searchbox.Model
	rows     *rows
	dispose  func()
	height   int
	selected string
}

// New builds the view over entries and subscribes it to box.
func New(title string, entries []route.Entry, box *searchbox.Box) Model {
	r := &rows{}
	dispose := box.Update().Subscribe(func(q string) error {
		r.query = q
		r.visible = Filter(entries, q)
		r.cursor = min(r.cursor, max(len(r.visible)-1, 0))
		return nil
	})
	return Model{
		title:   title,
		entries: entries,
		search:  searchbox.NewModel(box, "filter routes"),
		rows:    r,
		dispose: dispose,
	}
}

// Filter keeps entries whose URL, redirect target or breadcrumb trail
// contains q, ignoring case. The root row is never listed. An empty q keeps everything.
func Filter(entries []route.Entry, q string) []route.Entry {
	q = strings.ToLower(q)
	out := make([]route.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Depth == 0 {
			continue
		}
		if q == "" ||
			strings.Contains(strings.ToLower(e.URL), q) ||
			strings.Contains(strings.ToLower(e.RedirectTo), q) ||
			strings.Contains(strings.ToLower(e.Trail()), q) {
			out = append(out, e)
		}
	}
	return out
}

// Init mounts the search box.
func (m Model) Init() tea.Cmd {
	return m.search.Init()
}

// Update handles list navigation and forwards everything else to the
// search input.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.rows.follow(m.page())
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.close()
			return m, tea.Quit
		case "enter":
			if len(m.rows.visible) > 0 {
				m.selected = m.rows.visible[m.rows.cursor].URL
			}
			m.close()
			return m, tea.Quit
		case "up", "ctrl+p":
			if m.rows.cursor > 0 {
				m.rows.cursor--
			}
			m.rows.follow(m.page())
			return m, nil
		case "down", "ctrl+n":
			if m.rows.cursor < len(m.rows.visible)-1 {
				m.rows.cursor++
			}
			m.rows.follow(m.page())
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	m.rows.follow(m.page())
	return m, cmd
}

// page is the number of list rows that fit below the header and above the
// help line, or zero when the height is unknown.
func (m Model) page() int {
	if m.height > 8 {
		return m.height - 8
	}
	return 0
}

func (m Model) close() {
	m.dispose()
	m.search.Box().Destroy()
}

// View renders the title, search input and visible rows.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.search.View())
	b.WriteString("\n\n")

	visible := m.rows.visible
	start, end := 0, len(visible)
	if page := m.page(); page > 0 && end > page {
		start = min(m.rows.offset, end-page)
		end = start + page
	}
	for i := start; i < end; i++ {
		e := visible[i]
		style := urlStyle
		marker := "  "
		if i == m.rows.cursor {
			style = selectedStyle
			marker = "> "
		}
		line := marker + style.Render(indent(e)+e.URL)
		if e.RedirectTo != "" {
			line += " " + redirectStyle.Render("→ "+e.RedirectTo)
		} else if trail := e.Trail(); trail != "" {
			line += "  " + trailStyle.Render(trail)
		}
		b.WriteString(line + "\n")
	}
	if len(visible) == 0 {
		b.WriteString(trailStyle.Render(fmt.Sprintf("no routes match %q", m.rows.query)) + "\n")
	}

	b.WriteString(helpStyle.Render(fmt.Sprintf("%d/%d routes · ↑/↓ move · enter select · esc quit", len(visible), len(Filter(m.entries, "")))))
	return b.String()
}

func indent(e route.Entry) string {
	return strings.Repeat("  ", max(e.Depth-1, 0))
}

// Query returns the last filter text received from the search box.
func (m Model) Query() string { return m.rows.query }

// Visible returns the rows currently shown.
func (m Model) Visible() []route.Entry { return m.rows.visible }

// Selected returns the URL chosen with enter, or "" if the view was dismissed.
func (m Model) Selected() string { return m.selected }

// Run starts the view full-screen and returns the selected URL.
func Run(title string, entries []route.Entry, box *searchbox.Box) (string, error) {
	final, err := tea.NewProgram(New(title, entries, box), tea.WithAltScreen()).Run()
	if err != nil {
		return "", fmt.Errorf("browse: %w", err)
	}
	if m, ok := final.(Model); ok {
		return m.Selected(), nil
	}
	return "", nil
}
