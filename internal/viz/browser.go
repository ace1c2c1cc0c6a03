package viz

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/trigtab/internal/emit"
	"github.com/san-kum/trigtab/internal/table"
)

const (
	defaultRows = 20
	chromeLines = 6
)

// Browser is a bubbletea model for paging through a generated table.
type Browser struct {
	t        *table.Table
	fixed    *table.Fixed
	cursor   int
	offset   int
	rows     int
	quitting bool
}

// NewBrowser shows t; fixed may be nil when no quantized column is wanted.
func NewBrowser(t *table.Table, fixed *table.Fixed) Browser {
	return Browser{t: t, fixed: fixed, rows: defaultRows}
}

func (b Browser) Cursor() int { return b.cursor }

func (b Browser) Init() tea.Cmd {
	return nil
}

func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.rows = max(1, msg.Height-chromeLines)
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			b.quitting = true
			return b, tea.Quit
		case "j", "down":
			b.move(1)
		case "k", "up":
			b.move(-1)
		case "pgdown", " ":
			b.move(b.rows)
		case "pgup":
			b.move(-b.rows)
		case "g", "home":
			b.move(-b.t.Resolution)
		case "G", "end":
			b.move(b.t.Resolution)
		}
	}
	return b, nil
}

func (b *Browser) move(delta int) {
	b.cursor = min(max(b.cursor+delta, 0), b.t.Resolution-1)
	if b.cursor < b.offset {
		b.offset = b.cursor
	}
	if b.cursor >= b.offset+b.rows {
		b.offset = b.cursor - b.rows + 1
	}
}

func (b Browser) View() string {
	if b.quitting {
		return ""
	}

	var sb strings.Builder
	sb.WriteString(TitleStyle.Render(fmt.Sprintf("trig table: %d samples over [0, π)", b.t.Resolution)))
	sb.WriteString("\n")

	header := fmt.Sprintf("%5s  %9s  %18s  %18s  %12s", "i", "deg", "sin", "cos", "float32(cos)")
	if b.fixed != nil {
		header += fmt.Sprintf("  %6s  %6s", "qsin", "qcos")
	}
	sb.WriteString(HeaderStyle.Render(header))
	sb.WriteString("\n")

	end := min(b.offset+b.rows, b.t.Resolution)
	for i := b.offset; i < end; i++ {
		row := fmt.Sprintf("%5d  %9.4f  %18s  %18s  %12s",
			i,
			b.t.Degrees(i),
			emit.FormatFloat(b.t.Sin[i], emit.DefaultPrecision),
			emit.FormatFloat(b.t.Cos[i], emit.DefaultPrecision),
			emit.FormatFloat(float32(b.t.Cos[i]), 9),
		)
		if b.fixed != nil {
			row += fmt.Sprintf("  %#6x  %#6x", uint16(b.fixed.Sin[i]), uint16(b.fixed.Cos[i]))
		}
		if i == b.cursor {
			sb.WriteString(SelectedStyle.Render(row))
		} else {
			sb.WriteString(RowStyle.Render(row))
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n")
	sb.WriteString(Subtle.Render("j/k move  pgup/pgdn page  g/G ends  q quit"))
	return sb.String()
}
