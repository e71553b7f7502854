package render

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/quietloop/artstream/internal/model"
)

// Styles for the terminal output.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#F8B500"))

	captionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C757D"))

	artStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A8DADC"))

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#4ECDC4")).
			Padding(0, 2)

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#4ECDC4"))

	goodbyeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#95E1A3"))
)

// clearScreen is the ANSI erase-display + cursor-home sequence.
const clearScreen = "\033[2J\033[H"

// Terminal paints records to a terminal as bordered blocks.
//
// Terminal satisfies the stream.Renderer interface. It writes to any
// io.Writer, which keeps it testable; in production the writer is stdout.
type Terminal struct {
	out io.Writer
}

// NewTerminal creates a Terminal writing to out.
func NewTerminal(out io.Writer) *Terminal {
	return &Terminal{out: out}
}

// Display clears the screen and paints one record.
func (t *Terminal) Display(rec *model.Record) {
	fmt.Fprint(t.out, clearScreen)
	fmt.Fprintln(t.out, t.Block(rec))
}

// Clear erases the screen and homes the cursor.
func (t *Terminal) Clear() {
	fmt.Fprint(t.out, clearScreen)
}

// Block renders a record as a bordered block without writing it.
//
// Layout:
//
//	╭──────────────╮
//	│  Cat         │
//	│              │
//	│  /\_/\       │
//	│  ( o.o )     │
//	│              │
//	│  3x2 · pets  │
//	╰──────────────╯
func (t *Terminal) Block(rec *model.Record) string {
	caption := captionStyle.Render(rec.Dimensions + " · " + rec.Category)
	body := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(rec.Title),
		"",
		artStyle.Render(rec.Art),
		"",
		caption,
	)
	return boxStyle.Render(body)
}

// Banner writes the startup banner shown before the stream begins.
func (t *Terminal) Banner(entries int, interval time.Duration) {
	fmt.Fprintln(t.out, bannerStyle.Render("artstream"))
	fmt.Fprintln(t.out, captionStyle.Render(fmt.Sprintf("%d entries loaded · new art every %s · ctrl-c to quit", entries, interval)))
}

// Goodbye writes the shutdown message. The caller clears the screen first
// so no partially-rendered output is left behind.
func (t *Terminal) Goodbye() {
	fmt.Fprintln(t.out, goodbyeStyle.Render("Goodbye!"))
}
