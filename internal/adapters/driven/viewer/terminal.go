package viewer

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/custodia-labs/retouch-cli/internal/core/domain"
	"github.com/custodia-labs/retouch-cli/internal/core/ports/driven"
)

// Ensure Terminal implements the interface.
var _ driven.Viewer = (*Terminal)(nil)

// defaultColumns is used when the output is not a terminal.
const defaultColumns = 80

// Terminal renders images as coloured half blocks on a writer.
type Terminal struct {
	out      io.Writer
	width    int
	renderer *lipgloss.Renderer
	title    lipgloss.Style
	info     lipgloss.Style

	// size reports the terminal size in cells; replaced in tests.
	size func() (cols, rows int, ok bool)
}

// NewTerminal creates a viewer writing to out. A width of zero fits the
// terminal, or 80 columns when out is not a terminal.
func NewTerminal(out io.Writer, width int) *Terminal {
	r := lipgloss.NewRenderer(out)
	return &Terminal{
		out:      out,
		width:    width,
		renderer: r,
		title:    r.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4")),
		info:     r.NewStyle().Foreground(lipgloss.Color("#6C6C6C")),
		size:     terminalSize(out),
	}
}

// Show writes the title, the image and its dimensions.
func (t *Terminal) Show(ctx context.Context, title string, img image.Image) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cols, rows := t.dimensions()
	body := render(t.renderer, img, cols, rows)
	info := domain.NewImageInfo("", img)

	_, err := fmt.Fprintf(t.out, "%s\n%s\n%s\n", t.title.Render(title), body, t.info.Render(info.String()))
	return err
}

// Close does nothing; the terminal is not owned by the viewer.
func (t *Terminal) Close() error {
	return nil
}

// dimensions returns the cell budget for the image. Three rows are kept
// for the title, the info line and the prompt.
func (t *Terminal) dimensions() (cols, rows int) {
	termCols, termRows, ok := t.size()
	switch {
	case t.width > 0:
		cols = t.width
	case ok:
		cols = termCols
	default:
		cols = defaultColumns
	}
	if ok && termRows > 3 {
		rows = termRows - 3
	}
	return cols, rows
}

func terminalSize(out io.Writer) func() (int, int, bool) {
	return func() (int, int, bool) {
		f, ok := out.(*os.File)
		if !ok || !term.IsTerminal(int(f.Fd())) {
			return 0, 0, false
		}
		cols, rows, err := term.GetSize(int(f.Fd()))
		if err != nil || cols <= 0 {
			return 0, 0, false
		}
		return cols, rows, true
	}
}
