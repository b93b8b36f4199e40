// Package preview renders the working image of the session.
package preview

import (
	"strings"

	"github.com/custodia-labs/retouch-cli/internal/adapters/driven/viewer"
	"github.com/custodia-labs/retouch-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/retouch-cli/internal/core/domain"
	"github.com/custodia-labs/retouch-cli/internal/core/ports/driving"
)

// headerLines is the number of lines above the image.
const headerLines = 3

// View draws the working image with half-block cells.
type View struct {
	styles  *styles.Styles
	session driving.SessionService
	width   int
	height  int
}

// NewView creates a preview of session.
func NewView(s *styles.Styles, session driving.SessionService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &View{styles: s, session: session, width: 40, height: 20}
}

// View renders the preview.
func (v *View) View() string {
	var b strings.Builder
	b.WriteString(v.styles.Subtitle.Render("Preview"))
	b.WriteString("\n")

	info, err := v.session.Info()
	if err != nil {
		b.WriteString(v.styles.Muted.Render("No image loaded"))
		return b.String()
	}

	b.WriteString(v.styles.Normal.Render(info.String()))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(domain.Pipeline(v.session.Operations())))
	b.WriteString("\n")

	if img := v.session.Current(); img != nil {
		b.WriteString(viewer.Render(img, v.width, max(v.height-headerLines, 1)))
	}
	return b.String()
}

// SetDimensions sets the cell area available to the preview.
func (v *View) SetDimensions(width, height int) {
	v.width = max(width, 1)
	v.height = max(height, 1)
}

// Dimensions returns the cell area available to the preview.
func (v *View) Dimensions() (width, height int) {
	return v.width, v.height
}
