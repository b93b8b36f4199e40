package viewer

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// upperHalf is drawn with the top pixel as foreground and the bottom
// pixel as background.
const upperHalf = "▀"

// Fit returns the pixel size that fits bounds into cols x rows cells
// keeping the aspect ratio. Each cell holds two pixels vertically.
// rows <= 0 leaves the height unbounded.
func Fit(bounds image.Rectangle, cols, rows int) image.Point {
	w, h := bounds.Dx(), bounds.Dy()
	if w <= 0 || h <= 0 || cols <= 0 {
		return image.Point{}
	}

	pw := cols
	if w < pw {
		pw = w
	}
	ph := max(1, pw*h/w)
	if rows > 0 && ph > rows*2 {
		ph = rows * 2
		pw = max(1, ph*w/h)
	}
	return image.Pt(pw, ph)
}

// Render draws img into at most cols x rows terminal cells.
func Render(img image.Image, cols, rows int) string {
	return render(lipgloss.DefaultRenderer(), img, cols, rows)
}

func render(r *lipgloss.Renderer, img image.Image, cols, rows int) string {
	size := Fit(img.Bounds(), cols, rows)
	if size.X == 0 || size.Y == 0 {
		return ""
	}

	scaled := image.NewNRGBA(image.Rectangle{Max: size})
	draw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, img.Bounds(), draw.Src, nil)

	var sb strings.Builder
	for y := 0; y < size.Y; y += 2 {
		for x := 0; x < size.X; x++ {
			style := r.NewStyle().Foreground(hex(scaled.NRGBAAt(x, y)))
			if y+1 < size.Y {
				style = style.Background(hex(scaled.NRGBAAt(x, y+1)))
			}
			sb.WriteString(style.Render(upperHalf))
		}
		if y+2 < size.Y {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

// hex flattens c onto black and formats it for lipgloss.
func hex(c color.NRGBA) lipgloss.Color {
	a := uint32(c.A)
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x",
		uint32(c.R)*a/255, uint32(c.G)*a/255, uint32(c.B)*a/255))
}
