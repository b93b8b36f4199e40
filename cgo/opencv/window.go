//go:build cgo && opencv

package opencv

import (
	"context"
	"fmt"
	"image"
	"sync"
	"time"

	"gocv.io/x/gocv"

	"github.com/custodia-labs/retouch-cli/internal/core/ports/driven"
)

// Ensure Window implements the interface.
var _ driven.WaitingViewer = (*Window)(nil)

// pumpInterval is the WaitKey delay used while waiting.
const pumpInterval = 30 * time.Millisecond

// Window shows images in a native OpenCV window, created on first use.
type Window struct {
	mu  sync.Mutex
	win *gocv.Window
}

// NewWindow creates a window viewer.
func NewWindow() *Window {
	return &Window{}
}

// Show displays img in a window named after title.
func (w *Window) Show(ctx context.Context, title string, img image.Image) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	mat, err := toMat(img)
	if err != nil {
		return fmt.Errorf("converting image: %w", err)
	}
	defer mat.Close()

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.win == nil {
		w.win = gocv.NewWindow(title)
	}
	w.win.SetWindowTitle(title)
	w.win.IMShow(mat)
	w.win.WaitKey(1)
	return nil
}

// Wait keeps the window responsive for d, like waitKey(d).
func (w *Window) Wait(ctx context.Context, d time.Duration) error {
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if err := ctx.Err(); err != nil {
			return err
		}
		w.mu.Lock()
		if w.win != nil {
			w.win.WaitKey(int(pumpInterval / time.Millisecond))
		}
		w.mu.Unlock()
		if w.win == nil {
			time.Sleep(pumpInterval)
		}
	}
	return nil
}

// Close destroys the window.
func (w *Window) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.win == nil {
		return nil
	}
	err := w.win.Close()
	w.win = nil
	return err
}
