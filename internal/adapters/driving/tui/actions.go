package tui

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/retouch-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/retouch-cli/internal/adapters/driving/tui/views/form"
	"github.com/custodia-labs/retouch-cli/internal/core/domain"
)

// formFor returns the hint and fields of action, pre-filled from the
// current image where that helps.
func (a *App) formFor(action messages.Action) (string, []form.Spec) {
	w, h := 0, 0
	if info, err := a.ports.Session.Info(); err == nil {
		w, h = info.Width, info.Height
	}

	switch action {
	case messages.ActionLoad:
		return "Path of the image to edit", []form.Spec{
			{Name: "path", Label: "Path", Value: a.defaultPath()},
		}
	case messages.ActionFilter:
		return "1 Grayscale, 2 Gaussian Blur, 3 Canny Edge Detection, 4 Sharpen", []form.Spec{
			{Name: "filter", Label: "Filter", Placeholder: "1-4"},
		}
	case messages.ActionResize:
		return "New size in pixels", []form.Spec{
			{Name: "width", Label: "Width", Value: itoa(w)},
			{Name: "height", Label: "Height", Value: itoa(h)},
		}
	case messages.ActionRotate:
		return "Degrees, counter-clockwise about the centre", []form.Spec{
			{Name: "angle", Label: "Angle", Placeholder: "90"},
		}
	case messages.ActionAdjust:
		return "out = in × contrast + brightness", []form.Spec{
			{Name: "contrast", Label: "Contrast", Value: "1.0"},
			{Name: "brightness", Label: "Brightness", Value: "0"},
		}
	case messages.ActionCrop:
		return "Rectangle inside the image", []form.Spec{
			{Name: "x", Label: "X", Value: "0"},
			{Name: "y", Label: "Y", Value: "0"},
			{Name: "width", Label: "Width", Value: itoa(w)},
			{Name: "height", Label: "Height", Value: itoa(h)},
		}
	case messages.ActionSave:
		return "The extension selects the format", []form.Spec{
			{Name: "path", Label: "Path", Placeholder: "output.png"},
		}
	default:
		return "", nil
	}
}

// run parses values and returns a command performing action on the session.
func (a *App) run(action messages.Action, values map[string]string) tea.Cmd {
	op, err := a.operation(action, values)
	if err != nil {
		return func() tea.Msg {
			return messages.OperationCompleted{Action: action, Err: err}
		}
	}
	return func() tea.Msg {
		summary, err := op()
		return messages.OperationCompleted{Action: action, Summary: summary, Err: err}
	}
}

// operation binds the parsed parameters of action to a session call.
//
//nolint:gocyclo // one case per action
func (a *App) operation(action messages.Action, values map[string]string) (func() (string, error), error) {
	ctx := a.ctx
	session := a.ports.Session
	var p parser

	switch action {
	case messages.ActionLoad:
		path := p.pathField(values, "path")
		if p.err != nil {
			return nil, p.err
		}
		return func() (string, error) {
			return "Loaded " + path, session.Load(ctx, path)
		}, nil

	case messages.ActionFilter:
		kind := p.filterField(values, "filter")
		if p.err != nil {
			return nil, p.err
		}
		params := a.filterParams()
		return func() (string, error) {
			return "Applied " + kind.Description(), session.ApplyFilter(ctx, kind, params)
		}, nil

	case messages.ActionResize:
		w, h := p.intField(values, "width"), p.intField(values, "height")
		if p.err != nil {
			return nil, p.err
		}
		return func() (string, error) {
			return fmt.Sprintf("Resized to %dx%d", w, h), session.Resize(ctx, w, h)
		}, nil

	case messages.ActionRotate:
		angle := p.floatField(values, "angle")
		if p.err != nil {
			return nil, p.err
		}
		return func() (string, error) {
			return fmt.Sprintf("Rotated by %g°", angle), session.Rotate(ctx, angle)
		}, nil

	case messages.ActionAdjust:
		contrast, brightness := p.floatField(values, "contrast"), p.floatField(values, "brightness")
		if p.err != nil {
			return nil, p.err
		}
		return func() (string, error) {
			return fmt.Sprintf("Adjusted contrast ×%g brightness %+g", contrast, brightness),
				session.AdjustBrightnessContrast(ctx, contrast, brightness)
		}, nil

	case messages.ActionCrop:
		x, y := p.intField(values, "x"), p.intField(values, "y")
		w, h := p.intField(values, "width"), p.intField(values, "height")
		if p.err != nil {
			return nil, p.err
		}
		return func() (string, error) {
			return fmt.Sprintf("Cropped to %dx%d", w, h), session.Crop(ctx, x, y, w, h)
		}, nil

	case messages.ActionSave:
		path := p.pathField(values, "path")
		if p.err != nil {
			return nil, p.err
		}
		return func() (string, error) {
			return "Image saved as " + path, session.Save(ctx, path)
		}, nil

	case messages.ActionReset:
		return func() (string, error) {
			return "Reset to original", session.Reset(ctx)
		}, nil

	default:
		return nil, fmt.Errorf("%w: action %q", domain.ErrInvalidInput, action)
	}
}

// defaultPath is the loaded file, or the configured default image.
func (a *App) defaultPath() string {
	if a.source != "" {
		return a.source
	}
	if a.ports.Settings != nil {
		if s, err := a.ports.Settings.Get(); err == nil {
			return s.Input.DefaultImage
		}
	}
	return ""
}

// filterParams reads the configured filter parameters, falling back to
// the defaults.
func (a *App) filterParams() domain.FilterParams {
	if a.ports.Settings != nil {
		if s, err := a.ports.Settings.Get(); err == nil {
			return s.Filter
		}
	}
	return domain.DefaultFilterParams()
}

// parser records the first parse failure.
type parser struct {
	err error
}

func (p *parser) fail(field, value string) {
	if p.err == nil {
		p.err = fmt.Errorf("%w: %s %q", domain.ErrInvalidInput, field, value)
	}
}

func (p *parser) pathField(values map[string]string, field string) string {
	v := values[field]
	if v == "" {
		p.fail(field, v)
	}
	return v
}

func (p *parser) intField(values map[string]string, field string) int {
	n, err := strconv.Atoi(values[field])
	if err != nil {
		p.fail(field, values[field])
	}
	return n
}

func (p *parser) floatField(values map[string]string, field string) float64 {
	f, err := strconv.ParseFloat(values[field], 64)
	if err != nil {
		p.fail(field, values[field])
	}
	return f
}

// filterField accepts the menu number or the short name.
func (p *parser) filterField(values map[string]string, field string) domain.FilterKind {
	v := values[field]
	if n, err := strconv.Atoi(v); err == nil {
		kind := domain.FilterKind(n)
		if kind.IsValid() {
			return kind
		}
	} else if kind, err := domain.ParseFilterKind(v); err == nil {
		return kind
	}
	if p.err == nil {
		p.err = fmt.Errorf("%w: %q", domain.ErrInvalidFilter, v)
	}
	return 0
}

func itoa(n int) string {
	if n <= 0 {
		return ""
	}
	return strconv.Itoa(n)
}
