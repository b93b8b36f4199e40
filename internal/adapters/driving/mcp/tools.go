package mcp

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/retouch-cli/internal/core/domain"
)

// defaultHistoryLimit is used when list_history is called without a limit.
const defaultHistoryLimit = 20

// PathInput names an image file.
type PathInput struct {
	Path string `json:"path" jsonschema:"path of the image file; the extension selects the format on save"`
}

// FilterInput selects a filter and optionally overrides its parameters.
type FilterInput struct {
	Filter     string  `json:"filter" jsonschema:"grayscale, blur, edge-detect or sharpen (or 1-4)"`
	BlurKernel int     `json:"blur_kernel,omitempty" jsonschema:"odd Gaussian kernel size (default 7)"`
	BlurSigma  float64 `json:"blur_sigma,omitempty" jsonschema:"Gaussian sigma (default 5)"`
	CannyLow   float64 `json:"canny_low,omitempty" jsonschema:"lower Canny threshold (default 50)"`
	CannyHigh  float64 `json:"canny_high,omitempty" jsonschema:"upper Canny threshold (default 150)"`
}

// ResizeInput is the target size in pixels.
type ResizeInput struct {
	Width  int `json:"width" jsonschema:"new width in pixels"`
	Height int `json:"height" jsonschema:"new height in pixels"`
}

// RotateInput is the rotation angle.
type RotateInput struct {
	Angle float64 `json:"angle" jsonschema:"degrees, counter-clockwise about the centre; the canvas size is kept"`
}

// AdjustInput are the coefficients of out = in*contrast + brightness.
type AdjustInput struct {
	Contrast   float64 `json:"contrast" jsonschema:"multiplier applied to every channel"`
	Brightness float64 `json:"brightness" jsonschema:"offset added after the multiplier"`
}

// CropInput is a rectangle inside the working image.
type CropInput struct {
	X      int `json:"x" jsonschema:"left edge"`
	Y      int `json:"y" jsonschema:"top edge"`
	Width  int `json:"width" jsonschema:"rectangle width"`
	Height int `json:"height" jsonschema:"rectangle height"`
}

// EmptyInput is used by tools without parameters.
type EmptyInput struct{}

// HistoryInput limits the number of journal entries.
type HistoryInput struct {
	Limit int `json:"limit,omitempty" jsonschema:"maximum number of entries (default 20)"`
}

// ImageOutput describes the working image after a tool call.
type ImageOutput struct {
	Path       string   `json:"path"`
	Width      int      `json:"width"`
	Height     int      `json:"height"`
	Channels   int      `json:"channels"`
	Operations []string `json:"operations"`
	Pipeline   string   `json:"pipeline"`
}

// SaveOutput reports a written file.
type SaveOutput struct {
	Path     string `json:"path"`
	Pipeline string `json:"pipeline"`
}

// HistoryOutput lists journal entries, newest first.
type HistoryOutput struct {
	Entries []domain.HistoryEntry `json:"entries"`
	Count   int                   `json:"count"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "load_image",
		Description: "Load an image file into the editing session, replacing the current image and its original",
	}, s.handleLoad)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "apply_filter",
		Description: "Apply grayscale, Gaussian blur, Canny edge detection or sharpen to the working image",
	}, s.handleFilter)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "resize_image",
		Description: "Resample the working image to an exact size",
	}, s.handleResize)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "rotate_image",
		Description: "Rotate the working image about its centre, keeping the canvas size",
	}, s.handleRotate)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "adjust_brightness_contrast",
		Description: "Compute in*contrast + brightness for every channel, clamped to 0..255",
	}, s.handleAdjust)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "crop_image",
		Description: "Replace the working image with a rectangle inside it",
	}, s.handleCrop)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "save_image",
		Description: "Write the working image; the extension selects jpg, png, gif, tif or bmp",
	}, s.handleSave)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "reset_image",
		Description: "Discard every edit and restore the image as loaded",
	}, s.handleReset)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "image_info",
		Description: "Describe the working image and the edits applied to it",
	}, s.handleInfo)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "display_image",
		Description: "Return the working image as PNG",
	}, s.handleDisplay)

	if s.ports.History != nil {
		mcp.AddTool(s.server, &mcp.Tool{
			Name:        "list_history",
			Description: "List recently loaded and saved images, newest first",
		}, s.handleHistory)
	}
}

func (s *Server) handleLoad(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PathInput,
) (*mcp.CallToolResult, ImageOutput, error) {
	if err := s.ports.Session.Load(ctx, input.Path); err != nil {
		return nil, ImageOutput{}, err
	}
	return s.describe()
}

func (s *Server) handleFilter(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input FilterInput,
) (*mcp.CallToolResult, ImageOutput, error) {
	kind, err := parseFilter(input.Filter)
	if err != nil {
		return nil, ImageOutput{}, err
	}

	params := s.filterParams()
	if input.BlurKernel > 0 {
		params.BlurKernel = input.BlurKernel
	}
	if input.BlurSigma > 0 {
		params.BlurSigma = input.BlurSigma
	}
	if input.CannyLow > 0 {
		params.CannyLow = input.CannyLow
	}
	if input.CannyHigh > 0 {
		params.CannyHigh = input.CannyHigh
	}

	if err := s.ports.Session.ApplyFilter(ctx, kind, params); err != nil {
		return nil, ImageOutput{}, err
	}
	return s.describe()
}

func (s *Server) handleResize(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input ResizeInput,
) (*mcp.CallToolResult, ImageOutput, error) {
	if err := s.ports.Session.Resize(ctx, input.Width, input.Height); err != nil {
		return nil, ImageOutput{}, err
	}
	return s.describe()
}

func (s *Server) handleRotate(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input RotateInput,
) (*mcp.CallToolResult, ImageOutput, error) {
	if err := s.ports.Session.Rotate(ctx, input.Angle); err != nil {
		return nil, ImageOutput{}, err
	}
	return s.describe()
}

func (s *Server) handleAdjust(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input AdjustInput,
) (*mcp.CallToolResult, ImageOutput, error) {
	if err := s.ports.Session.AdjustBrightnessContrast(ctx, input.Contrast, input.Brightness); err != nil {
		return nil, ImageOutput{}, err
	}
	return s.describe()
}

func (s *Server) handleCrop(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input CropInput,
) (*mcp.CallToolResult, ImageOutput, error) {
	if err := s.ports.Session.Crop(ctx, input.X, input.Y, input.Width, input.Height); err != nil {
		return nil, ImageOutput{}, err
	}
	return s.describe()
}

func (s *Server) handleSave(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input PathInput,
) (*mcp.CallToolResult, SaveOutput, error) {
	if err := s.ports.Session.Save(ctx, input.Path); err != nil {
		return nil, SaveOutput{}, err
	}
	return nil, SaveOutput{
		Path:     input.Path,
		Pipeline: domain.Pipeline(s.ports.Session.Operations()),
	}, nil
}

func (s *Server) handleReset(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, ImageOutput, error) {
	if err := s.ports.Session.Reset(ctx); err != nil {
		return nil, ImageOutput{}, err
	}
	return s.describe()
}

func (s *Server) handleInfo(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, ImageOutput, error) {
	return s.describe()
}

// handleDisplay returns the working image as PNG image content.
func (s *Server) handleDisplay(
	_ context.Context,
	_ *mcp.CallToolRequest,
	_ EmptyInput,
) (*mcp.CallToolResult, ImageOutput, error) {
	img := s.ports.Session.Current()
	if img == nil {
		return nil, ImageOutput{}, domain.ErrNoImage
	}

	data, err := encodePNG(img)
	if err != nil {
		return nil, ImageOutput{}, err
	}

	_, output, err := s.describe()
	if err != nil {
		return nil, ImageOutput{}, err
	}

	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.ImageContent{
			Data:     data,
			MIMEType: pngMIME,
		}},
	}, output, nil
}

func (s *Server) handleHistory(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input HistoryInput,
) (*mcp.CallToolResult, HistoryOutput, error) {
	limit := input.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}

	entries, err := s.ports.History.List(ctx, limit)
	if err != nil {
		return nil, HistoryOutput{}, err
	}
	if entries == nil {
		entries = []domain.HistoryEntry{}
	}
	return nil, HistoryOutput{Entries: entries, Count: len(entries)}, nil
}

// describe reports the working image.
func (s *Server) describe() (*mcp.CallToolResult, ImageOutput, error) {
	info, err := s.ports.Session.Info()
	if err != nil {
		return nil, ImageOutput{}, err
	}

	ops := s.ports.Session.Operations()
	names := make([]string, len(ops))
	for i, op := range ops {
		names[i] = op.String()
	}

	return nil, ImageOutput{
		Path:       info.Path,
		Width:      info.Width,
		Height:     info.Height,
		Channels:   info.Channels,
		Operations: names,
		Pipeline:   domain.Pipeline(ops),
	}, nil
}

// filterParams returns the configured filter parameters.
func (s *Server) filterParams() domain.FilterParams {
	if s.ports.Settings != nil {
		if settings, err := s.ports.Settings.Get(); err == nil {
			return settings.Filter
		}
	}
	return domain.DefaultFilterParams()
}

// parseFilter accepts a short name or the menu number.
func parseFilter(v string) (domain.FilterKind, error) {
	if n, err := strconv.Atoi(v); err == nil {
		if kind := domain.FilterKind(n); kind.IsValid() {
			return kind, nil
		}
		return 0, fmt.Errorf("%w: %d", domain.ErrInvalidFilter, n)
	}
	kind, err := domain.ParseFilterKind(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidFilter, v)
	}
	return kind, nil
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := imaging.Encode(&buf, img, imaging.PNG); err != nil {
		return nil, fmt.Errorf("encoding png: %w", err)
	}
	return buf.Bytes(), nil
}
