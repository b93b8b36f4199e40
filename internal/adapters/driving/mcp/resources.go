package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"image"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const (
	// uriScheme is the custom URI scheme for retouch resources.
	uriScheme = "retouch://"

	pngMIME = "image/png"
)

// Resource URIs.
const (
	CurrentImageURI  = uriScheme + "image/current"
	OriginalImageURI = uriScheme + "image/original"
	HistoryURI       = uriScheme + "history"
)

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         CurrentImageURI,
		Name:        "current-image",
		Description: "The working image with every edit applied, as PNG",
		MIMEType:    pngMIME,
	}, s.handleCurrentImageResource)

	s.server.AddResource(&mcp.Resource{
		URI:         OriginalImageURI,
		Name:        "original-image",
		Description: "The image as loaded, as PNG",
		MIMEType:    pngMIME,
	}, s.handleOriginalImageResource)

	if s.ports.History != nil {
		s.server.AddResource(&mcp.Resource{
			URI:         HistoryURI,
			Name:        "history",
			Description: "Recently loaded and saved images",
			MIMEType:    "application/json",
		}, s.handleHistoryResource)
	}
}

func (s *Server) handleCurrentImageResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	img := s.ports.Session.Current()
	if img == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return pngResource(req.Params.URI, img)
}

func (s *Server) handleOriginalImageResource(
	_ context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	img := s.ports.Session.Original()
	if img == nil {
		return nil, mcp.ResourceNotFoundError(req.Params.URI)
	}
	return pngResource(req.Params.URI, img)
}

func (s *Server) handleHistoryResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	entries, err := s.ports.History.List(ctx, defaultHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("listing history: %w", err)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshalling history: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}

// pngResource encodes img as a PNG blob.
func pngResource(uri string, img image.Image) (*mcp.ReadResourceResult, error) {
	data, err := encodePNG(img)
	if err != nil {
		return nil, err
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: pngMIME,
			Blob:     data,
		}},
	}, nil
}
