// Package renderer defines how accepted findings are turned into screenshots
// and the helpers shared by implementations.
package renderer

import (
	"context"

	"webroulette/pkg/domain"
)

// Request describes one page to render.
type Request struct {
	URL     string         // URL is the page to load.
	Address domain.Address // Address is the probed host, used in the file name.
	Title   string         // Title is the raw page title; implementations sanitize it.
}

// NewRequest builds the render request for a finding.
func NewRequest(f domain.Finding) Request {
	return Request{URL: f.Address.URL(), Address: f.Address, Title: f.Title}
}

// Result describes a finished render.
type Result struct {
	// Path is where the screenshot was written. Empty when Blank is set.
	Path string
	// Blank reports that the capture was uniformly white and was discarded.
	Blank bool
}

// Renderer captures a page. Implementations must be safe for concurrent use
// and must isolate requests from each other.
//
//go:generate mockgen -package mockrenderer -source=interface.go -destination=mock/mockrenderer.go *
type Renderer interface {
	// Render loads req.URL, waits for it to settle and captures it.
	Render(ctx context.Context, req Request) (Result, error)
	// Close releases the browser resources held by the renderer.
	Close() error
}
