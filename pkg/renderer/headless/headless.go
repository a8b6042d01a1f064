// Package headless provides a renderer.Renderer backed by a headless
// Chrome/Chromium driven through the DevTools protocol.
package headless

import (
	"bytes"
	"context"
	"fmt"
	"image/png"
	"os"
	"time"

	"github.com/chromedp/chromedp"
	"go.uber.org/zap"

	"webroulette/internal/config"
	"webroulette/pkg/logger"
	"webroulette/pkg/renderer"
	"webroulette/pkg/serrors"
)

// Options configure the headless renderer.
type Options struct {
	// OutputDir is where screenshots are written. It is created on first use.
	OutputDir string
	// SettleDelay is how long a loaded page is left alone before capture.
	SettleDelay time.Duration
	// Timeout bounds one render, including navigation and the settle delay.
	Timeout time.Duration
	// Width and Height set the viewport.
	Width, Height int64
	// BlankSampleStep is passed to renderer.IsBlank.
	BlankSampleStep int
	// ExecPath points at the browser binary. Empty lets chromedp find one.
	ExecPath string
	// UserAgent overrides the browser user agent when set.
	UserAgent string
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		OutputDir:       cfg.Render.OutputDir,
		SettleDelay:     cfg.Render.SettleDelay,
		Timeout:         cfg.Render.Timeout,
		Width:           cfg.Render.Width,
		Height:          cfg.Render.Height,
		BlankSampleStep: cfg.Render.BlankSampleStep,
		ExecPath:        cfg.Render.ExecPath,
		UserAgent:       cfg.Scan.UserAgent,
	}
}

// Renderer owns one browser process. Every Render call opens its own tab so
// that pages never share state with each other.
type Renderer struct {
	options Options

	browserCtx    context.Context //nolint: containedctx
	cancelBrowser context.CancelFunc
	cancelAlloc   context.CancelFunc
}

// Ensure Renderer conforms to the renderer.Renderer interface at compile time.
var _ renderer.Renderer = (*Renderer)(nil)

// New starts the browser. Close must be called to stop it.
func New(ctx context.Context, options Options) (*Renderer, error) {
	if options.Width <= 0 || options.Height <= 0 {
		return nil, serrors.With(serrors.ErrInvalidConfig, "viewport must be positive, got %dx%d",
			options.Width, options.Height)
	}
	if options.OutputDir == "" {
		return nil, serrors.With(serrors.ErrInvalidConfig, "output directory must be set")
	}
	if options.Timeout <= 0 {
		return nil, serrors.With(serrors.ErrInvalidConfig, "render timeout must be positive, got %s", options.Timeout)
	}
	if options.SettleDelay < 0 || options.SettleDelay >= options.Timeout {
		return nil, serrors.With(serrors.ErrInvalidConfig, "settle delay %s must be shorter than the timeout %s",
			options.SettleDelay, options.Timeout)
	}

	allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.WindowSize(int(options.Width), int(options.Height)),
		chromedp.Flag("ignore-certificate-errors", true),
	)
	if options.ExecPath != "" {
		allocOpts = append(allocOpts, chromedp.ExecPath(options.ExecPath))
	}
	if options.UserAgent != "" {
		allocOpts = append(allocOpts, chromedp.UserAgent(options.UserAgent))
	}

	// the browser outlives the caller's context; Close stops it
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.WithoutCancel(ctx), allocOpts...)
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx,
		chromedp.WithErrorf(func(format string, args ...any) {
			logger.Debug(ctx, "browser error", zap.String("message", fmt.Sprintf(format, args...)))
		}))

	// an empty Run launches the browser
	if err := chromedp.Run(browserCtx); err != nil {
		cancelBrowser()
		cancelAlloc()

		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not start browser")
	}

	return &Renderer{
		options:       options,
		browserCtx:    browserCtx,
		cancelBrowser: cancelBrowser,
		cancelAlloc:   cancelAlloc,
	}, nil
}

// Render opens req.URL in a fresh tab, waits SettleDelay and saves a
// screenshot unless the capture is blank.
func (r *Renderer) Render(ctx context.Context, req renderer.Request) (renderer.Result, error) {
	tabCtx, cancelTab := chromedp.NewContext(r.browserCtx)
	defer cancelTab()

	tabCtx, cancelTimeout := context.WithTimeout(tabCtx, r.options.Timeout)
	defer cancelTimeout()

	// tie the tab to the caller as well as to the browser
	stop := context.AfterFunc(ctx, cancelTab)
	defer stop()

	var buf []byte
	if err := chromedp.Run(tabCtx,
		chromedp.EmulateViewport(r.options.Width, r.options.Height),
		chromedp.Navigate(req.URL),
		chromedp.Sleep(r.options.SettleDelay),
		chromedp.CaptureScreenshot(&buf),
	); err != nil {
		return renderer.Result{}, fmt.Errorf("could not capture %s: %w", req.URL, err)
	}

	return r.save(buf, req)
}

func (r *Renderer) save(buf []byte, req renderer.Request) (renderer.Result, error) {
	img, err := png.Decode(bytes.NewReader(buf))
	if err != nil {
		return renderer.Result{}, fmt.Errorf("could not decode screenshot: %w", err)
	}
	if renderer.IsBlank(img, r.options.BlankSampleStep) {
		return renderer.Result{Blank: true}, nil
	}

	if err := os.MkdirAll(r.options.OutputDir, 0o755); err != nil {
		return renderer.Result{}, fmt.Errorf("could not create output directory: %w", err)
	}
	path := renderer.FilePath(r.options.OutputDir, req.Title, req.Address)
	if err := os.WriteFile(path, buf, 0o644); err != nil { //nolint: gosec
		return renderer.Result{}, fmt.Errorf("could not write screenshot: %w", err)
	}

	return renderer.Result{Path: path}, nil
}

// Close stops the browser.
func (r *Renderer) Close() error {
	err := chromedp.Cancel(r.browserCtx)
	r.cancelBrowser()
	r.cancelAlloc()
	if err != nil {
		return fmt.Errorf("could not stop browser: %w", err)
	}

	return nil
}
