package headless_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"webroulette/internal/config"
	"webroulette/pkg/domain"
	"webroulette/pkg/renderer"
	"webroulette/pkg/renderer/headless"
	"webroulette/pkg/serrors"
)

func TestNewOptions(t *testing.T) {
	cfg := &config.Config{}
	cfg.Render.OutputDir = "shots"
	cfg.Render.SettleDelay = time.Second
	cfg.Render.Timeout = 5 * time.Second
	cfg.Render.Width = 800
	cfg.Render.Height = 600
	cfg.Render.BlankSampleStep = 4
	cfg.Render.ExecPath = "/usr/bin/chromium"
	cfg.Scan.UserAgent = "ua"

	require.Equal(t, headless.Options{
		OutputDir:       "shots",
		SettleDelay:     time.Second,
		Timeout:         5 * time.Second,
		Width:           800,
		Height:          600,
		BlankSampleStep: 4,
		ExecPath:        "/usr/bin/chromium",
		UserAgent:       "ua",
	}, headless.NewOptions(cfg))
}

func TestNew_InvalidOptions(t *testing.T) {
	_, err := headless.New(context.Background(), headless.Options{OutputDir: "x"})
	require.ErrorIs(t, err, serrors.ErrInvalidConfig)

	_, err = headless.New(context.Background(), headless.Options{Width: 10, Height: 10})
	require.ErrorIs(t, err, serrors.ErrInvalidConfig)

	_, err = headless.New(context.Background(), headless.Options{Width: 10, Height: 10, OutputDir: "x"})
	require.ErrorIs(t, err, serrors.ErrInvalidConfig, "zero timeout")

	_, err = headless.New(context.Background(), headless.Options{
		Width: 10, Height: 10, OutputDir: "x", Timeout: time.Second, SettleDelay: 2 * time.Second,
	})
	require.ErrorIs(t, err, serrors.ErrInvalidConfig, "settle delay longer than timeout")
}

func findBrowser(t *testing.T) string {
	t.Helper()

	if p := os.Getenv("CHROME_PATH"); p != "" {
		return p
	}
	for _, name := range []string{"chromium", "chromium-browser", "google-chrome", "headless-shell"} {
		if p, err := exec.LookPath(name); err == nil {
			return p
		}
	}
	t.Skip("no Chrome/Chromium found, set CHROME_PATH to run")

	return ""
}

func TestRenderer_Render(t *testing.T) {
	execPath := findBrowser(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		if r.URL.Path == "/blank" {
			_, _ = fmt.Fprint(w, `<html><body style="background:#fff"></body></html>`)

			return
		}
		_, _ = fmt.Fprint(w, `<html><title>Hi</title><body style="background:#123456"></body></html>`)
	}))
	defer srv.Close()

	dir := t.TempDir()
	r, err := headless.New(context.Background(), headless.Options{
		OutputDir:       dir,
		SettleDelay:     100 * time.Millisecond,
		Timeout:         20 * time.Second,
		Width:           320,
		Height:          240,
		BlankSampleStep: 10,
		ExecPath:        execPath,
	})
	require.NoError(t, err)
	defer func() {
		require.NoError(t, r.Close())
	}()

	addr := domain.AddressFromOctets(127, 0, 0, 1)

	res, err := r.Render(context.Background(), renderer.Request{URL: srv.URL + "/", Address: addr, Title: "Hi"})
	require.NoError(t, err)
	require.False(t, res.Blank)
	require.Equal(t, renderer.FilePath(dir, "Hi", addr), res.Path)
	require.FileExists(t, res.Path)

	res, err = r.Render(context.Background(), renderer.Request{URL: srv.URL + "/blank", Address: addr, Title: "Blank"})
	require.NoError(t, err)
	require.True(t, res.Blank)
}
