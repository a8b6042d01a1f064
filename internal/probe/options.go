package probe

import (
	"time"

	"webroulette/pkg/domain"
	"webroulette/pkg/serrors"
)

const (
	// DefaultRequestTimeout is used when no timeout is configured.
	DefaultRequestTimeout = 5 * time.Second
	// DefaultMaxBodyBytes caps how much of a page is read while looking for its title.
	DefaultMaxBodyBytes int64 = 1 << 20
	// DefaultUserAgent mimics a desktop browser so that hosts serve their normal page.
	DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
		"(KHTML, like Gecko) Chrome/106.0.0.0 Safari/537.36 Edg/106.0.1370.47"
)

// defaultBoringTitles are default install pages, parked pages and provider
// placeholders. The empty string covers pages with an empty <title></title>.
var defaultBoringTitles = []string{ //nolint: gochecknoglobals
	"Node.js packaged by Bitnami",
	"Sorry, the website has been stopped",
	"Apache2 Ubuntu Default Page: It works",
	"Apache2 Debian Default Page: It works",
	"Welcome to nginx!",
	"IIS Windows Server",
	"IIS Windows",
	"IIS7",
	"Your Azure Function App is up and running.",
	"Welcome to CentOS",
	"Test Page for Apache Installation",
	"Google",
	"Amazon S3 - Cloud Object Storage  - AWS",
	"AT&T WiFi Portal",
	"RouterOS router configuration page",
	"RouterOS",
	"Hotwire Communications",
	"CMS Web Viewer",
	"",
	"Web Server's Default Page",
	"没有找到站点",
	// the same page read as latin-1 by clients that ignore the meta charset
	"æ²¡æ\u009c\u0089æ\u0089¾å\u0088°ç«\u0099ç\u0082¹",
}

// DefaultBoringTitles returns a fresh copy of the built-in denylist.
func DefaultBoringTitles() domain.TitleSet {
	return domain.NewTitleSet(defaultBoringTitles...)
}

// Options control a single probe. They are immutable for the duration of a scan
// and passed by value to every probe.
type Options struct {
	// RequestTimeout bounds the whole probe: connect, headers and body.
	RequestTimeout time.Duration
	// UserAgent is sent as the User-Agent header.
	UserAgent string
	// BoringTitles is the exact-match denylist. Titles found here are rejected.
	BoringTitles domain.TitleSet
	// MaxBodyBytes limits how much of the body is read. Zero means DefaultMaxBodyBytes.
	MaxBodyBytes int64
}

// DefaultOptions returns Options with the built-in defaults.
func DefaultOptions() Options {
	return Options{
		RequestTimeout: DefaultRequestTimeout,
		UserAgent:      DefaultUserAgent,
		BoringTitles:   DefaultBoringTitles(),
		MaxBodyBytes:   DefaultMaxBodyBytes,
	}
}

// Validate checks the options and returns an ErrInvalidConfig error describing
// the first problem found.
func (o Options) Validate() error {
	if o.RequestTimeout <= 0 {
		return serrors.With(serrors.ErrInvalidConfig, "request timeout must be positive, got %s", o.RequestTimeout)
	}
	if o.MaxBodyBytes < 0 {
		return serrors.With(serrors.ErrInvalidConfig, "max body bytes must not be negative, got %d", o.MaxBodyBytes)
	}

	return nil
}

func (o Options) maxBodyBytes() int64 {
	if o.MaxBodyBytes == 0 {
		return DefaultMaxBodyBytes
	}

	return o.MaxBodyBytes
}
