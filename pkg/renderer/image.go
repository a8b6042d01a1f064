package renderer

import (
	"image"
	"path/filepath"
	"unicode/utf8"

	"webroulette/pkg/domain"
)

// DefaultBlankSampleStep is the pixel stride used by IsBlank when step is not positive.
const DefaultBlankSampleStep = 10

// IsBlank reports whether every sampled pixel of img is pure white. Pixels are
// sampled every step pixels along both axes starting at the top-left corner.
func IsBlank(img image.Image, step int) bool {
	if step <= 0 {
		step = DefaultBlankSampleStep
	}

	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y += step {
		for x := b.Min.X; x < b.Max.X; x += step {
			r, g, bl, _ := img.At(x, y).RGBA()
			if r != 0xffff || g != 0xffff || bl != 0xffff {
				return false
			}
		}
	}

	return true
}

// MaxTitleBytes bounds the title part of a screenshot file name, leaving room
// for "_<address>.png" under the usual 255 byte name limit.
const MaxTitleBytes = 200

// FilePath returns <dir>/<sanitized title>_<address>.png. The sanitized title
// is cut to MaxTitleBytes on a rune boundary.
func FilePath(dir, title string, addr domain.Address) string {
	return filepath.Join(dir, truncate(domain.SanitizeTitle(title), MaxTitleBytes)+"_"+addr.String()+".png")
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	cut := 0
	for i := range s {
		if i > limit {
			break
		}
		cut = i
	}
	// the rune starting at cut may still end past limit
	if _, size := utf8.DecodeRuneInString(s[cut:]); cut+size <= limit {
		cut += size
	}

	return s[:cut]
}
