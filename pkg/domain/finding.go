package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Finding is an accepted (address, title) pair, the unit handed to the renderer.
type Finding struct {
	Address Address
	Title   string
}

// filenameReplacer swaps the nine characters Windows forbids in file names for
// their full-width look-alikes.
var filenameReplacer = strings.NewReplacer( //nolint: gochecknoglobals
	`\`, "＼",
	"/", "／",
	":", "：",
	"*", "＊",
	"?", "？",
	`"`, "＂",
	"<", "＜",
	">", "＞",
	"|", "｜",
)

// SanitizeTitle replaces every reserved filesystem character in title one-to-one
// with its full-width equivalent.
func SanitizeTitle(title string) string {
	return filenameReplacer.Replace(title)
}

// SafeTitle returns the title in a form usable as part of a file name.
func (f Finding) SafeTitle() string {
	return SanitizeTitle(f.Title)
}

// FindingID identifies an archived finding.
type FindingID uuid.UUID

// String returns the canonical UUID form.
func (id FindingID) String() string { return uuid.UUID(id).String() }

// FindingRecord is a finding as kept in the archive.
type FindingRecord struct {
	ID     FindingID
	ScanID ScanID
	Finding
	FoundAt time.Time
}
