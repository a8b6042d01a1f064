package probe

import (
	"regexp"
	"strings"
)

// NoTitle is reported for pages without a <title> element.
const NoTitle = "No Title Found"

// titleRe matches the first <title> element, case-insensitively and across
// newlines. This is a best-effort match, not an HTML parser: markup inside the
// title, a "</title>" inside a script or a title in an SVG block will fool it.
var titleRe = regexp.MustCompile(`(?is)<title>(.*?)</title>`)

// ExtractTitle returns the trimmed content of the first <title> element in body,
// or NoTitle when there is none.
func ExtractTitle(body []byte) string {
	m := titleRe.FindSubmatch(body)
	if m == nil {
		return NoTitle
	}

	return strings.TrimSpace(string(m[1]))
}
