package utils

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var textPolicy = bluemonday.StrictPolicy()

// SanitizeText strips all HTML from user supplied post text. Posts are plain
// text stored verbatim, so the entity escaping the policy applies on output
// is reversed: "Tom & Jerry" must round-trip unchanged, not as "Tom &amp;
// Jerry".
func SanitizeText(text string) string {
	return strings.TrimSpace(html.UnescapeString(textPolicy.Sanitize(text)))
}
