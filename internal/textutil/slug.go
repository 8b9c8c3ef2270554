package textutil

import (
	"regexp"
	"strings"
)

var slugStrip = regexp.MustCompile(`[^a-z0-9]+`)

// Slug derives a filesystem-safe identifier from a display name.
// "Gilbert + Tobin" becomes "gilbert-tobin"; ampersands read as "and" so
// "Hall & Wilcox" becomes "hall-and-wilcox".
func Slug(name string) string {
	lowered := strings.ToLower(name)
	lowered = strings.ReplaceAll(lowered, "&", "and")
	return strings.Trim(slugStrip.ReplaceAllString(lowered, "-"), "-")
}
