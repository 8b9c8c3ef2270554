package cleaner

import (
	"regexp"
	"strings"

	"gradsift/internal/textutil"
)

type pass struct {
	pattern *regexp.Regexp
	replace string
}

// noisePasses are applied in order; earlier passes remove larger structures
// so later patterns do not fire inside already-removed text. The user-header
// pass keeps the trailing "posted" token so the timestamp pass that follows
// can still anchor on it.
var noisePasses = []pass{
	// Forum user header blocks ("User #1234 ... Forum Regular ... posted").
	{regexp.MustCompile(`(?is)User\s?#\d+.*?(?:Forum Regular|Participant|Enthusiast|Addict).*?(posted|\z)`), "$1"},
	// Original-poster tag.
	{regexp.MustCompile(`\bO\.P\.`), ""},
	// Short-link references and bare short links.
	{regexp.MustCompile(`(?i)\bref:\s*whrl\.pl/\S+`), ""},
	{regexp.MustCompile(`(?i)\bwhrl\.pl/\S+`), ""},
	// Any remaining URL.
	{regexp.MustCompile(`https?://\S+`), ""},
	// Post timestamps like "posted 2023-Aug-14, 9:41 pm AEST".
	{regexp.MustCompile(`(?i)posted\s+\d{4}-[A-Za-z]{3,4}-\d{1,2},\s+\d{1,2}:\d{2}\s*[ap]m\s*(AEST|AEDT)?`), ""},
	// Bare timezone tags.
	{regexp.MustCompile(`\b(AEST|AEDT)\b`), ""},
	// Edit trailers run to end of line.
	{regexp.MustCompile(`(?i)\b(edit(ed)?|last updated)\b[^\n]*`), ""},
	// @mentions and leftover ref tokens.
	{regexp.MustCompile(`@\w+`), ""},
	{regexp.MustCompile(`(?i)\bref:`), ""},
	// Quote markers and bullets at line starts.
	{regexp.MustCompile(`(?m)^\s*[>\-\x{2022}]+\s*`), ""},
}

// placeholders are whole-post tokens that carry no content.
var placeholders = map[string]struct{}{
	"deleted": {},
	"edited":  {},
}

// Cleaner strips forum-specific metadata and noise from raw post bodies.
// The zero value is not usable; construct with New.
type Cleaner struct {
	passes []pass
}

// New returns a Cleaner with the standard ordered noise passes.
func New() *Cleaner {
	return &Cleaner{passes: noisePasses}
}

// Clean removes forum noise and normalizes whitespace. It returns an empty
// string when nothing human-written survives: inputs shorter than five
// characters or equal to a placeholder token are discarded outright.
// Clean is pure and safe for concurrent use.
func (c *Cleaner) Clean(raw string) string {
	text := textutil.StripZeroWidth(raw)
	for _, p := range c.passes {
		text = p.pattern.ReplaceAllString(text, p.replace)
	}
	text = textutil.CollapseWhitespace(text)
	if len(text) < 5 {
		return ""
	}
	if _, ok := placeholders[strings.ToLower(text)]; ok {
		return ""
	}
	return text
}
