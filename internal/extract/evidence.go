package extract

import "gradsift/internal/textutil"

// Evidence span sizing. The span is a human-auditable excerpt, hard-capped
// so downstream consumers can rely on the bound.
const (
	evidenceRadius        = 120
	evidenceKeywordRadius = 50
	evidenceMaxLen        = 240
)

// EvidenceSpan produces the audit excerpt for one firm mention: a window of
// ±120 characters around the mention, widened to include a nearby program
// keyword ±50 characters when one exists. Whitespace is normalized and the
// result truncated to 240 characters with an ellipsis marker.
func EvidenceSpan(text string, mentionStart, mentionEnd int) string {
	if mentionStart < 0 || mentionEnd > len(text) || mentionStart > mentionEnd {
		return ""
	}
	start := mentionStart - evidenceRadius
	if start < 0 {
		start = 0
	}
	end := mentionEnd + evidenceRadius
	if end > len(text) {
		end = len(text)
	}

	// Widen to cover a program keyword already near the mention, so the
	// excerpt shows both the firm and what program is being discussed.
	if kw := programKeyword.FindStringIndex(text[start:end]); kw != nil {
		kwStart := start + kw[0]
		kwEnd := start + kw[1]
		if s := kwStart - evidenceKeywordRadius; s < start {
			start = s
		}
		if e := kwEnd + evidenceKeywordRadius; e > end {
			end = e
		}
		if start < 0 {
			start = 0
		}
		if end > len(text) {
			end = len(text)
		}
	}

	snippet := textutil.CollapseWhitespace(text[start:end])
	if runes := []rune(snippet); len(runes) > evidenceMaxLen {
		snippet = string(runes[:evidenceMaxLen-1]) + "…"
	}
	return snippet
}
