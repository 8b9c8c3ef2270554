package textutil

import (
	"regexp"
	"strings"
)

var (
	wordPattern       = regexp.MustCompile(`[\p{L}\p{N}']+`)
	sentenceSplit     = regexp.MustCompile(`[.!?]+`)
	whitespaceRun     = regexp.MustCompile(`\s+`)
	zeroWidthReplacer = strings.NewReplacer("\u200B", "", "\u200C", "", "\u200D", "", "\uFEFF", "")
)

// Words splits text into lowercase word tokens.
func Words(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

// UniqueWords returns the number of distinct lowercase word tokens.
func UniqueWords(text string) int {
	seen := make(map[string]struct{})
	for _, w := range Words(text) {
		seen[w] = struct{}{}
	}
	return len(seen)
}

// Sentences splits text on terminal punctuation, dropping empty fragments.
func Sentences(text string) []string {
	raw := sentenceSplit.Split(text, -1)
	out := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// CollapseWhitespace replaces runs of whitespace with a single space and
// trims the result.
func CollapseWhitespace(text string) string {
	return strings.TrimSpace(whitespaceRun.ReplaceAllString(text, " "))
}

// StripZeroWidth removes zero-width and BOM characters that forum exports
// frequently embed mid-word.
func StripZeroWidth(text string) string {
	return zeroWidthReplacer.Replace(text)
}

// TypeTokenRatio returns unique/total word ratio, or zero for empty text.
func TypeTokenRatio(text string) float64 {
	words := Words(text)
	if len(words) == 0 {
		return 0
	}
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		seen[w] = struct{}{}
	}
	return float64(len(seen)) / float64(len(words))
}
