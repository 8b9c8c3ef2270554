// Package textutil provides text processing utilities for tokenization,
// lexical statistics, string similarity, and slug generation.
//
// The primary use cases are:
//   - Splitting forum post text into words and sentences for quality metrics
//   - Computing a Levenshtein similarity ratio for fuzzy firm matching
//   - Deriving filesystem-safe slugs from canonical firm names
//
// Word tokenization lowercases text and splits on non-word characters.
// The similarity ratio is expressed on a 0-100 scale so matching thresholds
// read naturally in configuration.
package textutil
