// Package match provides name normalization, Levenshtein distance calculation
// and candidate ranking for "did you mean" suggestions.
//
// Key functions:
//   - Normalize: case and separator insensitive form of a name
//   - Levenshtein: computes edit distance between strings
//   - RankCandidates: ranks known names by similarity to an unknown one
//   - Suggest: the best few candidates above a confidence threshold
package match
