// Package match provides fuzzy identifier matching used to attach
// "did you mean" suggestions to missing-member diagnostics.
//
// Matching normalizes identifiers (case folding, separator stripping,
// CamelCase tokenization) before scoring them with a Levenshtein-based
// similarity.
package match
