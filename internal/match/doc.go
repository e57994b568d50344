// Package match provides name normalization, Levenshtein distance calculation
// and "did you mean" suggestions for type and property names.
//
// Key functions:
//   - NormalizeIdent: normalizes identifiers for fuzzy matching
//   - Levenshtein: computes edit distance between strings
//   - Suggest: ranks known names close to an unknown one
package match
