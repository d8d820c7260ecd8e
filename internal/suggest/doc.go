// Package suggest ranks declared names against a misspelled one.
//
// It powers the "did you mean" hints of schema diagnostics and of the CLI:
//   - Distance: Levenshtein edit distance
//   - Similarity: normalized similarity in [0, 1]
//   - Closest: best candidates above a similarity threshold
package suggest
