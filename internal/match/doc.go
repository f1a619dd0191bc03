// Package match provides identifier canonicalisation, Levenshtein distance
// and candidate ranking for catalog ids.
//
// Key functions:
//   - Canonical: folds "Super Earth", "superEarth" and "super_earth" to "super-earth"
//   - NormalizeIdent: separator-free lowercase form used for scoring
//   - Levenshtein: computes edit distance between strings
//   - RankCandidates: ranks catalog ids against a raw value
package match
