// Package diagnostic provides structured notices for the rules core.
//
// The importer and generator never fail; anything they skip is recorded
// here so callers can surface it in logs without changing results:
//   - Unmapped parameter categories
//   - Unrecognised values, with "did you mean" suggestions
//   - Catalog and rule file validation errors
package diagnostic
