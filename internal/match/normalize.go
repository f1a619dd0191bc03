package match

import (
	"strings"
	"unicode"
)

// Canonical folds a free-form option spelling into the kebab-case id form
// used by catalogs. The pipeline:
// 1. Trim surrounding whitespace.
// 2. Tokenize CamelCase and separators (_, -, space).
// 3. Lowercase each token and join with "-".
func Canonical(s string) string {
	return strings.Join(TokenizeIdent(strings.TrimSpace(s)), "-")
}

// NormalizeIdent normalizes an identifier for fuzzy matching: CamelCase is
// expanded, everything is lowercased and separators are stripped.
func NormalizeIdent(s string) string {
	return strings.Join(TokenizeIdent(s), "")
}

// TokenizeIdent splits an identifier into normalized lowercase tokens.
func TokenizeIdent(s string) []string {
	tokens := tokenizeCamelCase(s)
	for i, t := range tokens {
		tokens[i] = strings.ToLower(t)
	}

	return tokens
}

// tokenizeCamelCase splits a CamelCase, kebab-case or spaced string into tokens.
// Examples:
//   - "superEarth" -> ["super", "Earth"]
//   - "Super Earth" -> ["Super", "Earth"]
//   - "tidally-locked" -> ["tidally", "locked"]
//   - "UVFlare" -> ["UV", "Flare"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var tokens []string

	var current strings.Builder

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()

			continue
		}

		if i > 0 && shouldStartNewToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || unicode.IsSpace(r)
}

// shouldStartNewToken determines if a new token should start at position i.
func shouldStartNewToken(runes []rune, i int) bool {
	r := runes[i]
	prev := runes[i-1]

	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "superEarth" splits before 'E'
	if !unicode.IsUpper(prev) {
		return true
	}

	// "UVFlare" splits before 'F'
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
