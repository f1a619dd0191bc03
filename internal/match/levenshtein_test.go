package match

import (
	"math"
	"testing"
)

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected int
	}{
		{"", "", 0},
		{"high", "high", 0},
		{"", "abc", 3},
		{"abc", "", 3},
		{"a", "b", 1},
		{"a", "ab", 1},
		{"ab", "a", 1},
		{"kitten", "sitting", 3},
		{"saturday", "sunday", 3},
		{"hgh", "high", 1},
		{"binarry", "binary", 1},
		{"trinary", "binary", 2},
		{"Binary", "binary", 1},

		// Counted in runes
		{"café", "cafe", 1},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := Levenshtein(tt.a, tt.b)
			if result != tt.expected {
				t.Errorf("Levenshtein(%q, %q) = %d, want %d", tt.a, tt.b, result, tt.expected)
			}

			// Symmetric
			if rev := Levenshtein(tt.b, tt.a); rev != result {
				t.Errorf("Levenshtein(%q, %q) = %d, not symmetric with %d", tt.b, tt.a, rev, result)
			}
		})
	}
}

func TestLevenshteinNormalized(t *testing.T) {
	tests := []struct {
		a        string
		b        string
		expected float64
	}{
		{"", "", 1.0},
		{"high", "high", 1.0},
		{"abcd", "wxyz", 0.0},
		{"hgh", "high", 0.75},
		{"", "abcd", 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			result := LevenshteinNormalized(tt.a, tt.b)
			if math.Abs(result-tt.expected) > 1e-9 {
				t.Errorf("LevenshteinNormalized(%q, %q) = %f, want %f", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestNormalizedLevenshteinScore(t *testing.T) {
	if score := NormalizedLevenshteinScore("Super Earth", "super-earth"); score != 1.0 {
		t.Errorf("expected identical score after normalization, got %f", score)
	}

	if score := NormalizedLevenshteinScore("gas-giant", "super-earth"); score >= DefaultSuggestThreshold {
		t.Errorf("expected unrelated ids to score below threshold, got %f", score)
	}
}
