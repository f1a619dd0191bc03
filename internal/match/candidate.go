package match

import (
	"sort"
)

// DefaultSuggestThreshold is the minimum similarity for an id to be offered
// as a "did you mean" suggestion.
const DefaultSuggestThreshold = 0.6

// Candidate is a catalog id scored against a raw input value.
type Candidate struct {
	ID    string
	Score float64
}

// CandidateList is a list of candidates with ranking functionality.
type CandidateList []Candidate

// RankCandidates scores every id against raw and returns them sorted by
// score (descending), ties broken by id.
func RankCandidates(raw string, ids []string) CandidateList {
	candidates := make(CandidateList, 0, len(ids))

	for _, id := range ids {
		candidates = append(candidates, Candidate{
			ID:    id,
			Score: NormalizedLevenshteinScore(raw, id),
		})
	}

	candidates.Sort()

	return candidates
}

// Sort orders candidates by score descending, then id ascending.
func (cl CandidateList) Sort() {
	sort.SliceStable(cl, func(i, j int) bool {
		if cl[i].Score != cl[j].Score {
			return cl[i].Score > cl[j].Score
		}

		return cl[i].ID < cl[j].ID
	})
}

// Above returns the candidates scoring at least threshold.
func (cl CandidateList) Above(threshold float64) CandidateList {
	var out CandidateList

	for _, c := range cl {
		if c.Score >= threshold {
			out = append(out, c)
		}
	}

	return out
}

// Top returns at most n candidates.
func (cl CandidateList) Top(n int) CandidateList {
	if len(cl) <= n {
		return cl
	}

	return cl[:n]
}

// IDs returns the candidate ids in order.
func (cl CandidateList) IDs() []string {
	ids := make([]string, len(cl))
	for i, c := range cl {
		ids[i] = c.ID
	}

	return ids
}
