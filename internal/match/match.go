// Package match provides approximate string matching for project resolution.
//
// Scoring uses an ordered tier check rather than a weighted blend so that
// scores stay reproducible and the ranking threshold keeps a fixed meaning:
// exact case-insensitive match, then substring containment, then normalized
// Levenshtein distance.
package match

import "strings"

const (
	// SubstringScore is the fixed score for a case-insensitive containment
	// match in either direction, regardless of length difference or position.
	SubstringScore = 0.8

	// DefaultThreshold is the minimum score a candidate must strictly exceed
	// to count as a match. Threshold and SubstringScore are fixed values kept
	// for compatibility; override the threshold through configuration rather
	// than editing the constant.
	DefaultThreshold = 0.3
)

// Match pairs a candidate index with its similarity score against one query.
type Match struct {
	// Index points into the candidate slice passed to Rank.
	Index int

	// Score is the similarity in [0,1], 1 meaning identical ignoring case.
	Score float64
}

// Score returns the similarity between two strings in [0,1]. The first
// matching tier wins:
//
//  1. Equal after case folding: 1.0.
//  2. One folded string contains the other: SubstringScore.
//  3. Otherwise 1 - editDistance/max(len(a), len(b)) over runes.
//
// Two empty strings score 1.0. The result is symmetric in its arguments.
func Score(a, b string) float64 {
	fa := strings.ToLower(a)
	fb := strings.ToLower(b)

	if fa == fb {
		return 1.0
	}

	if strings.Contains(fa, fb) || strings.Contains(fb, fa) {
		return SubstringScore
	}

	ra := []rune(fa)
	rb := []rune(fb)
	longest := len(ra)
	if len(rb) > longest {
		longest = len(rb)
	}
	// Unreachable when both are empty (tier 1 fires), but guard anyway.
	if longest == 0 {
		return 1.0
	}

	dist := levenshtein(ra, rb)
	return 1.0 - float64(dist)/float64(longest)
}

// Rank scores every candidate against the query and returns the matches whose
// score strictly exceeds threshold, ordered by score descending. The sort is
// stable, so candidates with equal scores keep their input order; callers that
// pass recency-ordered candidates get recency as the implicit tie-break.
//
// A blank (empty or whitespace-only) query returns no matches. That is a
// legitimate empty result, not an error, so callers can probe without
// special-casing blank input.
func Rank(query string, candidates []string, threshold float64) []Match {
	if strings.TrimSpace(query) == "" {
		return nil
	}

	matches := make([]Match, 0, len(candidates))
	for i, candidate := range candidates {
		score := Score(query, candidate)
		if score > threshold {
			matches = append(matches, Match{Index: i, Score: score})
		}
	}

	// Insertion sort keeps equal scores in input order; result sets are
	// small enough that quadratic cost does not matter.
	for i := 1; i < len(matches); i++ {
		for j := i; j > 0 && matches[j].Score > matches[j-1].Score; j-- {
			matches[j], matches[j-1] = matches[j-1], matches[j]
		}
	}

	return matches
}

// levenshtein computes the edit distance between two rune slices with unit
// cost for insertion, deletion, and substitution. Single rolling row instead
// of a full matrix; the observable distances are identical.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}

			best := prev[j-1] + cost // substitution
			if del := prev[j] + 1; del < best {
				best = del
			}
			if ins := curr[j-1] + 1; ins < best {
				best = ins
			}
			curr[j] = best
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
