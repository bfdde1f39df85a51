// Package search ranks catalog records against a free-text query using
// simple substring and token-overlap scoring. It is intentionally naive:
// the catalogs are small, human-maintained reference lists.
package search

import (
	"sort"
	"strings"
)

// Match pairs a record index with its relevance score.
type Match struct {
	Index int
	Score float64
}

// Rank scores every candidate text against the query and returns the
// matches with score > 0, best first. Ties keep the original order so
// results are stable across calls.
func Rank(query string, candidates []string) []Match {
	tokens := Tokenize(query)
	if len(tokens) == 0 {
		return nil
	}

	var matches []Match
	for i, c := range candidates {
		if s := Score(tokens, c); s > 0 {
			matches = append(matches, Match{Index: i, Score: s})
		}
	}

	sort.SliceStable(matches, func(a, b int) bool {
		return matches[a].Score > matches[b].Score
	})
	return matches
}

// Score computes token overlap between the query tokens and the candidate
// text. A full substring match of the joined query counts extra.
func Score(queryTokens []string, candidate string) float64 {
	lower := strings.ToLower(candidate)
	candidateTokens := Tokenize(candidate)

	seen := make(map[string]bool, len(candidateTokens))
	for _, t := range candidateTokens {
		seen[t] = true
	}

	var hits float64
	for _, t := range queryTokens {
		if seen[t] {
			hits++
			continue
		}
		if strings.Contains(lower, t) {
			hits += 0.5
		}
	}
	if hits == 0 {
		return 0
	}

	score := hits / float64(len(queryTokens))
	if strings.Contains(lower, strings.Join(queryTokens, " ")) {
		score += 1
	}
	return score
}

// Tokenize lowercases and splits on non-letter/digit runes, dropping
// one-character tokens.
func Tokenize(s string) []string {
	fields := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !isWordRune(r)
	})
	tokens := fields[:0]
	for _, f := range fields {
		if len(f) > 1 {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func isWordRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		return true
	case r >= 'à' && r <= 'ÿ':
		// Accented Spanish letters survive tokenization.
		return true
	default:
		return false
	}
}
