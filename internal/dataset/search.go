package dataset

import (
	"sort"
	"strconv"
	"strings"
)

// ContainsRelevantData reports whether query appears, case-insensitively,
// as a substring of any string leaf reachable inside v. Numbers, booleans
// and nulls never match. Used as a cheap existence probe before running
// the scored search.
func ContainsRelevantData(v *Value, query string) bool {
	if v == nil {
		return false
	}
	switch v.Kind() {
	case KindString:
		return strings.Contains(strings.ToLower(v.Str()), strings.ToLower(query))
	case KindList:
		for i := 0; i < v.Len(); i++ {
			if ContainsRelevantData(v.Index(i), query) {
				return true
			}
		}
		return false
	case KindObject:
		for _, key := range v.Keys() {
			f, _ := v.Field(key)
			if ContainsRelevantData(f, query) {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// Match is one scored full-text hit: a string leaf, the fraction of query
// terms found inside it, and the access path that reaches it.
type Match struct {
	Text  string
	Score float64
	Path  []string
}

// SearchLeaves walks v and scores every string leaf against the query.
// Terms are the whitespace-split lowercased query, not deduplicated; a
// leaf's score is found-terms / total-terms. Only leaves scoring strictly
// above threshold are kept, sorted by descending score. Document order
// breaks ties, so results are stable for a given dataset.
func SearchLeaves(v *Value, query string, threshold float64) []Match {
	terms := strings.Fields(strings.ToLower(query))
	if len(terms) == 0 {
		return nil
	}

	var matches []Match
	searchWalk(v, terms, threshold, nil, &matches)

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}

func searchWalk(v *Value, terms []string, threshold float64, path []string, out *[]Match) {
	switch v.Kind() {
	case KindString:
		lower := strings.ToLower(v.Str())
		found := 0
		for _, term := range terms {
			if strings.Contains(lower, term) {
				found++
			}
		}
		score := float64(found) / float64(len(terms))
		if score > threshold {
			*out = append(*out, Match{
				Text:  v.Str(),
				Score: score,
				Path:  append([]string(nil), path...),
			})
		}
	case KindList:
		for i := 0; i < v.Len(); i++ {
			searchWalk(v.Index(i), terms, threshold, append(path, strconv.Itoa(i)), out)
		}
	case KindObject:
		for _, key := range v.Keys() {
			f, _ := v.Field(key)
			searchWalk(f, terms, threshold, append(path, key), out)
		}
	}
}
