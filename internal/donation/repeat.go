package donation

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

const repeatThreshold = 0.8

// FindRepeat returns the most recent earlier record whose donor name closely
// matches r's. Anonymous (empty) names never match.
func FindRepeat(history []Record, r Record) (Record, bool) {
	name := normalizeName(r.DonorName)
	if name == "" {
		return Record{}, false
	}
	for i := len(history) - 1; i >= 0; i-- {
		prev := history[i]
		if prev.ID != "" && prev.ID == r.ID {
			continue
		}
		other := normalizeName(prev.DonorName)
		if other == "" {
			continue
		}
		if nameSimilarity(name, other) >= repeatThreshold {
			return prev, true
		}
	}
	return Record{}, false
}

func normalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

func nameSimilarity(a, b string) float64 {
	maxlen := utf8.RuneCountInString(a)
	if n := utf8.RuneCountInString(b); n > maxlen {
		maxlen = n
	}
	if maxlen == 0 {
		return 0
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(maxlen)
}
