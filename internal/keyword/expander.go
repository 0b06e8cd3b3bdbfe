package keyword

import (
	"math/rand"
	"strings"

	"finfeed/internal/model"
)

// DefaultKeywords is used whenever expansion yields nothing, so the
// downstream search always has at least one query.
var DefaultKeywords = []string{"경제", "증시"}

const samplePerCategory = 2

// Expand turns a user's onboarding answers into the ordered, unique
// keyword list used for news querying. Include keywords (Q2) win; only
// when they are absent does the category table (Q1) contribute its
// full representative sets. Exclude keywords (Q3) are removed by exact
// match. The result is never empty.
func Expand(ob *model.UserOnboarding) []string {
	var result []string

	if ob != nil {
		result = Clean(ob.Q2Keywords)
		if len(result) == 0 {
			for _, id := range ob.Q1Categories {
				if cat := CategoryByID(id); cat != nil {
					result = append(result, cat.Keywords...)
				}
			}
			result = Clean(result)
		}
		result = removeExact(result, ob.Q3Keywords)
	}

	if len(result) == 0 {
		return append([]string(nil), DefaultKeywords...)
	}
	return result
}

// TodaySample builds the bounded "today's keywords" suggestion list:
// Q2 keywords first, then at most two sampled representatives per
// selected category, topped up from the global pool until targetSize.
// Unlike Expand this path samples instead of appending full category
// sets, so the suggestion list stays short.
func TodaySample(q1 []int, q2, q3 []string, targetSize int) []string {
	result := Clean(q2)

	for _, id := range q1 {
		cat := CategoryByID(id)
		if cat == nil {
			continue
		}
		picks := samplePerCategory
		if picks > len(cat.Keywords) {
			picks = len(cat.Keywords)
		}
		perm := rand.Perm(len(cat.Keywords))
		for _, idx := range perm[:picks] {
			result = append(result, cat.Keywords[idx])
		}
	}

	result = removeExact(Clean(result), q3)

	if len(result) < targetSize {
		pool := globalPool(result, q3)
		rand.Shuffle(len(pool), func(i, j int) { pool[i], pool[j] = pool[j], pool[i] })
		need := targetSize - len(result)
		if need > len(pool) {
			need = len(pool)
		}
		result = append(result, pool[:need]...)
	}

	if len(result) > targetSize {
		result = result[:targetSize]
	}
	return result
}

// Clean trims entries, drops empties and removes duplicates keeping
// first occurrence.
func Clean(keywords []string) []string {
	seen := make(map[string]struct{}, len(keywords))
	out := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}
		if _, ok := seen[kw]; ok {
			continue
		}
		seen[kw] = struct{}{}
		out = append(out, kw)
	}
	return out
}

func removeExact(keywords, excluded []string) []string {
	if len(excluded) == 0 {
		return keywords
	}
	block := make(map[string]struct{}, len(excluded))
	for _, kw := range excluded {
		block[kw] = struct{}{}
	}
	out := keywords[:0]
	for _, kw := range keywords {
		if _, ok := block[kw]; ok {
			continue
		}
		out = append(out, kw)
	}
	return out
}

func globalPool(used, excluded []string) []string {
	skip := make(map[string]struct{}, len(used)+len(excluded))
	for _, kw := range used {
		skip[kw] = struct{}{}
	}
	for _, kw := range excluded {
		skip[kw] = struct{}{}
	}

	var pool []string
	for _, cat := range Categories {
		for _, kw := range cat.Keywords {
			if _, ok := skip[kw]; ok {
				continue
			}
			skip[kw] = struct{}{}
			pool = append(pool, kw)
		}
	}
	return pool
}
