// Package matching implements the skill-based scoring and ranking logic:
// skill normalization, pairwise overlap scoring, per-student project
// recommendations, team skill aggregation and team-to-project ranking.
package matching

import (
	"encoding/hex"
	"hash/fnv"
	"sort"
	"strings"
)

// Policy selects how two skill names are compared. Call sites declare their
// policy explicitly: the individual recommendation path compares exact
// normalized keys, while the team ranking path also accepts one key
// containing the other. The asymmetry is intentional and must not be
// unified silently.
type Policy int

const (
	// PolicyExact matches skills whose normalized keys are equal.
	PolicyExact Policy = iota
	// PolicySubstring additionally matches when one normalized key is a
	// substring of the other.
	PolicySubstring
)

// Normalize returns the comparison key for a skill name: trimmed and
// case-folded. Two skills are "the same" iff their keys are equal under
// PolicyExact.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Matches reports whether skill names a and b refer to the same skill under
// the given policy. Empty names never match anything.
func Matches(policy Policy, a, b string) bool {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return false
	}
	if na == nb {
		return true
	}
	if policy == PolicySubstring {
		return strings.Contains(na, nb) || strings.Contains(nb, na)
	}
	return false
}

// Dedupe removes duplicate skill names by normalized key, keeping the first
// spelling seen. Blank entries are dropped.
func Dedupe(skills []string) []string {
	seen := make(map[string]bool, len(skills))
	out := make([]string, 0, len(skills))
	for _, s := range skills {
		key := Normalize(s)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, strings.TrimSpace(s))
	}
	return out
}

// SkillSetHash returns a stable hash of a skill set, insensitive to order,
// spelling case and duplicates. Used as the staleness key for persisted
// recommendations.
func SkillSetHash(skills []string) string {
	keys := make([]string, 0, len(skills))
	seen := make(map[string]bool, len(skills))
	for _, s := range skills {
		key := Normalize(s)
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		keys = append(keys, key)
	}
	sort.Strings(keys)

	h := fnv.New64a()
	for _, key := range keys {
		h.Write([]byte(key))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}
