package matching

import "math"

// MatchedSkills returns the entries of target matched by at least one owned
// skill under the given policy. Entries keep the target's spelling and are
// deduplicated by normalized key.
func MatchedSkills(policy Policy, owned, target []string) []string {
	matched := make([]string, 0, len(target))
	for _, t := range Dedupe(target) {
		for _, o := range owned {
			if Matches(policy, o, t) {
				matched = append(matched, t)
				break
			}
		}
	}
	return matched
}

// MissingSkills returns the entries of target not matched by any owned
// skill under the given policy.
func MissingSkills(policy Policy, owned, target []string) []string {
	missing := make([]string, 0, len(target))
	for _, t := range Dedupe(target) {
		found := false
		for _, o := range owned {
			if Matches(policy, o, t) {
				found = true
				break
			}
		}
		if !found {
			missing = append(missing, t)
		}
	}
	return missing
}

// Score computes the overlap percentage between an owned skill set and a
// target skill set: round(100 * |matched| / |target|), clamped to [0,100].
// An empty target scores 100 (nothing demanded, fully satisfied); ranking
// paths with a different empty-target convention apply their own rule
// before calling this.
func Score(policy Policy, owned, target []string) int {
	target = Dedupe(target)
	if len(target) == 0 {
		return 100
	}
	matched := MatchedSkills(policy, owned, target)
	pct := int(math.Round(100 * float64(len(matched)) / float64(len(target))))
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
