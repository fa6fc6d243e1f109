package lookup

import "strings"

// SearchFor finds names containing every word of the phrase as a prefix of
// consecutive name words, in order. Both "burn scop" and "half scop" match
// "Half Burnt Scope"; "scop burn" does not. Matching is case-insensitive.
func SearchFor(phrase string, names []string) []string {
	prefixes := strings.Fields(strings.ToLower(phrase))
	if len(prefixes) == 0 {
		return nil
	}

	var out []string
	for _, name := range names {
		words := strings.Fields(strings.ToLower(name))
		if matchesInOrder(prefixes, words) {
			out = append(out, name)
		}
	}
	return out
}

func matchesInOrder(prefixes, words []string) bool {
	i := 0
	for _, prefix := range prefixes {
		found := false
		for ; i < len(words); i++ {
			if strings.HasPrefix(words[i], prefix) {
				i++
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
