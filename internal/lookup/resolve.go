package lookup

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrTooManyMatches is returned when an abbreviation resolves to more names
// than the caller's limit allows. Surfacing the collision beats silently
// truncating away the item the user actually meant.
var ErrTooManyMatches = errors.New("abbreviation matches too many names")

// Cutoff is the minimum similarity ratio for a name to count as a match.
const Cutoff = 0.6

// DefaultLimit matches the chat platform's autocomplete cap.
const DefaultLimit = 25

// Corpus is an insertion-ordered collection of named entities. The order
// doubles as the deterministic tie-break for equal similarity ratios.
type Corpus[T any] struct {
	names  []string
	byName map[string]T
}

// NewCorpus creates an empty corpus.
func NewCorpus[T any]() *Corpus[T] {
	return &Corpus[T]{byName: make(map[string]T)}
}

// Add registers an entity under a display name. Re-adding a name replaces
// the entity but keeps its original position.
func (c *Corpus[T]) Add(name string, entity T) {
	if _, ok := c.byName[name]; !ok {
		c.names = append(c.names, name)
	}
	c.byName[name] = entity
}

// Get returns the entity registered under a name.
func (c *Corpus[T]) Get(name string) (T, bool) {
	e, ok := c.byName[name]
	return e, ok
}

// Names returns the display names in insertion order.
func (c *Corpus[T]) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of entities.
func (c *Corpus[T]) Len() int { return len(c.names) }

// Resolve finds up to limit entities matching the query: exact abbreviation
// hits first, then names whose similarity ratio clears the cutoff, best
// ratio first with ties broken by corpus order. An empty result is a valid
// outcome; only an oversized abbreviation collision is an error.
func Resolve[T any](c *Corpus[T], query string, idx Index, limit int) ([]T, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	query = strings.ToLower(query)

	var out []T
	taken := make(map[string]bool)

	if hits, ok := idx[query]; ok {
		if len(hits) > limit {
			return nil, fmt.Errorf("%w: %q has %d expansions, limit %d",
				ErrTooManyMatches, query, len(hits), limit)
		}
		for _, name := range hits {
			if entity, ok := c.Get(name); ok && !taken[name] {
				taken[name] = true
				out = append(out, entity)
			}
		}
	}

	type scored struct {
		name  string
		ratio float64
		pos   int
	}
	var candidates []scored
	for pos, name := range c.names {
		if taken[name] {
			continue
		}
		if r, ok := similarity(query, name); ok {
			candidates = append(candidates, scored{name: name, ratio: r, pos: pos})
		}
	}

	// Stable order: ratio descending, corpus position ascending.
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].ratio != candidates[j].ratio {
			return candidates[i].ratio > candidates[j].ratio
		}
		return candidates[i].pos < candidates[j].pos
	})

	for _, cand := range candidates {
		if len(out) >= limit {
			break
		}
		out = append(out, c.byName[cand.name])
	}

	return out, nil
}

// similarity computes the normalized Levenshtein ratio between the query and
// a name, both lowercased with spaces stripped. Two cheap bounds are checked
// before the full distance: the length difference and the character
// frequency overlap both cap the achievable ratio.
func similarity(query, name string) (float64, bool) {
	a := normalize(query)
	b := normalize(name)
	if len(a) == 0 || len(b) == 0 {
		return 0, false
	}

	la, lb := len([]rune(a)), len([]rune(b))
	longest := la
	if lb > longest {
		longest = lb
	}

	// Distance is at least the length difference.
	diff := la - lb
	if diff < 0 {
		diff = -diff
	}
	if 1-float64(diff)/float64(longest) < Cutoff {
		return 0, false
	}

	// Distance is at least longest minus the shared character count.
	if float64(commonRunes(a, b))/float64(longest) < Cutoff {
		return 0, false
	}

	dist := levenshtein.ComputeDistance(a, b)
	ratio := 1 - float64(dist)/float64(longest)
	if ratio < Cutoff {
		return 0, false
	}
	return ratio, true
}

func normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), " ", "")
}

// commonRunes counts the multiset intersection of the two strings' runes.
func commonRunes(a, b string) int {
	counts := make(map[rune]int)
	for _, r := range a {
		counts[r]++
	}
	common := 0
	for _, r := range b {
		if counts[r] > 0 {
			counts[r]--
			common++
		}
	}
	return common
}
