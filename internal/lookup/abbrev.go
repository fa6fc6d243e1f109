// Package lookup resolves short, partial, or misspelled user input into item
// names. It combines an abbreviation index built from the capital letters of
// the corpus ("Energy Free Armor" -> "efa") with a Levenshtein-based
// similarity search for everything the index cannot cover.
package lookup

import (
	"strings"
	"unicode"
)

// Index maps a lowercase abbreviation or alias to every full name that
// produces it. Ambiguous keys accumulate all their names in insertion order;
// nothing is overwritten. Built once from the item corpus and read-only
// afterwards.
type Index map[string][]string

// NewIndex builds the abbreviation index for a corpus of display names.
//
// Per name, the primary abbreviation concatenates its uppercase letters,
// lowercased. Names that are entirely uppercase ("EMP") or a single
// title-case word ("Avenger") yield nothing and are skipped; such names are
// only reachable through similarity search. Spaced names also register their
// spaceless form ("hybridheatcannon"), and camel-case compounds register the
// fragment at each uppercase boundary ("HeronMark" -> "heron", "mark").
func NewIndex(names []string) Index {
	idx := make(Index)
	for _, name := range names {
		for _, key := range abbreviationsOf(name) {
			idx.add(key, name)
		}
	}
	return idx
}

func (idx Index) add(key, name string) {
	for _, existing := range idx[key] {
		if existing == name {
			return
		}
	}
	idx[key] = append(idx[key], name)
}

// abbreviationsOf computes every index key a single name registers under.
func abbreviationsOf(name string) []string {
	if isAllUpper(name) || isTitleCaseWord(name) {
		return nil
	}

	var upper strings.Builder
	for _, r := range name {
		if unicode.IsUpper(r) {
			upper.WriteRune(unicode.ToLower(r))
		}
	}

	keys := []string{upper.String()}

	if strings.ContainsRune(name, ' ') {
		// Catches users typing a spaced name as one word.
		keys = append(keys, strings.ToLower(strings.ReplaceAll(name, " ", "")))
	} else {
		// Camel-case compound: each fragment becomes an alias.
		keys = append(keys, splitCamel(name)...)
	}

	out := keys[:0]
	for _, k := range keys {
		if k != "" {
			out = append(out, k)
		}
	}
	return out
}

// isAllUpper reports whether the name contains no lowercase letters.
func isAllUpper(name string) bool {
	for _, r := range name {
		if unicode.IsLower(r) {
			return false
		}
	}
	return true
}

// isTitleCaseWord reports whether the name is a single capitalized word with
// no internal capitals, e.g. "Avenger".
func isTitleCaseWord(name string) bool {
	if strings.ContainsRune(name, ' ') {
		return false
	}
	for i, r := range name {
		if i > 0 && unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

// splitCamel splits a name at each uppercase boundary into lowercase
// fragments: "HeronMark" -> ["heron", "mark"].
func splitCamel(name string) []string {
	var frags []string
	runes := []rune(name)
	last := 0
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) {
			frags = append(frags, strings.ToLower(string(runes[last:i])))
			last = i
		}
	}
	frags = append(frags, strings.ToLower(string(runes[last:])))

	out := frags[:0]
	for _, f := range frags {
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}
