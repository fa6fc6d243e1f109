package item

import (
	"fmt"
	"strings"
)

// TransformRange is the inclusive span of tiers an item can transform
// through, e.g. "L-M" for an item that starts Legendary and maxes Mythical.
type TransformRange struct {
	lo, hi Rarity
}

// NewTransformRange builds a range after validating the bounds.
func NewTransformRange(lo, hi Rarity) (TransformRange, error) {
	if lo > hi {
		return TransformRange{}, fmt.Errorf("upper rarity %v below lower rarity %v", hi, lo)
	}
	return TransformRange{lo: lo, hi: hi}, nil
}

// ParseTransformRange parses the pack format: "L-M", or a single tier "D".
func ParseTransformRange(s string) (TransformRange, error) {
	lo, hi, found := strings.Cut(strings.TrimSpace(s), "-")
	lower, err := ParseRarity(lo)
	if err != nil {
		return TransformRange{}, fmt.Errorf("transform range %q: %w", s, err)
	}
	if !found {
		return TransformRange{lo: lower, hi: lower}, nil
	}
	upper, err := ParseRarity(hi)
	if err != nil {
		return TransformRange{}, fmt.Errorf("transform range %q: %w", s, err)
	}
	return NewTransformRange(lower, upper)
}

// Min returns the lower tier bound.
func (t TransformRange) Min() Rarity { return t.lo }

// Max returns the upper tier bound.
func (t TransformRange) Max() Rarity { return t.hi }

// IsSingle reports whether the range covers exactly one tier.
func (t TransformRange) IsSingle() bool { return t.lo == t.hi }

// Len returns the number of tiers in the range.
func (t TransformRange) Len() int { return int(t.hi-t.lo) + 1 }

// Includes reports whether a tier (given by name or letter code) falls
// within the range. The string form keeps it callable from predicate method
// proxies.
func (t TransformRange) Includes(rarity string) bool {
	r, err := ParseRarity(rarity)
	if err != nil {
		return false
	}
	return t.Contains(r)
}

// Contains reports whether the tier falls within the range.
func (t TransformRange) Contains(r Rarity) bool {
	return t.lo <= r && r <= t.hi
}

// Next returns the tier after the given one within the range.
func (t TransformRange) Next(current Rarity) (Rarity, error) {
	if current >= t.hi {
		return 0, fmt.Errorf("highest rarity already achieved")
	}
	return current + 1, nil
}

// String renders the tier emoji sequence with the top tier parenthesised,
// the way stat cards show transform ranges.
func (t TransformRange) String() string {
	if t.IsSingle() {
		return fmt.Sprintf("(%s)", t.lo.Emoji())
	}
	var b strings.Builder
	for r := t.lo; r < t.hi; r++ {
		b.WriteString(r.Emoji())
	}
	fmt.Fprintf(&b, "(%s)", t.hi.Emoji())
	return b.String()
}
