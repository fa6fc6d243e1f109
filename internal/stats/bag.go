// Package stats provides the ordered stat collections items and mechs carry,
// the registry of stat definitions (display names, emoji, buffability), and
// the transformer that applies arena buffs across a whole collection.
package stats

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Enegg/SuperMechs-bot/internal/buffs"
)

// Value is a single stat value: either a scalar or a min-max pair
// (damage spreads and ranges come as pairs in the item pack).
type Value struct {
	Lo, Hi int
	Pair   bool
}

// Scalar wraps a plain int value.
func Scalar(v int) Value { return Value{Lo: v} }

// Range wraps a min-max pair.
func Range(lo, hi int) Value { return Value{Lo: lo, Hi: hi, Pair: true} }

func (v Value) String() string {
	if v.Pair {
		return fmt.Sprintf("%d-%d", v.Lo, v.Hi)
	}
	return fmt.Sprintf("%d", v.Lo)
}

// UnmarshalYAML accepts either an int or a two-element int sequence,
// mirroring the item pack format where e.g. phyDmg is [50, 120].
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var n int
		if err := node.Decode(&n); err != nil {
			return fmt.Errorf("stat value: %w", err)
		}
		*v = Scalar(n)
		return nil

	case yaml.SequenceNode:
		var pair []int
		if err := node.Decode(&pair); err != nil {
			return fmt.Errorf("stat value: %w", err)
		}
		if len(pair) != 2 {
			return fmt.Errorf("stat value: expected 2 elements, got %d", len(pair))
		}
		*v = Range(pair[0], pair[1])
		return nil
	}

	return fmt.Errorf("stat value: unsupported node kind %v", node.Kind)
}

// Bag is an insertion-ordered collection of stat values keyed by stat code.
// The zero value is ready to use.
type Bag struct {
	keys []string
	vals map[string]Value
}

// NewBag creates an empty bag.
func NewBag() *Bag {
	return &Bag{vals: make(map[string]Value)}
}

// Set stores a value, appending the key on first sight and preserving the
// original position on overwrite.
func (b *Bag) Set(stat string, v Value) {
	if b.vals == nil {
		b.vals = make(map[string]Value)
	}
	if _, ok := b.vals[stat]; !ok {
		b.keys = append(b.keys, stat)
	}
	b.vals[stat] = v
}

// Get returns the value for a stat.
func (b *Bag) Get(stat string) (Value, bool) {
	v, ok := b.vals[stat]
	return v, ok
}

// Keys returns the stat codes in insertion order.
func (b *Bag) Keys() []string {
	out := make([]string, len(b.keys))
	copy(out, b.keys)
	return out
}

// Len returns the number of stats in the bag.
func (b *Bag) Len() int { return len(b.keys) }

// UnmarshalYAML decodes a stat mapping while preserving key order.
func (b *Bag) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("stats: expected a mapping, got kind %v", node.Kind)
	}

	*b = Bag{vals: make(map[string]Value, len(node.Content)/2)}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return fmt.Errorf("stats: %w", err)
		}
		var v Value
		if err := v.UnmarshalYAML(node.Content[i+1]); err != nil {
			return fmt.Errorf("stats: %s: %w", key, err)
		}
		b.Set(key, v)
	}
	return nil
}

// Buffed applies an arena buff profile across the whole bag, producing a new
// bag with the same keys in the same order. Pair values are buffed
// element-wise. Health is copied unchanged unless buffHealth is set, since
// stat cards show HP unbuffed by default. Stats outside the buffable set
// pass through untouched.
func Buffed(a *buffs.ArenaBuffs, bag *Bag, buffHealth bool) (*Bag, error) {
	out := NewBag()
	for _, stat := range bag.keys {
		v := bag.vals[stat]

		if stat == "health" && !buffHealth {
			out.Set(stat, v)
			continue
		}

		lo, err := a.TotalBuff(stat, v.Lo)
		if err != nil {
			return nil, err
		}
		if !v.Pair {
			out.Set(stat, Scalar(lo))
			continue
		}

		hi, err := a.TotalBuff(stat, v.Hi)
		if err != nil {
			return nil, err
		}
		out.Set(stat, Range(lo, hi))
	}
	return out, nil
}
