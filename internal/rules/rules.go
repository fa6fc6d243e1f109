// Package rules evaluates ad-hoc CEL formulas against items, the power-user
// counterpart to the search DSL. Formulas see the item as a set of top-level
// variables: `stats.eneCap >= 200 && element == "ELECTRIC"`.
package rules

import (
	"fmt"

	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/ext"

	"github.com/Enegg/SuperMechs-bot/internal/item"
)

// Evaluator wraps a CEL environment configured for item filter formulas.
type Evaluator struct {
	env *cel.Env
}

// NewEvaluator creates a CEL environment with the item variables every
// formula can reference.
func NewEvaluator() (*Evaluator, error) {
	env, err := cel.NewEnv(
		ext.Strings(),
		ext.Lists(),

		cel.Variable("id", cel.IntType),
		cel.Variable("name", cel.StringType),
		cel.Variable("type", cel.StringType),
		cel.Variable("element", cel.StringType),
		cel.Variable("rarity", cel.StringType),
		cel.Variable("min_rarity", cel.StringType),
		cel.Variable("weight", cel.IntType),
		cel.Variable("stats", cel.MapType(cel.StringType, cel.DynType)),
		cel.Variable("tags", cel.ListType(cel.StringType)),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create CEL environment: %w", err)
	}
	return &Evaluator{env: env}, nil
}

// Program is a compiled formula, reusable across items.
type Program struct {
	prg cel.Program
}

// Compile checks and compiles a formula once; Match runs it per item.
func (ev *Evaluator) Compile(formula string) (*Program, error) {
	ast, issues := ev.env.Compile(formula)
	if issues != nil && issues.Err() != nil {
		return nil, fmt.Errorf("CEL compile error: %w", issues.Err())
	}
	prg, err := ev.env.Program(ast)
	if err != nil {
		return nil, fmt.Errorf("CEL program error: %w", err)
	}
	return &Program{prg: prg}, nil
}

// Match evaluates the formula against one item. The formula must produce a
// boolean.
func (p *Program) Match(it *item.Item) (bool, error) {
	out, _, err := p.prg.Eval(itemContext(it))
	if err != nil {
		return false, fmt.Errorf("CEL eval error: %w", err)
	}
	b, ok := out.Value().(bool)
	if !ok {
		return false, fmt.Errorf("formula result is %T, not a boolean", out.Value())
	}
	return b, nil
}

// FilterItems compiles the formula and returns the items matching it,
// preserving input order.
func (ev *Evaluator) FilterItems(formula string, items []*item.Item) ([]*item.Item, error) {
	prg, err := ev.Compile(formula)
	if err != nil {
		return nil, err
	}
	var out []*item.Item
	for _, it := range items {
		hit, err := prg.Match(it)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", it.Name, err)
		}
		if hit {
			out = append(out, it)
		}
	}
	return out, nil
}

// itemContext converts an item into the variable map formulas evaluate
// against. Stat scalars become int64, spreads become two-element lists, so
// formulas can use standard CEL indexing.
func itemContext(it *item.Item) map[string]any {
	statsMap := make(map[string]any, it.Stats.Len())
	for _, key := range it.Stats.Keys() {
		v, _ := it.Stats.Get(key)
		if v.Pair {
			statsMap[key] = []any{int64(v.Lo), int64(v.Hi)}
		} else {
			statsMap[key] = int64(v.Lo)
		}
	}

	tags := make([]string, len(it.Tags))
	copy(tags, it.Tags)

	return map[string]any{
		"id":         int64(it.ID),
		"name":       it.Name,
		"type":       it.Type.String(),
		"element":    it.Element.String(),
		"rarity":     it.Transform.Max().String(),
		"min_rarity": it.Transform.Min().String(),
		"weight":     int64(it.Weight()),
		"stats":      statsMap,
		"tags":       tags,
	}
}
