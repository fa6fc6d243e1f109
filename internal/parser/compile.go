package parser

import (
	"fmt"
	"strings"

	"github.com/Enegg/SuperMechs-bot/internal/item"
	"github.com/Enegg/SuperMechs-bot/internal/query"
)

// Compile lowers a parsed filter into a predicate expression tree.
func Compile(f *Filter) (query.Predicate, error) {
	if f == nil || len(f.Any) == 0 {
		return nil, fmt.Errorf("empty filter")
	}

	var disjunction query.Predicate
	for _, clause := range f.Any {
		pred, err := compileClause(clause)
		if err != nil {
			return nil, err
		}
		if disjunction == nil {
			disjunction = pred
		} else {
			disjunction = query.Or(disjunction, pred)
		}
	}
	return disjunction, nil
}

func compileClause(c *Clause) (query.Predicate, error) {
	var conjunction query.Predicate
	for _, cmp := range c.All {
		pred, err := compileComparison(cmp)
		if err != nil {
			return nil, err
		}
		if conjunction == nil {
			conjunction = pred
		} else {
			conjunction = query.And(conjunction, pred)
		}
	}
	return conjunction, nil
}

func compileComparison(c *Comparison) (query.Predicate, error) {
	sel := query.Field(c.Field)
	val := c.Value.Value()

	// Let users write tier letters and lowercase names for enum-ish fields.
	if word, ok := val.(string); ok {
		val = normalizeWord(c.Field, word)
	}

	switch c.Op {
	case "=", "==":
		return sel.Eq(val), nil
	case "!=":
		// The expression tree has no negation node; for the ordered
		// values the DSL deals in, a != b is (a < b) | (a > b).
		return sel.Lt(val).Or(sel.Gt(val)), nil
	case "<":
		return sel.Lt(val), nil
	case "<=":
		return sel.Le(val), nil
	case ">":
		return sel.Gt(val), nil
	case ">=":
		return sel.Ge(val), nil
	case "~":
		method := "Contains"
		if c.Field == "tags" {
			method = "Has"
		}
		str, ok := val.(string)
		if !ok {
			return nil, fmt.Errorf("operator ~ needs a string operand")
		}
		return sel.Proxy().Method(method).Bind(str), nil
	}
	return nil, fmt.Errorf("unknown operator %q", c.Op)
}

// normalizeWord canonicalizes bare words for fields backed by enums, so
// `rarity = L` and `element = physical` both work.
func normalizeWord(field, word string) string {
	switch field {
	case "rarity":
		if r, err := item.ParseRarity(word); err == nil {
			return r.String()
		}
	case "element":
		if e, err := item.ParseElement(word); err == nil {
			return e.String()
		}
	case "type":
		if t, err := item.ParseType(word); err == nil {
			return t.String()
		}
	}
	return word
}

// ParseAndCompile is the one-call form commands use.
func ParseAndCompile(input string) (query.Predicate, error) {
	filter, err := Build().ParseString("", input)
	if err != nil {
		return nil, MapError(input, err)
	}
	return Compile(filter)
}

// MapError turns a participle error into a human-friendly guidance message.
func MapError(input string, err error) error {
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("empty filter; try: weight <= 500 & element = PHYSICAL")
	}
	return fmt.Errorf("could not parse filter %q: %w (expected e.g. `rarity = L & weight <= 500`)", input, err)
}
