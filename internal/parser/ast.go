// Package parser implements the small filter DSL the search command accepts,
// e.g. `rarity = L & weight <= 500 | type = TORSO`. Parsed filters compile
// into predicate expression trees.
package parser

// Filter is a disjunction of clauses; `|` binds loosest.
type Filter struct {
	Any []*Clause `parser:"@@ ( \"|\" @@ )*"`
}

// Clause is a conjunction of comparisons joined by `&`.
type Clause struct {
	All []*Comparison `parser:"@@ ( \"&\" @@ )*"`
}

// Comparison tests one attribute against a literal. The `~` operator means
// membership for tags and substring match for strings.
type Comparison struct {
	Field string   `parser:"@Ident"`
	Op    string   `parser:"@Op"`
	Value *Literal `parser:"@@"`
}

// Literal is a comparison operand: an integer, a quoted string, or a bare
// word (item type names, tier letters and the like).
type Literal struct {
	Int  *int    `parser:"@Int"`
	Str  *string `parser:"| @String"`
	Word *string `parser:"| @Ident"`
}

// Value returns the literal as the Go value comparisons expect.
func (l *Literal) Value() any {
	switch {
	case l.Int != nil:
		return *l.Int
	case l.Str != nil:
		return *l.Str
	case l.Word != nil:
		return *l.Word
	}
	return nil
}
