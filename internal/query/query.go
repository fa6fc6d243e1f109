// Package query implements a small declarative predicate engine over entity
// attributes. Callers build boolean expression trees through a fluent API
// (Field("weight").Le(500).And(Field("element").Eq("PHYSICAL"))) and a
// Manager evaluates them against ordered entity collections. Expressions are
// immutable once built and evaluated per entity with no caching.
package query

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPredicate is returned when a raw boolean (or any other
	// non-expression value) is passed where a built predicate is required.
	ErrInvalidPredicate = errors.New("predicate must be a built expression")

	// ErrIncomparable is returned when operand types do not support the
	// requested ordering at evaluation time.
	ErrIncomparable = errors.New("operand types cannot be ordered")

	// ErrUnknownAttribute is returned when a selector names an attribute
	// the entity does not expose.
	ErrUnknownAttribute = errors.New("entity has no such attribute")

	// ErrProxyState is returned when a method proxy is rebound or
	// evaluated before both its method and arguments are set.
	ErrProxyState = errors.New("method proxy misused")
)

// Entity exposes named attributes to selectors. Implementations return the
// attribute value and whether the name is known.
type Entity interface {
	Attr(name string) (any, bool)
}

// Predicate is a boolean expression evaluable against a concrete entity.
// Both composite expressions and method proxies satisfy it.
type Predicate interface {
	Eval(e Entity) (bool, error)
}

// Selector is a bound reference to one named attribute of an entity.
// Comparing it against a literal or another Selector produces an expression
// node; nothing is evaluated until the node meets an entity.
type Selector struct {
	attr string
}

// Field creates a selector for the named attribute.
func Field(name string) Selector { return Selector{attr: name} }

// Attr returns the attribute name the selector is bound to.
func (s Selector) Attr() string { return s.attr }

// Eq builds an equality test against a literal, another selector, or a
// nested predicate.
func (s Selector) Eq(other any) *Expr { return newCmp(opEq, s, other) }

// Lt builds a less-than test.
func (s Selector) Lt(other any) *Expr { return newCmp(opLt, s, other) }

// Le builds a less-or-equal test.
func (s Selector) Le(other any) *Expr { return newCmp(opLe, s, other) }

// Gt builds a greater-than test.
func (s Selector) Gt(other any) *Expr { return newCmp(opGt, s, other) }

// Ge builds a greater-or-equal test.
func (s Selector) Ge(other any) *Expr { return newCmp(opGe, s, other) }

// Between builds an inclusive range test, lo <= attr <= hi.
func (s Selector) Between(lo, hi any) *Expr {
	return s.Ge(lo).And(s.Le(hi))
}

// Proxy returns a method proxy for the selector's attribute value, letting a
// predicate call a boolean method on it. Bind a method and its arguments
// before evaluating.
func (s Selector) Proxy() *MethodProxy { return &MethodProxy{sel: s} }

type kind int

const (
	kindCmp kind = iota
	kindAnd
	kindOr
)

type cmpOp int

const (
	opEq cmpOp = iota
	opLt
	opLe
	opGt
	opGe
)

func (op cmpOp) String() string {
	switch op {
	case opEq:
		return "=="
	case opLt:
		return "<"
	case opLe:
		return "<="
	case opGt:
		return ">"
	case opGe:
		return ">="
	}
	return "?"
}

// Expr is a node in a predicate expression tree: either a comparison of two
// operands or a logical combination of two sub-predicates.
type Expr struct {
	kind        kind
	op          cmpOp
	left, right any
}

func newCmp(op cmpOp, left, right any) *Expr {
	return &Expr{kind: kindCmp, op: op, left: left, right: right}
}

// And combines this expression with another predicate or a raw boolean.
func (e *Expr) And(other any) *Expr { return And(e, other) }

// Or combines this expression with another predicate or a raw boolean.
func (e *Expr) Or(other any) *Expr { return Or(e, other) }

// And builds the conjunction of two operands, each a predicate or a raw
// boolean. The package-level form covers boolean-first composition,
// And(true, expr).
func And(a, b any) *Expr { return &Expr{kind: kindAnd, left: a, right: b} }

// Or builds the disjunction of two operands, each a predicate or a raw
// boolean.
func Or(a, b any) *Expr { return &Expr{kind: kindOr, left: a, right: b} }

// Eval resolves both operands against the entity and applies the node's
// comparison or logical function.
func (e *Expr) Eval(entity Entity) (bool, error) {
	if e.kind == kindCmp {
		l, err := resolveOperand(e.left, entity)
		if err != nil {
			return false, err
		}
		r, err := resolveOperand(e.right, entity)
		if err != nil {
			return false, err
		}
		return compare(e.op, l, r)
	}

	l, err := resolveBool(e.left, entity)
	if err != nil {
		return false, err
	}
	r, err := resolveBool(e.right, entity)
	if err != nil {
		return false, err
	}
	if e.kind == kindAnd {
		return l && r, nil
	}
	return l || r, nil
}

func (e *Expr) String() string {
	switch e.kind {
	case kindAnd:
		return fmt.Sprintf("(%v & %v)", e.left, e.right)
	case kindOr:
		return fmt.Sprintf("(%v | %v)", e.left, e.right)
	default:
		return fmt.Sprintf("(%v %s %v)", e.left, e.op, e.right)
	}
}

// resolveOperand turns a comparison operand into a concrete value: selectors
// resolve through attribute lookup, nested predicates recurse, literals pass
// through.
func resolveOperand(operand any, entity Entity) (any, error) {
	switch v := operand.(type) {
	case Selector:
		val, ok := entity.Attr(v.attr)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownAttribute, v.attr)
		}
		return val, nil
	case Predicate:
		return v.Eval(entity)
	default:
		return operand, nil
	}
}

// resolveBool turns a logical operand into a boolean: predicates evaluate,
// raw booleans pass through, anything else is a caller bug.
func resolveBool(operand any, entity Entity) (bool, error) {
	switch v := operand.(type) {
	case Predicate:
		return v.Eval(entity)
	case bool:
		return v, nil
	default:
		return false, fmt.Errorf("%w: logical operand %T", ErrInvalidPredicate, operand)
	}
}
