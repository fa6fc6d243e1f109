package query

import "fmt"

// Manager wraps an ordered sequence of entities and runs predicates over it.
type Manager[T Entity] struct {
	items []T
}

// NewManager creates a manager over the given entities. The slice order is
// preserved in every result.
func NewManager[T Entity](items ...T) *Manager[T] {
	return &Manager[T]{items: items}
}

// Items returns the managed entities in their original order.
func (m *Manager[T]) Items() []T {
	out := make([]T, len(m.items))
	copy(out, m.items)
	return out
}

// Find returns the first entity matching the predicate, or ok=false when
// nothing matches. The predicate must be a built expression; a raw boolean
// is rejected.
func (m *Manager[T]) Find(pred any) (match T, ok bool, err error) {
	p, err := checkPredicate(pred)
	if err != nil {
		return match, false, err
	}
	for _, item := range m.items {
		hit, err := p.Eval(item)
		if err != nil {
			return match, false, err
		}
		if hit {
			return item, true, nil
		}
	}
	return match, false, nil
}

// FindAll returns every entity matching the predicate, preserving the
// original order. An empty result is valid.
func (m *Manager[T]) FindAll(pred any) ([]T, error) {
	p, err := checkPredicate(pred)
	if err != nil {
		return nil, err
	}
	var out []T
	for _, item := range m.items {
		hit, err := p.Eval(item)
		if err != nil {
			return nil, err
		}
		if hit {
			out = append(out, item)
		}
	}
	return out, nil
}

// checkPredicate rejects anything that is not a built expression. Booleans
// are singled out because pre-evaluated conditions are the common mistake.
func checkPredicate(pred any) (Predicate, error) {
	switch v := pred.(type) {
	case Predicate:
		return v, nil
	case bool:
		return nil, fmt.Errorf("%w: got a pre-evaluated boolean", ErrInvalidPredicate)
	default:
		return nil, fmt.Errorf("%w: got %T", ErrInvalidPredicate, pred)
	}
}
