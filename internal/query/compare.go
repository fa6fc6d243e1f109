package query

import (
	"fmt"
	"reflect"
)

// compare applies a comparison operator to two resolved operands.
// Numeric kinds compare numerically regardless of the concrete Go type, and
// named string types compare as strings, so entities are free to expose
// richer types. Equality on mismatched types is simply false; ordering on
// mismatched types is an error.
func compare(op cmpOp, l, r any) (bool, error) {
	if op == opEq {
		return looseEqual(l, r), nil
	}

	if lf, ok := asFloat(l); ok {
		if rf, ok := asFloat(r); ok {
			return orderFloat(op, lf, rf), nil
		}
	}
	if ls, ok := asString(l); ok {
		if rs, ok := asString(r); ok {
			return orderString(op, ls, rs), nil
		}
	}

	return false, fmt.Errorf("%w: %T %s %T", ErrIncomparable, l, op, r)
}

func looseEqual(l, r any) bool {
	if lf, ok := asFloat(l); ok {
		if rf, ok := asFloat(r); ok {
			return lf == rf
		}
		return false
	}
	if ls, ok := asString(l); ok {
		if rs, ok := asString(r); ok {
			return ls == rs
		}
		return false
	}
	if lb, ok := l.(bool); ok {
		rb, ok := r.(bool)
		return ok && lb == rb
	}
	return reflect.DeepEqual(l, r)
}

func orderFloat(op cmpOp, l, r float64) bool {
	switch op {
	case opLt:
		return l < r
	case opLe:
		return l <= r
	case opGt:
		return l > r
	default:
		return l >= r
	}
}

func orderString(op cmpOp, l, r string) bool {
	switch op {
	case opLt:
		return l < r
	case opLe:
		return l <= r
	case opGt:
		return l > r
	default:
		return l >= r
	}
}

// asFloat widens any numeric kind to float64.
func asFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}

// asString unwraps any string kind, including named string types.
func asString(v any) (string, bool) {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}
