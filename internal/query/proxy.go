package query

import (
	"fmt"
	"reflect"
	"strings"
)

// MethodProxy lets a predicate call a boolean method on an entity's
// attribute value, e.g. Field("transform_range").Proxy().Method("Includes").
// Bind("LEGENDARY"). The proxy must receive exactly one method and one
// argument binding before evaluation; rebinding either is a caller bug.
type MethodProxy struct {
	sel       Selector
	method    string
	args      []any
	hasMethod bool
	bound     bool
	err       error
}

// Method names the boolean method to call on the attribute value.
// Choosing a method twice invalidates the proxy.
func (p *MethodProxy) Method(name string) *MethodProxy {
	if p.err != nil {
		return p
	}
	if p.hasMethod {
		p.err = fmt.Errorf("%w: method chosen twice", ErrProxyState)
		return p
	}
	p.method = name
	p.hasMethod = true
	return p
}

// Bind sets the call arguments. Binding twice, or before a method is chosen,
// invalidates the proxy.
func (p *MethodProxy) Bind(args ...any) *MethodProxy {
	if p.err != nil {
		return p
	}
	if !p.hasMethod {
		p.err = fmt.Errorf("%w: arguments bound before a method was chosen", ErrProxyState)
		return p
	}
	if p.bound {
		p.err = fmt.Errorf("%w: arguments bound twice", ErrProxyState)
		return p
	}
	p.args = args
	p.bound = true
	return p
}

// And combines the proxy with another predicate or a raw boolean.
func (p *MethodProxy) And(other any) *Expr { return And(p, other) }

// Or combines the proxy with another predicate or a raw boolean.
func (p *MethodProxy) Or(other any) *Expr { return Or(p, other) }

// Eval resolves the attribute on the entity and invokes the bound method.
// The method must exist on the attribute value (or its pointer) and return a
// single boolean.
func (p *MethodProxy) Eval(entity Entity) (bool, error) {
	if p.err != nil {
		return false, p.err
	}
	if !p.hasMethod || !p.bound {
		return false, fmt.Errorf("%w: evaluated before method and arguments were bound", ErrProxyState)
	}

	val, ok := entity.Attr(p.sel.attr)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownAttribute, p.sel.attr)
	}

	method, err := lookupMethod(val, p.method)
	if err != nil {
		return false, err
	}

	in := make([]reflect.Value, len(p.args))
	for i, arg := range p.args {
		in[i] = reflect.ValueOf(arg)
	}

	mt := method.Type()
	if mt.NumIn() != len(in) {
		return false, fmt.Errorf("%w: %s takes %d arguments, got %d",
			ErrProxyState, p.method, mt.NumIn(), len(in))
	}
	for i := range in {
		if !in[i].Type().AssignableTo(mt.In(i)) {
			if !in[i].Type().ConvertibleTo(mt.In(i)) {
				return false, fmt.Errorf("%w: argument %d of %s", ErrIncomparable, i, p.method)
			}
			in[i] = in[i].Convert(mt.In(i))
		}
	}

	out := method.Call(in)
	if len(out) != 1 || out[0].Kind() != reflect.Bool {
		return false, fmt.Errorf("%w: %s does not return a single boolean", ErrProxyState, p.method)
	}
	return out[0].Bool(), nil
}

func (p *MethodProxy) String() string {
	return fmt.Sprintf("<proxy %s.%s(%v)>", p.sel.attr, p.method, p.args)
}

// lookupMethod finds the named method on the value or its pointer. Plain
// strings get the strings-package predicates as methods so name attributes
// stay queryable without wrapper types.
func lookupMethod(val any, name string) (reflect.Value, error) {
	rv := reflect.ValueOf(val)
	if m := rv.MethodByName(name); m.IsValid() {
		return m, nil
	}

	// Addressable copy to reach pointer-receiver methods.
	ptr := reflect.New(rv.Type())
	ptr.Elem().Set(rv)
	if m := ptr.MethodByName(name); m.IsValid() {
		return m, nil
	}

	if rv.Kind() == reflect.String {
		if fn, ok := stringMethods[name]; ok {
			s := rv.String()
			return reflect.ValueOf(func(arg string) bool { return fn(s, arg) }), nil
		}
	}

	return reflect.Value{}, fmt.Errorf("%w: %T has no method %s", ErrProxyState, val, name)
}

var stringMethods = map[string]func(s, arg string) bool{
	"HasPrefix": strings.HasPrefix,
	"HasSuffix": strings.HasSuffix,
	"Contains":  strings.Contains,
	"EqualFold": strings.EqualFold,
}
