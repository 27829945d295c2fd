package contracts

import (
	"fmt"
	"reflect"
	"strings"
)

// RespondTo passes when the value exposes every named method. It probes for
// the capability only; the methods are never invoked.
func RespondTo(names ...string) Contract {
	return respondTo{names}
}

type respondTo struct{ names []string }

func (c respondTo) Valid(value any) bool {
	if value == nil {
		return len(c.names) == 0
	}
	rv := reflect.ValueOf(value)
	for _, name := range c.names {
		if !rv.MethodByName(name).IsValid() {
			return false
		}
	}
	return true
}

func (c respondTo) String() string {
	return fmt.Sprintf("a value that responds to %s", strings.Join(c.names, ", "))
}

// Send passes when invoking every named niladic method on the value returns
// true. Each name must denote a method of signature func() bool already
// present on the value; a missing method or any other signature is a
// malformed contract and panics with ErrMalformedContract at validation
// time rather than being silently coerced. An absent value has no methods
// and panics the same way, so Maybe cannot make a Send optional — probe the
// value for presence before composing it.
func Send(names ...string) Contract {
	return send{names}
}

type send struct{ names []string }

func (c send) Valid(value any) bool {
	if value == nil {
		panic(fmt.Errorf("%w: Send cannot probe methods %v on an absent value", ErrMalformedContract, c.names))
	}
	rv := reflect.ValueOf(value)
	for _, name := range c.names {
		m := rv.MethodByName(name)
		if !m.IsValid() {
			panic(fmt.Errorf("%w: Send names method %q which %T does not have", ErrMalformedContract, name, value))
		}
		mt := m.Type()
		if mt.NumIn() != 0 || mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.Bool {
			panic(fmt.Errorf("%w: Send requires %q on %T to be a niladic boolean method", ErrMalformedContract, name, value))
		}
		if !m.Call(nil)[0].Bool() {
			return false
		}
	}
	return true
}

func (c send) String() string {
	return fmt.Sprintf("a value answering true to %s", strings.Join(c.names, ", "))
}

// Exactly passes when the value's exact dynamic type equals t. Unlike the
// is-a shorthand of a bare reflect.Type, assignable and
// interface-implementing types are rejected.
func Exactly(t reflect.Type) Contract {
	return exactly{t}
}

type exactly struct{ t reflect.Type }

func (c exactly) Valid(value any) bool {
	return reflect.TypeOf(value) == c.t
}

func (c exactly) String() string {
	return fmt.Sprintf("exactly the type %s", c.t)
}

// Eq passes when the value is the same instance as ref: identical dynamic
// type, and pointer identity for reference kinds. Comparable value kinds
// fall back to plain equality, which also makes Eq the escape hatch that
// treats a reflect.Type or *regexp.Regexp as a plain value instead of
// triggering its shorthand meaning.
func Eq(ref any) Contract {
	return eq{ref}
}

type eq struct{ ref any }

func (c eq) Valid(value any) bool {
	if value == nil || c.ref == nil {
		return value == nil && c.ref == nil
	}
	rv, rr := reflect.ValueOf(value), reflect.ValueOf(c.ref)
	if rv.Type() != rr.Type() {
		return false
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.Pointer() == rr.Pointer()
	case reflect.Slice:
		return rv.Pointer() == rr.Pointer() && rv.Len() == rr.Len()
	}
	if rv.Comparable() {
		return value == c.ref
	}
	return false
}

func (c eq) String() string {
	return fmt.Sprintf("the same instance as %v", c.ref)
}
