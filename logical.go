package contracts

import (
	"fmt"
	"strings"
)

// Or passes when at least one child accepts the value. Children are
// evaluated in construction order and evaluation stops at the first
// acceptance. Panics with ErrMalformedContract when given no children.
func Or(children ...any) Contract {
	mustChildren("Or", children)
	return orContract{children}
}

// Xor passes when exactly one child accepts the value. Every child is
// evaluated, since the count of acceptances decides the result. Panics with
// ErrMalformedContract when given no children.
func Xor(children ...any) Contract {
	mustChildren("Xor", children)
	return xorContract{children}
}

// And passes when every child accepts the value, stopping at the first
// rejection. Panics with ErrMalformedContract when given no children.
func And(children ...any) Contract {
	mustChildren("And", children)
	return andContract{children}
}

// Not passes when every child rejects the value. Panics with
// ErrMalformedContract when given no children.
func Not(children ...any) Contract {
	mustChildren("Not", children)
	return notContract{children}
}

// Maybe is Or over the given children plus an implicit "value is absent"
// branch, letting any contract additionally accept nil without hand-writing
// the disjunction. Panics with ErrMalformedContract when given no children.
func Maybe(children ...any) Contract {
	mustChildren("Maybe", children)
	return Or(append(append(make([]any, 0, len(children)+1), children...), absent)...)
}

type orContract struct{ children []any }

func (c orContract) Valid(value any) bool {
	for _, child := range c.children {
		if ok, _ := Evaluate(value, child); ok {
			return true
		}
	}
	return false
}

func (c orContract) String() string { return joinDescriptions(c.children, "or") }

type xorContract struct{ children []any }

func (c xorContract) Valid(value any) bool {
	accepted := 0
	for _, child := range c.children {
		if ok, _ := Evaluate(value, child); ok {
			accepted++
		}
	}
	return accepted == 1
}

func (c xorContract) String() string { return joinDescriptions(c.children, "xor") }

type andContract struct{ children []any }

func (c andContract) Valid(value any) bool {
	for _, child := range c.children {
		if ok, _ := Evaluate(value, child); !ok {
			return false
		}
	}
	return true
}

func (c andContract) String() string { return joinDescriptions(c.children, "and") }

type notContract struct{ children []any }

func (c notContract) Valid(value any) bool {
	for _, child := range c.children {
		if ok, _ := Evaluate(value, child); ok {
			return false
		}
	}
	return true
}

func (c notContract) String() string {
	parts := make([]string, len(c.children))
	for i, child := range c.children {
		parts[i] = Describe(child)
	}
	return fmt.Sprintf("a value that is none of [%s]", strings.Join(parts, ", "))
}

// joinDescriptions renders child descriptions joined with ", ", the
// connective word preceding the last one.
func joinDescriptions(children []any, connective string) string {
	parts := make([]string, len(children))
	for i, child := range children {
		parts[i] = Describe(child)
	}
	if len(parts) == 1 {
		return parts[0]
	}
	return strings.Join(parts[:len(parts)-1], ", ") + " " + connective + " " + parts[len(parts)-1]
}

func mustChildren(name string, children []any) {
	if len(children) == 0 {
		panic(fmt.Errorf("%w: %s requires at least one child contract", ErrMalformedContract, name))
	}
}
