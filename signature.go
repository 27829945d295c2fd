package contracts

import (
	"fmt"
	"reflect"
	"strings"
)

// VariadicArgs marks a contract as applying to each element of a variadic
// trailing parameter list at a call site. It carries no validation logic of
// its own; a call-site adapter unwraps Elem and applies it per element.
type VariadicArgs struct {
	elem any
}

// Args wraps the contract every element of a variadic tail must satisfy.
func Args(elem any) *VariadicArgs {
	return &VariadicArgs{elem}
}

// Elem returns the wrapped per-element contract.
func (c *VariadicArgs) Elem() any { return c.elem }

// Valid accepts any value: the wrapper itself constrains nothing, the
// call-site adapter applies Elem to each tail element.
func (c *VariadicArgs) Valid(any) bool { return true }

func (c *VariadicArgs) String() string {
	return fmt.Sprintf("any number of %s", Describe(c.elem))
}

// FuncShape wraps an ordered sequence of contracts describing a callable's
// declared parameter/return shape. The shape is descriptive: this package
// never invokes or intercepts the callable, it only checks that the value
// is callable and carries the shape for a call-site adapter.
type FuncShape struct {
	contracts []any
}

// Func wraps the contracts describing a callable's shape. Panics with
// ErrMalformedContract when given no contracts.
func Func(shape ...any) *FuncShape {
	mustChildren("Func", shape)
	return &FuncShape{shape}
}

// Contracts returns the declared shape in order.
func (c *FuncShape) Contracts() []any { return c.contracts }

// Valid reports whether the value is callable at all; the declared shape is
// enforced by the call-site adapter at invocation time.
func (c *FuncShape) Valid(value any) bool {
	return value != nil && reflect.TypeOf(value).Kind() == reflect.Func
}

func (c *FuncShape) String() string {
	parts := make([]string, len(c.contracts))
	for i, child := range c.contracts {
		parts[i] = Describe(child)
	}
	return fmt.Sprintf("a function of (%s)", strings.Join(parts, ", "))
}
