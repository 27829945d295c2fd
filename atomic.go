package contracts

import (
	"math"
	"reflect"
)

// atomic is a stateless named predicate over a single value. All built-in
// zero-parameter contracts share it.
type atomic struct {
	name  string
	check func(value any) bool
}

func (a *atomic) Valid(value any) bool { return a.check(value) }
func (a *atomic) String() string       { return a.name }

// Built-in atomic contracts. Each is a pure function of one value with no
// construction-time parameters.
var (
	// Num accepts any numeric value.
	Num Contract = &atomic{"a number", func(v any) bool {
		_, ok := toFloat(v)
		return ok
	}}

	// Pos accepts numeric values strictly greater than zero.
	Pos Contract = &atomic{"a positive number", func(v any) bool {
		f, ok := toFloat(v)
		return ok && f > 0
	}}

	// Neg accepts numeric values strictly less than zero.
	Neg Contract = &atomic{"a negative number", func(v any) bool {
		f, ok := toFloat(v)
		return ok && f < 0
	}}

	// Nat accepts present, numeric, integral values greater than or equal
	// to zero. Absent values fail rather than error.
	Nat Contract = &atomic{"a natural number", func(v any) bool {
		f, ok := toFloat(v)
		return ok && f >= 0 && math.Trunc(f) == f
	}}

	// Bool accepts exactly true or false.
	Bool Contract = &atomic{"true or false", func(v any) bool {
		return v != nil && reflect.TypeOf(v).Kind() == reflect.Bool
	}}

	// Any accepts every value, including absent ones.
	Any Contract = &atomic{"anything", func(any) bool { return true }}

	// None rejects every value, including absent ones.
	None Contract = &atomic{"nothing", func(any) bool { return false }}
)

// absent is the implicit branch Maybe appends to its disjunction.
var absent Contract = &atomic{"an absent value", isAbsent}

// toFloat reports whether the value is of any numeric kind and returns it
// widened to float64 for range checks.
func toFloat(value any) (float64, bool) {
	if value == nil {
		return 0, false
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	}
	return 0, false
}
