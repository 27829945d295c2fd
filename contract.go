package contracts

import (
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Contract is the interface every first-class contract implements. Any
// user-defined type satisfying it participates in composition exactly like
// the built-in contracts.
type Contract interface {
	// Valid reports whether the value satisfies the contract. It must not
	// mutate the value and must be total over any value.
	Valid(value any) bool

	fmt.Stringer
}

// Evaluate is the single validation entry point. It normalizes any contract
// representation and reports whether value satisfies it. On failure it also
// returns the sub-contract responsible, so callers can build precise error
// messages with Describe; on success failing is nil.
//
// Normalization order: a Contract value is asked directly; a reflect.Type is
// the implicit is-a shorthand (the value's dynamic type is, is assignable
// to, or implements the type); a *regexp.Regexp matches against the string
// coercion of the value; a map or slice literal is validated structurally,
// entry by entry; anything else is compared for structural equality.
func Evaluate(value, contract any) (passed bool, failing any) {
	switch c := contract.(type) {
	case Contract:
		if c.Valid(value) {
			return true, nil
		}
		return false, c
	case reflect.Type:
		if isA(value, c) {
			return true, nil
		}
		return false, c
	case *regexp.Regexp:
		if c.MatchString(fmt.Sprint(value)) {
			return true, nil
		}
		return false, c
	}

	if passed, failing, ok := evaluateLiteral(value, contract); ok {
		return passed, failing
	}

	if reflect.DeepEqual(value, contract) {
		return true, nil
	}
	return false, contract
}

// Describe renders the canonical description of any contract
// representation, composable across nested combinators.
func Describe(contract any) string {
	switch c := contract.(type) {
	case Contract:
		return c.String()
	case reflect.Type:
		return c.String()
	case *regexp.Regexp:
		return fmt.Sprintf("a value matching /%s/", c.String())
	case string:
		return strconv.Quote(c)
	case nil:
		return "nil"
	}

	rv := reflect.ValueOf(contract)
	switch rv.Kind() {
	case reflect.Map:
		entries := make([]string, 0, rv.Len())
		for iter := rv.MapRange(); iter.Next(); {
			entries = append(entries, fmt.Sprintf("%v: %s", iter.Key().Interface(), Describe(iter.Value().Interface())))
		}
		sort.Strings(entries) // map order is not deterministic, descriptions must be
		return "{" + strings.Join(entries, ", ") + "}"
	case reflect.Slice, reflect.Array:
		elems := make([]string, rv.Len())
		for i := range elems {
			elems[i] = Describe(rv.Index(i).Interface())
		}
		return "[" + strings.Join(elems, ", ") + "]"
	}

	return fmt.Sprint(contract)
}

// Type returns the reflect.Type of T, the convenient way to spell the is-a
// shorthand for interface types: contracts.Type[error]().
func Type[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

// isA implements the implicit is-a shorthand: the value's dynamic type
// equals the target, is assignable to it, or implements it when the target
// is an interface.
func isA(value any, t reflect.Type) bool {
	if value == nil {
		return false
	}
	vt := reflect.TypeOf(value)
	if vt == t {
		return true
	}
	if t.Kind() == reflect.Interface {
		return vt.Implements(t)
	}
	return vt.AssignableTo(t)
}

// evaluateLiteral handles map and slice literals used as contracts. A map
// literal validates the matching entries of a map value key by key (absent
// entries are validated as nil, extra entries in the value are allowed); a
// slice literal validates a same-length sequence positionally. The third
// return reports whether the contract was a literal at all.
func evaluateLiteral(value, contract any) (passed bool, failing any, ok bool) {
	cv := reflect.ValueOf(contract)
	switch cv.Kind() {
	case reflect.Map:
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Map {
			return false, contract, true
		}
		for iter := cv.MapRange(); iter.Next(); {
			var entry any
			kv := iter.Key()
			// unwrap interface-typed keys so a map[any]any literal can
			// index into a concretely-keyed value
			if kv.Kind() == reflect.Interface && !kv.IsNil() {
				kv = kv.Elem()
			}
			if kv.Type().AssignableTo(rv.Type().Key()) {
				if mv := rv.MapIndex(kv); mv.IsValid() {
					entry = mv.Interface()
				}
			}
			if pass, fail := Evaluate(entry, iter.Value().Interface()); !pass {
				return false, fail, true
			}
		}
		return true, nil, true
	case reflect.Slice, reflect.Array:
		rv := reflect.ValueOf(value)
		if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
			return false, contract, true
		}
		if rv.Len() != cv.Len() {
			return false, contract, true
		}
		for i := 0; i < cv.Len(); i++ {
			if pass, fail := Evaluate(rv.Index(i).Interface(), cv.Index(i).Interface()); !pass {
				return false, fail, true
			}
		}
		return true, nil, true
	}
	return false, nil, false
}

// isAbsent reports whether the value counts as "absent": a nil interface or
// a typed nil pointer, map, slice, channel, or function.
func isAbsent(value any) bool {
	if value == nil {
		return true
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
