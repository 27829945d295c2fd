package contracts

import (
	"fmt"
	"reflect"
	"sync"
)

// containerKind discriminates the concrete container a collection contract
// accepts and knows how to walk its elements. A kind may carry a lazy
// one-time setup; the sync.Once guarantees it runs at most once even under
// concurrent construction.
type containerKind struct {
	name    string
	once    sync.Once
	setup   func()
	accepts func(reflect.Value) bool
	each    func(reflect.Value, func(any) bool) bool
}

var sliceKind = &containerKind{
	name: "a collection",
	accepts: func(rv reflect.Value) bool {
		return rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array
	},
	each: func(rv reflect.Value, fn func(any) bool) bool {
		for i := 0; i < rv.Len(); i++ {
			if !fn(rv.Index(i).Interface()) {
				return false
			}
		}
		return true
	},
}

// emptyStructType is resolved lazily by setKind's setup.
var emptyStructType reflect.Type

var setKind = &containerKind{
	name:  "a set",
	setup: func() { emptyStructType = reflect.TypeOf(struct{}{}) },
	accepts: func(rv reflect.Value) bool {
		return rv.Kind() == reflect.Map && rv.Type().Elem() == emptyStructType
	},
	each: func(rv reflect.Value, fn func(any) bool) bool {
		for iter := rv.MapRange(); iter.Next(); {
			if !fn(iter.Key().Interface()) {
				return false
			}
		}
		return true
	},
}

// SliceOf passes when the value is a slice or array whose every element
// satisfies elem.
func SliceOf(elem any) Contract {
	return newCollectionOf(sliceKind, elem)
}

// SetOf passes when the value is a set — a map with struct{} values —
// whose every member satisfies elem.
func SetOf(elem any) Contract {
	return newCollectionOf(setKind, elem)
}

// newCollectionOf is the parametrized factory shared by the fixed container
// kinds; call sites only ever supply the element contract.
func newCollectionOf(kind *containerKind, elem any) Contract {
	if kind == nil {
		panic(fmt.Errorf("%w: collection contract requires a container kind", ErrMalformedContract))
	}
	if kind.setup != nil {
		kind.once.Do(kind.setup)
	}
	return collectionOf{kind, elem}
}

type collectionOf struct {
	kind *containerKind
	elem any
}

func (c collectionOf) Valid(value any) bool {
	if isAbsent(value) {
		return false
	}
	rv := reflect.ValueOf(value)
	if !c.kind.accepts(rv) {
		return false
	}
	return c.kind.each(rv, func(elem any) bool {
		ok, _ := Evaluate(elem, c.elem)
		return ok
	})
}

func (c collectionOf) String() string {
	return fmt.Sprintf("%s of %s", c.kind.name, Describe(c.elem))
}

// HashOf passes when the value is a map whose every key satisfies key and
// whose every value satisfies val.
func HashOf(key, val any) Contract {
	return hashOf{key, val}
}

// HashOfEntry is sugar for the common HashOf case: the single entry of the
// literal supplies the key and value contracts. Panics with
// ErrMalformedContract unless the literal holds exactly one pair.
func HashOfEntry(entry map[any]any) Contract {
	if len(entry) != 1 {
		panic(fmt.Errorf("%w: HashOfEntry requires exactly one key/value pair, got %d", ErrMalformedContract, len(entry)))
	}
	for key, val := range entry {
		return hashOf{key, val}
	}
	return nil // unreachable
}

type hashOf struct {
	key, val any
}

func (c hashOf) Valid(value any) bool {
	if isAbsent(value) {
		return false
	}
	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Map {
		return false
	}
	for iter := rv.MapRange(); iter.Next(); {
		if ok, _ := Evaluate(iter.Key().Interface(), c.key); !ok {
			return false
		}
		if ok, _ := Evaluate(iter.Value().Interface(), c.val); !ok {
			return false
		}
	}
	return true
}

func (c hashOf) String() string {
	return fmt.Sprintf("a map from %s to %s", Describe(c.key), Describe(c.val))
}
