package decorate

import (
	"fmt"
	"log/slog"
	"reflect"

	"github.com/dmitrymomot/contracts"
)

// Spec declares the contracts a wrapped function's invocations must
// satisfy, in signature order. A trailing contracts.Args in Params applies
// its element contract to each element of the variadic tail.
type Spec struct {
	Params  []any
	Results []any
}

// Option configures wrapping behavior.
type Option func(*config)

type config struct {
	logger *slog.Logger
}

// WithLogger logs every violation through the given logger before the
// wrapped call panics. Without it violations are not logged.
func WithLogger(l *slog.Logger) Option {
	return func(c *config) { c.logger = l }
}

// Wrap returns a function of the same type as fn that validates each
// argument against spec.Params before delegating and each result against
// spec.Results after. On violation it panics with a *Violation. A spec
// that does not fit fn's signature panics with ErrMalformedSpec at Wrap
// time. The caller type-asserts the result back to fn's concrete type.
func Wrap(fn any, spec Spec, opts ...Option) any {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	fv := reflect.ValueOf(fn)
	if !fv.IsValid() || fv.Kind() != reflect.Func {
		panic(fmt.Errorf("%w: Wrap requires a function, got %T", ErrMalformedSpec, fn))
	}
	t := fv.Type()
	if len(spec.Params) != t.NumIn() {
		panic(fmt.Errorf("%w: %d parameter contracts for %d parameters", ErrMalformedSpec, len(spec.Params), t.NumIn()))
	}
	if len(spec.Results) != t.NumOut() {
		panic(fmt.Errorf("%w: %d result contracts for %d results", ErrMalformedSpec, len(spec.Results), t.NumOut()))
	}
	var tail *contracts.VariadicArgs
	for i, pc := range spec.Params {
		va, ok := pc.(*contracts.VariadicArgs)
		if !ok {
			continue
		}
		if !t.IsVariadic() || i != t.NumIn()-1 {
			panic(fmt.Errorf("%w: contracts.Args is only valid for the variadic tail", ErrMalformedSpec))
		}
		tail = va
	}
	if t.IsVariadic() && tail == nil {
		panic(fmt.Errorf("%w: variadic function requires a trailing contracts.Args", ErrMalformedSpec))
	}

	wrapped := reflect.MakeFunc(t, func(in []reflect.Value) []reflect.Value {
		fixed := len(in)
		if tail != nil {
			fixed--
		}
		for i := 0; i < fixed; i++ {
			value := in[i].Interface()
			if ok, failing := contracts.Evaluate(value, spec.Params[i]); !ok {
				cfg.report(newViolation(fmt.Sprintf("argument %d", i+1), value, spec.Params[i], failing))
			}
		}
		if tail != nil {
			rest := in[len(in)-1]
			for j := 0; j < rest.Len(); j++ {
				value := rest.Index(j).Interface()
				if ok, failing := contracts.Evaluate(value, tail.Elem()); !ok {
					cfg.report(newViolation(fmt.Sprintf("argument %d", fixed+j+1), value, tail.Elem(), failing))
				}
			}
		}

		var out []reflect.Value
		if t.IsVariadic() {
			out = fv.CallSlice(in)
		} else {
			out = fv.Call(in)
		}

		for i, rc := range spec.Results {
			value := out[i].Interface()
			if ok, failing := contracts.Evaluate(value, rc); !ok {
				cfg.report(newViolation(fmt.Sprintf("result %d", i+1), value, rc, failing))
			}
		}
		return out
	})

	return wrapped.Interface()
}

// Check validates a single value at a manual call site, returning the
// *Violation instead of panicking. A nil return means the value passed.
func Check(value, contract any) error {
	if ok, failing := contracts.Evaluate(value, contract); !ok {
		return newViolation("value", value, contract, failing)
	}
	return nil
}

func (c *config) report(v *Violation) {
	if c.logger != nil {
		c.logger.Error("contract violation",
			slog.String("position", v.Position),
			slog.String("expected", v.Expected),
			slog.Any("value", v.Value),
		)
	}
	panic(v)
}
