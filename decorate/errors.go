package decorate

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/contracts"
)

// ErrMalformedSpec indicates the declared Spec does not fit the wrapped
// function's signature: wrong parameter or result count, a non-function
// value, or a contracts.Args placed anywhere but the variadic tail. It is
// raised via panic at Wrap time, never at call time.
var ErrMalformedSpec = errors.New("malformed contract spec")

// Violation describes a single rejected validation at a decorated call
// site.
type Violation struct {
	// Position names the offending slot, e.g. "argument 2" or "result 1".
	Position string
	// Expected is the canonical description of the failing contract.
	Expected string
	// Value is the value that was rejected.
	Value any
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return fmt.Sprintf("contract violation: %s: got %v, want %s", v.Position, v.Value, v.Expected)
}

// newViolation builds a Violation from the evaluator's failing
// sub-contract, falling back to the declared contract when the evaluator
// had nothing more precise.
func newViolation(position string, value, declared, failing any) *Violation {
	if failing == nil {
		failing = declared
	}
	return &Violation{
		Position: position,
		Expected: contracts.Describe(failing),
		Value:    value,
	}
}
