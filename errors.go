package contracts

import "errors"

// Predefined errors for the contracts package.
var (
	// ErrMalformedContract indicates a defect in how a contract was
	// constructed: an empty combinator child list, a HashOfEntry literal
	// without exactly one pair, or a Send probe naming a method the value
	// does not have. It is raised via panic because it is a programmer
	// error, not a validation result.
	ErrMalformedContract = errors.New("malformed contract")
)
