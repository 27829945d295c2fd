// Package contracts provides a composable runtime value-validation engine:
// a set of atomic predicates over values ("contracts") and combinators that
// compose them into richer predicates, independent of any static type
// declaration.
//
// A contract describes the shape a value must have. Validation answers a
// plain yes/no through Evaluate, and every contract renders a canonical,
// human-readable description through Describe for building diagnostics.
//
// # Architecture
//
// Each source file groups one family of contracts (`atomic.go`,
// `logical.go`, `capability.go`, `collection.go`, `signature.go`). The
// single entry point Evaluate normalizes any contract representation — a
// Contract value, a reflect.Type used as an is-a shorthand, a
// *regexp.Regexp, a map or slice literal validated structurally, or a
// plain scalar compared for equality — and all combinators recurse through
// it rather than re-implementing normalization.
//
// Core building blocks:
//   - Contract  – the interface every first-class contract implements
//   - Evaluate  – (value, contract) -> pass/fail plus the failing sub-contract
//   - Describe  – canonical description string for any contract representation
//
// Contracts are immutable after construction and validation is read-only,
// so a single contract value is safe for concurrent use without locking.
//
// # Usage
//
//	ok, failing := contracts.Evaluate(5, contracts.Pos)            // true
//	ok, failing = contracts.Evaluate(-1, contracts.Or(
//	    contracts.Nat,
//	    contracts.Type[string](),
//	))                                                             // false
//	if !ok {
//	    msg := contracts.Describe(failing)
//	}
//
// # Error Handling
//
// A rejected value is the normal negative result: Evaluate returns false,
// it never panics and never returns an error. The only hard failure is a
// malformed construction (for example Or with no children), which panics
// immediately with an error wrapping ErrMalformedContract — a programmer
// error surfaced to the contract's author, never deferred to validation.
package contracts
