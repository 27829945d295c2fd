// Package decorate is the call-site adapter for the contracts package: it
// wraps an arbitrary function value so that every invocation validates its
// arguments against declared parameter contracts before the call and its
// results against declared return contracts after it.
//
// The core engine stays pure — it only answers pass/fail. Escalating a
// rejected validation into a user-visible failure lives here: a violation
// is reported as a *Violation carrying the offending position, the failing
// contract's description, and the actual value, optionally logged through
// log/slog before the wrapped call panics.
//
// # Usage
//
//	div := decorate.Wrap(func(a, b int) int { return a / b }, decorate.Spec{
//	    Params:  []any{contracts.Num, contracts.Not(contracts.Eq(0))},
//	    Results: []any{contracts.Num},
//	}).(func(int, int) int)
//
//	div(10, 2) // fine
//	div(10, 0) // panics with *Violation for argument 2
//
// A trailing contracts.Args in Params applies its element contract to each
// element of a variadic tail. For manual call sites, Check validates a
// single value and returns the *Violation instead of panicking.
package decorate
