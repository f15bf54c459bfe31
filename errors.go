// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cexpr

// MissingOperationError reports a construct whose desugaring needs a
// builder operation outside the builder's capability set.
//
// It is raised at composition time, before any rewrite work begins and
// before any builder operation runs — never mid-composition, and never
// silently substituted.
type MissingOperationError struct {
	// Construct is the surface construct that needed the operation,
	// e.g. "let!".
	Construct string

	// Operation is the missing builder operation name, e.g. "Bind".
	Operation string
}

// Error implements the error interface.
func (e *MissingOperationError) Error() string {
	return "cexpr: " + e.Construct + " requires builder operation " + e.Operation
}

// unboundIdentifier panics with a descriptive message for lookups of
// names absent from the scope. Extracted as a noinline function so that
// Scope.Value remains inlineable.
//
//go:noinline
func unboundIdentifier(name string) {
	panic("cexpr: unbound identifier " + name)
}

// unmatchedScrutinee panics when a Match scrutinee fits none of the arms.
// Match dispatch is total by contract; a fall-through is a malformed tree.
//
//go:noinline
func unmatchedScrutinee() {
	panic("cexpr: no matching arm in match dispatch")
}

// unknownNode panics on Node implementations outside this package's
// variant set. Node's marker method keeps the set closed; reaching this
// means a foreign type embedded one of the variants.
//
//go:noinline
func unknownNode() {
	panic("cexpr: unknown computation node type")
}
