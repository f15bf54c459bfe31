// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cexpr

import "iter"

// Erased represents a type-erased composed computation value M<T>.
// The engine never inspects these values — all manipulation goes through
// the builder's operations. Concrete types are recovered by the builder
// (or the caller) via type assertions at its own boundaries.
type Erased = any

// Builder is a computation-expression builder instance.
//
// A builder exposes a capability set: some subset of the operation
// interfaces below. Presence is probed once, by structural type assertion,
// when [Describe] constructs the capability descriptor; the set is fixed
// for the lifetime of the instance. The engine branches on presence via
// the descriptor and never calls an operation the builder does not expose.
type Builder any

// Binder supports monadic sequencing with value extraction.
// Required by the let!, do!, match! and use! constructs.
type Binder interface {
	Bind(m Erased, f func(Erased) Erased) Erased
}

// Returner wraps a bare value into a computation.
// Required by the return construct.
type Returner interface {
	Return(v Erased) Erased
}

// ReturnerFrom passes an existing computation through unchanged.
// Required by the return! construct.
type ReturnerFrom interface {
	ReturnFrom(m Erased) Erased
}

// Yielder emits one value.
// Required by the yield construct.
type Yielder interface {
	Yield(v Erased) Erased
}

// YielderFrom splices in an existing computation's emissions.
// Required by the yield! construct.
type YielderFrom interface {
	YieldFrom(m Erased) Erased
}

// Zeroer produces the identity (empty) computation.
// Required by if-without-else and by tail expression statements.
type Zeroer interface {
	Zero() Erased
}

// Combiner joins two computation fragments.
// Required wherever two computation constructs are sequenced. The meaning
// of combining — first non-empty wins, concatenate, sum — is entirely the
// builder's; the engine imposes structure only. When the builder also has
// [Delayer], the second fragment arrives as a delayed value the builder
// may choose never to force.
type Combiner interface {
	Combine(first, second Erased) Erased
}

// Delayer defers construction of a computation fragment.
// Optional everywhere; its presence switches the engine from eager to
// deferred composition (see the package documentation on the Delay/Run
// boundary). Required, together with the primary operation, by the
// try/with and try/finally constructs.
type Delayer interface {
	Delay(thunk func() Erased) Erased
}

// Runner forces or executes a composed computation.
// When present, the engine wraps the whole composed body in Run as the
// final step; the builder decides what running means.
type Runner interface {
	Run(m Erased) Erased
}

// ResourceBinder binds a scoped resource with guaranteed release.
// Required by the use and use! constructs. Implementations must release
// the resource (see [Releaser]) exactly once after f completes or raises,
// on every exit path.
type ResourceBinder interface {
	Using(resource Erased, f func(Erased) Erased) Erased
}

// ForLooper iterates a sequence, composing the body per element.
// Required by the for construct (and by for-over-range, which desugars
// into the same form).
type ForLooper interface {
	For(items iter.Seq[Erased], f func(Erased) Erased) Erased
}

// WhileLooper repeats a body while a predicate holds.
// Required by the while construct. When the builder also has [Delayer],
// the body arrives delayed so that each iteration can rebuild it.
type WhileLooper interface {
	While(cond func() bool, body Erased) Erased
}

// Catcher composes a computation with an exception handler.
// Required by the try/with construct. The body arrives delayed; the
// implementation forces it under recover and passes any raised value to
// handler. The handler re-panics values that match none of its arms.
type Catcher interface {
	TryWith(body Erased, handler func(exn any) Erased) Erased
}

// Finalizer composes a computation with a guaranteed cleanup action.
// Required by the try/finally construct. The body arrives delayed; the
// implementation must run cleanup exactly once after the body completes
// or raises, on every exit path.
type Finalizer interface {
	TryFinally(body Erased, cleanup func()) Erased
}

// Releaser is the release hook for resources bound by use and use!.
// [ResourceBinder] implementations call Release on the bound resource
// when the guarded continuation exits; non-Releaser resources are bound
// without a release action.
type Releaser interface {
	Release()
}
