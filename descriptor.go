// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cexpr

import "github.com/benbjohnson/immutable"

// Builder operation names, as they appear in capability queries and in
// [MissingOperationError]. One name per optional operation interface.
const (
	OpBind       = "Bind"
	OpReturn     = "Return"
	OpReturnFrom = "ReturnFrom"
	OpYield      = "Yield"
	OpYieldFrom  = "YieldFrom"
	OpZero       = "Zero"
	OpCombine    = "Combine"
	OpDelay      = "Delay"
	OpRun        = "Run"
	OpUsing      = "Using"
	OpFor        = "For"
	OpWhile      = "While"
	OpTryWith    = "TryWith"
	OpTryFinally = "TryFinally"
)

// Descriptor is the capability descriptor for one builder instance.
//
// Inspection happens once, in [Describe], by structural type assertion
// against the operation interfaces in builder.go. The resulting set is
// immutable: presence or absence of each operation is fixed at
// construction and never changes. The engine consults the descriptor to
// select applicable desugaring rules and never invokes an operation
// outside the set.
type Descriptor struct {
	caps *immutable.Map[string, bool]

	bind       Binder
	ret        Returner
	retFrom    ReturnerFrom
	yield      Yielder
	yieldFrom  YielderFrom
	zero       Zeroer
	combine    Combiner
	delay      Delayer
	run        Runner
	using      ResourceBinder
	forLoop    ForLooper
	whileLoop  WhileLooper
	tryWith    Catcher
	tryFinally Finalizer
}

// Describe probes b's capability set and returns its descriptor.
// Probing is pure inspection: no builder operation is called.
func Describe(b Builder) *Descriptor {
	d := &Descriptor{}
	set := immutable.NewMapBuilder[string, bool](nil)
	if op, ok := b.(Binder); ok {
		d.bind = op
		set.Set(OpBind, true)
	}
	if op, ok := b.(Returner); ok {
		d.ret = op
		set.Set(OpReturn, true)
	}
	if op, ok := b.(ReturnerFrom); ok {
		d.retFrom = op
		set.Set(OpReturnFrom, true)
	}
	if op, ok := b.(Yielder); ok {
		d.yield = op
		set.Set(OpYield, true)
	}
	if op, ok := b.(YielderFrom); ok {
		d.yieldFrom = op
		set.Set(OpYieldFrom, true)
	}
	if op, ok := b.(Zeroer); ok {
		d.zero = op
		set.Set(OpZero, true)
	}
	if op, ok := b.(Combiner); ok {
		d.combine = op
		set.Set(OpCombine, true)
	}
	if op, ok := b.(Delayer); ok {
		d.delay = op
		set.Set(OpDelay, true)
	}
	if op, ok := b.(Runner); ok {
		d.run = op
		set.Set(OpRun, true)
	}
	if op, ok := b.(ResourceBinder); ok {
		d.using = op
		set.Set(OpUsing, true)
	}
	if op, ok := b.(ForLooper); ok {
		d.forLoop = op
		set.Set(OpFor, true)
	}
	if op, ok := b.(WhileLooper); ok {
		d.whileLoop = op
		set.Set(OpWhile, true)
	}
	if op, ok := b.(Catcher); ok {
		d.tryWith = op
		set.Set(OpTryWith, true)
	}
	if op, ok := b.(Finalizer); ok {
		d.tryFinally = op
		set.Set(OpTryFinally, true)
	}
	d.caps = set.Map()
	return d
}

// Supports reports whether the builder exposes the named operation.
func (d *Descriptor) Supports(op string) bool {
	_, ok := d.caps.Get(op)
	return ok
}

// Len returns the size of the capability set.
func (d *Descriptor) Len() int {
	return d.caps.Len()
}

// requires returns a MissingOperationError naming the surface construct
// when op is outside the capability set, nil otherwise.
func (d *Descriptor) requires(construct, op string) error {
	if _, ok := d.caps.Get(op); !ok {
		return &MissingOperationError{Construct: construct, Operation: op}
	}
	return nil
}
