// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cexpr

import "iter"

// TraceBuilder is a pass-through builder that records the name of every
// operation invoked on it, in call order. It exposes the full capability
// set, which makes it the one instance the entire rewrite grammar can be
// exercised against; the recorded trace is the observable shape of the
// desugaring.
//
// Values flow through unchanged: Return and Yield hand back the bare
// value, Combine yields its second fragment, Delay produces a thunk that
// is forced by the operations that need to look inside their argument.
type TraceBuilder struct {
	trace []string
}

// NewTraceBuilder returns a TraceBuilder with an empty trace.
func NewTraceBuilder() *TraceBuilder {
	return &TraceBuilder{}
}

// Trace returns the operations recorded so far, in call order.
func (b *TraceBuilder) Trace() []string {
	return b.trace
}

// Reset clears the recorded trace.
func (b *TraceBuilder) Reset() {
	b.trace = b.trace[:0]
}

func (b *TraceBuilder) record(op string) {
	b.trace = append(b.trace, op)
}

// forceTraced evaluates delayed fragments down to a plain value.
func (b *TraceBuilder) forceTraced(m Erased) Erased {
	for {
		t, ok := m.(func() Erased)
		if !ok {
			return m
		}
		m = t()
	}
}

// Bind records the call and feeds the forced value to f.
func (b *TraceBuilder) Bind(m Erased, f func(Erased) Erased) Erased {
	b.record(OpBind)
	return f(b.forceTraced(m))
}

// Return records the call and passes the value through.
func (b *TraceBuilder) Return(v Erased) Erased {
	b.record(OpReturn)
	return v
}

// ReturnFrom records the call and passes the computation through.
func (b *TraceBuilder) ReturnFrom(m Erased) Erased {
	b.record(OpReturnFrom)
	return m
}

// Yield records the call and passes the value through.
func (b *TraceBuilder) Yield(v Erased) Erased {
	b.record(OpYield)
	return v
}

// YieldFrom records the call and passes the computation through.
func (b *TraceBuilder) YieldFrom(m Erased) Erased {
	b.record(OpYieldFrom)
	return m
}

// Zero records the call and yields a nil value.
func (b *TraceBuilder) Zero() Erased {
	b.record(OpZero)
	return nil
}

// Combine records the call; the second fragment's value wins.
func (b *TraceBuilder) Combine(first, second Erased) Erased {
	b.record(OpCombine)
	b.forceTraced(first)
	return b.forceTraced(second)
}

// Delay records the call and defers the thunk.
func (b *TraceBuilder) Delay(thunk func() Erased) Erased {
	b.record(OpDelay)
	return thunk
}

// Run records the call and forces the composed computation.
func (b *TraceBuilder) Run(m Erased) Erased {
	b.record(OpRun)
	return b.forceTraced(m)
}

// Using records the call and binds the resource, recording its release.
func (b *TraceBuilder) Using(resource Erased, f func(Erased) Erased) Erased {
	b.record(OpUsing)
	defer func() {
		releaseResource(resource)
		b.record("Release")
	}()
	return b.forceTraced(f(resource))
}

// For records the call and composes the body per element, collecting the
// forced per-element values in iteration order.
func (b *TraceBuilder) For(items iter.Seq[Erased], f func(Erased) Erased) Erased {
	b.record(OpFor)
	var out []Erased
	for v := range items {
		out = append(out, b.forceTraced(f(v)))
	}
	return out
}

// While records the call and re-forces the delayed body while the
// predicate holds.
func (b *TraceBuilder) While(cond func() bool, body Erased) Erased {
	b.record(OpWhile)
	var last Erased
	for cond() {
		last = b.forceTraced(body)
	}
	return last
}

// TryWith records the call and forces the delayed body, recovering any
// raised value into the handler.
func (b *TraceBuilder) TryWith(body Erased, handler func(exn any) Erased) (out Erased) {
	b.record(OpTryWith)
	defer func() {
		if exn := recover(); exn != nil {
			out = b.forceTraced(handler(exn))
		}
	}()
	return b.forceTraced(body)
}

// TryFinally records the call and forces the delayed body, running (and
// recording) cleanup exactly once on every exit path.
func (b *TraceBuilder) TryFinally(body Erased, cleanup func()) Erased {
	b.record(OpTryFinally)
	defer func() {
		cleanup()
		b.record("Finally")
	}()
	return b.forceTraced(body)
}
