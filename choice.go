// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cexpr

// ChoiceBuilder is the alternative/choice builder instance: computation
// values are [Option]s, Combine is first-success-wins, and construction
// is deferred.
//
// Capability set: Bind, Return, ReturnFrom, Zero, Combine, Delay, Run,
// Using, TryWith, TryFinally. Delayed fragments are represented as
// func() Erased thunks; Run (and every operation that must look inside
// its argument) forces them. Combine forces only its first argument when
// that argument is a Some — the second branch's thunk is never invoked.
type ChoiceBuilder struct{}

// forceChoice evaluates delayed fragments down to an Option.
func forceChoice(m Erased) Option {
	for {
		t, ok := m.(func() Erased)
		if !ok {
			return m.(Option)
		}
		m = t()
	}
}

// Bind extracts the value from a Some and feeds it to f.
// A None short-circuits: f is never invoked.
func (ChoiceBuilder) Bind(m Erased, f func(Erased) Erased) Erased {
	o := forceChoice(m)
	if !o.present {
		return o
	}
	return f(o.value)
}

// Return wraps a bare value as Some.
func (ChoiceBuilder) Return(v Erased) Erased {
	return Some(v)
}

// ReturnFrom passes an existing computation through without forcing it.
func (ChoiceBuilder) ReturnFrom(m Erased) Erased {
	return m
}

// Zero is the empty computation: None.
func (ChoiceBuilder) Zero() Erased {
	return None()
}

// Combine implements first-success-wins choice.
// The first Some encountered left-to-right is the result; the second
// fragment stays unforced when the first succeeds.
func (ChoiceBuilder) Combine(first, second Erased) Erased {
	f := forceChoice(first)
	if f.present {
		return f
	}
	return forceChoice(second)
}

// Delay defers construction: the thunk itself is the computation value.
func (ChoiceBuilder) Delay(thunk func() Erased) Erased {
	return thunk
}

// Run forces the composed computation to an Option.
func (ChoiceBuilder) Run(m Erased) Erased {
	return forceChoice(m)
}

// Using binds a scoped resource, releasing it on every exit path —
// normal completion, early return, or panic.
func (ChoiceBuilder) Using(resource Erased, f func(Erased) Erased) Erased {
	defer releaseResource(resource)
	return forceChoice(f(resource))
}

// TryWith forces the delayed body, recovering any raised value into the
// handler. Values the handler re-signals propagate unchanged.
func (ChoiceBuilder) TryWith(body Erased, handler func(exn any) Erased) (out Erased) {
	defer func() {
		if exn := recover(); exn != nil {
			out = forceChoice(handler(exn))
		}
	}()
	return forceChoice(body)
}

// TryFinally forces the delayed body with cleanup guaranteed to run
// exactly once, whether the body completes or raises.
func (ChoiceBuilder) TryFinally(body Erased, cleanup func()) Erased {
	defer cleanup()
	return forceChoice(body)
}
