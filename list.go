// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cexpr

import "iter"

// ListBuilder is the sequence/list builder instance: computation values
// are []Erased, Yield emits single elements, Combine concatenates, and
// Bind is flat-map.
//
// Capability set: Bind, Return, Yield, YieldFrom, Zero, Combine, Delay,
// Run, For, While. Delayed fragments are func() Erased thunks; While
// re-forces its delayed body each iteration, which is what makes loop
// bodies re-entrant.
type ListBuilder struct{}

// forceList evaluates delayed fragments down to a []Erased.
func forceList(m Erased) []Erased {
	for {
		t, ok := m.(func() Erased)
		if !ok {
			return m.([]Erased)
		}
		m = t()
	}
}

// Bind flat-maps f over the elements of m.
func (ListBuilder) Bind(m Erased, f func(Erased) Erased) Erased {
	var out []Erased
	for _, v := range forceList(m) {
		out = append(out, forceList(f(v))...)
	}
	return out
}

// Return wraps a bare value as a one-element sequence.
func (ListBuilder) Return(v Erased) Erased {
	return []Erased{v}
}

// Yield emits one value.
func (ListBuilder) Yield(v Erased) Erased {
	return []Erased{v}
}

// YieldFrom splices in an existing sequence's elements.
func (ListBuilder) YieldFrom(m Erased) Erased {
	return forceList(m)
}

// Zero is the empty sequence.
func (ListBuilder) Zero() Erased {
	return []Erased(nil)
}

// Combine concatenates two fragments in order.
func (ListBuilder) Combine(first, second Erased) Erased {
	a := forceList(first)
	b := forceList(second)
	out := make([]Erased, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// Delay defers construction: the thunk itself is the computation value.
func (ListBuilder) Delay(thunk func() Erased) Erased {
	return thunk
}

// Run forces the composed computation to a []Erased.
func (ListBuilder) Run(m Erased) Erased {
	return forceList(m)
}

// For composes the body per element, concatenating emissions in
// iteration order.
func (ListBuilder) For(items iter.Seq[Erased], f func(Erased) Erased) Erased {
	var out []Erased
	for v := range items {
		out = append(out, forceList(f(v))...)
	}
	return out
}

// While re-forces the delayed body while the predicate holds,
// concatenating emissions across iterations.
func (ListBuilder) While(cond func() bool, body Erased) Erased {
	var out []Erased
	for cond() {
		out = append(out, forceList(body)...)
	}
	return out
}
