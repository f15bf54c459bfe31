// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cexpr

// State-passing builder instance.
// Computation values are state transition functions: applying one to a
// state produces a result value and the next state.

// StateFn is the computation value manufactured by [StateBuilder].
// It threads an opaque state value through the composed computation.
type StateFn func(state Erased) (Erased, Erased)

// forceStateFn evaluates delayed fragments down to a StateFn.
func forceStateFn(m Erased) StateFn {
	for {
		t, ok := m.(func() Erased)
		if !ok {
			return m.(StateFn)
		}
		m = t()
	}
}

// GetState builds the primitive that reads the current state.
// The state is both the result value and the (unchanged) next state.
func GetState() StateFn {
	return func(state Erased) (Erased, Erased) {
		return state, state
	}
}

// PutState builds the primitive that replaces the current state.
// The result value is struct{}{}.
func PutState(next Erased) StateFn {
	return func(Erased) (Erased, Erased) {
		return struct{}{}, next
	}
}

// ModifyState builds the primitive that applies f to the current state.
// The new state is also the result value.
func ModifyState(f func(Erased) Erased) StateFn {
	return func(state Erased) (Erased, Erased) {
		next := f(state)
		return next, next
	}
}

// StateBuilder is the state-passing builder instance.
//
// Capability set: Bind, Return, ReturnFrom, Zero, Combine, Delay, Run.
// Composition is inherently deferred: every operation returns a StateFn,
// and nothing executes until the caller applies the composed value to an
// initial state via [RunState] (or directly).
type StateBuilder struct{}

// Bind threads the state through m, then through f's result.
func (StateBuilder) Bind(m Erased, f func(Erased) Erased) Erased {
	return StateFn(func(state Erased) (Erased, Erased) {
		v, next := forceStateFn(m)(state)
		return forceStateFn(f(v))(next)
	})
}

// Return wraps a bare value, leaving the state untouched.
func (StateBuilder) Return(v Erased) Erased {
	return StateFn(func(state Erased) (Erased, Erased) {
		return v, state
	})
}

// ReturnFrom passes an existing computation through unchanged.
func (StateBuilder) ReturnFrom(m Erased) Erased {
	return m
}

// Zero is the identity computation: unit value, unchanged state.
func (StateBuilder) Zero() Erased {
	return StateFn(func(state Erased) (Erased, Erased) {
		return struct{}{}, state
	})
}

// Combine threads the state through both fragments in order; the second
// fragment's value wins.
func (StateBuilder) Combine(first, second Erased) Erased {
	return StateFn(func(state Erased) (Erased, Erased) {
		_, next := forceStateFn(first)(state)
		return forceStateFn(second)(next)
	})
}

// Delay defers construction: the thunk itself is the computation value.
func (StateBuilder) Delay(thunk func() Erased) Erased {
	return thunk
}

// Run forces the composed computation to a StateFn.
// Execution still waits for an initial state.
func (StateBuilder) Run(m Erased) Erased {
	return forceStateFn(m)
}

// RunState applies a composed state computation to an initial state and
// returns both the result value and the final state.
func RunState(m Erased, initial Erased) (Erased, Erased) {
	return forceStateFn(m)(initial)
}

// EvalState runs a state computation and returns only the result value.
func EvalState(m Erased, initial Erased) Erased {
	v, _ := RunState(m, initial)
	return v
}

// ExecState runs a state computation and returns only the final state.
func ExecState(m Erased, initial Erased) Erased {
	_, state := RunState(m, initial)
	return state
}
