// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cexpr

// Option represents an optional value: Some carrying a value, or None.
// It is the computation value manufactured by [OptionBuilder] and
// [ChoiceBuilder].
type Option struct {
	present bool
	value   Erased
}

// Some creates an Option carrying v.
func Some(v Erased) Option {
	return Option{present: true, value: v}
}

// None creates an empty Option.
func None() Option {
	return Option{}
}

// IsSome returns true if the Option carries a value.
func (o Option) IsSome() bool {
	return o.present
}

// IsNone returns true if the Option is empty.
func (o Option) IsNone() bool {
	return !o.present
}

// Get returns the carried value and true, or nil and false.
func (o Option) Get() (Erased, bool) {
	if o.present {
		return o.value, true
	}
	return nil, false
}

// MatchOption pattern matches on the Option, calling onSome or onNone.
func MatchOption[T any](o Option, onSome func(Erased) T, onNone func() T) T {
	if o.present {
		return onSome(o.value)
	}
	return onNone()
}

// OptionBuilder is the optional-value builder instance.
//
// Capability set: Bind, Return, ReturnFrom, Zero, Using. It has no Delay,
// so composition against it is eager: builder operations run during tree
// rewriting, and side effects in the computation body are observable as
// soon as Desugar returns.
type OptionBuilder struct{}

// Bind extracts the value from a Some and feeds it to f.
// A None short-circuits: f is never invoked.
func (OptionBuilder) Bind(m Erased, f func(Erased) Erased) Erased {
	o := m.(Option)
	if !o.present {
		return o
	}
	return f(o.value)
}

// Return wraps a bare value as Some.
func (OptionBuilder) Return(v Erased) Erased {
	return Some(v)
}

// ReturnFrom passes an existing Option through unchanged.
func (OptionBuilder) ReturnFrom(m Erased) Erased {
	return m.(Option)
}

// Zero is the empty computation: None.
func (OptionBuilder) Zero() Erased {
	return None()
}

// Using binds a scoped resource, releasing it on every exit path.
func (OptionBuilder) Using(resource Erased, f func(Erased) Erased) Erased {
	defer releaseResource(resource)
	return f(resource)
}

// releaseResource invokes the resource's Release hook if it has one.
// Shared by the builder instances in this package; called from a defer so
// release happens on normal completion and on panic alike.
func releaseResource(resource Erased) {
	if r, ok := resource.(Releaser); ok {
		r.Release()
	}
}
