// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cexpr

import "iter"

// Desugar composes the computation tree rooted at body into a single
// opaque value, driving b's operations per the fixed rewrite grammar.
//
// The capability set is probed once, up front, and the whole tree is
// checked against it before any rewrite begins: a construct whose
// operation is missing yields a [*MissingOperationError] with no builder
// operation having run. The composed value is what the builder makes of
// it — eager when the builder lacks Delay, deferred up to the Run
// boundary otherwise (see the package documentation).
func Desugar(b Builder, body Node) (Erased, error) {
	return DesugarIn(b, NewScope(), body)
}

// DesugarIn is Desugar with caller-supplied outer bindings.
// Host expressions in the tree see sc extended by the bindings the
// constructs introduce; sc itself is never modified.
func DesugarIn(b Builder, sc *Scope, body Node) (Erased, error) {
	d := Describe(b)
	if err := check(d, body); err != nil {
		return nil, err
	}
	if d.delay != nil {
		deferred := d.delay.Delay(func() Erased { return rewrite(d, sc, body) })
		if d.run != nil {
			return d.run.Run(deferred), nil
		}
		return deferred, nil
	}
	composed := rewrite(d, sc, body)
	if d.run != nil {
		return d.run.Run(composed), nil
	}
	return composed, nil
}

// rewrite recursively maps each node to a call graph over the builder's
// operations. check has already guaranteed that every operation touched
// here is inside the capability set.
func rewrite(d *Descriptor, sc *Scope, n Node) Erased {
	switch n := n.(type) {
	case *Let:
		return rewrite(d, sc.Bind(n.Name, n.Value(sc)), n.Cont)
	case *LetBind:
		return d.bind.Bind(n.Source(sc), func(v Erased) Erased {
			return rewrite(d, sc.Bind(n.Name, v), n.Cont)
		})
	case *DoBind:
		return d.bind.Bind(n.Source(sc), func(Erased) Erased {
			return rewrite(d, sc, n.Cont)
		})
	case *Return:
		return d.ret.Return(n.Value(sc))
	case *ReturnFrom:
		return d.retFrom.ReturnFrom(n.Source(sc))
	case *Yield:
		return d.yield.Yield(n.Value(sc))
	case *YieldFrom:
		return d.yieldFrom.YieldFrom(n.Source(sc))
	case *If:
		if n.Cond(sc) {
			return rewrite(d, sc, n.Then)
		}
		return d.zero.Zero()
	case *IfElse:
		if n.Cond(sc) {
			return rewrite(d, sc, n.Then)
		}
		return rewrite(d, sc, n.Else)
	case *Match:
		return dispatchMatch(d, sc, n.Scrutinee(sc), n.Arms)
	case *MatchBind:
		// let!-then-match fusion; requires only Bind.
		return d.bind.Bind(n.Source(sc), func(v Erased) Erased {
			return dispatchMatch(d, sc, v, n.Arms)
		})
	case *For:
		items := n.Items(sc).(iter.Seq[Erased])
		return d.forLoop.For(items, func(v Erased) Erased {
			return rewrite(d, sc.Bind(n.Name, v), n.Body)
		})
	case *ForRange:
		lo := n.From(sc).(int)
		hi := n.To(sc).(int)
		items := func(yield func(Erased) bool) {
			for i := lo; i <= hi; i++ {
				if !yield(i) {
					return
				}
			}
		}
		return d.forLoop.For(items, func(v Erased) Erased {
			return rewrite(d, sc.Bind(n.Name, v), n.Body)
		})
	case *While:
		cond := func() bool { return n.Cond(sc) }
		if d.delay != nil {
			return d.whileLoop.While(cond, d.delay.Delay(func() Erased {
				return rewrite(d, sc, n.Body)
			}))
		}
		return d.whileLoop.While(cond, rewrite(d, sc, n.Body))
	case *TryWith:
		body := d.delay.Delay(func() Erased {
			return rewrite(d, sc, n.Body)
		})
		return d.tryWith.TryWith(body, func(exn any) Erased {
			return dispatchCatch(d, sc, exn, n.Arms)
		})
	case *TryFinally:
		body := d.delay.Delay(func() Erased {
			return rewrite(d, sc, n.Body)
		})
		return d.tryFinally.TryFinally(body, func() {
			n.Cleanup(sc)
		})
	case *Use:
		return d.using.Using(n.Resource(sc), func(v Erased) Erased {
			return rewrite(d, sc.Bind(n.Name, v), n.Cont)
		})
	case *UseBind:
		return d.bind.Bind(n.Source(sc), func(v Erased) Erased {
			return d.using.Using(v, func(r Erased) Erased {
				return rewrite(d, sc.Bind(n.Name, r), n.Cont)
			})
		})
	case *Seq:
		first := rewrite(d, sc, n.First)
		if d.delay != nil {
			// The second fragment stays a delayed value; whether it is
			// ever forced is the builder's Combine decision.
			return d.combine.Combine(first, d.delay.Delay(func() Erased {
				return rewrite(d, sc, n.Rest)
			}))
		}
		return d.combine.Combine(first, rewrite(d, sc, n.Rest))
	case *Stmt:
		n.Effect(sc)
		if n.Cont == nil {
			return d.zero.Zero()
		}
		return rewrite(d, sc, n.Cont)
	}
	unknownNode()
	return nil
}

// dispatchMatch selects the first arm whose guard accepts v and rewrites
// its body with v bound under the arm's name. Dispatch is total: a value
// matching no arm panics.
func dispatchMatch(d *Descriptor, sc *Scope, v Erased, arms []MatchArm) Erased {
	for i := range arms {
		arm := &arms[i]
		if arm.When != nil && !arm.When(v) {
			continue
		}
		armScope := sc
		if arm.Name != "" {
			armScope = sc.Bind(arm.Name, v)
		}
		return rewrite(d, armScope, arm.Body)
	}
	unmatchedScrutinee()
	return nil
}

// dispatchCatch selects the first arm whose guard accepts the raised
// value and rewrites its recovery body. A value matching no arm is
// re-signaled unchanged — never wrapped, never swallowed.
func dispatchCatch(d *Descriptor, sc *Scope, exn any, arms []CatchArm) Erased {
	for i := range arms {
		arm := &arms[i]
		if arm.When != nil && !arm.When(exn) {
			continue
		}
		armScope := sc
		if arm.Name != "" {
			armScope = sc.Bind(arm.Name, exn)
		}
		return rewrite(d, armScope, arm.Body)
	}
	panic(exn)
}
