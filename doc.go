// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package cexpr desugars computation-expression trees into chained calls
// on builder objects in Go.
//
// A computation body is a tree of [Node] constructs — bindings, yields,
// returns, conditionals, loops, resource scopes, exception scopes and
// sequencing. Desugaring rewrites the tree into nested calls on a
// caller-supplied builder: an object exposing some subset of the named
// operations Bind, Return, ReturnFrom, Yield, YieldFrom, Zero, Combine,
// Delay, Run, Using, For, While, TryWith and TryFinally. The result is a
// single opaque composed value the builder manufactured; the engine never
// inspects it.
//
// # Design Philosophy
//
// cexpr provides:
//   - A closed variant set of computation constructs dispatched by type
//     switch over a marker interface
//   - Fine-grained capability interfaces probed once per composition,
//     never mid-rewrite
//   - A fixed, deterministic rewrite grammar with all semantics owned by
//     the builder
//
// # Builder Capabilities
//
// Builders declare operations by implementing the single-method
// interfaces in builder.go ([Binder], [Returner], [Zeroer], ...).
// [Describe] probes an instance by structural type assertion and caches
// the result in a [Descriptor]; presence or absence of each operation is
// fixed at construction. A construct whose desugaring needs an operation
// outside the capability set fails with [MissingOperationError] naming
// the surface construct — before any rewrite work, and before any builder
// operation runs.
//
// # Computation Nodes
//
//   - [Let], [LetBind], [DoBind]: plain, monadic and effect bindings
//   - [Return], [ReturnFrom], [Yield], [YieldFrom]: terminal productions
//   - [If], [IfElse], [Match], [MatchBind]: branching
//   - [For], [ForRange], [While]: iteration
//   - [Use], [UseBind]: scoped resources with guaranteed release
//   - [TryWith], [TryFinally]: exception recovery and guaranteed cleanup
//   - [Seq], [Stmt]: sequencing and plain expression statements
//
// Host expressions inside nodes are [Expr] and [Pred] functions over the
// current [Scope], an immutable binding environment. [Const] and [Var]
// build the common cases.
//
// # Desugaring
//
//   - [Desugar]: compose a tree against a builder
//   - [DesugarIn]: compose with caller-supplied outer bindings
//
// # Delay/Run Boundary
//
// When the builder has Delay, the whole body is wrapped as a delayed
// fragment and loop/try/sequencing bodies are delayed individually; when
// it additionally has Run, the final composed value is Run applied to the
// delayed body. Without Delay, composition is eager: builder operations
// (and side effects in the body) execute during rewriting. Asynchrony,
// cancellation and concurrency are properties of the builder's value
// representation, never of the engine — rewriting itself is synchronous
// call-tree recursion with no suspension points and no shared state.
//
// # Errors
//
// Two kinds only. [MissingOperationError] is returned at composition
// time. A value raised inside a try/with body that matches none of the
// arms is re-signaled unchanged — not wrapped, not swallowed — after any
// enclosing try/finally cleanup has run. The engine retries nothing and
// recovers nothing on its own.
//
// # Standard Builders
//
//   - [OptionBuilder]: optional values, eager (the no-Delay reference)
//   - [ChoiceBuilder]: first-success-wins alternatives, deferred up to Run
//   - [ListBuilder]: sequence emission with concatenating Combine
//   - [StateBuilder]: state threading through [StateFn] transition values
//   - [TraceBuilder]: full-capability pass-through recording call order
//
// Each is an ordinary instance of the adapter contract; the engine
// special-cases none of them.
//
// # Example
//
//	body := &cexpr.LetBind{
//		Name:   "v",
//		Source: cexpr.Const(cexpr.Some(1)),
//		Cont: &cexpr.Return{Value: func(sc *cexpr.Scope) cexpr.Erased {
//			return sc.Value("v").(int) + 1
//		}},
//	}
//
//	result, err := cexpr.Desugar(cexpr.OptionBuilder{}, body)
//	// result == cexpr.Some(2), err == nil
package cexpr
