// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cexpr

// Node is the interface for computation-expression constructs.
// Implementations carry exactly the sub-expressions and sub-blocks their
// desugaring rule requires. Dispatch uses type switches, not tags — Node
// is a pure marker interface.
//
// Nodes form a rooted tree with exclusive ownership: no sharing, no
// cycles. A tree is immutable once built and may be desugared any number
// of times, against different builders.
type Node interface {
	node() // unexported marker method
}

// Let is an ordinary (non-monadic) local binding: let name = value in cont.
// No builder operation is involved; the value enters the scope directly.
type Let struct {
	// Name is the identifier bound in Cont's scope.
	Name string

	// Value is the host expression producing the bound value.
	Value Expr

	// Cont is the rest of the computation body.
	Cont Node
}

func (*Let) node() {}

// LetBind is a monadic binding: let! name = source in cont.
// Desugars to Bind(source, func(name) → cont).
type LetBind struct {
	// Name is the identifier bound to the extracted value in Cont's scope.
	Name string

	// Source is the host expression producing the computation to bind.
	Source Expr

	// Cont is the rest of the computation body.
	Cont Node
}

func (*LetBind) node() {}

// DoBind is a monadic effect binding: do! source in cont.
// Desugars to Bind(source, func(_) → cont); the extracted value is
// discarded.
type DoBind struct {
	// Source is the host expression producing the computation to bind.
	Source Expr

	// Cont is the rest of the computation body.
	Cont Node
}

func (*DoBind) node() {}

// Return wraps a bare value: return value.
type Return struct {
	// Value is the host expression producing the value to wrap.
	Value Expr
}

func (*Return) node() {}

// ReturnFrom passes an existing computation through: return! source.
type ReturnFrom struct {
	// Source is the host expression producing the computation.
	Source Expr
}

func (*ReturnFrom) node() {}

// Yield emits one value: yield value.
type Yield struct {
	// Value is the host expression producing the emitted value.
	Value Expr
}

func (*Yield) node() {}

// YieldFrom splices in an existing computation's emissions: yield! source.
type YieldFrom struct {
	// Source is the host expression producing the computation.
	Source Expr
}

func (*YieldFrom) node() {}

// If is a conditional without an else branch.
// When the condition is false the construct desugars to Zero().
type If struct {
	// Cond is the host predicate.
	Cond Pred

	// Then is the body desugared when Cond holds.
	Then Node
}

func (*If) node() {}

// IfElse is a conditional with both branches.
// Exactly one branch is desugared, per the condition.
type IfElse struct {
	// Cond is the host predicate.
	Cond Pred

	// Then is the body desugared when Cond holds.
	Then Node

	// Else is the body desugared otherwise.
	Else Node
}

func (*IfElse) node() {}

// MatchArm is one arm of a Match or MatchBind dispatch.
type MatchArm struct {
	// When guards the arm; a nil When matches any value.
	When func(v Erased) bool

	// Name binds the scrutinee in Body's scope; empty means no binding.
	Name string

	// Body is the arm's computation body.
	Body Node
}

// Match is ordinary pattern dispatch over a host value.
// The first arm whose guard accepts the scrutinee is desugared; no builder
// operation is involved in the dispatch itself. A scrutinee matching no
// arm is a caller bug and panics.
type Match struct {
	// Scrutinee is the host expression producing the matched value.
	Scrutinee Expr

	// Arms are tried in order.
	Arms []MatchArm
}

func (*Match) node() {}

// MatchBind is the match! sugar: Bind(source, func(v) → match v with arms).
// Purely notational — it requires only Bind.
type MatchBind struct {
	// Source is the host expression producing the computation to bind.
	Source Expr

	// Arms are tried in order against the extracted value.
	Arms []MatchArm
}

func (*MatchBind) node() {}

// For iterates a sequence: for name in items do body.
// Desugars to For(items, func(name) → body). Items must evaluate to an
// iter.Seq[Erased].
type For struct {
	// Name is the identifier bound per element in Body's scope.
	Name string

	// Items is the host expression producing the iterated sequence.
	Items Expr

	// Body is the computation body composed per element.
	Body Node
}

func (*For) node() {}

// ForRange iterates an inclusive integer range: for name = from to to do body.
// Desugars to the For form over the integer range. From and To must
// evaluate to int.
type ForRange struct {
	// Name is the identifier bound per integer in Body's scope.
	Name string

	// From is the host expression producing the first integer (inclusive).
	From Expr

	// To is the host expression producing the last integer (inclusive).
	To Expr

	// Body is the computation body composed per integer.
	Body Node
}

func (*ForRange) node() {}

// While repeats a body while a predicate holds: while cond do body.
// Desugars to While(func() → cond, Delay(func() → body)) when the builder
// has Delay, and to While(func() → cond, body) otherwise.
type While struct {
	// Cond is the host predicate, re-evaluated per iteration.
	Cond Pred

	// Body is the repeated computation body.
	Body Node
}

func (*While) node() {}

// CatchArm is one arm of a TryWith exception dispatch.
type CatchArm struct {
	// When guards the arm; a nil When matches any raised value.
	When func(exn any) bool

	// Name binds the raised value in Body's scope; empty means no binding.
	Name string

	// Body is the arm's recovery body.
	Body Node
}

// TryWith is exception-recovering composition: try body with arms.
// Desugars to TryWith(Delay(func() → body), handler) where handler
// dispatches the raised value over the arms. A raised value matching no
// arm is re-signaled unchanged.
type TryWith struct {
	// Body is the guarded computation body.
	Body Node

	// Arms are tried in order against the raised value.
	Arms []CatchArm
}

func (*TryWith) node() {}

// TryFinally is guaranteed-cleanup composition: try body finally cleanup.
// Desugars to TryFinally(Delay(func() → body), func() → cleanup); the
// builder runs cleanup exactly once, on every exit path.
type TryFinally struct {
	// Body is the guarded computation body.
	Body Node

	// Cleanup is the host action run after Body completes or raises.
	Cleanup func(sc *Scope)
}

func (*TryFinally) node() {}

// Use is a scoped-resource binding: use name = resource in cont.
// Desugars to Using(resource, func(name) → cont); the builder releases
// the resource on every exit path from cont.
type Use struct {
	// Name is the identifier bound to the resource in Cont's scope.
	Name string

	// Resource is the host expression producing the resource.
	Resource Expr

	// Cont is the guarded continuation.
	Cont Node
}

func (*Use) node() {}

// UseBind is a monadic scoped-resource binding: use! name = source in cont.
// Desugars to Bind(source, func(v) → Using(v, func(name) → cont)).
type UseBind struct {
	// Name is the identifier bound to the extracted resource.
	Name string

	// Source is the host expression producing the computation to bind.
	Source Expr

	// Cont is the guarded continuation.
	Cont Node
}

func (*UseBind) node() {}

// Seq sequences two computation constructs.
// Desugars to Combine(first, second); when the builder has Delay the
// second fragment is delayed, so the builder decides whether it is ever
// forced. Chains of trailing terminal constructs compose left-to-right
// through nested Seq nodes.
type Seq struct {
	// First is the leading computation construct.
	First Node

	// Rest is the remainder of the body.
	Rest Node
}

func (*Seq) node() {}

// Stmt is a plain expression statement, evaluated for effect only.
// With a continuation the result is discarded and desugaring recurses
// into Cont; in tail position (nil Cont) the construct desugars to Zero()
// after the effect runs.
type Stmt struct {
	// Effect is the host action to evaluate.
	Effect func(sc *Scope)

	// Cont is the rest of the body; nil marks tail position.
	Cont Node
}

func (*Stmt) node() {}
