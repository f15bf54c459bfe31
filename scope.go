// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cexpr

import "github.com/benbjohnson/immutable"

// Expr is a host expression evaluated against the bindings in scope at
// its position in the computation body. The result is opaque to the
// engine: it is handed to builder operations (or entered into scope)
// without inspection.
type Expr func(sc *Scope) Erased

// Pred is a host predicate evaluated against the bindings in scope.
// Used by If, IfElse and While conditions.
type Pred func(sc *Scope) bool

// Const builds an Expr that ignores the scope and returns v.
func Const(v Erased) Expr {
	return func(*Scope) Erased { return v }
}

// Var builds an Expr that looks up name in the scope.
// Evaluating it with name unbound panics; binding happens through the
// Let/LetBind/Use/For family of constructs or through [Scope.Bind].
func Var(name string) Expr {
	return func(sc *Scope) Erased { return sc.Value(name) }
}

var emptyBindings = immutable.NewMap[string, Erased](nil)

// Scope is an immutable identifier-to-value binding environment.
// Binding returns a new Scope sharing structure with its parent; the
// parent is never modified. Desugaring threads scopes through the tree,
// so sibling branches never observe each other's bindings.
type Scope struct {
	m *immutable.Map[string, Erased]
}

// NewScope returns a scope with no bindings.
func NewScope() *Scope {
	return &Scope{m: emptyBindings}
}

// Bind returns a new scope with name bound to v.
// Rebinding an existing name shadows it in the returned scope only.
func (sc *Scope) Bind(name string, v Erased) *Scope {
	return &Scope{m: sc.m.Set(name, v)}
}

// Lookup returns the value bound to name and whether it is bound.
func (sc *Scope) Lookup(name string) (Erased, bool) {
	return sc.m.Get(name)
}

// Value returns the value bound to name, panicking if unbound.
// Unbound identifiers are malformed trees, not recoverable conditions.
func (sc *Scope) Value(name string) Erased {
	v, ok := sc.m.Get(name)
	if !ok {
		unboundIdentifier(name)
	}
	return v
}

// Len returns the number of bindings in scope.
func (sc *Scope) Len() int {
	return sc.m.Len()
}
