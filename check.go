// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cexpr

// Static capability check over the computation tree.
//
// check walks the whole tree — every branch, arm and continuation — before
// any rewrite work begins, so a MissingOperationError surfaces before
// partial composition is discarded and before any builder operation runs.
// Traversal is depth-first in syntactic order; the first unmet requirement
// wins, which makes the reported error deterministic for a given tree.

// check verifies that every construct in the tree rooted at n is covered
// by d's capability set.
func check(d *Descriptor, n Node) error {
	if n == nil {
		return nil
	}
	switch n := n.(type) {
	case *Let:
		return check(d, n.Cont)
	case *LetBind:
		if err := d.requires("let!", OpBind); err != nil {
			return err
		}
		return check(d, n.Cont)
	case *DoBind:
		if err := d.requires("do!", OpBind); err != nil {
			return err
		}
		return check(d, n.Cont)
	case *Return:
		return d.requires("return", OpReturn)
	case *ReturnFrom:
		return d.requires("return!", OpReturnFrom)
	case *Yield:
		return d.requires("yield", OpYield)
	case *YieldFrom:
		return d.requires("yield!", OpYieldFrom)
	case *If:
		// No else branch: the false case desugars to Zero().
		if err := d.requires("if", OpZero); err != nil {
			return err
		}
		return check(d, n.Then)
	case *IfElse:
		if err := check(d, n.Then); err != nil {
			return err
		}
		return check(d, n.Else)
	case *Match:
		for i := range n.Arms {
			if err := check(d, n.Arms[i].Body); err != nil {
				return err
			}
		}
		return nil
	case *MatchBind:
		if err := d.requires("match!", OpBind); err != nil {
			return err
		}
		for i := range n.Arms {
			if err := check(d, n.Arms[i].Body); err != nil {
				return err
			}
		}
		return nil
	case *For:
		if err := d.requires("for", OpFor); err != nil {
			return err
		}
		return check(d, n.Body)
	case *ForRange:
		if err := d.requires("for", OpFor); err != nil {
			return err
		}
		return check(d, n.Body)
	case *While:
		if err := d.requires("while", OpWhile); err != nil {
			return err
		}
		return check(d, n.Body)
	case *TryWith:
		if err := d.requires("try/with", OpTryWith); err != nil {
			return err
		}
		if err := d.requires("try/with", OpDelay); err != nil {
			return err
		}
		if err := check(d, n.Body); err != nil {
			return err
		}
		for i := range n.Arms {
			if err := check(d, n.Arms[i].Body); err != nil {
				return err
			}
		}
		return nil
	case *TryFinally:
		if err := d.requires("try/finally", OpTryFinally); err != nil {
			return err
		}
		if err := d.requires("try/finally", OpDelay); err != nil {
			return err
		}
		return check(d, n.Body)
	case *Use:
		if err := d.requires("use", OpUsing); err != nil {
			return err
		}
		return check(d, n.Cont)
	case *UseBind:
		if err := d.requires("use!", OpBind); err != nil {
			return err
		}
		if err := d.requires("use!", OpUsing); err != nil {
			return err
		}
		return check(d, n.Cont)
	case *Seq:
		if err := d.requires("seq", OpCombine); err != nil {
			return err
		}
		if err := check(d, n.First); err != nil {
			return err
		}
		return check(d, n.Rest)
	case *Stmt:
		if n.Cont == nil {
			// Tail position: the statement's value is discarded and the
			// construct closes with Zero().
			return d.requires("statement", OpZero)
		}
		return check(d, n.Cont)
	}
	unknownNode()
	return nil
}
