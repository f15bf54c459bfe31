// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cexpr_test

import (
	"reflect"
	"testing"

	"code.hybscloud.com/cexpr"
)

func mustDesugar(t *testing.T, b cexpr.Builder, body cexpr.Node) cexpr.Erased {
	t.Helper()
	result, err := cexpr.Desugar(b, body)
	if err != nil {
		t.Fatalf("unexpected desugar error: %v", err)
	}
	return result
}

func TestLetBindChain(t *testing.T) {
	// let! a = Some(1) in let! b = Some(2) in return a+b
	body := &cexpr.LetBind{
		Name:   "a",
		Source: cexpr.Const(cexpr.Some(1)),
		Cont: &cexpr.LetBind{
			Name:   "b",
			Source: cexpr.Const(cexpr.Some(2)),
			Cont: &cexpr.Return{Value: func(sc *cexpr.Scope) cexpr.Erased {
				return sc.Value("a").(int) + sc.Value("b").(int)
			}},
		},
	}

	result := mustDesugar(t, cexpr.OptionBuilder{}, body)
	v, ok := result.(cexpr.Option).Get()
	if !ok || v != 3 {
		t.Fatalf("got %v, want Some(3)", result)
	}
}

func TestLetIsNonMonadic(t *testing.T) {
	// let x = 20 in return x*2 — no Bind involved
	b := cexpr.NewTraceBuilder()
	body := &cexpr.Let{
		Name:  "x",
		Value: cexpr.Const(20),
		Cont: &cexpr.Return{Value: func(sc *cexpr.Scope) cexpr.Erased {
			return sc.Value("x").(int) * 2
		}},
	}

	result := mustDesugar(t, b, body)
	if result != 40 {
		t.Fatalf("got %v, want 40", result)
	}
	want := []string{"Delay", "Run", "Return"}
	if !reflect.DeepEqual(b.Trace(), want) {
		t.Fatalf("got trace %v, want %v", b.Trace(), want)
	}
}

func TestDoBindDiscardsValue(t *testing.T) {
	// do! Some("ignored") in return 7
	body := &cexpr.DoBind{
		Source: cexpr.Const(cexpr.Some("ignored")),
		Cont:   &cexpr.Return{Value: cexpr.Const(7)},
	}

	result := mustDesugar(t, cexpr.OptionBuilder{}, body)
	v, ok := result.(cexpr.Option).Get()
	if !ok || v != 7 {
		t.Fatalf("got %v, want Some(7)", result)
	}
}

func TestTopLevelDelayRunOrdering(t *testing.T) {
	// With Delay and Run present, the body is delayed first and every
	// other operation runs only once Run forces the thunk.
	b := cexpr.NewTraceBuilder()
	body := &cexpr.LetBind{
		Name:   "v",
		Source: cexpr.Const(1),
		Cont:   &cexpr.Return{Value: cexpr.Var("v")},
	}

	mustDesugar(t, b, body)
	want := []string{"Delay", "Run", "Bind", "Return"}
	if !reflect.DeepEqual(b.Trace(), want) {
		t.Fatalf("got trace %v, want %v", b.Trace(), want)
	}
}

func TestEagerCompositionWithoutDelay(t *testing.T) {
	// Without Delay, side effects in the body run during rewriting.
	ran := false
	body := &cexpr.Stmt{
		Effect: func(*cexpr.Scope) { ran = true },
		Cont:   &cexpr.Return{Value: cexpr.Const(1)},
	}

	mustDesugar(t, cexpr.OptionBuilder{}, body)
	if !ran {
		t.Fatal("statement effect did not run during composition")
	}
}

func TestIfWithoutElseUsesZero(t *testing.T) {
	body := &cexpr.If{
		Cond: func(*cexpr.Scope) bool { return false },
		Then: &cexpr.Return{Value: cexpr.Const(1)},
	}

	result := mustDesugar(t, cexpr.OptionBuilder{}, body)
	if !result.(cexpr.Option).IsNone() {
		t.Fatalf("got %v, want None", result)
	}
}

func TestIfElseSelectsBranch(t *testing.T) {
	mk := func(cond bool) cexpr.Node {
		return &cexpr.IfElse{
			Cond: func(*cexpr.Scope) bool { return cond },
			Then: &cexpr.Return{Value: cexpr.Const("then")},
			Else: &cexpr.Return{Value: cexpr.Const("else")},
		}
	}

	v, _ := mustDesugar(t, cexpr.OptionBuilder{}, mk(true)).(cexpr.Option).Get()
	if v != "then" {
		t.Fatalf("got %v, want then", v)
	}
	v, _ = mustDesugar(t, cexpr.OptionBuilder{}, mk(false)).(cexpr.Option).Get()
	if v != "else" {
		t.Fatalf("got %v, want else", v)
	}
}

func TestMatchDispatch(t *testing.T) {
	body := &cexpr.Match{
		Scrutinee: cexpr.Const(5),
		Arms: []cexpr.MatchArm{
			{
				When: func(v cexpr.Erased) bool { return v.(int) < 0 },
				Body: &cexpr.Return{Value: cexpr.Const("negative")},
			},
			{
				Name: "n",
				Body: &cexpr.Return{Value: func(sc *cexpr.Scope) cexpr.Erased {
					return sc.Value("n").(int) * 10
				}},
			},
		},
	}

	v, _ := mustDesugar(t, cexpr.OptionBuilder{}, body).(cexpr.Option).Get()
	if v != 50 {
		t.Fatalf("got %v, want 50", v)
	}
}

func TestMatchBindIsBindThenMatch(t *testing.T) {
	// match! fuses let! with match and requires only Bind.
	b := cexpr.NewTraceBuilder()
	body := &cexpr.MatchBind{
		Source: cexpr.Const(3),
		Arms: []cexpr.MatchArm{
			{
				When: func(v cexpr.Erased) bool { return v.(int)%2 == 1 },
				Name: "odd",
				Body: &cexpr.Return{Value: cexpr.Var("odd")},
			},
			{Body: &cexpr.Return{Value: cexpr.Const(0)}},
		},
	}

	result := mustDesugar(t, b, body)
	if result != 3 {
		t.Fatalf("got %v, want 3", result)
	}
	want := []string{"Delay", "Run", "Bind", "Return"}
	if !reflect.DeepEqual(b.Trace(), want) {
		t.Fatalf("got trace %v, want %v", b.Trace(), want)
	}
}

func TestMatchNoArmPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for unmatched scrutinee")
		}
	}()

	body := &cexpr.Match{
		Scrutinee: cexpr.Const(1),
		Arms: []cexpr.MatchArm{
			{
				When: func(v cexpr.Erased) bool { return false },
				Body: &cexpr.Return{Value: cexpr.Const(0)},
			},
		},
	}
	_, _ = cexpr.Desugar(cexpr.OptionBuilder{}, body)
}

func TestForRangeIsInclusive(t *testing.T) {
	b := cexpr.NewTraceBuilder()
	body := &cexpr.ForRange{
		Name: "i",
		From: cexpr.Const(1),
		To:   cexpr.Const(3),
		Body: &cexpr.Return{Value: cexpr.Var("i")},
	}

	result := mustDesugar(t, b, body)
	want := []cexpr.Erased{1, 2, 3}
	if !reflect.DeepEqual(result, want) {
		t.Fatalf("got %v, want %v", result, want)
	}
}

func TestSeqCombinesLeftToRight(t *testing.T) {
	// Two trailing returns compose through Combine; the builder owns
	// the meaning, the engine only supplies the structure.
	b := cexpr.NewTraceBuilder()
	body := &cexpr.Seq{
		First: &cexpr.Return{Value: cexpr.Const(1)},
		Rest: &cexpr.Seq{
			First: &cexpr.Return{Value: cexpr.Const(2)},
			Rest:  &cexpr.Return{Value: cexpr.Const(3)},
		},
	}

	result := mustDesugar(t, b, body)
	if result != 3 {
		t.Fatalf("got %v, want 3 (trace builder keeps the second fragment)", result)
	}
	want := []string{"Delay", "Run", "Return", "Delay", "Combine", "Return", "Delay", "Combine", "Return"}
	if !reflect.DeepEqual(b.Trace(), want) {
		t.Fatalf("got trace %v, want %v", b.Trace(), want)
	}
}

func TestTailStatementClosesWithZero(t *testing.T) {
	b := cexpr.NewTraceBuilder()
	ran := false
	body := &cexpr.Stmt{
		Effect: func(*cexpr.Scope) { ran = true },
	}

	mustDesugar(t, b, body)
	if !ran {
		t.Fatal("tail statement effect did not run")
	}
	want := []string{"Delay", "Run", "Zero"}
	if !reflect.DeepEqual(b.Trace(), want) {
		t.Fatalf("got trace %v, want %v", b.Trace(), want)
	}
}

func TestDesugarInSeesOuterBindings(t *testing.T) {
	sc := cexpr.NewScope().Bind("outer", 40)
	body := &cexpr.Return{Value: func(sc *cexpr.Scope) cexpr.Erased {
		return sc.Value("outer").(int) + 2
	}}

	result, err := cexpr.DesugarIn(cexpr.OptionBuilder{}, sc, body)
	if err != nil {
		t.Fatalf("unexpected desugar error: %v", err)
	}
	v, _ := result.(cexpr.Option).Get()
	if v != 42 {
		t.Fatalf("got %v, want 42", v)
	}
}

func TestSiblingBranchesDoNotShareBindings(t *testing.T) {
	// A binding introduced in the then-branch must not leak into a
	// later sequenced fragment.
	b := cexpr.NewTraceBuilder()
	body := &cexpr.Seq{
		First: &cexpr.Let{
			Name:  "local",
			Value: cexpr.Const(1),
			Cont:  &cexpr.Return{Value: cexpr.Var("local")},
		},
		Rest: &cexpr.Return{Value: func(sc *cexpr.Scope) cexpr.Erased {
			_, bound := sc.Lookup("local")
			return bound
		}},
	}

	result := mustDesugar(t, b, body)
	if result != false {
		t.Fatalf("sibling fragment observed a leaked binding")
	}
}

func TestTreeIsReusableAcrossBuilders(t *testing.T) {
	// One tree, desugared twice against different builders.
	body := &cexpr.LetBind{
		Name:   "v",
		Source: cexpr.Const(cexpr.Some(10)),
		Cont: &cexpr.Return{Value: func(sc *cexpr.Scope) cexpr.Erased {
			return sc.Value("v").(int) + 1
		}},
	}

	first := mustDesugar(t, cexpr.OptionBuilder{}, body)
	second := mustDesugar(t, cexpr.ChoiceBuilder{}, body)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("re-desugaring the same tree diverged: %v vs %v", first, second)
	}
}
