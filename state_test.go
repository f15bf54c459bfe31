// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cexpr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/cexpr"
)

func TestStateThreading(t *testing.T) {
	// let! s = get in do! put (s+32) in let! s2 = get in return s2
	body := &cexpr.LetBind{
		Name:   "s",
		Source: cexpr.Const(cexpr.GetState()),
		Cont: &cexpr.DoBind{
			Source: func(sc *cexpr.Scope) cexpr.Erased {
				return cexpr.PutState(sc.Value("s").(int) + 32)
			},
			Cont: &cexpr.LetBind{
				Name:   "s2",
				Source: cexpr.Const(cexpr.GetState()),
				Cont:   &cexpr.Return{Value: cexpr.Var("s2")},
			},
		},
	}

	m, err := cexpr.Desugar(cexpr.StateBuilder{}, body)
	assert.NoError(t, err)

	v, final := cexpr.RunState(m, 10)
	assert.Equal(t, 42, v)
	assert.Equal(t, 42, final)
}

func TestStateCompositionIsDeferred(t *testing.T) {
	// The bind continuation waits for an initial state; running twice
	// threads each initial state independently.
	ran := false
	body := &cexpr.LetBind{
		Name:   "s",
		Source: cexpr.Const(cexpr.GetState()),
		Cont: &cexpr.Stmt{
			Effect: func(*cexpr.Scope) { ran = true },
			Cont:   &cexpr.Return{Value: cexpr.Var("s")},
		},
	}

	m, err := cexpr.Desugar(cexpr.StateBuilder{}, body)
	assert.NoError(t, err)
	assert.False(t, ran, "bind continuation must wait for the initial state")

	assert.Equal(t, 1, cexpr.EvalState(m, 1))
	assert.True(t, ran)
	assert.Equal(t, 2, cexpr.EvalState(m, 2))
}

func TestStateModify(t *testing.T) {
	body := &cexpr.LetBind{
		Name: "doubled",
		Source: cexpr.Const(cexpr.ModifyState(func(s cexpr.Erased) cexpr.Erased {
			return s.(int) * 2
		})),
		Cont: &cexpr.Return{Value: cexpr.Var("doubled")},
	}

	m, err := cexpr.Desugar(cexpr.StateBuilder{}, body)
	assert.NoError(t, err)

	v, final := cexpr.RunState(m, 21)
	assert.Equal(t, 42, v)
	assert.Equal(t, 42, final)
}

func TestStateCombineThreadsInOrder(t *testing.T) {
	// do! put 1; return! get — Combine threads the state left to right
	// and keeps the second fragment's value.
	body := &cexpr.Seq{
		First: &cexpr.DoBind{
			Source: cexpr.Const(cexpr.PutState(5)),
			Cont:   &cexpr.Return{Value: cexpr.Const(struct{}{})},
		},
		Rest: &cexpr.ReturnFrom{Source: cexpr.Const(cexpr.GetState())},
	}

	m, err := cexpr.Desugar(cexpr.StateBuilder{}, body)
	assert.NoError(t, err)

	v, final := cexpr.RunState(m, 0)
	assert.Equal(t, 5, v)
	assert.Equal(t, 5, final)
}

func TestStateExecAndEval(t *testing.T) {
	body := &cexpr.DoBind{
		Source: cexpr.Const(cexpr.PutState("next")),
		Cont:   &cexpr.Return{Value: cexpr.Const("value")},
	}

	m, err := cexpr.Desugar(cexpr.StateBuilder{}, body)
	assert.NoError(t, err)
	assert.Equal(t, "value", cexpr.EvalState(m, "initial"))
	assert.Equal(t, "next", cexpr.ExecState(m, "initial"))
}
