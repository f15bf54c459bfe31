// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package cexpr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"code.hybscloud.com/cexpr"
)

func TestDescribeProbesWithoutInvoking(t *testing.T) {
	// Describe is pure inspection: no operation runs.
	b := cexpr.NewTraceBuilder()
	d := cexpr.Describe(b)

	assert.Empty(t, b.Trace())
	assert.Equal(t, 14, d.Len(), "trace builder exposes the full capability set")
}

func TestDescribePerBuilder(t *testing.T) {
	cases := []struct {
		name    string
		builder cexpr.Builder
		size    int
		has     string
		lacks   string
	}{
		{"option", cexpr.OptionBuilder{}, 5, cexpr.OpUsing, cexpr.OpDelay},
		{"choice", cexpr.ChoiceBuilder{}, 10, cexpr.OpCombine, cexpr.OpFor},
		{"list", cexpr.ListBuilder{}, 10, cexpr.OpYield, cexpr.OpUsing},
		{"state", cexpr.StateBuilder{}, 7, cexpr.OpRun, cexpr.OpYield},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := cexpr.Describe(tc.builder)
			assert.Equal(t, tc.size, d.Len())
			assert.True(t, d.Supports(tc.has), tc.has)
			assert.False(t, d.Supports(tc.lacks), tc.lacks)
		})
	}
}

func TestDescribeEmptyBuilder(t *testing.T) {
	d := cexpr.Describe(struct{}{})
	assert.Equal(t, 0, d.Len())
	assert.False(t, d.Supports(cexpr.OpBind))
}
