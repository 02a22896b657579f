// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

package esquery

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"gotest.tools/v3/assert"
)

func countFlag(t *testing.T, args []string) string {
	t.Helper()
	value := ""
	n := 0
	for i, a := range args {
		if a == "-n" {
			n++
			assert.Assert(t, i+1 < len(args), "dangling -n")
			value = args[i+1]
		}
	}
	assert.Equal(t, 1, n, "expected exactly one -n flag in %v", args)
	return value
}

func TestBuildResultCountFlag(t *testing.T) {
	for _, max := range []int{1, 2, 50, 499, 500} {
		args, err := Build(Options{Query: "*.txt", MaxResults: max})
		assert.NilError(t, err)
		assert.Equal(t, strconv.Itoa(max), countFlag(t, args))
	}
}

func TestBuildClampsResultCount(t *testing.T) {
	args, err := Build(Options{Query: "*", MaxResults: 0})
	assert.NilError(t, err)
	assert.Equal(t, "1", countFlag(t, args))

	args, err = Build(Options{Query: "*", MaxResults: MaxResultsCap + 1})
	assert.NilError(t, err)
	assert.Equal(t, strconv.Itoa(MaxResultsCap), countFlag(t, args))
}

func TestBuildExtensionQuery(t *testing.T) {
	// Scenario: "ext:py" with max_results=50 must carry the filter and the cap.
	args, err := Build(Options{Query: "ext:py", MaxResults: 50, Sort: "date-modified-desc"})
	assert.NilError(t, err)
	assert.DeepEqual(t, []string{"-n", "50", "-sort", "date-modified-descending", "ext:py"}, args)
}

func TestBuildModifierFlags(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want []string
	}{
		{
			name: "defaults omit modifier flags",
			opts: Options{Query: "report", MaxResults: 10},
			want: []string{"-n", "10", "report"},
		},
		{
			name: "all modifiers",
			opts: Options{
				Query: "report", MaxResults: 10,
				MatchCase: true, MatchWholeWord: true, MatchRegex: true, MatchPath: true,
			},
			want: []string{"-n", "10", "-case", "-w", "-r", "-p", "report"},
		},
		{
			name: "offset emitted only when positive",
			opts: Options{Query: "report", MaxResults: 10, Offset: 20},
			want: []string{"-n", "10", "-o", "20", "report"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args, err := Build(tt.opts)
			assert.NilError(t, err)
			assert.DeepEqual(t, tt.want, args)
		})
	}
}

func TestBuildQueryIsSingleArgument(t *testing.T) {
	// Query text that resembles flags or contains spaces must stay one token.
	q := `-n 999 "My Documents"`
	args, err := Build(Options{Query: q, MaxResults: 5})
	assert.NilError(t, err)
	assert.Equal(t, q, args[len(args)-1])
	assert.Equal(t, "5", countFlag(t, args))
}

func TestBuildInvalidSort(t *testing.T) {
	_, err := Build(Options{Query: "*", MaxResults: 5, Sort: "by-mood"})
	assert.ErrorContains(t, err, "invalid sort option")
}

func TestAggregateVectorsNeverCarryRowCap(t *testing.T) {
	// Regression: pairing -get-result-count/-get-total-size with "-n 0"
	// makes es.exe report zero, so the aggregate vectors must stay
	// single-purpose.
	for _, args := range [][]string{BuildCount("ext:py"), BuildTotalSize("ext:py")} {
		for _, a := range args {
			assert.Assert(t, a != "-n", "aggregate vector %v must not carry -n", args)
		}
		assert.Equal(t, 2, len(args))
		assert.Equal(t, "ext:py", args[1])
	}
}

func TestTypeQuery(t *testing.T) {
	q, err := TypeQuery("image", "", "")
	assert.NilError(t, err)
	assert.Assert(t, strings.HasPrefix(q, "ext:"))
	assert.Assert(t, strings.Contains(q, "png"))

	q, err = TypeQuery("code", "config", `C:\Projects`)
	assert.NilError(t, err)
	assert.Equal(t, true, strings.Contains(q, `path:"C:\Projects"`))
	assert.Equal(t, true, strings.HasSuffix(q, " config"))

	_, err = TypeQuery("hologram", "", "")
	assert.ErrorContains(t, err, "unknown file type")
}

func TestCategoryFilterRoundTrip(t *testing.T) {
	// Each category must expand to a parseable ext: list that recovers a
	// non-empty extension set.
	for _, name := range CategoryNames() {
		expr, err := CategoryFilter(name)
		assert.NilError(t, err)
		assert.Assert(t, strings.HasPrefix(expr, "ext:"), "category %q: %q", name, expr)
		exts := strings.Split(strings.TrimPrefix(expr, "ext:"), ";")
		assert.Assert(t, len(exts) > 0)
		for _, e := range exts {
			assert.Assert(t, e != "", "category %q has an empty extension", name)
		}
	}
}

func TestRecentQueryPeriodsDistinct(t *testing.T) {
	seen := map[string]string{}
	for _, p := range PeriodNames() {
		q := RecentQuery(p, "", "")
		if prev, ok := seen[q]; ok {
			t.Fatalf("periods %q and %q alias the same filter %q", prev, p, q)
		}
		seen[q] = p
		assert.Assert(t, strings.HasPrefix(q, "dm:"))
	}
}

func TestRecentQueryComposition(t *testing.T) {
	q := RecentQuery("1hour", `C:\Work`, "py,js")
	assert.Equal(t, `dm:last1hour path:"C:\Work" ext:py;js`, q)

	// Raw Everything syntax passes through.
	assert.Equal(t, "dm:last42mins", RecentQuery("last42mins", "", ""))
}

func TestNormalizeExtensions(t *testing.T) {
	tests := []struct{ in, want string }{
		{"py,js", "py;js"},
		{".py,.js", "py;js"},
		{"py;js", "py;js"},
		{"py js", "py;js"},
		{" py , js ", "py;js"},
		{"", ""},
		{";;", ""},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%q", tt.in), func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeExtensions(tt.in))
		})
	}
}
