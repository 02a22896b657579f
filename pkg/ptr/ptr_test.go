// SPDX-FileCopyrightText: Copyright The Everything MCP Authors
// SPDX-License-Identifier: Apache-2.0

package ptr

import (
	"testing"

	"gotest.tools/v3/assert"
)

func TestOf(t *testing.T) {
	p := Of(42)
	assert.Equal(t, 42, *p)
	s := Of("instance")
	assert.Equal(t, "instance", *s)
}
