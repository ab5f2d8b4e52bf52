// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package fmtp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAV1FMTP_Match(t *testing.T) {
	a := Parse("video/av1", 90000, 0, "profile=0")
	b := Parse("video/av1", 90000, 0, "")
	assert.True(t, a.Match(b), "absent profile defaults to 0")

	c := Parse("video/av1", 90000, 0, "profile=1")
	assert.False(t, a.Match(c))
}
