// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package fmtp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVP9FMTP_Match(t *testing.T) {
	a := Parse("video/vp9", 90000, 0, "profile-id=0")
	b := Parse("video/vp9", 90000, 0, "")
	assert.True(t, a.Match(b), "absent profile-id defaults to 0")

	c := Parse("video/vp9", 90000, 0, "profile-id=2")
	assert.False(t, a.Match(c))
}
