// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package fmtp

import "strings"

type av1FMTP struct {
	parameters map[string]string
}

func (a *av1FMTP) MimeType() string {
	return "video/av1"
}

// Match returns true when both sides agree on profile, defaulting an
// absent profile to "0".
func (a *av1FMTP) Match(b FMTP) bool {
	c, ok := b.(*av1FMTP)
	if !ok {
		return false
	}

	return strings.EqualFold(a.profile(), c.profile())
}

func (a *av1FMTP) Parameter(key string) (string, bool) {
	val, ok := a.parameters[key]

	return val, ok
}

func (a *av1FMTP) profile() string {
	if p, ok := a.parameters["profile"]; ok {
		return p
	}

	return "0"
}
