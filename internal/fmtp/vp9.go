// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package fmtp

import "strings"

type vp9FMTP struct {
	parameters map[string]string
}

func (v *vp9FMTP) MimeType() string {
	return "video/vp9"
}

// Match returns true when both sides agree on profile-id, defaulting an
// absent profile-id to "0".
func (v *vp9FMTP) Match(b FMTP) bool {
	c, ok := b.(*vp9FMTP)
	if !ok {
		return false
	}

	return strings.EqualFold(v.profileID(), c.profileID())
}

func (v *vp9FMTP) Parameter(key string) (string, bool) {
	val, ok := v.parameters[key]

	return val, ok
}

func (v *vp9FMTP) profileID() string {
	if p, ok := v.parameters["profile-id"]; ok {
		return p
	}

	return "0"
}
