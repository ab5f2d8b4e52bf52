// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package fmtp

import (
	"encoding/hex"
	"strings"
)

type h264FMTP struct {
	parameters map[string]string
}

func (h *h264FMTP) MimeType() string {
	return "video/h264"
}

// Match returns true if h and b have a consistent packetization-mode and
// profile-level-id. Both parameters must either be present on both sides
// and equal (profile-level-id compared only on its first two bytes,
// profile_idc and profile_iop, allowing level_idc to differ), or absent
// from both sides; present on exactly one side is inconsistent.
func (h *h264FMTP) Match(b FMTP) bool {
	c, ok := b.(*h264FMTP)
	if !ok {
		return false
	}

	pmA, okA := h.Parameter("packetization-mode")
	pmB, okB := c.Parameter("packetization-mode")
	if okA != okB {
		return false
	}
	if okA && !strings.EqualFold(pmA, pmB) {
		return false
	}

	profA, okA := h.Parameter("profile-level-id")
	profB, okB := c.Parameter("profile-level-id")
	if okA != okB {
		return false
	}
	if okA && !profileLevelIDMatch(profA, profB) {
		return false
	}

	return true
}

func (h *h264FMTP) Parameter(key string) (string, bool) {
	v, ok := h.parameters[key]

	return v, ok
}

// profileLevelIDMatch compares two profile-level-id hex strings on their
// profile_idc and profile_iop bytes, ignoring level_idc.
func profileLevelIDMatch(a, b string) bool {
	decodedA, errA := hex.DecodeString(a)
	decodedB, errB := hex.DecodeString(b)
	if errA != nil || errB != nil || len(decodedA) != 3 || len(decodedB) != 3 {
		return strings.EqualFold(a, b)
	}

	return decodedA[0] == decodedB[0] && decodedA[1] == decodedB[1]
}
