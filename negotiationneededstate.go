// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

// negotiationNeededState coalesces bursts of renegotiation signals into
// at most one in-flight and one queued negotiation-needed event.
type negotiationNeededState int

const (
	// negotiationNeededStateEmpty: not running, queue is empty.
	negotiationNeededStateEmpty negotiationNeededState = iota
	// negotiationNeededStateRun: running, queue is empty.
	negotiationNeededStateRun
	// negotiationNeededStateQueue: running, and another signal is queued.
	negotiationNeededStateQueue
)
