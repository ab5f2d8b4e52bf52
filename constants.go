// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

// unspecifiedStr is the single process-wide token every enum in this
// package renders when holding its zero/Unspecified variant.
const unspecifiedStr = "unspecified"

// PayloadType identifies the codec carried by an RTP packet, as assigned
// during SDP offer/answer negotiation.
type PayloadType uint8

// SSRC represents a synchronization source as defined in RFC 3550.
type SSRC uint32
