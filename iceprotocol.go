// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import "strings"

// ICEProtocol indicates the transport protocol type that is used in the
// ice.Candidate's network.
type ICEProtocol int

const (
	// ICEProtocolUnspecified is the enum's zero-value.
	ICEProtocolUnspecified ICEProtocol = iota

	// ICEProtocolUDP indicates the network uses a UDP transport.
	ICEProtocolUDP

	// ICEProtocolTCP indicates the network uses a TCP transport.
	ICEProtocolTCP
)

const (
	iceProtocolUDPStr = "udp"
	iceProtocolTCPStr = "tcp"
)

// NewICEProtocol takes a string and case-insensitively converts it to an
// ICEProtocol. Any unrecognized input yields ICEProtocolUnspecified.
func NewICEProtocol(raw string) ICEProtocol {
	switch {
	case strings.EqualFold(raw, iceProtocolUDPStr):
		return ICEProtocolUDP
	case strings.EqualFold(raw, iceProtocolTCPStr):
		return ICEProtocolTCP
	default:
		return ICEProtocolUnspecified
	}
}

func (t ICEProtocol) String() string {
	switch t {
	case ICEProtocolUDP:
		return iceProtocolUDPStr
	case ICEProtocolTCP:
		return iceProtocolTCPStr
	default:
		return unspecifiedStr
	}
}
