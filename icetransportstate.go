// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import "github.com/pion/ice/v4"

// ICETransportState represents the current state of the ICE transport, as
// reported by the underlying ICE agent.
type ICETransportState int

const (
	// ICETransportStateUnspecified is the enum's zero-value.
	ICETransportStateUnspecified ICETransportState = iota

	// ICETransportStateNew indicates the ICETransport is waiting for
	// remote candidates to be supplied.
	ICETransportStateNew

	// ICETransportStateChecking indicates the ICETransport has received
	// at least one remote candidate and is testing candidate pairs.
	ICETransportStateChecking

	// ICETransportStateConnected indicates the ICETransport has received
	// a response to an outgoing connectivity check, but is still testing
	// other candidate pairs for a better connection.
	ICETransportStateConnected

	// ICETransportStateCompleted indicates the ICETransport tested all
	// appropriate candidate pairs and at least one functioning pair has
	// been found.
	ICETransportStateCompleted

	// ICETransportStateFailed indicates all appropriate candidate pairs
	// have either failed connectivity checks or lost consent.
	ICETransportStateFailed

	// ICETransportStateDisconnected indicates liveness checks have
	// started failing on a previously working candidate pair.
	ICETransportStateDisconnected

	// ICETransportStateClosed indicates the ICETransport has shut down
	// and is no longer responding to STUN requests.
	ICETransportStateClosed
)

const (
	iceTransportStateNewStr          = "new"
	iceTransportStateCheckingStr     = "checking"
	iceTransportStateConnectedStr    = "connected"
	iceTransportStateCompletedStr    = "completed"
	iceTransportStateFailedStr       = "failed"
	iceTransportStateDisconnectedStr = "disconnected"
	iceTransportStateClosedStr       = "closed"
)

func newICETransportStateFromICE(i ice.ConnectionState) ICETransportState {
	switch i {
	case ice.ConnectionStateNew:
		return ICETransportStateNew
	case ice.ConnectionStateChecking:
		return ICETransportStateChecking
	case ice.ConnectionStateConnected:
		return ICETransportStateConnected
	case ice.ConnectionStateCompleted:
		return ICETransportStateCompleted
	case ice.ConnectionStateFailed:
		return ICETransportStateFailed
	case ice.ConnectionStateDisconnected:
		return ICETransportStateDisconnected
	case ice.ConnectionStateClosed:
		return ICETransportStateClosed
	default:
		return ICETransportStateUnspecified
	}
}

func (c ICETransportState) String() string {
	switch c {
	case ICETransportStateNew:
		return iceTransportStateNewStr
	case ICETransportStateChecking:
		return iceTransportStateCheckingStr
	case ICETransportStateConnected:
		return iceTransportStateConnectedStr
	case ICETransportStateCompleted:
		return iceTransportStateCompletedStr
	case ICETransportStateFailed:
		return iceTransportStateFailedStr
	case ICETransportStateDisconnected:
		return iceTransportStateDisconnectedStr
	case ICETransportStateClosed:
		return iceTransportStateClosedStr
	default:
		return unspecifiedStr
	}
}
