// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

// deriveConnectionState computes the aggregate PeerConnectionState from
// the current state of every child ICE and DTLS transport. closed reports
// whether Close has already been invoked on the PeerConnection, which
// takes precedence over every other condition.
//
// The remaining conditions are evaluated in the order the WebRTC
// specification lists them: Failed, then Connecting, then Connected,
// then Disconnected, then New.
func deriveConnectionState(ice []ICETransportState, dtls []DTLSTransportState, closed bool) PeerConnectionState {
	if closed {
		return PeerConnectionStateClosed
	}

	if len(ice) == 0 && len(dtls) == 0 {
		return PeerConnectionStateNew
	}

	var (
		hasFailed           bool
		hasConnectingOrChk  bool
		hasDisconnected     bool
		hasConnectedOrDone  bool
		hasNew              bool
		allConnectedOrClose = true
		allClosed           = true
	)

	for _, s := range ice {
		switch s {
		case ICETransportStateFailed:
			hasFailed = true
		case ICETransportStateChecking:
			hasConnectingOrChk = true
		case ICETransportStateDisconnected:
			hasDisconnected = true
		case ICETransportStateConnected, ICETransportStateCompleted:
			hasConnectedOrDone = true
		case ICETransportStateNew:
			hasNew = true
		}

		if s != ICETransportStateConnected && s != ICETransportStateCompleted && s != ICETransportStateClosed {
			allConnectedOrClose = false
		}
		if s != ICETransportStateClosed {
			allClosed = false
		}
	}

	for _, s := range dtls {
		switch s {
		case DTLSTransportStateFailed:
			hasFailed = true
		case DTLSTransportStateConnecting:
			hasConnectingOrChk = true
		case DTLSTransportStateConnected:
			hasConnectedOrDone = true
		case DTLSTransportStateNew:
			hasNew = true
		}

		if s != DTLSTransportStateConnected && s != DTLSTransportStateClosed {
			allConnectedOrClose = false
		}
		if s != DTLSTransportStateClosed {
			allClosed = false
		}
	}

	switch {
	case hasFailed:
		return PeerConnectionStateFailed
	case hasConnectingOrChk:
		return PeerConnectionStateConnecting
	case allConnectedOrClose && hasConnectedOrDone:
		return PeerConnectionStateConnected
	case hasDisconnected:
		return PeerConnectionStateDisconnected
	case allClosed || hasNew:
		return PeerConnectionStateNew
	default:
		return PeerConnectionStateNew
	}
}
