// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveConnectionState(t *testing.T) {
	testCases := []struct {
		name     string
		ice      []ICETransportState
		dtls     []DTLSTransportState
		closed   bool
		expected PeerConnectionState
	}{
		{
			name:     "no transports",
			expected: PeerConnectionStateNew,
		},
		{
			name:     "explicit close wins over everything",
			ice:      []ICETransportState{ICETransportStateConnected},
			dtls:     []DTLSTransportState{DTLSTransportStateConnected},
			closed:   true,
			expected: PeerConnectionStateClosed,
		},
		{
			name:     "any failed dominates",
			ice:      []ICETransportState{ICETransportStateConnected, ICETransportStateFailed},
			dtls:     []DTLSTransportState{DTLSTransportStateConnected},
			expected: PeerConnectionStateFailed,
		},
		{
			name:     "checking with no failures is connecting",
			ice:      []ICETransportState{ICETransportStateChecking},
			dtls:     []DTLSTransportState{DTLSTransportStateNew},
			expected: PeerConnectionStateConnecting,
		},
		{
			name:     "dtls connecting is also connecting",
			ice:      []ICETransportState{ICETransportStateConnected},
			dtls:     []DTLSTransportState{DTLSTransportStateConnecting},
			expected: PeerConnectionStateConnecting,
		},
		{
			name:     "all connected or closed with at least one connected",
			ice:      []ICETransportState{ICETransportStateConnected, ICETransportStateClosed},
			dtls:     []DTLSTransportState{DTLSTransportStateConnected},
			expected: PeerConnectionStateConnected,
		},
		{
			name:     "completed counts as connected",
			ice:      []ICETransportState{ICETransportStateCompleted},
			dtls:     []DTLSTransportState{DTLSTransportStateConnected},
			expected: PeerConnectionStateConnected,
		},
		{
			name:     "disconnected with no failed or connecting",
			ice:      []ICETransportState{ICETransportStateDisconnected},
			dtls:     []DTLSTransportState{DTLSTransportStateConnected},
			expected: PeerConnectionStateDisconnected,
		},
		{
			name:     "disconnected is shadowed by failed",
			ice:      []ICETransportState{ICETransportStateDisconnected, ICETransportStateFailed},
			expected: PeerConnectionStateFailed,
		},
		{
			name:     "all closed is new",
			ice:      []ICETransportState{ICETransportStateClosed},
			dtls:     []DTLSTransportState{DTLSTransportStateClosed},
			expected: PeerConnectionStateNew,
		},
		{
			name:     "new transport with nothing further along",
			ice:      []ICETransportState{ICETransportStateNew},
			dtls:     []DTLSTransportState{DTLSTransportStateNew},
			expected: PeerConnectionStateNew,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, deriveConnectionState(tc.ice, tc.dtls, tc.closed))
		})
	}
}
