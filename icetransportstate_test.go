// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import (
	"testing"

	"github.com/pion/ice/v4"
	"github.com/stretchr/testify/assert"
)

func TestNewICETransportStateFromICE(t *testing.T) {
	testCases := []struct {
		in       ice.ConnectionState
		expected ICETransportState
	}{
		{ice.ConnectionStateNew, ICETransportStateNew},
		{ice.ConnectionStateChecking, ICETransportStateChecking},
		{ice.ConnectionStateConnected, ICETransportStateConnected},
		{ice.ConnectionStateCompleted, ICETransportStateCompleted},
		{ice.ConnectionStateFailed, ICETransportStateFailed},
		{ice.ConnectionStateDisconnected, ICETransportStateDisconnected},
		{ice.ConnectionStateClosed, ICETransportStateClosed},
	}

	for i, c := range testCases {
		assert.Equal(t, c.expected, newICETransportStateFromICE(c.in), "testCase: %d", i)
	}
}

func TestICETransportState_String(t *testing.T) {
	assert.Equal(t, "new", ICETransportStateNew.String())
	assert.Equal(t, unspecifiedStr, ICETransportStateUnspecified.String())
}
