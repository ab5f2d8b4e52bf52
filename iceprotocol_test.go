// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestICEProtocol_CaseInsensitive(t *testing.T) {
	testCases := []struct {
		raw      string
		expected ICEProtocol
	}{
		{"udp", ICEProtocolUDP},
		{"UDP", ICEProtocolUDP},
		{"Udp", ICEProtocolUDP},
		{"tcp", ICEProtocolTCP},
		{"TCP", ICEProtocolTCP},
		{"bogus", ICEProtocolUnspecified},
		{"", ICEProtocolUnspecified},
	}

	for i, c := range testCases {
		assert.Equal(t, c.expected, NewICEProtocol(c.raw), "testCase: %d", i)
	}
}

func TestICEProtocol_String(t *testing.T) {
	assert.Equal(t, "udp", ICEProtocolUDP.String())
	assert.Equal(t, "tcp", ICEProtocolTCP.String())
	assert.Equal(t, unspecifiedStr, ICEProtocolUnspecified.String())
}
