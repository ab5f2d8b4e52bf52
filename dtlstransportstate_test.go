// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDTLSTransportState_RoundTrip(t *testing.T) {
	states := []DTLSTransportState{
		DTLSTransportStateNew,
		DTLSTransportStateConnecting,
		DTLSTransportStateConnected,
		DTLSTransportStateClosed,
		DTLSTransportStateFailed,
	}

	for i, s := range states {
		assert.Equal(t, s, NewDTLSTransportState(s.String()), "state %d", i)
		assert.Equal(t, s, NewDTLSTransportStateFromOrdinal(int(s)), "state %d", i)
	}
}

func TestDTLSTransportState_Unknown(t *testing.T) {
	assert.Equal(t, DTLSTransportStateUnspecified, NewDTLSTransportState("bogus"))
	assert.Equal(t, DTLSTransportStateUnspecified, NewDTLSTransportStateFromOrdinal(42))
	assert.Equal(t, unspecifiedStr, DTLSTransportStateUnspecified.String())
}

func TestDTLSTransportState_Ordinals(t *testing.T) {
	assert.Equal(t, 1, int(DTLSTransportStateNew))
	assert.Equal(t, 2, int(DTLSTransportStateConnecting))
	assert.Equal(t, 3, int(DTLSTransportStateConnected))
	assert.Equal(t, 4, int(DTLSTransportStateClosed))
	assert.Equal(t, 5, int(DTLSTransportStateFailed))
}

func TestDTLSTransportState_TextMarshaling(t *testing.T) {
	b, err := DTLSTransportStateConnected.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "connected", string(b))

	var s DTLSTransportState
	assert.NoError(t, s.UnmarshalText([]byte("failed")))
	assert.Equal(t, DTLSTransportStateFailed, s)
}
