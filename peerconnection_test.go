// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPeerConnection_SignalingStateOfferAnswer(t *testing.T) {
	offerer, err := NewPeerConnection(Configuration{})
	assert.NoError(t, err)
	defer offerer.Close() //nolint:errcheck

	answerer, err := NewPeerConnection(Configuration{})
	assert.NoError(t, err)
	defer answerer.Close() //nolint:errcheck

	_, err = offerer.AddTransceiverFromKind(RTPCodecTypeAudio, RTPTransceiverDirectionSendrecv)
	assert.NoError(t, err)

	offer, err := offerer.CreateOffer()
	assert.NoError(t, err)
	assert.Equal(t, SDPTypeOffer, offer.Type)

	assert.NoError(t, offerer.SetLocalDescription(offer))
	assert.Equal(t, SignalingStateHaveLocalOffer, offerer.SignalingState())

	assert.NoError(t, answerer.SetRemoteDescription(offer))
	assert.Equal(t, SignalingStateHaveRemoteOffer, answerer.SignalingState())

	answer, err := answerer.CreateAnswer()
	assert.NoError(t, err)
	assert.Equal(t, SDPTypeAnswer, answer.Type)

	assert.NoError(t, answerer.SetLocalDescription(answer))
	assert.Equal(t, SignalingStateStable, answerer.SignalingState())

	assert.NoError(t, offerer.SetRemoteDescription(answer))
	assert.Equal(t, SignalingStateStable, offerer.SignalingState())
}

func TestPeerConnection_CreateAnswerWrongState(t *testing.T) {
	pc, err := NewPeerConnection(Configuration{})
	assert.NoError(t, err)
	defer pc.Close() //nolint:errcheck

	_, err = pc.AddTransceiverFromKind(RTPCodecTypeAudio, RTPTransceiverDirectionSendrecv)
	assert.NoError(t, err)

	offer, err := pc.CreateOffer()
	assert.NoError(t, err)
	assert.NoError(t, pc.SetLocalDescription(offer))

	_, err = pc.CreateAnswer()
	var invalidState *InvalidStateError
	assert.ErrorAs(t, err, &invalidState)
}

// TestPeerConnection_NegotiationNeededCoalesced locks in property 6: a
// burst of onNegotiationNeeded signals delivered while a notification is
// already in flight yields exactly one extra delivery, never more.
func TestPeerConnection_NegotiationNeededCoalesced(t *testing.T) {
	pc, err := NewPeerConnection(Configuration{})
	assert.NoError(t, err)
	defer pc.Close() //nolint:errcheck

	var mu sync.Mutex
	calls := 0
	done := make(chan struct{}, 16)
	pc.OnNegotiationNeeded(func() {
		mu.Lock()
		calls++
		mu.Unlock()
		done <- struct{}{}
	})

	for i := 0; i < 5; i++ {
		pc.onNegotiationNeeded()
	}

	<-done
	<-done
	pc.ops.Done()

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 2, calls)
}

func TestPeerConnection_ConnectionStateDerivedFromTransports(t *testing.T) {
	pc, err := NewPeerConnection(Configuration{})
	assert.NoError(t, err)
	defer pc.Close() //nolint:errcheck

	assert.Equal(t, PeerConnectionStateNew, pc.ConnectionState())

	pc.updateICETransportState("0", ICETransportStateChecking)
	assert.Equal(t, PeerConnectionStateConnecting, pc.ConnectionState())

	pc.updateICETransportState("0", ICETransportStateConnected)
	pc.updateDTLSTransportState("0", DTLSTransportStateConnected)
	assert.Equal(t, PeerConnectionStateConnected, pc.ConnectionState())

	pc.updateICETransportState("0", ICETransportStateFailed)
	assert.Equal(t, PeerConnectionStateFailed, pc.ConnectionState())
}

func TestPeerConnection_CloseIsIdempotent(t *testing.T) {
	pc, err := NewPeerConnection(Configuration{})
	assert.NoError(t, err)

	assert.NoError(t, pc.Close())
	assert.NoError(t, pc.Close())
	assert.Equal(t, PeerConnectionStateClosed, pc.ConnectionState())
	assert.Equal(t, SignalingStateClosed, pc.SignalingState())
}
