// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignalingState_RoundTrip(t *testing.T) {
	states := []SignalingState{
		SignalingStateStable,
		SignalingStateHaveLocalOffer,
		SignalingStateHaveRemoteOffer,
		SignalingStateHaveLocalPranswer,
		SignalingStateHaveRemotePranswer,
		SignalingStateClosed,
	}

	for i, s := range states {
		assert.Equal(t, s, NewSignalingState(s.String()), "state %d", i)
	}
}

func TestSignalingState_Unknown(t *testing.T) {
	assert.Equal(t, SignalingStateUnspecified, NewSignalingState("bogus"))
	assert.Equal(t, unspecifiedStr, SignalingStateUnspecified.String())
}

func TestCheckNextSignalingState_OfferAnswer(t *testing.T) {
	err := checkNextSignalingState(SignalingStateStable, SignalingStateHaveLocalOffer, "setLocal", SDPTypeOffer)
	assert.NoError(t, err)

	err = checkNextSignalingState(SignalingStateHaveLocalOffer, SignalingStateStable, "setRemote", SDPTypeAnswer)
	assert.NoError(t, err)

	err = checkNextSignalingState(SignalingStateStable, SignalingStateHaveRemoteOffer, "setRemote", SDPTypeOffer)
	assert.NoError(t, err)

	err = checkNextSignalingState(SignalingStateHaveRemoteOffer, SignalingStateStable, "setLocal", SDPTypeAnswer)
	assert.NoError(t, err)
}

func TestCheckNextSignalingState_Pranswer(t *testing.T) {
	err := checkNextSignalingState(SignalingStateHaveRemoteOffer, SignalingStateHaveLocalPranswer, "setLocal", SDPTypePranswer)
	assert.NoError(t, err)

	err = checkNextSignalingState(SignalingStateHaveLocalPranswer, SignalingStateStable, "setLocal", SDPTypeAnswer)
	assert.NoError(t, err)
}

func TestCheckNextSignalingState_Invalid(t *testing.T) {
	err := checkNextSignalingState(SignalingStateStable, SignalingStateHaveLocalPranswer, "setLocal", SDPTypePranswer)
	assert.Error(t, err)

	var invalidState *InvalidStateError
	assert.ErrorAs(t, err, &invalidState)
}

func TestCheckNextSignalingState_ClosedAlwaysAllowed(t *testing.T) {
	assert.NoError(t, checkNextSignalingState(SignalingStateStable, SignalingStateClosed, "setLocal", SDPTypeOffer))
	assert.NoError(t, checkNextSignalingState(SignalingStateClosed, SignalingStateStable, "setLocal", SDPTypeOffer))
}
