// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

/*
                      setRemote(OFFER)               setLocal(PRANSWER)
                          /-----\                               /-----\
                          |     |                               |     |
                          v     |                               v     |
           +---------------+    |                +---------------+    |
           |               |----/                |               |----/
           |  have-        | setLocal(PRANSWER)  | have-         |
           |  remote-offer |------------------- >| local-pranswer|
           |               |                     |               |
           +---------------+                     +---------------+
                ^   |                                   |
                |   | setLocal(ANSWER)                  |
  setRemote(OFFER)  |                                   |
                |   V                  setLocal(ANSWER) |
           +---------------+                            |
           |               |                            |
           |               |<---------------------------+
           |    stable     |
           |               |<---------------------------+
           |               |                            |
           +---------------+          setRemote(ANSWER) |
                ^   |                                   |
                |   | setLocal(OFFER)                   |
  setRemote(ANSWER) |                                   |
                |   V                                   |
           +---------------+                     +---------------+
           |               |                     |               |
           |  have-        | setRemote(PRANSWER) |have-          |
           |  local-offer  |------------------- >|remote-pranswer|
           |               |                     |               |
           |               |----\                |               |----\
           +---------------+    |                +---------------+    |
                          ^     |                               ^     |
                          |     |                               |     |
                          \-----/                               \-----/
                      setLocal(OFFER)               setRemote(PRANSWER)
*/

// SignalingState indicates the state of the offer/answer process.
type SignalingState int

const (
	// SignalingStateUnspecified is the enum's zero-value.
	SignalingStateUnspecified SignalingState = iota

	// SignalingStateStable indicates there is no offer/answer exchange in
	// progress.
	SignalingStateStable

	// SignalingStateHaveLocalOffer indicates a local description of type
	// "offer" has been successfully applied.
	SignalingStateHaveLocalOffer

	// SignalingStateHaveRemoteOffer indicates a remote description of type
	// "offer" has been successfully applied.
	SignalingStateHaveRemoteOffer

	// SignalingStateHaveLocalPranswer indicates a remote offer and a local
	// "pranswer" have both been successfully applied.
	SignalingStateHaveLocalPranswer

	// SignalingStateHaveRemotePranswer indicates a local offer and a remote
	// "pranswer" have both been successfully applied.
	SignalingStateHaveRemotePranswer

	// SignalingStateClosed indicates the PeerConnection has been closed.
	SignalingStateClosed
)

const (
	signalingStateStableStr             = "stable"
	signalingStateHaveLocalOfferStr     = "have-local-offer"
	signalingStateHaveRemoteOfferStr    = "have-remote-offer"
	signalingStateHaveLocalPranswerStr  = "have-local-pranswer"
	signalingStateHaveRemotePranswerStr = "have-remote-pranswer"
	signalingStateClosedStr             = "closed"
)

// NewSignalingState creates a SignalingState from its canonical string
// token. Any unrecognized input yields SignalingStateUnspecified.
func NewSignalingState(raw string) SignalingState {
	switch raw {
	case signalingStateStableStr:
		return SignalingStateStable
	case signalingStateHaveLocalOfferStr:
		return SignalingStateHaveLocalOffer
	case signalingStateHaveRemoteOfferStr:
		return SignalingStateHaveRemoteOffer
	case signalingStateHaveLocalPranswerStr:
		return SignalingStateHaveLocalPranswer
	case signalingStateHaveRemotePranswerStr:
		return SignalingStateHaveRemotePranswer
	case signalingStateClosedStr:
		return SignalingStateClosed
	default:
		return SignalingStateUnspecified
	}
}

func (s SignalingState) String() string {
	switch s {
	case SignalingStateStable:
		return signalingStateStableStr
	case SignalingStateHaveLocalOffer:
		return signalingStateHaveLocalOfferStr
	case SignalingStateHaveRemoteOffer:
		return signalingStateHaveRemoteOfferStr
	case SignalingStateHaveLocalPranswer:
		return signalingStateHaveLocalPranswerStr
	case SignalingStateHaveRemotePranswer:
		return signalingStateHaveRemotePranswerStr
	case SignalingStateClosed:
		return signalingStateClosedStr
	default:
		return unspecifiedStr
	}
}

// checkNextSignalingState validates a transition against the diagram above.
// op names the setLocal/setRemote call requesting the transition and sdpType
// the SDP type being applied.
func checkNextSignalingState(cur, next SignalingState, op string, sdpType SDPType) error {
	if cur == SignalingStateClosed || next == SignalingStateClosed {
		return nil
	}

	transitions := map[SignalingState]map[SignalingState]bool{
		SignalingStateStable: {
			SignalingStateHaveLocalOffer:  op == "setLocal" && sdpType == SDPTypeOffer,
			SignalingStateHaveRemoteOffer: op == "setRemote" && sdpType == SDPTypeOffer,
		},
		SignalingStateHaveLocalOffer: {
			SignalingStateHaveLocalOffer:     op == "setLocal" && sdpType == SDPTypeOffer,
			SignalingStateHaveRemotePranswer: op == "setRemote" && sdpType == SDPTypePranswer,
			SignalingStateStable:             op == "setRemote" && sdpType == SDPTypeAnswer,
		},
		SignalingStateHaveRemoteOffer: {
			SignalingStateHaveRemoteOffer:   op == "setRemote" && sdpType == SDPTypeOffer,
			SignalingStateHaveLocalPranswer: op == "setLocal" && sdpType == SDPTypePranswer,
			SignalingStateStable:            op == "setLocal" && sdpType == SDPTypeAnswer,
		},
		SignalingStateHaveLocalPranswer: {
			SignalingStateHaveLocalPranswer: op == "setLocal" && sdpType == SDPTypePranswer,
			SignalingStateStable:            op == "setLocal" && sdpType == SDPTypeAnswer,
		},
		SignalingStateHaveRemotePranswer: {
			SignalingStateHaveRemotePranswer: op == "setRemote" && sdpType == SDPTypePranswer,
			SignalingStateStable:             op == "setRemote" && sdpType == SDPTypeAnswer,
		},
	}

	if allowed, ok := transitions[cur][next]; ok && allowed {
		return nil
	}

	return &InvalidStateError{Err: ErrSignalingStateProposedTransitionInvalid}
}

// nextSignalingState derives the SignalingState that applying sdpType via
// op (setLocal/setRemote) would produce from cur, validating it against
// the same diagram checkNextSignalingState enforces.
func nextSignalingState(cur SignalingState, op string, sdpType SDPType) (SignalingState, error) {
	candidates := map[SignalingState][]SignalingState{
		SignalingStateStable:             {SignalingStateHaveLocalOffer, SignalingStateHaveRemoteOffer},
		SignalingStateHaveLocalOffer:     {SignalingStateHaveLocalOffer, SignalingStateHaveRemotePranswer, SignalingStateStable},
		SignalingStateHaveRemoteOffer:    {SignalingStateHaveRemoteOffer, SignalingStateHaveLocalPranswer, SignalingStateStable},
		SignalingStateHaveLocalPranswer:  {SignalingStateHaveLocalPranswer, SignalingStateStable},
		SignalingStateHaveRemotePranswer: {SignalingStateHaveRemotePranswer, SignalingStateStable},
	}

	for _, next := range candidates[cur] {
		if checkNextSignalingState(cur, next, op, sdpType) == nil {
			return next, nil
		}
	}

	return cur, &InvalidStateError{Err: ErrSignalingStateProposedTransitionInvalid}
}
