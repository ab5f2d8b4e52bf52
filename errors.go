// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import (
	"errors"
	"fmt"
)

// InvalidStateError indicates the object is in an invalid state.
type InvalidStateError struct {
	Err error
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("webrtc: InvalidStateError: %v", e.Err)
}

func (e *InvalidStateError) Unwrap() error {
	return e.Err
}

// Types of InvalidStateErrors
var (
	ErrConnectionClosed         = errors.New("connection closed")
	ErrICETransportNotConnected = errors.New("ice transport has no established connection")
)

// UnknownError indicates the operation failed for an unknown transient reason.
type UnknownError struct {
	Err error
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("webrtc: UnknownError: %v", e.Err)
}

func (e *UnknownError) Unwrap() error {
	return e.Err
}

// TypeError indicates an issue with a supplied value.
type TypeError struct {
	Err error
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("webrtc: TypeError: %v", e.Err)
}

func (e *TypeError) Unwrap() error {
	return e.Err
}

// Types of TypeErrors
var (
	ErrNoPayloaderForCodec            = errors.New("no payloader defined for codec")
	ErrRTPTransceiverCodecUnsupported = errors.New("codec is not supported by MediaEngine")
	errICECandidateTypeUnknown        = errors.New("unknown ICE candidate type")
	ErrICECandidateTypeUnknown        = errICECandidateTypeUnknown
	errICEProtocolUnknown             = errors.New("unknown ICE protocol")
	ErrCodecNotFound                  = errors.New("codec not found")
	ErrMediaEngineAlreadyUsed         = errors.New("media engine already used to construct a PeerConnection")
)

// InvalidModificationError indicates the object can not be modified in this way.
type InvalidModificationError struct {
	Err error
}

func (e *InvalidModificationError) Error() string {
	return fmt.Sprintf("webrtc: InvalidModificationError: %v", e.Err)
}

func (e *InvalidModificationError) Unwrap() error {
	return e.Err
}

// OperationError indicates an issue with execution of an otherwise valid
// request.
type OperationError struct {
	Err error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("webrtc: OperationError: %v", e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// Types of OperationErrors
var (
	ErrInvalidSDP                               = errors.New("invalid SDP")
	ErrSDPParse                                 = errors.New("failed to parse SDP")
	ErrNoRemoteDescription                      = errors.New("remote description is not set")
	ErrWrongSDPType                             = errors.New("sdp contains the wrong type")
	ErrSignalingStateCantCreateOffer            = errors.New("signaling state is not stable, can't create offer")
	ErrSignalingStateCantCreateAnswer           = errors.New("signaling state is not have-remote-offer or have-local-pranswer, can't create answer")
	ErrSignalingStateProposedTransitionInvalid = errors.New("invalid proposed signaling state transition")
)
