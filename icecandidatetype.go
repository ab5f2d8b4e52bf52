// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

// ICECandidateType represents the type of the ICE candidate used.
type ICECandidateType int

const (
	// ICECandidateTypeUnspecified is the enum's zero-value.
	ICECandidateTypeUnspecified ICECandidateType = iota

	// ICECandidateTypeHost indicates that the candidate is of Host type as
	// described in https://tools.ietf.org/html/rfc8445#section-5.1.1.1. A
	// candidate obtained by binding to a specific port from an IP address
	// on the host.
	ICECandidateTypeHost

	// ICECandidateTypeSrflx indicates that the candidate is of Server
	// Reflexive type as described in
	// https://tools.ietf.org/html/rfc8445#section-5.1.1.2.
	ICECandidateTypeSrflx

	// ICECandidateTypePrflx indicates that the candidate is of Peer
	// Reflexive type.
	ICECandidateTypePrflx

	// ICECandidateTypeRelay indicates that the candidate is of Relay type
	// as described in https://tools.ietf.org/html/rfc8445#section-5.1.1.2.
	ICECandidateTypeRelay
)

// This is done this way because of a linter.
const (
	iceCandidateTypeHostStr  = "host"
	iceCandidateTypeSrflxStr = "srflx"
	iceCandidateTypePrflxStr = "prflx"
	iceCandidateTypeRelayStr = "relay"
)

// NewICECandidateType creates an ICECandidateType from its canonical string
// token. Any unrecognized input yields ICECandidateTypeUnspecified.
func NewICECandidateType(raw string) ICECandidateType {
	switch raw {
	case iceCandidateTypeHostStr:
		return ICECandidateTypeHost
	case iceCandidateTypeSrflxStr:
		return ICECandidateTypeSrflx
	case iceCandidateTypePrflxStr:
		return ICECandidateTypePrflx
	case iceCandidateTypeRelayStr:
		return ICECandidateTypeRelay
	default:
		return ICECandidateTypeUnspecified
	}
}

// NewICECandidateTypeFromOrdinal creates an ICECandidateType from its
// numeric tag. Any value outside the known set yields
// ICECandidateTypeUnspecified.
func NewICECandidateTypeFromOrdinal(raw int) ICECandidateType {
	switch ICECandidateType(raw) {
	case ICECandidateTypeHost, ICECandidateTypeSrflx, ICECandidateTypePrflx, ICECandidateTypeRelay:
		return ICECandidateType(raw)
	default:
		return ICECandidateTypeUnspecified
	}
}

func (t ICECandidateType) String() string {
	switch t {
	case ICECandidateTypeHost:
		return iceCandidateTypeHostStr
	case ICECandidateTypeSrflx:
		return iceCandidateTypeSrflxStr
	case ICECandidateTypePrflx:
		return iceCandidateTypePrflxStr
	case ICECandidateTypeRelay:
		return iceCandidateTypeRelayStr
	default:
		return unspecifiedStr
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t ICECandidateType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ICECandidateType) UnmarshalText(b []byte) error {
	*t = NewICECandidateType(string(b))
	return nil
}
