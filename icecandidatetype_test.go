// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestICECandidateType(t *testing.T) {
	testCases := []struct {
		typeString   string
		expectedType ICECandidateType
	}{
		{unspecifiedStr, ICECandidateTypeUnspecified},
		{"bogus", ICECandidateTypeUnspecified},
		{"", ICECandidateTypeUnspecified},
		{"host", ICECandidateTypeHost},
		{"srflx", ICECandidateTypeSrflx},
		{"prflx", ICECandidateTypePrflx},
		{"relay", ICECandidateTypeRelay},
	}

	for i, testCase := range testCases {
		actual := NewICECandidateType(testCase.typeString)
		assert.Equal(t, testCase.expectedType, actual, "testCase: %d %v", i, testCase)
	}
}

func TestICECandidateType_String(t *testing.T) {
	testCases := []struct {
		cType          ICECandidateType
		expectedString string
	}{
		{ICECandidateTypeUnspecified, unspecifiedStr},
		{ICECandidateTypeHost, "host"},
		{ICECandidateTypeSrflx, "srflx"},
		{ICECandidateTypePrflx, "prflx"},
		{ICECandidateTypeRelay, "relay"},
	}

	for i, testCase := range testCases {
		assert.Equal(t, testCase.expectedString, testCase.cType.String(), "testCase: %d %v", i, testCase)
	}
}

func TestICECandidateType_RoundTrip(t *testing.T) {
	for _, ct := range []ICECandidateType{
		ICECandidateTypeHost,
		ICECandidateTypeSrflx,
		ICECandidateTypePrflx,
		ICECandidateTypeRelay,
	} {
		assert.Equal(t, ct, NewICECandidateType(ct.String()))
		assert.Equal(t, ct, NewICECandidateTypeFromOrdinal(int(ct)))
	}
}

func TestICECandidateType_UnknownOrdinal(t *testing.T) {
	assert.Equal(t, ICECandidateTypeUnspecified, NewICECandidateTypeFromOrdinal(99))
}

func TestICECandidateType_TextMarshaling(t *testing.T) {
	b, err := ICECandidateTypeHost.MarshalText()
	assert.NoError(t, err)
	assert.Equal(t, "host", string(b))

	var ct ICECandidateType
	assert.NoError(t, ct.UnmarshalText([]byte("relay")))
	assert.Equal(t, ICECandidateTypeRelay, ct)
}
