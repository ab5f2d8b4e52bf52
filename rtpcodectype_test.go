// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRTPCodecType_RoundTrip(t *testing.T) {
	types := []RTPCodecType{RTPCodecTypeAudio, RTPCodecTypeVideo}

	for i, typ := range types {
		assert.Equal(t, typ, NewRTPCodecType(typ.String()), "type %d", i)
		assert.Equal(t, typ, NewRTPCodecTypeFromOrdinal(int(typ)), "type %d", i)
	}
}

// TestRTPCodecType_CaseSensitive locks in scenario S1: as with the other
// state enums in this package, RTPCodecType parsing is case sensitive.
func TestRTPCodecType_CaseSensitive(t *testing.T) {
	assert.Equal(t, RTPCodecTypeUnspecified, NewRTPCodecType("AUDIO"))
	assert.Equal(t, RTPCodecTypeUnspecified, NewRTPCodecType("Video"))
	assert.Equal(t, RTPCodecTypeAudio, NewRTPCodecType("audio"))
	assert.Equal(t, RTPCodecTypeVideo, NewRTPCodecType("video"))
}

func TestRTPCodecType_Unknown(t *testing.T) {
	assert.Equal(t, RTPCodecTypeUnspecified, NewRTPCodecType("bogus"))
	assert.Equal(t, RTPCodecTypeUnspecified, NewRTPCodecTypeFromOrdinal(42))
	assert.Equal(t, unspecifiedStr, RTPCodecTypeUnspecified.String())
}

func TestEqualFoldKind(t *testing.T) {
	assert.True(t, equalFoldKind("AUDIO", RTPCodecTypeAudio))
	assert.True(t, equalFoldKind("video", RTPCodecTypeVideo))
	assert.False(t, equalFoldKind("audio", RTPCodecTypeVideo))
}
