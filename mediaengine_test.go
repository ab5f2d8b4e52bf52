// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import (
	"testing"

	"github.com/pion/sdp/v3"
	"github.com/stretchr/testify/assert"
)

func TestMediaEngine_RegisterDefaultCodecs(t *testing.T) {
	m := &MediaEngine{}
	assert.NoError(t, m.RegisterDefaultCodecs())

	assert.NotEmpty(t, m.getCodecsByKind(RTPCodecTypeAudio))
	assert.NotEmpty(t, m.getCodecsByKind(RTPCodecTypeVideo))

	_, audioNegotiated, _ := m.GetHeaderExtensionID(RTPHeaderExtensionCapability{URI: "urn:ietf:params:rtp-hdrext:sdes:mid"})
	assert.False(t, audioNegotiated, "extensions are not negotiated until a remote description is applied")
}

func TestMediaEngine_RegisterCodecAfterUse(t *testing.T) {
	m := &MediaEngine{}
	m.markUsed()

	err := m.RegisterCodec(RTPCodecParameters{RTPCodecCapability: RTPCodecCapability{MimeType: MimeTypeOpus}}, RTPCodecTypeAudio)
	assert.ErrorIs(t, err, ErrMediaEngineAlreadyUsed)

	err = m.RegisterHeaderExtension(RTPHeaderExtensionCapability{URI: "urn:ietf:params:rtp-hdrext:sdes:mid"}, RTPCodecTypeAudio)
	assert.ErrorIs(t, err, ErrMediaEngineAlreadyUsed)
}

func TestMediaEngine_UpdateFromRemoteDescription(t *testing.T) {
	m := &MediaEngine{}
	assert.NoError(t, m.RegisterDefaultCodecs())

	desc := sdp.SessionDescription{
		MediaDescriptions: []*sdp.MediaDescription{
			{
				MediaName: sdp.MediaName{Media: "audio", Formats: []string{"111"}},
				Attributes: []sdp.Attribute{
					{Key: "rtpmap", Value: "111 opus/48000/2"},
					{Key: "fmtp", Value: "111 minptime=10;useinbandfec=1"},
					{Key: "extmap", Value: "1 urn:ietf:params:rtp-hdrext:sdes:mid"},
				},
			},
		},
	}

	assert.NoError(t, m.updateFromRemoteDescription(desc))

	negotiated := m.getCodecsByKind(RTPCodecTypeAudio)
	assert.Len(t, negotiated, 1)
	assert.Equal(t, PayloadType(111), negotiated[0].PayloadType)

	id, audioNegotiated, _ := m.GetHeaderExtensionID(RTPHeaderExtensionCapability{URI: "urn:ietf:params:rtp-hdrext:sdes:mid"})
	assert.Equal(t, 1, id)
	assert.True(t, audioNegotiated)
}

func TestMediaEngine_UpdateFromRemoteDescription_RTXRequiresPrimary(t *testing.T) {
	m := &MediaEngine{}
	assert.NoError(t, m.RegisterDefaultCodecs())

	desc := sdp.SessionDescription{
		MediaDescriptions: []*sdp.MediaDescription{
			{
				MediaName: sdp.MediaName{Media: "video", Formats: []string{"97"}},
				Attributes: []sdp.Attribute{
					{Key: "rtpmap", Value: "97 rtx/90000"},
					{Key: "fmtp", Value: "97 apt=200"},
				},
			},
		},
	}

	assert.NoError(t, m.updateFromRemoteDescription(desc))
	assert.Empty(t, m.getCodecsByKind(RTPCodecTypeVideo), "rtx referencing an unsupported apt is dropped, not an error")
}

func TestPayloaderForCodec(t *testing.T) {
	_, err := payloaderForCodec(RTPCodecCapability{MimeType: MimeTypeOpus})
	assert.NoError(t, err)

	_, err = payloaderForCodec(RTPCodecCapability{MimeType: "video/bogus"})
	assert.ErrorIs(t, err, ErrNoPayloaderForCodec)
}
