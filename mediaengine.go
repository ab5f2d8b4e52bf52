// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/pion/randutil"
	"github.com/pion/rtp"
	"github.com/pion/rtp/codecs"
	"github.com/pion/sdp/v3"
)

type mediaEngineHeaderExtension struct {
	uri              string
	isAudio, isVideo bool
}

// MediaEngine defines the codecs supported by a PeerConnection, and the
// configuration of those codecs. A MediaEngine must not be shared between
// PeerConnections; RegisterCodec/RegisterHeaderExtension return
// ErrMediaEngineAlreadyUsed once the engine has been bound into an API via
// WithMediaEngine.
type MediaEngine struct {
	negotiatedVideo, negotiatedAudio bool

	videoCodecs, audioCodecs                     []RTPCodecParameters
	negotiatedVideoCodecs, negotiatedAudioCodecs []RTPCodecParameters

	headerExtensions           []mediaEngineHeaderExtension
	negotiatedHeaderExtensions map[int]mediaEngineHeaderExtension

	usedByAPI bool
}

// RegisterDefaultCodecs registers the default codecs supported by this
// module: Opus/G722/PCMU/PCMA for audio, VP8/VP9/H264/AV1 with their RTX
// companions plus ulpfec for video. Not safe for concurrent use.
func (m *MediaEngine) RegisterDefaultCodecs() error {
	for _, codec := range []RTPCodecParameters{
		{
			RTPCodecCapability: RTPCodecCapability{MimeType: MimeTypeOpus, ClockRate: 48000, Channels: 2, SDPFmtpLine: "minptime=10;useinbandfec=1"},
			PayloadType:        111,
		},
		{
			RTPCodecCapability: RTPCodecCapability{MimeType: MimeTypeG722, ClockRate: 8000},
			PayloadType:        9,
		},
		{
			RTPCodecCapability: RTPCodecCapability{MimeType: MimeTypePCMU, ClockRate: 8000},
			PayloadType:        0,
		},
		{
			RTPCodecCapability: RTPCodecCapability{MimeType: MimeTypePCMA, ClockRate: 8000},
			PayloadType:        8,
		},
	} {
		if err := m.RegisterCodec(codec, RTPCodecTypeAudio); err != nil {
			return err
		}
	}

	for _, extension := range []string{
		"urn:ietf:params:rtp-hdrext:sdes:mid",
		"urn:ietf:params:rtp-hdrext:sdes:rtp-stream-id",
		"urn:ietf:params:rtp-hdrext:sdes:repaired-rtp-stream-id",
	} {
		if err := m.RegisterHeaderExtension(RTPHeaderExtensionCapability{URI: extension}, RTPCodecTypeAudio); err != nil {
			return err
		}
	}

	videoRTCPFeedback := []RTCPFeedback{{Type: "goog-remb"}, {Type: "ccm", Parameter: "fir"}, {Type: "nack"}, {Type: "nack", Parameter: "pli"}}
	for _, codec := range []RTPCodecParameters{
		{RTPCodecCapability: RTPCodecCapability{MimeType: MimeTypeVP8, ClockRate: 90000, RTCPFeedback: videoRTCPFeedback}, PayloadType: 96},
		{RTPCodecCapability: RTPCodecCapability{MimeType: MimeTypeRTX, ClockRate: 90000, SDPFmtpLine: "apt=96"}, PayloadType: 97},

		{RTPCodecCapability: RTPCodecCapability{MimeType: MimeTypeVP9, ClockRate: 90000, SDPFmtpLine: "profile-id=0", RTCPFeedback: videoRTCPFeedback}, PayloadType: 98},
		{RTPCodecCapability: RTPCodecCapability{MimeType: MimeTypeRTX, ClockRate: 90000, SDPFmtpLine: "apt=98"}, PayloadType: 99},

		{RTPCodecCapability: RTPCodecCapability{MimeType: MimeTypeVP9, ClockRate: 90000, SDPFmtpLine: "profile-id=1", RTCPFeedback: videoRTCPFeedback}, PayloadType: 100},
		{RTPCodecCapability: RTPCodecCapability{MimeType: MimeTypeRTX, ClockRate: 90000, SDPFmtpLine: "apt=100"}, PayloadType: 101},

		{RTPCodecCapability: RTPCodecCapability{MimeType: MimeTypeAV1, ClockRate: 90000, SDPFmtpLine: "profile=0", RTCPFeedback: videoRTCPFeedback}, PayloadType: 41},
		{RTPCodecCapability: RTPCodecCapability{MimeType: MimeTypeRTX, ClockRate: 90000, SDPFmtpLine: "apt=41"}, PayloadType: 42},

		{RTPCodecCapability: RTPCodecCapability{MimeType: MimeTypeH264, ClockRate: 90000, SDPFmtpLine: "level-asymmetry-allowed=1;packetization-mode=1;profile-level-id=42001f", RTCPFeedback: videoRTCPFeedback}, PayloadType: 102},
		{RTPCodecCapability: RTPCodecCapability{MimeType: MimeTypeRTX, ClockRate: 90000, SDPFmtpLine: "apt=102"}, PayloadType: 121},

		{RTPCodecCapability: RTPCodecCapability{MimeType: MimeTypeH264, ClockRate: 90000, SDPFmtpLine: "level-asymmetry-allowed=1;packetization-mode=1;profile-level-id=42e01f", RTCPFeedback: videoRTCPFeedback}, PayloadType: 125},
		{RTPCodecCapability: RTPCodecCapability{MimeType: MimeTypeRTX, ClockRate: 90000, SDPFmtpLine: "apt=125"}, PayloadType: 107},

		{RTPCodecCapability: RTPCodecCapability{MimeType: MimeTypeH264, ClockRate: 90000, SDPFmtpLine: "level-asymmetry-allowed=1;packetization-mode=0;profile-level-id=42e01f", RTCPFeedback: videoRTCPFeedback}, PayloadType: 108},
		{RTPCodecCapability: RTPCodecCapability{MimeType: MimeTypeRTX, ClockRate: 90000, SDPFmtpLine: "apt=108"}, PayloadType: 109},

		{RTPCodecCapability: RTPCodecCapability{MimeType: MimeTypeUlpFEC, ClockRate: 90000}, PayloadType: 116},
	} {
		if err := m.RegisterCodec(codec, RTPCodecTypeVideo); err != nil {
			return err
		}
	}

	for _, extension := range []string{
		"urn:ietf:params:rtp-hdrext:sdes:mid",
		"urn:ietf:params:rtp-hdrext:sdes:rtp-stream-id",
		"urn:ietf:params:rtp-hdrext:sdes:repaired-rtp-stream-id",
	} {
		if err := m.RegisterHeaderExtension(RTPHeaderExtensionCapability{URI: extension}, RTPCodecTypeVideo); err != nil {
			return err
		}
	}

	return nil
}

// RegisterCodec adds codec to the MediaEngine. Not safe for concurrent use,
// and fails once the engine has been bound into an API.
func (m *MediaEngine) RegisterCodec(codec RTPCodecParameters, typ RTPCodecType) error {
	if m.usedByAPI {
		return ErrMediaEngineAlreadyUsed
	}

	id, err := randutil.GenerateCryptoRandomString(16, randutil.CharsetAlphaLower)
	if err != nil {
		return err
	}
	codec.statsID = fmt.Sprintf("RTPCodec-%s-%d", id, time.Now().UnixNano())

	switch typ {
	case RTPCodecTypeAudio:
		m.audioCodecs = append(m.audioCodecs, codec)
	case RTPCodecTypeVideo:
		m.videoCodecs = append(m.videoCodecs, codec)
	default:
		return &TypeError{Err: ErrRTPTransceiverCodecUnsupported}
	}

	return nil
}

// RegisterHeaderExtension adds a header extension to the MediaEngine. Use
// GetHeaderExtensionID after signaling completes to read the negotiated id.
func (m *MediaEngine) RegisterHeaderExtension(extension RTPHeaderExtensionCapability, typ RTPCodecType) error {
	if m.usedByAPI {
		return ErrMediaEngineAlreadyUsed
	}

	if m.negotiatedHeaderExtensions == nil {
		m.negotiatedHeaderExtensions = map[int]mediaEngineHeaderExtension{}
	}

	extensionIndex := -1
	for i := range m.headerExtensions {
		if extension.URI == m.headerExtensions[i].uri {
			extensionIndex = i
		}
	}

	if extensionIndex == -1 {
		m.headerExtensions = append(m.headerExtensions, mediaEngineHeaderExtension{})
		extensionIndex = len(m.headerExtensions) - 1
	}

	switch typ {
	case RTPCodecTypeAudio:
		m.headerExtensions[extensionIndex].isAudio = true
	case RTPCodecTypeVideo:
		m.headerExtensions[extensionIndex].isVideo = true
	}

	m.headerExtensions[extensionIndex].uri = extension.URI

	return nil
}

// markUsed prevents further mutation; called once by API.WithMediaEngine.
func (m *MediaEngine) markUsed() {
	m.usedByAPI = true
}

// GetHeaderExtensionID returns the negotiated ID for a header extension and
// whether it was negotiated for audio and for video. If the extension
// hasn't been negotiated, the ID is 0 and both flags are false.
func (m *MediaEngine) GetHeaderExtensionID(extension RTPHeaderExtensionCapability) (id int, audioNegotiated, videoNegotiated bool) {
	if m.negotiatedHeaderExtensions == nil {
		return 0, false, false
	}

	for candidateID, h := range m.negotiatedHeaderExtensions {
		if extension.URI == h.uri {
			return candidateID, h.isAudio, h.isVideo
		}
	}

	return 0, false, false
}

func (m *MediaEngine) getCodecByPayload(payloadType PayloadType) (RTPCodecParameters, RTPCodecType, error) {
	for _, codec := range m.negotiatedVideoCodecs {
		if codec.PayloadType == payloadType {
			return codec, RTPCodecTypeVideo, nil
		}
	}
	for _, codec := range m.negotiatedAudioCodecs {
		if codec.PayloadType == payloadType {
			return codec, RTPCodecTypeAudio, nil
		}
	}

	return RTPCodecParameters{}, RTPCodecTypeUnspecified, ErrCodecNotFound
}

// updateCodecParameters negotiates a single remote codec against the
// locally registered set, recording it if a match is found. RTX codecs are
// only accepted when their apt= payload type is itself supported.
func (m *MediaEngine) updateCodecParameters(remoteCodec RTPCodecParameters, typ RTPCodecType) error {
	localCodecs := m.videoCodecs
	if typ == RTPCodecTypeAudio {
		localCodecs = m.audioCodecs
	}

	if strings.HasPrefix(remoteCodec.SDPFmtpLine, "apt=") {
		aptPayloadType, err := strconv.Atoi(strings.TrimPrefix(remoteCodec.SDPFmtpLine, "apt="))
		if err != nil {
			return fmt.Errorf("%w: %w", ErrSDPParse, err)
		}

		if _, _, err := m.getCodecByPayload(PayloadType(aptPayloadType)); err != nil {
			return nil
		}
	}

	if _, match := codecParametersFuzzySearch(remoteCodec, localCodecs); match == CodecMatchNone {
		return nil
	}

	if typ == RTPCodecTypeAudio {
		m.negotiatedAudioCodecs = append(m.negotiatedAudioCodecs, remoteCodec)
	} else {
		m.negotiatedVideoCodecs = append(m.negotiatedVideoCodecs, remoteCodec)
	}

	return nil
}

func (m *MediaEngine) updateHeaderExtension(id int, extension string, typ RTPCodecType) {
	if m.negotiatedHeaderExtensions == nil {
		return
	}

	for _, localExtension := range m.headerExtensions {
		if localExtension.uri != extension {
			continue
		}

		h := mediaEngineHeaderExtension{uri: extension}
		if existing, ok := m.negotiatedHeaderExtensions[id]; ok {
			h = existing
		}

		switch {
		case localExtension.isAudio && typ == RTPCodecTypeAudio:
			h.isAudio = true
		case localExtension.isVideo && typ == RTPCodecTypeVideo:
			h.isVideo = true
		}

		m.negotiatedHeaderExtensions[id] = h
	}
}

// updateFromRemoteDescription negotiates codecs and header extensions
// against every audio/video m= section of a remote offer or answer.
func (m *MediaEngine) updateFromRemoteDescription(desc sdp.SessionDescription) error {
	for _, media := range desc.MediaDescriptions {
		var typ RTPCodecType
		switch {
		case !m.negotiatedAudio && strings.EqualFold(media.MediaName.Media, "audio"):
			m.negotiatedAudio = true
			typ = RTPCodecTypeAudio
		case !m.negotiatedVideo && strings.EqualFold(media.MediaName.Media, "video"):
			m.negotiatedVideo = true
			typ = RTPCodecTypeVideo
		default:
			continue
		}

		remoteCodecs, err := codecsFromMediaDescription(media)
		if err != nil {
			return err
		}

		for _, codec := range remoteCodecs {
			if err := m.updateCodecParameters(codec, typ); err != nil {
				return err
			}
		}

		extensions, err := rtpExtensionsFromMediaDescription(media)
		if err != nil {
			return err
		}

		for uri, id := range extensions {
			m.updateHeaderExtension(id, uri, typ)
		}
	}

	return nil
}

func (m *MediaEngine) getCodecsByKind(typ RTPCodecType) []RTPCodecParameters {
	switch typ {
	case RTPCodecTypeVideo:
		if m.negotiatedVideo {
			return m.negotiatedVideoCodecs
		}

		return m.videoCodecs
	case RTPCodecTypeAudio:
		if m.negotiatedAudio {
			return m.negotiatedAudioCodecs
		}

		return m.audioCodecs
	default:
		return nil
	}
}

func (m *MediaEngine) getRTPParametersByKind(typ RTPCodecType) RTPParameters {
	headerExtensions := make([]RTPHeaderExtensionParameter, 0)
	for id, e := range m.negotiatedHeaderExtensions {
		if (e.isAudio && typ == RTPCodecTypeAudio) || (e.isVideo && typ == RTPCodecTypeVideo) {
			headerExtensions = append(headerExtensions, RTPHeaderExtensionParameter{ID: id, URI: e.uri})
		}
	}

	return RTPParameters{
		HeaderExtensions: headerExtensions,
		Codecs:           m.getCodecsByKind(typ),
	}
}

// payloaderForCodec returns the rtp.Payloader for a registered mime type,
// or ErrNoPayloaderForCodec for types this module doesn't packetize.
func payloaderForCodec(codec RTPCodecCapability) (rtp.Payloader, error) {
	switch strings.ToLower(codec.MimeType) {
	case strings.ToLower(MimeTypeH264):
		return &codecs.H264Payloader{}, nil
	case strings.ToLower(MimeTypeOpus):
		return &codecs.OpusPayloader{}, nil
	case strings.ToLower(MimeTypeVP8):
		return &codecs.VP8Payloader{}, nil
	case strings.ToLower(MimeTypeVP9):
		return &codecs.VP9Payloader{}, nil
	case strings.ToLower(MimeTypeG722):
		return &codecs.G722Payloader{}, nil
	case strings.ToLower(MimeTypePCMU), strings.ToLower(MimeTypePCMA):
		return &codecs.G711Payloader{}, nil
	default:
		return nil, ErrNoPayloaderForCodec
	}
}
