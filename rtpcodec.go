// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import (
	"strings"

	"github.com/nextrtc/rtcore/internal/fmtp"
)

// RTPCodecCapability provides information about codec capabilities.
//
// https://w3c.github.io/webrtc-pc/#dictionary-rtcrtpcodeccapability-members
type RTPCodecCapability struct {
	MimeType     string
	ClockRate    uint32
	Channels     uint16
	SDPFmtpLine  string
	RTCPFeedback []RTCPFeedback
}

// RTPHeaderExtensionCapability is used to define an RFC5285 RTP header
// extension supported by the codec.
//
// https://w3c.github.io/webrtc-pc/#dom-rtcrtpcapabilities-headerextensions
type RTPHeaderExtensionCapability struct {
	URI string
}

// RTPHeaderExtensionParameter enables an application to determine whether a
// header extension is configured for use within an RTPSender or
// RTPReceiver.
//
// https://w3c.github.io/webrtc-pc/#rtcrtpheaderextensionparameters
type RTPHeaderExtensionParameter struct {
	URI string
	ID  int
}

// RTPCodecParameters is a sequence containing the media codecs that an
// RTPSender will choose from, as well as entries for RTX, RED and FEC
// mechanisms. This also includes the PayloadType that has been
// negotiated.
//
// https://w3c.github.io/webrtc-pc/#rtcrtpcodecparameters
type RTPCodecParameters struct {
	RTPCodecCapability
	PayloadType PayloadType

	statsID string
}

// RTPParameters is a list of negotiated codecs and header extensions.
//
// https://w3c.github.io/webrtc-pc/#dictionary-rtcrtpparameters-members
type RTPParameters struct {
	HeaderExtensions []RTPHeaderExtensionParameter
	Codecs           []RTPCodecParameters
}

// RTPCapabilities represents the capabilities of a transceiver.
//
// https://w3c.github.io/webrtc-pc/#rtcrtpcapabilities
type RTPCapabilities struct {
	Codecs           []RTPCodecCapability
	HeaderExtensions []RTPHeaderExtensionCapability
}

// codecParametersFuzzySearch does a fuzzy lookup of needle in haystack: an
// exact pass first requires the mime type to match case-insensitively and
// the fmtp lines to be consistent (see fmtp.Parse/Match); failing that, a
// partial pass returns the first entry whose mime type matches. Haystack
// order defines priority: the first exact match wins over any later exact
// match.
func codecParametersFuzzySearch(needle RTPCodecParameters, haystack []RTPCodecParameters) (RTPCodecParameters, CodecMatch) {
	needleFmtp := fmtp.Parse(needle.MimeType, needle.ClockRate, needle.Channels, needle.SDPFmtpLine)

	for _, c := range haystack {
		if strings.EqualFold(c.MimeType, needle.MimeType) &&
			needleFmtp.Match(fmtp.Parse(c.MimeType, c.ClockRate, c.Channels, c.SDPFmtpLine)) {
			return c, CodecMatchExact
		}
	}

	for _, c := range haystack {
		if strings.EqualFold(c.MimeType, needle.MimeType) {
			return c, CodecMatchPartial
		}
	}

	return RTPCodecParameters{}, CodecMatchNone
}
