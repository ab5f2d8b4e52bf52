// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pion/sdp/v3"
)

// codecsFromMediaDescription parses the rtpmap/fmtp/rtcp-fb attributes of an
// m= section into RTPCodecParameters, one per advertised payload type.
func codecsFromMediaDescription(media *sdp.MediaDescription) ([]RTPCodecParameters, error) {
	codecs := make([]RTPCodecParameters, 0, len(media.MediaName.Formats))

	for _, format := range media.MediaName.Formats {
		payloadType, err := strconv.ParseUint(format, 10, 8)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid payload type %q", ErrSDPParse, format)
		}

		codec := RTPCodecParameters{PayloadType: PayloadType(payloadType)}

		rtpmap, ok := findAttributePrefix(media, "rtpmap", format+" ")
		if !ok {
			// No rtpmap means this format is data-only (e.g. telephone-event
			// without parameters); still collect it so callers see the PT.
			codecs = append(codecs, codec)
			continue
		}

		mimeType, clockRate, channels, err := parseRTPMap(rtpmap)
		if err != nil {
			return nil, err
		}
		codec.MimeType = mimeType
		codec.ClockRate = clockRate
		codec.Channels = channels

		if fmtpAttr, ok := findAttributePrefix(media, "fmtp", format+" "); ok {
			codec.SDPFmtpLine = strings.TrimSpace(strings.TrimPrefix(fmtpAttr, format+" "))
		}

		for _, fbAttr := range findAttributesPrefix(media, "rtcp-fb", format+" ") {
			fb, err := parseRTCPFeedback(format, fbAttr)
			if err != nil {
				return nil, err
			}
			codec.RTCPFeedback = append(codec.RTCPFeedback, fb)
		}

		codecs = append(codecs, codec)
	}

	return codecs, nil
}

// rtpExtensionsFromMediaDescription parses the extmap attributes of an m=
// section, returning the negotiated id for each header extension URI.
func rtpExtensionsFromMediaDescription(media *sdp.MediaDescription) (map[string]int, error) {
	extensions := map[string]int{}

	for _, attr := range media.Attributes {
		if attr.Key != "extmap" {
			continue
		}

		uri, id, err := parseExtmap(attr.Value)
		if err != nil {
			return nil, err
		}
		extensions[uri] = id
	}

	return extensions, nil
}

// findAttributePrefix returns the full value of the first attribute with
// the given key whose value starts with prefix; the prefix is not stripped.
func findAttributePrefix(media *sdp.MediaDescription, key, prefix string) (string, bool) {
	for _, attr := range media.Attributes {
		if attr.Key == key && strings.HasPrefix(attr.Value, prefix) {
			return attr.Value, true
		}
	}

	return "", false
}

func findAttributesPrefix(media *sdp.MediaDescription, key, prefix string) []string {
	var values []string
	for _, attr := range media.Attributes {
		if attr.Key == key && strings.HasPrefix(attr.Value, prefix) {
			values = append(values, attr.Value)
		}
	}

	return values
}

// parseRTPMap parses "<payloadType> <name>/<clockrate>[/<channels>]".
func parseRTPMap(value string) (mimeType string, clockRate uint32, channels uint16, err error) {
	sp := strings.Index(value, " ")
	if sp < 1 {
		return "", 0, 0, fmt.Errorf("%w: rtpmap attribute too short: %s", ErrSDPParse, value)
	}

	parts := strings.Split(value[sp+1:], "/")
	if len(parts) < 2 {
		return "", 0, 0, fmt.Errorf("%w: invalid rtpmap codec: %s", ErrSDPParse, value)
	}

	rate, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return "", 0, 0, fmt.Errorf("%w: invalid clock rate: %s", ErrSDPParse, parts[1])
	}

	var ch uint64
	if len(parts) == 3 {
		ch, err = strconv.ParseUint(parts[2], 10, 16)
		if err != nil {
			return "", 0, 0, fmt.Errorf("%w: invalid channel count: %s", ErrSDPParse, parts[2])
		}
	}

	return mimeTypeForName(parts[0]), uint32(rate), uint16(ch), nil
}

// mimeTypeForName maps an rtpmap codec name to a full mime type. Audio is
// assumed unless the name is a known video codec; this mirrors how the
// m-line's media type disambiguates "rtx" in practice.
func mimeTypeForName(name string) string {
	switch strings.ToLower(name) {
	case "h264":
		return MimeTypeH264
	case "vp8":
		return MimeTypeVP8
	case "vp9":
		return MimeTypeVP9
	case "av1":
		return MimeTypeAV1
	case "rtx":
		return MimeTypeRTX
	case "ulpfec":
		return MimeTypeUlpFEC
	case "opus":
		return MimeTypeOpus
	case "g722":
		return MimeTypeG722
	case "pcmu":
		return MimeTypePCMU
	case "pcma":
		return MimeTypePCMA
	default:
		return "audio/" + name
	}
}

// parseRTCPFeedback parses "<payloadType> <type>[ <parameter>]".
func parseRTCPFeedback(payloadType, value string) (RTCPFeedback, error) {
	rest := strings.TrimSpace(strings.TrimPrefix(value, payloadType+" "))
	if rest == "" {
		return RTCPFeedback{}, fmt.Errorf("%w: rtcp-fb attribute too short: %s", ErrSDPParse, value)
	}

	sp := strings.Index(rest, " ")
	if sp < 0 {
		return RTCPFeedback{Type: rest}, nil
	}

	return RTCPFeedback{Type: rest[:sp], Parameter: rest[sp+1:]}, nil
}

// parseExtmap parses "<id>[/<direction>] <uri>".
func parseExtmap(value string) (uri string, id int, err error) {
	sp := strings.Index(value, " ")
	if sp < 1 {
		return "", 0, fmt.Errorf("%w: extmap attribute too short: %s", ErrSDPParse, value)
	}

	idPart := strings.SplitN(value[:sp], "/", 2)[0]
	parsedID, err := strconv.Atoi(idPart)
	if err != nil {
		return "", 0, fmt.Errorf("%w: invalid extmap id: %s", ErrSDPParse, idPart)
	}

	return value[sp+1:], parsedID, nil
}
