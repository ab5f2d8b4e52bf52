// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

// Mime types recognized for payloader dispatch and default codec
// registration. Comparison against an RTPCodecCapability.MimeType must
// always be case-insensitive.
const (
	// MimeTypeH264 H264 MIME type.
	MimeTypeH264 = "video/H264"
	// MimeTypeOpus Opus MIME type.
	MimeTypeOpus = "audio/opus"
	// MimeTypeVP8 VP8 MIME type.
	MimeTypeVP8 = "video/VP8"
	// MimeTypeVP9 VP9 MIME type.
	MimeTypeVP9 = "video/VP9"
	// MimeTypeAV1 AV1 MIME type.
	MimeTypeAV1 = "video/AV1"
	// MimeTypeG722 G722 MIME type.
	MimeTypeG722 = "audio/G722"
	// MimeTypePCMU PCMU MIME type.
	MimeTypePCMU = "audio/PCMU"
	// MimeTypePCMA PCMA MIME type.
	MimeTypePCMA = "audio/PCMA"
	// MimeTypeRTX RTX MIME type, used for retransmission packets. Its
	// sdp_fmtp_line carries `apt=<payload type>` referencing the primary
	// codec it retransmits.
	MimeTypeRTX = "video/rtx"
	// MimeTypeUlpFEC UlpFEC MIME type.
	MimeTypeUlpFEC = "video/ulpfec"
)
