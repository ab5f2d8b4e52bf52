// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package fmtp implements per-codec parsing and consistency checking of
// SDP fmtp lines.
package fmtp

import (
	"strings"
)

func defaultClockRate(mimeType string) uint32 {
	defaults := map[string]uint32{
		"audio/opus": 48000,
		"audio/pcmu": 8000,
		"audio/pcma": 8000,
	}

	if def, ok := defaults[strings.ToLower(mimeType)]; ok {
		return def
	}

	return 90000
}

func defaultChannels(mimeType string) uint16 {
	defaults := map[string]uint16{
		"audio/opus": 2,
	}

	if def, ok := defaults[strings.ToLower(mimeType)]; ok {
		return def
	}

	return 0
}

// ClockRateEqual checks whether two clock rates are equal, defaulting a
// zero value per mimeType first.
func ClockRateEqual(mimeType string, valA, valB uint32) bool {
	if valA == 0 {
		valA = defaultClockRate(mimeType)
	}
	if valB == 0 {
		valB = defaultClockRate(mimeType)
	}

	return valA == valB
}

// ChannelsEqual checks whether two channel counts are equal, defaulting a
// zero value per mimeType first and then treating an unset count as 1
// per RFC 8866.
func ChannelsEqual(mimeType string, valA, valB uint16) bool {
	if valA == 0 {
		valA = defaultChannels(mimeType)
	}
	if valB == 0 {
		valB = defaultChannels(mimeType)
	}

	if valA == 0 {
		valA = 1
	}
	if valB == 0 {
		valB = 1
	}

	return valA == valB
}

func parseParameters(line string) map[string]string {
	parameters := make(map[string]string)

	for _, p := range strings.Split(line, ";") {
		pp := strings.SplitN(strings.TrimSpace(p), "=", 2)
		key := strings.ToLower(pp[0])
		var value string
		if len(pp) > 1 {
			value = pp[1]
		}
		parameters[key] = value
	}

	return parameters
}

func paramsEqual(valA, valB map[string]string) bool {
	for k, v := range valA {
		if vb, ok := valB[k]; ok && !strings.EqualFold(vb, v) {
			return false
		}
	}

	for k, v := range valB {
		if va, ok := valA[k]; ok && !strings.EqualFold(va, v) {
			return false
		}
	}

	return true
}

// FMTP is the interface implementing custom fmtp parsers/matchers based on
// MimeType.
type FMTP interface {
	// MimeType returns the MimeType associated with the fmtp.
	MimeType() string
	// Match compares two fmtp descriptions for compatibility based on the
	// MimeType.
	Match(f FMTP) bool
	// Parameter returns a value for the associated key if contained in the
	// parsed fmtp string.
	Parameter(key string) (string, bool)
}

// Parse parses an fmtp string based on the MimeType.
func Parse(mimeType string, clockRate uint32, channels uint16, line string) FMTP {
	var f FMTP

	parameters := parseParameters(line)

	switch {
	case strings.EqualFold(mimeType, "video/h264"):
		f = &h264FMTP{parameters: parameters}

	case strings.EqualFold(mimeType, "video/vp9"):
		f = &vp9FMTP{parameters: parameters}

	case strings.EqualFold(mimeType, "video/av1"):
		f = &av1FMTP{parameters: parameters}

	default:
		f = &genericFMTP{
			mimeType:   mimeType,
			clockRate:  clockRate,
			channels:   channels,
			parameters: parameters,
		}
	}

	return f
}

type genericFMTP struct {
	mimeType   string
	clockRate  uint32
	channels   uint16
	parameters map[string]string
}

func (g *genericFMTP) MimeType() string {
	return g.mimeType
}

// Match returns true if g and b are compatible fmtp descriptions. The
// generic implementation is used for MimeTypes without codec-specific
// consistency rules.
func (g *genericFMTP) Match(b FMTP) bool {
	c, ok := b.(*genericFMTP)
	if !ok {
		return false
	}

	return strings.EqualFold(g.mimeType, c.MimeType()) &&
		ClockRateEqual(g.mimeType, g.clockRate, c.clockRate) &&
		ChannelsEqual(g.mimeType, g.channels, c.channels) &&
		paramsEqual(g.parameters, c.parameters)
}

func (g *genericFMTP) Parameter(key string) (string, bool) {
	v, ok := g.parameters[key]

	return v, ok
}
