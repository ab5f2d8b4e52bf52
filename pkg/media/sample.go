// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package media provides media writer and filters.
package media

import (
	"time"

	"github.com/pion/rtp"
)

// Sample contains encoded media and the timing information needed to
// translate it into one or more RTP packets.
type Sample struct {
	Data               []byte
	Timestamp          time.Time
	Duration           time.Duration
	PacketTimestamp    uint32
	PrevDroppedPackets uint16
}

// Writer defines an interface to handle the creation of media files.
type Writer interface {
	// WriteRTP adds the content of an RTP packet to the media.
	WriteRTP(packet *rtp.Packet) error
	// Close closes the media. Close implementations must be idempotent.
	Close() error
}
