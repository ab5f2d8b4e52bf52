// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package media

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSample_Fields(t *testing.T) {
	now := time.Unix(0, 0)
	s := Sample{
		Data:               []byte{0x01, 0x02},
		Timestamp:          now,
		Duration:           20 * time.Millisecond,
		PacketTimestamp:    90000,
		PrevDroppedPackets: 3,
	}

	assert.Equal(t, []byte{0x01, 0x02}, s.Data)
	assert.Equal(t, now, s.Timestamp)
	assert.Equal(t, 20*time.Millisecond, s.Duration)
	assert.Equal(t, uint32(90000), s.PacketTimestamp)
	assert.Equal(t, uint16(3), s.PrevDroppedPackets)
}
