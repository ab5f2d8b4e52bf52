// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestICEGatheringState_RoundTrip(t *testing.T) {
	states := []ICEGatheringState{
		ICEGatheringStateNew,
		ICEGatheringStateGathering,
		ICEGatheringStateComplete,
	}

	for i, s := range states {
		assert.Equal(t, s, NewICEGatheringState(s.String()), "state %d", i)
		assert.Equal(t, s, NewICEGatheringStateFromOrdinal(int(s)), "state %d", i)
	}
}

func TestICEGatheringState_Unknown(t *testing.T) {
	assert.Equal(t, ICEGatheringStateUnspecified, NewICEGatheringState("bogus"))
	assert.Equal(t, ICEGatheringStateUnspecified, NewICEGatheringStateFromOrdinal(42))
	assert.Equal(t, unspecifiedStr, ICEGatheringStateUnspecified.String())
}

func TestICEGatheringState_Ordinals(t *testing.T) {
	assert.Equal(t, 1, int(ICEGatheringStateNew))
	assert.Equal(t, 2, int(ICEGatheringStateGathering))
	assert.Equal(t, 3, int(ICEGatheringStateComplete))
}
