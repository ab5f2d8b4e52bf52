// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import (
	"testing"

	"github.com/pion/rtcp"
	"github.com/stretchr/testify/assert"
)

func TestDTLSTransport_GetLocalParameters(t *testing.T) {
	dt, err := NewDTLSTransport(&ICETransport{id: "0", state: ICETransportStateNew}, nil, nil)
	assert.NoError(t, err)
	assert.Equal(t, DTLSTransportStateNew, dt.State())

	params, err := dt.GetLocalParameters()
	assert.NoError(t, err)
	assert.Len(t, params.Fingerprints, 1)
	assert.Equal(t, "sha-256", params.Fingerprints[0].Algorithm)
	assert.NotEmpty(t, params.Fingerprints[0].Value)
}

func TestDTLSTransport_StartWithoutConnFails(t *testing.T) {
	dt, err := NewDTLSTransport(&ICETransport{id: "0", state: ICETransportStateNew}, nil, nil)
	assert.NoError(t, err)

	err = dt.Start(DTLSParameters{Role: DTLSRoleServer})
	var invalidState *InvalidStateError
	assert.ErrorAs(t, err, &invalidState)
}

func TestDTLSTransport_WriteRTCPWithoutSessionFails(t *testing.T) {
	dt, err := NewDTLSTransport(&ICETransport{id: "0", state: ICETransportStateNew}, nil, nil)
	assert.NoError(t, err)

	err = dt.WriteRTCP([]rtcp.Packet{&rtcp.PictureLossIndication{MediaSSRC: 1}})
	var invalidState *InvalidStateError
	assert.ErrorAs(t, err, &invalidState)
}
