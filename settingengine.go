// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import (
	"time"

	"github.com/pion/logging"
	"github.com/pion/transport/v4/vnet"
)

// SettingEngine holds PeerConnection knobs that fall outside the public
// WebRTC API: ICE timing, candidate filtering, ICE credentials, a virtual
// network, and the LoggerFactory. Only LoggerFactory is read by this
// package; the other settings are stored but not applied to the ICE agents
// NewICETransport creates.
type SettingEngine struct {
	timeout struct {
		ICEDisconnectedTimeout *time.Duration
		ICEFailedTimeout       *time.Duration
		ICEKeepaliveInterval   *time.Duration
	}

	candidates struct {
		ICELite          bool
		InterfaceFilter  func(string) bool
		NAT1To1IPs       []string
		UsernameFragment string
		Password         string
	}

	net           *vnet.Net
	LoggerFactory logging.LoggerFactory
}

// SetICETimeouts records disconnect/failed/keepalive timing for the ICE
// agent (see SettingEngine for which settings take effect).
func (e *SettingEngine) SetICETimeouts(disconnectedTimeout, failedTimeout, keepAliveInterval time.Duration) {
	e.timeout.ICEDisconnectedTimeout = &disconnectedTimeout
	e.timeout.ICEFailedTimeout = &failedTimeout
	e.timeout.ICEKeepaliveInterval = &keepAliveInterval
}

// SetLite records whether the ICE agent is to operate as a lite
// implementation, only working as a controlled agent.
func (e *SettingEngine) SetLite(lite bool) {
	e.candidates.ICELite = lite
}

// SetInterfaceFilter records a filter for skipping, during ICE host
// candidate gathering, network interfaces that do not pass it.
func (e *SettingEngine) SetInterfaceFilter(filter func(string) bool) {
	e.candidates.InterfaceFilter = filter
}

// SetNAT1To1IPs records a static 1:1 NAT mapping: the external IPs host
// candidates are to be advertised with.
func (e *SettingEngine) SetNAT1To1IPs(ips []string) {
	e.candidates.NAT1To1IPs = ips
}

// SetVNet stores a virtual network on the engine. The ICE transports in
// this package do not use it; their traffic goes over the host network
// stack.
func (e *SettingEngine) SetVNet(n *vnet.Net) {
	e.net = n
}

// SetICECredentials records a local ufrag/password for the ICE agent.
// CreateOffer and CreateAnswer do not read it; they generate random
// credentials for every description.
func (e *SettingEngine) SetICECredentials(ufrag, password string) {
	e.candidates.UsernameFragment = ufrag
	e.candidates.Password = password
}
