// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/pion/ice/v4"
	"github.com/pion/logging"
)

// ICERole indicates the role an ICE agent plays during connectivity
// establishment, per RFC 8445.
type ICERole int

const (
	// ICERoleControlling indicates the agent drives nomination of the
	// final candidate pair.
	ICERoleControlling ICERole = iota
	// ICERoleControlled indicates the agent accepts the pair nominated
	// by its peer.
	ICERoleControlled
)

// ICEParameters carries the ICE credentials a remote agent needs to
// connect: the combination negotiated over SDP a=ice-ufrag/a=ice-pwd.
type ICEParameters struct {
	UsernameFragment string
	Password         string
}

// ICETransport wraps a pion/ice Agent, translating its connection-state
// callbacks into this module's ICETransportState and forwarding them to
// the owning PeerConnection's aggregate state derivation.
type ICETransport struct {
	mu sync.RWMutex

	id   string
	role ICERole

	agent *ice.Agent
	conn  *ice.Conn
	state ICETransportState

	onConnectionStateChangeHdlr atomic.Value

	pc *PeerConnection
}

// NewICETransport creates an ICETransport bound to id (used as the key
// PeerConnection tracks this transport's state under) and reporting
// state changes to pc.
func NewICETransport(id string, pc *PeerConnection, loggerFactory logging.LoggerFactory) (*ICETransport, error) {
	agent, err := ice.NewAgent(&ice.AgentConfig{
		LoggerFactory: loggerFactory,
	})
	if err != nil {
		return nil, &OperationError{Err: err}
	}

	t := &ICETransport{
		id:    id,
		agent: agent,
		state: ICETransportStateNew,
		pc:    pc,
	}

	if err := agent.OnConnectionStateChange(func(s ice.ConnectionState) {
		state := newICETransportStateFromICE(s)

		t.mu.Lock()
		t.state = state
		t.mu.Unlock()

		if pc != nil {
			pc.updateICETransportState(id, state)
		}

		if handler, ok := t.onConnectionStateChangeHdlr.Load().(func(ICETransportState)); ok && handler != nil {
			handler(state)
		}
	}); err != nil {
		return nil, &OperationError{Err: err}
	}

	return t, nil
}

// Start begins connectivity establishment against the given remote
// parameters, dialing or accepting according to role.
func (t *ICETransport) Start(ctx context.Context, params ICEParameters, role ICERole) error {
	t.mu.Lock()
	t.role = role
	agent := t.agent
	t.mu.Unlock()

	var conn *ice.Conn
	var err error

	switch role {
	case ICERoleControlling:
		conn, err = agent.Dial(ctx, params.UsernameFragment, params.Password)
	case ICERoleControlled:
		conn, err = agent.Accept(ctx, params.UsernameFragment, params.Password)
	}

	if err != nil {
		return &OperationError{Err: err}
	}

	t.mu.Lock()
	t.conn = conn
	t.mu.Unlock()

	return nil
}

// AddRemoteCandidate adds a single trickled remote candidate to the
// agent.
func (t *ICETransport) AddRemoteCandidate(c ICECandidate) error {
	t.mu.RLock()
	agent := t.agent
	t.mu.RUnlock()

	i, err := c.toICE()
	if err != nil {
		return err
	}

	return agent.AddRemoteCandidate(i)
}

// State returns the current ICE transport state.
func (t *ICETransport) State() ICETransportState {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.state
}

// Conn returns the underlying *ice.Conn once Start has completed, or nil
// before then. DTLSTransport runs its handshake over this connection.
func (t *ICETransport) Conn() *ice.Conn {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.conn
}

// OnConnectionStateChange sets a handler invoked whenever the ICE
// connection state changes.
func (t *ICETransport) OnConnectionStateChange(f func(ICETransportState)) {
	t.onConnectionStateChangeHdlr.Store(f)
}

// Stop irreversibly stops the ICETransport.
func (t *ICETransport) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.conn != nil {
		_ = t.conn.Close()
	}

	return t.agent.Close()
}
