// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import (
	"sync"

	"github.com/pion/randutil"
)

// RTPSender is the sending half of an RTPTransceiver. Track encoding and
// transmission are out of this core's scope; RTPSender here exists to
// carry the identity and DTLSTransport a transceiver's sender binds to.
type RTPSender struct {
	mu sync.RWMutex

	id        string
	transport *DTLSTransport

	stopped bool
}

func newRTPSender(transport *DTLSTransport) (*RTPSender, error) {
	id, err := randutil.GenerateCryptoRandomString(32, "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	if err != nil {
		return nil, err
	}

	return &RTPSender{id: id, transport: transport}, nil
}

// Transport returns the DTLSTransport carrying this sender's RTP, or nil
// if none has been configured.
func (s *RTPSender) Transport() *DTLSTransport {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.transport
}

// Stop irreversibly stops the sender.
func (s *RTPSender) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.stopped = true

	return nil
}
