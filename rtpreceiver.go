// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import "sync"

// RTPReceiver is the receiving half of an RTPTransceiver. Track decoding
// is out of this core's scope; RTPReceiver here exists to carry the kind
// and DTLSTransport a transceiver's receiver binds to.
type RTPReceiver struct {
	mu sync.RWMutex

	kind      RTPCodecType
	transport *DTLSTransport

	stopped bool
}

func newRTPReceiver(kind RTPCodecType, transport *DTLSTransport) *RTPReceiver {
	return &RTPReceiver{kind: kind, transport: transport}
}

// Transport returns the DTLSTransport carrying this receiver's RTP, or
// nil if none has been configured.
func (r *RTPReceiver) Transport() *DTLSTransport {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.transport
}

// Stop irreversibly stops the receiver.
func (r *RTPReceiver) Stop() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.stopped = true

	return nil
}
