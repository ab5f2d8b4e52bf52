// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import (
	"strconv"
	"strings"
	"sync"
)

// RTPTransceiver represents a combination of an RTPSender and an
// RTPReceiver that share a common media kind and a negotiated codec
// preference list.
type RTPTransceiver struct {
	mu sync.RWMutex

	Mid         string
	Direction   RTPTransceiverDirection
	kind        RTPCodecType
	mediaEngine *MediaEngine

	codecs []RTPCodecParameters

	sender   *RTPSender
	receiver *RTPReceiver

	stopped bool
}

func newRTPTransceiver(kind RTPCodecType, direction RTPTransceiverDirection, mediaEngine *MediaEngine) *RTPTransceiver {
	return &RTPTransceiver{
		Direction:   direction,
		kind:        kind,
		mediaEngine: mediaEngine,
		codecs:      mediaEngine.getCodecsByKind(kind),
		receiver:    newRTPReceiver(kind, nil),
	}
}

// Kind returns the RTPCodecType this transceiver was created for.
func (t *RTPTransceiver) Kind() RTPCodecType {
	return t.kind
}

// GetParameters returns the RTPParameters (negotiated header extensions
// plus the current codec preference list) a sender or receiver built on
// this transceiver would use.
func (t *RTPTransceiver) GetParameters() RTPParameters {
	params := t.mediaEngine.getRTPParametersByKind(t.kind)
	params.Codecs = t.GetCodecs()

	return params
}

// MidValue returns the negotiated media stream identification tag, or the
// empty string if one has not yet been assigned.
func (t *RTPTransceiver) MidValue() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.Mid
}

// CurrentDirection returns the transceiver's currently negotiated
// direction.
func (t *RTPTransceiver) CurrentDirection() RTPTransceiverDirection {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.Direction
}

// Sender returns the transceiver's RTPSender, creating one bound to
// transport on first use.
func (t *RTPTransceiver) Sender(transport *DTLSTransport) (*RTPSender, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.sender != nil {
		return t.sender, nil
	}

	sender, err := newRTPSender(transport)
	if err != nil {
		return nil, err
	}

	t.sender = sender

	return sender, nil
}

// Receiver returns the transceiver's RTPReceiver.
func (t *RTPTransceiver) Receiver() *RTPReceiver {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.receiver
}

// GetCodecs returns the current codec preference list: the initial
// MediaEngine-derived list if SetCodecPreferences has never succeeded,
// otherwise the last accepted preference list.
func (t *RTPTransceiver) GetCodecs() []RTPCodecParameters {
	t.mu.RLock()
	defer t.mu.RUnlock()

	if len(t.codecs) == 0 {
		return t.mediaEngine.getCodecsByKind(t.kind)
	}

	return t.codecs
}

// SetCodecPreferences validates and installs a new codec preference list.
// An empty list resets preferences to MediaEngine order. The installation
// is atomic: on failure the previous list is left unchanged.
func (t *RTPTransceiver) SetCodecPreferences(prefs []RTPCodecParameters) error {
	if len(prefs) == 0 {
		t.mu.Lock()
		t.codecs = nil
		t.mu.Unlock()

		return nil
	}

	for _, pref := range prefs {
		if t.codecSupported(pref, prefs) {
			continue
		}

		return &TypeError{Err: ErrRTPTransceiverCodecUnsupported}
	}

	t.mu.Lock()
	t.codecs = append([]RTPCodecParameters(nil), prefs...)
	t.mu.Unlock()

	return nil
}

// codecSupported reports whether pref is acceptable: either the
// MediaEngine has a same-kind codec with a matching mime type, or pref is
// an RTX entry whose apt= payload type is present elsewhere in the same
// candidate list.
func (t *RTPTransceiver) codecSupported(pref RTPCodecParameters, candidateList []RTPCodecParameters) bool {
	if strings.EqualFold(pref.MimeType, MimeTypeRTX) {
		aptPT, ok := aptPayloadType(pref.SDPFmtpLine)
		if !ok {
			return false
		}

		for _, c := range candidateList {
			if c.PayloadType == aptPT {
				return true
			}
		}

		return false
	}

	for _, local := range t.mediaEngine.getCodecsByKind(t.kind) {
		if strings.EqualFold(local.MimeType, pref.MimeType) {
			return true
		}
	}

	return false
}

func aptPayloadType(fmtpLine string) (PayloadType, bool) {
	if !strings.HasPrefix(fmtpLine, "apt=") {
		return 0, false
	}

	v, err := strconv.ParseUint(strings.TrimPrefix(fmtpLine, "apt="), 10, 8)
	if err != nil {
		return 0, false
	}

	return PayloadType(v), true
}

// Stop irreversibly stops the RTPTransceiver along with any sender or
// receiver it owns. Stop is idempotent.
func (t *RTPTransceiver) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.stopped {
		return nil
	}

	t.stopped = true

	if t.sender != nil {
		if err := t.sender.Stop(); err != nil {
			return err
		}
	}

	if t.receiver != nil {
		if err := t.receiver.Stop(); err != nil {
			return err
		}
	}

	return nil
}

// Stopped reports whether Stop has been called.
func (t *RTPTransceiver) Stopped() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.stopped
}
