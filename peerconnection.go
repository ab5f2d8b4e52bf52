// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

// Package webrtc implements a subset of the W3C WebRTC PeerConnection API:
// codec negotiation, SDP offer/answer, and the ICE/DTLS transport state
// machinery that together drive a PeerConnection's aggregate connection
// state.
package webrtc

import (
	"crypto/rand"
	"encoding/binary"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/pion/interceptor"
	"github.com/pion/logging"
	"github.com/pion/randutil"
	"github.com/pion/sdp/v3"
)

// PeerConnection represents a WebRTC connection established between a
// local and a remote peer.
type PeerConnection struct {
	mu sync.RWMutex

	api           *API
	configuration Configuration
	log           logging.LeveledLogger
	interceptor   interceptor.Interceptor

	signalingState    SignalingState
	iceGatheringState ICEGatheringState
	connectionState   PeerConnectionState

	currentLocalDescription  *SessionDescription
	currentRemoteDescription *SessionDescription

	transceivers []*RTPTransceiver

	iceTransportStates  map[string]ICETransportState
	dtlsTransportStates map[string]DTLSTransportState

	isClosed                                *atomicBool
	negotiationNeededState                 negotiationNeededState
	updateNegotiationNeededFlagOnEmptyChain *atomicBool
	ops                                     *operations

	onConnectionStateChangeHandler atomic.Value
	onSignalingStateChangeHandler  atomic.Value
	onNegotiationNeededHandler     atomic.Value
	onICECandidateHandler          atomic.Value
}

// NewPeerConnection creates a PeerConnection using the default codec set.
func NewPeerConnection(configuration Configuration) (*PeerConnection, error) {
	m := &MediaEngine{}
	if err := m.RegisterDefaultCodecs(); err != nil {
		return nil, err
	}

	api := NewAPI(WithMediaEngine(m))

	return api.NewPeerConnection(configuration)
}

// NewPeerConnection creates a new PeerConnection configured with the
// MediaEngine and SettingEngine previously attached to api.
func (api *API) NewPeerConnection(configuration Configuration) (*PeerConnection, error) {
	id, err := randutil.GenerateCryptoRandomString(16, randutil.CharsetAlphaLower)
	if err != nil {
		return nil, &OperationError{Err: err}
	}

	chain, err := api.interceptorRegistry.build(id)
	if err != nil {
		return nil, &OperationError{Err: err}
	}

	pc := &PeerConnection{
		api:                 api,
		log:                 api.settingEngine.LoggerFactory.NewLogger("pc"),
		configuration:       configuration,
		interceptor:         chain,
		signalingState:      SignalingStateStable,
		iceGatheringState:   ICEGatheringStateNew,
		connectionState:     PeerConnectionStateNew,
		iceTransportStates:  make(map[string]ICETransportState),
		dtlsTransportStates: make(map[string]DTLSTransportState),
		isClosed:            &atomicBool{},
	}

	pc.updateNegotiationNeededFlagOnEmptyChain = &atomicBool{}
	pc.ops = newOperations(pc.updateNegotiationNeededFlagOnEmptyChain, pc.triggerNegotiationNeeded)

	return pc, nil
}

// AddTransceiverFromKind creates a new RTPTransceiver for the given media
// kind and direction, appends it to the PeerConnection, and signals that
// a new offer is needed.
func (pc *PeerConnection) AddTransceiverFromKind(kind RTPCodecType, direction RTPTransceiverDirection) (*RTPTransceiver, error) {
	if pc.isClosed.get() {
		return nil, &InvalidStateError{Err: ErrConnectionClosed}
	}

	t := newRTPTransceiver(kind, direction, pc.api.mediaEngine)
	t.Mid = strconv.Itoa(pc.addTransceiver(t))

	pc.onNegotiationNeeded()

	return t, nil
}

func (pc *PeerConnection) addTransceiver(t *RTPTransceiver) int {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	pc.transceivers = append(pc.transceivers, t)

	return len(pc.transceivers) - 1
}

// GetTransceivers returns every RTPTransceiver currently attached to the
// PeerConnection.
func (pc *PeerConnection) GetTransceivers() []*RTPTransceiver {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	return append([]*RTPTransceiver(nil), pc.transceivers...)
}

// SignalingState returns the current state of the offer/answer process.
func (pc *PeerConnection) SignalingState() SignalingState {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	return pc.signalingState
}

// ICEGatheringState returns the current candidate gathering state.
func (pc *PeerConnection) ICEGatheringState() ICEGatheringState {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	return pc.iceGatheringState
}

// ConnectionState returns the current aggregate PeerConnectionState.
func (pc *PeerConnection) ConnectionState() PeerConnectionState {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	return pc.connectionState
}

// CurrentLocalDescription returns the last description successfully
// applied via SetLocalDescription, or nil if none has been applied.
func (pc *PeerConnection) CurrentLocalDescription() *SessionDescription {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	return pc.currentLocalDescription
}

// CurrentRemoteDescription returns the last description successfully
// applied via SetRemoteDescription, or nil if none has been applied.
func (pc *PeerConnection) CurrentRemoteDescription() *SessionDescription {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	return pc.currentRemoteDescription
}

// CreateOffer generates an SDP offer covering every attached
// RTPTransceiver's current codec preferences.
func (pc *PeerConnection) CreateOffer() (SessionDescription, error) {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.signalingState != SignalingStateStable && pc.signalingState != SignalingStateHaveLocalOffer {
		return SessionDescription{}, &InvalidStateError{Err: ErrSignalingStateCantCreateOffer}
	}

	d, err := pc.buildSessionDescription(nil)
	if err != nil {
		return SessionDescription{}, err
	}

	raw, err := d.Marshal()
	if err != nil {
		return SessionDescription{}, &OperationError{Err: err}
	}

	return SessionDescription{Type: SDPTypeOffer, SDP: string(raw)}, nil
}

// CreateAnswer generates an SDP answer in response to the last applied
// remote offer.
func (pc *PeerConnection) CreateAnswer() (SessionDescription, error) {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	if pc.signalingState != SignalingStateHaveRemoteOffer && pc.signalingState != SignalingStateHaveLocalPranswer {
		return SessionDescription{}, &InvalidStateError{Err: ErrSignalingStateCantCreateAnswer}
	}

	if pc.currentRemoteDescription == nil {
		return SessionDescription{}, &OperationError{Err: ErrNoRemoteDescription}
	}

	remote, err := pc.currentRemoteDescription.Unmarshal()
	if err != nil {
		return SessionDescription{}, err
	}

	d, err := pc.buildSessionDescription(remote)
	if err != nil {
		return SessionDescription{}, err
	}

	raw, err := d.Marshal()
	if err != nil {
		return SessionDescription{}, &OperationError{Err: err}
	}

	return SessionDescription{Type: SDPTypeAnswer, SDP: string(raw)}, nil
}

// buildSessionDescription renders one m= section per RTPTransceiver. When
// remote is nil (creating an offer) each section advertises the
// transceiver's codec preference list intersected with the MediaEngine's
// registered set for its kind. When remote is non-nil (creating an
// answer) the section is further intersected with, and remapped to the
// payload types of, the matching kind's m= section in remote. mu must
// already be held.
func (pc *PeerConnection) buildSessionDescription(remote *sdp.SessionDescription) (*sdp.SessionDescription, error) {
	ufrag, err := randutil.GenerateCryptoRandomString(16, randutil.CharsetAlphaLower)
	if err != nil {
		return nil, &OperationError{Err: err}
	}

	pwd, err := randutil.GenerateCryptoRandomString(32, randutil.CharsetAlphaLower)
	if err != nil {
		return nil, &OperationError{Err: err}
	}

	sessionID, err := newSDPSessionID()
	if err != nil {
		return nil, &OperationError{Err: err}
	}

	d := &sdp.SessionDescription{
		Version: 0,
		Origin: sdp.Origin{
			Username:       "-",
			SessionID:      sessionID,
			SessionVersion: sessionID,
			NetworkType:    "IN",
			AddressType:    "IP4",
			UnicastAddress: "0.0.0.0",
		},
		SessionName: "-",
		TimeDescriptions: []sdp.TimeDescription{
			{Timing: sdp.Timing{StartTime: 0, StopTime: 0}},
		},
	}

	remoteMediaByKind := map[string][]*sdp.MediaDescription{}
	if remote != nil {
		for _, m := range remote.MediaDescriptions {
			remoteMediaByKind[m.MediaName.Media] = append(remoteMediaByKind[m.MediaName.Media], m)
		}
	}

	for i, t := range pc.transceivers {
		media := &sdp.MediaDescription{
			MediaName: sdp.MediaName{
				Media:  t.Kind().String(),
				Port:   sdp.RangedPort{Value: 9},
				Protos: []string{"UDP", "TLS", "RTP", "SAVPF"},
			},
			ConnectionInformation: &sdp.ConnectionInformation{
				NetworkType: "IN",
				AddressType: "IP4",
				Address:     &sdp.Address{Address: "0.0.0.0"},
			},
		}

		var remoteMedia *sdp.MediaDescription
		if queue := remoteMediaByKind[t.Kind().String()]; len(queue) > 0 {
			remoteMedia = queue[0]
			remoteMediaByKind[t.Kind().String()] = queue[1:]
		}

		codecs, err := pc.negotiatedCodecs(t, remoteMedia)
		if err != nil {
			return nil, err
		}

		for _, c := range codecs {
			media.MediaName.Formats = append(media.MediaName.Formats, strconv.Itoa(int(c.PayloadType)))
			media = media.WithCodec(
				uint8(c.PayloadType),
				rtpmapNameForMimeType(c.MimeType),
				c.ClockRate,
				c.Channels,
				c.SDPFmtpLine,
			)
		}

		media = media.WithPropertyAttribute(t.Direction.String())
		media = media.WithValueAttribute("mid", strconv.Itoa(i))
		media = media.WithICECredentials(ufrag, pwd)

		d.MediaDescriptions = append(d.MediaDescriptions, media)
	}

	return d, nil
}

// SetLocalDescription applies a local offer or answer, validating the
// transition against the signaling state diagram before committing it.
func (pc *PeerConnection) SetLocalDescription(desc SessionDescription) error {
	return pc.setDescription("setLocal", &pc.currentLocalDescription, desc)
}

// SetRemoteDescription applies a remote offer or answer, validating the
// transition against the signaling state diagram before committing it.
func (pc *PeerConnection) SetRemoteDescription(desc SessionDescription) error {
	if err := pc.setDescription("setRemote", &pc.currentRemoteDescription, desc); err != nil {
		return err
	}

	parsed, err := desc.Unmarshal()
	if err != nil {
		return err
	}

	return pc.api.mediaEngine.updateFromRemoteDescription(*parsed)
}

func (pc *PeerConnection) setDescription(op string, slot **SessionDescription, desc SessionDescription) error {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.isClosed.get() {
		return &InvalidStateError{Err: ErrConnectionClosed}
	}

	next, err := nextSignalingState(pc.signalingState, op, desc.Type)
	if err != nil {
		return err
	}

	d := desc
	*slot = &d
	pc.signalingState = next

	if handler, ok := pc.onSignalingStateChangeHandler.Load().(func(SignalingState)); ok && handler != nil {
		handler(next)
	}

	return nil
}

// onNegotiationNeeded schedules a (possibly coalesced) negotiationneeded
// notification via the operations queue, per the task-queueing
// microtask steps used by the specification.
func (pc *PeerConnection) onNegotiationNeeded() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.isClosed.get() {
		return
	}

	switch pc.negotiationNeededState {
	case negotiationNeededStateRun:
		pc.negotiationNeededState = negotiationNeededStateQueue

		return
	case negotiationNeededStateQueue:
		return
	default:
		pc.negotiationNeededState = negotiationNeededStateRun
	}

	pc.ops.Enqueue(pc.triggerNegotiationNeeded)
}

func (pc *PeerConnection) triggerNegotiationNeeded() {
	if handler, ok := pc.onNegotiationNeededHandler.Load().(func()); ok && handler != nil {
		handler()
	}

	pc.mu.Lock()
	wasQueued := pc.negotiationNeededState == negotiationNeededStateQueue
	if wasQueued {
		pc.negotiationNeededState = negotiationNeededStateRun
	} else {
		pc.negotiationNeededState = negotiationNeededStateEmpty
	}
	pc.mu.Unlock()

	if wasQueued {
		pc.ops.Enqueue(pc.triggerNegotiationNeeded)
	}
}

// OnNegotiationNeeded sets a handler invoked whenever a new offer/answer
// exchange is required. At most one in-flight and one queued
// notification are ever delivered for a burst of signals.
func (pc *PeerConnection) OnNegotiationNeeded(f func()) {
	pc.onNegotiationNeededHandler.Store(f)
}

// OnSignalingStateChange sets a handler invoked whenever SignalingState
// changes.
func (pc *PeerConnection) OnSignalingStateChange(f func(SignalingState)) {
	pc.onSignalingStateChangeHandler.Store(f)
}

// OnConnectionStateChange sets a handler invoked whenever the aggregate
// PeerConnectionState changes.
func (pc *PeerConnection) OnConnectionStateChange(f func(PeerConnectionState)) {
	pc.onConnectionStateChangeHandler.Store(f)
}

// OnICECandidate sets a handler invoked once per local ICE candidate
// discovered during gathering. A nil candidate signals that gathering has
// completed.
func (pc *PeerConnection) OnICECandidate(f func(*ICECandidate)) {
	pc.onICECandidateHandler.Store(f)
}

// updateICETransportState records the latest state of a named child ICE
// transport and recomputes the aggregate connection state.
func (pc *PeerConnection) updateICETransportState(id string, s ICETransportState) {
	pc.mu.Lock()
	pc.iceTransportStates[id] = s
	pc.mu.Unlock()

	pc.updateConnectionState()
}

// updateDTLSTransportState records the latest state of a named child
// DTLS transport and recomputes the aggregate connection state.
func (pc *PeerConnection) updateDTLSTransportState(id string, s DTLSTransportState) {
	pc.mu.Lock()
	pc.dtlsTransportStates[id] = s
	pc.mu.Unlock()

	pc.updateConnectionState()
}

func (pc *PeerConnection) updateConnectionState() {
	pc.mu.Lock()

	ice := make([]ICETransportState, 0, len(pc.iceTransportStates))
	for _, s := range pc.iceTransportStates {
		ice = append(ice, s)
	}

	dtls := make([]DTLSTransportState, 0, len(pc.dtlsTransportStates))
	for _, s := range pc.dtlsTransportStates {
		dtls = append(dtls, s)
	}

	next := deriveConnectionState(ice, dtls, pc.isClosed.get())
	changed := next != pc.connectionState
	pc.connectionState = next
	pc.mu.Unlock()

	if !changed {
		return
	}

	pc.log.Infof("peer connection state changed: %s", next)

	if handler, ok := pc.onConnectionStateChangeHandler.Load().(func(PeerConnectionState)); ok && handler != nil {
		handler(next)
	}
}

// Close ends the PeerConnection. It is idempotent: calling it more than
// once has no additional effect.
func (pc *PeerConnection) Close() error {
	if !pc.isClosed.compareAndSwap(false, true) {
		return nil
	}

	pc.ops.GracefulClose()

	pc.mu.Lock()
	pc.signalingState = SignalingStateClosed
	pc.connectionState = PeerConnectionStateClosed
	chain := pc.interceptor
	pc.mu.Unlock()

	if chain != nil {
		if err := chain.Close(); err != nil {
			pc.log.Warnf("failed to close interceptor chain: %s", err)
		}
	}

	if handler, ok := pc.onConnectionStateChangeHandler.Load().(func(PeerConnectionState)); ok && handler != nil {
		handler(PeerConnectionStateClosed)
	}

	return nil
}

// negotiatedCodecs returns the codecs t should advertise: its codec
// preference list intersected, by mime type, with the MediaEngine's
// registered set for its kind. When remoteMedia is non-nil, the result is
// further intersected with that m= section's advertised codecs and each
// surviving codec's PayloadType is remapped to the one remoteMedia
// assigned, so an answer reuses the offerer's payload-type assignment.
func (pc *PeerConnection) negotiatedCodecs(t *RTPTransceiver, remoteMedia *sdp.MediaDescription) ([]RTPCodecParameters, error) {
	registered := pc.api.mediaEngine.getCodecsByKind(t.Kind())

	var remoteByMime map[string]PayloadType
	if remoteMedia != nil {
		remoteCodecs, err := codecsFromMediaDescription(remoteMedia)
		if err != nil {
			return nil, err
		}

		remoteByMime = make(map[string]PayloadType, len(remoteCodecs))
		for _, rc := range remoteCodecs {
			remoteByMime[strings.ToLower(rc.MimeType)] = rc.PayloadType
		}
	}

	prefs := t.GetCodecs()
	negotiated := make([]RTPCodecParameters, 0, len(prefs))

	for _, c := range prefs {
		if !mimeTypeRegistered(c.MimeType, registered) {
			continue
		}

		if remoteByMime == nil {
			negotiated = append(negotiated, c)

			continue
		}

		pt, ok := remoteByMime[strings.ToLower(c.MimeType)]
		if !ok {
			continue
		}

		c.PayloadType = pt
		negotiated = append(negotiated, c)
	}

	return negotiated, nil
}

// mimeTypeRegistered reports whether mimeType matches one of registered's
// mime types, case-insensitively.
func mimeTypeRegistered(mimeType string, registered []RTPCodecParameters) bool {
	for _, r := range registered {
		if strings.EqualFold(r.MimeType, mimeType) {
			return true
		}
	}

	return false
}

// newSDPSessionID generates a 63-bit session id as recommended by RFC
// 8866 (the value must fit a signed 64-bit NTP-derived integer).
func newSDPSessionID() (uint64, error) {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		return 0, err
	}

	return binary.BigEndian.Uint64(b[:]) >> 1, nil
}

// rtpmapNameForMimeType returns the rtpmap codec name for a full mime
// type, the inverse of mimeTypeForName: everything after the slash.
func rtpmapNameForMimeType(mimeType string) string {
	for i := len(mimeType) - 1; i >= 0; i-- {
		if mimeType[i] == '/' {
			return mimeType[i+1:]
		}
	}

	return mimeType
}
