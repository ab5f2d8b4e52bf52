// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import (
	"crypto/tls"
	"sync"

	"github.com/pion/dtls/v3"
	"github.com/pion/rtcp"
	"github.com/pion/srtp/v3"
)

// DTLSRole indicates which side of a DTLS handshake a transport plays.
type DTLSRole int

const (
	// DTLSRoleClient initiates the DTLS handshake.
	DTLSRoleClient DTLSRole = iota
	// DTLSRoleServer waits for and responds to the handshake.
	DTLSRoleServer
)

// DTLSFingerprint carries one hash-algorithm/value pair from a
// certificate's a=fingerprint SDP line.
type DTLSFingerprint struct {
	Algorithm string
	Value     string
}

// DTLSParameters carries the remote DTLSTransport's role and certificate
// fingerprints, negotiated over SDP.
type DTLSParameters struct {
	Role         DTLSRole
	Fingerprints []DTLSFingerprint
}

// DTLSTransport drives the DTLS handshake over an ICETransport's
// connection and, once established, keys an SRTP session from the
// resulting keying material.
type DTLSTransport struct {
	mu sync.RWMutex

	iceTransport *ICETransport
	certificate  *Certificate
	state        DTLSTransportState

	conn         *dtls.Conn
	srtpSession  *srtp.SessionSRTP
	srtcpSession *srtp.SessionSRTCP

	onStateChangeHdlr func(DTLSTransportState)

	pc *PeerConnection
}

// NewDTLSTransport creates a DTLSTransport bound to an ICETransport. If
// certificate is nil, a fresh self-signed certificate is generated.
func NewDTLSTransport(ice *ICETransport, certificate *Certificate, pc *PeerConnection) (*DTLSTransport, error) {
	if certificate == nil {
		cert, err := GenerateCertificate()
		if err != nil {
			return nil, err
		}
		certificate = cert
	}

	return &DTLSTransport{
		iceTransport: ice,
		certificate:  certificate,
		state:        DTLSTransportStateNew,
		pc:           pc,
	}, nil
}

// GetLocalParameters returns the DTLS parameters a remote peer needs to
// validate this transport's certificate.
func (t *DTLSTransport) GetLocalParameters() (DTLSParameters, error) {
	fp, err := t.certificate.Fingerprint()
	if err != nil {
		return DTLSParameters{}, err
	}

	return DTLSParameters{
		Fingerprints: []DTLSFingerprint{{Algorithm: "sha-256", Value: fp}},
	}, nil
}

// Start performs the DTLS handshake as client or server according to
// remoteParameters.Role, then derives an SRTP session from the resulting
// keying material.
func (t *DTLSTransport) Start(remoteParameters DTLSParameters) error {
	t.mu.Lock()
	conn := t.iceTransport.Conn()
	cert := t.certificate
	t.mu.Unlock()

	if conn == nil {
		return &InvalidStateError{Err: ErrICETransportNotConnected}
	}

	t.setState(DTLSTransportStateConnecting)

	tlsCert := tls.Certificate{
		Certificate: [][]byte{cert.x509Cert.Raw},
		PrivateKey:  cert.privateKey,
		Leaf:        cert.x509Cert,
	}

	config := &dtls.Config{
		Certificates:           []tls.Certificate{tlsCert},
		InsecureSkipVerify:     true,
		SRTPProtectionProfiles: []dtls.SRTPProtectionProfile{dtls.SRTP_AES128_CM_HMAC_SHA1_80},
	}

	var (
		dtlsConn *dtls.Conn
		err      error
	)

	switch remoteParameters.Role {
	case DTLSRoleServer:
		dtlsConn, err = dtls.Client(conn, config)
	default:
		dtlsConn, err = dtls.Server(conn, config)
	}

	if err != nil {
		t.setState(DTLSTransportStateFailed)

		return &OperationError{Err: err}
	}

	t.mu.Lock()
	t.conn = dtlsConn
	t.mu.Unlock()

	if err := t.startSRTP(dtlsConn); err != nil {
		t.setState(DTLSTransportStateFailed)

		return err
	}

	t.setState(DTLSTransportStateConnected)

	return nil
}

// startSRTP exports keying material from the completed DTLS handshake
// and uses it to establish the SRTP session protecting subsequent RTP
// traffic.
func (t *DTLSTransport) startSRTP(conn *dtls.Conn) error {
	const (
		keyLen  = 16
		saltLen = 14
	)

	material, err := conn.ExportKeyingMaterial("EXTRACTOR-dtls_srtp", nil, (keyLen+saltLen)*2)
	if err != nil {
		return &OperationError{Err: err}
	}

	offset := 0
	writeKey := material[offset : offset+keyLen]
	offset += keyLen
	readKey := material[offset : offset+keyLen]
	offset += keyLen
	writeSalt := material[offset : offset+saltLen]
	offset += saltLen
	readSalt := material[offset : offset+saltLen]

	config := &srtp.Config{
		Profile: srtp.ProtectionProfileAes128CmHmacSha1_80,
		Keys: srtp.SessionKeys{
			LocalMasterKey:   writeKey,
			LocalMasterSalt:  writeSalt,
			RemoteMasterKey:  readKey,
			RemoteMasterSalt: readSalt,
		},
	}

	session, err := srtp.NewSessionSRTP(conn, config)
	if err != nil {
		return &OperationError{Err: err}
	}

	srtcpSession, err := srtp.NewSessionSRTCP(conn, config)
	if err != nil {
		return &OperationError{Err: err}
	}

	t.mu.Lock()
	t.srtpSession = session
	t.srtcpSession = srtcpSession
	t.mu.Unlock()

	return nil
}

// WriteRTCP marshals pkts and sends them over the SRTCP session derived
// from this transport's DTLS handshake.
func (t *DTLSTransport) WriteRTCP(pkts []rtcp.Packet) error {
	t.mu.RLock()
	session := t.srtcpSession
	t.mu.RUnlock()

	if session == nil {
		return &InvalidStateError{Err: ErrICETransportNotConnected}
	}

	raw, err := rtcp.Marshal(pkts)
	if err != nil {
		return &OperationError{Err: err}
	}

	stream, err := session.OpenWriteStream()
	if err != nil {
		return &OperationError{Err: err}
	}

	if _, err := stream.Write(raw); err != nil {
		return &OperationError{Err: err}
	}

	return nil
}

func (t *DTLSTransport) setState(s DTLSTransportState) {
	t.mu.Lock()
	t.state = s
	handler := t.onStateChangeHdlr
	pc := t.pc
	t.mu.Unlock()

	if pc != nil {
		pc.updateDTLSTransportState(t.iceTransport.id, s)
	}

	if handler != nil {
		handler(s)
	}
}

// State returns the current DTLS transport state.
func (t *DTLSTransport) State() DTLSTransportState {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.state
}

// OnStateChange sets a handler invoked whenever the DTLS transport state
// changes.
func (t *DTLSTransport) OnStateChange(f func(DTLSTransportState)) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.onStateChangeHdlr = f
}

// Stop closes the DTLS connection and any SRTP/SRTCP sessions derived
// from it.
func (t *DTLSTransport) Stop() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.srtpSession != nil {
		_ = t.srtpSession.Close()
	}

	if t.srtcpSession != nil {
		_ = t.srtcpSession.Close()
	}

	if t.conn != nil {
		return t.conn.Close()
	}

	return nil
}
