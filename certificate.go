// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import (
	"crypto"
	"crypto/ecdsa"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"time"

	"github.com/pion/dtls/v3/pkg/crypto/fingerprint"
)

// Certificate represents an x509 certificate/private-key pair used to
// authenticate a DTLSTransport's handshake.
type Certificate struct {
	privateKey crypto.PrivateKey
	x509Cert   *x509.Certificate
}

// GenerateCertificate creates a new self-signed ECDSA P-256 certificate
// valid for one year, the default DTLSTransport uses when none is
// supplied explicitly.
func GenerateCertificate() (*Certificate, error) {
	sk, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
	if err != nil {
		return nil, &UnknownError{Err: err}
	}

	serialNumber, err := rand.Int(rand.Reader, new(big.Int).Lsh(big.NewInt(1), 128))
	if err != nil {
		return nil, &UnknownError{Err: err}
	}

	tpl := x509.Certificate{
		SerialNumber:          serialNumber,
		Subject:               pkix.Name{CommonName: "rtcore"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().AddDate(1, 0, 0),
		SignatureAlgorithm:    x509.ECDSAWithSHA256,
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}

	der, err := x509.CreateCertificate(rand.Reader, &tpl, &tpl, sk.Public(), sk)
	if err != nil {
		return nil, &UnknownError{Err: err}
	}

	parsed, err := x509.ParseCertificate(der)
	if err != nil {
		return nil, &UnknownError{Err: err}
	}

	return &Certificate{privateKey: sk, x509Cert: parsed}, nil
}

// Expires returns the certificate's expiry time.
func (c *Certificate) Expires() time.Time {
	return c.x509Cert.NotAfter
}

// Fingerprint returns the SHA-256 fingerprint advertised in SDP's
// a=fingerprint line.
func (c *Certificate) Fingerprint() (string, error) {
	fp, err := fingerprint.Fingerprint(c.x509Cert, crypto.SHA256)
	if err != nil {
		return "", &UnknownError{Err: err}
	}

	return fp, nil
}
