// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

// ICEServer describes a STUN/TURN server that the ICE agent may use
// while gathering candidates.
type ICEServer struct {
	URLs       []string
	Username   string
	Credential string
}

// Configuration defines a set of parameters used to configure how a
// PeerConnection establishes or re-establishes a connection.
type Configuration struct {
	// ICEServers describes the STUN/TURN servers available to ICE.
	ICEServers []ICEServer

	// ICECandidatePoolSize describes the size of the prefetched ICE
	// candidate pool.
	ICECandidatePoolSize uint8
}
