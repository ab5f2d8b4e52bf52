// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import "github.com/pion/logging"

// API bundles the global settings used to construct PeerConnections: the
// codec/header-extension table and the engine-tuning knobs that are not
// part of the public WebRTC surface.
type API struct {
	settingEngine       *SettingEngine
	mediaEngine         *MediaEngine
	interceptorRegistry *InterceptorRegistry
}

// NewAPI creates a new API object for keeping semi-global settings used
// across PeerConnections constructed through it.
func NewAPI(options ...func(*API)) *API {
	a := &API{}

	for _, o := range options {
		o(a)
	}

	if a.settingEngine == nil {
		a.settingEngine = &SettingEngine{}
	}

	if a.settingEngine.LoggerFactory == nil {
		a.settingEngine.LoggerFactory = logging.NewDefaultLoggerFactory()
	}

	if a.mediaEngine == nil {
		a.mediaEngine = &MediaEngine{}
	}

	if a.interceptorRegistry == nil {
		a.interceptorRegistry = &InterceptorRegistry{}
		if err := RegisterDefaultInterceptors(a.interceptorRegistry); err != nil {
			a.settingEngine.LoggerFactory.NewLogger("api").Warnf("failed to register default interceptors: %s", err)
		}
	}

	return a
}

// WithMediaEngine provides a MediaEngine to the API. The engine is marked
// used, so any later RegisterCodec/RegisterHeaderExtension call against it
// fails with ErrMediaEngineAlreadyUsed.
func WithMediaEngine(m *MediaEngine) func(a *API) {
	return func(a *API) {
		m.markUsed()
		a.mediaEngine = m
	}
}

// WithSettingEngine provides a SettingEngine to the API.
func WithSettingEngine(s SettingEngine) func(a *API) {
	return func(a *API) {
		a.settingEngine = &s
	}
}

// WithInterceptorRegistry provides an InterceptorRegistry to the API,
// overriding the default NACK generator/responder registration.
func WithInterceptorRegistry(i *InterceptorRegistry) func(a *API) {
	return func(a *API) {
		a.interceptorRegistry = i
	}
}
