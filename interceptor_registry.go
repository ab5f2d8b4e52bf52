// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import (
	"github.com/pion/interceptor"
	"github.com/pion/interceptor/pkg/nack"
)

// InterceptorRegistry collects interceptor.Factory instances that are
// chained into a single interceptor.Interceptor for every PeerConnection
// built from the owning API.
type InterceptorRegistry struct {
	factories []interceptor.Factory
}

// Add registers a Factory to be included in the built chain.
func (i *InterceptorRegistry) Add(f interceptor.Factory) {
	i.factories = append(i.factories, f)
}

// build constructs the chained Interceptor this registry describes, one
// fresh Interceptor instance per factory, identified by id.
func (i *InterceptorRegistry) build(id string) (interceptor.Interceptor, error) {
	if len(i.factories) == 0 {
		return &interceptor.NoOp{}, nil
	}

	chain := make([]interceptor.Interceptor, 0, len(i.factories))
	for _, f := range i.factories {
		ic, err := f.NewInterceptor(id)
		if err != nil {
			return nil, err
		}
		chain = append(chain, ic)
	}

	return interceptor.NewChain(chain), nil
}

// RegisterDefaultInterceptors registers the interceptors this module
// enables by default: NACK generation and response for the codecs
// MediaEngine has negotiated "nack" RTCP feedback for.
func RegisterDefaultInterceptors(interceptorRegistry *InterceptorRegistry) error {
	return ConfigureNack(interceptorRegistry)
}

// ConfigureNack adds the generator and responder interceptor factories
// that request and serve RTP retransmissions over NACK feedback.
func ConfigureNack(interceptorRegistry *InterceptorRegistry) error {
	generator, err := nack.NewGeneratorInterceptorFactory()
	if err != nil {
		return err
	}
	interceptorRegistry.Add(generator)

	responder, err := nack.NewResponderInterceptorFactory()
	if err != nil {
		return err
	}
	interceptorRegistry.Add(responder)

	return nil
}
