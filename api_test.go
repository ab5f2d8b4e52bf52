// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewAPI_DefaultsInterceptorRegistry(t *testing.T) {
	api := NewAPI()
	assert.NotNil(t, api.interceptorRegistry)
	assert.NotEmpty(t, api.interceptorRegistry.factories)
}

func TestNewAPI_WithInterceptorRegistryOverride(t *testing.T) {
	custom := &InterceptorRegistry{}
	api := NewAPI(WithInterceptorRegistry(custom))
	assert.Same(t, custom, api.interceptorRegistry)
	assert.Empty(t, custom.factories)
}

func TestPeerConnection_BuildsAndClosesInterceptorChain(t *testing.T) {
	pc, err := NewPeerConnection(Configuration{})
	assert.NoError(t, err)
	assert.NotNil(t, pc.interceptor)
	assert.NoError(t, pc.Close())
}
