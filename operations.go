// SPDX-FileCopyrightText: 2023 The Pion community <https://pion.ly>
// SPDX-License-Identifier: MIT

package webrtc

import (
	"container/list"
	"sync"
)

// operation is a unit of work run by the operations queue.
type operation func()

// operations serializes PeerConnection state-mutating work onto a single
// goroutine at a time, draining one operation before the next is started,
// so that SDP/ICE/DTLS callbacks never race with application-initiated
// calls like SetLocalDescription.
type operations struct {
	mu     sync.Mutex
	busyCh chan struct{}
	ops    *list.List

	updateNegotiationNeededFlagOnEmptyChain *atomicBool
	onNegotiationNeeded                     func()
	isClosed                                bool
}

func newOperations(updateNegotiationNeededFlagOnEmptyChain *atomicBool, onNegotiationNeeded func()) *operations {
	return &operations{
		ops:                                     list.New(),
		updateNegotiationNeededFlagOnEmptyChain: updateNegotiationNeededFlagOnEmptyChain,
		onNegotiationNeeded:                     onNegotiationNeeded,
	}
}

// Enqueue adds a new action to be executed. If there are no actions
// scheduled, execution starts immediately in a new goroutine. If the queue
// has been closed, the operation is dropped.
func (o *operations) Enqueue(op operation) {
	o.mu.Lock()
	defer o.mu.Unlock()
	_ = o.tryEnqueue(op)
}

// tryEnqueue attempts to enqueue the given operation. It returns false if
// the op is invalid or the queue is closed. mu must already be held.
func (o *operations) tryEnqueue(op operation) bool {
	if op == nil || o.isClosed {
		return false
	}

	o.ops.PushBack(op)

	if o.busyCh == nil {
		o.busyCh = make(chan struct{})
		go o.start()
	}

	return true
}

// IsEmpty reports whether the queue holds no pending tasks.
func (o *operations) IsEmpty() bool {
	o.mu.Lock()
	defer o.mu.Unlock()

	return o.ops.Len() == 0
}

// Done blocks until all currently enqueued operations finish executing.
func (o *operations) Done() {
	var wg sync.WaitGroup
	wg.Add(1)
	o.mu.Lock()
	enqueued := o.tryEnqueue(func() {
		wg.Done()
	})
	o.mu.Unlock()
	if !enqueued {
		return
	}
	wg.Wait()
}

// GracefulClose waits for the operations queue to drain and forbids new
// operations from being enqueued afterward.
func (o *operations) GracefulClose() {
	o.mu.Lock()
	if o.isClosed {
		o.mu.Unlock()
		return
	}
	o.isClosed = true

	busyCh := o.busyCh
	o.mu.Unlock()
	if busyCh == nil {
		return
	}
	<-busyCh
}

func (o *operations) pop() operation {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.ops.Len() == 0 {
		return nil
	}

	e := o.ops.Front()
	o.ops.Remove(e)
	if op, ok := e.Value.(operation); ok {
		return op
	}

	return nil
}

func (o *operations) start() {
	defer func() {
		o.mu.Lock()
		defer o.mu.Unlock()
		close(o.busyCh)

		if o.ops.Len() == 0 || o.isClosed {
			o.busyCh = nil
			return
		}

		// An operation was enqueued while draining, or an operation panicked.
		o.busyCh = make(chan struct{})
		go o.start()
	}()

	fn := o.pop()
	for fn != nil {
		fn()
		fn = o.pop()
	}

	if !o.updateNegotiationNeededFlagOnEmptyChain.get() {
		return
	}
	o.updateNegotiationNeededFlagOnEmptyChain.set(false)
	o.onNegotiationNeeded()
}
