// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package lseq

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// Stream is a bounded handoff from a single producer goroutine into a
// lazy sequence. Transport is a lock-free SPSC ring from lfq; Push is
// non-blocking and returns iox.ErrWouldBlock on backpressure.
type Stream[V any] struct {
	q        lfq.SPSC[V]
	closed   atomix.Uint32
	serial   Serial
	pushSlot V
}

// NewStream creates a stream with the given ring capacity.
func NewStream[V any](capacity int) *Stream[V] {
	s := &Stream[V]{serial: nextSerial()}
	s.q.Init(capacity)
	return s
}

// Serial returns the serial number assigned to this stream.
func (s *Stream[V]) Serial() Serial {
	return s.serial
}

// Push offers v to the stream. Non-blocking: returns iox.ErrWouldBlock
// when the ring is full, ErrClosed after Close. Single producer only;
// the push slot is reused across calls.
func (s *Stream[V]) Push(v V) error {
	if s.closed.Load() != 0 {
		return ErrClosed
	}
	s.pushSlot = v
	return s.q.Enqueue(&s.pushSlot)
}

// Close marks the stream complete. Elements already queued remain
// consumable; the sequence observes exhaustion once the ring drains.
// Close must happen after the producer's last Push.
func (s *Stream[V]) Close() {
	s.closed.Store(1)
}

// Seq returns the lazy view of the stream. Elements are realized, and
// memoized, as they are dequeued, so the realized prefix can be
// re-walked and shared like any other producer. Realization waits past
// the empty boundary with adaptive backoff while the stream is open.
func (s *Stream[V]) Seq() Producer[V] {
	return s.next()
}

func (s *Stream[V]) next() Producer[V] {
	return Delay[V](func() (Step[V], error) {
		var bo iox.Backoff
		for {
			v, err := s.q.Dequeue()
			if err == nil {
				return Done(Cons(v, s.next())), nil
			}
			if !iox.IsWouldBlock(err) {
				return Step[V]{}, err
			}
			if s.closed.Load() != 0 {
				// Close happens after the last Push, so one more dequeue
				// attempt after observing the flag settles the race.
				if v, err := s.q.Dequeue(); err == nil {
					return Done(Cons(v, s.next())), nil
				}
				return Done[V](nil), nil
			}
			bo.Wait()
		}
	})
}
