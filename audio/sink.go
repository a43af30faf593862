// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package audio

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
)

// Errors returned by buffers, sounds and sinks.
var (
	// ErrInvalidChannels is returned for a channel count outside 1..MaxChannels.
	ErrInvalidChannels = errors.New("audio: invalid channel count")

	// ErrInvalidSampleRate is returned for a sample rate outside
	// MinSampleRate..MaxSampleRate.
	ErrInvalidSampleRate = errors.New("audio: invalid sample rate")

	// ErrPartialFrame is returned when the sample count is not a multiple of
	// the channel count.
	ErrPartialFrame = errors.New("audio: sample count is not a whole number of frames")

	// ErrNoBuffer is returned when playing a sound without a buffer.
	ErrNoBuffer = errors.New("audio: sound has no buffer")

	// ErrReleased is returned when using a sound or handle after Release.
	ErrReleased = errors.New("audio: sound released")
)

// Handle identifies one sound instance inside a sink.
type Handle uint64

var lastHandle atomic.Uint64

// newHandle returns a process-wide unique handle.
func newHandle() Handle {
	return Handle(lastHandle.Add(1))
}

// Sink is the playback device seen by a Sound. Implementations mix and
// output the audio; a Sound only tells the sink what to do with its handle.
//
// A Sound changes its status only after the sink accepted the call, so a
// failing sink leaves the sound in its previous state.
type Sink interface {
	Play(h Handle) error
	Pause(h Handle) error
	Stop(h Handle) error
	Release(h Handle) error
}

// Call is one request received by a MemorySink.
type Call struct {
	Op     string
	Handle Handle
}

// String returns the call as "op(handle)".
func (c Call) String() string {
	return fmt.Sprintf("%s(%d)", c.Op, c.Handle)
}

// MemorySink is a Sink that plays nothing. It records every call and the
// resulting state of each handle, for headless use and tests.
//
// MemorySink is safe for concurrent use.
type MemorySink struct {
	mu       sync.Mutex
	calls    []Call
	status   map[Handle]Status
	released map[Handle]bool
	failNext error
}

// NewMemorySink creates an empty sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{
		status:   make(map[Handle]Status),
		released: make(map[Handle]bool),
	}
}

// Play implements Sink.
func (s *MemorySink) Play(h Handle) error { return s.apply("play", h, Playing) }

// Pause implements Sink.
func (s *MemorySink) Pause(h Handle) error { return s.apply("pause", h, Paused) }

// Stop implements Sink.
func (s *MemorySink) Stop(h Handle) error { return s.apply("stop", h, Stopped) }

// Release implements Sink. The handle is forgotten; later calls with it fail
// with ErrReleased.
func (s *MemorySink) Release(h Handle) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check("release", h); err != nil {
		return err
	}
	delete(s.status, h)
	s.released[h] = true
	return nil
}

func (s *MemorySink) apply(op string, h Handle, st Status) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.check(op, h); err != nil {
		return err
	}
	s.status[h] = st
	return nil
}

// check records the call and reports the injected or released error.
// The caller must hold s.mu.
func (s *MemorySink) check(op string, h Handle) error {
	s.calls = append(s.calls, Call{Op: op, Handle: h})
	if err := s.failNext; err != nil {
		s.failNext = nil
		return err
	}
	if s.released[h] {
		return ErrReleased
	}
	return nil
}

// FailNext makes the next call return err without changing any state.
func (s *MemorySink) FailNext(err error) {
	s.mu.Lock()
	s.failNext = err
	s.mu.Unlock()
}

// Calls returns a copy of the calls received so far.
func (s *MemorySink) Calls() []Call {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Call(nil), s.calls...)
}

// Status returns the sink-side status of h. Unknown and released handles
// are Stopped.
func (s *MemorySink) Status(h Handle) Status {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.status[h]
}

// Ensure MemorySink implements Sink.
var _ Sink = (*MemorySink)(nil)
