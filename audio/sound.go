// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package audio

import (
	"time"

	"github.com/gogpu/gfx"
)

// Sound is one playable instance of a Buffer. Several sounds may share a
// buffer.
//
// Playback control goes through a Sink. The sound's status only changes
// once the sink accepted the call, and sink errors are returned wrapped.
// Volume and spatial settings are plain properties that a sink reads back,
// typically through Gain and Pan.
//
// A Sound is NOT safe for concurrent use.
type Sound struct {
	source
	buffer *Buffer
	loop   bool
	offset time.Duration
}

// NewSound creates a stopped sound playing buf through sink. buf may be nil
// and set later with SetBuffer.
func NewSound(sink Sink, buf *Buffer) *Sound {
	s := &Sound{source: newSource(sink), buffer: buf}
	gfx.Logger().Debug("audio: sound created", "handle", s.handle)
	return s
}

// Buffer returns the buffer being played, or nil.
func (s *Sound) Buffer() *Buffer { return s.buffer }

// SetBuffer stops the sound and replaces its buffer.
func (s *Sound) SetBuffer(buf *Buffer) error {
	if err := s.Stop(); err != nil {
		return err
	}
	s.buffer = buf
	return nil
}

// Play starts or resumes playback. Playing an already playing sound restarts
// it from the beginning.
func (s *Sound) Play() error {
	if s.released {
		return ErrReleased
	}
	if s.buffer == nil {
		return ErrNoBuffer
	}
	restart := s.status == Playing
	if err := s.play(); err != nil {
		return err
	}
	if restart {
		s.offset = 0
	}
	return nil
}

// Pause pauses a playing sound. It has no effect in any other state.
func (s *Sound) Pause() error { return s.pause() }

// Stop stops playback and rewinds to the start.
func (s *Sound) Stop() error {
	if err := s.stop(); err != nil {
		return err
	}
	s.offset = 0
	return nil
}

// Release frees the sink resources of the sound. Any later playback call
// returns ErrReleased. Releasing twice is a no-op.
func (s *Sound) Release() error {
	if err := s.release(); err != nil {
		return err
	}
	s.offset = 0
	return nil
}

// Loop reports whether the sound restarts when it reaches the end.
func (s *Sound) Loop() bool { return s.loop }

// SetLoop sets whether the sound loops.
func (s *Sound) SetLoop(loop bool) { s.loop = loop }

// PlayingOffset returns the current position within the buffer.
func (s *Sound) PlayingOffset() time.Duration { return s.offset }

// SetPlayingOffset moves the playing position, clamped to the buffer
// duration. Without a buffer the offset stays at zero.
func (s *Sound) SetPlayingOffset(offset time.Duration) {
	if s.buffer == nil || offset < 0 {
		s.offset = 0
		return
	}
	s.offset = min(offset, s.buffer.Duration())
}

// Reader returns a reader over the buffer starting at the playing offset,
// or nil when the sound has no buffer.
func (s *Sound) Reader() *Reader {
	if s.buffer == nil {
		return nil
	}
	return s.buffer.NewReader(s.offset)
}
