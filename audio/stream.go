// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package audio

import (
	"fmt"
	"io"
	"time"

	"github.com/gogpu/gfx"
)

// StreamSource supplies the audio of a Stream chunk by chunk, for data that
// is too large to hold in a Buffer or that is produced on the fly.
type StreamSource interface {
	// NextChunk returns the next interleaved samples. more is false once the
	// source is exhausted; the samples returned with it are still played.
	// An empty chunk with more set means no data is ready yet.
	NextChunk() (samples []int16, more bool)

	// Seek moves the source so that the next chunk starts at offset.
	Seek(offset time.Duration) error
}

// Stream plays audio pulled from a StreamSource instead of a Buffer. It has
// the same status machine and spatial properties as Sound.
//
// A Stream is NOT safe for concurrent use.
type Stream struct {
	source
	src        StreamSource
	channels   int
	sampleRate int
	loop       bool

	pending   []int16
	exhausted bool
	played    int64 // samples handed out since the last seek, plus the seek position
}

// NewStream creates a stopped stream reading src. channels and sampleRate
// follow the same limits as NewBuffer.
func NewStream(sink Sink, src StreamSource, channels, sampleRate int) (*Stream, error) {
	if err := validateFormat(channels, sampleRate); err != nil {
		return nil, err
	}
	s := &Stream{
		source:     newSource(sink),
		src:        src,
		channels:   channels,
		sampleRate: sampleRate,
	}
	gfx.Logger().Debug("audio: stream created", "handle", s.handle, "channels", channels, "rate", sampleRate)
	return s, nil
}

// ChannelCount returns the number of interleaved channels.
func (s *Stream) ChannelCount() int { return s.channels }

// SampleRate returns the number of frames per second.
func (s *Stream) SampleRate() int { return s.sampleRate }

// Loop reports whether the stream seeks back to the start when its source is
// exhausted.
func (s *Stream) Loop() bool { return s.loop }

// SetLoop sets whether the stream loops.
func (s *Stream) SetLoop(loop bool) { s.loop = loop }

// Play starts or resumes playback. Playing an already playing stream
// restarts it from the beginning.
func (s *Stream) Play() error {
	if s.released {
		return ErrReleased
	}
	if s.status == Playing {
		if err := s.seek(0); err != nil {
			return err
		}
	}
	return s.play()
}

// Pause pauses a playing stream. It has no effect in any other state.
func (s *Stream) Pause() error { return s.pause() }

// Stop stops playback and seeks the source back to the start.
func (s *Stream) Stop() error {
	if err := s.stop(); err != nil {
		return err
	}
	return s.seek(0)
}

// Release frees the sink resources of the stream.
func (s *Stream) Release() error {
	if err := s.release(); err != nil {
		return err
	}
	s.pending = nil
	return nil
}

// PlayingOffset returns the position of the next sample ReadSamples hands
// out.
func (s *Stream) PlayingOffset() time.Duration {
	frames := s.played / int64(s.channels)
	return time.Duration(frames) * time.Second / time.Duration(s.sampleRate)
}

// SetPlayingOffset seeks the source. Negative offsets seek to the start.
func (s *Stream) SetPlayingOffset(offset time.Duration) error {
	return s.seek(max(offset, 0))
}

func (s *Stream) seek(offset time.Duration) error {
	if err := s.src.Seek(offset); err != nil {
		return fmt.Errorf("audio: seek stream %d to %v: %w", s.handle, offset, err)
	}
	frames := int64(offset * time.Duration(s.sampleRate) / time.Second)
	s.pending = nil
	s.exhausted = false
	s.played = frames * int64(s.channels)
	return nil
}

// ReadSamples fills dst with interleaved samples in [-1, 1], pulling chunks
// from the source as needed. A looping stream seeks back to the start when
// the source is exhausted. ReadSamples returns io.EOF once a non-looping
// source is drained; it returns 0 and a nil error when the source has no
// data ready.
func (s *Stream) ReadSamples(dst []float32) (int, error) {
	n := 0
	looped := false
	for n < len(dst) {
		if len(s.pending) > 0 {
			k := copy16(dst[n:], s.pending)
			s.pending = s.pending[k:]
			s.played += int64(k)
			n += k
			continue
		}
		if s.exhausted {
			// A source that stays empty right after rewinding would loop forever.
			if !s.loop || looped {
				break
			}
			if err := s.seek(0); err != nil {
				return n, err
			}
			looped = true
			continue
		}
		chunk, more := s.src.NextChunk()
		s.pending, s.exhausted = chunk, !more
		if len(chunk) > 0 {
			looped = false
		} else if more {
			break
		}
	}
	if n == 0 && len(dst) > 0 && s.exhausted && len(s.pending) == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// ChunkSource is a StreamSource over in-memory samples, handed out in chunks
// of a fixed size. It is meant for tests and for generated audio.
type ChunkSource struct {
	samples    []int16
	chunk      int
	channels   int
	sampleRate int
	pos        int
	seeks      []time.Duration
}

// NewChunkSource returns a source serving samples chunk samples at a time.
// channels and sampleRate are used to convert seek offsets.
func NewChunkSource(samples []int16, chunk, channels, sampleRate int) *ChunkSource {
	return &ChunkSource{
		samples:    samples,
		chunk:      max(chunk, 1),
		channels:   max(channels, 1),
		sampleRate: max(sampleRate, 1),
	}
}

// NextChunk implements StreamSource.
func (c *ChunkSource) NextChunk() ([]int16, bool) {
	end := min(c.pos+c.chunk, len(c.samples))
	out := c.samples[c.pos:end]
	c.pos = end
	return out, end < len(c.samples)
}

// Seek implements StreamSource. Offsets past the end leave the source
// exhausted.
func (c *ChunkSource) Seek(offset time.Duration) error {
	c.seeks = append(c.seeks, offset)
	frame := int(offset * time.Duration(c.sampleRate) / time.Second)
	c.pos = min(frame*c.channels, len(c.samples))
	return nil
}

// Seeks returns the offsets passed to Seek so far.
func (c *ChunkSource) Seeks() []time.Duration {
	return append([]time.Duration(nil), c.seeks...)
}

// Ensure ChunkSource implements StreamSource.
var _ StreamSource = (*ChunkSource)(nil)
