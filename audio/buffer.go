// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package audio

import (
	"fmt"
	"io"
	"time"
)

// Limits accepted by NewBuffer.
const (
	MaxChannels   = 8
	MinSampleRate = 1000
	MaxSampleRate = 384000
)

// Buffer holds decoded audio as interleaved signed 16-bit samples.
//
// A stereo buffer stores left and right samples alternately, so its sample
// count is twice its frame count. Buffers are immutable after creation and
// can be shared between sounds and goroutines.
type Buffer struct {
	samples    []int16
	channels   int
	sampleRate int
}

// NewBuffer creates a buffer from interleaved samples. The samples are
// copied. The sample count must be a whole number of frames.
func NewBuffer(samples []int16, channels, sampleRate int) (*Buffer, error) {
	if err := validateFormat(channels, sampleRate); err != nil {
		return nil, err
	}
	if len(samples)%channels != 0 {
		return nil, fmt.Errorf("%w: %d samples for %d channels", ErrPartialFrame, len(samples), channels)
	}
	return &Buffer{
		samples:    append([]int16(nil), samples...),
		channels:   channels,
		sampleRate: sampleRate,
	}, nil
}

// validateFormat checks a channel count and sample rate against the limits.
func validateFormat(channels, sampleRate int) error {
	if channels < 1 || channels > MaxChannels {
		return fmt.Errorf("%w: %d", ErrInvalidChannels, channels)
	}
	if sampleRate < MinSampleRate || sampleRate > MaxSampleRate {
		return fmt.Errorf("%w: %d", ErrInvalidSampleRate, sampleRate)
	}
	return nil
}

// Samples returns a copy of the interleaved samples.
func (b *Buffer) Samples() []int16 {
	return append([]int16(nil), b.samples...)
}

// SampleCount returns the number of samples across all channels.
func (b *Buffer) SampleCount() int { return len(b.samples) }

// FrameCount returns the number of samples per channel.
func (b *Buffer) FrameCount() int { return len(b.samples) / b.channels }

// ChannelCount returns the number of interleaved channels.
func (b *Buffer) ChannelCount() int { return b.channels }

// SampleRate returns the number of frames per second.
func (b *Buffer) SampleRate() int { return b.sampleRate }

// Duration returns the playing time of the whole buffer.
func (b *Buffer) Duration() time.Duration {
	return time.Duration(b.FrameCount()) * time.Second / time.Duration(b.sampleRate)
}

// frameAt converts a playing offset to a frame index, clamped to the buffer.
func (b *Buffer) frameAt(offset time.Duration) int {
	if offset <= 0 {
		return 0
	}
	f := int(offset * time.Duration(b.sampleRate) / time.Second)
	return min(f, b.FrameCount())
}

// String returns a short description of the buffer.
func (b *Buffer) String() string {
	return fmt.Sprintf("Buffer(%d ch, %d Hz, %v)", b.channels, b.sampleRate, b.Duration())
}

// Reader streams a buffer as float32 samples in [-1, 1], the format audio
// output callbacks usually consume.
type Reader struct {
	buf *Buffer
	pos int
}

// NewReader returns a reader positioned at offset within b.
func (b *Buffer) NewReader(offset time.Duration) *Reader {
	return &Reader{buf: b, pos: b.frameAt(offset) * b.channels}
}

// SampleRate returns the sample rate of the underlying buffer.
func (r *Reader) SampleRate() int { return r.buf.sampleRate }

// Channels returns the channel count of the underlying buffer.
func (r *Reader) Channels() int { return r.buf.channels }

// ReadSamples fills dst with interleaved samples and returns how many were
// written. It returns io.EOF once the buffer is exhausted.
func (r *Reader) ReadSamples(dst []float32) (int, error) {
	if r.pos >= len(r.buf.samples) {
		return 0, io.EOF
	}
	n := copy16(dst, r.buf.samples[r.pos:])
	r.pos += n
	return n, nil
}

func copy16(dst []float32, src []int16) int {
	n := min(len(dst), len(src))
	for i := range n {
		dst[i] = float32(src[i]) / 32768
	}
	return n
}
