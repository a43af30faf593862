// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package audio

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/gogpu/gfx"
)

// ErrCaptureStopped is returned when reading from a capture device that was
// not started.
var ErrCaptureStopped = errors.New("audio: capture device not started")

// CaptureInterval is how much audio Capture asks the device for per read.
const CaptureInterval = 100 * time.Millisecond

// CaptureDevice is an audio input such as a microphone. Read blocks until
// samples are available and returns io.EOF once the device has nothing more
// to deliver.
type CaptureDevice interface {
	Start(channels, sampleRate int) error
	Read(dst []int16) (int, error)
	Stop() error
}

// Capture starts dev and passes every chunk of captured samples to handle
// until handle returns false, the device reports io.EOF or ctx is canceled.
// The slice passed to handle is reused between calls.
//
// Cancellation is the normal way to end an endless capture, so Capture
// returns nil when ctx is done. The device is always stopped before Capture
// returns.
func Capture(ctx context.Context, dev CaptureDevice, channels, sampleRate int, handle func([]int16) bool) (err error) {
	if err := validateFormat(channels, sampleRate); err != nil {
		return err
	}
	if err := dev.Start(channels, sampleRate); err != nil {
		return fmt.Errorf("audio: start capture: %w", err)
	}
	gfx.Logger().Debug("audio: capture started", "channels", channels, "rate", sampleRate)
	defer func() {
		if stopErr := dev.Stop(); stopErr != nil && err == nil {
			err = fmt.Errorf("audio: stop capture: %w", stopErr)
		}
		gfx.Logger().Debug("audio: capture stopped", "err", err)
	}()

	frames := max(int(CaptureInterval*time.Duration(sampleRate)/time.Second), 1)
	buf := make([]int16, frames*channels)
	for ctx.Err() == nil {
		n, rerr := dev.Read(buf)
		if n > 0 && !handle(buf[:n]) {
			return nil
		}
		if errors.Is(rerr, io.EOF) {
			return nil
		}
		if rerr != nil {
			return fmt.Errorf("audio: capture read: %w", rerr)
		}
	}
	return nil
}

// BufferRecorder captures audio into memory and turns it into a Buffer.
type BufferRecorder struct {
	channels   int
	sampleRate int
	samples    []int16
}

// NewBufferRecorder returns a recorder for the given format.
func NewBufferRecorder(channels, sampleRate int) (*BufferRecorder, error) {
	if err := validateFormat(channels, sampleRate); err != nil {
		return nil, err
	}
	return &BufferRecorder{channels: channels, sampleRate: sampleRate}, nil
}

// Record discards any earlier recording and captures from dev until ctx is
// canceled or the device is drained. Samples captured before an error are
// kept.
func (r *BufferRecorder) Record(ctx context.Context, dev CaptureDevice) error {
	r.samples = r.samples[:0]
	return Capture(ctx, dev, r.channels, r.sampleRate, func(chunk []int16) bool {
		r.samples = append(r.samples, chunk...)
		return true
	})
}

// Buffer returns the recorded audio. A trailing partial frame is dropped.
func (r *BufferRecorder) Buffer() (*Buffer, error) {
	n := len(r.samples) - len(r.samples)%r.channels
	return NewBuffer(r.samples[:n], r.channels, r.sampleRate)
}

// MemoryCapture is a CaptureDevice that delivers preset samples, for
// headless use and tests.
//
// MemoryCapture is safe for concurrent use.
type MemoryCapture struct {
	mu         sync.Mutex
	samples    []int16
	pos        int
	active     bool
	channels   int
	sampleRate int
	starts     int
}

// NewMemoryCapture returns a device that delivers samples and then io.EOF.
func NewMemoryCapture(samples []int16) *MemoryCapture {
	return &MemoryCapture{samples: append([]int16(nil), samples...)}
}

// Start implements CaptureDevice. Every start delivers the samples from the
// beginning.
func (m *MemoryCapture) Start(channels, sampleRate int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.active = true
	m.pos = 0
	m.channels, m.sampleRate = channels, sampleRate
	m.starts++
	return nil
}

// Read implements CaptureDevice.
func (m *MemoryCapture) Read(dst []int16) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.active {
		return 0, ErrCaptureStopped
	}
	if m.pos >= len(m.samples) {
		return 0, io.EOF
	}
	n := copy(dst, m.samples[m.pos:])
	m.pos += n
	return n, nil
}

// Stop implements CaptureDevice.
func (m *MemoryCapture) Stop() error {
	m.mu.Lock()
	m.active = false
	m.mu.Unlock()
	return nil
}

// Active reports whether the device is started.
func (m *MemoryCapture) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.active
}

// Format returns the channel count and sample rate of the last Start.
func (m *MemoryCapture) Format() (channels, sampleRate int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.channels, m.sampleRate
}

// Starts returns how many times the device was started.
func (m *MemoryCapture) Starts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.starts
}

// Ensure MemoryCapture implements CaptureDevice.
var _ CaptureDevice = (*MemoryCapture)(nil)
