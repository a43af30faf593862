// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package audio

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestCaptureChunks(t *testing.T) {
	dev := NewMemoryCapture(ramp(250))
	var sizes []int
	err := Capture(context.Background(), dev, 1, 1000, func(chunk []int16) bool {
		sizes = append(sizes, len(chunk))
		return true
	})
	if err != nil {
		t.Fatal(err)
	}
	// 100ms at 1000 Hz is 100 samples per read.
	want := []int{100, 100, 50}
	if len(sizes) != len(want) {
		t.Fatalf("chunk sizes = %v, want %v", sizes, want)
	}
	for i := range want {
		if sizes[i] != want[i] {
			t.Errorf("chunk %d = %d samples, want %d", i, sizes[i], want[i])
		}
	}
	if dev.Active() {
		t.Error("device still active after Capture")
	}
	if ch, rate := dev.Format(); ch != 1 || rate != 1000 {
		t.Errorf("Format = %d, %d", ch, rate)
	}
}

func TestCaptureHandlerStops(t *testing.T) {
	dev := NewMemoryCapture(ramp(1000))
	calls := 0
	err := Capture(context.Background(), dev, 1, 1000, func([]int16) bool {
		calls++
		return calls < 2
	})
	if err != nil || calls != 2 {
		t.Errorf("err = %v calls = %d, want nil and 2", err, calls)
	}
	if dev.Active() {
		t.Error("device still active")
	}
}

func TestCaptureCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	dev := NewMemoryCapture(ramp(1000))
	calls := 0
	err := Capture(ctx, dev, 1, 1000, func([]int16) bool {
		calls++
		return true
	})
	if err != nil || calls != 0 {
		t.Errorf("err = %v calls = %d, want nil and 0", err, calls)
	}
	if dev.Starts() != 1 || dev.Active() {
		t.Errorf("starts = %d active = %v", dev.Starts(), dev.Active())
	}
}

func TestCaptureValidation(t *testing.T) {
	dev := NewMemoryCapture(nil)
	err := Capture(context.Background(), dev, 0, 1000, func([]int16) bool { return true })
	if !errors.Is(err, ErrInvalidChannels) {
		t.Errorf("err = %v, want ErrInvalidChannels", err)
	}
	if dev.Starts() != 0 {
		t.Error("device started despite invalid format")
	}
}

// brokenCapture fails on the given operation.
type brokenCapture struct {
	startErr, readErr, stopErr error
	stopped                    bool
}

func (b *brokenCapture) Start(int, int) error { return b.startErr }

func (b *brokenCapture) Read(dst []int16) (int, error) {
	if b.readErr != nil {
		return 0, b.readErr
	}
	return len(dst), nil
}

func (b *brokenCapture) Stop() error {
	b.stopped = true
	return b.stopErr
}

func TestCaptureDeviceErrors(t *testing.T) {
	errDevice := errors.New("device unplugged")
	tests := []struct {
		name        string
		dev         *brokenCapture
		wantStopped bool
	}{
		{"start", &brokenCapture{startErr: errDevice}, false},
		{"read", &brokenCapture{readErr: errDevice}, true},
		{"stop", &brokenCapture{stopErr: errDevice}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Capture(context.Background(), tt.dev, 1, 1000, func([]int16) bool { return false })
			if !errors.Is(err, errDevice) {
				t.Errorf("err = %v, want %v", err, errDevice)
			}
			if tt.dev.stopped != tt.wantStopped {
				t.Errorf("stopped = %v, want %v", tt.dev.stopped, tt.wantStopped)
			}
		})
	}
}

func TestBufferRecorder(t *testing.T) {
	r, err := NewBufferRecorder(2, 1000)
	if err != nil {
		t.Fatal(err)
	}
	// 301 samples: 150 stereo frames plus one stray sample.
	if err := r.Record(context.Background(), NewMemoryCapture(ramp(301))); err != nil {
		t.Fatal(err)
	}
	buf, err := r.Buffer()
	if err != nil {
		t.Fatal(err)
	}
	if buf.FrameCount() != 150 || buf.ChannelCount() != 2 || buf.Duration() != 150*time.Millisecond {
		t.Errorf("buffer = %v with %d frames", buf, buf.FrameCount())
	}
	if got := buf.Samples(); got[0] != 0 || got[299] != 299 {
		t.Errorf("samples[0], samples[299] = %d, %d", got[0], got[299])
	}

	// A second recording replaces the first.
	if err := r.Record(context.Background(), NewMemoryCapture(ramp(4))); err != nil {
		t.Fatal(err)
	}
	buf, err = r.Buffer()
	if err != nil {
		t.Fatal(err)
	}
	if buf.SampleCount() != 4 {
		t.Errorf("SampleCount = %d after re-record, want 4", buf.SampleCount())
	}
}

func TestNewBufferRecorderValidation(t *testing.T) {
	if _, err := NewBufferRecorder(1, 10); !errors.Is(err, ErrInvalidSampleRate) {
		t.Errorf("err = %v, want ErrInvalidSampleRate", err)
	}
}

func TestMemoryCaptureReadBeforeStart(t *testing.T) {
	dev := NewMemoryCapture(ramp(4))
	if _, err := dev.Read(make([]int16, 4)); !errors.Is(err, ErrCaptureStopped) {
		t.Errorf("err = %v, want ErrCaptureStopped", err)
	}
}
