// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package audio models sounds and the boundaries to audio devices.
//
// A Buffer holds decoded PCM samples. A Sound plays a buffer and carries
// the usual playback properties: loop, pitch, volume, playing offset and a
// position in a 3D scene. A Stream has the same properties but pulls its
// samples from a StreamSource chunk by chunk. Neither produces audio itself;
// they drive a Sink, the interface an output device implements.
//
// # Usage
//
//	buf, err := audio.NewBuffer(samples, 2, 44100)
//	if err != nil {
//	    return err
//	}
//	snd := audio.NewSound(sink, buf)
//	snd.SetVolume(50)
//	if err := snd.Play(); err != nil {
//	    return err
//	}
//	defer snd.Release()
//
// A sink mixes a playing sound by reading samples from Sound.Reader, or
// Stream.ReadSamples, and scaling them by Gain and Pan for the current
// Listener.
//
// # Capture
//
// Capture reads from a CaptureDevice such as a microphone and hands the
// samples to a callback until its context is canceled. BufferRecorder
// collects them into a Buffer:
//
//	rec, _ := audio.NewBufferRecorder(1, 44100)
//	if err := rec.Record(ctx, mic); err != nil {
//	    return err
//	}
//	buf, err := rec.Buffer()
//
// # Sinks
//
// MemorySink plays nothing and records every call. MemoryCapture and
// ChunkSource deliver preset samples. They are meant for headless programs
// and tests. Device implementations live outside this module.
//
// # Thread Safety
//
// Buffers are immutable and safe to share. Sounds, streams and recorders
// are NOT safe for concurrent use. MemorySink and MemoryCapture are safe for
// concurrent use.
package audio
