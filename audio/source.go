// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package audio

import (
	"fmt"
	"math"

	"github.com/gogpu/gfx"
)

// Status is the playback state of a Sound or Stream.
type Status int

const (
	// Stopped means the source is not playing and its offset is at the start.
	Stopped Status = iota
	// Paused means the source is not playing but keeps its offset.
	Paused
	// Playing means the sink is playing the source.
	Playing
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case Stopped:
		return "Stopped"
	case Paused:
		return "Paused"
	case Playing:
		return "Playing"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Vec3 is a position or direction in the 3D audio scene.
type Vec3 struct {
	X, Y, Z float64
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v.X - w.X, v.Y - w.Y, v.Z - w.Z}
}

// Dot returns the dot product of v and w.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Cross returns the cross product v × w.
func (v Vec3) Cross(w Vec3) Vec3 {
	return Vec3{v.Y*w.Z - v.Z*w.Y, v.Z*w.X - v.X*w.Z, v.X*w.Y - v.Y*w.X}
}

// Length returns the Euclidean length of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// Normalize returns v scaled to unit length, or the zero vector.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return Vec3{}
	}
	return Vec3{v.X / l, v.Y / l, v.Z / l}
}

// Listener is the point of view sounds are heard from: usually the player
// or the camera.
type Listener struct {
	Position Vec3
	// Direction is where the listener faces.
	Direction Vec3
	// Up is the listener's up vector. Together with Direction it decides
	// which side is left and which is right.
	Up Vec3
	// GlobalVolume scales every source, in the range [0, 100].
	GlobalVolume float64
}

// DefaultListener returns a listener at the origin facing -Z with +Y up at
// full volume.
func DefaultListener() Listener {
	return Listener{
		Direction:    Vec3{Z: -1},
		Up:           Vec3{Y: 1},
		GlobalVolume: 100,
	}
}

// right returns the listener's unit right vector.
func (l Listener) right() Vec3 {
	return l.Direction.Cross(l.Up).Normalize()
}

// source holds what sounds and streams have in common: the sink handle with
// its status machine and the volume and spatial properties.
type source struct {
	sink     Sink
	handle   Handle
	status   Status
	released bool

	pitch       float64
	volume      float64
	position    Vec3
	relative    bool
	minDistance float64
	attenuation float64
}

func newSource(sink Sink) source {
	return source{
		sink:        sink,
		handle:      newHandle(),
		pitch:       1,
		volume:      100,
		minDistance: 1,
		attenuation: 1,
	}
}

// Handle returns the sink handle.
func (s *source) Handle() Handle { return s.handle }

// Status returns the current playback state.
func (s *source) Status() Status { return s.status }

// play asks the sink to play and switches to Playing once it agreed.
func (s *source) play() error {
	if s.released {
		return ErrReleased
	}
	if err := s.sink.Play(s.handle); err != nil {
		return fmt.Errorf("audio: play %d: %w", s.handle, err)
	}
	s.status = Playing
	return nil
}

// pause pauses a playing source and does nothing in any other state.
func (s *source) pause() error {
	if s.released {
		return ErrReleased
	}
	if s.status != Playing {
		return nil
	}
	if err := s.sink.Pause(s.handle); err != nil {
		return fmt.Errorf("audio: pause %d: %w", s.handle, err)
	}
	s.status = Paused
	return nil
}

// stop stops the source. The sink is only told when it was not stopped.
func (s *source) stop() error {
	if s.released {
		return ErrReleased
	}
	if s.status != Stopped {
		if err := s.sink.Stop(s.handle); err != nil {
			return fmt.Errorf("audio: stop %d: %w", s.handle, err)
		}
	}
	s.status = Stopped
	return nil
}

// release frees the sink handle. Releasing twice is a no-op.
func (s *source) release() error {
	if s.released {
		return nil
	}
	if err := s.sink.Release(s.handle); err != nil {
		return fmt.Errorf("audio: release %d: %w", s.handle, err)
	}
	s.released = true
	s.status = Stopped
	gfx.Logger().Debug("audio: source released", "handle", s.handle)
	return nil
}

// Pitch returns the playback speed factor. The default is 1.
func (s *source) Pitch() float64 { return s.pitch }

// SetPitch sets the playback speed factor. Non-positive values are ignored.
func (s *source) SetPitch(pitch float64) {
	if pitch <= 0 {
		gfx.Logger().Debug("audio: ignoring non-positive pitch", "handle", s.handle, "pitch", pitch)
		return
	}
	s.pitch = pitch
}

// Volume returns the volume in the range [0, 100]. The default is 100.
func (s *source) Volume() float64 { return s.volume }

// SetVolume sets the volume, clamped to [0, 100].
func (s *source) SetVolume(volume float64) {
	s.volume = clampVolume(volume)
}

// Position returns the 3D position.
func (s *source) Position() Vec3 { return s.position }

// SetPosition sets the 3D position.
func (s *source) SetPosition(p Vec3) { s.position = p }

// RelativeToListener reports whether Position is relative to the listener.
func (s *source) RelativeToListener() bool { return s.relative }

// SetRelativeToListener makes Position relative to the listener instead of
// absolute. A relative position is expressed in the listener's own frame:
// +X is right, +Y is up and -Z is ahead.
func (s *source) SetRelativeToListener(relative bool) { s.relative = relative }

// MinDistance returns the distance under which the source is heard at full
// volume. The default is 1.
func (s *source) MinDistance() float64 { return s.minDistance }

// SetMinDistance sets the full-volume distance. Non-positive values are
// ignored.
func (s *source) SetMinDistance(d float64) {
	if d <= 0 {
		gfx.Logger().Debug("audio: ignoring non-positive min distance", "handle", s.handle, "distance", d)
		return
	}
	s.minDistance = d
}

// Attenuation returns the distance attenuation factor. The default is 1.
func (s *source) Attenuation() float64 { return s.attenuation }

// SetAttenuation sets how fast the source fades with distance. Zero disables
// attenuation; negative values are clamped to zero.
func (s *source) SetAttenuation(a float64) {
	s.attenuation = math.Max(0, a)
}

// fromListener returns the source position as seen from the listener.
func (s *source) fromListener(l Listener) Vec3 {
	if s.relative {
		return s.position
	}
	return s.position.Sub(l.Position)
}

// Gain returns the linear gain in [0, 1] for listener l, combining
// distance attenuation, the source volume and the listener's global volume:
//
//	gain = minDistance / (minDistance + attenuation*(d - minDistance)) * volume/100 * globalVolume/100
//
// where d is the distance to the listener, never less than minDistance.
func (s *source) Gain(l Listener) float64 {
	d := math.Max(s.fromListener(l).Length(), s.minDistance)
	att := s.minDistance / (s.minDistance + s.attenuation*(d-s.minDistance))
	return att * s.volume / 100 * clampVolume(l.GlobalVolume) / 100
}

// Pan returns the stereo balance for listener l, from -1 (fully left) to 1
// (fully right). A source at the listener's position, or a listener without
// a valid orientation, gives 0.
func (s *source) Pan(l Listener) float64 {
	right := Vec3{X: 1}
	if !s.relative {
		right = l.right()
	}
	return s.fromListener(l).Normalize().Dot(right)
}

func clampVolume(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}
