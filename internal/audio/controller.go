// Package audio drives the background track of the roster view.
//
// An external player process cannot change volume mid-track, so a volume
// change while audible relaunches ProcessBackend and the track starts over.
// Backends implementing VolumeSetter adjust in place instead.
package audio

import (
	"errors"
	"fmt"
	"sync"
)

// ErrNoSource is returned by Play when no track is configured.
var ErrNoSource = errors.New("no audio source configured")

// Backend produces sound. Start begins playback of path at volume (0..1),
// replacing any playback in progress; Stop silences it.
type Backend interface {
	Start(path string, volume float64) error
	Stop() error
}

// VolumeSetter is implemented by backends that can change the volume of
// running playback in place. Backends without it are restarted at the new
// volume, which plays the track again from the top.
type VolumeSetter interface {
	SetVolume(volume float64) error
}

// Level is the volume indicator shown next to the mute control.
type Level int

const (
	LevelMuted Level = iota
	LevelLow
	LevelHigh
)

func (l Level) String() string {
	switch l {
	case LevelMuted:
		return "muted"
	case LevelLow:
		return "low"
	default:
		return "high"
	}
}

// State is a point-in-time view of the player.
type State struct {
	Playing bool
	Volume  float64
	Muted   bool
	Level   Level
}

// Controller holds play/pause, volume and mute state and keeps the backend
// in step with it. The backend only runs while playing, unmuted and above
// zero volume.
type Controller struct {
	mu      sync.Mutex
	backend Backend
	path    string
	playing bool
	volume  float64
	muted   bool
	running bool
}

// NewController returns a paused controller for the track at path.
func NewController(backend Backend, path string, volume float64, muted bool) *Controller {
	return &Controller{
		backend: backend,
		path:    path,
		volume:  clamp(volume),
		muted:   muted,
	}
}

// Play starts playback.
func (c *Controller) Play() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.path == "" || c.backend == nil {
		return ErrNoSource
	}
	c.playing = true
	return c.sync(false)
}

// Pause stops playback.
func (c *Controller) Pause() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.playing = false
	return c.sync(false)
}

// Toggle flips between playing and paused.
func (c *Controller) Toggle() error {
	c.mu.Lock()
	playing := c.playing
	c.mu.Unlock()

	if playing {
		return c.Pause()
	}
	return c.Play()
}

// SetVolume sets the volume, clamped to [0, 1]. Moving the volume unmutes.
func (c *Controller) SetVolume(v float64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	v = clamp(v)
	changed := v != c.volume || c.muted
	c.volume = v
	c.muted = false
	return c.sync(changed)
}

// AdjustVolume changes the volume by delta.
func (c *Controller) AdjustVolume(delta float64) error {
	c.mu.Lock()
	v := c.volume + delta
	c.mu.Unlock()
	return c.SetVolume(v)
}

// ToggleMute flips the mute flag.
func (c *Controller) ToggleMute() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.muted = !c.muted
	return c.sync(false)
}

// State returns the current player state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return State{
		Playing: c.playing,
		Volume:  c.volume,
		Muted:   c.muted,
		Level:   levelFor(c.volume, c.muted),
	}
}

// Close stops the backend.
func (c *Controller) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.playing = false
	return c.sync(false)
}

// sync starts or stops the backend to match the state. restart forces a
// running backend to pick up a new volume.
func (c *Controller) sync(restart bool) error {
	if c.backend == nil {
		return nil
	}
	want := c.playing && !c.muted && c.volume > 0
	switch {
	case want && c.running && restart:
		if vs, ok := c.backend.(VolumeSetter); ok {
			if err := vs.SetVolume(c.volume); err != nil {
				return fmt.Errorf("set playback volume: %w", err)
			}
			return nil
		}
		if err := c.backend.Start(c.path, c.volume); err != nil {
			c.running = false
			c.playing = false
			return fmt.Errorf("restart playback: %w", err)
		}
	case want && !c.running:
		if err := c.backend.Start(c.path, c.volume); err != nil {
			c.running = false
			c.playing = false
			return fmt.Errorf("start playback: %w", err)
		}
		c.running = true
	case !want && c.running:
		c.running = false
		if err := c.backend.Stop(); err != nil {
			return fmt.Errorf("stop playback: %w", err)
		}
	}
	return nil
}

func levelFor(volume float64, muted bool) Level {
	switch {
	case muted || volume == 0:
		return LevelMuted
	case volume < 0.5:
		return LevelLow
	default:
		return LevelHigh
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
