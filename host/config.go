// Package host runs a CHIP-8 Machine at a steady frame rate and connects
// it to a window, a terminal, or nothing at all.
package host

import (
	"errors"
	"fmt"
	"time"

	"github.com/nf/c8/chip8"
)

// Frontend selects how a Runner presents the display and collects input.
type Frontend int

const (
	GUI      Frontend = iota // shiny window
	Terminal                 // tview application on the controlling terminal
	Headless                 // no input or output
)

var frontendNames = map[Frontend]string{
	GUI:      "gui",
	Terminal: "term",
	Headless: "headless",
}

func (f Frontend) String() string {
	if s, ok := frontendNames[f]; ok {
		return s
	}
	return fmt.Sprintf("Frontend(%d)", int(f))
}

// ParseFrontend returns the Frontend named s: gui, term or headless.
func ParseFrontend(s string) (Frontend, error) {
	for f, name := range frontendNames {
		if s == name {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown frontend %q (want gui, term or headless)", s)
}

// Config controls a Runner.
type Config struct {
	Frontend      Frontend
	TicksPerFrame int           // instructions executed per frame
	FrameRate     int           // frames, and timer ticks, per second
	Scale         int           // window pixels per display pixel
	Keymap        Keymap        // host key to CHIP-8 key
	KeyHold       time.Duration // how long a terminal key press is held down
	Dev           bool          // on a fault, wait for Swap instead of returning
	Frames        int           // stop after this many frames; 0 runs until stopped

	// Random is the Machine's random source. If nil the Machine's
	// default is used.
	Random chip8.RandomSource
}

// DefaultConfig returns the settings used when no flags are given.
func DefaultConfig() Config {
	return Config{
		Frontend:      GUI,
		TicksPerFrame: 10,
		FrameRate:     60,
		Scale:         10,
		Keymap:        DefaultKeymap(),
		KeyHold:       150 * time.Millisecond,
	}
}

// Validate reports the first setting in c that a Runner cannot use.
func (c Config) Validate() error {
	switch {
	case c.TicksPerFrame <= 0:
		return fmt.Errorf("ticks per frame must be positive, got %d", c.TicksPerFrame)
	case c.FrameRate <= 0:
		return fmt.Errorf("frame rate must be positive, got %d", c.FrameRate)
	case c.Scale <= 0:
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	case c.Frames < 0:
		return fmt.Errorf("frame limit must not be negative, got %d", c.Frames)
	case c.KeyHold <= 0:
		return fmt.Errorf("key hold must be positive, got %v", c.KeyHold)
	case c.Keymap == nil:
		return errors.New("no keymap")
	}
	if _, ok := frontendNames[c.Frontend]; !ok {
		return fmt.Errorf("unknown frontend %v", c.Frontend)
	}
	return nil
}
