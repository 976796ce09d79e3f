package host

import (
	"testing"
	"time"

	"github.com/retroenv/retrogolib/assert"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 10, cfg.TicksPerFrame)
	assert.Equal(t, 60, cfg.FrameRate)
	assert.Equal(t, GUI, cfg.Frontend)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		err    string
	}{
		{"zero ticks", func(c *Config) { c.TicksPerFrame = 0 }, "ticks per frame"},
		{"negative rate", func(c *Config) { c.FrameRate = -1 }, "frame rate"},
		{"zero scale", func(c *Config) { c.Scale = 0 }, "scale"},
		{"negative frames", func(c *Config) { c.Frames = -1 }, "frame limit"},
		{"no hold", func(c *Config) { c.KeyHold = 0 }, "key hold"},
		{"no keymap", func(c *Config) { c.Keymap = nil }, "keymap"},
		{"bad frontend", func(c *Config) { c.Frontend = 7 }, "frontend"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			assert.ErrorContains(t, cfg.Validate(), tt.err)
		})
	}

	cfg := DefaultConfig()
	cfg.Frames = 100
	cfg.KeyHold = time.Second
	assert.NoError(t, cfg.Validate())
}

func TestParseFrontend(t *testing.T) {
	for _, f := range []Frontend{GUI, Terminal, Headless} {
		got, err := ParseFrontend(f.String())
		assert.NoError(t, err)
		assert.Equal(t, f, got)
	}
	_, err := ParseFrontend("sdl")
	assert.ErrorContains(t, err, "unknown frontend")
	assert.Equal(t, "Frontend(9)", Frontend(9).String())
}
