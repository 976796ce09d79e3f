package main

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/nf/c8/host"
)

func TestNewConfig(t *testing.T) {
	cfg, err := newConfig("term", "", 20, 30, 4, 100, 0, true)
	assert.NoError(t, err)
	assert.Equal(t, host.Terminal, cfg.Frontend)
	assert.Equal(t, 20, cfg.TicksPerFrame)
	assert.Equal(t, 30, cfg.FrameRate)
	assert.Equal(t, 4, cfg.Scale)
	assert.Equal(t, 100, cfg.Frames)
	assert.True(t, cfg.Dev)
	assert.True(t, cfg.Random == nil)

	_, err = newConfig("sdl", "", 10, 60, 10, 0, 0, false)
	assert.ErrorContains(t, err, "unknown frontend")
	_, err = newConfig("gui", "abc", 10, 60, 10, 0, 0, false)
	assert.ErrorContains(t, err, "keymap")
	_, err = newConfig("gui", "", 0, 60, 10, 0, 0, false)
	assert.ErrorContains(t, err, "ticks per frame")
}

func TestNewConfigSeed(t *testing.T) {
	a, err := newConfig("headless", "", 10, 60, 10, 0, 42, false)
	assert.NoError(t, err)
	b, err := newConfig("headless", "", 10, 60, 10, 0, 42, false)
	assert.NoError(t, err)
	for i := 0; i < 16; i++ {
		assert.Equal(t, a.Random.Byte(), b.Random.Byte())
	}
}

func TestNewConfigKeys(t *testing.T) {
	cfg, err := newConfig("gui", "0123456789abcdef", 10, 60, 10, 0, 0, false)
	assert.NoError(t, err)
	k, ok := cfg.Keymap.Lookup('F')
	assert.True(t, ok)
	assert.Equal(t, byte(0xf), k)
}
