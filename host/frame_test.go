package host

import (
	"image"
	"testing"

	"github.com/retroenv/retrogolib/assert"

	"github.com/nf/c8/chip8"
)

func TestFrameBuffer(t *testing.T) {
	var b frameBuffer
	_, changed := b.snapshot(0)
	assert.False(t, changed)

	var s chip8.Screen
	b.publish(&s, false)
	f, changed := b.snapshot(0)
	assert.False(t, changed)

	s[0] = true
	b.publish(&s, false)
	f, changed = b.snapshot(f.seq)
	assert.True(t, changed)
	assert.True(t, f.screen.Pixel(0, 0))
	seq := f.seq

	b.publish(&s, false)
	_, changed = b.snapshot(seq)
	assert.False(t, changed)

	b.publish(&s, true)
	f, changed = b.snapshot(seq)
	assert.True(t, changed)
	assert.Equal(t, 1, f.beeps)
	seq = f.seq

	b.setStatus("halted")
	f, changed = b.snapshot(seq)
	assert.True(t, changed)
	assert.Equal(t, "halted", f.status)
	seq = f.seq

	b.setStatus("halted")
	_, changed = b.snapshot(seq)
	assert.False(t, changed)
}

func TestRender(t *testing.T) {
	var s chip8.Screen
	s[1*chip8.Width+2] = true
	m := image.NewRGBA(image.Rect(0, 0, chip8.Width, chip8.Height))
	render(m, &s)
	assert.Equal(t, colorOn, m.RGBAAt(2, 1))
	assert.Equal(t, colorOff, m.RGBAAt(0, 0))
	assert.Equal(t, colorOff, m.RGBAAt(chip8.Width-1, chip8.Height-1))
}
