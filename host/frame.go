package host

import (
	"image"
	"sync"

	"golang.org/x/image/colornames"

	"github.com/nf/c8/chip8"
)

// Display colours for lit and unlit pixels.
var (
	colorOn  = colornames.White
	colorOff = colornames.Black
)

// frame is a published copy of the Machine's output.
type frame struct {
	seq    uint64
	screen chip8.Screen
	beeps  int    // sound timer expiries since the Runner started
	status string // empty while running normally
}

// frameBuffer passes frames from the emulation loop to a frontend.
// Frontends never touch the Machine.
type frameBuffer struct {
	mu sync.Mutex
	f  frame
}

// publish records the screen and whether the sound timer expired on this
// frame. The sequence number only changes if something did.
func (b *frameBuffer) publish(s *chip8.Screen, beep bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.f.screen == *s && !beep {
		return
	}
	b.f.screen = *s
	if beep {
		b.f.beeps++
	}
	b.f.seq++
}

func (b *frameBuffer) setStatus(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.f.status == s {
		return
	}
	b.f.status = s
	b.f.seq++
}

// snapshot returns the current frame and whether it differs from the
// frame numbered last.
func (b *frameBuffer) snapshot(last uint64) (frame, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.f, b.f.seq != last
}

// render draws s into m, one image pixel per display pixel.
func render(m *image.RGBA, s *chip8.Screen) {
	for y := 0; y < chip8.Height; y++ {
		for x := 0; x < chip8.Width; x++ {
			c := colorOff
			if s.Pixel(x, y) {
				c = colorOn
			}
			m.SetRGBA(x, y, c)
		}
	}
}
