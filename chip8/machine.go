// Package chip8 provides an implementation of a CHIP-8 virtual machine,
// called Machine, that can be used to execute CHIP-8 programs.
//
// The Machine does no pacing of its own. A host calls Tick once per
// instruction, TickTimers at 60Hz, and KeyPress whenever input changes.
package chip8

import (
	"errors"
	"fmt"
)

const (
	Width  = 64 // display width in pixels
	Height = 32 // display height in pixels

	MemSize   = 0x1000 // addressable memory in bytes
	LoadAddr  = 0x200  // where programs are loaded and execution begins
	StackSize = 16     // maximum depth of nested subroutine calls
	NumKeys   = 16     // keys on the hexadecimal keypad

	numRegs = 16
	flagReg = 0xf // VF, written by arithmetic, shift and draw operations
)

// Screen is the monochrome display, one bool per pixel in row-major order.
type Screen [Width * Height]bool

// Pixel reports whether the pixel at x, y is set.
func (s *Screen) Pixel(x, y int) bool { return s[y*Width+x] }

// Machine is an implementation of a CHIP-8 CPU with its memory, display,
// keypad and timers. It is not safe for concurrent use.
type Machine struct {
	mem    [MemSize]byte
	pc     uint16
	v      [numRegs]byte
	i      uint16
	stack  [StackSize]uint16
	sp     int
	screen Screen
	keys   [NumKeys]bool
	delay  byte
	sound  byte

	rand RandomSource
}

// Option configures a Machine created by New.
type Option func(*Machine)

// WithRandom sets the source of the random bytes used by RND.
// A nil source leaves the default in place.
func WithRandom(r RandomSource) Option {
	return func(m *Machine) {
		if r != nil {
			m.rand = r
		}
	}
}

// New returns a Machine with the glyph table loaded and the program
// counter at LoadAddr. All other state is zero.
func New(opts ...Option) *Machine {
	m := &Machine{rand: defaultRandom{}}
	for _, o := range opts {
		o(m)
	}
	m.Reset()
	return m
}

var (
	ErrImageTooLarge = errors.New("program image too large")
	ErrKeyOutOfRange = errors.New("key out of range")
)

// Load copies rom into memory at LoadAddr. Nothing is copied if rom does
// not fit below MemSize.
func (m *Machine) Load(rom []byte) error {
	if n, limit := len(rom), MemSize-LoadAddr; n > limit {
		return fmt.Errorf("%w: %d bytes, at most %d fit", ErrImageTooLarge, n, limit)
	}
	copy(m.mem[LoadAddr:], rom)
	return nil
}

// Reset returns the Machine to the state produced by New, discarding any
// loaded program. The random source is kept.
func (m *Machine) Reset() {
	*m = Machine{pc: LoadAddr, rand: m.rand}
	copy(m.mem[:], font[:])
}

// Display returns a copy of the current pixel grid.
func (m *Machine) Display() Screen { return m.screen }

// KeyPress sets the pressed state of key, which must be in [0, NumKeys).
func (m *Machine) KeyPress(key int, pressed bool) error {
	if key < 0 || key >= NumKeys {
		return fmt.Errorf("%w: %d", ErrKeyOutOfRange, key)
	}
	m.keys[key] = pressed
	return nil
}

// Tick fetches, decodes and executes the instruction at the program
// counter. It returns a HaltError if the instruction cannot be executed,
// in which case the Machine is left as it was before the call.
func (m *Machine) Tick() (err error) {
	var (
		addr = m.pc
		word uint16
	)
	defer func() {
		if e := recover(); e != nil {
			code, ok := e.(HaltCode)
			if !ok {
				panic(e)
			}
			m.pc = addr
			err = HaltError{HaltCode: code, Word: word, Addr: addr}
		}
	}()

	word = m.fetch()
	m.exec(Decode(word))
	return nil
}

// TickTimers decrements the delay and sound timers, stopping at zero.
// It reports whether the sound timer expired on this tick, which is when
// the host should sound its tone.
func (m *Machine) TickTimers() (beep bool) {
	if m.delay > 0 {
		m.delay--
	}
	if m.sound > 0 {
		beep = m.sound == 1
		m.sound--
	}
	return beep
}

// PC returns the address of the next instruction.
func (m *Machine) PC() uint16 { return m.pc }

// Index returns the I register.
func (m *Machine) Index() uint16 { return m.i }

// Register returns Vr. Only the low four bits of r are used, so
// Register(0x1a) is VA.
func (m *Machine) Register(r int) byte { return m.v[r&0xf] }

// StackDepth returns the number of return addresses on the stack.
func (m *Machine) StackDepth() int { return m.sp }

// DelayTimer returns the current value of the delay timer.
func (m *Machine) DelayTimer() byte { return m.delay }

// SoundTimer returns the current value of the sound timer. A tone sounds
// while it is non-zero.
func (m *Machine) SoundTimer() byte { return m.sound }

func (m *Machine) fetch() uint16 {
	if int(m.pc)+1 >= MemSize {
		panic(OutOfBounds)
	}
	w := short(m.mem[m.pc], m.mem[m.pc+1])
	m.pc += 2
	return w
}

// span returns n bytes of memory starting at addr.
func (m *Machine) span(addr uint16, n int) []byte {
	if int(addr)+n > MemSize {
		panic(OutOfBounds)
	}
	return m.mem[int(addr) : int(addr)+n]
}

func (m *Machine) push(addr uint16) {
	if m.sp == StackSize {
		panic(StackOverflow)
	}
	m.stack[m.sp] = addr
	m.sp++
}

func (m *Machine) pop() uint16 {
	if m.sp == 0 {
		panic(StackUnderflow)
	}
	m.sp--
	return m.stack[m.sp]
}

func short(hi, lo byte) uint16 {
	return uint16(hi)<<8 | uint16(lo)
}
