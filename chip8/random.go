package chip8

import "math/rand/v2"

// RandomSource provides the bytes returned by the RND instruction.
type RandomSource interface {
	Byte() byte
}

// RandomFunc adapts a function to a RandomSource.
type RandomFunc func() byte

func (f RandomFunc) Byte() byte { return f() }

type defaultRandom struct{}

func (defaultRandom) Byte() byte { return byte(rand.Uint32()) }
