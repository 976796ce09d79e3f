package chip8

import "fmt"

// HaltError is returned by Tick if the instruction at Addr cannot be
// executed. Word is zero when the instruction could not be fetched.
type HaltError struct {
	HaltCode
	Word uint16
	Addr uint16
}

func (e HaltError) Error() string {
	switch {
	case e.HaltCode == OutOfBounds && e.Word == 0:
		return fmt.Sprintf("%s fetching at %.4x", e.HaltCode, e.Addr)
	case e.HaltCode == Unsupported:
		return fmt.Sprintf("%s %.4x at %.4x", e.HaltCode, e.Word, e.Addr)
	}
	return fmt.Sprintf("%s executing %s (%.4x) at %.4x",
		e.HaltCode, Decode(e.Word).Op, e.Word, e.Addr)
}

// Unwrap allows errors.Is(err, StackOverflow) and friends.
func (e HaltError) Unwrap() error { return e.HaltCode }

// HaltCode signifies the type of condition that halted execution.
type HaltCode byte

const (
	OutOfBounds HaltCode = iota + 1
	StackOverflow
	StackUnderflow
	Unsupported
	KeyOutOfRange
)

func (c HaltCode) String() string {
	if s, ok := map[HaltCode]string{
		OutOfBounds:    "memory access out of bounds",
		StackOverflow:  "stack overflow",
		StackUnderflow: "stack underflow",
		Unsupported:    "unsupported instruction",
		KeyOutOfRange:  "key out of range",
	}[c]; ok {
		return s
	}
	return fmt.Sprintf("unknown (%.2x)", byte(c))
}

func (c HaltCode) Error() string { return c.String() }
