package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecodeOperands(t *testing.T) {
	in := Decode(0xd123)
	assert.Equal(t, DRW, in.Op)
	assert.Equal(t, byte(0x1), in.X)
	assert.Equal(t, byte(0x2), in.Y)
	assert.Equal(t, byte(0x3), in.N)
	assert.Equal(t, byte(0x23), in.NN)
	assert.Equal(t, uint16(0x123), in.NNN)
}

func TestDecode(t *testing.T) {
	for _, tt := range []struct {
		word uint16
		op   Op
	}{
		{0x0000, NOP},
		{0x00e0, CLS},
		{0x00ee, RET},
		{0x00e1, Invalid},
		{0x0123, Invalid},
		{0x1fff, JP},
		{0x2000, CALL},
		{0x3a42, SEB},
		{0x4a42, SNEB},
		{0x5ab0, SE},
		{0x5ab1, Invalid},
		{0x6a42, LDB},
		{0x7a42, ADDB},
		{0x8ab0, LD},
		{0x8ab1, OR},
		{0x8ab2, AND},
		{0x8ab3, XOR},
		{0x8ab4, ADD},
		{0x8ab5, SUB},
		{0x8ab6, SHR},
		{0x8ab7, SUBN},
		{0x8ab8, Invalid},
		{0x8abe, SHL},
		{0x8abf, Invalid},
		{0x9ab0, SNE},
		{0x9abf, Invalid},
		{0xa123, LDI},
		{0xb123, JPV0},
		{0xc1ff, RND},
		{0xd12f, DRW},
		{0xe19e, SKP},
		{0xe1a1, SKNP},
		{0xe000, Invalid},
		{0xf107, LDVDT},
		{0xf10a, LDK},
		{0xf115, LDDT},
		{0xf118, LDST},
		{0xf11e, ADDI},
		{0xf129, LDF},
		{0xf133, LDBCD},
		{0xf155, STM},
		{0xf165, LDM},
		{0xf0ff, Invalid},
	} {
		if g := Decode(tt.word).Op; g != tt.op {
			t.Errorf("Decode(%.4x) = %v, want %v", tt.word, g, tt.op)
		}
	}
}

// TestDecodeCoverage decodes every word and checks that each Op is
// reachable and that the number of valid words matches the instruction set.
func TestDecodeCoverage(t *testing.T) {
	var (
		seen  [numOps]int
		valid int
	)
	for w := 0; w <= 0xffff; w++ {
		op := Decode(uint16(w)).Op
		seen[op]++
		if op != Invalid {
			valid++
		}
	}
	for op := NOP; op < numOps; op++ {
		if seen[op] == 0 {
			t.Errorf("no word decodes to %v", op)
		}
	}
	assert.Equal(t, 43955, valid)
}

func TestOpString(t *testing.T) {
	names := map[string]Op{}
	for op := Invalid; op < numOps; op++ {
		s := op.String()
		if s == "" {
			t.Errorf("Op %d has no name", op)
		}
		if prev, ok := names[s]; ok {
			t.Errorf("Op %d and %d are both named %q", prev, op, s)
		}
		names[s] = op
	}
	assert.Equal(t, "???", Op(200).String())
	assert.Equal(t, "DRW Vx, Vy, n", DRW.String())
}
