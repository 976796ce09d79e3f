package chip8

// Op identifies one of the CHIP-8 instructions.
type Op byte

const (
	Invalid Op = iota

	NOP   // 0000
	CLS   // 00E0
	RET   // 00EE
	JP    // 1NNN
	CALL  // 2NNN
	SEB   // 3XNN
	SNEB  // 4XNN
	SE    // 5XY0
	LDB   // 6XNN
	ADDB  // 7XNN
	LD    // 8XY0
	OR    // 8XY1
	AND   // 8XY2
	XOR   // 8XY3
	ADD   // 8XY4
	SUB   // 8XY5
	SHR   // 8XY6
	SUBN  // 8XY7
	SHL   // 8XYE
	SNE   // 9XY0
	LDI   // ANNN
	JPV0  // BNNN
	RND   // CXNN
	DRW   // DXYN
	SKP   // EX9E
	SKNP  // EXA1
	LDVDT // FX07
	LDK   // FX0A
	LDDT  // FX15
	LDST  // FX18
	ADDI  // FX1E
	LDF   // FX29
	LDBCD // FX33
	STM   // FX55
	LDM   // FX65

	numOps
)

var opStrings = [numOps]string{
	Invalid: "???",
	NOP:     "NOP",
	CLS:     "CLS",
	RET:     "RET",
	JP:      "JP addr",
	CALL:    "CALL addr",
	SEB:     "SE Vx, byte",
	SNEB:    "SNE Vx, byte",
	SE:      "SE Vx, Vy",
	LDB:     "LD Vx, byte",
	ADDB:    "ADD Vx, byte",
	LD:      "LD Vx, Vy",
	OR:      "OR Vx, Vy",
	AND:     "AND Vx, Vy",
	XOR:     "XOR Vx, Vy",
	ADD:     "ADD Vx, Vy",
	SUB:     "SUB Vx, Vy",
	SHR:     "SHR Vx",
	SUBN:    "SUBN Vx, Vy",
	SHL:     "SHL Vx",
	SNE:     "SNE Vx, Vy",
	LDI:     "LD I, addr",
	JPV0:    "JP V0, addr",
	RND:     "RND Vx, byte",
	DRW:     "DRW Vx, Vy, n",
	SKP:     "SKP Vx",
	SKNP:    "SKNP Vx",
	LDVDT:   "LD Vx, DT",
	LDK:     "LD Vx, K",
	LDDT:    "LD DT, Vx",
	LDST:    "LD ST, Vx",
	ADDI:    "ADD I, Vx",
	LDF:     "LD F, Vx",
	LDBCD:   "LD B, Vx",
	STM:     "LD [I], Vx",
	LDM:     "LD Vx, [I]",
}

func (o Op) String() string {
	if o >= numOps {
		return opStrings[Invalid]
	}
	return opStrings[o]
}

// Instr is a decoded instruction word. Only the operand fields used by Op
// are meaningful.
type Instr struct {
	Op  Op
	X   byte   // register, second nibble
	Y   byte   // register, third nibble
	N   byte   // fourth nibble
	NN  byte   // low byte
	NNN uint16 // low 12 bits
}

// Decode splits w into its nibbles and identifies the instruction.
// Words that match no instruction decode with Op set to Invalid.
func Decode(w uint16) Instr {
	in := Instr{
		X:   byte(w>>8) & 0xf,
		Y:   byte(w>>4) & 0xf,
		N:   byte(w) & 0xf,
		NN:  byte(w),
		NNN: w & 0x0fff,
	}
	switch w >> 12 {
	case 0x0:
		switch w {
		case 0x0000:
			in.Op = NOP
		case 0x00e0:
			in.Op = CLS
		case 0x00ee:
			in.Op = RET
		}
	case 0x1:
		in.Op = JP
	case 0x2:
		in.Op = CALL
	case 0x3:
		in.Op = SEB
	case 0x4:
		in.Op = SNEB
	case 0x5:
		if in.N == 0 {
			in.Op = SE
		}
	case 0x6:
		in.Op = LDB
	case 0x7:
		in.Op = ADDB
	case 0x8:
		switch in.N {
		case 0x0:
			in.Op = LD
		case 0x1:
			in.Op = OR
		case 0x2:
			in.Op = AND
		case 0x3:
			in.Op = XOR
		case 0x4:
			in.Op = ADD
		case 0x5:
			in.Op = SUB
		case 0x6:
			in.Op = SHR
		case 0x7:
			in.Op = SUBN
		case 0xe:
			in.Op = SHL
		}
	case 0x9:
		if in.N == 0 {
			in.Op = SNE
		}
	case 0xa:
		in.Op = LDI
	case 0xb:
		in.Op = JPV0
	case 0xc:
		in.Op = RND
	case 0xd:
		in.Op = DRW
	case 0xe:
		switch in.NN {
		case 0x9e:
			in.Op = SKP
		case 0xa1:
			in.Op = SKNP
		}
	case 0xf:
		switch in.NN {
		case 0x07:
			in.Op = LDVDT
		case 0x0a:
			in.Op = LDK
		case 0x15:
			in.Op = LDDT
		case 0x18:
			in.Op = LDST
		case 0x1e:
			in.Op = ADDI
		case 0x29:
			in.Op = LDF
		case 0x33:
			in.Op = LDBCD
		case 0x55:
			in.Op = STM
		case 0x65:
			in.Op = LDM
		}
	}
	return in
}
