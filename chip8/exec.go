package chip8

// exec carries out a decoded instruction. The program counter has already
// been advanced past it. Conditions that halt execution are raised by
// panicking with a HaltCode, which Tick recovers; every such check happens
// before the instruction changes any state.
func (m *Machine) exec(in Instr) {
	var (
		vx = &m.v[in.X]
		vy = m.v[in.Y]
	)
	switch in.Op {
	case NOP:
	case CLS:
		m.screen = Screen{}
	case RET:
		m.pc = m.pop()
	case JP:
		m.pc = in.NNN
	case CALL:
		m.push(m.pc)
		m.pc = in.NNN
	case SEB:
		m.skipIf(*vx == in.NN)
	case SNEB:
		m.skipIf(*vx != in.NN)
	case SE:
		m.skipIf(*vx == vy)
	case SNE:
		m.skipIf(*vx != vy)
	case LDB:
		*vx = in.NN
	case ADDB:
		*vx += in.NN
	case LD:
		*vx = vy
	case OR:
		*vx |= vy
	case AND:
		*vx &= vy
	case XOR:
		*vx ^= vy
	case ADD:
		sum := uint16(*vx) + uint16(vy)
		*vx = byte(sum)
		m.setFlag(sum > 0xff)
	case SUB:
		a := *vx
		*vx = a - vy
		m.setFlag(a >= vy) // 1 means no borrow
	case SUBN:
		a := *vx
		*vx = vy - a
		m.setFlag(vy >= a)
	case SHR:
		a := *vx
		*vx = a >> 1
		m.v[flagReg] = a & 0x01
	case SHL:
		a := *vx
		*vx = a << 1
		m.v[flagReg] = a >> 7
	case LDI:
		m.i = in.NNN
	case JPV0:
		m.pc = in.NNN + uint16(m.v[0])
	case RND:
		*vx = m.rand.Byte() & in.NN
	case DRW:
		m.draw(*vx, vy, in.N)
	case SKP:
		m.skipIf(m.key(*vx))
	case SKNP:
		m.skipIf(!m.key(*vx))
	case LDVDT:
		*vx = m.delay
	case LDK:
		k, ok := m.pressedKey()
		if !ok {
			m.pc -= 2 // wait: run this instruction again next tick
			return
		}
		*vx = k
	case LDDT:
		m.delay = *vx
	case LDST:
		m.sound = *vx
	case ADDI:
		m.i += uint16(*vx)
	case LDF:
		m.i = uint16(*vx) * glyphSize
	case LDBCD:
		b := m.span(m.i, 3)
		b[0] = *vx / 100
		b[1] = *vx / 10 % 10
		b[2] = *vx % 10
	case STM:
		copy(m.span(m.i, int(in.X)+1), m.v[:in.X+1])
	case LDM:
		copy(m.v[:in.X+1], m.span(m.i, int(in.X)+1))
	default:
		panic(Unsupported)
	}
}

func (m *Machine) skipIf(cond bool) {
	if cond {
		m.pc += 2
	}
}

func (m *Machine) setFlag(set bool) {
	if set {
		m.v[flagReg] = 1
	} else {
		m.v[flagReg] = 0
	}
}

func (m *Machine) key(k byte) bool {
	if int(k) >= NumKeys {
		panic(KeyOutOfRange)
	}
	return m.keys[k]
}

func (m *Machine) pressedKey() (byte, bool) {
	for k, down := range m.keys {
		if down {
			return byte(k), true
		}
	}
	return 0, false
}

// draw XORs an n-row sprite from memory at I onto the screen at x, y.
// The origin and every pixel wrap around the screen edges. VF is set if
// any pixel is turned off.
func (m *Machine) draw(x, y, n byte) {
	var (
		sprite = m.span(m.i, int(n))
		x0     = int(x) % Width
		y0     = int(y) % Height
		erased bool
	)
	for row, bits := range sprite {
		py := (y0 + row) % Height
		for col := 0; col < 8; col++ {
			if bits&(0x80>>col) == 0 {
				continue
			}
			p := &m.screen[py*Width+(x0+col)%Width]
			erased = erased || *p
			*p = !*p
		}
	}
	m.setFlag(erased)
}
