package host

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/nf/c8/chip8"
)

// Keymap maps host keys, by the rune they type, to CHIP-8 keys.
type Keymap map[rune]byte

// defaultLayout lists the host key for each CHIP-8 key 0 through F.
// It places the hexadecimal keypad
//
//	1 2 3 C
//	4 5 6 D
//	7 8 9 E
//	A 0 B F
//
// on the left-hand block of a QWERTY keyboard.
const defaultLayout = "x123qweasdzc4rfv"

// DefaultKeymap returns the conventional QWERTY layout.
func DefaultKeymap() Keymap {
	k, err := ParseKeymap(defaultLayout)
	if err != nil {
		panic(err)
	}
	return k
}

// ParseKeymap returns a Keymap from a string of exactly 16 distinct runes,
// the host keys for CHIP-8 keys 0 through F in order. Letters are
// matched without regard to case.
func ParseKeymap(s string) (Keymap, error) {
	if n := utf8.RuneCountInString(s); n != chip8.NumKeys {
		return nil, fmt.Errorf("keymap %q has %d keys, want %d", s, n, chip8.NumKeys)
	}
	k := make(Keymap, chip8.NumKeys)
	var key byte
	for _, r := range s {
		r = unicode.ToLower(r)
		if prev, ok := k[r]; ok {
			return nil, fmt.Errorf("keymap %q maps %q to both %X and %X", s, r, prev, key)
		}
		k[r] = key
		key++
	}
	return k, nil
}

// Lookup returns the CHIP-8 key for the host key r.
func (k Keymap) Lookup(r rune) (byte, bool) {
	key, ok := k[unicode.ToLower(r)]
	return key, ok
}
