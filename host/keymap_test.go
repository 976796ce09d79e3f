package host

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDefaultKeymap(t *testing.T) {
	k := DefaultKeymap()
	assert.Equal(t, 16, len(k))
	for _, tt := range []struct {
		r   rune
		key byte
	}{
		{'1', 0x1}, {'2', 0x2}, {'3', 0x3}, {'4', 0xc},
		{'q', 0x4}, {'w', 0x5}, {'e', 0x6}, {'r', 0xd},
		{'a', 0x7}, {'s', 0x8}, {'d', 0x9}, {'f', 0xe},
		{'z', 0xa}, {'x', 0x0}, {'c', 0xb}, {'v', 0xf},
		{'Q', 0x4}, {'V', 0xf},
	} {
		key, ok := k.Lookup(tt.r)
		if !ok || key != tt.key {
			t.Errorf("Lookup(%q) = %X, %v, want %X, true", tt.r, key, ok, tt.key)
		}
	}
	_, ok := k.Lookup('p')
	assert.False(t, ok)
}

func TestParseKeymap(t *testing.T) {
	k, err := ParseKeymap("0123456789ABCDEF")
	assert.NoError(t, err)
	key, ok := k.Lookup('b')
	assert.True(t, ok)
	assert.Equal(t, byte(0xb), key)
	key, ok = k.Lookup('7')
	assert.True(t, ok)
	assert.Equal(t, byte(7), key)

	_, err = ParseKeymap("0123456789abcde")
	assert.ErrorContains(t, err, "has 15 keys")
	_, err = ParseKeymap("0123456789abcdeA")
	assert.ErrorContains(t, err, "maps")
	_, err = ParseKeymap("")
	assert.Error(t, err)

	// Runes are counted, not bytes.
	_, err = ParseKeymap("0123456789abcdeé")
	assert.NoError(t, err)
}
