// Package mac provides the Spritz message authentication code.
//
// The key is separated from the message, and the message from the requested
// tag size, with stop symbols, so neither boundary can be shifted without
// changing the tag. Compare tags with spritz.Equal, never with bytes.Equal.
package mac

import (
	"hash"

	"github.com/codahale/spritz/internal/mem"
	"github.com/codahale/spritz/internal/sponge"
)

// Size is the tag size, in bytes, of the default MAC.
const Size = 32

// MaxSize is the largest tag size New accepts.
const MaxSize = 255

// New returns a new hash.Hash computing a size-byte Spritz MAC under the
// given key. Keys of any length are absorbed in full, never truncated.
// New panics if size is negative or greater than MaxSize.
func New(key []byte, size int) hash.Hash {
	if size < 0 || size > MaxSize {
		panic("mac: invalid tag size")
	}
	m := &mac{size: size}
	m.keyed.Initialize()
	m.keyed.Absorb(key)
	m.keyed.AbsorbStop()
	m.st = m.keyed
	return m
}

type mac struct {
	st    sponge.State
	keyed sponge.State // post-key snapshot, restored by Reset
	size  int
}

func (m *mac) Write(p []byte) (n int, err error) {
	m.st.Absorb(p)
	return len(p), nil
}

func (m *mac) Sum(b []byte) []byte {
	// Finalize a copy so the caller can keep writing.
	st := m.st
	defer st.Wipe()

	st.AbsorbStop()
	st.AbsorbByte(byte(m.size))
	ret, out := mem.SliceForAppend(b, m.size)
	st.Squeeze(out)
	return ret
}

// Reset restores the state to the post-key snapshot taken by New. The raw
// key is not retained.
func (m *mac) Reset() {
	m.st = m.keyed
}

func (m *mac) Size() int {
	return m.size
}

func (m *mac) BlockSize() int {
	return 1
}

func (m *mac) wipe() {
	m.st.Wipe()
	m.keyed.Wipe()
}

// Sum returns the size-byte Spritz MAC of msg under key. It is literally
// New, Write, Sum; streaming and one-shot use always agree. The internal
// states are wiped before returning.
func Sum(msg, key []byte, size int) []byte {
	m, _ := New(key, size).(*mac)
	defer m.wipe()
	_, _ = m.Write(msg)
	return m.Sum(nil)
}

var _ hash.Hash = (*mac)(nil)
