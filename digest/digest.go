// Package digest provides the Spritz variable-length cryptographic hash.
//
// The requested digest size is absorbed into the state during finalization,
// so digests of different sizes over the same data are unrelated — a shorter
// digest is never a prefix of a longer one, and there is no length extension.
package digest

import (
	"hash"

	"github.com/codahale/spritz/internal/mem"
	"github.com/codahale/spritz/internal/sponge"
)

// Size is the digest size, in bytes, of the default hash.
const Size = 32

// MaxSize is the largest digest size New accepts. The construction permits
// anything the size byte can encode; callers wanting more output should
// derive it with a Cipher instead.
const MaxSize = 255

// New returns a new hash.Hash computing a Spritz digest of size bytes.
// New panics if size is negative or greater than MaxSize.
func New(size int) hash.Hash {
	if size < 0 || size > MaxSize {
		panic("digest: invalid digest size")
	}
	d := &digest{size: size}
	d.Reset()
	return d
}

type digest struct {
	st   sponge.State
	size int
}

func (d *digest) Write(p []byte) (n int, err error) {
	d.st.Absorb(p)
	return len(p), nil
}

func (d *digest) Sum(b []byte) []byte {
	// Finalize a copy so the caller can keep writing.
	st := d.st
	defer st.Wipe()

	st.AbsorbStop()
	st.AbsorbByte(byte(d.size))
	ret, out := mem.SliceForAppend(b, d.size)
	st.Squeeze(out)
	return ret
}

func (d *digest) Reset() {
	d.st.Initialize()
}

func (d *digest) Size() int {
	return d.size
}

func (d *digest) BlockSize() int {
	return 1 // the sponge absorbs byte by byte
}

// Sum returns the size-byte Spritz digest of data. It is literally New,
// Write, Sum; streaming and one-shot use always agree. The internal state is
// wiped before returning.
func Sum(data []byte, size int) []byte {
	d, _ := New(size).(*digest)
	defer d.st.Wipe()
	_, _ = d.Write(data)
	return d.Sum(nil)
}

var _ hash.Hash = (*digest)(nil)
