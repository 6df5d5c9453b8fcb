// Package spritz implements the Spritz construction of [Rivest & Schuldt]: a
// sponge-like permutation over a 256-byte state which provides, from a single
// core, a stream cipher with optional nonce, a variable-length cryptographic
// hash (the digest subpackage), and a message authentication code (the mac
// subpackage). It targets resource-constrained deployments — the state lives
// inline in the context value, keystream generation and encryption on an
// existing Cipher allocate nothing, and the one data-dependent branch in the
// core (the crush step) is compiled branch-free by default. The constructors
// (NewCipher, digest.New, mac.New) and the returned digests and tags are
// heap-allocated.
//
// Spritz is not a standardized primitive and has received far less
// cryptanalysis than stream ciphers in widespread use; treat this package as
// a Spritz reference, not a general-purpose cryptographic toolkit.
//
// The S-box is indexed by secret data, so memory access patterns are not
// constant. This is inherent to Spritz and cannot be designed away; the
// intended targets are small microcontrollers without data caches, where
// instruction timing is the only observable channel.
//
// [Rivest & Schuldt]: https://people.csail.mit.edu/rivest/pubs/RS14.pdf
package spritz

import (
	"crypto/cipher"
	"encoding/binary"
	"io"

	"github.com/codahale/spritz/internal/mem"
	"github.com/codahale/spritz/internal/sponge"
)

// MaxKeyLen is the longest key NewCipher accepts. The mac package is not
// bound by it.
const MaxKeyLen = 255

// MaxNonceLen is the longest nonce NewCipherWithNonce accepts.
const MaxNonceLen = 255

// A Cipher is a keyed Spritz state usable as a stream cipher or as a
// deterministic random byte generator. It implements cipher.Stream and
// io.Reader.
//
// Cipher instances are not concurrent-safe.
type Cipher struct {
	st sponge.State
}

// NewCipher returns a Cipher keyed with the given key.
//
// Reusing a key across messages reuses the keystream; unless a key is
// strictly single-use, use NewCipherWithNonce instead. NewCipher panics if
// the key is longer than MaxKeyLen bytes.
func NewCipher(key []byte) *Cipher {
	if len(key) > MaxKeyLen {
		panic("spritz: key too long")
	}
	var c Cipher
	c.st.Initialize()
	c.st.Absorb(key)
	return &c
}

// NewCipherWithNonce returns a Cipher keyed with the given key and nonce. The
// nonce is separated from the key with a stop symbol, so distinct key/nonce
// splits of the same concatenation yield unrelated keystreams.
//
// NewCipherWithNonce panics if the key is longer than MaxKeyLen bytes or the
// nonce is longer than MaxNonceLen bytes.
func NewCipherWithNonce(key, nonce []byte) *Cipher {
	if len(nonce) > MaxNonceLen {
		panic("spritz: nonce too long")
	}
	c := NewCipher(key)
	c.st.AbsorbStop()
	c.st.Absorb(nonce)
	return c
}

// AddEntropy mixes b into the cipher's state without resetting it. It can be
// used to fold fresh entropy into a long-lived generator.
func (c *Cipher) AddEntropy(b []byte) {
	c.st.Absorb(b)
}

// RandByte returns one keystream byte.
func (c *Cipher) RandByte() byte {
	return c.st.Drip()
}

// RandUint32 returns four keystream bytes assembled big-endian. The byte
// order is fixed for test-vector stability.
func (c *Cipher) RandUint32() uint32 {
	var b [4]byte
	c.st.Squeeze(b[:])
	v := binary.BigEndian.Uint32(b[:])
	mem.Zero(b[:])
	return v
}

// RandUint32n returns a uniformly distributed value in [0, upper) via
// rejection sampling; raw keystream words are never reduced mod upper, which
// would bias small residues. The expected number of draws is below two. If
// upper is 0 or 1, RandUint32n returns 0 without consuming keystream.
func (c *Cipher) RandUint32n(upper uint32) uint32 {
	if upper < 2 {
		return 0
	}
	// Reject draws below 2^32 mod upper; the 2^32 - lo survivors are a whole
	// multiple of upper, so every residue is equally likely.
	lo := -upper % upper
	r := c.RandUint32()
	for r < lo {
		r = c.RandUint32()
	}
	return r % upper
}

// XORKeyStream XORs src with the keystream into dst. Encryption and
// decryption are the same operation; dst and src may be the same slice.
//
// XORKeyStream panics if dst is shorter than src.
func (c *Cipher) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("spritz: output smaller than input")
	}

	var ks [64]byte
	for len(src) > 0 {
		n := min(len(src), len(ks))
		c.st.Squeeze(ks[:n])
		mem.XOR(dst[:n], src[:n], ks[:n])
		dst = dst[n:]
		src = src[n:]
	}
	mem.Zero(ks[:])
}

// Read fills p with keystream bytes. It never fails, so a keyed-and-nonced
// Cipher can stand in anywhere an io.Reader entropy source is expected.
func (c *Cipher) Read(p []byte) (n int, err error) {
	c.st.Squeeze(p)
	return len(p), nil
}

// Wipe zeroes the cipher's entire state, including the S-box. The Cipher is
// unusable afterwards.
func (c *Cipher) Wipe() {
	c.st.Wipe()
}

// Equal reports whether a and b have the same contents, in time that depends
// only on their lengths. Use it to compare MACs or other secret-derived
// buffers; it never short-circuits on the first mismatch.
func Equal(a, b []byte) bool {
	return mem.Equal(a, b)
}

// Wipe overwrites b with zeros in a way the compiler cannot elide. Use it to
// scrub keys and plaintext from caller-owned buffers.
func Wipe(b []byte) {
	mem.Zero(b)
}

var (
	_ cipher.Stream = (*Cipher)(nil)
	_ io.Reader     = (*Cipher)(nil)
)
