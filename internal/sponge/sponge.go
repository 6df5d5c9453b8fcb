// Package sponge implements the Spritz permutation and its sponge
// drivers, as specified in Rivest and Schuldt's "Spritz — a spongy
// RC4-like stream cipher and hash function" (2014). It is the core
// shared by the cipher, digest, and MAC surfaces; nothing here applies
// padding, framing, or domain separation beyond AbsorbStop.
package sponge

import "github.com/codahale/spritz/internal/mem"

// stateSize is the size of the S-box. All register arithmetic is mod
// stateSize, which an 8-bit register provides by natural wraparound.
const stateSize = 256

// A State is a Spritz state: a byte permutation plus six registers. The
// zero value is not usable; call Initialize first. States are plain
// values and may be copied to snapshot a computation.
type State struct {
	s                [stateSize]byte
	i, j, k, z, a, w byte
}

// Initialize sets the S-box to the identity permutation and the
// registers to their standard starting values.
func (st *State) Initialize() {
	for i := range st.s {
		st.s[i] = byte(i)
	}
	st.i, st.j, st.k, st.z, st.a = 0, 0, 0, 0, 0
	st.w = 1
}

// update advances the registers and swaps one S-box pair, r times. The
// registers are kept in locals across the loop; the compiler generates
// much better code for the hot path that way.
func (st *State) update(r int) {
	i, j, k, w := st.i, st.j, st.k, st.w
	for ; r > 0; r-- {
		i += w
		si := st.s[i]
		j = k + st.s[j+si]
		sj := st.s[j]
		k = i + k + sj
		st.s[i] = sj
		st.s[j] = si
	}
	st.i, st.j, st.k = i, j, k
}

// whip runs 2*stateSize update steps and bumps the stride. w starts at
// 1 and only ever grows by 2, so it stays odd and therefore coprime to
// stateSize: every update pass visits every S-box index.
func (st *State) whip() {
	st.update(2 * stateSize)
	st.w += 2
}

// Shuffle is the expensive reseeding step: three whips interleaved with
// two crushes. It runs whenever the nibble counter fills and at every
// absorb/squeeze phase boundary.
func (st *State) Shuffle() {
	st.whip()
	st.crush()
	st.whip()
	st.crush()
	st.whip()
	st.a = 0
}

func (st *State) absorbNibble(x byte) {
	if st.a == stateSize/2 {
		st.Shuffle()
	}
	st.s[st.a], st.s[stateSize/2+x] = st.s[stateSize/2+x], st.s[st.a]
	st.a++
}

// AbsorbByte mixes a single byte into the state, low nibble first.
func (st *State) AbsorbByte(b byte) {
	st.absorbNibble(b & 0x0F)
	st.absorbNibble(b >> 4)
}

// Absorb mixes b into the state. Multiple Absorb calls are equivalent
// to a single Absorb of the concatenated inputs.
func (st *State) Absorb(b []byte) {
	for _, v := range b {
		st.AbsorbByte(v)
	}
}

// AbsorbStop absorbs the out-of-alphabet stop symbol, separating two
// adjacent inputs so that different splits of the same concatenation
// cannot collide.
func (st *State) AbsorbStop() {
	if st.a == stateSize/2 {
		st.Shuffle()
	}
	st.a++
}

// output emits one keystream byte. It does not touch the nibble
// counter; callers must have left absorb phase (a == 0) first.
func (st *State) output() byte {
	st.update(1)
	st.z = st.s[st.j+st.s[st.i+st.s[st.z+st.k]]]
	return st.z
}

// Drip emits one keystream byte, shuffling first if any input has been
// absorbed since the last squeeze.
func (st *State) Drip() byte {
	if st.a > 0 {
		st.Shuffle()
	}
	return st.output()
}

// Squeeze fills out with keystream bytes.
func (st *State) Squeeze(out []byte) {
	if st.a > 0 {
		st.Shuffle()
	}
	for i := range out {
		out[i] = st.output()
	}
}

// Wipe zeroes the state, including the S-box.
func (st *State) Wipe() {
	mem.Zero(st.s[:])
	st.i, st.j, st.k, st.z, st.a, st.w = 0, 0, 0, 0, 0, 0
}
