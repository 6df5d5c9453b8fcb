package sponge

import (
	"bytes"
	"math/rand"
	"testing"
)

// A plain transliteration of the pseudocode in section 2 of the Spritz
// paper, kept deliberately naive: integer registers, explicit mod-N
// arithmetic, no caching of registers in locals, branchy crush. The tests
// below drive it and the production State through identical transcripts and
// require byte-for-byte agreement.

const refN = 256

type refState struct {
	s                [refN]int
	i, j, k, z, a, w int
}

func newRef() *refState {
	r := &refState{w: 1}
	for i := range r.s {
		r.s[i] = i
	}
	return r
}

func (r *refState) update() {
	r.i = (r.i + r.w) % refN
	r.j = (r.k + r.s[(r.j+r.s[r.i])%refN]) % refN
	r.k = (r.i + r.k + r.s[r.j]) % refN
	r.s[r.i], r.s[r.j] = r.s[r.j], r.s[r.i]
}

func (r *refState) whip() {
	for range 2 * refN {
		r.update()
	}
	r.w = (r.w + 2) % refN
}

func (r *refState) crush() {
	for v := 0; v < refN/2; v++ {
		if r.s[v] > r.s[refN-1-v] {
			r.s[v], r.s[refN-1-v] = r.s[refN-1-v], r.s[v]
		}
	}
}

func (r *refState) shuffle() {
	r.whip()
	r.crush()
	r.whip()
	r.crush()
	r.whip()
	r.a = 0
}

func (r *refState) absorbNibble(x int) {
	if r.a == refN/2 {
		r.shuffle()
	}
	r.s[r.a], r.s[refN/2+x] = r.s[refN/2+x], r.s[r.a]
	r.a++
}

func (r *refState) absorb(b []byte) {
	for _, v := range b {
		r.absorbNibble(int(v & 0x0F))
		r.absorbNibble(int(v >> 4))
	}
}

func (r *refState) absorbStop() {
	if r.a == refN/2 {
		r.shuffle()
	}
	r.a++
}

func (r *refState) squeeze(n int) []byte {
	if r.a > 0 {
		r.shuffle()
	}
	out := make([]byte, n)
	for i := range out {
		r.update()
		r.z = r.s[(r.j+r.s[(r.i+r.s[(r.z+r.k)%refN])%refN])%refN]
		out[i] = byte(r.z)
	}
	return out
}

// TestReferenceTranscripts runs randomized absorb/stop/squeeze transcripts
// through the production state and the paper transliteration in lockstep.
func TestReferenceTranscripts(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5321))

	for transcript := range 50 {
		var st State
		st.Initialize()
		ref := newRef()

		for step := range 20 {
			switch rng.Intn(3) {
			case 0:
				b := make([]byte, rng.Intn(200))
				rng.Read(b)
				st.Absorb(b)
				ref.absorb(b)
			case 1:
				st.AbsorbStop()
				ref.absorbStop()
			case 2:
				n := rng.Intn(100) + 1
				got := make([]byte, n)
				st.Squeeze(got)
				want := ref.squeeze(n)
				if !bytes.Equal(got, want) {
					t.Fatalf("transcript %d step %d: squeeze = %x, want = %x", transcript, step, got, want)
				}
			}
		}

		got, want := make([]byte, 32), ref.squeeze(32)
		st.Squeeze(got)
		if !bytes.Equal(got, want) {
			t.Fatalf("transcript %d: final squeeze = %x, want = %x", transcript, got, want)
		}
	}
}

// TestReferenceHash checks the digest composition (absorb, stop, absorb the
// size byte, squeeze) against the transliteration for random inputs.
func TestReferenceHash(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5322))

	for range 25 {
		data := make([]byte, rng.Intn(500))
		rng.Read(data)
		size := rng.Intn(255) + 1

		var st State
		st.Initialize()
		st.Absorb(data)
		st.AbsorbStop()
		st.AbsorbByte(byte(size))
		got := make([]byte, size)
		st.Squeeze(got)

		ref := newRef()
		ref.absorb(data)
		ref.absorbStop()
		ref.absorbNibble(int(byte(size) & 0x0F))
		ref.absorbNibble(int(byte(size) >> 4))
		if want := ref.squeeze(size); !bytes.Equal(got, want) {
			t.Fatalf("hash(%d bytes, size %d) = %x, want = %x", len(data), size, got, want)
		}
	}
}

// TestReferenceMAC checks the MAC composition (absorb key, stop, absorb
// message, stop, absorb the size byte, squeeze) against the transliteration.
func TestReferenceMAC(t *testing.T) {
	rng := rand.New(rand.NewSource(0x5323))

	for range 25 {
		key := make([]byte, rng.Intn(400))
		rng.Read(key)
		msg := make([]byte, rng.Intn(500))
		rng.Read(msg)

		var st State
		st.Initialize()
		st.Absorb(key)
		st.AbsorbStop()
		st.Absorb(msg)
		st.AbsorbStop()
		st.AbsorbByte(32)
		got := make([]byte, 32)
		st.Squeeze(got)

		ref := newRef()
		ref.absorb(key)
		ref.absorbStop()
		ref.absorb(msg)
		ref.absorbStop()
		ref.absorb([]byte{32})
		if want := ref.squeeze(32); !bytes.Equal(got, want) {
			t.Fatalf("mac(%d-byte key, %d-byte msg) = %x, want = %x", len(key), len(msg), got, want)
		}
	}
}
