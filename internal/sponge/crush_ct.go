//go:build !spritzfastcrush

package sponge

// crush sorts each mirrored S-box pair so the smaller byte lands at the
// low index. This variant is branch-free: a subtract-and-extract-MSB
// mask selects the values, and both slots are stored unconditionally,
// so neither the instruction stream nor the store pattern depends on
// S-box contents. crush is the only Spritz step whose data-dependent
// branch is both observable and cheap to remove.
func (st *State) crush() {
	for v := 0; v < stateSize/2; v++ {
		x, y := st.s[v], st.s[stateSize-1-v]
		// m is 0xFF iff x > y: the subtraction borrows into the high byte.
		m := byte((uint16(y) - uint16(x)) >> 8)
		st.s[v] = (x &^ m) | (y & m)
		st.s[stateSize-1-v] = (y &^ m) | (x & m)
	}
}
