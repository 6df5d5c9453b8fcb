//go:build spritzfastcrush

package sponge

// crush sorts each mirrored S-box pair so the smaller byte lands at the
// low index. This variant branches on secret data and leaks through
// timing; build without the spritzfastcrush tag unless the target's
// threat model excludes timing observation entirely.
func (st *State) crush() {
	for v := 0; v < stateSize/2; v++ {
		if st.s[v] > st.s[stateSize-1-v] {
			st.s[v], st.s[stateSize-1-v] = st.s[stateSize-1-v], st.s[v]
		}
	}
}
