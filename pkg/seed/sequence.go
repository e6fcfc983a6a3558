package seed

// ReduceSequence cancels adjacent repeated indices in a mutation sequence,
// repeatedly, until none remain. Mutation at an index is an involution, so
// the reduced sequence reaches an equivalent seed.
func ReduceSequence(indices []int) []int {
	out := []int{}
	reduced := false
	for i := 0; i < len(indices); {
		if i == len(indices)-1 || indices[i] != indices[i+1] {
			out = append(out, indices[i])
			i++
		} else {
			reduced = true
			i += 2
		}
	}
	if reduced {
		return ReduceSequence(out)
	}
	return out
}
