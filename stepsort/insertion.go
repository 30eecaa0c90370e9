package stepsort

// insertion sinks each element into the sorted prefix one swap at a time,
// emitting after every swap.
func (e *engine[T]) insertion() bool {
	for i := 1; i < len(e.buf); i++ {
		for j := i; j > 0 && e.less(e.buf[j], e.buf[j-1]); j-- {
			Swap(e.buf, j, j-1)

			if !e.emit() {
				return false
			}
		}
	}

	return true
}
