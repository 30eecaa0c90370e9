package stepsort

// bubble emits after every swap and returns early once a full pass makes
// no swaps.
func (e *engine[T]) bubble() bool {
	n := len(e.buf)

	for i := 0; i < n-1; i++ {
		swapped := false

		for j := 0; j < n-1-i; j++ {
			if !e.less(e.buf[j+1], e.buf[j]) {
				continue
			}

			Swap(e.buf, j, j+1)
			swapped = true

			if !e.emit() {
				return false
			}
		}

		if !swapped {
			break
		}
	}

	return true
}
