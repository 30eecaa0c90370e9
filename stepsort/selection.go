package stepsort

// selection emits once per comparison of the minimum scan, whether or not
// the running minimum changed, and once more after the swap. The scan
// itself is the progress being shown.
func (e *engine[T]) selection() bool {
	n := len(e.buf)
	if n <= 1 {
		return true
	}

	for i := range n {
		minIdx := i

		for j := i; j < n; j++ {
			if e.less(e.buf[j], e.buf[minIdx]) {
				minIdx = j
			}

			if !e.emit() {
				return false
			}
		}

		Swap(e.buf, i, minIdx)

		if !e.emit() {
			return false
		}
	}

	return true
}
