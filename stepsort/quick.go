package stepsort

// quickSort sorts the inclusive range [start, end], partitioning first and
// then recursing into the left side before the right.
func (e *engine[T]) quickSort(start, end int) bool {
	if start >= end {
		return true
	}

	pivotIdx, ok := e.partition(start, end)
	if !ok {
		return false
	}

	return e.quickSort(start, pivotIdx-1) && e.quickSort(pivotIdx+1, end)
}

// partition is a Lomuto partition around buf[end]. It emits after every
// step of the scan, swap or not, and once more after the pivot lands.
//
// Afterwards everything in [start, pivotIdx) is less than the pivot and
// nothing in (pivotIdx, end] is.
func (e *engine[T]) partition(start, end int) (int, bool) {
	pivot := e.buf[end]
	pivotIdx := start

	for i := start; i < end; i++ {
		if e.less(e.buf[i], pivot) {
			Swap(e.buf, i, pivotIdx)
			pivotIdx++
		}

		if !e.emit() {
			return pivotIdx, false
		}
	}

	Swap(e.buf, end, pivotIdx)

	return pivotIdx, e.emit()
}
