package stepsort

// mergeSort sorts the inclusive range [start, end]. Both halves are sorted
// (and all of their snapshots delivered) before the merge starts, and the
// level ends with one extra snapshot.
func (e *engine[T]) mergeSort(start, end int) bool {
	if end <= start {
		return true
	}

	mid := start + (end-start+1)/2 - 1

	if !e.mergeSort(start, mid) || !e.mergeSort(mid+1, end) || !e.merge(start, mid, end) {
		return false
	}

	return e.emit()
}

// merge merges the sorted runs [start, mid] and [mid+1, end].
//
// The merged order is decided up front; ties go to the left run, which keeps
// equal elements in their original order. The result is then written one
// slot at a time from the left, emitting after each slot. Each write is a
// swap that fetches the element from wherever it currently sits, so the
// range is a permutation of its input after every write.
func (e *engine[T]) merge(start, mid, end int) bool {
	n := end - start + 1

	// order[k] is the offset from start of the element that ends up at start+k.
	order := make([]int, 0, n)

	left, right := start, mid+1
	for left <= mid && right <= end {
		if e.less(e.buf[right], e.buf[left]) {
			order = append(order, right-start)
			right++
		} else {
			order = append(order, left-start)
			left++
		}
	}

	for ; left <= mid; left++ {
		order = append(order, left-start)
	}

	for ; right <= end; right++ {
		order = append(order, right-start)
	}

	// pos maps an element (by its offset before the merge) to its current
	// offset, and at is the inverse.
	pos := make([]int, n)
	at := make([]int, n)

	for i := range n {
		pos[i], at[i] = i, i
	}

	for k, elem := range order {
		from := pos[elem]
		displaced := at[k]

		Swap(e.buf, start+k, start+from)

		at[from], pos[displaced] = displaced, from
		at[k], pos[elem] = elem, k

		if !e.emit() {
			return false
		}
	}

	return true
}
