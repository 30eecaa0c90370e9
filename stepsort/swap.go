package stepsort

// Swap exchanges buf[i] and buf[j]. It does nothing when i == j.
// Both indices must be in range.
func Swap[T any](buf []T, i, j int) {
	if i != j {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
