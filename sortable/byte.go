package sortable

// Byte is a sortable wrapper type for the built-in byte type.
type Byte byte

var _ Sortable[Byte] = (*Byte)(nil)

func (b Byte) Equals(other Byte) bool {
	return byte(b) == byte(other)
}

func (b Byte) LessThan(other Byte) bool {
	return byte(b) < byte(other)
}

// Bytes wraps the bytes of s, e.g. to sort the letters of a word.
func Bytes(s string) []Byte {
	out := make([]Byte, len(s))
	for i := range len(s) {
		out[i] = Byte(s[i])
	}

	return out
}
