package consumer

import (
	"context"
	"encoding/binary"

	"github.com/zeebo/xxh3"
)

// Digest folds every snapshot into a running xxh3 hash. Two runs of the same
// engine over the same input produce the same digest; any change in the
// yield order or in a single intermediate state changes it.
type Digest[T any] struct {
	hasher *xxh3.Hasher
	encode func(dst []byte, v T) []byte
	buf    []byte
}

// NewDigest hashes snapshots using encode to turn each element into bytes.
func NewDigest[T any](encode func(dst []byte, v T) []byte) *Digest[T] {
	return &Digest[T]{
		hasher: xxh3.New(),
		encode: encode,
	}
}

// IntDigest is a Digest for int snapshots.
func IntDigest() *Digest[int] {
	return NewDigest(func(dst []byte, v int) []byte {
		return binary.LittleEndian.AppendUint64(dst, uint64(v)) //nolint:gosec
	})
}

func (d *Digest[T]) Consume(_ context.Context, step int, snapshot []T) error {
	d.buf = binary.LittleEndian.AppendUint64(d.buf[:0], uint64(step)) //nolint:gosec
	for _, v := range snapshot {
		d.buf = d.encode(d.buf, v)
	}

	_, err := d.hasher.Write(d.buf)

	return err
}

// Sum64 returns the digest of everything consumed so far.
func (d *Digest[T]) Sum64() uint64 {
	return d.hasher.Sum64()
}

// Reset clears the digest for reuse.
func (d *Digest[T]) Reset() {
	d.hasher.Reset()
	d.buf = d.buf[:0]
}
