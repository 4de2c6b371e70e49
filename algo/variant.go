// Package algo defines the fixed catalogues of compression and hash
// variants measured by the benchmark harness.
package algo

import (
	"errors"
	"fmt"
)

var (
	// ErrShortBuffer indicates that a library could not fit its output into
	// the destination it was given.
	ErrShortBuffer = errors.New("destination buffer too small")

	// ErrEmptyOutput indicates that a transform reported success but wrote
	// nothing.
	ErrEmptyOutput = errors.New("transform produced no output")
)

// Kind distinguishes reversible compressors from one-way hash functions.
type Kind int

const (
	KindCompression Kind = iota
	KindHash
)

func (k Kind) String() string {
	switch k {
	case KindCompression:
		return "compression"
	case KindHash:
		return "hash"
	}

	return fmt.Sprintf("unknown kind %d", int(k))
}

// Transform processes src into dst and returns the number of bytes written.
// dst must be at least Bound(len(src)) bytes long.
type Transform func(dst, src []byte) (int, error)

// Variant is one algorithm implementation under test.
type Variant struct {
	// Name is the display name used as the report column title.
	Name string

	// Index is the position of the variant in its registry. It is assigned
	// by NewRegistry.
	Index int

	// Forward is the measured transform (compress or hash).
	Forward Transform

	// Inverse undoes Forward. Only compression variants have one.
	Inverse Transform

	// Bound returns the worst-case Forward output size for an input of n
	// bytes, or a negative value if n is too large for the library.
	Bound func(n int) int

	// MaxInput is the documented maximum input size. Zero means the library
	// only limits input through Bound.
	MaxInput int

	// Width is the fixed digest size of a hash variant.
	Width int
}

// Reversible reports whether the variant can be round-trip checked.
func (v Variant) Reversible() bool {
	return v.Inverse != nil
}

// InputTooLargeError reports a subject larger than a variant accepts.
type InputTooLargeError struct {
	Variant string
	Size    int
	Max     int
}

func (e *InputTooLargeError) Error() string {
	if e.Max > 0 {
		return fmt.Sprintf("input of %d bytes is too large for %s (max %d)",
			e.Size, e.Variant, e.Max)
	}

	return fmt.Sprintf("input of %d bytes is too large for %s", e.Size, e.Variant)
}

// fit converts the slice a library returned into a byte count, failing if
// the library had to allocate outside dst.
func fit(dst, out []byte) (int, error) {
	if len(out) > len(dst) {
		return 0, fmt.Errorf("%w: need %d, have %d", ErrShortBuffer, len(out), len(dst))
	}

	return len(out), nil
}
