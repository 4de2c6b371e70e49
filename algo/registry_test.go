package algo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func copyTransform(dst, src []byte) (int, error) {
	return copy(dst, src), nil
}

func identity(name string, maxInput int) Variant {
	return Variant{
		Name:     name,
		Forward:  copyTransform,
		Inverse:  copyTransform,
		Bound:    func(n int) int { return n + 1 },
		MaxInput: maxInput,
	}
}

func TestNewRegistryAssignsIndexes(t *testing.T) {
	assert := require.New(t)

	reg, err := NewRegistry(KindCompression,
		identity("b", 0), identity("a", 0), identity("c", 0))
	assert.NoError(err)
	assert.Equal(3, reg.Len())
	assert.Equal([]string{"b", "a", "c"}, reg.Names())

	for i, v := range reg.List() {
		assert.Equal(i, v.Index)
	}

	v, ok := reg.Lookup("a")
	assert.True(ok)
	assert.Equal(1, v.Index)
	assert.Equal("c", reg.Get(2).Name)

	_, ok = reg.Lookup("missing")
	assert.False(ok)
}

func TestNewRegistryRejects(t *testing.T) {
	noInverse := identity("x", 0)
	noInverse.Inverse = nil

	noBound := identity("x", 0)
	noBound.Bound = nil

	tests := []struct {
		name     string
		kind     Kind
		variants []Variant
	}{
		{"empty", KindCompression, nil},
		{"unnamed", KindCompression, []Variant{identity("", 0)}},
		{"duplicate", KindCompression, []Variant{identity("x", 0), identity("x", 0)}},
		{"no inverse", KindCompression, []Variant{noInverse}},
		{"no bound", KindCompression, []Variant{noBound}},
		{"hash without width", KindHash, []Variant{identity("x", 0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewRegistry(tt.kind, tt.variants...); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestListIsACopy(t *testing.T) {
	reg, err := NewRegistry(KindCompression, identity("a", 0))
	require.NoError(t, err)

	list := reg.List()
	list[0].Name = "changed"

	if reg.Get(0).Name != "a" {
		t.Errorf("registry mutated through List: %q", reg.Get(0).Name)
	}
}

func TestCheckInput(t *testing.T) {
	limited := identity("small", 4)
	unbounded := identity("huge", 0)
	unbounded.Bound = func(n int) int {
		if n > 8 {
			return -1
		}
		return n
	}

	reg, err := NewRegistry(KindCompression, unbounded, limited)
	require.NoError(t, err)

	require.NoError(t, reg.CheckInput(4))

	err = reg.CheckInput(5)
	var tooLarge *InputTooLargeError
	require.True(t, errors.As(err, &tooLarge))
	require.Equal(t, "small", tooLarge.Variant)
	require.Equal(t, 5, tooLarge.Size)
	require.Equal(t, 4, tooLarge.Max)

	err = reg.CheckInput(9)
	require.True(t, errors.As(err, &tooLarge))
	require.Equal(t, "huge", tooLarge.Variant)
}

func TestMaxBound(t *testing.T) {
	a := identity("a", 0)
	b := identity("b", 0)
	b.Bound = func(n int) int { return 2*n + 10 }

	reg, err := NewRegistry(KindCompression, a, b)
	require.NoError(t, err)

	if got := reg.MaxBound(100); got != 210 {
		t.Errorf("MaxBound(100) = %d, want 210", got)
	}
	if got := reg.MaxBound(0); got != 10 {
		t.Errorf("MaxBound(0) = %d, want 10", got)
	}
}

func TestKindString(t *testing.T) {
	if KindCompression.String() != "compression" {
		t.Errorf("got %q", KindCompression.String())
	}
	if KindHash.String() != "hash" {
		t.Errorf("got %q", KindHash.String())
	}
}
