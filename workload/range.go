package workload

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidRange indicates range bounds or a step that cannot produce
// subjects.
var ErrInvalidRange = errors.New("invalid byte range")

// Range describes synthetic subjects of Start, Start+Step, ... bytes up
// to and including Upper. Every subject is a prefix of one deterministic
// pseudo-random buffer.
type Range struct {
	Start int
	Upper int
	Step  int
	Seed  int64
}

// ParseRange parses "<start> <upper> <step>" command arguments.
func ParseRange(args []string, seed int64) (Range, error) {
	if len(args) != 3 {
		return Range{}, fmt.Errorf("%w: want <start> <upper> <step>, got %d arguments",
			ErrInvalidRange, len(args))
	}

	var vals [3]int
	for i, arg := range args {
		v, err := strconv.Atoi(arg)
		if err != nil {
			return Range{}, fmt.Errorf("%w: %q is not an integer", ErrInvalidRange, arg)
		}
		vals[i] = v
	}

	r := Range{Start: vals[0], Upper: vals[1], Step: vals[2], Seed: seed}
	if err := r.Validate(); err != nil {
		return Range{}, err
	}

	return r, nil
}

// Validate requires 0 <= Start <= Upper and Step > 0.
func (r Range) Validate() error {
	if r.Start < 0 || r.Start > r.Upper {
		return fmt.Errorf("%w: need 0 <= start (%d) <= upper (%d)",
			ErrInvalidRange, r.Start, r.Upper)
	}
	if r.Step <= 0 {
		return fmt.Errorf("%w: step %d must be positive", ErrInvalidRange, r.Step)
	}

	return nil
}

// Sizes returns the subject lengths in ascending order.
func (r Range) Sizes() []int {
	sizes := make([]int, 0, (r.Upper-r.Start)/r.Step+1)
	for n := r.Start; n <= r.Upper; n += r.Step {
		sizes = append(sizes, n)
		if n > r.Upper-r.Step {
			break
		}
	}

	return sizes
}

// Load builds one subject per size, named by its decimal byte count.
func (r Range) Load() ([]Subject, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}

	sizes := r.Sizes()
	backing := NewGenerator(Config{Seed: r.Seed}).Random(sizes[len(sizes)-1])

	subjects := make([]Subject, len(sizes))
	for i, n := range sizes {
		subjects[i] = Subject{
			Name: strconv.Itoa(n),
			Data: backing[:n:n],
		}
	}

	return subjects, nil
}
