package workload

import (
	"fmt"
	"os"
)

// Subject is one input a variant is measured against. Data is never
// modified after loading.
type Subject struct {
	Name string
	Data []byte
}

// Size returns the subject length in bytes.
func (s Subject) Size() int {
	return len(s.Data)
}

// Source loads the subjects of a run in report row order.
type Source interface {
	Load() ([]Subject, error)
}

// LoadError reports an input file that could not be read.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Files loads each path as one subject named after the path as given.
type Files []string

// Load reads every file. The first failure aborts loading.
func (f Files) Load() ([]Subject, error) {
	subjects := make([]Subject, 0, len(f))

	for _, path := range f {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, &LoadError{Path: path, Err: err}
		}

		subjects = append(subjects, Subject{Name: path, Data: data})
	}

	return subjects, nil
}
