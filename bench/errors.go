package bench

import (
	"errors"

	"github.com/weiihann/algobench/harness"
)

var (
	// ErrUsage marks bad command-line usage such as a wrong argument count.
	ErrUsage = errors.New("usage")

	// ErrSetup marks unreadable or unacceptable input detected before any
	// timing starts.
	ErrSetup = errors.New("setup")
)

// Process exit statuses, one per failure class.
const (
	ExitOK          = 0
	ExitUsage       = 1
	ExitSetup       = 2
	ExitTransform   = 3
	ExitFailure     = 4
	ExitCorrectness = -1
)

// ExitCode maps an error returned by a command to its exit status.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, harness.ErrCorrectness):
		return ExitCorrectness
	case errors.Is(err, harness.ErrTransform):
		return ExitTransform
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, ErrSetup):
		return ExitSetup
	default:
		return ExitFailure
	}
}
