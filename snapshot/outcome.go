package snapshot

import (
	"errors"
	"fmt"

	"github.com/gogpu/ggsnap/ui"
)

// Verification errors. Outcome.Err wraps exactly one of them.
var (
	// ErrNoReferenceDir is returned when no reference directory is configured.
	ErrNoReferenceDir = errors.New("snapshot: reference directory not configured (set " + EnvReferenceDir + ")")

	// ErrNoHost is returned when a declarative subject is verified without a Host.
	ErrNoHost = errors.New("snapshot: no declarative UI host configured")

	// ErrUsage is returned for subjects that cannot be snapshotted as given.
	ErrUsage = errors.New("snapshot: invalid subject")

	// ErrUnwrappedRowCell is returned when a row cell is snapshotted without a row host.
	ErrUnwrappedRowCell = fmt.Errorf("%w: row cell must be wrapped with ui.WrapRow", ErrUsage)

	// ErrNoReference is returned when no suffixed directory holds a reference.
	ErrNoReference = errors.New("snapshot: no reference image found")

	// ErrMismatch is returned when the capture differs from its reference.
	ErrMismatch = errors.New("snapshot: image does not match reference")

	// ErrRecorded is returned after a new reference was saved. Recording
	// never counts as passing.
	ErrRecorded = errors.New("snapshot: recorded new reference")
)

// Status classifies a verification outcome.
type Status int

const (
	// StatusPassed means the capture matched its reference.
	StatusPassed Status = iota
	// StatusRecorded means a new reference was saved.
	StatusRecorded
	// StatusFailed means the capture differed or could not be produced.
	StatusFailed
	// StatusNoReference means no reference exists for the identifier.
	StatusNoReference
	// StatusConfigError means required configuration is missing.
	StatusConfigError
	// StatusUsageError means the subject was malformed.
	StatusUsageError
)

func (s Status) String() string {
	switch s {
	case StatusPassed:
		return "passed"
	case StatusRecorded:
		return "recorded"
	case StatusFailed:
		return "failed"
	case StatusNoReference:
		return "no-reference"
	case StatusConfigError:
		return "config-error"
	case StatusUsageError:
		return "usage-error"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is the result of one verification.
type Outcome struct {
	Status Status

	// Identifier is the snapshot identifier including size suffixes.
	Identifier string
	// Key is the store key the identifier maps to.
	Key string
	// Directory is the suffixed directory compared against or recorded into.
	Directory string
	// Size is the resolved sizing constraint.
	Size ui.Size

	// Diff is set for comparisons.
	Diff *Diff
	// Err describes every non-passing outcome.
	Err error
}

// Passed reports whether the outcome counts as a passing test.
func (o Outcome) Passed() bool {
	return o.Status == StatusPassed
}

// Message returns a human-readable description of the outcome.
func (o Outcome) Message() string {
	if o.Err == nil {
		return fmt.Sprintf("%s: %s", o.Identifier, o.Status)
	}
	if o.Identifier == "" {
		return o.Err.Error()
	}
	return fmt.Sprintf("%s: %v", o.Identifier, o.Err)
}

func outcomeFor(err error) Status {
	switch {
	case errors.Is(err, ErrNoReferenceDir), errors.Is(err, ErrNoHost), errors.Is(err, ErrConfig):
		return StatusConfigError
	case errors.Is(err, ErrUsage):
		return StatusUsageError
	case errors.Is(err, ErrNoReference):
		return StatusNoReference
	case errors.Is(err, ErrRecorded):
		return StatusRecorded
	default:
		return StatusFailed
	}
}
