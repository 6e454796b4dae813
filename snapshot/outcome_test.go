package snapshot

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOutcomeFor(t *testing.T) {
	tests := []struct {
		err  error
		want Status
	}{
		{ErrNoReferenceDir, StatusConfigError},
		{ErrNoHost, StatusConfigError},
		{fmt.Errorf("%w: bad", ErrConfig), StatusConfigError},
		{ErrUnwrappedRowCell, StatusUsageError},
		{fmt.Errorf("%w: nil view", ErrUsage), StatusUsageError},
		{fmt.Errorf("%w for key", ErrNoReference), StatusNoReference},
		{fmt.Errorf("%w key", ErrRecorded), StatusRecorded},
		{ErrMismatch, StatusFailed},
		{errors.New("disk full"), StatusFailed},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, outcomeFor(tt.err), "outcomeFor(%v)", tt.err)
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "passed", StatusPassed.String())
	assert.Equal(t, "no-reference", StatusNoReference.String())
	assert.Equal(t, "usage-error", StatusUsageError.String())
	assert.Equal(t, "Status(42)", Status(42).String())
}

func TestOutcomeMessage(t *testing.T) {
	assert.Equal(t, "cell: passed", Outcome{Identifier: "cell", Status: StatusPassed}.Message())
	assert.Equal(t, "cell: snapshot: image does not match reference",
		Outcome{Identifier: "cell", Status: StatusFailed, Err: ErrMismatch}.Message())
	assert.Equal(t, ErrNoHost.Error(), Outcome{Status: StatusConfigError, Err: ErrNoHost}.Message())
}
