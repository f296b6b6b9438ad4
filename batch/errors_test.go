package batch_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/recbatch/recbatch/batch"
)

func TestErrorMessages(t *testing.T) {
	cfgErr := &batch.ConfigurationError{Reason: "no limits"}
	assert.Contains(t, cfgErr.Error(), "invalid configuration")
	assert.Contains(t, cfgErr.Error(), "no limits")

	tooLarge := &batch.RecordTooLargeError{Record: "abcdef", Size: 6, Limit: 4}
	assert.Contains(t, tooLarge.Error(), "6")
	assert.Contains(t, tooLarge.Error(), "4")
	assert.Contains(t, tooLarge.Error(), "abcdef")
}

func TestSourceErrorUnwrap(t *testing.T) {
	cause := errors.New("disk on fire")
	err := &batch.SourceError{Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk on fire")
}
