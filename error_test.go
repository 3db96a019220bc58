package jobtailor_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/jobtailor"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := jobtailor.Errorf(jobtailor.ENOTFOUND, "batch %q not found", "test")

	assert.Equal(t, jobtailor.ENOTFOUND, jobtailor.ErrorCode(err))
	assert.Equal(t, "batch \"test\" not found", jobtailor.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, jobtailor.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, jobtailor.EINTERNAL, jobtailor.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, jobtailor.ErrorMessage(nil))
}
