package errors

import (
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapPreservesCode(t *testing.T) {
	base := ExternalService("airtable", stderrors.New("connection refused"))
	wrapped := Wrap(base, "lead capture failed")

	assert.Equal(t, CodeExternalService, GetCode(wrapped))
	assert.Contains(t, wrapped.Error(), "lead capture failed")
	assert.True(t, stderrors.Is(wrapped, base))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, "ignored"))
	assert.Nil(t, Wrapf(nil, "ignored %d", 1))
}

func TestGetCodeUnknown(t *testing.T) {
	assert.Equal(t, "UNKNOWN", GetCode(stderrors.New("plain")))
	assert.False(t, IsAppError(stderrors.New("plain")))
}

func TestMissingInputFile(t *testing.T) {
	err := MissingInputFile([]string{"a.csv", "data/a.csv"})
	assert.Equal(t, CodeMissingInputFile, GetCode(err))
	assert.Contains(t, err.Error(), "a.csv")
}
