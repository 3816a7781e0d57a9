package errors

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewError(t *testing.T) {
	t.Parallel()

	cause := errors.New("something broke")
	err := NewError(cause, ErrDecodeCode)
	assert.Equal(t, ErrDecodeCode, err.Code)
	assert.Equal(t, "something broke", err.Error())
	assert.Nil(t, err.Metadata)
}

func TestNewErrorWithMetadata(t *testing.T) {
	t.Parallel()

	err := NewError(errors.New("boom"), ErrEncodeCode, map[string]string{"field": "name"})
	assert.Equal(t, "name", err.Metadata["field"])
}

func TestNewErrorKeepsExistingCode(t *testing.T) {
	t.Parallel()

	inner := NewError(errors.New("boom"), ErrSignatureInputCode, map[string]string{"index": "200"})
	outer := NewError(inner, ErrUnknownCode, map[string]string{"stage": "pack"})

	assert.Same(t, inner, outer)
	assert.Equal(t, ErrSignatureInputCode, outer.Code)
	assert.Equal(t, "200", outer.Metadata["index"])
	assert.Equal(t, "pack", outer.Metadata["stage"])
}

func TestCodeFromError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "", CodeFromError(nil))
	assert.Equal(t, ErrUnknownCode, CodeFromError(errors.New("plain")))
	assert.Equal(t, ErrDecodeCode, CodeFromError(NewError(errors.New("x"), ErrDecodeCode)))
}
