package constants

import "errors"

// Errors that can occur while encoding or decoding entity wire messages
var (
	ErrStringHasNUL      = errors.New("string field contains an embedded NUL byte")
	ErrBufferTooShort    = errors.New("buffer shorter than the fixed prefix for its packet type")
	ErrMissingTerminator = errors.New("string field is missing its NUL terminator")
	ErrUnknownPacketType = errors.New("unknown leading packet type byte")
	ErrInvalidMessage    = errors.New("nil or unknown message type")
)

// Errors that can occur while building a protocol version table
var (
	ErrNoPacketTypes        = errors.New("packet type count must be positive")
	ErrTooManyPacketTypes   = errors.New("packet type count does not fit in one byte")
	ErrOverrideIndexRange   = errors.New("override index out of range")
	ErrVersionRange         = errors.New("packet version does not fit in one byte")
	ErrUnknownVersionSource = errors.New("named version source not found in reference header")
	ErrEnumNotFound         = errors.New("enum not found in reference header")
	ErrEnumMemberNotFound   = errors.New("enum member not found in reference header")
)
