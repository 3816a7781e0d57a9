package errors

// Error codes carried by coded errors. Peers and tooling match on these,
// never on message text.
const (
	// ErrUnknownCode is a string code that will be used when none is set
	ErrUnknownCode = "SW-000"
	// ErrEncodeCode is the string code returned when encoding a wire message fails
	ErrEncodeCode = "SW-ENC"
	// ErrDecodeCode is the string code returned when decoding a wire message fails
	ErrDecodeCode = "SW-DEC"
	// ErrSignatureInputCode is the string code returned when a protocol
	// signature cannot be computed from the given table spec
	ErrSignatureInputCode = "SW-SIG"
	// ErrBadRequestCode is the string code returned for malformed caller input
	ErrBadRequestCode = "SW-400"
)

// Error is an error with a code and metadata
type Error struct {
	Code     string
	Message  string
	Metadata map[string]string
}

// NewError ctor. If err already carries a code, the code argument is ignored
// and only metadata is merged.
func NewError(err error, code string, metadata ...map[string]string) *Error {
	if swErr, ok := err.(*Error); ok {
		if len(metadata) > 0 {
			mergeMetadatas(swErr, metadata[0])
		}
		return swErr
	}

	e := &Error{
		Code:    code,
		Message: err.Error(),
	}
	if len(metadata) > 0 {
		e.Metadata = metadata[0]
	}
	return e
}

func (e *Error) Error() string {
	return e.Message
}

func mergeMetadatas(err *Error, metadata map[string]string) {
	if err.Metadata == nil {
		err.Metadata = metadata
		return
	}

	for key, value := range metadata {
		err.Metadata[key] = value
	}
}

// CodeFromError returns the code of error.
// If error is nil, return empty string.
// If error is not a starworld error, returns unknown code.
func CodeFromError(err error) string {
	if err == nil {
		return ""
	}

	swErr, ok := err.(*Error)
	if !ok {
		return ErrUnknownCode
	}

	if swErr == nil {
		return ""
	}

	return swErr.Code
}
