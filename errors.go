package uploadpost

import (
	"errors"
	"fmt"
	"strings"
)

// Kind classifies an Error.
type Kind int

const (
	// KindUnknown is the zero Kind.
	KindUnknown Kind = iota
	// KindConfig reports an unusable client configuration.
	KindConfig
	// KindInvalid reports a malformed request built by the caller.
	KindInvalid
	// KindNotFound reports a local media file that does not exist.
	KindNotFound
	// KindFile reports a local media file that exists but could not be read.
	KindFile
	// KindMethod reports an HTTP method the client does not issue.
	KindMethod
	// KindTransport reports a failure to reach the API.
	KindTransport
	// KindStatus reports a non-2xx response.
	KindStatus
	// KindDecode reports a response body that is not a JSON object.
	KindDecode
)

func (k Kind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindInvalid:
		return "invalid"
	case KindNotFound:
		return "not found"
	case KindFile:
		return "file"
	case KindMethod:
		return "method"
	case KindTransport:
		return "transport"
	case KindStatus:
		return "status"
	case KindDecode:
		return "decode"
	default:
		return "unknown"
	}
}

// Error is the only error type returned by Client methods.
//
// Message holds the most specific text available: for KindStatus it is the
// server's "message" or "detail" field when the body carries one.
type Error struct {
	Kind       Kind
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	switch {
	case e.Message != "":
		return e.Message
	case e.Err != nil:
		return e.Err.Error()
	default:
		return "upload-post request failed"
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsNotFound reports whether err is an Error for a missing local file.
func IsNotFound(err error) bool {
	return hasKind(err, KindNotFound)
}

// IsStatus reports whether err is an Error for a non-2xx API response.
func IsStatus(err error) bool {
	return hasKind(err, KindStatus)
}

func hasKind(err error, kind Kind) bool {
	var upErr *Error
	return errors.As(err, &upErr) && upErr.Kind == kind
}

// MissingEnvError is returned when required configuration is missing.
type MissingEnvError struct {
	Variables []string
}

func (e MissingEnvError) Error() string {
	if len(e.Variables) == 0 {
		return "upload-post credentials not configured"
	}
	return fmt.Sprintf("upload-post credentials not configured (missing %s)", strings.Join(e.Variables, ", "))
}
