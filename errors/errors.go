package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
)

// Is and As re-export the standard library helpers so callers of this
// package need only one errors import.
func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

// Phase indicates where in buffer processing the error occurred
type Phase string

const (
	PhaseParse  Phase = "parse"  // view construction and header parsing
	PhaseDecode Phase = "decode" // buffer to native value
	PhaseEncode Phase = "encode" // native value to buffer
	PhaseSpill  Phase = "spill"  // temp-file overflow path
)

// Kind categorizes the error
type Kind string

const (
	KindNullPointer    Kind = "null_pointer"
	KindBufferTooLarge Kind = "buffer_too_large"
	KindBufferTooSmall Kind = "buffer_too_small"
	KindCopyFailed     Kind = "copy_failed"
	KindJSONDecode     Kind = "json_decode_failed"
	KindJSONEncode     Kind = "json_encode_failed"
	KindInvalidUTF8    Kind = "invalid_utf8"
	KindTempFileRead   Kind = "read_temp_file_failed"
	KindTempFileWrite  Kind = "write_temp_file_failed"
)

// Sentinel codes returned across the FFI boundary. Hosts without native
// error types receive these in place of a success value.
const (
	CodeNone                int32 = 0
	CodeNullPointer         int32 = -1
	CodeBufferTooLarge      int32 = -2
	CodeBufferTooSmall      int32 = -3
	CodeCopyFailed          int32 = -4
	CodeJSONDecodeFailed    int32 = -5
	CodeJSONEncodeFailed    int32 = -6
	CodeInvalidUTF8         int32 = -7
	CodeReadTempFileFailed  int32 = -8
	CodeWriteTempFileFailed int32 = -9

	// CodeUnknown marks an error outside the protocol's closed set. It never
	// collides with the codes above.
	CodeUnknown int32 = -100
)

var codeByKind = map[Kind]int32{
	KindNullPointer:    CodeNullPointer,
	KindBufferTooLarge: CodeBufferTooLarge,
	KindBufferTooSmall: CodeBufferTooSmall,
	KindCopyFailed:     CodeCopyFailed,
	KindJSONDecode:     CodeJSONDecodeFailed,
	KindJSONEncode:     CodeJSONEncodeFailed,
	KindInvalidUTF8:    CodeInvalidUTF8,
	KindTempFileRead:   CodeReadTempFileFailed,
	KindTempFileWrite:  CodeWriteTempFileFailed,
}

// Code returns the sentinel code for this kind, or CodeUnknown for a kind
// outside the closed set.
func (k Kind) Code() int32 {
	if c, ok := codeByKind[k]; ok {
		return c
	}
	return CodeUnknown
}

// CodeOf maps any error to its FFI sentinel code. A nil error is CodeNone;
// errors carrying an *Error anywhere in their chain report that error's
// kind code; anything else is CodeUnknown.
func CodeOf(err error) int32 {
	if err == nil {
		return CodeNone
	}
	var e *Error
	if As(err, &e) {
		return e.Kind.Code()
	}
	return CodeUnknown
}

// Error is the structured error type used throughout the library
type Error struct {
	Phase  Phase
	Kind   Kind
	Detail string
	Cause  error
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// NullPointer creates a null buffer pointer error
func NullPointer(phase Phase) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindNullPointer,
		Detail: "buffer pointer is null",
	}
}

// TooLarge creates a buffer-too-large error for a length beyond the sane bound
func TooLarge(phase Phase, length, max int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindBufferTooLarge,
		Detail: fmt.Sprintf("declared length %d exceeds maximum %d", length, max),
	}
}

// TooSmall creates a buffer-too-small error
func TooSmall(phase Phase, capacity, need int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindBufferTooSmall,
		Detail: fmt.Sprintf("capacity %d cannot hold %d bytes", capacity, need),
	}
}

// CopyFailed creates a post-copy verification error
func CopyFailed(phase Phase, copied, want int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindCopyFailed,
		Detail: fmt.Sprintf("copied %d bytes, expected %d", copied, want),
	}
}

// InvalidUTF8 creates an invalid UTF-8 error with a bounded preview of the data
func InvalidUTF8(phase Phase, data []byte) *Error {
	preview := data
	if len(preview) > 32 {
		preview = preview[:32]
	}
	return &Error{
		Phase:  phase,
		Kind:   KindInvalidUTF8,
		Detail: fmt.Sprintf("invalid UTF-8 sequence: %x", preview),
	}
}

// TempFileRead creates a spill-file read error
func TempFileRead(path string, cause error) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindTempFileRead,
		Detail: fmt.Sprintf("reading spill file %s", path),
		Cause:  cause,
	}
}

// TempFileWrite creates a spill-file creation/write error
func TempFileWrite(cause error) *Error {
	return &Error{
		Phase: PhaseSpill,
		Kind:  KindTempFileWrite,
		Cause: cause,
	}
}

// DecodeFailed creates a structural-codec decode error
func DecodeFailed(codecName string, cause error) *Error {
	return &Error{
		Phase:  PhaseDecode,
		Kind:   KindJSONDecode,
		Detail: fmt.Sprintf("%s codec rejected payload", codecName),
		Cause:  cause,
	}
}

// EncodeFailed creates a structural-codec encode error
func EncodeFailed(codecName string, cause error) *Error {
	return &Error{
		Phase:  PhaseEncode,
		Kind:   KindJSONEncode,
		Detail: fmt.Sprintf("%s codec rejected value", codecName),
		Cause:  cause,
	}
}
