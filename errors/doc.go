// Package errors provides structured error types for the hostbuf library.
//
// Errors are categorized by Phase (where in buffer processing the error
// occurred) and Kind (error category). Every Kind maps to a negative int32
// sentinel code so FFI entry points that return a scalar can multiplex
// success values and failures through one return channel:
//
//	func ToUpper(in, out unsafe.Pointer) int32 {
//	    view, err := hostbuf.FromPointer(in)
//	    if err != nil {
//	        return errors.CodeOf(err)
//	    }
//	    ...
//	}
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindInvalidUTF8).
//		Detail("spill path is not valid UTF-8").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.NullPointer(errors.PhaseEncode)
//	err := errors.TooSmall(errors.PhaseEncode, 4, 100)
//
// All errors implement the standard error interface and support errors.Is/As;
// two *Error values match when their Phase and Kind agree.
package errors
