// Package apperrors provides the error type used across the client. It
// extends the standard error interface with wrapping, status codes, and
// message derivation so that error taxonomies can be declared as package-level
// sentinels and refined at the point of failure.
package apperrors

// Error is the application error interface. Derived errors keep an
// errors.Is relationship with the error they were created from, so callers
// can classify a failure by its sentinel regardless of the message it
// carries. All methods return Error to support chaining.
type Error interface {
	error
	Unwrap() error // support for errors.Is / errors.As

	New(msg string) Error                  // creates a new error using current as template
	Msg(msg string) Error                  // creates a new error with message and wraps original
	MsgErr(msg string, err ...error) Error // creates error with message and wraps extra errors
	Err(err ...error) Error                // attaches additional errors to current error
	SetStatusCode(int) Error               // sets the HTTP status code carried by the error
	StatusCode() int                       // returns the current status code
	Prefix(string) Error                   // adds a prefix to the error message
	UnwrapAll() []error                    // returns all wrapped errors
}
