package report

import (
	"fmt"
	"os"
)

// EmitError is an error produced while rendering a checked tree into target
// source text.  Emit errors are always fatal to the rendering that raised
// them: no partial output is ever returned alongside one.
type EmitError struct {
	// The error message.
	Message string
}

func (ee *EmitError) Error() string {
	return ee.Message
}

// ThrowEmitError raises an emit error by panicking with it.  The panic is
// expected to be recovered by a deferred call to CatchEmitErrors at the
// boundary of the rendering entry point.
// NB: This function never returns.
func ThrowEmitError(msg string, args ...interface{}) {
	panic(&EmitError{Message: fmt.Sprintf(msg, args...)})
}

// CatchEmitErrors converts a panicked emit error into an ordinary returned
// error.  Any other panic value is re-raised untouched.
// NB: This function must ALWAYS be deferred.
func CatchEmitErrors(err *error) {
	if x := recover(); x != nil {
		if ee, ok := x.(*EmitError); ok {
			*err = ee
		} else {
			panic(x)
		}
	}
}

// -----------------------------------------------------------------------------

// ReportICE reports an internal compiler error.  These are errors that
// specifically result from a bug or unexpected condition occurring within the
// compiler: they are not intended to ever happen.  These errors are always
// displayed regardless of log level.
func ReportICE(msg string, args ...interface{}) {
	displayICE(fmt.Sprintf(msg, args...))

	os.Exit(-1)
}

// ReportFatal reports a fatal error.  These are errors that should cause the
// whole program to stop immediately.  However, they are expected errors that
// generally result from invalid configuration of some form: a missing
// manifest, unreadable input, etc.
func ReportFatal(msg string, args ...interface{}) {
	if rep == nil || rep.logLevel > LogLevelSilent {
		displayFatal(fmt.Sprintf(msg, args...))
	}

	os.Exit(1)
}

// ReportError reports a non-fatal error to the user.  The error is recorded
// even when the log level suppresses its display.
func ReportError(msg string, args ...interface{}) {
	if rep == nil {
		return
	}

	rep.m.Lock()
	defer rep.m.Unlock()

	rep.isErr = true

	if rep.logLevel > LogLevelSilent {
		displayError(fmt.Sprintf(msg, args...))
	}
}

// ReportStdError reports a non-fatal, standard Go error.
func ReportStdError(err error) {
	ReportError("%s", err.Error())
}

// ReportWarning reports a warning message to the user.
func ReportWarning(msg string, args ...interface{}) {
	if rep != nil && rep.logLevel > LogLevelWarn {
		rep.m.Lock()
		defer rep.m.Unlock()

		displayWarning(fmt.Sprintf(msg, args...))
	}
}
