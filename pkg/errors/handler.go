package errors

import (
	"fmt"
	"runtime"
	"strings"
	"sync"
	"time"
)

// stackDepth caps the frames recorded by CaptureStack.
const stackDepth = 32

var (
	handlerMu sync.RWMutex
	handler   ErrorHandler = &LogHandler{}
)

// Handler returns the handler Report and ReportPanic deliver to.
func Handler() ErrorHandler {
	handlerMu.RLock()
	defer handlerMu.RUnlock()
	return handler
}

// SetHandler installs h as the global handler and returns the one it
// replaces, so callers can restore it:
//
//	defer errors.SetHandler(errors.SetHandler(h))
//
// A nil h installs a non-verbose LogHandler.
func SetHandler(h ErrorHandler) ErrorHandler {
	if h == nil {
		h = &LogHandler{}
	}
	handlerMu.Lock()
	defer handlerMu.Unlock()
	prev := handler
	handler = h
	return prev
}

// Report stamps err with the current time unless it already has one and
// hands it to the global handler. A nil err is ignored.
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportPanic is Report for recovered panics.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandlePanic(err)
}

// Recover stops a panic in progress and reports it under op. It only
// works when deferred directly:
//
//	defer errors.Recover("rangeslider.notify")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{Op: op, Value: r, StackTrace: CaptureStack()})
}

// CaptureStack formats the stack of its caller as "function\n\tfile:line"
// lines, innermost first.
func CaptureStack() string {
	pcs := make([]uintptr, stackDepth)
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return ""
	}
	frames := runtime.CallersFrames(pcs[:n])
	var b strings.Builder
	for {
		f, more := frames.Next()
		fmt.Fprintf(&b, "%s\n\t%s:%d\n", f.Function, f.File, f.Line)
		if !more {
			return b.String()
		}
	}
}
