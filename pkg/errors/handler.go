package errors

import (
	"runtime/debug"
	"sync/atomic"
	"time"
)

// current holds the ErrorHandler that receives reports.
var current atomic.Pointer[ErrorHandler]

func init() {
	SetHandler(nil)
}

// SetHandler routes reports to h and returns the handler it replaced. A nil
// h restores a LogHandler writing JSON to stderr.
func SetHandler(h ErrorHandler) (prev ErrorHandler) {
	if h == nil {
		h = NewLogHandler(nil)
	}
	if old := current.Swap(&h); old != nil {
		prev = *old
	}
	return prev
}

// Handler returns the handler that receives reports.
func Handler() ErrorHandler {
	return *current.Load()
}

// Report stamps err with the time and stack it was reported at and hands it
// to the current handler.
func Report(err *SkeletonError) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	if err.StackTrace == "" {
		err.StackTrace = string(debug.Stack())
	}
	Handler().HandleError(err)
}

// RecoverWithCallback must be deferred. It recovers a panic, reports it
// under op and then passes the panic value to callback.
//
//	defer errors.RecoverWithCallback("animation.StepTickers", cleanup)
func RecoverWithCallback(op string, callback func(r any)) {
	r := recover()
	if r == nil {
		return
	}
	Handler().HandlePanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: string(debug.Stack()),
		Timestamp:  time.Now(),
	})
	if callback != nil {
		callback(r)
	}
}
