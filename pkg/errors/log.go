package errors

import (
	"fmt"
	"os"
)

// LogHandler writes errors to stderr. It is the default handler.
type LogHandler struct {
	// Verbose includes stack traces in panic output.
	Verbose bool
}

// HandleError writes the error to stderr.
func (h *LogHandler) HandleError(err *DrawerError) {
	fmt.Fprintf(os.Stderr, "[drawer error] %s\n", err.Error())
}

// HandlePanic writes the panic to stderr, with the stack trace when
// Verbose is set.
func (h *LogHandler) HandlePanic(err *PanicError) {
	fmt.Fprintf(os.Stderr, "[drawer panic] %s: %v\n", err.Op, err.Value)
	if h.Verbose && err.StackTrace != "" {
		fmt.Fprintf(os.Stderr, "%s\n", err.StackTrace)
	}
}
