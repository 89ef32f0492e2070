// Package panicerr isolates a function so that a panic, or a
// runtime.Goexit, ends it with an error rather than crashing the caller.
package panicerr

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Recover runs f in a new goroutine, returning its error; a panic or
// runtime.Goexit is recovered and returned as an error instead.
func Recover(name string, f func() error) error {
	errch := make(chan error, 1)
	go func() {
		defer close(errch)
		defer func() {
			select {
			case errch <- exitError(name):
			default:
				// f returned or panicked, and so already sent
			}
		}()
		defer func() {
			if e := recover(); e != nil {
				errch <- &PanicError{Name: name, Value: e, Stack: debug.Stack()}
			}
		}()
		errch <- f()
	}()
	return <-errch
}

// PanicError is a recovered panic.
type PanicError struct {
	Name  string
	Value interface{}
	Stack []byte
}

func (pe *PanicError) Error() string {
	return fmt.Sprint(pe)
}

// Format appends the panic stack to the error message under "%+v".
func (pe *PanicError) Format(f fmt.State, c rune) {
	if pe.Name == "" {
		fmt.Fprintf(f, "paniced: %v", pe.Value)
	} else {
		fmt.Fprintf(f, "%v paniced: %v", pe.Name, pe.Value)
	}
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.Stack)
	}
}

// Unwrap returns the panic value if it was an error.
func (pe *PanicError) Unwrap() error {
	err, _ := pe.Value.(error)
	return err
}

type exitError string

func (name exitError) Error() string {
	if name == "" {
		return "runtime.Goexit called"
	}
	return fmt.Sprintf("%v called runtime.Goexit", string(name))
}

// IsPanic returns true if err is a recovered panic.
func IsPanic(err error) bool {
	var pe *PanicError
	return errors.As(err, &pe)
}

// IsExit returns true if err is a recovered runtime.Goexit.
func IsExit(err error) bool {
	var xe exitError
	return errors.As(err, &xe)
}

// PanicStack returns the stack trace of a recovered panic, or "".
func PanicStack(err error) string {
	var pe *PanicError
	if errors.As(err, &pe) {
		return string(pe.Stack)
	}
	return ""
}
