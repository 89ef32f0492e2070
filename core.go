package main

import "fmt"

type logging struct {
	logfn func(mess string, args ...interface{})
}

func (log logging) tracing() bool { return log.logfn != nil }

// logf logs a message after a mark naming its phase: "@" for macro
// expansion, ">" for each dispatched word.
func (log logging) logf(mark, mess string, args ...interface{}) {
	if log.logfn == nil {
		return
	}
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	log.logfn("%v %v", mark, mess)
}
