package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"sync/atomic"
)

var debug atomic.Bool

// SetDebug toggles Debugf output for every logger.
func SetDebug(on bool) { debug.Store(on) }

// Logger prefixes messages with a component name.
type Logger struct {
	l *log.Logger
}

func New(component string) *Logger {
	return NewWithWriter(os.Stdout, component)
}

func NewWithWriter(w io.Writer, component string) *Logger {
	return &Logger{l: log.New(w, fmt.Sprintf("[%s] ", component), log.LstdFlags)}
}

func (lg *Logger) Infof(format string, v ...interface{}) {
	lg.l.Printf(format, v...)
}

func (lg *Logger) Errorf(format string, v ...interface{}) {
	lg.l.Printf("ERROR: "+format, v...)
}

func (lg *Logger) Debugf(format string, v ...interface{}) {
	if !debug.Load() {
		return
	}
	lg.l.Printf("DEBUG: "+format, v...)
}
