package logger

import (
	"fmt"
	"os"
	"runtime"

	log "github.com/jeanphorn/log4go"
)

var defaultLogger = log.NewDefaultLogger(log.DEBUG)

// Info log information
func Info(format string, args ...interface{}) {
	defaultLogger.Log(log.INFO, getSource(), fmt.Sprintf(format, args...))
}

// Debug log debug
func Debug(format string, args ...interface{}) {
	defaultLogger.Log(log.DEBUG, getSource(), fmt.Sprintf(format, args...))
}

// Warning log warnings
func Warning(format string, args ...interface{}) {
	defaultLogger.Log(log.WARNING, getSource(), fmt.Sprintf(format, args...))
}

// Error log errors
func Error(format string, args ...interface{}) {
	defaultLogger.Log(log.ERROR, getSource(), fmt.Sprintf(format, args...))
}

// Fatal log fatal errors and exit
func Fatal(format string, args ...interface{}) {
	defaultLogger.Log(log.CRITICAL, getSource(), fmt.Sprintf(format, args...))
	defaultLogger.Close()
	os.Exit(1)
}

func getSource() (source string) {
	if pc, _, line, ok := runtime.Caller(2); ok {
		source = fmt.Sprintf("%s:%d", runtime.FuncForPC(pc).Name(), line)
	}
	return
}
