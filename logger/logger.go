package logger

import (
	"fmt"
	"runtime/debug"

	"go.uber.org/zap/zapcore"
)

// Debugf logger
func Debugf(format string, args ...interface{}) {
	if l == nil {
		fmt.Printf(fmt.Sprintf("%s\n", format), args...)
		return
	}
	l.sugar.Debugf(format, args...)
}

// Infof logger
func Infof(format string, args ...interface{}) {
	if l == nil {
		fmt.Printf(fmt.Sprintf("%s\n", format), args...)
		return
	}
	l.sugar.Infof(format, args...)
}

// Warnf logger
func Warnf(format string, args ...interface{}) {
	if l == nil {
		fmt.Printf(fmt.Sprintf("%s\n", format), args...)
		return
	}
	l.sugar.Warnf(format, args...)
}

// Errorf logger
func Errorf(format string, args ...interface{}) {
	if l == nil {
		debug.PrintStack()
		fmt.Printf(fmt.Sprintf("%s\n", format), args...)
		return
	}
	l.sugar.Errorf(format, args...)
}

// Debug logger
func Debug(msg string, fields ...zapcore.Field) {
	if l == nil {
		fmt.Println(msg)
		return
	}
	l.logger.Debug(msg, fields...)
}

// Info logger
func Info(msg string, fields ...zapcore.Field) {
	if l == nil {
		fmt.Println(msg)
		return
	}
	l.logger.Info(msg, fields...)
}

// Warn logger
func Warn(msg string, fields ...zapcore.Field) {
	if l == nil {
		fmt.Println(msg, fields)
		return
	}
	l.logger.Warn(msg, fields...)
}

// Error logger
func Error(msg string, fields ...zapcore.Field) {
	if l == nil {
		fmt.Println(msg, fields)
		return
	}
	l.logger.Error(msg, fields...)
}

// Fatal logger, log message then call os.Exit(-1).
func Fatal(msg string, fields ...zapcore.Field) {
	if l == nil {
		fmt.Println(msg)
		return
	}
	l.logger.Fatal(msg, fields...)
}
