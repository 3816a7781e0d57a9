package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/MayaTheShy/Starworld/config"
)

type _LoggerImp struct {
	logger *zap.Logger
	sugar  *zap.SugaredLogger
}

var l *_LoggerImp

// Init builds the process logger. toolName becomes the log file stem when
// file output is configured.
func Init(toolName string, cfg *config.Config) {
	l = &_LoggerImp{}
	l.logger = newLogger(toolName, cfg)
	l.sugar = l.logger.Sugar()
}

// Sync flushes buffered log entries. Call before process exit.
func Sync() {
	if l != nil {
		_ = l.logger.Sync()
	}
}

func newLogger(toolName string, cfg *config.Config) *zap.Logger {
	level := cfg.GetString("starworld.logger.level")
	fileDir := cfg.GetString("starworld.logger.dir")
	rotation := cfg.GetBool("starworld.logger.rotation")
	stdout := cfg.GetBool("starworld.logger.stdout")

	zapLevel := zapcore.InfoLevel
	switch strings.ToLower(level) {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		fmt.Println("Logger level invalid, must be one of: DEBUG, INFO, WARN, or ERROR")
	}

	consoleLogger := newJSONLogger(os.Stdout, zapLevel)

	var fileLogger *zap.Logger
	if fileDir != "" {
		file := filepath.Join(fileDir, toolName+".log")
		if rotation {
			fileLogger = newRotatingJSONFileLogger(cfg, consoleLogger, file, zapLevel)
		} else {
			fileLogger = newJSONFileLogger(consoleLogger, file, zapLevel)
		}
	}

	if fileLogger != nil {
		multiLogger := newMultiLogger(consoleLogger, fileLogger)

		if stdout {
			zap.RedirectStdLog(multiLogger)
			return multiLogger
		}
		zap.RedirectStdLog(fileLogger)
		return fileLogger
	}

	zap.RedirectStdLog(consoleLogger)

	return consoleLogger
}

func newJSONFileLogger(consoleLogger *zap.Logger, fileName string, level zapcore.Level) *zap.Logger {
	output, err := os.OpenFile(fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
	if err != nil {
		consoleLogger.Fatal("Could not create log file", zap.Error(err))
		return nil
	}

	return newJSONLogger(output, level)
}

func newRotatingJSONFileLogger(cfg *config.Config, consoleLogger *zap.Logger, fileName string, level zapcore.Level) *zap.Logger {
	logDir := filepath.Dir(fileName)
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		if err := os.MkdirAll(logDir, 0755); err != nil {
			consoleLogger.Fatal("Could not create log directory", zap.Error(err))
			return nil
		}
	}

	writeSyncer := zapcore.AddSync(&lumberjack.Logger{
		Filename:   fileName,
		MaxSize:    cfg.GetInt("starworld.logger.maxsize"),
		MaxAge:     cfg.GetInt("starworld.logger.maxage"),
		MaxBackups: cfg.GetInt("starworld.logger.maxbackups"),
		LocalTime:  cfg.GetBool("starworld.logger.localtime"),
		Compress:   cfg.GetBool("starworld.logger.compress"),
	})

	core := zapcore.NewCore(newJSONEncoder(), writeSyncer, level)
	options := []zap.Option{zap.AddStacktrace(zap.ErrorLevel)}
	return zap.New(core, options...)
}

func newMultiLogger(loggers ...*zap.Logger) *zap.Logger {
	cores := make([]zapcore.Core, 0, len(loggers))
	for _, logger := range loggers {
		cores = append(cores, logger.Core())
	}
	teeCore := zapcore.NewTee(cores...)
	options := []zap.Option{zap.AddStacktrace(zap.ErrorLevel), zap.AddCaller(), zap.AddCallerSkip(1)}
	return zap.New(teeCore, options...)
}

func newJSONLogger(output *os.File, level zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(newJSONEncoder(), zapcore.Lock(output), level)
	options := []zap.Option{zap.AddStacktrace(zap.ErrorLevel), zap.AddCaller(), zap.AddCallerSkip(1)}
	return zap.New(core, options...)
}

func newJSONEncoder() zapcore.Encoder {
	return zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	})
}
