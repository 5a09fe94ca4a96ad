package internal

import (
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	once   sync.Once
	logger *logrus.Logger
)

// GetLogger returns the process-wide logger. It starts at info level and writes
// timestamped text to stdout; config.SetLogLevel adjusts the level after startup.
func GetLogger() *logrus.Logger {
	once.Do(func() {
		logger = &logrus.Logger{
			Out: os.Stdout,
			Formatter: &logrus.TextFormatter{
				FullTimestamp: true,
				PadLevelText:  true,
			},
			Hooks:        make(logrus.LevelHooks),
			Level:        logrus.InfoLevel,
			ExitFunc:     os.Exit,
			ReportCaller: false,
		}
	})

	return logger
}

func SetLogLevel(level logrus.Level) {
	GetLogger().SetLevel(level)
}

// LeveledLogger is the logger shape go-retryablehttp accepts.
type LeveledLogger interface {
	Error(msg string, keysAndValues ...interface{})
	Info(msg string, keysAndValues ...interface{})
	Debug(msg string, keysAndValues ...interface{})
	Warn(msg string, keysAndValues ...interface{})
}

var _ LeveledLogger = &LeveledLogrus{}

// LeveledLogrus logs retryablehttp's key/value pairs as logrus fields, so retries of
// upstream LLM requests show up with their method, url and attempt.
type LeveledLogrus struct {
	*logrus.Logger
}

func NewLeveledLogrus(logger *logrus.Logger) *LeveledLogrus {
	return &LeveledLogrus{Logger: logger}
}

// fields pairs up keysAndValues. Non-string keys and a trailing key without a value are dropped.
func (l *LeveledLogrus) fields(keysAndValues ...interface{}) logrus.Fields {
	fields := logrus.Fields{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		key, ok := keysAndValues[i].(string)
		if !ok {
			continue
		}
		fields[key] = keysAndValues[i+1]
	}
	return fields
}

func (l *LeveledLogrus) logAt(level logrus.Level, msg string, keysAndValues []interface{}) {
	l.WithFields(l.fields(keysAndValues...)).Log(level, msg)
}

func (l *LeveledLogrus) Error(msg string, keysAndValues ...interface{}) {
	l.logAt(logrus.ErrorLevel, msg, keysAndValues)
}

func (l *LeveledLogrus) Info(msg string, keysAndValues ...interface{}) {
	l.logAt(logrus.InfoLevel, msg, keysAndValues)
}

func (l *LeveledLogrus) Warn(msg string, keysAndValues ...interface{}) {
	l.logAt(logrus.WarnLevel, msg, keysAndValues)
}

// Debug covers retryablehttp's per-request lines, which only show at debug level.
func (l *LeveledLogrus) Debug(msg string, keysAndValues ...interface{}) {
	l.logAt(logrus.DebugLevel, msg, keysAndValues)
}
