package logging

import (
	"fmt"
	"log"
	"maps"
	"os"
)

// DefaultLogger writes through Go's standard log package:
// Debug/Info to stdout, Warn/Error to stderr.
type DefaultLogger struct {
	stdout *log.Logger
	stderr *log.Logger
	level  Level
	fields Fields
}

// NewDefaultLogger creates a default logger at Info level.
func NewDefaultLogger() *DefaultLogger {
	return &DefaultLogger{
		stdout: log.New(os.Stdout, "", log.LstdFlags),
		stderr: log.New(os.Stderr, "", log.LstdFlags),
		level:  InfoLevel,
		fields: make(Fields),
	}
}

func (d *DefaultLogger) format(level Level, err error, msg string, fields ...Fields) string {
	allFields := make(Fields)
	maps.Copy(allFields, d.fields)
	for _, f := range fields {
		maps.Copy(allFields, f)
	}

	out := fmt.Sprintf("[%s] %s", level, msg)
	if err != nil {
		out += fmt.Sprintf(": %v", err)
	}
	if len(allFields) > 0 {
		out += fmt.Sprintf(" %+v", allFields)
	}
	return out
}

func (d *DefaultLogger) log(level Level, err error, msg string, fields ...Fields) {
	if level < d.level {
		return
	}
	line := d.format(level, err, msg, fields...)
	if level >= WarnLevel {
		d.stderr.Println(line)
		return
	}
	d.stdout.Println(line)
}

func (d *DefaultLogger) Debug(msg string, fields ...Fields) {
	d.log(DebugLevel, nil, msg, fields...)
}

func (d *DefaultLogger) Info(msg string, fields ...Fields) {
	d.log(InfoLevel, nil, msg, fields...)
}

func (d *DefaultLogger) Warn(msg string, fields ...Fields) {
	d.log(WarnLevel, nil, msg, fields...)
}

func (d *DefaultLogger) Error(err error, msg string, fields ...Fields) {
	d.log(ErrorLevel, err, msg, fields...)
}

func (d *DefaultLogger) WithFields(fields Fields) Logger {
	merged := make(Fields)
	maps.Copy(merged, d.fields)
	maps.Copy(merged, fields)

	return &DefaultLogger{
		stdout: d.stdout,
		stderr: d.stderr,
		level:  d.level,
		fields: merged,
	}
}

func (d *DefaultLogger) SetLevel(level Level) {
	d.level = level
}
