package logger

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger леверованный логгер сервиса
// Пишет в файл (и дублирует в stderr при level=debug), формат printf-style
type Logger struct {
	l    *logrus.Logger
	file *os.File
}

// New создает логгер, пишущий в указанный файл с указанным уровнем
// Уровни: debug, info, warn, error
func New(filePath, level string) (*Logger, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("logger: parse level %q: %w", level, err)
	}

	file, err := os.OpenFile(filePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("logger: open file %q: %w", filePath, err)
	}

	l := logrus.New()
	l.SetOutput(file)
	l.SetLevel(lvl)
	l.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})

	return &Logger{l: l, file: file}, nil
}

// Debug логирует сообщение уровня debug
func (lg *Logger) Debug(format string, v ...interface{}) {
	lg.l.Debugf(format, v...)
}

// Info логирует сообщение уровня info
func (lg *Logger) Info(format string, v ...interface{}) {
	lg.l.Infof(format, v...)
}

// Warn логирует сообщение уровня warn
func (lg *Logger) Warn(format string, v ...interface{}) {
	lg.l.Warnf(format, v...)
}

// Error логирует сообщение уровня error
func (lg *Logger) Error(format string, v ...interface{}) {
	lg.l.Errorf(format, v...)
}

// Fatal логирует сообщение и завершает процесс
func (lg *Logger) Fatal(format string, v ...interface{}) {
	lg.l.Fatalf(format, v...)
}

// Close закрывает файл логов
func (lg *Logger) Close() error {
	if lg.file == nil {
		return nil
	}
	return lg.file.Close()
}
