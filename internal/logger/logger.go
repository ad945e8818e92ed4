package logger

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var logger = zap.NewNop().Sugar()

// Option настройки логгера
type Option struct {
	Level       zapcore.Level
	MultiWriter []io.Writer
}

type OptionFunc func(*Option)

// OptionAddWriter добавляет еще один writer (например буфер в тестах)
func OptionAddWriter(w io.Writer) OptionFunc {
	return func(o *Option) {
		o.MultiWriter = append(o.MultiWriter, w)
	}
}

// OptionSetWriter заменяет stdout указанными writer'ами
func OptionSetWriter(w ...io.Writer) OptionFunc {
	return func(o *Option) {
		o.MultiWriter = w
	}
}

// OptionLevel задает минимальный уровень: debug, info, warn, error
func OptionLevel(level string) OptionFunc {
	return func(o *Option) {
		var l zapcore.Level
		if err := l.UnmarshalText([]byte(strings.ToLower(level))); err == nil {
			o.Level = l
		}
	}
}

// InitZap инициализирует JSON логгер, по умолчанию пишет в stdout
func InitZap(opts ...OptionFunc) {
	opt := Option{
		Level:       zapcore.DebugLevel,
		MultiWriter: []io.Writer{os.Stdout},
	}
	for _, o := range opts {
		o(&opt)
	}

	enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{
		MessageKey:   "message",
		LevelKey:     "level",
		EncodeLevel:  zapcore.CapitalLevelEncoder,
		TimeKey:      "time",
		EncodeTime:   zapcore.ISO8601TimeEncoder,
		CallerKey:    "caller",
		EncodeCaller: zapcore.ShortCallerEncoder,
	})

	cores := make([]zapcore.Core, 0, len(opt.MultiWriter))
	for _, w := range opt.MultiWriter {
		cores = append(cores, zapcore.NewCore(enc, zapcore.AddSync(w), opt.Level))
	}

	logger = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
}

// Sync сбрасывает буферы, вызывается при остановке сервера
func Sync() {
	_ = logger.Sync()
}

func LogI(message string) {
	logger.Info(message)
}

func LogIf(format string, i ...interface{}) {
	logger.Infof(format, i...)
}

func LogE(message string) {
	logger.Error(message)
}

func LogEf(format string, i ...interface{}) {
	logger.Errorf(format, i...)
}

func LogW(message string) {
	logger.Warn(message)
}

// LogWithField пишет запись с набором полей, ключ "message" становится текстом записи
func LogWithField(level zapcore.Level, fields map[string]interface{}) {
	var message interface{}
	args := make([]interface{}, 0, len(fields)*2)
	for k, v := range fields {
		if k == "message" {
			message = v
			continue
		}
		args = append(args, k, v)
	}

	entry := logger.With(args...)
	switch level {
	case zapcore.DebugLevel:
		entry.Debug(message)
	case zapcore.InfoLevel:
		entry.Info(message)
	case zapcore.WarnLevel:
		entry.Warn(message)
	case zapcore.ErrorLevel:
		entry.Error(message)
	case zapcore.FatalLevel:
		entry.Fatal(message)
	}
}

// Fatalf пишет ошибку и завершает процесс
func Fatalf(format string, i ...interface{}) {
	logger.Fatalf(format, i...)
}
