package logger

import (
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/natefinch/lumberjack.v2"
)

// SlogAdapter Адаптер для логгера slog.
type SlogAdapter struct {
	slog   *slog.Logger
	output io.Closer
}

func (s *SlogAdapter) Debug(msg string, fields ...Field) {
	s.slog.Debug(msg, convertFields(fields)...)
}

func (s *SlogAdapter) Info(msg string, fields ...Field) {
	s.slog.Info(msg, convertFields(fields)...)
}

func (s *SlogAdapter) Error(msg string, fields ...Field) {
	s.slog.Error(msg, convertFields(fields)...)
}

func (s *SlogAdapter) Warn(msg string, fields ...Field) {
	s.slog.Warn(msg, convertFields(fields)...)
}

// Close Закрытие ресурса вывода (актуально при логировании в файл).
func (s *SlogAdapter) Close() error {
	if s.output == nil {
		return nil
	}

	return s.output.Close()
}

func String(key string, val string) Field {
	return Field{
		Key:   key,
		Value: val,
	}
}

func Int(key string, val int) Field {
	return Field{
		Key:   key,
		Value: strconv.Itoa(val),
	}
}

func Int64(key string, val int64) Field {
	return Field{
		Key:   key,
		Value: strconv.FormatInt(val, 10),
	}
}

// Конвертация Fields в any[].
func convertFields(fields []Field) []any {
	args := make([]any, 0, len(fields)*2)
	for _, f := range fields {
		args = append(args, f.Key, f.Value)
	}
	return args
}

var (
	Log  Logger
	once sync.Once
)

// parseLevel Преобразование строкового уровня логирования в slog.Level.
// Уровень case-insensitive, неизвестный уровень трактуется как Debug.
func parseLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}

// InitLogger Инициализация логгера-синглтона с уровнем логирования и местом вывода.
// output может быть "stdout", "stderr" или путём к файлу (с ротацией через lumberjack).
func InitLogger(level, output string) {
	once.Do(func() {
		var w io.Writer
		var closer io.Closer

		switch output {
		case "stdout":
			w = os.Stdout
		case "", "stderr":
			w = os.Stderr
		default:
			rotated := &lumberjack.Logger{
				Filename:   output,
				MaxSize:    10, // мегабайты
				MaxBackups: 3,
				MaxAge:     28, // дни
				Compress:   true,
			}
			w = rotated
			closer = rotated
		}

		slogger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
			Level: parseLevel(level),
		}))

		Log = &SlogAdapter{slog: slogger, output: closer}
	})
}
