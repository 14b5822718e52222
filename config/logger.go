package config

import (
	"os"
	"strings"

	"github.com/gookit/slog"
	"github.com/gookit/slog/handler"
)

// AppLogger 는 tramibot 패키지들이 쓰는 로거 메서드 집합이다.
type AppLogger interface {
	Debug(args ...any)
	Info(args ...any)
	Warn(args ...any)
	Error(args ...any)
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

type Fields map[string]any

const (
	defaultLogLevel = "info"
	logTimeFormat   = "2006-01-02T15:04:05"
)

// Logger 는 InitLogger 전에도 info 레벨로 쓸 수 있다.
var Logger AppLogger = NewLogger(defaultLogLevel)

// InitLogger 우선순위: logging.level > LOG_LEVEL > info
func InitLogger(cfg LoggingConfig) {
	level := firstNonEmpty(cfg.Level, os.Getenv("LOG_LEVEL"), defaultLogLevel)
	Logger = NewLogger(strings.ToLower(level))
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}

// NewLogger 는 stdout 으로 한 줄짜리 JSON 을 쓴다.
// 키는 datetime, level, message 와 호출 측 Fields 뿐이다.
func NewLogger(level string) AppLogger {
	maxLevel := slog.LevelByName(level)

	enabled := make(slog.Levels, 0, len(slog.AllLevels))
	for _, lv := range slog.AllLevels {
		if lv <= maxLevel {
			enabled = append(enabled, lv)
		}
	}

	h := handler.NewConsoleHandler(enabled)
	h.SetFormatter(slog.NewJSONFormatter(func(f *slog.JSONFormatter) {
		f.Fields = []string{slog.FieldKeyDatetime, slog.FieldKeyLevel, slog.FieldKeyMessage}
		f.Aliases = slog.StringMap{
			slog.FieldKeyDatetime: "datetime",
			slog.FieldKeyLevel:    "level",
			slog.FieldKeyMessage:  "message",
		}
		f.TimeFormat = logTimeFormat
	}))

	return slog.NewWithHandlers(h)
}

func InfoWithFields(msg string, fields Fields)  { logWithFields(slog.InfoLevel, msg, fields) }
func DebugWithFields(msg string, fields Fields) { logWithFields(slog.DebugLevel, msg, fields) }
func WarnWithFields(msg string, fields Fields)  { logWithFields(slog.WarnLevel, msg, fields) }
func ErrorWithFields(msg string, fields Fields) { logWithFields(slog.ErrorLevel, msg, fields) }

// logWithFields 는 SERVICE_NAME 이 있으면 service_name 을 채운다.
// Logger 가 교체되어 *slog.Logger 가 아니면 fields 없이 메시지만 남긴다.
func logWithFields(level slog.Level, msg string, fields Fields) {
	lg, ok := Logger.(*slog.Logger)
	if !ok {
		switch level {
		case slog.DebugLevel:
			Logger.Debug(msg)
		case slog.WarnLevel:
			Logger.Warn(msg)
		case slog.ErrorLevel:
			Logger.Error(msg)
		default:
			Logger.Info(msg)
		}
		return
	}

	m := make(slog.M, len(fields)+1)
	for k, v := range fields {
		m[k] = v
	}
	if _, set := m["service_name"]; !set {
		if sn := os.Getenv("SERVICE_NAME"); sn != "" {
			m["service_name"] = sn
		}
	}
	lg.WithFields(m).Log(level, msg)
}
