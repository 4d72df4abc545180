package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/NastyaGoryachaya/slot-notifier/internal/config"
)

const serviceName = "slot-notifier"

// New создаёт slog-логгер из конфига и делает его логгером по умолчанию
func New(cfg *config.LoggerConfig) *slog.Logger {
	logger := NewWithWriter(cfg, os.Stdout)
	slog.SetDefault(logger)
	return logger
}

// NewWithWriter - то же, что New, но пишет в w и не трогает slog.Default (удобно в тестах)
func NewWithWriter(cfg *config.LoggerConfig, w io.Writer) *slog.Logger {
	// неизвестный уровень не ошибка запуска: пишем с info
	level, _ := parseLevel(cfg.Level)
	opts := &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceAttrs,
		AddSource:   true,
	}

	var handler slog.Handler
	switch strings.ToLower(cfg.Format) {
	case "text":
		handler = slog.NewTextHandler(w, opts)
	default:
		handler = slog.NewJSONHandler(w, opts)
	}

	return slog.New(handler).With(slog.String("service", serviceName))
}

// Component - дочерний логгер с меткой компонента
func Component(l *slog.Logger, name string) *slog.Logger {
	return l.With(slog.String("component", name))
}

// parseLevel - debug|info|warn|error, пустая строка = info
func parseLevel(logLevel string) (slog.Level, error) {
	logLevel = strings.TrimSpace(logLevel)
	if logLevel == "" {
		return slog.LevelInfo, nil
	}
	if strings.EqualFold(logLevel, "warning") {
		return slog.LevelWarn, nil
	}
	var lv slog.Level
	if err := lv.UnmarshalText([]byte(logLevel)); err != nil {
		return slog.LevelInfo, fmt.Errorf("unknown log level %q: %w", logLevel, err)
	}
	return lv, nil
}

// levelString - имя уровня без смещений вида INFO+2
func levelString(l slog.Level) string {
	switch {
	case l < slog.LevelInfo:
		return slog.LevelDebug.String()
	case l < slog.LevelWarn:
		return slog.LevelInfo.String()
	case l < slog.LevelError:
		return slog.LevelWarn.String()
	default:
		return slog.LevelError.String()
	}
}

func replaceAttrs(_ []string, a slog.Attr) slog.Attr {
	switch a.Key {
	case slog.TimeKey:
		if tt, ok := a.Value.Any().(time.Time); ok {
			a.Value = slog.StringValue(tt.UTC().Format(time.RFC3339))
		}
	case slog.LevelKey:
		if lv, ok := a.Value.Any().(slog.Level); ok {
			a.Value = slog.StringValue(levelString(lv))
		}
	case slog.SourceKey:
		// base + :строка
		if src, ok := a.Value.Any().(*slog.Source); ok && src != nil {
			a.Value = slog.StringValue(filepath.Base(src.File) + ":" + strconv.Itoa(src.Line))
		}
	}
	return a
}
