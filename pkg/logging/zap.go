package logging

import (
	"os"
	"path/filepath"
	"time"

	zaplogfmt "github.com/jsternberg/zap-logfmt"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ Logger = &ZapLogger{}

// ZapLogger is a Logger backed by a zap SugaredLogger.
type ZapLogger struct {
	lg *zap.SugaredLogger
}

// Config configures NewZap.
type Config struct {
	Format string `yaml:"format"` // console, logfmt or json
	Level  Level  `yaml:"level"`  // debug, info, warn or error
	Output string `yaml:"output"` // stderr, stdout, none or a file path
}

// DefaultConfig logs at info level to stderr in console format.
func DefaultConfig() Config {
	return Config{Format: "console", Level: LevelInfo, Output: "stderr"}
}

// NewZap builds a ZapLogger from conf. Entries are also written to every
// extra write syncer.
func NewZap(conf Config, extraWriters ...zapcore.WriteSyncer) *ZapLogger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = func(ts time.Time, encoder zapcore.PrimitiveArrayEncoder) {
		encoder.AppendString(ts.UTC().Format(time.RFC3339))
	}

	var encoder zapcore.Encoder
	switch conf.Format {
	case "logfmt":
		encoder = zaplogfmt.NewEncoder(encCfg)
	case "json":
		encoder = zapcore.NewJSONEncoder(encCfg)
	default:
		encoder = zapcore.NewConsoleEncoder(encCfg)
	}

	writers := append([]zapcore.WriteSyncer{}, extraWriters...)
	switch conf.Output {
	case "", "stderr":
		writers = append(writers, zapcore.Lock(os.Stderr))
	case "stdout":
		writers = append(writers, zapcore.Lock(os.Stdout))
	case "none":
	default:
		// Fall back to stderr when the file cannot be opened.
		err1 := os.MkdirAll(filepath.Dir(conf.Output), 0o755)
		file, err2 := os.OpenFile(conf.Output, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
		if err1 != nil || err2 != nil {
			writers = append(writers, zapcore.Lock(os.Stderr))
		} else {
			writers = append(writers, zapcore.AddSync(file))
		}
	}

	core := zapcore.NewCore(encoder, zapcore.NewMultiWriteSyncer(writers...), toZapLevel(conf.Level))
	// Skip log and the exported wrapper.
	zl := zap.New(core, zap.AddCaller(), zap.AddCallerSkip(2)).Sugar()
	return &ZapLogger{lg: zl}
}

func (l *ZapLogger) Debug(msg string, keysAndValues ...any) {
	l.log(LevelDebug, msg, keysAndValues...)
}

func (l *ZapLogger) Info(msg string, keysAndValues ...any) {
	l.log(LevelInfo, msg, keysAndValues...)
}

func (l *ZapLogger) Warn(msg string, keysAndValues ...any) {
	l.log(LevelWarn, msg, keysAndValues...)
}

func (l *ZapLogger) Error(msg string, keysAndValues ...any) {
	l.log(LevelError, msg, keysAndValues...)
}

func (l *ZapLogger) log(level Level, msg string, keysAndValues ...any) {
	l.lg.Logw(toZapLevel(level), msg, keysAndValues...)
}

func (l *ZapLogger) WithKV(key string, value any) Logger {
	return &ZapLogger{lg: l.lg.With(key, value)}
}

func (l *ZapLogger) WithName(name string) Logger {
	return &ZapLogger{lg: l.lg.Named(name)}
}

func (l *ZapLogger) Name() string {
	return l.lg.Desugar().Name()
}

// Sync flushes buffered entries.
func (l *ZapLogger) Sync() error {
	return l.lg.Sync()
}

func toZapLevel(level Level) zapcore.Level {
	switch level {
	case LevelDebug:
		return zapcore.DebugLevel
	case LevelWarn:
		return zapcore.WarnLevel
	case LevelError:
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}
