package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// RSyncWrite is a rotatable and concurrent safe file-based logs writer
// used as the zap core sink. Rotation happens on file size, once it
// reaches the max configured value.
type RSyncWrite struct {
	clock Clocker
	sync.Mutex
	file   *os.File
	folder string
	max    int
	size   int64
	isProd bool
}

func NewRSyncWriter(config *Config, clock Clocker) *RSyncWrite {
	return &RSyncWrite{
		clock:  clock,
		folder: config.LogFolder,
		max:    config.LogMaxSize,
		isProd: config.IsProduction,
	}
}

// Close closes the current log file.
func (rsw *RSyncWrite) Close() error {
	rsw.Lock()
	defer rsw.Unlock()
	if rsw.file == nil {
		return nil
	}
	return rsw.file.Close()
}

func (rsw *RSyncWrite) Sync() error {
	if rsw.file == nil {
		return nil
	}
	return rsw.file.Sync()
}

// Write implements the io.Writer interface with dynamic file rotation on max size.
func (rsw *RSyncWrite) Write(p []byte) (n int, err error) {
	rsw.Lock()
	defer rsw.Unlock()
	pLen := len(p)
	if pLen > rsw.max*1048576 {
		return 0, fmt.Errorf("logging: log size %d exceeds max file size %d", pLen, rsw.max)
	}
	if int64(pLen)+rsw.size > int64(rsw.max)*1048576 || rsw.file == nil {
		if rsw.file != nil {
			if err := rsw.file.Close(); err != nil {
				return 0, err
			}
		}

		path := CreateLogFilePath(rsw.folder, rsw.isProd, rsw.clock.Now())
		file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return 0, err
		}
		rsw.file = file
		rsw.size = 0
	}
	n, err = rsw.file.Write(p)
	rsw.size += int64(pLen)
	return n, err
}

// SyncWrite implements zap.WriteSyncer on top of standard output. Its
// no-op Sync avoids the usual `Handle is invalid` error when calling
// Sync() on a logger bound to os.Stdout.
type SyncWrite struct {
	out *os.File
}

func (sw *SyncWrite) Sync() error {
	return nil
}

func (sw *SyncWrite) Write(p []byte) (n int, err error) {
	return sw.out.Write(p)
}

// encoderConfig provides the common encoder settings of all cores.
func encoderConfig(isProd bool) zapcore.EncoderConfig {
	var cfg zapcore.EncoderConfig
	if isProd {
		cfg = zap.NewProductionEncoderConfig()
	} else {
		cfg = zap.NewDevelopmentEncoderConfig()
	}
	cfg.TimeKey = "ts"
	cfg.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.LevelKey = "lvl"
	cfg.NameKey = "name"
	cfg.MessageKey = "msg"
	cfg.CallerKey = "caller"
	cfg.StacktraceKey = "skt"
	return cfg
}

// SetupLogging initializes the logging module. In production all logs go
// to the rotated file. In development the same logs are printed to the
// standard output as well. Only fatal level logs carry a stacktrace, and
// all logs come with commit & tag values. The custom clock provides UTC
// timestamps in production and local timezone in development.
func SetupLogging(config *Config, w *RSyncWrite, clock TickerClocker) (*zap.Logger, func()) {
	zapConfig := encoderConfig(config.IsProduction)
	fileCore := zapcore.NewCore(zapcore.NewJSONEncoder(zapConfig), w, config.LogLevel)

	var core zapcore.Core
	if config.IsProduction {
		core = zapcore.NewTee(fileCore)
	} else {
		consoleCore := zapcore.NewCore(
			zapcore.NewConsoleEncoder(zapConfig),
			zapcore.Lock(&SyncWrite{os.Stdout}),
			config.LogLevel,
		)
		core = zapcore.NewTee(fileCore, consoleCore)
	}

	logger := zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.FatalLevel))
	logger = logger.WithOptions(zap.WithClock(clock))
	logger = logger.With(
		zap.String("app.commit", config.GitCommit),
		zap.String("app.tag", config.GitTag),
		zap.String("app.built", config.BuildTime),
	)

	flusher := func() {
		if err := logger.Sync(); err != nil {
			fmt.Println("[flush logs]:", err)
		}
	}

	return logger, flusher
}

// CreateLogFilePath returns the path of the next log file.
func CreateLogFilePath(folder string, isProd bool, t time.Time) string {
	var envKey string
	if isProd {
		envKey = "prod"
	} else {
		envKey = "dev"
	}
	suffix := fmt.Sprintf("%02d%02d%02d.%02d%02d%02d.%s.log", t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), envKey)
	return filepath.Join(folder, suffix)
}
