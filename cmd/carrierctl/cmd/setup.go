package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/carrierops/interpreter/internal/config"
	"github.com/carrierops/interpreter/internal/influx"
	"github.com/carrierops/interpreter/internal/logging"
	"github.com/carrierops/interpreter/internal/session"
	"github.com/carrierops/interpreter/internal/storage"
	"github.com/spf13/afero"
)

const programName = "carrierctl"

// instance bundles an App with the resources opened for it.
type instance struct {
	app     *App
	closers []func() error
}

func (s *instance) Close() error {
	errs := []error{s.app.Close()}
	for i := len(s.closers) - 1; i >= 0; i-- {
		errs = append(errs, s.closers[i]())
	}
	return errors.Join(errs...)
}

// openSession sets up logging, the journal backend and optional metrics from
// the loaded configuration, then starts a journal session named after source.
func openSession(out io.Writer, source string) (*instance, error) {
	start := time.Now()
	s := &instance{}
	fs := afero.NewOsFs()

	logPath := logging.LogFilePath(config.GetString("logsDir"), programName, start)
	logFile, err := logging.OpenLogFile(fs, logPath)
	if err != nil {
		return nil, err
	}
	s.closers = append(s.closers, logFile.Close)

	level := config.GetString("logLevel")
	sessionName := config.GetString("sessionName")
	sessionCtx := session.NewContext()
	opts := logging.Options{Context: sessionCtx.LogAttrs}
	if config.GetBool("graylog.enabled") {
		gw, err := logging.NewGraylogWriter(config.GetString("graylog.address"), programName)
		if err != nil {
			fmt.Fprintf(out, "warning: %v\n", err)
		} else {
			opts.Graylog = gw
		}
	}

	slogManager := logging.NewSlogManager()
	slogManager.Setup(logFile, level, opts)
	s.closers = append(s.closers, slogManager.Close)
	logger := slogManager.Logger()
	zl := logging.NewZerolog(logFile, level)
	logger.Info("Begin logging", "path", logPath)

	storageCfg := config.GetStorageConfig()
	if storageCfg.SQLite.DumpPath != "" {
		if err := fs.MkdirAll(filepath.Dir(storageCfg.SQLite.DumpPath), 0755); err != nil {
			return nil, fmt.Errorf("creating journal dir: %w", err)
		}
	}
	backend, err := storage.NewBackend(storageCfg, storage.Dependencies{
		Fs:         fs,
		LogManager: slogManager,
		Logger:     zl,
	})
	if err != nil {
		s.closeAll()
		return nil, fmt.Errorf("creating storage backend: %w", err)
	}
	if err := backend.Init(); err != nil {
		s.closeAll()
		return nil, fmt.Errorf("initializing storage backend: %w", err)
	}
	logger.Info("Storage backend initialized", "type", storageCfg.Type)

	deps := AppDeps{
		Fs:         fs,
		Out:        out,
		Backend:    backend,
		LogManager: slogManager,
		Session:    sessionCtx,
		Logger:     zl,
		LinePause:  config.GetDuration("linePause"),
		ClockTick:  config.GetDuration("clockTick"),
	}

	if config.GetBool("influx.enabled") {
		m := influx.NewManager(zl, config.GetString("influx.backupPath"))
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := m.Connect(ctx)
		cancel()
		if err != nil {
			logger.Warn("InfluxDB unavailable, metrics disabled", "error", err)
		} else {
			deps.Metrics = m
			s.closers = append(s.closers, m.Close)
		}
	}

	app, err := NewApp(deps)
	if err != nil {
		_ = backend.Close()
		s.closeAll()
		return nil, err
	}
	s.app = app

	if err := app.Start(sessionName, source); err != nil {
		_ = s.Close()
		return nil, err
	}
	return s, nil
}

func (s *instance) closeAll() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		_ = s.closers[i]()
	}
}
