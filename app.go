package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"
)

var _ AppProvider = (*App)(nil) // ensure App implements AppProvider

type AppProvider interface {
	Run() error
}

// App groups the long-lived pieces of a catalog session.
type App struct {
	logger   *zap.Logger
	config   *Config
	catalog  CatalogServiceProvider
	cleanups []func()
}

// NewApp provides an instance of App.
func NewApp() (*App, error) {
	config, err := LoadAndInitConfigs(GitCommit, GitTag, BuildTime)
	if err != nil {
		return nil, fmt.Errorf("failed to setup app configuration: %s", err)
	}

	// Ensure the logs folder exists and setup the logging module.
	err = os.MkdirAll(config.LogFolder, 0o700)
	if err != nil {
		return nil, fmt.Errorf("failed to create logging folder: %s", err)
	}
	clock := NewClock(config.IsProduction)
	writer := NewRSyncWriter(config, clock)
	closer := func() {
		if cerr := writer.Close(); cerr != nil {
			fmt.Println("error during closing of log file: ", cerr)
		}
	}
	logger, flusher := SetupLogging(config, writer, NewTickClock(clock))

	// Setup the storage and the catalog service.
	storage := NewTextFileCatalogStorage(logger, &config.Catalog)
	catalog := NewCatalogService(logger, config, clock, storage)

	return &App{
		logger:  logger,
		config:  config,
		catalog: catalog,
		cleanups: []func(){
			flusher,
			closer,
		},
	}, nil
}

// Run executes the requested catalog command then releases resources.
func (app *App) Run() error {
	defer app.Clean()
	err := Execute(app)
	if err != nil {
		app.logger.Error("catalog command failed", zap.Error(err))
		return err
	}
	app.logger.Info("catalog command completed",
		zap.Int("records", app.catalog.Size()),
		zap.Int("capacity", app.catalog.Capacity()),
	)
	return nil
}

// Clean calls all registered cleanups functions.
func (app *App) Clean() {
	for _, f := range app.cleanups {
		f()
	}
}
