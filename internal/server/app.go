// Package server wires configuration, storage and the gRPC transport into a
// runnable application and handles graceful shutdown.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/gophdrop/internal/logging"
	"github.com/dmitrijs2005/gophdrop/internal/server/aliases"
	"github.com/dmitrijs2005/gophdrop/internal/server/blobs"
	"github.com/dmitrijs2005/gophdrop/internal/server/config"
	"github.com/dmitrijs2005/gophdrop/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/gophdrop/internal/server/services"
	"github.com/dmitrijs2005/gophdrop/internal/server/vault"

	gs "github.com/dmitrijs2005/gophdrop/internal/server/grpc"
)

type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	fileService *services.FileService
}

// NewApp builds the file service. With a database DSN the state is restored
// from PostgreSQL and S3 and every change is written through; without one
// the state lives in memory only.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(logging.Format(c.LogFormat), os.Stdout)
	if err != nil {
		return nil, fmt.Errorf("logger init error: %w", err)
	}

	gen := aliases.New(aliases.NewSeed())
	clock := vault.SystemClock()

	if c.DatabaseDSN == "" {
		logger.Warn(ctx, "no database configured, state is kept in memory only")
		state := vault.New(gen, clock)
		fs := services.NewFileService(state, nil, nil, nil, logger)
		return &App{config: c, logger: logger, fileService: fs}, nil
	}

	db, err := repomanager.OpenPostgres(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, err
	}

	rm := repomanager.NewPostgresRepositoryManager()
	if err := rm.RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrations error: %w", err)
	}

	store, err := blobs.NewS3Store(ctx, blobs.S3Config{
		Region:       c.S3Region,
		AccessKey:    c.S3RootUser,
		SecretKey:    c.S3RootPassword,
		Bucket:       c.S3Bucket,
		BaseEndpoint: c.S3BaseEndpoint,
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("blob store init error: %w", err)
	}

	snap, err := services.LoadSnapshot(ctx, db, rm, store)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("restore error: %w", err)
	}
	state, err := restoreState(ctx, logger, snap, gen, clock)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	fs := services.NewFileService(state, db, rm, store, logger)
	return &App{config: c, logger: logger, db: db, fileService: fs}, nil
}

func restoreState(ctx context.Context, logger logging.Logger, snap vault.Snapshot, gen vault.AliasSource, clock vault.Clock) (*vault.State, error) {
	state, err := vault.Restore(snap, gen, clock)
	if err != nil {
		return nil, fmt.Errorf("restore error: %w", err)
	}
	logger.Info(ctx, "state restored", "files", len(snap.Files), "next_file_id", state.FileCount(), "users", len(snap.Users))
	return state, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.fileService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or a termination signal arrives.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error(context.Background(), "db close error", "error", err)
		}
	}
	if z, ok := app.logger.(interface{ Sync() error }); ok {
		_ = z.Sync()
	}
}
