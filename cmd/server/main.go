package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
	"github.com/ilyakaznacheev/cleanenv"

	"github.com/vinayvenu/orthanc/internal/api"
	"github.com/vinayvenu/orthanc/pkg/compression"
	"github.com/vinayvenu/orthanc/pkg/storage"
	fsstorage "github.com/vinayvenu/orthanc/pkg/storage/fs"
	memorystorage "github.com/vinayvenu/orthanc/pkg/storage/memory"
	s3storage "github.com/vinayvenu/orthanc/pkg/storage/s3"
)

type Config struct {
	Port        string `env:"PORT" env-default:"8042"`
	Environment string `env:"ENVIRONMENT" env-default:"development"`

	// File serving surface
	ServeRoot     string `env:"SERVE_ROOT" env-default:""`
	ListDirectory bool   `env:"SERVE_LIST_DIRECTORY" env-default:"false"`

	// Attachment storage
	Storage StorageConfig
}

type StorageConfig struct {
	Backend     string `env:"STORAGE_BACKEND" env-default:"memory"` // memory, fs, s3
	Compression bool   `env:"STORAGE_COMPRESSION" env-default:"false"`
	FSBaseDir   string `env:"STORAGE_FS_BASE_DIR" env-default:"./orthanc-storage"`

	S3Region       string `env:"STORAGE_S3_REGION" env-default:"us-east-1"`
	S3Bucket       string `env:"STORAGE_S3_BUCKET" env-default:""`
	S3Prefix       string `env:"STORAGE_S3_PREFIX" env-default:"attachments"`
	S3AccessKey    string `env:"STORAGE_S3_ACCESS_KEY_ID" env-default:""`
	S3SecretKey    string `env:"STORAGE_S3_SECRET_ACCESS_KEY" env-default:""`
	S3Endpoint     string `env:"STORAGE_S3_ENDPOINT" env-default:""`
	S3UsePathStyle bool   `env:"STORAGE_S3_USE_PATH_STYLE" env-default:"false"`
}

func newAttachmentStore(ctx context.Context, cfg StorageConfig) (storage.Store, error) {
	var (
		store storage.Store
		err   error
	)

	switch cfg.Backend {
	case "memory":
		store = memorystorage.New()
	case "fs":
		store, err = fsstorage.New(fsstorage.Config{BaseDir: cfg.FSBaseDir})
	case "s3":
		store, err = s3storage.New(ctx, s3storage.Config{
			Region:          cfg.S3Region,
			Bucket:          cfg.S3Bucket,
			Prefix:          cfg.S3Prefix,
			AccessKeyID:     cfg.S3AccessKey,
			SecretAccessKey: cfg.S3SecretKey,
			Endpoint:        cfg.S3Endpoint,
			UsePathStyle:    cfg.S3UsePathStyle,
		})
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Compression {
		store = storage.NewCompressed(store, &compression.ZlibCompressor{})
	}
	return store, nil
}

func main() {
	var config Config
	if err := cleanenv.ReadEnv(&config); err != nil {
		slog.Error("Failed to read configuration", "err", err)
		os.Exit(1)
	}

	logLevel := slog.LevelInfo
	if config.Environment == "development" {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})))

	ctx := context.Background()
	store, err := newAttachmentStore(ctx, config.Storage)
	if err != nil {
		slog.Error("Failed to initialize attachment storage", "backend", config.Storage.Backend, "err", err)
		os.Exit(1)
	}

	uids, err := store.ListAll(ctx)
	if err != nil {
		slog.Error("Failed to inspect attachment storage", "backend", config.Storage.Backend, "err", err)
		os.Exit(1)
	}
	slog.Info("Attachment storage ready",
		"backend", config.Storage.Backend,
		"compression", config.Storage.Compression,
		"attachments", len(uids))

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		render.PlainText(w, r, http.StatusText(http.StatusOK))
	})

	r.Mount("/tags", api.NewMetadataHandler().Routes())

	if config.ServeRoot != "" {
		filesystemHandler, err := api.NewFilesystemHandler(config.ServeRoot, config.ListDirectory)
		if err != nil {
			slog.Error("Failed to initialize file serving", "root", config.ServeRoot, "err", err)
			os.Exit(1)
		}
		r.Mount("/app", filesystemHandler.Routes())
		slog.Info("Serving files", "root", config.ServeRoot, "list_directory", config.ListDirectory)
	}

	server := &http.Server{
		Addr:    ":" + config.Port,
		Handler: r,
	}

	go func() {
		slog.Info("Server listening", "port", config.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "err", err)
			os.Exit(1)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("Shutdown failed", "err", err)
		os.Exit(1)
	}
	slog.Info("Server stopped")
}
