package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"certgen/internal/certificate"
	"certgen/internal/config"
	"certgen/internal/connectors"
	"certgen/internal/connectors/resttable"
	sheetsconnector "certgen/internal/connectors/sheets"
	"certgen/internal/observability"
	"certgen/internal/pipeline"
	"certgen/internal/storage"
	"certgen/internal/web"
)

func main() {
	cfg, err := config.Load()
	must(err)

	logger, err := observability.NewLogger(cfg.LogLevel)
	must(err)
	defer func() { _ = logger.Sync() }()

	db, err := storage.Open(cfg.DBPath)
	must(err)
	defer db.Close()

	store, err := makeStore(cfg)
	must(err)

	submit := connectors.NewSubmitService(db, store, cfg.SubmitStrict)
	renderer := certificate.NewPDFRenderer(cfg.FontPath, certificate.DefaultStyle())
	svc := pipeline.NewService(db, cfg, submit, renderer)
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: web.NewServer(svc, logger).Routes(),
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		_ = server.Shutdown(shutdownCtx)
	}()

	logger.Info("listening", zap.String("addr", cfg.HTTPAddr), zap.String("store", cfg.SubmitStore))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		must(err)
	}
}

func makeStore(cfg config.Config) (connectors.SubmissionStore, error) {
	switch strings.ToLower(strings.TrimSpace(cfg.SubmitStore)) {
	case "resttable":
		return resttable.NewClient(cfg), nil
	case "sheets":
		return sheetsconnector.NewConnector(cfg)
	case "none", "":
		return nil, nil
	default:
		return nil, fmt.Errorf("unsupported submission store: %s", cfg.SubmitStore)
	}
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
