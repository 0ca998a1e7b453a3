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

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/sync/errgroup"

	"github.com/tmusat/eurovote/internal/config"
	"github.com/tmusat/eurovote/internal/metrics"
	"github.com/tmusat/eurovote/internal/middleware"
	"github.com/tmusat/eurovote/internal/models"
	"github.com/tmusat/eurovote/internal/server"
	"github.com/tmusat/eurovote/internal/service"
	"github.com/tmusat/eurovote/internal/storage/sqlite"
	"github.com/tmusat/eurovote/internal/store"
	"github.com/tmusat/eurovote/pkg/logging"
)

func main() {
	logging.Setup()

	if err := run(); err != nil {
		slog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The seed database holds the lineup and bootstrap accounts; scoring
	// state lives in memory for the lifetime of the run.
	seed, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open seed database: %w", err)
	}
	defer seed.Close()

	created, err := seed.EnsureAdmin(ctx, cfg.AdminUsername, cfg.AdminPIN)
	if err != nil {
		return fmt.Errorf("failed to ensure admin account: %w", err)
	}
	if created {
		slog.Info("bootstrap admin created", "username", cfg.AdminUsername)
	}

	users := store.New[models.User]()
	participants := store.New[models.Participant]()
	reviews := store.New[models.Review]()

	seededUsers, err := seed.Users(ctx)
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}
	for _, u := range seededUsers {
		users.Add(u)
	}

	lineup, err := seed.Participants(ctx)
	if err != nil {
		return fmt.Errorf("failed to load participants: %w", err)
	}
	for _, p := range lineup {
		participants.Add(p)
	}
	slog.Info("seed loaded", "database", cfg.DBPath, "users", len(seededUsers), "participants", len(lineup))

	api := server.New(
		service.NewUserService(users),
		service.NewParticipantService(participants),
		service.NewReviewService(reviews),
	)

	mux := http.NewServeMux()
	mux.Handle("/api/v1/", api.Handler())
	mux.Handle("GET /metrics", metrics.Handler())

	handler := middleware.Logging(middleware.CORS(middleware.Metrics(mux)))

	// h2c allows HTTP/2 without TLS for clients that want it.
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: h2c.NewHandler(handler, &http2.Server{}),
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		slog.Info("server starting", "address", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		slog.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
