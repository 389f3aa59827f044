package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/aeroops/lostfound/internal/api"
	"github.com/aeroops/lostfound/internal/clients/imagehost"
	"github.com/aeroops/lostfound/internal/entity"
	"github.com/aeroops/lostfound/internal/repository"
	"github.com/aeroops/lostfound/internal/service"
	"github.com/aeroops/lostfound/pkg/broker"
	"github.com/aeroops/lostfound/pkg/config"
	"github.com/aeroops/lostfound/pkg/logger"
	"github.com/aeroops/lostfound/pkg/postgres"
)

const (
	ReadTimeout  = 20 * time.Second
	WriteTimeout = 20 * time.Second
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l := logger.New(logger.ParseLevel(cfg.LogLevel))

	pool, err := postgres.Connect(ctx, cfg.PostgresDSN, cfg.PostgresMaxConns)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.PostgresDSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	images := service.ImageHost(imagehost.NewClient(cfg.ImageHost))

	if cfg.ImageHost.Mock {
		images = imagehost.NewMock()
	}

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.NotificationTopic)
	defer producer.Close()

	s := service.New(cfg, repo, images, producer)

	err = bootstrapAdmin(ctx, cfg.Bootstrap, repo)
	panicOnErr("bootstrap admin", err)

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(s)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		slog.InfoContext(ctx, "http server started", "port", cfg.HTTPPort)

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}

		slog.DebugContext(ctx, "http server stopped")
	}()

	waitSignal(cancel, server)

	wg.Wait()
}

// bootstrapAdmin seeds the first admin account on an empty database so the
// deployment has a way in. Does nothing when unconfigured or when the
// account already exists.
func bootstrapAdmin(ctx context.Context, cfg config.BootstrapConfig, repo *repository.Repository) error {
	if cfg.AdminEmployeeNumber == "" || cfg.AdminPassword == "" {
		return nil
	}

	_, err := repo.UserByEmployeeNumber(ctx, cfg.AdminEmployeeNumber)
	if err == nil {
		return nil
	}

	if !errors.Is(err, entity.ErrNotFound) {
		return fmt.Errorf("check admin account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := entity.User{
		ID:             uuid.Must(uuid.NewV4()),
		EmployeeNumber: cfg.AdminEmployeeNumber,
		FirstName:      "System",
		LastName:       "Admin",
		PasswordHash:   string(hash),
		Role:           entity.RoleAdmin,
		CreatedAt:      time.Now(),
	}

	err = repo.CreateUser(ctx, admin)
	if err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}

	slog.InfoContext(ctx, "admin account bootstrapped", "employee_number", cfg.AdminEmployeeNumber)

	return nil
}

func waitSignal(cancel context.CancelFunc, server *http.Server) {
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	sig := <-ch

	slog.Info("got OS signal", "signal", sig.String())

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second)
	defer shutdownCancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		slog.ErrorContext(shutdownCtx, "server shutdown", "error", err)
	}
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
