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

	"github.com/spfbase/payments/internal/api"
	"github.com/spfbase/payments/internal/clients/auth"
	"github.com/spfbase/payments/internal/clients/taxauthority"
	"github.com/spfbase/payments/internal/repository"
	"github.com/spfbase/payments/internal/service"
	"github.com/spfbase/payments/pkg/broker"
	"github.com/spfbase/payments/pkg/config"
	"github.com/spfbase/payments/pkg/job"
	"github.com/spfbase/payments/pkg/logger"
	"github.com/spfbase/payments/pkg/postgres"
)

const (
	ReadTimeout  = 3 * time.Second
	WriteTimeout = 5 * time.Second

	receiptRetryInterval = time.Minute
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg, err := config.New(".env")
	panicOnErr("load config", err)

	l, err := logger.New(cfg.Logger.Level)
	panicOnErr("create logger", err)

	pool, err := postgres.Connect(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConn)
	panicOnErr("connect to postgres", err)
	defer pool.Close()

	err = postgres.UpMigrations(cfg.Postgres.DSN)
	panicOnErr("up migrations", err)

	repo := repository.New(pool)

	taxClient := taxauthority.NewClient(cfg.Tax)

	producer := broker.NewProducer(l, cfg.Kafka.Brokers, cfg.Kafka.PaymentCompletedTopic)
	defer producer.Close()

	s := service.New(repo, taxClient, producer, cfg.Gateway)

	authService := auth.NewClient(cfg.AuthServiceURL)

	{
		job.NewService().
			RegisterJob("issue pending receipts", receiptRetryInterval, s.IssuePendingReceipts).
			Start(ctx)
	}

	handler := api.NewHandler(s)
	mw := api.NewMiddleware(authService, cfg.HTTP.APIKeyEnabled, cfg.HTTP.APIKey)

	router := api.NewRouter(handler, mw)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
	}

	var wg sync.WaitGroup

	wg.Add(1)

	go func() {
		defer wg.Done()

		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Panicf("listen and serve: %s", err)
		}
	}()

	slog.InfoContext(ctx, "service started", "port", cfg.HTTP.Port)

	wg.Add(1)

	go func() {
		defer wg.Done()

		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
		sig := <-ch

		slog.InfoContext(ctx, "got OS signal", "signal", sig.String())

		err = server.Shutdown(ctx)
		if err != nil {
			slog.ErrorContext(ctx, "server shutdown", "error", err)
		}
	}()

	wg.Wait()
}

func panicOnErr(msg string, err error) {
	if err != nil {
		log.Panicf("%s: %s", msg, err)
	}
}
