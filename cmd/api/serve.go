package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/ticketboard/internal/api/handlers"
	"github.com/linskybing/ticketboard/internal/api/middleware"
	"github.com/linskybing/ticketboard/internal/api/routes"
	"github.com/linskybing/ticketboard/internal/application"
	"github.com/linskybing/ticketboard/internal/changefeed"
	"github.com/linskybing/ticketboard/internal/config"
	"github.com/linskybing/ticketboard/internal/config/db"
	"github.com/linskybing/ticketboard/internal/cron"
	"github.com/linskybing/ticketboard/internal/repository"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var autoMigrate bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		config.LoadConfig()
		middleware.Init()
		log := config.NewLogger()

		categories, err := config.LoadCategories(config.CategoriesFile)
		if err != nil {
			return fmt.Errorf("load categories: %w", err)
		}

		db.Init()
		if autoMigrate {
			if err := db.Migrate(db.DB); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
		}
		sqlDB, err := db.DB.DB()
		if err != nil {
			return err
		}

		feed, cleanup, err := newBroker(log)
		if err != nil {
			return fmt.Errorf("start change feed: %w", err)
		}
		defer cleanup()

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		svc := application.New(repository.NewRepositories(db.DB), feed, categories, log)

		bidLimiter := middleware.NewRateLimiter(config.RateLimitPerMinute, time.Minute)
		cron.Start(ctx, log, "rate-limit-sweep", 5*time.Minute, func(context.Context) error {
			if n := bidLimiter.Sweep(time.Now()); n > 0 {
				log.WithField("removed", n).Debug("expired rate limit buckets")
			}
			return nil
		})

		gin.SetMode(gin.ReleaseMode)
		router := gin.New()
		router.Use(gin.Recovery())
		router.Use(middleware.CORSMiddleware())
		router.Use(middleware.LoggingMiddleware(log))
		routes.RegisterRoutes(router, handlers.New(svc, log, sqlDB.Ping), bidLimiter)

		srv := &http.Server{
			Addr:              ":" + config.ServerPort,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.WithFields(logrus.Fields{"addr": srv.Addr, "changefeed": config.ChangefeedDriver}).Info("starting API server")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				return err
			}
		case <-ctx.Done():
		}

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.WithError(err).Warn("server shutdown")
		}
		log.Info("API server stopped")
		return nil
	},
}

// newBroker builds the change feed selected by CHANGEFEED_DRIVER. The
// returned cleanup closes it and anything it owns.
func newBroker(log *logrus.Logger) (changefeed.Broker, func(), error) {
	hub := changefeed.NewHub(config.SubscriptionBuffer)

	switch config.ChangefeedDriver {
	case config.ChangefeedPostgres:
		b, err := changefeed.NewPostgresBroker(db.DB, db.DSN(), config.ChangefeedChannel, hub, log)
		if err != nil {
			return nil, nil, err
		}
		return b, func() { _ = b.Close() }, nil

	case config.ChangefeedRedis:
		client, err := config.NewRedisClient(config.RedisAddr)
		if err != nil {
			return nil, nil, err
		}
		b := changefeed.NewRedisBroker(client, config.ChangefeedChannel, hub, log)
		return b, func() {
			_ = b.Close()
			client.Close()
		}, nil

	default:
		return hub, func() { _ = hub.Close() }, nil
	}
}

func init() {
	serveCmd.Flags().BoolVar(&autoMigrate, "migrate", false, "run database migrations before serving")
	rootCmd.AddCommand(serveCmd)
}
