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
	"github.com/shenikar/shelter_guard/internal/auth"
	v1 "github.com/shenikar/shelter_guard/internal/handler/http/v1"
	"github.com/shenikar/shelter_guard/internal/repository"
	"github.com/shenikar/shelter_guard/internal/service"
	"github.com/shenikar/shelter_guard/internal/webhook"
	"github.com/shenikar/shelter_guard/pkg/postgres"
	redisclient "github.com/shenikar/shelter_guard/pkg/redis"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	_ "github.com/shenikar/shelter_guard/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 5 * time.Second

func serveCmd(a *app) *cobra.Command {
	var migrateFirst bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API and the webhook worker",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if migrateFirst {
				a.log.Info("Running database migrations...")
				if err := postgres.Migrate(a.cfg, "up"); err != nil {
					return err
				}
				a.log.Info("Database migrations applied successfully")
			}
			return a.serve(cmd.Context())
		},
	}
	cmd.Flags().BoolVar(&migrateFirst, "migrate", true, "apply pending migrations before start")
	return cmd
}

func (a *app) serve(parent context.Context) error {
	// Контекст для graceful shutdown
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, a.cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer dbpool.Close()
	a.log.Info("Successfully connected to PostgreSQL")

	// Инициализация Redis клиента
	redisClient, err := redisclient.NewRedisClient(ctx, a.cfg)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	defer redisClient.Close()
	a.log.Info("Successfully connected to Redis")

	webhookPublisher := webhook.NewRedisWebhookPublisher(redisClient)
	webhookWorker := webhook.NewWebhookWorker(redisClient, a.log, a.cfg)

	// Инициализация репозиториев
	accountRepo := repository.NewAccountRepository(dbpool)
	bottleRepo := repository.NewBottleRepository(dbpool)
	shelterRepo := repository.NewShelterRepository(dbpool, redisClient, a.cfg.ShelterCacheTTL)

	// Инициализация сервисов
	tokens := auth.NewTokenManager(a.cfg.JWTSecret, a.cfg.JWTTTL)
	identityService := service.NewIdentityService(accountRepo, tokens, a.log)
	bottleService := service.NewBottleService(bottleRepo, accountRepo, identityService, a.log, webhookPublisher)
	shelterService := service.NewShelterService(shelterRepo, identityService, a.log, webhookPublisher)

	handler := v1.NewHandler(identityService, bottleService, shelterService, a.log)

	// Настройка Gin роутера
	router := gin.New()
	router.Use(gin.Recovery())
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", a.cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		a.log.Infof("HTTP server started on port %s", a.cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("error starting HTTP server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		return webhookWorker.Run(gCtx)
	})

	g.Go(func() error {
		<-gCtx.Done()
		a.log.Info("Received shutdown signal, shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("server forced to shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	a.log.Info("Server gracefully stopped")
	return nil
}
