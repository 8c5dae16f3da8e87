package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mf-api/internal/api/handler"
	"mf-api/internal/api/repo"
	"mf-api/internal/api/usecase"
	"mf-api/internal/cache"
	"mf-api/internal/config"
	"mf-api/internal/kafka"
	"mf-api/internal/logger"
	mongoGo "mf-api/internal/mongo"
	"mf-api/internal/scheduler"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	// - Load Configuration
	cfg, err := config.LoadConfig("")
	if err != nil {
		logrus.Fatalf("Error loading configuration: %v", err)
	}

	log, logCloser, err := logger.New(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		logrus.Fatalf("Error creating logger: %v", err)
	}
	defer logCloser.Close()
	log.WithField("env", cfg.Env).Info("configuration loaded")

	// - Setup MongoDB database
	DB, err := mongoGo.ConnectDB(cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := DB.Disconnect(ctx); err != nil {
			log.WithError(err).Error("error during MongoDB disconnect")
			return
		}
		log.Info("MongoDB client disconnected")
	}()

	m := cfg.MongoDB
	rp := repo.NewRepo(DB, repo.Collections{
		Funds:     mongoGo.GetCollection(DB, m.DatabaseName, m.FundsCollectionName),
		Stocks:    mongoGo.GetCollection(DB, m.DatabaseName, m.StocksCollectionName),
		Timelines: mongoGo.GetCollection(DB, m.DatabaseName, m.TimelinesCollectionName),
		Favorites: mongoGo.GetCollection(DB, m.DatabaseName, m.FavoritesCollectionName),
		Users:     mongoGo.GetCollection(DB, m.DatabaseName, m.UsersCollectionName),
	})
	if err := rp.EnsureIndexes(context.Background()); err != nil {
		log.WithError(err).Warn("could not create favorites indexes")
	}

	opts := []usecase.Option{usecase.WithLogger(log)}

	// - Optional read cache
	if cfg.CacheEnabled() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis)
		cancel()
		if err != nil {
			log.WithError(err).Fatal("failed to connect to Redis")
		}
		defer redisClient.Close()
		opts = append(opts, usecase.WithCache(cache.NewRedisCache(redisClient, cfg.Redis.TTL)))
		log.WithField("addr", cfg.Redis.Addr).Info("redis cache enabled")
	}

	// - Optional favorite events
	if cfg.EventsEnabled() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		err := kafka.EnsureTopicWithRetry(ctx, cfg.Kafka, log, 10, 2*time.Second)
		cancel()
		if err != nil {
			log.WithError(err).Fatal("kafka topic is not available")
		}
		publisher := kafka.NewPublisher(cfg.Kafka)
		defer func() {
			if err := publisher.Close(); err != nil {
				log.WithError(err).Error("failed to close Kafka writer")
			}
		}()
		opts = append(opts, usecase.WithEvents(publisher))
	}

	uc := usecase.NewUsecase(rp, opts...)

	// - Scheduled jobs
	if cfg.Jobs.FundDateRefreshInterval > 0 {
		sched, err := scheduler.New(log)
		if err != nil {
			log.WithError(err).Fatal("failed to create scheduler")
		}
		if err := sched.RegisterFundDateRefresh(uc, cfg.Jobs.FundDateRefreshInterval); err != nil {
			log.WithError(err).Fatal("failed to register scheduler job")
		}
		sched.Start()
		defer func() {
			if err := sched.Stop(); err != nil {
				log.WithError(err).Error("failed to stop scheduler")
			}
		}()
	}

	// - HTTP server
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	hd := handler.NewHandler(uc, cfg.CORSOrigins)
	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      handler.NewRouter(hd, log, cfg.RequestTimeout),
		ReadTimeout:  120 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  5 * time.Second,
	}

	go func() {
		log.WithField("addr", srv.Addr).Info("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("server forced to shutdown")
	}
	log.Info("server exited")
}
