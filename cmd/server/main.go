package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/elastic/go-elasticsearch/v9"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/secureshop/backend/internal/config"
	"github.com/secureshop/backend/internal/es"
	"github.com/secureshop/backend/internal/handlers"
	"github.com/secureshop/backend/internal/logging"
	authmw "github.com/secureshop/backend/internal/middleware/auth"
	loggingmw "github.com/secureshop/backend/internal/middleware/logging"
	"github.com/secureshop/backend/internal/mykafka"
	"github.com/secureshop/backend/internal/session"
	"github.com/secureshop/backend/internal/store"
	httpserver "github.com/secureshop/backend/internal/transport/http"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	config.MustNonEmpty(cfg.JWT_SECRET, "JWT_SECRET")
	config.MustNonEmpty(cfg.ADMIN_PASSWORD, "ADMIN_PASSWORD")

	logger := logging.New(cfg.LOG_LEVEL)
	slog.SetDefault(logger)

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("database init error: %v", err)
	}
	if err := store.Seed(db, cfg.ADMIN_PASSWORD); err != nil {
		log.Fatalf("fixture seed error: %v", err)
	}
	st := store.NewGormStore(db)

	var producer *mykafka.Producer
	if cfg.KAFKA_ADDRESS != "" {
		producer = mykafka.NewProducer([]string{cfg.KAFKA_ADDRESS})
	}

	var esClient *elasticsearch.Client
	if cfg.ES_URL != "" {
		esClient, err = es.NewClient(cfg)
		if err != nil {
			log.Fatal(err)
		}
	}

	jwtSecret := []byte(cfg.JWT_SECRET)
	sessions := &session.Manager{Store: st}
	guard := &authmw.Middleware{Sessions: sessions, JWTSecret: jwtSecret}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	if cfg.CORS_ORIGINS != "" {
		e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins:     strings.Split(cfg.CORS_ORIGINS, ","),
			AllowCredentials: true,
		}))
	}
	e.Use(loggingmw.RequestLogger(logger))

	deps := httpserver.Deps{
		Auth:     &handlers.AuthHandler{Store: st, Sessions: sessions, JWTSecret: jwtSecret, Producer: producer},
		Users:    &handlers.UserHandler{Store: st},
		Products: &handlers.ProductHandler{Store: st, Producer: producer},
		Reviews:  &handlers.ReviewHandler{Store: st, Producer: producer},
		Checkout: &handlers.CheckoutHandler{Store: st, Producer: producer},
		Stats:    &handlers.StatsHandler{Store: st},
		Files:    &handlers.FileHandler{UploadDir: cfg.UPLOAD_DIR},
		Search:   &handlers.SearchHandler{ES: esClient, Index: "product", Store: st},
		Guard:    guard,
	}
	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         ":" + cfg.PORT,
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("http server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("server shutdown error: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			log.Printf("db close error: %v", err)
		}
	} else {
		log.Printf("db() error: %v", err)
	}

	if err := producer.Close(); err != nil {
		log.Printf("kafka close error: %v", err)
	}

	log.Println("shutdown complete")
}
