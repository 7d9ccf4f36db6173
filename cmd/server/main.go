package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/igrii/tienda/internal/config"
	"github.com/igrii/tienda/internal/es"
	"github.com/igrii/tienda/internal/httpserver"
	"github.com/igrii/tienda/internal/logging"
	"github.com/igrii/tienda/internal/middleware/ipfilter"
	loggingmw "github.com/igrii/tienda/internal/middleware/logging"
	"github.com/igrii/tienda/internal/models"
	"github.com/igrii/tienda/internal/mykafka"
	"github.com/igrii/tienda/internal/repo"
	"github.com/igrii/tienda/internal/service"
	pkgdb "github.com/igrii/tienda/pkg/db"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()
	config.MustNonEmpty(cfg.DatabaseURL, "DATABASE_URL")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := pkgdb.Open(ctx, cfg.DatabaseURL)
	cancel()
	if err != nil {
		log.Fatalf("db open: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Categoria{},
		&models.Producto{},
		&models.ImagenProducto{},
		&models.Usuario{},
	); err != nil {
		log.Fatalf("db migrate: %v", err)
	}

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	var producer *mykafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer, err = mykafka.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			log.Fatalf("kafka producer: %v", err)
		}
		defer producer.Close()
	}

	searchHandler := &httpserver.SearchHTTP{Index: cfg.ESIndex}
	catalogSvc := &service.CatalogService{
		Repo:     &repo.GormRepo{DB: db},
		Producer: producer,
		ESIndex:  cfg.ESIndex,
	}
	if cfg.ESURL != "" {
		esClient, err := es.NewClient(cfg.ESURL, cfg.ESUser, cfg.ESPassword)
		if err != nil {
			log.Fatalf("elasticsearch: %v", err)
		}
		catalogSvc.ES = esClient
		searchHandler.ES = esClient
	}

	authSvc := &service.AuthService{
		Repo:      &repo.GormRepo{DB: db},
		JWTSecret: cfg.JWTSecret,
		Producer:  producer,
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	if len(cfg.AllowedOrigins) > 0 {
		e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
			AllowOrigins:     cfg.AllowedOrigins,
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodDelete},
			AllowHeaders:     []string{echo.HeaderContentType, echo.HeaderAuthorization},
			AllowCredentials: true,
		}))
	} else {
		e.Use(echomw.CORS())
	}
	if len(cfg.AllowedIPs) > 0 {
		e.Use(ipfilter.AllowIPs(cfg.AllowedIPs))
	}

	httpserver.Register(e, &httpserver.Deps{
		Auth:       &httpserver.AuthHTTP{Svc: authSvc},
		Categories: &httpserver.CategoryHTTP{Svc: catalogSvc},
		Products:   &httpserver.ProductHTTP{Svc: catalogSvc},
		Images:     &httpserver.ImageHTTP{Svc: catalogSvc},
		Search:     searchHandler,
		JWTSecret:  cfg.JWTSecret,
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("tienda listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	log.Println("tienda stopped")
}
