package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/joho/godotenv"
	redislib "github.com/redis/go-redis/v9"

	cartapp "github.com/strideshop/storefront/internal/cart/app"
	cartmemory "github.com/strideshop/storefront/internal/cart/infra/memory"
	cartredis "github.com/strideshop/storefront/internal/cart/infra/redis"
	catalogapp "github.com/strideshop/storefront/internal/catalog/app"
	catalogpg "github.com/strideshop/storefront/internal/catalog/infra/postgres"
	"github.com/strideshop/storefront/internal/catalog/infra/static"
	checkoutapp "github.com/strideshop/storefront/internal/checkout/app"
	orderapp "github.com/strideshop/storefront/internal/order/app"
	"github.com/strideshop/storefront/internal/rest"
	"github.com/strideshop/storefront/pkg/config"
	"github.com/strideshop/storefront/pkg/logger"
	"github.com/strideshop/storefront/pkg/postgres"
	"github.com/strideshop/storefront/pkg/shutdown"
)

const quoteConcurrency = 10

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(logger.Options{
		Service: "storefront",
		Env:     cfg.AppEnv,
		Level:   cfg.LogLevel,
	})

	ctx, cancel := shutdown.WithSignals(context.Background())
	defer cancel()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("storefront exited", slog.Any("err", err))
		os.Exit(1)
	}
	log.Info("bye")
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	productRepo, cleanupCatalog, err := buildProductRepo(cfg, log)
	if err != nil {
		return err
	}
	defer cleanupCatalog()

	cartStore, cleanupCart, err := buildCartStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanupCart()

	catalogSvc := catalogapp.NewService(productRepo)
	cartSvc := cartapp.NewService(cartStore)
	checkoutSvc := checkoutapp.NewService(cartSvc, catalogSvc, quoteConcurrency)
	orderSvc := orderapp.NewService(checkoutSvc, cartSvc, log, cfg.ConfirmClearGrace)

	handler := rest.NewHandler(catalogSvc, cartSvc, checkoutSvc, orderSvc, log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           handler.Routes(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		log.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	wg.Wait()
	return nil
}

func buildProductRepo(cfg config.Config, log *slog.Logger) (catalogapp.ProductRepo, func(), error) {
	switch cfg.CatalogSource {
	case "postgres":
		db, err := postgres.Open(postgres.Config{
			Host: cfg.PostgresHost,
			Port: cfg.PostgresPort,
			User: cfg.PostgresUser,
			Pass: cfg.PostgresPass,
			DB:   cfg.PostgresDB,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("open catalog db: %w", err)
		}
		log.Info("catalog source", slog.String("kind", "postgres"))
		return catalogpg.NewProductRepo(db), func() { _ = db.Close() }, nil
	case "static", "":
		log.Info("catalog source", slog.String("kind", "static"))
		return static.NewRepo(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown catalog source %q", cfg.CatalogSource)
	}
}

func buildCartStore(ctx context.Context, cfg config.Config, log *slog.Logger) (cartapp.CartStore, func(), error) {
	switch cfg.CartStore {
	case "redis":
		client := redislib.NewClient(&redislib.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})

		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("ping redis: %w", err)
		}

		log.Info("cart store", slog.String("kind", "redis"), slog.String("addr", cfg.RedisAddr))
		return cartredis.NewStore(client, cfg.CartTTL), func() { _ = client.Close() }, nil
	case "memory", "":
		log.Info("cart store", slog.String("kind", "memory"))
		return cartmemory.NewStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown cart store %q", cfg.CartStore)
	}
}
