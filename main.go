package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/api"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/configs"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/repository"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/routes"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/services"
	"github.com/quangthanhng/Restaurant-Website-23521453-sub001/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg := configs.LoadConfig()

	logger, err := configs.NewLogger(cfg.LogLevel)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()

	// token storage
	var tokens repository.TokenStore
	switch cfg.TokenStore {
	case "redis":
		rdb, err := configs.ConnectRedis(cfg)
		if err != nil {
			logger.Fatal("redis connect failed", zap.Error(err))
		}
		defer rdb.Close()
		tokens = repository.NewRedisSessionRepository(rdb, cfg.SessionTTL)
	default:
		if err := configs.ConnectionDB(cfg.DBSource); err != nil {
			logger.Fatal("sqlite open failed", zap.String("source", cfg.DBSource), zap.Error(err))
		}
		if err := configs.SetupDatabase(); err != nil {
			logger.Fatal("migrate failed", zap.Error(err))
		}
		repo := repository.NewSessionRepository(configs.DB())
		if n, err := repo.PurgeExpired(context.Background(), time.Now()); err == nil && n > 0 {
			logger.Info("purged expired sessions", zap.Int64("count", n))
		}
		tokens = repo
	}

	if err := configs.SeedSession(context.Background(), cfg, tokens, logger); err != nil {
		logger.Fatal("seed session failed", zap.Error(err))
	}

	// backend
	client := api.New(cfg.APIBaseURL, api.WithLogger(logger), api.WithTimeout(cfg.APITimeout))
	cartAPI := api.NewCartAPI(client)
	dishAPI := api.NewDishAPI(client)
	categoryAPI := api.NewCategoryAPI(client)
	discountAPI := api.NewDiscountAPI(client)
	contactAPI := api.NewContactAPI(client)
	tableAPI := api.NewTableAPI(client)

	loc := cfg.Location()
	carts := services.NewCartRegistry(cartAPI, tokens, logger)
	hub := ws.NewCartHub(carts, logger)
	defer hub.Close()

	deps := routes.Deps{
		Tokens:   tokens,
		Carts:    carts,
		Catalog:  services.NewCatalogService(dishAPI, categoryAPI, tableAPI, tokens, logger),
		Booking:  services.NewBookingService(carts, tableAPI, discountAPI, tokens, services.NewBookingCalculator(loc), logger),
		Contact:  services.NewContactService(contactAPI, tokens, logger),
		Admin:    services.NewAdminService(categoryAPI, dishAPI, discountAPI, contactAPI, tokens, logger),
		Hub:      hub,
		Log:      logger,
		Location: loc,
		Origins:  cfg.CORSOrigins,
	}

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Port),
		Handler: r,
	}

	go func() {
		logger.Info("storefront listening", zap.String("addr", srv.Addr), zap.String("backend", cfg.APIBaseURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
