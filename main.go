package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	auction "realtime-auction/internal/auctionService"
	"realtime-auction/internal/config"
	"realtime-auction/internal/models"
	"realtime-auction/internal/notifier"
	"realtime-auction/internal/repository"
	"realtime-auction/internal/server"
	"realtime-auction/utils"

	"github.com/gin-gonic/gin"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		utils.Fatal("failed to load configuration", map[string]any{"error": err.Error()})
	}
	if err := utils.SetLevel(cfg.Log.Level); err != nil {
		utils.Fatal("failed to set log level", map[string]any{"error": err.Error()})
	}
	gin.SetMode(gin.ReleaseMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := models.SystemClock{}
	repo := repository.NewMemoryRepo(clock)
	defer repo.Close()

	hub := notifier.NewHub()
	go hub.Run(ctx)

	auctionSvc := auction.NewAuctionService(repo, hub, clock, cfg.Auction.Validity)

	var seeder *auction.Seeder
	if cfg.Auction.Seed {
		seeder = auction.NewSeeder(auctionSvc, auction.DefaultCatalog, cfg.Auction.SeedInterval, nil)
		if err := seeder.Start(); err != nil {
			utils.Fatal("failed to start seeder", map[string]any{"error": err.Error()})
		}
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           server.SetupRouter(auctionSvc, hub),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		utils.Info("starting auction server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			utils.Fatal("server stopped unexpectedly", map[string]any{"error": err.Error()})
		}
	}()

	<-ctx.Done()
	utils.Info("shutting down", nil)

	if seeder != nil {
		<-seeder.Stop().Done()
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		utils.Error("graceful shutdown failed", map[string]any{"error": err.Error()})
	}
}
