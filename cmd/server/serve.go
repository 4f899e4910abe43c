package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/iliyamo/catalog-ticket-service/internal/catalog"
	"github.com/iliyamo/catalog-ticket-service/internal/config"
	"github.com/iliyamo/catalog-ticket-service/internal/database"
	"github.com/iliyamo/catalog-ticket-service/internal/handler"
	"github.com/iliyamo/catalog-ticket-service/internal/logger"
	"github.com/iliyamo/catalog-ticket-service/internal/metrics"
	"github.com/iliyamo/catalog-ticket-service/internal/qr"
	"github.com/iliyamo/catalog-ticket-service/internal/queue"
	"github.com/iliyamo/catalog-ticket-service/internal/repository"
	"github.com/iliyamo/catalog-ticket-service/internal/router"
	queue_publisher "github.com/iliyamo/catalog-ticket-service/internal/service"
	"github.com/iliyamo/catalog-ticket-service/internal/storage"
	"github.com/iliyamo/catalog-ticket-service/internal/ticket"
)

var rootCmd = &cobra.Command{
	Use:          "server",
	Short:        "Product catalog, ticket and QR service",
	SilenceUsage: true,
	RunE:         func(cmd *cobra.Command, _ []string) error { return serve(cmd.Context()) },
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server (default)",
	RunE:  func(cmd *cobra.Command, _ []string) error { return serve(cmd.Context()) },
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(qrCmd)
}

func serve(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Env)

	cat, err := loadCatalog(ctx, cfg)
	if err != nil {
		return err
	}
	log.Info("catalog loaded", "source", cfg.Catalog.Source, "products", cat.Len())

	tmpl, err := loadTemplate(cfg.Ticket)
	if err != nil {
		return err
	}
	disk, err := storage.Open(ctx, cfg.Artifacts)
	if err != nil {
		return err
	}

	store := ticket.NewStore()
	gen := ticket.NewGenerator(tmpl, store, disk, ticket.Options{
		CompanyName:   cfg.Ticket.CompanyName,
		Address:       cfg.Ticket.Address,
		FooterMessage: cfg.Ticket.FooterMessage,
	})
	m := metrics.New()

	var events handler.EventPublisher
	if cfg.Events.Enabled {
		events = &queue_publisher.Publisher{URL: cfg.Events.URL, Queue: cfg.Events.Queue, Logger: log}
	}
	if cfg.Events.ConsumerEnabled {
		c := &queue.Consumer{URL: cfg.Events.URL, Queue: cfg.Events.Queue, LogDir: cfg.Events.LogDir, Logger: log}
		go func() {
			if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				log.Error("ticket consumer stopped", "err", err)
			}
		}()
	}

	rdb := connectRedis(ctx, cfg.Redis, log)
	if rdb != nil {
		defer rdb.Close()
	}

	deps := router.Deps{
		Catalog:   handler.NewCatalogHandler(cat),
		Tickets:   handler.NewTicketHandler(gen, store, events, m, log),
		QR:        handler.NewQRHandler(qr.New(), m, log),
		Metrics:   m,
		Logger:    log,
		Redis:     rdb,
		Cache:     cfg.Cache,
		RateLimit: cfg.RateLimit,
	}
	if local, ok := disk.(*storage.Local); ok {
		deps.StaticDir, deps.StaticPrefix = local.Root(), local.Prefix()
	}
	e := router.New(deps)

	addr := ":" + cfg.Port
	errCh := make(chan error, 1)
	go func() { errCh <- e.Start(addr) }()
	log.Info("listening", "addr", addr, "env", cfg.Env)

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}
	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func loadCatalog(ctx context.Context, cfg config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Source != "mysql" {
		return catalog.New(catalog.Seed()), nil
	}
	db, err := database.Open(ctx, cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("open catalog database: %w", err)
	}
	defer db.Close()
	return catalog.Load(ctx, repository.NewProductRepo(db))
}

func loadTemplate(cfg config.TicketConfig) (*ticket.Template, error) {
	if cfg.TemplatePath != "" {
		return ticket.LoadTemplate(cfg.TemplatePath)
	}
	return ticket.DefaultTemplate()
}

func connectRedis(ctx context.Context, cfg config.RedisConfig, log *slog.Logger) *redis.Client {
	rdb, err := config.NewRedisClient(ctx, cfg)
	if err != nil {
		log.Warn("redis unavailable; cache and rate limiting disabled", "err", err)
		return nil
	}
	return rdb
}
