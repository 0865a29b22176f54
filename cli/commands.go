// Package cli provides the Cobra-based CLI for the storefront server.
package cli

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"go-storefront/api/handlers"
	"go-storefront/internal/config"
	"go-storefront/internal/events"
	"go-storefront/internal/services"
	"go-storefront/internal/session"
	"go-storefront/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "A small e-commerce demo: catalog, cart and checkout",
}

func init() {
	rootCmd.PersistentFlags().String("addr", ":8080", "listen address")
	rootCmd.PersistentFlags().String("env", "development", "environment: development|production")
	rootCmd.PersistentFlags().String("store", "memory", "store backend: memory|sqlite")
	rootCmd.PersistentFlags().String("store-path", "data/storefront.db", "sqlite database path")
	rootCmd.PersistentFlags().String("redis-addr", "", "redis address for session carts (in-memory carts when empty)")
	rootCmd.PersistentFlags().Duration("session-ttl", 24*time.Hour, "cart session lifetime")
	rootCmd.PersistentFlags().String("amqp-url", "", "rabbitmq URL for order events (disabled when empty)")
	rootCmd.PersistentFlags().String("amqp-queue", "orders_placed", "order event queue name")
	rootCmd.PersistentFlags().Int("amqp-pool", 10, "rabbitmq channel pool size")
	rootCmd.PersistentFlags().String("config", "", "config file")

	for _, flag := range []string{
		"addr", "env", "store", "store-path", "redis-addr",
		"session-ttl", "amqp-url", "amqp-queue", "amqp-pool", "config",
	} {
		_ = viper.BindPFlag(flag, rootCmd.PersistentFlags().Lookup(flag))
	}
	viper.SetEnvPrefix("STOREFRONT")
	viper.AutomaticEnv()

	rootCmd.AddCommand(serveCmd, seedCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the storefront HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		productStore, orderStore, err := store.Open(cfg.Store, cfg.StorePath)
		if err != nil {
			return err
		}

		var registry session.CartRegistry
		if cfg.RedisAddr != "" {
			redisRegistry, err := session.NewRedisRegistry(cfg.RedisAddr, cfg.SessionTTL)
			if err != nil {
				return err
			}
			defer redisRegistry.Close()
			registry = redisRegistry
		} else {
			registry = session.NewMemoryRegistry()
		}

		var publisher events.Publisher = events.NoopPublisher{}
		if cfg.AMQPURL != "" {
			rabbit, err := events.NewRabbitPublisher(cfg.AMQPURL, cfg.AMQPQueue, cfg.AMQPPool)
			if err != nil {
				return err
			}
			defer rabbit.Close()
			publisher = rabbit
		}

		if cfg.Store == "memory" || cfg.Store == "" {
			if err := store.SeedSampleData(cmd.Context(), productStore); err != nil {
				return err
			}
		}

		productService := services.NewProductService(productStore, registry)
		orderService := services.NewOrderService(orderStore, productService, publisher)

		router := handlers.NewRouter(cfg.Env, registry, productService, orderService)

		server := &http.Server{
			Addr:         cfg.Addr,
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		}

		go func() {
			log.Printf("Server starting on %s", cfg.Addr)
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("Failed to start server: %v", err)
			}
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		log.Println("Shutting down server...")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			return err
		}
		log.Println("Server shutdown complete")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample catalog into the configured store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		productStore, _, err := store.Open(cfg.Store, cfg.StorePath)
		if err != nil {
			return err
		}
		if err := store.SeedSampleData(cmd.Context(), productStore); err != nil {
			return err
		}
		log.Printf("Seeded sample catalog into %s store", cfg.Store)
		return nil
	},
}

// Execute is the CLI entrypoint.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
