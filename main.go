// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/danielhkuo/neurocare/backend"
	"github.com/danielhkuo/neurocare/chatbot"
	"github.com/danielhkuo/neurocare/cliparse"
	"github.com/danielhkuo/neurocare/db"
	"github.com/danielhkuo/neurocare/journal"
	"github.com/danielhkuo/neurocare/kvstore"
	"github.com/danielhkuo/neurocare/middleware"
	"github.com/danielhkuo/neurocare/mood"
	"github.com/danielhkuo/neurocare/router"
)

func main() {
	var err error

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open storage
	store, closeStore, err := openStore(cfg)
	if err != nil {
		slog.Error("storage setup failed", "storage", cfg.StorageType, "error", err)
		os.Exit(1)
	}
	defer closeStore()
	slog.Info("Storage ready", "storage", cfg.StorageType)

	journals := journal.NewService(store, mood.NewClassifier(), journal.Options{
		Salt:     cfg.ProfileSalt,
		Location: cfg.Location,
	})

	deps := router.Deps{
		Journals: journals,
		Chat:     chatbot.NewCanned(nil),
		Profiles: &middleware.ProfileResolver{RequireAuth: cfg.RequireAuth},

		CORSOrigins: cfg.CORSOrigins,
	}

	// External backend
	if cfg.BackendURL != "" {
		client := backend.NewClient(cfg.BackendURL, backend.Options{
			Timeout: cfg.BackendTimeout,
			Retries: cfg.BackendRetries,
		})
		deps.Profiles.Users = client
		deps.Sessions = client
		if cfg.ChatMode == cliparse.ChatRemote {
			deps.Chat = chatbot.NewRemote(client)
		}
		slog.Info("Backend configured", "url", cfg.BackendURL, "chat", cfg.ChatMode, "require_auth", cfg.RequireAuth)
	}

	// Create server
	server := http.Server{
		Handler:           router.NewRouter(deps),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}

// openStore connects the configured storage backend and returns a function
// that releases it
func openStore(cfg cliparse.Config) (kvstore.Store, func(), error) {
	switch cfg.StorageType {
	case cliparse.StorageMemory:
		slog.Warn("using in-memory storage; data is lost on restart")
		return kvstore.NewMemory(), func() {}, nil

	case cliparse.StorageRedis:
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid redis URL: %w", err)
		}
		client := redis.NewClient(opts)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("redis ping failed: %w", err)
		}
		return kvstore.NewRedis(client), func() { client.Close() }, nil

	default:
		conn, err := db.Open(cfg.StorageType, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}

		// Create schema (tables)
		if err := db.CreateSchema(conn); err != nil {
			conn.Close()
			return nil, nil, err
		}

		store, err := kvstore.NewSQL(conn, cfg.StorageType)
		if err != nil {
			conn.Close()
			return nil, nil, err
		}
		return store, func() { conn.Close() }, nil
	}
}
