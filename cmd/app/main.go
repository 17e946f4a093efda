package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"exphub/internal/cache"
	"exphub/internal/github"
	"exphub/internal/realtime"
	"exphub/internal/service"
	"exphub/internal/storage/pgx"
	transport "exphub/internal/transport/http"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger := log.New(os.Stdout, "", log.LstdFlags)

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("env DATABASE_URL is empty")
	}

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	ttl := cache.DefaultTTL
	if raw := os.Getenv("CACHE_TTL"); raw != "" {
		parsed, err := time.ParseDuration(raw)
		if err != nil {
			log.Fatalf("invalid CACHE_TTL %q: %v", raw, err)
		}
		ttl = parsed
	}

	st, err := pgx.NewPgxStorage(ctx, dsn)
	if err != nil {
		log.Fatalf("failed to init storage: %v", err)
	}
	defer st.Close()

	if err := st.Ping(ctx); err != nil {
		log.Fatalf("db ping failed: %v", err)
	}

	upstream, err := github.NewClient(os.Getenv("GITHUB_TOKEN"), logger)
	if err != nil {
		log.Fatalf("failed to init github client: %v", err)
	}

	snapshots := cache.New(ttl)
	defer snapshots.Stop()

	hub := realtime.NewHub(logger)

	svc := service.NewService(
		st, // ProjectStorage
		st, // UserStorage
		st, // EnrollmentStorage
		st, // AnalyticsStorage
		st, // txManager
		upstream,
		snapshots,
		hub,
		logger,
	)

	router := transport.NewHandler(
		svc,
		svc,
		hub,
		realtime.ServeWS(hub, svc, logger),
		logger,
	)

	srv := &http.Server{
		Addr:         addr,
		Handler:      router.Routes(),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Printf("HTTP server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe failed: %v", err)
		}
	}()

	<-ctx.Done()
	logger.Println("signal received, shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Printf("HTTP server shutdown error: %v", err)
	} else {
		logger.Println("HTTP server gracefully stopped")
	}
}
