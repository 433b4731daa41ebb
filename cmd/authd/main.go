package main

import (
	"context"
	"crypto/rand"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"credgate/authd/internal/auth"
	"credgate/authd/internal/config"
	"credgate/authd/internal/httpapi"
	"credgate/authd/internal/store"
	"credgate/authd/internal/store/memory"
	"credgate/authd/internal/store/postgres"
)

func main() {
	cfg := config.Load()

	var st store.Store
	var closer func()

	if cfg.DatabaseURL != "" {
		pg, err := postgres.NewStore(cfg.DatabaseURL)
		if err != nil {
			log.Fatalf("failed to init postgres store: %v", err)
		}
		st = pg
		closer = pg.Close
		log.Printf("using postgres store")
	} else {
		st = memory.NewStore()
		log.Printf("using memory store")
	}

	if closer != nil {
		defer closer()
	}

	engine := auth.NewEngine(st, signingSecret(cfg), cfg.BcryptCost)
	srv := httpapi.NewServer(engine, st)

	httpServer := &http.Server{
		Addr:              cfg.ListenAddr(),
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("authd listening on %s", cfg.ListenAddr())
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
		log.Printf("shutdown requested")
	case err := <-errCh:
		log.Printf("server error: %v", err)
	}

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	_ = httpServer.Shutdown(ctxShutdown)
}

// signingSecret returns the configured JWT secret, or a random per-process
// key when none is set. Tokens minted with a random key do not survive a
// restart, which is acceptable for development only.
func signingSecret(cfg config.Config) []byte {
	if cfg.JWTSecret != "" {
		return []byte(cfg.JWTSecret)
	}
	log.Printf("no JWT secret configured, generating a random per-process key")
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatalf("failed to generate JWT key: %v", err)
	}
	return b
}
