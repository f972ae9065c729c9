package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"veteranapp.org/internal/authz"
	"veteranapp.org/internal/hosting"
	"veteranapp.org/internal/httpapi"
	"veteranapp.org/internal/identity"
	"veteranapp.org/internal/obs"
	"veteranapp.org/internal/roster"
	"veteranapp.org/internal/session"
	"veteranapp.org/internal/token"
)

var (
	version = "0.3.0"
	commit  = "dev"
)

func main() {
	obs.Init()
	obs.InitBuildInfo(version, commit)

	secret := os.Getenv("VETERAN_AUTH_SECRET")
	if secret == "" {
		log.Fatal("VETERAN_AUTH_SECRET is required")
	}
	codec, err := token.NewCodec(secret)
	if err != nil {
		log.Fatalf("token codec: %v", err)
	}

	// Database is optional; without a DSN the seeded in-memory roster is used.
	var (
		db    *sql.DB
		store roster.Store
	)
	if dsn := os.Getenv("VETERAN_PG_DSN"); dsn != "" {
		db, err = sql.Open("pgx", dsn)
		if err != nil {
			log.Fatalf("open db: %v", err)
		}
		db.SetMaxOpenConns(10)
		db.SetMaxIdleConns(10)
		db.SetConnMaxLifetime(30 * time.Minute)
		store = roster.NewPG(db)
	} else {
		store = roster.NewMemorySeeded()
	}

	contribution := hosting.DefaultContribution
	if raw := os.Getenv("VETERAN_CONTRIBUTION_AMOUNT"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || v <= 0 {
			log.Fatalf("invalid VETERAN_CONTRIBUTION_AMOUNT: %q", raw)
		}
		contribution = v
	}

	directory := identity.NewMemoryDirectory(identity.SeedUsers())
	sessions, err := session.NewManager(codec, directory)
	if err != nil {
		log.Fatalf("session manager: %v", err)
	}
	gate, err := authz.NewGate(sessions, directory)
	if err != nil {
		log.Fatalf("authorization gate: %v", err)
	}
	scheduler := hosting.NewScheduler(store, contribution)

	api := httpapi.New(
		httpapi.ReadyProbe{DB: db},
		version,
		sessions,
		gate,
		directory,
		identity.PlaintextVerifier{},
		store,
		scheduler,
	)

	addr := os.Getenv("VETERAN_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           api.Handler(),
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Starting veteranapp-api %s on %s", version, srv.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	<-stop
	log.Println("Shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = srv.Shutdown(ctx)
	if db != nil {
		_ = db.Close()
	}
	log.Println("Stopped")
}
