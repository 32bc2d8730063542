package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"library-backend/internal/platform/config"
	"library-backend/internal/platform/db"
	"library-backend/internal/server"
)

// @title       Library management API
// @version     0.1.0
// @description Books, borrowers and the loans between them.
// @BasePath    /
func main() {
	configPath := flag.String("config", config.DefaultPath, "設定ファイルのパス")
	flag.Parse()

	// 設定読み込み
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	log.Printf("[INFO] mode:%s\n", cfg.Mode)

	conn, err := db.Connect(cfg.DB)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	log.Printf("[INFO] connected to DB: driver=%s", cfg.DB.Driver)

	// SQLite はファイルを作った直後なので常にスキーマを流す
	if cfg.DB.Migrate || conn.Dialect.Name == db.DialectSQLite {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		err := db.Migrate(ctx, conn)
		cancel()
		if err != nil {
			log.Fatal(err)
		}
		log.Println("[INFO] schema migrated")
	}

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           server.New(cfg, conn),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		var err error
		if cfg.TLSEnabled() {
			log.Printf("[INFO] listening on https://%s", cfg.Server.Addr)
			err = srv.ListenAndServeTLS(cfg.Server.TLS.Cert, cfg.Server.TLS.Key)
		} else {
			log.Printf("[INFO] listening on http://%s", cfg.Server.Addr)
			err = srv.ListenAndServe()
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal(err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("[INFO] shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal(err)
	}
}
