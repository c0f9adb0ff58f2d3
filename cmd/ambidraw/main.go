package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/ayusman/ambidraw/internal/app"
	"github.com/ayusman/ambidraw/internal/config"
	"github.com/ayusman/ambidraw/internal/gesture"
	"github.com/ayusman/ambidraw/internal/server"
	"github.com/ayusman/ambidraw/internal/store"
)

func main() {
	log.SetPrefix("[AMBIDRAW] ")

	cfg, err := config.Load(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// The attempt archive is optional
	var st *store.Store
	if cfg.DBPath != "" {
		st, err = openStore(cfg.DBPath)
		if err != nil {
			log.Fatalf("Failed to initialize store: %v", err)
		}
		defer st.Close()
		log.Printf("Archiving attempts to %s", st.Path())
	}

	webDir := cfg.StaticDir
	if webDir == "" {
		webDir = findWebDir()
	}
	if webDir != "" {
		log.Printf("Serving static files from: %s", webDir)
	}

	a := app.New(app.Config{
		Store:       st,
		CanvasWidth: cfg.CanvasWidth,
		SidePolicy:  cfg.Policy(),
		Thresholds:  gesture.DefaultThresholds(),
		Corners:     cfg.Corners(),
	})

	srv := server.New(server.Config{
		StaticDir: webDir,
		App:       a,
		Store:     st,
	})

	log.Printf("Starting server on %s", cfg.Addr)
	if err := srv.Run(ctx, cfg.Addr); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
	log.Printf("Server stopped")
}

func openStore(path string) (*store.Store, error) {
	if dir := filepath.Dir(filepath.Clean(path)); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create data directory: %w", err)
		}
	}
	return store.New(path)
}

// findWebDir searches for the web directory in common locations.
// It checks: "web", "../web", "../../web", and ~/.ambidraw/web.
// Returns the first existing directory or empty string if none found.
func findWebDir() string {
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	homeWebDir := filepath.Join(homeDir, ".ambidraw", "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}
