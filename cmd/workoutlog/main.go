package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/claude/workoutlog/internal/config"
	"github.com/claude/workoutlog/internal/exercise"
	"github.com/claude/workoutlog/internal/ingest"
	"github.com/claude/workoutlog/internal/server"
	"tailscale.com/tsnet"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	logPath := flag.String("log", "", "print the summary of a YAML workout log and exit")
	version := flag.Bool("version", false, "print version and exit")
	flag.Parse()

	if *version {
		fmt.Println("workoutlog", Version)
		return
	}

	if *logPath != "" {
		if err := printSummary(*logPath); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// Load config
	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.Log.SlogLevel()}))
	log.Info("workoutlog starting", "version", Version)

	srv := server.New(cfg.Auth.APIKey, Version, log)
	if cfg.Auth.APIKey == "" {
		log.Warn("auth.api_key not set: calculation endpoints are unauthenticated")
	}

	// Start server on tsnet or plain HTTP
	var listener net.Listener

	if cfg.Tailscale.Enabled {
		tsServer := &tsnet.Server{
			Hostname: cfg.Tailscale.Hostname,
			Dir:      cfg.Tailscale.StateDir,
		}
		if err := tsServer.Start(); err != nil {
			log.Error("tsnet start failed", "error", err)
			os.Exit(1)
		}
		defer tsServer.Close()

		listener, err = tsServer.Listen("tcp", ":80")
		if err != nil {
			log.Error("tsnet listen failed", "error", err)
			os.Exit(1)
		}
		log.Info("tsnet server starting", "hostname", cfg.Tailscale.Hostname)
	} else {
		addr := cfg.Server.Addr()
		listener, err = net.Listen("tcp", addr)
		if err != nil {
			log.Error("listen failed", "addr", addr, "error", err)
			os.Exit(1)
		}
		log.Info("server starting", "addr", addr)
	}

	httpSrv := &http.Server{
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := httpSrv.Serve(listener); err != nil && err != http.ErrServerClosed {
			log.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Info("shutting down", "signal", sig)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown error", "error", err)
	}
	log.Info("server stopped")
}

// printSummary loads a YAML workout log and writes its summary to stdout.
func printSummary(path string) error {
	l, err := ingest.LoadFile(path)
	if err != nil {
		return err
	}
	w, err := ingest.BuildWorkout(l.Entries(), time.Now)
	if err != nil {
		return err
	}

	if l.Title != "" {
		fmt.Println(l.Title)
		fmt.Println()
	}
	fmt.Println(w.Summary())
	fmt.Println()
	fmt.Println(w)
	for _, kt := range w.Breakdown() {
		fmt.Printf("  %-12s %d, %s calories, %s min\n",
			kt.Kind, kt.Count, exercise.FormatQuantity(kt.Calories), exercise.FormatQuantity(kt.DurationMin))
	}
	return nil
}
