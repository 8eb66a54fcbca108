package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/darkfluid/darkfluid/api"
	"github.com/darkfluid/darkfluid/content"
	"github.com/darkfluid/darkfluid/internal/config"
	"github.com/darkfluid/darkfluid/pairing"
)

var (
	port     int
	dataDir  string
	warID    int
	warStart string
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the mock backend server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.FromEnv()
		if err != nil {
			return err
		}
		// Flags override environment values when set explicitly.
		if !cmd.Flags().Changed("port") {
			port = cfg.Port
		}
		if !cmd.Flags().Changed("data-dir") {
			dataDir = cfg.DataDir
		}
		if !cmd.Flags().Changed("war-id") {
			warID = cfg.WarID
		}
		if !cmd.Flags().Changed("war-start") {
			warStart = cfg.WarStart
		}

		start, err := time.Parse(time.RFC3339, warStart)
		if err != nil {
			return fmt.Errorf("invalid war start %q: %w", warStart, err)
		}

		store, err := content.Load(dataDir)
		if err != nil {
			return fmt.Errorf("failed to load content: %w", err)
		}

		logger := slog.New(slog.NewJSONHandler(os.Stderr, nil))
		workflow := pairing.NewWorkflow(
			pairing.NewMemorySessionStore(),
			pairing.NewMemoryKeyStore(),
			pairing.WithLogger(logger),
		)
		a := api.New(workflow, store,
			api.WithLogger(logger),
			api.WithWarSeason(warID, start),
			api.WithAlertFunc(func(e api.AlertEvent) {
				logger.Warn("alert", "type", string(e.Type),
					"message", e.Message, "count", e.Count)
			}),
		)

		r := chi.NewRouter()
		r.Use(middleware.Logger)
		r.Use(middleware.Recoverer)

		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte("OK"))
		})

		r.Get("/", a.Root)
		r.Mount("/api", a.Router())

		// The game client speaks plain HTTP to this service; no TLS.
		server := &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		// Graceful shutdown on SIGINT/SIGTERM.
		done := make(chan error, 1)
		go func() {
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				done <- fmt.Errorf("server failed: %w", err)
				return
			}
			done <- nil
		}()

		printBanner()
		fmt.Printf("Starting server on port %d (war %d)...\n", port, warID)

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-quit:
			fmt.Printf("\nReceived %s, shutting down...\n", sig)
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := server.Shutdown(ctx); err != nil {
				return fmt.Errorf("server shutdown failed: %w", err)
			}
			return nil
		case err := <-done:
			return err
		}
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)
	serverCmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to listen on")
	serverCmd.Flags().StringVar(&dataDir, "data-dir", "", "Directory with content document overrides")
	serverCmd.Flags().IntVar(&warID, "war-id", 801, "War season identifier")
	serverCmd.Flags().StringVar(&warStart, "war-start", "2024-01-23T12:05:13Z", "War season start (RFC 3339)")
}
