package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/99designs/gqlgen/graphql/handler"
	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/spf13/cobra"

	"github.com/campusbase/registrar/internal/graph"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:     "serve",
	Aliases: []string{"s"},
	Short:   "Start the web server",
	Long: `Start an HTTP server that serves the GraphQL API.

The server exposes:
  - GraphQL endpoint at /graphql (POST, and websocket for subscriptions)
  - GraphQL Playground at /graphql (GET) for interactive queries

Examples:
  # Start server on the configured port
  registrar serve

  # Start server on a custom port with seeded data
  registrar serve --port 3000 --seed fixtures/sample.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServer()
	},
}

func runServer() error {
	// Create GraphQL server
	es := graph.NewExecutableSchema(graph.Config{
		Resolvers: &graph.Resolver{Registry: reg, Events: events},
	})
	srv := handler.NewDefaultServer(es)

	// Set up routes
	mux := http.NewServeMux()

	// GraphQL endpoint - serves the API, subscriptions, and playground
	mux.Handle("/graphql", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Serve playground on plain GET requests; websocket upgrades go to the API
		if r.Method == http.MethodGet && r.Header.Get("Upgrade") == "" {
			playground.Handler("Registrar GraphQL", "/graphql").ServeHTTP(w, r)
			return
		}
		srv.ServeHTTP(w, r)
	}))

	port := cfg.Server.Port
	if servePort != 0 {
		port = servePort
	}

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Set up signal handling with context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Channel to listen for server errors
	serverErr := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info().Int("port", port).Msgf("GraphQL Playground: http://localhost:%d/graphql", port)
		serverErr <- server.ListenAndServe()
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-serverErr:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		log.Info().Msg("shutting down")

		// Create context with timeout for graceful shutdown
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		log.Info().Msg("server stopped")
	}

	return nil
}

func init() {
	serveCmd.Flags().IntVarP(&servePort, "port", "p", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
