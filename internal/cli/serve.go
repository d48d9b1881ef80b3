package cli

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/tilework/wordgrid/internal/server"
	"github.com/tilework/wordgrid/pkg/dictionary"
)

// shutdownTimeout bounds graceful shutdown of in-flight requests.
const shutdownTimeout = 10 * time.Second

// serveCommand creates the serve command for running the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the wordgrid HTTP API",
		Long: `Run the wordgrid HTTP API.

Endpoints:
  POST /api/layouts       compute and store a layout
  GET  /api/layouts       list stored layouts
  GET  /api/layouts/{id}  fetch a stored layout
  POST /api/words/filter  filter words against the dictionary
  GET  /healthz           liveness probe

The listen address comes from --addr, the PORT environment variable, or
the config file, in that order of precedence.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd, addr, noCache)
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", "", "listen address (default: from config, :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable layout caching")

	return cmd
}

// runServe builds the server and blocks until the context is canceled.
func (c *CLI) runServe(cmd *cobra.Command, addr string, noCache bool) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if addr == "" {
		addr = cfg.Server.Addr
	}

	dict, err := c.loadDictionary(cfg.Dictionary.Path)
	if err != nil {
		return err
	}

	store := c.newCache(cmd, cfg, noCache)
	defer store.Close()

	srv := server.New(server.Options{
		DefaultSize:  cfg.Board.Size,
		DefaultEmpty: cfg.Board.Empty,
		Dict:         dict,
		Cache:        store,
		Logger:       c.Logger,
	})

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           srv,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		c.Logger.Info("listening", "addr", addr)
		errCh <- httpSrv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-cmd.Context().Done():
	}

	c.Logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// loadDictionary loads the configured word list, defaulting to the embedded one.
func (c *CLI) loadDictionary(path string) (*dictionary.Dictionary, error) {
	if path == "" {
		return dictionary.Embedded(), nil
	}
	dict, err := dictionary.Load(path)
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("loaded dictionary", "path", path, "words", dict.Len())
	return dict, nil
}
