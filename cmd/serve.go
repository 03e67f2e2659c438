package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"querykeys/internal/apihandlers"
)

const shutdownTimeout = 10 * time.Second

var (
	serveAddr    string // Listen address
	servePort    string // Listen port
	serveRelease bool
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the keyword extraction HTTP API",
	Long: `Starts an HTTP server exposing POST /process, which extracts keywords from
{"query": "..."} and forwards them to the configured search service.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		// Flags win over config when explicitly set.
		if cmd.Flags().Changed("addr") {
			appInstance.Config.Server.Addr = serveAddr
		}
		if cmd.Flags().Changed("port") {
			appInstance.Config.Server.Port = servePort
		}
		if serveRelease {
			gin.SetMode(gin.ReleaseMode)
		}

		router := apihandlers.NewRouter(appInstance)
		listenAddr := appInstance.Config.ListenAddr()
		srv := &http.Server{
			Addr:              listenAddr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		errCh := make(chan error, 1)
		go func() {
			log.Infof("Starting querykeys API server on http://%s (search service: %s)", listenAddr, appInstance.Config.Downstream.URL)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
			close(errCh)
		}()

		select {
		case err := <-errCh:
			if err != nil {
				log.Errorf("Failed to run API server: %v", err)
				return fmt.Errorf("failed to run API server: %w", err)
			}
			return nil
		case <-ctx.Done():
		}

		log.Info("Shutting down API server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shut down API server: %w", err)
		}
		log.Info("API server stopped.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serveAddr, "addr", "localhost", "Address to listen on (e.g., '0.0.0.0' for all interfaces)")
	serveCmd.Flags().StringVar(&servePort, "port", "5000", "Port to listen on")
	serveCmd.Flags().BoolVar(&serveRelease, "release", false, "Run gin in release mode")
}
