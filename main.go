package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fivelives/tablet-api/api"
	"github.com/fivelives/tablet-api/api/handlers"
	"github.com/fivelives/tablet-api/config"
	"github.com/fivelives/tablet-api/databases"
	"github.com/fivelives/tablet-api/databases/migrations"
)

func main() {
	root := &cobra.Command{
		Use:          "tablet-api",
		Short:        "REST backend of the in-game police tablet",
		SilenceUsage: true,
		RunE:         serve,
	}
	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server (default)",
		RunE:  serve,
	})
	root.AddCommand(&cobra.Command{
		Use:   "migrate",
		Short: "Apply the app database migrations and exit",
		RunE:  migrate,
	})
	root.AddCommand(tokenCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func serve(cmd *cobra.Command, args []string) error {
	a := handlers.App{}
	a.Config = *config.New()

	// initialize databases and router
	if err := a.Initialize(); err != nil {
		return err
	}
	defer a.Close()

	srv := &http.Server{
		Addr:              ":" + a.Config.Port,
		Handler:           a.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		zap.S().Infow("tablet-api is up and running",
			"port", a.Config.Port,
			"environment", a.Config.Environment,
		)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		if !errors.Is(err, http.ErrServerClosed) {
			zap.S().Errorw("server stopped", "error", err)
			return err
		}
		return nil
	case <-ctx.Done():
	}

	zap.S().Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

func migrate(cmd *cobra.Command, args []string) error {
	cfg := config.New()
	db, err := databases.OpenApp(cfg.AppDB)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrations.Apply(db.DB); err != nil {
		zap.S().Errorw("migration failed", "error", err)
		return err
	}
	zap.S().Info("app database is up to date")
	return nil
}

// tokenCommand issues a bearer token for a tablet account, for local testing
func tokenCommand() *cobra.Command {
	var userID string
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for a user id",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()
			token, err := api.IssueToken(cfg.SecretKey, userID, cfg.TokenTTL)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	cmd.Flags().StringVar(&userID, "user", "", "tablet user id")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
