package cmd

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"servermon/api"
	"servermon/config"
	"servermon/controllers"
	"servermon/models"
	"servermon/services"
)

var envFile string

var rootCmd = &cobra.Command{
	Use:   "servermon",
	Short: "Serve the servers monitoring table over HTTP",
	Long: `servermon exposes the rows of the servers table as JSON on GET /servers.

The database is selected with DATABASE_URL and the listen port with PORT
(default 5000). Both can also be set in a .env file.`,
	SilenceUsage: true,
	RunE:         runServe,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file to load if present")
	rootCmd.Flags().Int("port", config.DefaultPort, "port to listen on (overrides PORT)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(envFile, cmd.Flags())
	if err != nil {
		return err
	}
	setupLogging(cfg, os.Stdout)

	db, err := models.Open(cfg.DatabaseURL)
	if err != nil {
		log.Error().Err(err).Msg("failed to open database")
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	serverController := controllers.NewServerController(services.NewServerService(db), cfg.QueryTimeout)
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           api.NewRouter(serverController),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			log.Error().Err(err).Msg("app failed to start")
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return err
	}
	log.Info().Msg("stopped")
	return nil
}

func setupLogging(cfg *config.Config, out io.Writer) {
	zerolog.TimeFieldFormat = time.RFC3339
	if cfg.LogFormat == "console" {
		log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: out}).With().Timestamp().Logger()
	} else {
		log.Logger = zerolog.New(out).With().Timestamp().Logger()
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		log.Warn().Str("log_level", cfg.LogLevel).Msg("unknown log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.DefaultContextLogger = &log.Logger

	// gin's route table and warnings only show up at debug level.
	if level <= zerolog.DebugLevel {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	gin.DefaultWriter = log.Logger
	gin.DefaultErrorWriter = log.Logger
}
