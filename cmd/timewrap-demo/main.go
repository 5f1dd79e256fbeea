package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"timewrap/internal/config"
	"timewrap/internal/logging"
	"timewrap/internal/server"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "timewrap-demo",
	Short: "HTTP server that logs the duration of every request",
	RunE:  serve,
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&cfgFile, "config", "", "config file (yaml)")
	f.String("listen-addr", ":8080", "address to listen on")
	f.String("log-level", "info", "log level")
	f.String("log-format", "json", "log format: json or console")
	f.String("formatter", "default", "timing line formatter: default or request-id")
	f.Bool("metrics-enabled", true, "expose /metrics")

	for _, name := range []string{"listen-addr", "log-level", "log-format", "formatter", "metrics-enabled"} {
		if err := viper.BindPFlag(flagKey(name), f.Lookup(name)); err != nil {
			log.Fatal().Err(err).Str("flag", name).Msg("bind flag")
		}
	}
}

func flagKey(name string) string {
	return strings.ReplaceAll(name, "-", "_")
}

func serve(cmd *cobra.Command, args []string) error {
	v := viper.GetViper()
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	}
	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat, os.Stdout); err != nil {
		return err
	}

	h, err := server.New(cfg, nil)
	if err != nil {
		return err
	}
	srv := &http.Server{Addr: cfg.ListenAddr, Handler: h}

	go func() {
		log.Info().Msgf("listening %s", cfg.ListenAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.GracefulShutdownTimeout)*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		return err
	}
	log.Info().Msg("server exited")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal().Err(err).Msg("timewrap-demo failed")
	}
}
