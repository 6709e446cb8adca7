// Command tzserver exposes the time zone conversion engine as a gRPC
// service. The IANA rule database is embedded in the binary, so the
// server does not depend on a host zoneinfo install.
package main

import (
	"net"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"github.com/chronoplane/tzapi/engine"
	tzgrpc "github.com/chronoplane/tzapi/grpc"
	"github.com/chronoplane/tzapi/types"
	"github.com/chronoplane/tzapi/zonedb"
)

var (
	flagConfig string
	flagListen string
)

var rootCmd = &cobra.Command{
	Use:   "tzserver",
	Short: "Time zone conversion gRPC service",
	Long: `tzserver serves the TimeZones gRPC service: stateless conversion
between absolute instants and civil times in named zones.`,
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "path to TOML config file")
	rootCmd.Flags().StringVarP(&flagListen, "listen", "l", "", "listen address (overrides config)")
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(flagConfig)
	if err != nil {
		return err
	}
	if flagListen != "" {
		cfg.Listen = flagListen
	}

	log := newLogger(cfg)

	if err := zonedb.Std().Init(); err != nil {
		log.Error().Err(err).Msg("rule database initialization failed")
		return err
	}

	eng := engine.New(zonedb.Std(), engine.WithDefaultZone(types.TimeZoneID(cfg.DefaultZone)))

	lis, err := net.Listen("tcp", cfg.Listen)
	if err != nil {
		log.Error().Err(err).Str("listen", cfg.Listen).Msg("listen failed")
		return err
	}

	gs := grpc.NewServer()
	tzgrpc.NewGRPCServer(eng).Register(gs)

	errc := make(chan error, 1)
	go func() { errc <- gs.Serve(lis) }()
	log.Info().
		Str("listen", lis.Addr().String()).
		Str("default_zone", cfg.DefaultZone).
		Msg("tzserver listening")

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigc:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		gs.GracefulStop()
		return nil
	case err := <-errc:
		log.Error().Err(err).Msg("serve failed")
		return err
	}
}

func newLogger(cfg Config) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	var log zerolog.Logger
	if cfg.LogFormat == "json" {
		log = zerolog.New(os.Stdout)
	} else {
		log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr})
	}
	return log.Level(lvl).With().Timestamp().Str("service", "tzserver").Logger()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
