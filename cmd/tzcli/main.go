// Command tzcli is a test driver for a running tzserver: it issues
// single conversions over gRPC and prints the result.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"
	_ "time/tzdata"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/chronoplane/tzapi"
	tzgrpc "github.com/chronoplane/tzapi/grpc"
	"github.com/chronoplane/tzapi/types"
)

var (
	flagAddr string
	flagZone string

	flagDate    string
	flagTime    string
	flagNanos   uint32
	flagSkipped string
)

var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

var rootCmd = &cobra.Command{
	Use:   "tzcli",
	Short: "Test driver for the TimeZones gRPC service",
}

var toCivilCmd = &cobra.Command{
	Use:   "to-civil <nanoseconds-since-epoch>",
	Short: "Convert an absolute instant to civil time in a zone",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ns, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("bad instant %q: %w", args[0], err)
		}

		conn, err := dial(cmd.Context())
		if err != nil {
			return err
		}
		defer conn.Close()

		civil, err := conn.AbsoluteToCivilTime(cmd.Context(), types.TimeZoneID(flagZone), types.AbsoluteTime(ns))
		if err != nil {
			return err
		}
		fmt.Printf("%04d-%02d-%02d %02d:%02d:%02d.%09d %s (%s, day %d of year)\n",
			*civil.Year, *civil.Month, *civil.Day,
			civil.Hour, civil.Minute, civil.Second, civil.Nanos,
			civil.TimeZoneID, *civil.Weekday, *civil.YearDay)
		return nil
	},
}

var toAbsoluteCmd = &cobra.Command{
	Use:   "to-absolute",
	Short: "Convert civil fields in a zone to an absolute instant",
	RunE: func(cmd *cobra.Command, _ []string) error {
		civil, err := parseCivil()
		if err != nil {
			return err
		}
		opts, err := parseOptions()
		if err != nil {
			return err
		}

		conn, err := dial(cmd.Context())
		if err != nil {
			return err
		}
		defer conn.Close()

		at, err := conn.CivilToAbsoluteTime(cmd.Context(), civil, opts)
		if err != nil {
			return err
		}
		fmt.Printf("%d\n", at)
		return nil
	},
}

func parseCivil() (types.CivilTime, error) {
	var y int16
	var mo, d uint8
	if _, err := fmt.Sscanf(flagDate, "%d-%d-%d", &y, &mo, &d); err != nil {
		return types.CivilTime{}, fmt.Errorf("bad --date %q (want YYYY-MM-DD): %w", flagDate, err)
	}
	civil := types.Date(y, types.Month(mo), d).In(types.TimeZoneID(flagZone))

	if flagTime != "" {
		var h, mi, s uint8
		if _, err := fmt.Sscanf(flagTime, "%d:%d:%d", &h, &mi, &s); err != nil {
			return types.CivilTime{}, fmt.Errorf("bad --time %q (want HH:MM:SS): %w", flagTime, err)
		}
		civil = civil.At(h, mi, s, flagNanos)
	}
	return civil, nil
}

func parseOptions() (types.CivilToAbsoluteOptions, error) {
	var opts types.CivilToAbsoluteOptions
	switch flagSkipped {
	case "next-valid":
		opts.SkippedTimeConversion = types.SkippedNextValidTime
	case "reject":
		opts.SkippedTimeConversion = types.SkippedReject
	default:
		return opts, fmt.Errorf("bad --skipped %q (want next-valid or reject)", flagSkipped)
	}
	return opts, nil
}

func dial(ctx context.Context) (tzapi.Connection, error) {
	dctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return tzgrpc.Dial(dctx, flagAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagAddr, "addr", "a", "127.0.0.1:8755", "tzserver address")
	rootCmd.PersistentFlags().StringVarP(&flagZone, "zone", "z", "", "zone identifier (empty selects the server default)")

	toAbsoluteCmd.Flags().StringVar(&flagDate, "date", "", "civil date, YYYY-MM-DD (required)")
	toAbsoluteCmd.Flags().StringVar(&flagTime, "time", "", "civil clock, HH:MM:SS (defaults to midnight)")
	toAbsoluteCmd.Flags().Uint32Var(&flagNanos, "nanos", 0, "sub-second nanoseconds")
	toAbsoluteCmd.Flags().StringVar(&flagSkipped, "skipped", "next-valid", "skipped-time policy: next-valid or reject")
	_ = toAbsoluteCmd.MarkFlagRequired("date")

	rootCmd.AddCommand(toCivilCmd, toAbsoluteCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if e, ok := tzapi.AsError(err); ok {
			log.Error().Str("kind", e.Kind.String()).Msg(e.Msg)
		} else {
			log.Error().Err(err).Msg("command failed")
		}
		os.Exit(1)
	}
}
