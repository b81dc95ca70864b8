package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/brdoc/nup/pkg/config"
	"github.com/brdoc/nup/pkg/logger"
	"github.com/brdoc/nup/pkg/nup"
)

// cliConfig holds environment-driven settings. Only the CLI reads the
// environment; the validation core never does.
type cliConfig struct {
	LogLevel  string `env:"NUP_LOG_LEVEL" envDefault:"warn"`
	LogFormat string `env:"NUP_LOG_FORMAT" envDefault:"text"`
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// Validation verdicts are already printed by the command itself;
		// everything else (usage errors, write failures) goes to stderr.
		if !errors.Is(err, nup.ErrInvalidFormat) && !errors.Is(err, nup.ErrInvalidCheckDigits) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		quiet   bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:   "nup <número>",
		Short: "Validate a Brazilian federal protocol number (NUP)",
		Long: `Validates a Número Único de Protocolo against the canonical
NNNNN.NNNNNN/AAAA-DD format and its Módulo-11 check digits.
Processes without an assigned sequence use the S/N/AAAA-DD form.

Prints "NUP válido" and exits 0 on success; prints the reason and
exits nonzero otherwise.`,
		Example:       `  nup 12345.678901/2023-29`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, newLogger(verbose), args[0], quiet)
		},
	}

	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress output, report through the exit code only")
	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log validation details to stderr")

	cmd.AddCommand(newQRCmd(&verbose))

	return cmd
}

func runValidate(cmd *cobra.Command, log *slog.Logger, input string, quiet bool) error {
	if err := nup.Validate(input); err != nil {
		log.Debug("validation failed", slog.String("input", input), logger.Error(err))
		if !quiet {
			fmt.Fprintf(cmd.OutOrStdout(), "NUP inválido: %v\n", err)
		}
		return err
	}

	if p, err := nup.Parse(input); err == nil {
		log.Debug("validation succeeded",
			slog.String("form", p.Form.String()),
			slog.String("year", p.Year),
			slog.String("check_digits", p.CheckDigits),
		)
	}

	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), "NUP válido")
	}
	return nil
}

// newLogger builds the CLI logger from the environment, with --verbose
// forcing debug level regardless of NUP_LOG_LEVEL.
func newLogger(verbose bool) *slog.Logger {
	var cfg cliConfig
	if err := config.Load(&cfg); err != nil {
		cfg = cliConfig{LogLevel: "warn", LogFormat: "text"}
	}

	level := logger.ParseLevel(cfg.LogLevel)
	if verbose {
		level = slog.LevelDebug
	}

	return logger.New(
		logger.WithLevel(level),
		logger.WithFormat(logger.Format(cfg.LogFormat)),
	)
}
