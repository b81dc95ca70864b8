package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/brdoc/nup/pkg/logger"
	"github.com/brdoc/nup/pkg/qrcode"
)

func newQRCmd(verbose *bool) *cobra.Command {
	var (
		output string
		size   int
	)

	cmd := &cobra.Command{
		Use:   "qr <número>",
		Short: "Render a validated NUP as a QR code PNG",
		Long: `Validates the given NUP and writes it as a QR code image.
Invalid protocol numbers are refused rather than encoded.`,
		Example:       `  nup qr 12345.678901/2023-29 -o processo.png --size 512`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := newLogger(*verbose)

			data, err := qrcode.Encode(args[0], size)
			if err != nil {
				log.Debug("encoding refused", slog.String("input", args[0]), logger.Error(err))
				fmt.Fprintf(cmd.OutOrStdout(), "NUP inválido: %v\n", err)
				return err
			}

			if err := os.WriteFile(output, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}

			log.Debug("qr code written", slog.String("path", output), slog.Int("bytes", len(data)))
			fmt.Fprintf(cmd.OutOrStdout(), "QR code gravado em %s\n", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "nup.png", "output PNG path")
	cmd.Flags().IntVar(&size, "size", 256, "image size in pixels")

	return cmd
}
