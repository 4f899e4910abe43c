package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iliyamo/catalog-ticket-service/internal/qr"
)

var qrOut string

var qrCmd = &cobra.Command{
	Use:   "qr <text>",
	Short: "Encode text as a QR code PNG using the service's settings",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		png, err := qr.New().PNG(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if err := os.WriteFile(qrOut, png, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", qrOut, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d bytes)\n", qrOut, len(png))
		return nil
	},
}

func init() {
	qrCmd.Flags().StringVarP(&qrOut, "out", "o", "qr.png", "output file")
}
