package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"craftpack/pack"
)

var (
	flagPack string

	logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
)

var rootCmd = &cobra.Command{
	Use:           "packlint",
	Short:         "Inspect and validate structured asset/data resource packs",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagPack, "pack", "", "pack root directory (overrides packlint.toml)")
	rootCmd.AddCommand(validateCmd, kindsCmd, schemaCmd, serveCmd)
}

// openPack resolves the pack root from packlint.toml in the working
// directory, letting --pack override it.
func openPack() (*pack.Pack, pack.Config, error) {
	cfg, err := pack.LoadConfig(".")
	if err != nil {
		return nil, pack.Config{}, err
	}
	if flagPack != "" {
		cfg.Root = flagPack
	}
	return pack.Open(cfg.Root), cfg, nil
}
