package main

import (
	"net/http"

	"github.com/spf13/cobra"

	"craftpack/pack"
)

var flagAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve live lint diagnostics over a websocket",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, cfg, err := openPack()
		if err != nil {
			return err
		}
		addr := cfg.Addr
		if flagAddr != "" {
			addr = flagAddr
		}

		hub := pack.NewHub(p, logger)
		if _, err := hub.Rescan(); err != nil {
			return err
		}

		logger.Info("diagnostics server listening", "addr", addr, "pack", cfg.Root)
		return http.ListenAndServe(addr, hub.Handler())
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagAddr, "addr", "", "listen address (overrides packlint.toml)")
}
