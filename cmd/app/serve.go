package main

import (
	"github.com/akyairhashvil/flashtimer/internal/config"
	"github.com/spf13/cobra"
)

const defaultServeAddr = "127.0.0.1:8080"

func newServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the presets page",
		Long: `Serve the presets page through the asset cache until interrupted.
The cache bucket is filled on start; when that fails every request
goes to the network instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := config.LoadEnv()
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("addr") && env.ServeAddr != "" {
				addr = env.ServeAddr
			}
			a, err := openApp(cmd.Context(), env, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer a.Close()
			return a.webServer(addr, env.Upstream).ListenAndServe(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultServeAddr, "Listen address")
	return cmd
}
