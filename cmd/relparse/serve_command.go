package main

import (
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"relparse/internal/httpapi"
	"relparse/internal/library"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string
	var noIndex bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the parser and index over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if value := strings.TrimSpace(bind); value != "" {
				cfg.Server.Bind = value
			}
			logger, err := ctx.logger(cmd)
			if err != nil {
				return err
			}

			var store *library.Store
			if !noIndex {
				store, err = ctx.openIndex()
				if err != nil {
					return err
				}
				defer store.Close()
			}
			server := httpapi.New(cfg, store, logger)

			runCtx, stop := signal.NotifyContext(commandRunContext(cmd), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return server.Run(runCtx)
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Listen address (overrides server.bind)")
	cmd.Flags().BoolVar(&noIndex, "no-index", false, "Serve parsing endpoints only")
	return cmd
}
