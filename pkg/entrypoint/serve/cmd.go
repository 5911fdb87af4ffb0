package serve

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Azure/private-endpoint-dns/pkg/entrypoint/config"
	utillog "github.com/Azure/private-endpoint-dns/pkg/util/log"
)

// NewCommand returns the cobra command for "serve".
func NewCommand() *cobra.Command {
	cc := &cobra.Command{
		Use:   "serve",
		Short: "Serve Event Grid deliveries",
		Long:  "Serve Event Grid webhook deliveries and keep private DNS A records in step with private endpoint network interfaces",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ConfigFromCmd(cmd)
			if err != nil {
				return err
			}

			log := utillog.GetLogger(cfg.LogLevel.String())

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return start(ctx, log, cfg)
		},
	}

	cc.Flags().String(config.FlagListenAddress, "", "address to listen on (overrides ListenAddress)")

	return cc
}
