package handle

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/Azure/private-endpoint-dns/pkg/authenticator"
	"github.com/Azure/private-endpoint-dns/pkg/entrypoint/config"
	"github.com/Azure/private-endpoint-dns/pkg/metrics/noop"
	"github.com/Azure/private-endpoint-dns/pkg/reconciler"
	"github.com/Azure/private-endpoint-dns/pkg/util/azureclient"
	utillog "github.com/Azure/private-endpoint-dns/pkg/util/log"
)

// NewCommand returns the cobra command for "handle".
func NewCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "handle <event.json>",
		Short: "Reconcile a saved Event Grid delivery",
		Long:  "Reconcile the events of a saved Event Grid delivery once, as the webhook would.  Use - to read the delivery from standard input.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ConfigFromCmd(cmd)
			if err != nil {
				return err
			}

			b, err := readDelivery(cmd.InOrStdin(), args[0])
			if err != nil {
				return err
			}

			log := utillog.GetLogger(cfg.LogLevel.String())
			azureclient.SetSDKLogListener(log.WithField("component", "azure-sdk"))

			r := reconciler.NewReconciler(log, cfg, authenticator.NewAuthenticator(log.WithField("component", "authenticator"), cfg), &noop.Noop{})

			return handle(cmd.Context(), log, r, b)
		},
	}
}

func readDelivery(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}

	return os.ReadFile(path)
}
