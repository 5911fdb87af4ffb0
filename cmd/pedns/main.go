package main

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Azure/private-endpoint-dns/pkg/entrypoint/config"
	"github.com/Azure/private-endpoint-dns/pkg/entrypoint/handle"
	"github.com/Azure/private-endpoint-dns/pkg/entrypoint/resourceid"
	"github.com/Azure/private-endpoint-dns/pkg/entrypoint/serve"
	"github.com/Azure/private-endpoint-dns/pkg/util/version"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "pedns",
		Short:         "Private endpoint DNS reconciler",
		Version:       version.GitCommit,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.AddCommonFlags(root.PersistentFlags())

	root.AddCommand(
		serve.NewCommand(),
		handle.NewCommand(),
		resourceid.NewCommand(),
	)

	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
