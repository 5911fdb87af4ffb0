package resourceid

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"sigs.k8s.io/yaml"

	utilresourceid "github.com/Azure/private-endpoint-dns/pkg/util/resourceid"
)

// Output formats
const (
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// NewCommand returns the cobra command for "resourceid".
func NewCommand() *cobra.Command {
	var output string

	cc := &cobra.Command{
		Use:   "resourceid <id>",
		Short: "Print the parts of a resource id",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			r, err := utilresourceid.Parse(args[0])
			if err != nil {
				return err
			}

			return printResource(cmd.OutOrStdout(), r, output)
		},
	}

	cc.Flags().StringVarP(&output, "output", "o", OutputJSON, "output format (json or yaml)")

	return cc
}

func printResource(w io.Writer, r *utilresourceid.Resource, output string) error {
	var b []byte
	var err error

	switch output {
	case OutputJSON:
		b, err = json.MarshalIndent(r, "", "    ")
		b = append(b, '\n')
	case OutputYAML:
		b, err = yaml.Marshal(r)
	default:
		return fmt.Errorf("output format %q is unsupported", output)
	}
	if err != nil {
		return err
	}

	_, err = w.Write(b)
	return err
}
