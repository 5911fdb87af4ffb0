package config

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/Azure/private-endpoint-dns/pkg/env"
)

// Flag names
const (
	FlagSettings      = "settings"
	FlagLogLevel      = "log-level"
	FlagListenAddress = "listen-address"
)

// flagKeys maps a flag to the configuration key it overrides.
var flagKeys = map[string]string{
	FlagLogLevel:      env.KeyLogLevel,
	FlagListenAddress: env.KeyListenAddress,
}

// AddCommonFlags adds the flags shared by every command to fs.
func AddCommonFlags(fs *pflag.FlagSet) {
	fs.String(FlagSettings, "", "path to a JSON settings file (local.settings.json layout is accepted)")
	fs.String(FlagLogLevel, "", "log level (overrides "+env.KeyLogLevel+")")
}

// ViperFromCmd returns the configuration source for cmd: the environment, the
// settings file named by --settings and any configuration flags the user set.
func ViperFromCmd(cmd *cobra.Command) (*viper.Viper, error) {
	settingsFile, err := cmd.Flags().GetString(FlagSettings)
	if err != nil {
		return nil, err
	}

	cfg, err := env.NewViper(settingsFile)
	if err != nil {
		return nil, err
	}

	for flag, key := range flagKeys {
		f := cmd.Flags().Lookup(flag)
		if f == nil {
			continue
		}

		err = cfg.BindPFlag(key, f)
		if err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// ConfigFromCmd reads and validates the configuration for cmd.
func ConfigFromCmd(cmd *cobra.Command) (*env.Config, error) {
	cfg, err := ViperFromCmd(cmd)
	if err != nil {
		return nil, err
	}

	return env.NewConfig(cfg)
}
