package env

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/Azure/private-endpoint-dns/pkg/util/azureclient"
)

// Configuration keys.  Each is read from an environment variable of the same
// name, or its upper-case form.
const (
	KeySubscriptionID          = "SubscriptionId"
	KeyResourceGroup           = "ResourceGroup"
	KeyDebug                   = "Debug"
	KeyClientID                = "ClientId"
	KeyClientSecret            = "ClientSecret"
	KeyTenantID                = "TenantId"
	KeyManagedIdentityClientID = "ManagedIdentityClientId"
	KeyAzureEnvironment        = "AzureEnvironment"
	KeyListenAddress           = "ListenAddress"
	KeyLogLevel                = "LogLevel"
)

var keys = []string{
	KeySubscriptionID,
	KeyResourceGroup,
	KeyDebug,
	KeyClientID,
	KeyClientSecret,
	KeyTenantID,
	KeyManagedIdentityClientID,
	KeyAzureEnvironment,
	KeyListenAddress,
	KeyLogLevel,
}

// settingsValues is the section of a local.settings.json file holding the
// application settings.
const settingsValues = "Values"

// Config is the validated runtime configuration.
type Config struct {
	// SubscriptionID and ResourceGroup locate the private DNS zones.
	SubscriptionID string `json:"subscriptionId"`
	ResourceGroup  string `json:"resourceGroup"`

	// Debug selects service principal authentication with ClientID,
	// ClientSecret and TenantID instead of managed identity.
	Debug        bool   `json:"debug"`
	ClientID     string `json:"clientId,omitempty"`
	ClientSecret string `json:"-"`
	TenantID     string `json:"tenantId,omitempty"`

	ManagedIdentityClientID string `json:"managedIdentityClientId,omitempty"`

	Environment   azureclient.Environment `json:"-"`
	ListenAddress string                  `json:"listenAddress"`
	LogLevel      logrus.Level            `json:"logLevel"`
}

// NewViper returns a viper instance reading the configuration keys from the
// environment and, if settingsFile is not empty, from a JSON settings file.
// Settings nested under "Values" (the local.settings.json layout) are
// flattened.  Environment variables take precedence over the file.
func NewViper(settingsFile string) (*viper.Viper, error) {
	cfg := viper.New()

	cfg.SetDefault(KeyAzureEnvironment, azureclient.PublicCloud.Name)
	cfg.SetDefault(KeyListenAddress, ":8080")
	cfg.SetDefault(KeyLogLevel, logrus.InfoLevel.String())

	for _, key := range keys {
		err := cfg.BindEnv(key, key, strings.ToUpper(key))
		if err != nil {
			return nil, err
		}
	}

	if settingsFile == "" {
		return cfg, nil
	}

	cfg.SetConfigFile(settingsFile)
	cfg.SetConfigType("json")
	err := cfg.ReadInConfig()
	if err != nil {
		return nil, fmt.Errorf("reading settings file %q: %w", settingsFile, err)
	}

	if cfg.IsSet(settingsValues) {
		err = cfg.MergeConfigMap(cfg.GetStringMap(settingsValues))
		if err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// ValidateVars checks that every one of vars is set to a non-blank value.
// All missing vars are reported.
func ValidateVars(cfg *viper.Viper, vars ...string) error {
	var errs *multierror.Error

	for _, v := range vars {
		if strings.TrimSpace(cfg.GetString(v)) == "" {
			errs = multierror.Append(errs, fmt.Errorf("configuration %q unset", v))
		}
	}

	return errs.ErrorOrNil()
}

// NewConfig reads and validates the configuration held in cfg.  Every problem
// found is reported in the returned error.
func NewConfig(cfg *viper.Viper) (*Config, error) {
	var errs *multierror.Error

	c := &Config{
		SubscriptionID:          strings.TrimSpace(cfg.GetString(KeySubscriptionID)),
		ResourceGroup:           strings.TrimSpace(cfg.GetString(KeyResourceGroup)),
		Debug:                   cfg.GetBool(KeyDebug),
		ClientID:                cfg.GetString(KeyClientID),
		ClientSecret:            cfg.GetString(KeyClientSecret),
		TenantID:                cfg.GetString(KeyTenantID),
		ManagedIdentityClientID: cfg.GetString(KeyManagedIdentityClientID),
		ListenAddress:           cfg.GetString(KeyListenAddress),
	}

	if err := ValidateVars(cfg, KeySubscriptionID, KeyResourceGroup); err != nil {
		errs = multierror.Append(errs, err)
	}

	if c.SubscriptionID != "" {
		if _, err := uuid.Parse(c.SubscriptionID); err != nil {
			errs = multierror.Append(errs, fmt.Errorf("configuration %q is not a valid subscription id: %w", KeySubscriptionID, err))
		}
	}

	if c.Debug {
		if err := ValidateVars(cfg, KeyClientID, KeyClientSecret, KeyTenantID); err != nil {
			errs = multierror.Append(errs, err)
		}
	}

	environment, err := azureclient.EnvironmentFromName(cfg.GetString(KeyAzureEnvironment))
	if err != nil {
		errs = multierror.Append(errs, err)
	}
	c.Environment = environment

	c.LogLevel, err = logrus.ParseLevel(cfg.GetString(KeyLogLevel))
	if err != nil {
		errs = multierror.Append(errs, fmt.Errorf("configuration %q: %w", KeyLogLevel, err))
	}

	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}

	return c, nil
}
