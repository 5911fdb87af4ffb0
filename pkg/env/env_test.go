package env

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Azure/private-endpoint-dns/pkg/util/azureclient"
)

const subscriptionID = "00000000-0000-0000-0000-000000000000"

func setenv(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, key := range keys {
		for _, name := range []string{key, strings.ToUpper(key)} {
			if _, found := os.LookupEnv(name); found {
				t.Setenv(name, "")
				os.Unsetenv(name)
			}
		}
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestNewConfig(t *testing.T) {
	for _, tt := range []struct {
		name       string
		env        map[string]string
		want       *Config
		wantErrors []string
	}{
		{
			name: "managed identity with defaults",
			env: map[string]string{
				"SubscriptionId": subscriptionID,
				"ResourceGroup":  "dns",
			},
			want: &Config{
				SubscriptionID: subscriptionID,
				ResourceGroup:  "dns",
				Environment:    azureclient.PublicCloud,
				ListenAddress:  ":8080",
				LogLevel:       logrus.InfoLevel,
			},
		},
		{
			name: "upper-case names, user-assigned identity and China cloud",
			env: map[string]string{
				"SUBSCRIPTIONID":          subscriptionID,
				"RESOURCEGROUP":           "dns",
				"MANAGEDIDENTITYCLIENTID": "11111111-1111-1111-1111-111111111111",
				"AZUREENVIRONMENT":        "AzureChinaCloud",
				"LOGLEVEL":                "debug",
				"LISTENADDRESS":           "127.0.0.1:9000",
			},
			want: &Config{
				SubscriptionID:          subscriptionID,
				ResourceGroup:           "dns",
				ManagedIdentityClientID: "11111111-1111-1111-1111-111111111111",
				Environment:             azureclient.ChinaCloud,
				ListenAddress:           "127.0.0.1:9000",
				LogLevel:                logrus.DebugLevel,
			},
		},
		{
			name: "service principal",
			env: map[string]string{
				"SubscriptionId": subscriptionID,
				"ResourceGroup":  "dns",
				"Debug":          "true",
				"ClientId":       "client",
				"ClientSecret":   "secret",
				"TenantId":       "tenant",
			},
			want: &Config{
				SubscriptionID: subscriptionID,
				ResourceGroup:  "dns",
				Debug:          true,
				ClientID:       "client",
				ClientSecret:   "secret",
				TenantID:       "tenant",
				Environment:    azureclient.PublicCloud,
				ListenAddress:  ":8080",
				LogLevel:       logrus.InfoLevel,
			},
		},
		{
			name: "nothing set",
			wantErrors: []string{
				`configuration "SubscriptionId" unset`,
				`configuration "ResourceGroup" unset`,
			},
		},
		{
			name: "service principal incomplete",
			env: map[string]string{
				"SubscriptionId": subscriptionID,
				"ResourceGroup":  "  ",
				"Debug":          "1",
				"ClientId":       "client",
			},
			wantErrors: []string{
				`configuration "ResourceGroup" unset`,
				`configuration "ClientSecret" unset`,
				`configuration "TenantId" unset`,
			},
		},
		{
			name: "invalid values",
			env: map[string]string{
				"SubscriptionId":   "not-a-guid",
				"ResourceGroup":    "dns",
				"AzureEnvironment": "AzureStack",
				"LogLevel":         "loud",
			},
			wantErrors: []string{
				`configuration "SubscriptionId" is not a valid subscription id: invalid UUID length: 10`,
				`cloud environment "AzureStack" is unsupported`,
				`configuration "LogLevel": not a valid logrus Level: "loud"`,
			},
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			setenv(t, tt.env)

			cfg, err := NewViper("")
			require.NoError(t, err)

			got, err := NewConfig(cfg)
			if tt.wantErrors != nil {
				var merr *multierror.Error
				require.ErrorAs(t, err, &merr)

				var msgs []string
				for _, e := range merr.Errors {
					msgs = append(msgs, e.Error())
				}
				assert.Equal(t, tt.wantErrors, msgs)
				assert.Nil(t, got)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewViperSettingsFile(t *testing.T) {
	setenv(t, map[string]string{
		"ResourceGroup": "from-env",
	})

	dir := t.TempDir()

	for _, tt := range []struct {
		name     string
		contents string
	}{
		{
			name: "local.settings.json layout",
			contents: `{
  "IsEncrypted": false,
  "Values": {
    "SubscriptionId": "00000000-0000-0000-0000-000000000000",
    "ResourceGroup": "from-file",
    "LogLevel": "warning"
  }
}`,
		},
		{
			name: "flat layout",
			contents: `{
  "SubscriptionId": "00000000-0000-0000-0000-000000000000",
  "ResourceGroup": "from-file",
  "LogLevel": "warning"
}`,
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, strings.ReplaceAll(tt.name, " ", "-")+".json")
			require.NoError(t, os.WriteFile(path, []byte(tt.contents), 0o600))

			cfg, err := NewViper(path)
			require.NoError(t, err)

			got, err := NewConfig(cfg)
			require.NoError(t, err)

			assert.Equal(t, subscriptionID, got.SubscriptionID)
			assert.Equal(t, "from-env", got.ResourceGroup)
			assert.Equal(t, logrus.WarnLevel, got.LogLevel)
		})
	}

	_, err := NewViper(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}
