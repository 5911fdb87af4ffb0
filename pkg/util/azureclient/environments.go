package azureclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"strings"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/cloud"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/Azure/go-autorest/autorest/azure"
	"github.com/sirupsen/logrus"
)

// Environment contains the cloud-specific information needed to talk to
// Azure Resource Manager and Microsoft Entra ID.
type Environment struct {
	azure.Environment
	Cloud cloud.Configuration
}

var (
	// PublicCloud is the public Azure cloud environment.
	PublicCloud = Environment{
		Environment: azure.PublicCloud,
		Cloud:       cloud.AzurePublic,
	}

	// USGovernmentCloud is the US Gov cloud environment.
	USGovernmentCloud = Environment{
		Environment: azure.USGovernmentCloud,
		Cloud:       cloud.AzureGovernment,
	}

	// ChinaCloud is the Azure China 21Vianet cloud environment.
	ChinaCloud = Environment{
		Environment: azure.ChinaCloud,
		Cloud:       cloud.AzureChina,
	}
)

// EnvironmentFromName returns the Environment corresponding to the common name specified.
func EnvironmentFromName(name string) (Environment, error) {
	switch strings.ToUpper(name) {
	case "AZUREPUBLICCLOUD":
		return PublicCloud, nil
	case "AZUREUSGOVERNMENTCLOUD":
		return USGovernmentCloud, nil
	case "AZURECHINACLOUD":
		return ChinaCloud, nil
	}
	return Environment{}, fmt.Errorf("cloud environment %q is unsupported", name)
}

// ArmClientOptions returns an arm.ClientOptions to be passed in when instantiating
// Azure SDK for Go clients.  Outbound requests are logged to log.
func (e *Environment) ArmClientOptions(log *logrus.Entry) *arm.ClientOptions {
	return &arm.ClientOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud:            e.Cloud,
			PerRetryPolicies: []policy.Policy{NewLoggingPolicy(log)},
		},
	}
}

func (e *Environment) ClientSecretCredentialOptions() *azidentity.ClientSecretCredentialOptions {
	return &azidentity.ClientSecretCredentialOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud: e.Cloud,
		},
	}
}

func (e *Environment) ManagedIdentityCredentialOptions(clientID string) *azidentity.ManagedIdentityCredentialOptions {
	options := &azidentity.ManagedIdentityCredentialOptions{
		ClientOptions: azcore.ClientOptions{
			Cloud: e.Cloud,
		},
	}
	if clientID != "" {
		options.ID = azidentity.ClientID(clientID)
	}
	return options
}
