package authenticator

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"sync"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/sirupsen/logrus"

	"github.com/Azure/private-endpoint-dns/pkg/api"
	"github.com/Azure/private-endpoint-dns/pkg/cloudclient"
	"github.com/Azure/private-endpoint-dns/pkg/env"
	"github.com/Azure/private-endpoint-dns/pkg/util/azureclient"
)

// CredentialMode selects how the process authenticates to Azure.
type CredentialMode string

const (
	ManagedIdentity  CredentialMode = "ManagedIdentity"
	ServicePrincipal CredentialMode = "ServicePrincipal"
)

// CredentialModeFromConfig returns ServicePrincipal in debug mode and
// ManagedIdentity otherwise.
func CredentialModeFromConfig(config *env.Config) CredentialMode {
	if config.Debug {
		return ServicePrincipal
	}
	return ManagedIdentity
}

// Interface returns cloud clients bound to a subscription.
type Interface interface {
	Authenticate(ctx context.Context, subscriptionID string, mode CredentialMode) (cloudclient.Interface, error)
}

type key struct {
	subscriptionID string
	mode           CredentialMode
}

type authenticator struct {
	log    *logrus.Entry
	config *env.Config

	newCredential  func(CredentialMode) (azcore.TokenCredential, error)
	newCloudClient func(*logrus.Entry, *azureclient.Environment, string, azcore.TokenCredential) (cloudclient.Interface, error)

	mu          sync.Mutex
	credentials map[CredentialMode]azcore.TokenCredential
	clients     map[key]cloudclient.Interface
}

var _ Interface = &authenticator{}

// NewAuthenticator returns an Interface which caches one credential per
// CredentialMode and one cloud client per (subscription, CredentialMode).  It
// is safe for concurrent use.
func NewAuthenticator(log *logrus.Entry, config *env.Config) Interface {
	a := &authenticator{
		log:            log,
		config:         config,
		newCloudClient: cloudclient.NewCloudClient,
		credentials:    map[CredentialMode]azcore.TokenCredential{},
		clients:        map[key]cloudclient.Interface{},
	}
	a.newCredential = a.credential

	return a
}

func (a *authenticator) Authenticate(ctx context.Context, subscriptionID string, mode CredentialMode) (cloudclient.Interface, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if subscriptionID == "" {
		return nil, api.NewError(api.CodeAuthError, "subscription id cannot be empty")
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	k := key{subscriptionID: subscriptionID, mode: mode}
	if client, found := a.clients[k]; found {
		return client, nil
	}

	credential, found := a.credentials[mode]
	if !found {
		var err error
		credential, err = a.newCredential(mode)
		if err != nil {
			return nil, api.WrapError(err, api.CodeAuthError, "creating %s credential", mode)
		}
		a.credentials[mode] = credential
	}

	client, err := a.newCloudClient(a.log, &a.config.Environment, subscriptionID, credential)
	if err != nil {
		return nil, api.WrapError(err, api.CodeAuthError, "creating client for subscription %q", subscriptionID)
	}

	a.log.WithFields(logrus.Fields{
		"subscription_id": subscriptionID,
		"credential_mode": mode,
	}).Debug("created cloud client")

	a.clients[k] = client
	return client, nil
}

func (a *authenticator) credential(mode CredentialMode) (azcore.TokenCredential, error) {
	switch mode {
	case ManagedIdentity:
		return azidentity.NewManagedIdentityCredential(a.config.Environment.ManagedIdentityCredentialOptions(a.config.ManagedIdentityClientID))
	case ServicePrincipal:
		return azidentity.NewClientSecretCredential(
			a.config.TenantID,
			a.config.ClientID,
			a.config.ClientSecret,
			a.config.Environment.ClientSecretCredentialOptions())
	}
	return nil, api.NewError(api.CodeAuthError, "credential mode %q is not supported", mode)
}
