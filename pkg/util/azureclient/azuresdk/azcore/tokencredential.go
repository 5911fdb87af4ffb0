package azcore

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/policy"
)

//go:generate rm -rf ../../../../util/mocks/azureclient/azuresdk/$GOPACKAGE
//go:generate mockgen -destination=../../../../util/mocks/azureclient/azuresdk/$GOPACKAGE/$GOPACKAGE.go github.com/Azure/private-endpoint-dns/pkg/util/azureclient/azuresdk/$GOPACKAGE TokenCredential

// TokenCredential mirrors azcore.TokenCredential so that it can be mocked.
type TokenCredential interface {
	GetToken(ctx context.Context, options policy.TokenRequestOptions) (azcore.AccessToken, error)
}

var _ azcore.TokenCredential = TokenCredential(nil)
