package armprivatedns

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/arm"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/privatedns/armprivatedns"
)

// PrivateZonesClient is a minimal interface for azure PrivateZonesClient
type PrivateZonesClient interface {
	Get(ctx context.Context, resourceGroupName string, privateZoneName string, options *armprivatedns.PrivateZonesClientGetOptions) (armprivatedns.PrivateZonesClientGetResponse, error)
	PrivateZonesClientAddons
}

type privateZonesClient struct {
	*armprivatedns.PrivateZonesClient
}

var _ PrivateZonesClient = &privateZonesClient{}

// NewPrivateZonesClient creates a new PrivateZonesClient
func NewPrivateZonesClient(subscriptionID string, credential azcore.TokenCredential, options *arm.ClientOptions) (PrivateZonesClient, error) {
	clientFactory, err := armprivatedns.NewClientFactory(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}
	return &privateZonesClient{PrivateZonesClient: clientFactory.NewPrivateZonesClient()}, nil
}
