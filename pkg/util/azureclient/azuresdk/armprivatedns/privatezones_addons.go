package armprivatedns

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/privatedns/armprivatedns"
)

// PrivateZonesClientAddons contains addons for PrivateZonesClient
type PrivateZonesClientAddons interface {
	ListByResourceGroup(ctx context.Context, resourceGroupName string, options *armprivatedns.PrivateZonesClientListByResourceGroupOptions) ([]*armprivatedns.PrivateZone, error)
}

// ListByResourceGroup returns every private zone in the resource group.
func (c *privateZonesClient) ListByResourceGroup(ctx context.Context, resourceGroupName string, options *armprivatedns.PrivateZonesClientListByResourceGroupOptions) ([]*armprivatedns.PrivateZone, error) {
	return collect(ctx, c.PrivateZonesClient.NewListByResourceGroupPager(resourceGroupName, options), func(page armprivatedns.PrivateZonesClientListByResourceGroupResponse) []*armprivatedns.PrivateZone {
		return page.Value
	})
}
