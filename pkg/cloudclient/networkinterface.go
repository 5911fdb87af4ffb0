package cloudclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	sdknetwork "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/network/armnetwork/v6"

	"github.com/Azure/private-endpoint-dns/pkg/api"
	azureerrors "github.com/Azure/private-endpoint-dns/pkg/util/azureclient/azuresdk/errors"
	"github.com/Azure/private-endpoint-dns/pkg/util/resourceid"
)

func (c *cloudClient) GetNetworkInterfaceByID(ctx context.Context, resourceID string) (*NetworkInterface, error) {
	r, err := resourceid.Parse(resourceID)
	if err != nil {
		return nil, err
	}

	resp, err := c.interfaces.Get(ctx, r.ResourceGroup, r.ResourceName, nil)
	if azureerrors.IsNotFoundError(err) {
		return nil, api.WrapError(err, api.CodeNotFound, "network interface %q was not found", resourceID)
	}
	if err != nil {
		return nil, asAuthError(err)
	}

	return networkInterfaceFromSDK(&resp.Interface, resourceID), nil
}

// networkInterfaceFromSDK reads the endpoint id and the first IP
// configuration's address and linked FQDN.  Absent values are left empty.
func networkInterfaceFromSDK(nic *sdknetwork.Interface, resourceID string) *NetworkInterface {
	result := &NetworkInterface{
		ID: resourceID,
	}
	if nic.ID != nil {
		result.ID = *nic.ID
	}

	props := nic.Properties
	if props == nil {
		return result
	}

	if props.PrivateEndpoint != nil && props.PrivateEndpoint.ID != nil {
		result.PrivateEndpointID = *props.PrivateEndpoint.ID
	}

	if len(props.IPConfigurations) == 0 || props.IPConfigurations[0] == nil || props.IPConfigurations[0].Properties == nil {
		return result
	}
	ipconfig := props.IPConfigurations[0].Properties

	if ipconfig.PrivateIPAddress != nil {
		result.PrivateIPAddress = *ipconfig.PrivateIPAddress
	}

	if ipconfig.PrivateLinkConnectionProperties != nil &&
		len(ipconfig.PrivateLinkConnectionProperties.Fqdns) > 0 &&
		ipconfig.PrivateLinkConnectionProperties.Fqdns[0] != nil {
		result.FQDN = *ipconfig.PrivateLinkConnectionProperties.Fqdns[0]
	}

	return result
}
