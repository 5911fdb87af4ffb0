package cloudclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	sdkprivatedns "github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/privatedns/armprivatedns"

	"github.com/Azure/private-endpoint-dns/pkg/api"
	azureerrors "github.com/Azure/private-endpoint-dns/pkg/util/azureclient/azuresdk/errors"
	"github.com/Azure/private-endpoint-dns/pkg/util/resourceid"
)

func (c *cloudClient) GetZoneByName(ctx context.Context, resourceGroup, zoneName string) (*Zone, error) {
	resp, err := c.privateZones.Get(ctx, resourceGroup, zoneName, nil)
	if azureerrors.IsNotFoundError(err) {
		return nil, api.WrapError(err, api.CodeZoneNotFound, "private DNS zone %q was not found in resource group %q", zoneName, resourceGroup)
	}
	if err != nil {
		return nil, asAuthError(err)
	}

	return c.zoneFromSDK(&resp.PrivateZone, resourceGroup, zoneName), nil
}

func (c *cloudClient) ListZones(ctx context.Context, resourceGroup string) ([]*Zone, error) {
	zones, err := c.privateZones.ListByResourceGroup(ctx, resourceGroup, nil)
	if err != nil {
		return nil, asAuthError(err)
	}

	result := make([]*Zone, 0, len(zones))
	for _, z := range zones {
		if z == nil || z.Name == nil {
			continue
		}
		result = append(result, c.zoneFromSDK(z, resourceGroup, *z.Name))
	}

	return result, nil
}

func (c *cloudClient) ListAddressRecords(ctx context.Context, zone *Zone) ([]*AddressRecord, error) {
	recordSets, err := c.recordSets.ListByType(ctx, zone.ResourceGroup, zone.Name, sdkprivatedns.RecordTypeA, nil)
	if err != nil {
		return nil, asAuthError(err)
	}

	result := make([]*AddressRecord, 0, len(recordSets))
	for _, rs := range recordSets {
		if rs == nil || rs.Name == nil {
			continue
		}
		result = append(result, addressRecordFromSDK(rs))
	}

	return result, nil
}

// UpsertAddressRecord creates or replaces the A record set record.Name in
// zone.
func (c *cloudClient) UpsertAddressRecord(ctx context.Context, zone *Zone, record *AddressRecord) error {
	_, err := c.recordSets.CreateOrUpdate(ctx, zone.ResourceGroup, zone.Name, sdkprivatedns.RecordTypeA, record.Name, addressRecordToSDK(record), nil)
	return asAuthError(err)
}

// DeleteAddressRecord deletes the A record set recordName from zone.
func (c *cloudClient) DeleteAddressRecord(ctx context.Context, zone *Zone, recordName string) error {
	_, err := c.recordSets.Delete(ctx, zone.ResourceGroup, zone.Name, sdkprivatedns.RecordTypeA, recordName, nil)
	if azureerrors.IsNotFoundError(err) {
		return nil
	}
	return asAuthError(err)
}

func (c *cloudClient) zoneFromSDK(z *sdkprivatedns.PrivateZone, resourceGroup, zoneName string) *Zone {
	zone := &Zone{
		Name:          zoneName,
		ResourceGroup: resourceGroup,
	}

	if z.ID != nil {
		zone.ID = *z.ID
	} else {
		zone.ID = resourceid.Build(c.subscriptionID, resourceGroup, "Microsoft.Network", "privateDnsZones", zoneName)
	}

	return zone
}

func addressRecordFromSDK(rs *sdkprivatedns.RecordSet) *AddressRecord {
	record := &AddressRecord{
		Name:     *rs.Name,
		Metadata: map[string]string{},
	}

	if rs.Properties == nil {
		return record
	}

	for _, a := range rs.Properties.ARecords {
		if a != nil && a.IPv4Address != nil {
			record.IPv4Addresses = append(record.IPv4Addresses, *a.IPv4Address)
		}
	}

	for k, v := range rs.Properties.Metadata {
		if v != nil {
			record.Metadata[k] = *v
		}
	}

	return record
}

func addressRecordToSDK(record *AddressRecord) sdkprivatedns.RecordSet {
	aRecords := make([]*sdkprivatedns.ARecord, 0, len(record.IPv4Addresses))
	for _, ip := range record.IPv4Addresses {
		aRecords = append(aRecords, &sdkprivatedns.ARecord{
			IPv4Address: to.Ptr(ip),
		})
	}

	metadata := make(map[string]*string, len(record.Metadata))
	for k, v := range record.Metadata {
		metadata[k] = to.Ptr(v)
	}

	return sdkprivatedns.RecordSet{
		Properties: &sdkprivatedns.RecordSetProperties{
			ARecords: aRecords,
			Metadata: metadata,
			TTL:      to.Ptr[int64](RecordTTL),
		},
	}
}
