package reconciler

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/private-endpoint-dns/pkg/api"
	"github.com/Azure/private-endpoint-dns/pkg/cloudclient"
)

// fakeCloud is an in-memory cloudclient.Interface.  Zones and records keep
// their insertion order.
type fakeCloud struct {
	nics    map[string]*cloudclient.NetworkInterface
	zones   []*cloudclient.Zone
	records map[string][]*cloudclient.AddressRecord

	writes int
}

var _ cloudclient.Interface = &fakeCloud{}

func newFakeCloud() *fakeCloud {
	return &fakeCloud{
		nics:    map[string]*cloudclient.NetworkInterface{},
		records: map[string][]*cloudclient.AddressRecord{},
	}
}

func (f *fakeCloud) addZone(resourceGroup, name string, records ...*cloudclient.AddressRecord) *cloudclient.Zone {
	zone := &cloudclient.Zone{
		ID:            "/subscriptions/22222222-2222-2222-2222-222222222222/resourceGroups/" + resourceGroup + "/providers/Microsoft.Network/privateDnsZones/" + name,
		Name:          name,
		ResourceGroup: resourceGroup,
	}
	f.zones = append(f.zones, zone)
	f.records[name] = records
	return zone
}

func (f *fakeCloud) GetNetworkInterfaceByID(ctx context.Context, resourceID string) (*cloudclient.NetworkInterface, error) {
	nic, found := f.nics[resourceID]
	if !found {
		return nil, api.NewError(api.CodeNotFound, "network interface %q was not found", resourceID)
	}
	copied := *nic
	return &copied, nil
}

func (f *fakeCloud) GetZoneByName(ctx context.Context, resourceGroup, zoneName string) (*cloudclient.Zone, error) {
	for _, z := range f.zones {
		if z.ResourceGroup == resourceGroup && z.Name == zoneName {
			return z, nil
		}
	}
	return nil, api.NewError(api.CodeZoneNotFound, "private DNS zone %q was not found in resource group %q", zoneName, resourceGroup)
}

func (f *fakeCloud) ListZones(ctx context.Context, resourceGroup string) ([]*cloudclient.Zone, error) {
	var zones []*cloudclient.Zone
	for _, z := range f.zones {
		if z.ResourceGroup == resourceGroup {
			zones = append(zones, z)
		}
	}
	return zones, nil
}

func (f *fakeCloud) ListAddressRecords(ctx context.Context, zone *cloudclient.Zone) ([]*cloudclient.AddressRecord, error) {
	return append([]*cloudclient.AddressRecord(nil), f.records[zone.Name]...), nil
}

func (f *fakeCloud) UpsertAddressRecord(ctx context.Context, zone *cloudclient.Zone, record *cloudclient.AddressRecord) error {
	f.writes++

	copied := &cloudclient.AddressRecord{
		Name:          record.Name,
		IPv4Addresses: append([]string(nil), record.IPv4Addresses...),
		Metadata:      map[string]string{},
	}
	for k, v := range record.Metadata {
		copied.Metadata[k] = v
	}

	for i, r := range f.records[zone.Name] {
		if r.Name == record.Name {
			f.records[zone.Name][i] = copied
			return nil
		}
	}
	f.records[zone.Name] = append(f.records[zone.Name], copied)
	return nil
}

func (f *fakeCloud) DeleteAddressRecord(ctx context.Context, zone *cloudclient.Zone, recordName string) error {
	f.writes++

	records := f.records[zone.Name]
	for i, r := range records {
		if r.Name == recordName {
			f.records[zone.Name] = append(records[:i:i], records[i+1:]...)
			return nil
		}
	}
	return nil
}
