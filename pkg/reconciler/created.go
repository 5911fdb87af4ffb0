package reconciler

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"

	"github.com/Azure/private-endpoint-dns/pkg/api"
	"github.com/Azure/private-endpoint-dns/pkg/cloudclient"
	"github.com/Azure/private-endpoint-dns/pkg/metrics"
	"github.com/Azure/private-endpoint-dns/pkg/util/fqdn"
	utillog "github.com/Azure/private-endpoint-dns/pkg/util/log"
	"github.com/Azure/private-endpoint-dns/pkg/util/resourceid"
)

// reconcileCreated publishes the private IP address of a newly written
// private endpoint network interface as an A record, tagged with the
// interface id, in the zone derived from its linked FQDN.
func (r *reconcileManager) reconcileCreated(ctx context.Context) error {
	payload := r.event.Payload

	client, err := r.authenticator.Authenticate(ctx, payload.SubscriptionID, r.mode)
	if err != nil {
		return err
	}

	nic, err := client.GetNetworkInterfaceByID(ctx, payload.ResourceURI)
	if err != nil {
		return err
	}

	if nic.PrivateEndpointID == "" {
		return api.NewError(api.CodeNotAnEndpoint, "network interface %q is not associated with a private endpoint", nic.ID)
	}

	endpointName, err := resourceid.Segment(resourceid.Split(nic.PrivateEndpointID), resourceid.ResourceNameIndex)
	if err != nil {
		return err
	}

	if nic.PrivateIPAddress == "" {
		return api.NewError(api.CodeMissingAddress, "network interface %q has no private IP address", nic.ID)
	}

	if nic.FQDN == "" {
		return api.NewError(api.CodeMissingFqdn, "the fqdn of the private link connection of network interface %q cannot be empty", nic.ID)
	}

	recordName, zoneName, err := fqdn.Split(nic.FQDN)
	if err != nil {
		return err
	}

	dnsClient, err := r.authenticator.Authenticate(ctx, r.config.SubscriptionID, r.mode)
	if err != nil {
		return err
	}

	zone, err := dnsClient.GetZoneByName(ctx, r.config.ResourceGroup, zoneName)
	if err != nil {
		return err
	}

	record := &cloudclient.AddressRecord{
		Name:          recordName,
		IPv4Addresses: []string{nic.PrivateIPAddress},
		Metadata: map[string]string{
			cloudclient.MetadataNICID: nic.ID,
		},
	}

	utillog.Info(r.log, fmt.Sprintf("creating A record set %q with private IP address %s for private endpoint %q in private DNS zone %q in resource group %q", recordName, nic.PrivateIPAddress, endpointName, zone.Name, zone.ResourceGroup), r.event.Envelope)

	err = dnsClient.UpsertAddressRecord(ctx, zone, record)
	if err != nil {
		return err
	}
	r.metrics.EmitRecordChange(metrics.OperationUpsert, zone.Name)

	utillog.Info(r.log, fmt.Sprintf("created A record set %q with private IP address %s in private DNS zone %q in resource group %q", recordName, nic.PrivateIPAddress, zone.Name, zone.ResourceGroup), r.event.Envelope)

	return nil
}
