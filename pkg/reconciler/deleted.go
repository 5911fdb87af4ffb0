package reconciler

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"fmt"

	"github.com/Azure/private-endpoint-dns/pkg/api"
	"github.com/Azure/private-endpoint-dns/pkg/cloudclient"
	"github.com/Azure/private-endpoint-dns/pkg/metrics"
	utillog "github.com/Azure/private-endpoint-dns/pkg/util/log"
)

// reconcileDeleted removes the first A record, across all zones in the
// configured resource group, tagged with the id of the deleted network
// interface.  Finding no such record is not an error.
func (r *reconcileManager) reconcileDeleted(ctx context.Context) error {
	payload := r.event.Payload

	_, err := r.authenticator.Authenticate(ctx, payload.SubscriptionID, r.mode)
	if err != nil {
		return err
	}

	dnsClient, err := r.authenticator.Authenticate(ctx, r.config.SubscriptionID, r.mode)
	if err != nil {
		return err
	}

	zones, err := dnsClient.ListZones(ctx, r.config.ResourceGroup)
	if err != nil {
		return err
	}

	if len(zones) == 0 {
		return api.NewError(api.CodeNoZones, "no private DNS zone exists in resource group %q", r.config.ResourceGroup)
	}

	for _, zone := range zones {
		r.log.Debugf("searching private DNS zone %q for an A record set with %s %q", zone.Name, cloudclient.MetadataNICID, payload.ResourceURI)

		records, err := dnsClient.ListAddressRecords(ctx, zone)
		if err != nil {
			return err
		}

		record := findTaggedRecord(records, payload.ResourceURI)
		if record == nil {
			continue
		}

		address := "unknown"
		if len(record.IPv4Addresses) > 0 {
			address = record.IPv4Addresses[0]
		}

		utillog.Info(r.log, fmt.Sprintf("removing A record set %q with private IP address %s from private DNS zone %q in resource group %q", record.Name, address, zone.Name, zone.ResourceGroup), r.event.Envelope)

		err = dnsClient.DeleteAddressRecord(ctx, zone, record.Name)
		if err != nil {
			return err
		}
		r.metrics.EmitRecordChange(metrics.OperationDelete, zone.Name)

		utillog.Info(r.log, fmt.Sprintf("removed A record set %q from private DNS zone %q in resource group %q", record.Name, zone.Name, zone.ResourceGroup), r.event.Envelope)

		return nil
	}

	utillog.Info(r.log, fmt.Sprintf("no A record set with %s %q exists in any private DNS zone in resource group %q", cloudclient.MetadataNICID, payload.ResourceURI, r.config.ResourceGroup), r.event.Envelope)

	return nil
}

// findTaggedRecord returns the first record whose nicId metadata equals
// nicID, or nil.
func findTaggedRecord(records []*cloudclient.AddressRecord, nicID string) *cloudclient.AddressRecord {
	for _, record := range records {
		if record == nil {
			continue
		}
		if v, found := record.Metadata[cloudclient.MetadataNICID]; found && v == nicID {
			return record
		}
	}
	return nil
}
