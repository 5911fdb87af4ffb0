package armprivatedns

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/privatedns/armprivatedns"
)

// RecordSetsClientAddons contains addons for RecordSetsClient
type RecordSetsClientAddons interface {
	ListByType(ctx context.Context, resourceGroupName string, privateZoneName string, recordType armprivatedns.RecordType, options *armprivatedns.RecordSetsClientListByTypeOptions) ([]*armprivatedns.RecordSet, error)
}

// ListByType returns every record set of recordType in the zone, in the
// order the service lists them.
func (c *recordSetsClient) ListByType(ctx context.Context, resourceGroupName string, privateZoneName string, recordType armprivatedns.RecordType, options *armprivatedns.RecordSetsClientListByTypeOptions) ([]*armprivatedns.RecordSet, error) {
	return collect(ctx, c.RecordSetsClient.NewListByTypePager(resourceGroupName, privateZoneName, recordType, options), func(page armprivatedns.RecordSetsClientListByTypeResponse) []*armprivatedns.RecordSet {
		return page.Value
	})
}
