package cloudclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore"
	"github.com/Azure/azure-sdk-for-go/sdk/azidentity"
	"github.com/sirupsen/logrus"

	"github.com/Azure/private-endpoint-dns/pkg/api"
	"github.com/Azure/private-endpoint-dns/pkg/util/azureclient"
	"github.com/Azure/private-endpoint-dns/pkg/util/azureclient/azuresdk/armnetwork"
	"github.com/Azure/private-endpoint-dns/pkg/util/azureclient/azuresdk/armprivatedns"
	azureerrors "github.com/Azure/private-endpoint-dns/pkg/util/azureclient/azuresdk/errors"
)

// MetadataNICID is the address record metadata key holding the id of the
// network interface which owns the record.
const MetadataNICID = "nicId"

// RecordTTL is the time to live, in seconds, of the address records written
// by UpsertAddressRecord.
const RecordTTL = 3600

// NetworkInterface describes the parts of a network interface needed to
// publish its private endpoint in DNS.  Fields the interface does not carry
// are left empty.
type NetworkInterface struct {
	ID                string `json:"id"`
	PrivateEndpointID string `json:"privateEndpointId,omitempty"`
	PrivateIPAddress  string `json:"privateIpAddress,omitempty"`
	FQDN              string `json:"fqdn,omitempty"`
}

// Zone is a private DNS zone.
type Zone struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	ResourceGroup string `json:"resourceGroup"`
}

// AddressRecord is an A record set.
type AddressRecord struct {
	Name          string            `json:"name"`
	IPv4Addresses []string          `json:"ipv4Addresses"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

// Interface is the set of cloud operations the reconcilers need.  An
// Interface is bound to a single subscription.
type Interface interface {
	GetNetworkInterfaceByID(ctx context.Context, resourceID string) (*NetworkInterface, error)
	GetZoneByName(ctx context.Context, resourceGroup, zoneName string) (*Zone, error)
	ListZones(ctx context.Context, resourceGroup string) ([]*Zone, error)
	ListAddressRecords(ctx context.Context, zone *Zone) ([]*AddressRecord, error)
	UpsertAddressRecord(ctx context.Context, zone *Zone, record *AddressRecord) error
	DeleteAddressRecord(ctx context.Context, zone *Zone, recordName string) error
}

type cloudClient struct {
	subscriptionID string
	interfaces     armnetwork.InterfacesClient
	privateZones   armprivatedns.PrivateZonesClient
	recordSets     armprivatedns.RecordSetsClient
}

var _ Interface = &cloudClient{}

// NewCloudClient returns an Interface for subscriptionID which authenticates
// with credential.
func NewCloudClient(log *logrus.Entry, env *azureclient.Environment, subscriptionID string, credential azcore.TokenCredential) (Interface, error) {
	options := env.ArmClientOptions(log)

	interfaces, err := armnetwork.NewInterfacesClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	privateZones, err := armprivatedns.NewPrivateZonesClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	recordSets, err := armprivatedns.NewRecordSetsClient(subscriptionID, credential, options)
	if err != nil {
		return nil, err
	}

	return &cloudClient{
		subscriptionID: subscriptionID,
		interfaces:     interfaces,
		privateZones:   privateZones,
		recordSets:     recordSets,
	}, nil
}

// asAuthError classifies a rejected or unobtainable credential as an
// AuthError.  Credentials are exchanged lazily, so these failures surface on
// the first request made with them.
func asAuthError(err error) error {
	var authErr *azidentity.AuthenticationFailedError
	if errors.As(err, &authErr) || azureerrors.IsUnauthorizedError(err) {
		return api.WrapError(err, api.CodeAuthError, "authentication failed")
	}
	return err
}
