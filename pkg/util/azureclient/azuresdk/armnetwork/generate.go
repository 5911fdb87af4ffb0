package armnetwork

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

//go:generate rm -rf ../../../../util/mocks/azureclient/azuresdk/$GOPACKAGE
//go:generate mockgen -destination=../../../../util/mocks/azureclient/azuresdk/$GOPACKAGE/$GOPACKAGE.go github.com/Azure/private-endpoint-dns/pkg/util/azureclient/azuresdk/$GOPACKAGE InterfacesClient
//go:generate goimports -local=github.com/Azure/private-endpoint-dns -e -w ../../../../util/mocks/azureclient/azuresdk/$GOPACKAGE/$GOPACKAGE.go
