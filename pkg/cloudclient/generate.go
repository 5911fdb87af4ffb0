package cloudclient

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

//go:generate rm -rf ../util/mocks/$GOPACKAGE
//go:generate mockgen -destination=../util/mocks/$GOPACKAGE/$GOPACKAGE.go github.com/Azure/private-endpoint-dns/pkg/$GOPACKAGE Interface
//go:generate goimports -local=github.com/Azure/private-endpoint-dns -e -w ../util/mocks/$GOPACKAGE/$GOPACKAGE.go
