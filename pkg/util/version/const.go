package version

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

// GitCommit is set at build time with
// -ldflags "-X github.com/Azure/private-endpoint-dns/pkg/util/version.GitCommit=..."
var GitCommit = "unknown"
