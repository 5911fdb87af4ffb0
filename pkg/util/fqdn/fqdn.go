package fqdn

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"strings"

	"github.com/Azure/private-endpoint-dns/pkg/api"
)

// ZonePrefix is prepended to the parent domain of a private link FQDN to get
// the name of its private DNS zone.
const ZonePrefix = "privatelink."

// Split returns the record name (the first label of fqdn) and the private DNS
// zone name (ZonePrefix followed by everything after the first '.').  For
// example "myhost.privatelink.database.windows.net" yields "myhost" and
// "privatelink.privatelink.database.windows.net".
func Split(fqdn string) (recordName, zoneName string, err error) {
	i := strings.IndexByte(fqdn, '.')
	if i == -1 {
		return "", "", api.NewError(api.CodeFormatError, "fqdn %q has no domain separator", fqdn)
	}

	return fqdn[:i], ZonePrefix + fqdn[i+1:], nil
}
