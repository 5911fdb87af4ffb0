package armprivatedns

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
)

// collect drains pager, returning the values of every page in order.
func collect[T any, V any](ctx context.Context, pager *runtime.Pager[T], values func(T) []*V) (result []*V, err error) {
	for pager.More() {
		page, err := pager.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		result = append(result, values(page)...)
	}
	return result, nil
}
