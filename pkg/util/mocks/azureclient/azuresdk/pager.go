package azuresdk

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/runtime"
	"github.com/Azure/azure-sdk-for-go/sdk/azcore/tracing"
)

// NewPager returns a pager serving pages in order, failing on page i with
// errors[i] if it is set.  The caller builds the List...Response pages.
func NewPager[T any](pages []T, errors []error) *runtime.Pager[T] {
	var currentPage int
	return runtime.NewPager[T](runtime.PagingHandler[T]{
		More: func(_ T) bool {
			return currentPage < len(pages)
		},
		Fetcher: func(ctx context.Context, t *T) (T, error) {
			page := pages[currentPage]
			err := errors[currentPage]
			currentPage++
			return page, err
		},
		Tracer: tracing.Tracer{},
	})
}
