package armprivatedns

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/privatedns/armprivatedns"

	"github.com/Azure/private-endpoint-dns/pkg/util/mocks/azureclient/azuresdk"
)

func recordSetsPage(names ...string) armprivatedns.RecordSetsClientListByTypeResponse {
	var page armprivatedns.RecordSetsClientListByTypeResponse
	for _, name := range names {
		page.Value = append(page.Value, &armprivatedns.RecordSet{Name: to.Ptr(name)})
	}
	return page
}

func TestCollect(t *testing.T) {
	for _, tt := range []struct {
		name      string
		pages     []armprivatedns.RecordSetsClientListByTypeResponse
		errors    []error
		wantNames []string
		wantErr   string
	}{
		{
			name:      "single page",
			pages:     []armprivatedns.RecordSetsClientListByTypeResponse{recordSetsPage("a", "b")},
			errors:    []error{nil},
			wantNames: []string{"a", "b"},
		},
		{
			name: "pages are concatenated in order",
			pages: []armprivatedns.RecordSetsClientListByTypeResponse{
				recordSetsPage("a"),
				recordSetsPage(),
				recordSetsPage("b", "c"),
			},
			errors:    []error{nil, nil, nil},
			wantNames: []string{"a", "b", "c"},
		},
		{
			name: "error on a later page",
			pages: []armprivatedns.RecordSetsClientListByTypeResponse{
				recordSetsPage("a"),
				{},
			},
			errors:  []error{nil, errors.New("throttled")},
			wantErr: "throttled",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			pager := azuresdk.NewPager(tt.pages, tt.errors)

			got, err := collect(context.Background(), pager, func(page armprivatedns.RecordSetsClientListByTypeResponse) []*armprivatedns.RecordSet {
				return page.Value
			})

			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("got error %v, want %q", err, tt.wantErr)
				}
				if got != nil {
					t.Error(got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}

			var names []string
			for _, rs := range got {
				names = append(names, *rs.Name)
			}
			if !reflect.DeepEqual(names, tt.wantNames) {
				t.Errorf("got %v, want %v", names, tt.wantNames)
			}
		})
	}
}
