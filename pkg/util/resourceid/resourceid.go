package resourceid

// Copyright (c) Microsoft Corporation.
// Licensed under the Apache License 2.0.

import (
	"fmt"
	"strings"

	"github.com/Azure/private-endpoint-dns/pkg/api"
)

// Positions of the well-known segments of a split resource id, e.g.
// subscriptions/{1}/resourcegroups/{3}/providers/{5}/{6}/{7}/{8}/{9}
const (
	SubscriptionIDIndex   = 1
	ResourceGroupIndex    = 3
	ResourceProviderIndex = 5
	ResourceTypeIndex     = 6
	ResourceNameIndex     = 7
	SubResourceTypeIndex  = 8
	SubResourceNameIndex  = 9
)

// Resource is a parsed resource id.  SubResourceType and SubResourceName are
// empty unless the id has a child resource.
type Resource struct {
	SubscriptionID   string `json:"subscriptionId"`
	ResourceGroup    string `json:"resourceGroup"`
	ResourceProvider string `json:"resourceProvider"`
	ResourceType     string `json:"resourceType"`
	ResourceName     string `json:"resourceName"`
	SubResourceType  string `json:"subResourceType,omitempty"`
	SubResourceName  string `json:"subResourceName,omitempty"`
}

// Split splits resourceID on '/' dropping empty segments, so that a leading
// slash does not produce an empty first element.  It returns nil for a blank
// resourceID.
func Split(resourceID string) []string {
	if isBlank(resourceID) {
		return nil
	}

	segments := strings.Split(resourceID, "/")
	result := make([]string, 0, len(segments))
	for _, s := range segments {
		if s != "" {
			result = append(result, s)
		}
	}

	return result
}

// Segment returns segments[index], or a MalformedId error if there are too
// few segments.
func Segment(segments []string, index int) (string, error) {
	if index < 0 || len(segments) < index+1 {
		return "", api.NewError(api.CodeMalformedID, "resource id has %d segments, segment %d requested", len(segments), index)
	}

	return segments[index], nil
}

// Build returns
// /subscriptions/{s}/resourcegroups/{g}/providers/{p}/{t}/{n}, or "" if any
// argument is blank.
func Build(subscriptionID, resourceGroup, resourceProvider, resourceType, resourceName string) string {
	if anyBlank(subscriptionID, resourceGroup, resourceProvider, resourceType, resourceName) {
		return ""
	}

	return fmt.Sprintf("/subscriptions/%s/resourcegroups/%s/providers/%s/%s/%s", subscriptionID, resourceGroup, resourceProvider, resourceType, resourceName)
}

// BuildSubResource is Build with an additional /{subResourceType}/{subResourceName}
// suffix.  It returns "" if any argument is blank.
func BuildSubResource(subscriptionID, resourceGroup, resourceProvider, resourceType, resourceName, subResourceType, subResourceName string) string {
	if anyBlank(subResourceType, subResourceName) {
		return ""
	}

	parent := Build(subscriptionID, resourceGroup, resourceProvider, resourceType, resourceName)
	if parent == "" {
		return ""
	}

	return parent + "/" + subResourceType + "/" + subResourceName
}

// Parse splits resourceID and returns its named segments.  It returns a
// MalformedId error if resourceID has fewer than eight segments.
func Parse(resourceID string) (*Resource, error) {
	segments := Split(resourceID)
	if len(segments) < ResourceNameIndex+1 {
		return nil, api.NewError(api.CodeMalformedID, "parsing failed for %q: invalid resource id format", resourceID)
	}

	r := &Resource{
		SubscriptionID:   segments[SubscriptionIDIndex],
		ResourceGroup:    segments[ResourceGroupIndex],
		ResourceProvider: segments[ResourceProviderIndex],
		ResourceType:     segments[ResourceTypeIndex],
		ResourceName:     segments[ResourceNameIndex],
	}

	if len(segments) >= SubResourceNameIndex+1 {
		r.SubResourceType = segments[SubResourceTypeIndex]
		r.SubResourceName = segments[SubResourceNameIndex]
	}

	return r, nil
}

// String returns r in resource id form.
func (r *Resource) String() string {
	if r.SubResourceType != "" || r.SubResourceName != "" {
		return BuildSubResource(r.SubscriptionID, r.ResourceGroup, r.ResourceProvider, r.ResourceType, r.ResourceName, r.SubResourceType, r.SubResourceName)
	}

	return Build(r.SubscriptionID, r.ResourceGroup, r.ResourceProvider, r.ResourceType, r.ResourceName)
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func anyBlank(ss ...string) bool {
	for _, s := range ss {
		if isBlank(s) {
			return true
		}
	}
	return false
}
