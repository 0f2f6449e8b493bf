package gravityzone

import (
	"context"
	"encoding/json"
	"errors"
	"iter"
	"strings"
)

var (
	// ErrNoScanTargets is returned by CreateScanTask when no endpoint ids
	// are given.
	ErrNoScanTargets = errors.New("gravityzone: scan task needs at least one target")
	// ErrInvalidScanType is returned by CreateScanTask for scan types
	// outside the quick/full/memory/custom range.
	ErrInvalidScanType = errors.New("gravityzone: scan type must be quick, full, memory or custom")
	// ErrBlankEndpointID is returned when an endpoint id is empty or
	// whitespace.
	ErrBlankEndpointID = errors.New("gravityzone: endpoint id must not be blank")
)

// GetRootContainers returns the root containers of a company, the special
// groups such as Companies, Network, Computers and Groups. An empty
// companyID means the company linked to the API key.
func (c *Client) GetRootContainers(ctx context.Context, companyID string, opts ...CallOption) (json.RawMessage, error) {
	return c.call(ctx, opGetRootContainers, Params{"companyId": maybeString(companyID)}, opts...)
}

// GetNetworkInventory walks the network inventory items under a parent
// container. An empty parentID starts from the network root; filters follow
// the getNetworkInventoryItems filter shape (type, depth, details).
func (c *Client) GetNetworkInventory(ctx context.Context, parentID string, filters Params, opts ...CallOption) iter.Seq2[map[string]any, error] {
	params := Params{"parentId": maybeString(parentID), "filters": maybeParams(filters)}
	return c.paginate(ctx, opGetNetworkInventoryItems, params, opts...)
}

// GetCompanies returns the companies under a parent company or company
// folder. filters narrows the list by companyType (0 partner, 1 customer)
// and licenseType (1 trial, 2 yearly, 3 monthly).
func (c *Client) GetCompanies(ctx context.Context, parentID string, filters map[string]int, opts ...CallOption) (json.RawMessage, error) {
	params := Params{"parentId": maybeString(parentID), "filters": maybeIntMap(filters)}
	return c.call(ctx, opGetCompaniesList, params, opts...)
}

// GetCustomGroups returns the custom endpoint groups under a parent
// container. An empty parentID means the root of the custom groups tree.
func (c *Client) GetCustomGroups(ctx context.Context, parentID string, opts ...CallOption) (json.RawMessage, error) {
	return c.call(ctx, opGetCustomGroupsList, Params{"parentId": maybeString(parentID)}, opts...)
}

// GetEndpoints walks the endpoints under a company or container. An empty
// parentID means the network root.
func (c *Client) GetEndpoints(ctx context.Context, parentID string, opts ...CallOption) iter.Seq2[map[string]any, error] {
	return c.paginate(ctx, opGetEndpointsList, Params{"parentId": maybeString(parentID)}, opts...)
}

// GetEndpoint returns the details of a managed endpoint. includeScanLogs
// asks for the endpoint's scan log index as well.
func (c *Client) GetEndpoint(ctx context.Context, endpointID string, includeScanLogs bool, opts ...CallOption) (json.RawMessage, error) {
	params := Params{
		"endpointId": endpointID,
		"options":    Params{"includeScanLogs": includeScanLogs},
	}
	return c.call(ctx, opGetManagedEndpointDetails, params, opts...)
}

// DeleteEndpoint removes an endpoint from the network inventory.
func (c *Client) DeleteEndpoint(ctx context.Context, endpointID string, opts ...CallOption) error {
	_, err := c.call(ctx, opDeleteEndpoint, Params{"endpointId": endpointID}, opts...)
	return err
}

// CreateScanTask starts a scan on the given endpoints and returns the
// created task ids. A zero ScanType means ScanTypeQuick.
func (c *Client) CreateScanTask(ctx context.Context, endpointIDs []string, scanType ScanType, opts ...CallOption) (json.RawMessage, error) {
	if scanType == 0 {
		scanType = ScanTypeQuick
	}
	if scanType < ScanTypeQuick || scanType > ScanTypeCustom {
		return nil, ErrInvalidScanType
	}
	if len(endpointIDs) == 0 {
		return nil, ErrNoScanTargets
	}
	for _, id := range endpointIDs {
		if strings.TrimSpace(id) == "" {
			return nil, ErrBlankEndpointID
		}
	}
	params := Params{
		"targetIds":        endpointIDs,
		"type":             scanType,
		"returnAllTaskIds": true,
	}
	return c.call(ctx, opCreateScanTask, params, opts...)
}

// GetScanTasks walks the scan tasks visible to the API key, optionally
// filtered by task name and status.
func (c *Client) GetScanTasks(ctx context.Context, name string, status int, opts ...CallOption) iter.Seq2[map[string]any, error] {
	params := Params{"name": maybeString(name), "status": maybeInt(status)}
	return c.paginate(ctx, opGetScanTasksList, params, opts...)
}
