package gravityzone

import (
	"context"
	"iter"
)

// GetQuarantineItems walks the quarantined files of the computers or
// virtual-machines service. An empty endpointID covers the whole network.
func (c *Client) GetQuarantineItems(ctx context.Context, endpointID string, onlyVM bool, opts ...CallOption) iter.Seq2[map[string]any, error] {
	params := Params{"endpointId": maybeString(endpointID)}
	return c.paginate(ctx, opGetQuarantineItemsList, params, withService(opts, machineService(onlyVM))...)
}

// RemoveQuarantineItems queues deletion of the given quarantined items.
func (c *Client) RemoveQuarantineItems(ctx context.Context, itemIDs []string, onlyVM bool, opts ...CallOption) error {
	params := Params{"quarantineItemsIds": itemIDs}
	_, err := c.call(ctx, opRemoveQuarantineItems, params, withService(opts, machineService(onlyVM))...)
	return err
}

// RestoreQuarantineItems queues restoration of the given quarantined items.
// A non-empty locationToRestore overrides the original file location;
// addExclusionInPolicy also excludes the restored files from future scans.
func (c *Client) RestoreQuarantineItems(ctx context.Context, itemIDs []string, locationToRestore string, addExclusionInPolicy, onlyVM bool, opts ...CallOption) error {
	params := Params{
		"quarantineItemsIds":   itemIDs,
		"addExclusionInPolicy": addExclusionInPolicy,
	}
	if locationToRestore != "" {
		params["locationToRestore"] = locationToRestore
	}
	_, err := c.call(ctx, opRestoreQuarantineItems, params, withService(opts, machineService(onlyVM))...)
	return err
}

// EmptyQuarantine queues deletion of every quarantined item of the service.
func (c *Client) EmptyQuarantine(ctx context.Context, onlyVM bool, opts ...CallOption) error {
	_, err := c.call(ctx, opEmptyQuarantine, Params{}, withService(opts, machineService(onlyVM))...)
	return err
}
