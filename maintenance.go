package gravityzone

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
)

// GetMaintenanceWindows walks the maintenance windows of a company. An empty
// companyID means the company linked to the API key.
func (c *Client) GetMaintenanceWindows(ctx context.Context, companyID string, opts ...CallOption) iter.Seq2[map[string]any, error] {
	return c.paginate(ctx, opGetMaintenanceWindowsList, Params{"companyId": maybeString(companyID)}, opts...)
}

// GetMaintenanceWindow returns the details of a maintenance window.
func (c *Client) GetMaintenanceWindow(ctx context.Context, windowID string, opts ...CallOption) (json.RawMessage, error) {
	return c.call(ctx, opGetMaintenanceWindowDetails, Params{"maintenanceWindowId": windowID}, opts...)
}

// CreateMaintenanceWindow creates a maintenance window from the given
// settings (name, recurrence, tasks and so on, following the
// createMaintenanceWindow request shape) and returns its ID.
func (c *Client) CreateMaintenanceWindow(ctx context.Context, settings Params, opts ...CallOption) (string, error) {
	raw, err := c.call(ctx, opCreateMaintenanceWindow, settings, opts...)
	if err != nil {
		return "", err
	}
	var id string
	if err := json.Unmarshal(raw, &id); err != nil {
		return "", fmt.Errorf("gravityzone: decode maintenance window id: %w", err)
	}
	return id, nil
}

// UpdateMaintenanceWindow updates an existing maintenance window.
func (c *Client) UpdateMaintenanceWindow(ctx context.Context, windowID string, settings Params, opts ...CallOption) error {
	p := settings.clone()
	p["maintenanceWindowId"] = windowID
	_, err := c.call(ctx, opUpdateMaintenanceWindow, p, opts...)
	return err
}

// DeleteMaintenanceWindow removes a maintenance window.
func (c *Client) DeleteMaintenanceWindow(ctx context.Context, windowID string, opts ...CallOption) error {
	_, err := c.call(ctx, opDeleteMaintenanceWindow, Params{"maintenanceWindowId": windowID}, opts...)
	return err
}

// AssignMaintenanceWindow assigns a maintenance window to the given network
// targets.
func (c *Client) AssignMaintenanceWindow(ctx context.Context, windowID string, targetIDs []string, opts ...CallOption) error {
	params := Params{"maintenanceWindowId": windowID, "targetIds": targetIDs}
	_, err := c.call(ctx, opAssignMaintenanceWindow, params, opts...)
	return err
}

// UnassignMaintenanceWindow removes a maintenance window from the given
// network targets.
func (c *Client) UnassignMaintenanceWindow(ctx context.Context, windowID string, targetIDs []string, opts ...CallOption) error {
	params := Params{"maintenanceWindowId": windowID, "targetIds": targetIDs}
	_, err := c.call(ctx, opUnassignMaintenanceWindow, params, opts...)
	return err
}
