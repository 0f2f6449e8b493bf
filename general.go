package gravityzone

import (
	"context"
	"encoding/json"
)

// GetAPIKeyDetails returns the details of the API key in use, including the
// APIs it is enabled for.
func (c *Client) GetAPIKeyDetails(ctx context.Context, opts ...CallOption) (json.RawMessage, error) {
	return c.call(ctx, opGetAPIKeyDetails, Params{}, opts...)
}
