package gravityzone

import (
	"context"
	"encoding/json"
	"iter"
)

// GetPolicies walks the security policies visible for a company. An empty
// companyID means the company linked to the API key.
func (c *Client) GetPolicies(ctx context.Context, companyID string, opts ...CallOption) iter.Seq2[map[string]any, error] {
	return c.paginate(ctx, opGetPoliciesList, Params{"companyId": maybeString(companyID)}, opts...)
}

// GetPolicy returns all information related to a security policy.
func (c *Client) GetPolicy(ctx context.Context, policyID string, opts ...CallOption) (json.RawMessage, error) {
	return c.call(ctx, opGetPolicyDetails, Params{"policyId": policyID}, opts...)
}
