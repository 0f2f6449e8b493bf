package gravityzone

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
)

// ErrBlankCompanyID is returned when a company id is whitespace, or empty
// where one is required.
var ErrBlankCompanyID = errors.New("gravityzone: company id must not be blank")

// GetLicense returns the license information for a company. An empty
// companyID means the company linked to the API key; returnAllProducts
// includes information for every licensed product.
//
// The result is a single license object even though some console versions
// describe it as a list.
func (c *Client) GetLicense(ctx context.Context, companyID string, returnAllProducts bool, opts ...CallOption) (json.RawMessage, error) {
	params := Params{"companyId": maybeString(companyID), "returnAllProducts": returnAllProducts}
	return c.call(ctx, opGetLicenseInfo, params, opts...)
}

// SetMonthlySubscription updates the add-on toggles of a company's monthly
// subscription. Nil toggles go out as nulls and leave the console value
// unchanged. An empty companyID means the company linked to the API key.
func (c *Client) SetMonthlySubscription(ctx context.Context, companyID string, hyperDetect, sandboxAnalyzer *bool, opts ...CallOption) error {
	if companyID != "" && strings.TrimSpace(companyID) == "" {
		return ErrBlankCompanyID
	}
	params := Params{
		"companyId": maybeString(companyID),
		"ownUse": Params{
			"manageHyperDetect":     hyperDetect,
			"manageSandboxAnalyzer": sandboxAnalyzer,
		},
	}
	_, err := c.call(ctx, opSetMonthlySubscription, params, opts...)
	return err
}

// SetLicenseKey assigns a license key to a company.
func (c *Client) SetLicenseKey(ctx context.Context, companyID, licenseKey string, opts ...CallOption) error {
	if strings.TrimSpace(companyID) == "" {
		return ErrBlankCompanyID
	}
	params := Params{"companyId": companyID, "licenseKey": licenseKey}
	_, err := c.call(ctx, opSetLicenseKey, params, opts...)
	return err
}
