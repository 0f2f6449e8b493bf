package gravityzone

import (
	"context"
	"encoding/json"
	"iter"
)

// CreatePackageParams collects the fields of CreatePackage. Name is
// required. Empty optional sections are omitted so the console applies its
// defaults.
type CreatePackageParams struct {
	Name        string
	CompanyID   string
	Description string
	// ScanMode, Modules, Settings and DeploymentOptions follow the
	// createPackage request shapes.
	ScanMode          Params
	Modules           Params
	Settings          Params
	DeploymentOptions Params
}

// GetInstallationLinks returns the installation links and full kits for a
// package. An empty companyID means the company linked to the API key; an
// empty packageName returns the links for every package.
func (c *Client) GetInstallationLinks(ctx context.Context, companyID, packageName string, opts ...CallOption) (json.RawMessage, error) {
	params := Params{"companyId": maybeString(companyID), "packageName": maybeString(packageName)}
	return c.call(ctx, opGetInstallationLinks, params, opts...)
}

// GetPackages walks the available installation packages of a company. An
// empty companyID means the company linked to the API key.
func (c *Client) GetPackages(ctx context.Context, companyID string, opts ...CallOption) iter.Seq2[Package, error] {
	raw := c.paginate(ctx, opGetPackagesList, Params{"companyId": maybeString(companyID)}, opts...)
	return DecodeSeq[Package](raw)
}

// GetPackage returns the configuration of a package.
func (c *Client) GetPackage(ctx context.Context, packageID string, opts ...CallOption) (json.RawMessage, error) {
	return c.call(ctx, opGetPackageDetails, Params{"packageId": packageID}, opts...)
}

// CreatePackage creates an installation package.
func (c *Client) CreatePackage(ctx context.Context, p CreatePackageParams, opts ...CallOption) (json.RawMessage, error) {
	params := Params{
		"packageName": p.Name,
		"companyId":   maybeString(p.CompanyID),
	}
	if p.Description != "" {
		params["description"] = p.Description
	}
	if len(p.ScanMode) > 0 {
		params["scanMode"] = p.ScanMode
	}
	if len(p.Modules) > 0 {
		params["modules"] = p.Modules
	}
	if len(p.Settings) > 0 {
		params["settings"] = p.Settings
	}
	if len(p.DeploymentOptions) > 0 {
		params["deploymentOptions"] = p.DeploymentOptions
	}
	return c.call(ctx, opCreatePackage, params, opts...)
}

// DeletePackage deletes an installation package.
func (c *Client) DeletePackage(ctx context.Context, packageID string, opts ...CallOption) error {
	_, err := c.call(ctx, opDeletePackage, Params{"packageId": packageID}, opts...)
	return err
}
