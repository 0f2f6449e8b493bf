package gravityzone

import (
	"context"
	"encoding/json"
	"fmt"
)

// CreateCompanyParams collects the fields of CreateCompany.
//
// LicenseType selects the licenseSubscription shape: LicenseTypeYearly sends
// the license key, everything else (default LicenseTypeMonthly) sends the
// reserved-slots subscription with its add-on toggles.
type CreateCompanyParams struct {
	Name string
	// Type is sent as given; the console reads 0 as partner and 1 as
	// customer.
	Type    CompanyType
	Address string
	Phone   string
	// ManagedByPartner maps to canBeManagedByAbove. Defaults to true.
	ManagedByPartner *bool

	// LicenseType defaults to LicenseTypeMonthly when zero.
	LicenseType LicenseType
	// LicenseKey applies to LicenseTypeYearly.
	LicenseKey string
	// ReservedSlots, AssignedProductType and the add-on toggles apply to
	// subscription licensing (trial and monthly).
	ReservedSlots               int
	AssignedProductType         int
	ManageRemoteEnginesScanning bool
	ManageHyperDetect           bool
	ManageSandboxAnalyzer       bool
}

// GetCompany returns the details of a company. An empty companyID means the
// company linked to the API key.
func (c *Client) GetCompany(ctx context.Context, companyID string, opts ...CallOption) (json.RawMessage, error) {
	return c.call(ctx, opGetCompanyDetails, Params{"companyId": maybeString(companyID)}, opts...)
}

// GetCompanyByUser returns the details of the company linked to the account
// identified by the given credentials.
func (c *Client) GetCompanyByUser(ctx context.Context, username, password string, opts ...CallOption) (json.RawMessage, error) {
	return c.call(ctx, opGetCompanyDetailsByUser, Params{"username": username, "password": password}, opts...)
}

// FindCompaniesByName searches managed companies by name fragment.
func (c *Client) FindCompaniesByName(ctx context.Context, nameFilter string, opts ...CallOption) (json.RawMessage, error) {
	return c.call(ctx, opFindCompaniesByName, Params{"nameFilter": nameFilter}, opts...)
}

// CreateCompany creates a company and returns its ID.
func (c *Client) CreateCompany(ctx context.Context, p CreateCompanyParams, opts ...CallOption) (string, error) {
	licenseType := p.LicenseType
	if licenseType == 0 {
		licenseType = LicenseTypeMonthly
	}

	var subscription Params
	if licenseType == LicenseTypeYearly {
		subscription = Params{
			"type":       licenseType,
			"licenseKey": p.LicenseKey,
		}
	} else {
		subscription = Params{
			"type":                licenseType,
			"reservedSlots":       p.ReservedSlots,
			"assignedProductType": p.AssignedProductType,
			"ownUse": Params{
				"manageRemoteEnginesScanning": p.ManageRemoteEnginesScanning,
				"manageHyperDetect":           p.ManageHyperDetect,
				"manageSandboxAnalyzer":       p.ManageSandboxAnalyzer,
			},
		}
	}

	params := Params{
		"type":                p.Type,
		"name":                p.Name,
		"address":             maybeString(p.Address),
		"phone":               maybeString(p.Phone),
		"canBeManagedByAbove": boolValue(p.ManagedByPartner, true),
		"licenseSubscription": subscription,
	}

	raw, err := c.call(ctx, opCreateCompany, params, opts...)
	if err != nil {
		return "", err
	}
	var id string
	if err := json.Unmarshal(raw, &id); err != nil {
		return "", fmt.Errorf("gravityzone: decode company id: %w", err)
	}
	return id, nil
}

// UpdateCompany updates a company's name, type, and contact details.
func (c *Client) UpdateCompany(ctx context.Context, companyID, name string, companyType CompanyType, address, phone string, opts ...CallOption) error {
	params := Params{
		"id":      companyID,
		"type":    companyType,
		"name":    name,
		"address": maybeString(address),
		"phone":   maybeString(phone),
	}
	_, err := c.call(ctx, opUpdateCompanyDetails, params, opts...)
	return err
}

// DeleteCompany deletes a company account.
func (c *Client) DeleteCompany(ctx context.Context, companyID string, opts ...CallOption) error {
	_, err := c.call(ctx, opDeleteCompany, Params{"companyId": companyID}, opts...)
	return err
}

// SuspendCompany suspends an active company account. With recursive set,
// sub-companies are suspended as well.
func (c *Client) SuspendCompany(ctx context.Context, companyID string, recursive bool, opts ...CallOption) error {
	_, err := c.call(ctx, opSuspendCompany, Params{"companyId": companyID, "recursive": recursive}, opts...)
	return err
}

// ActivateCompany activates a suspended company account. With recursive set,
// sub-companies are activated as well.
func (c *Client) ActivateCompany(ctx context.Context, companyID string, recursive bool, opts ...CallOption) error {
	_, err := c.call(ctx, opActivateCompany, Params{"companyId": companyID, "recursive": recursive}, opts...)
	return err
}
