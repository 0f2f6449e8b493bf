package gravityzone

import (
	"context"
	"encoding/json"
	"fmt"
	"iter"
)

// AccountProfile is the display profile attached to a user account. Empty
// Language and Timezone are omitted so the console applies its defaults.
type AccountProfile struct {
	FullName string `json:"fullName"`
	Language string `json:"language,omitempty"`
	Timezone string `json:"timezone,omitempty"`
}

// AccountRights spells out the permissions of a custom-role account.
type AccountRights struct {
	ManageCompanies     bool `json:"manageCompanies"`
	CompanyManager      bool `json:"companyManager"`
	ManageInventory     bool `json:"manageInventory"`
	ManagePoliciesRead  bool `json:"managePoliciesRead"`
	ManagePoliciesWrite bool `json:"managePoliciesWrite"`
	ManageRemoteShell   bool `json:"manageRemoteShell"`
	ManageReports       bool `json:"manageReports"`
	ManageUsers         bool `json:"manageUsers"`
}

// CreateAccountParams collects the fields of CreateAccount.
type CreateAccountParams struct {
	Email    string
	Password string
	Profile  AccountProfile

	// Role defaults to AccountRoleCustom when zero.
	Role AccountRole
	// Rights applies to custom-role accounts; preset roles leave it nil.
	Rights *AccountRights

	// CompanyID associates the account with a company. Empty means the
	// company linked to the API key.
	CompanyID string
	// TargetIDs limits which network targets the account can see.
	TargetIDs []string
}

// GetAccounts walks the user accounts visible to the account that generated
// the API key. An empty companyID means the company linked to the API key.
func (c *Client) GetAccounts(ctx context.Context, companyID string, opts ...CallOption) iter.Seq2[map[string]any, error] {
	return c.paginate(ctx, opGetAccountsList, Params{"companyId": maybeString(companyID)}, opts...)
}

// GetAccount returns the details of one user account.
func (c *Client) GetAccount(ctx context.Context, accountID string, opts ...CallOption) (json.RawMessage, error) {
	return c.call(ctx, opGetAccountDetails, Params{"accountId": accountID}, opts...)
}

// CreateAccount creates a user account and returns its ID.
func (c *Client) CreateAccount(ctx context.Context, p CreateAccountParams, opts ...CallOption) (string, error) {
	role := p.Role
	if role == 0 {
		role = AccountRoleCustom
	}
	params := Params{
		"email":     p.Email,
		"password":  p.Password,
		"profile":   p.Profile,
		"role":      role,
		"companyId": maybeString(p.CompanyID),
		"targetIds": p.TargetIDs,
	}
	if p.Rights != nil {
		params["rights"] = p.Rights
	}

	raw, err := c.call(ctx, opCreateAccount, params, opts...)
	if err != nil {
		return "", err
	}
	var id string
	if err := json.Unmarshal(raw, &id); err != nil {
		return "", fmt.Errorf("gravityzone: decode account id: %w", err)
	}
	return id, nil
}

// UpdateAccountPassword sets a new password for an account.
func (c *Client) UpdateAccountPassword(ctx context.Context, accountID, password string, opts ...CallOption) error {
	_, err := c.call(ctx, opUpdateAccount, Params{"accountId": accountID, "password": password}, opts...)
	return err
}

// UpdateAccountTargets replaces the network targets an account can see.
func (c *Client) UpdateAccountTargets(ctx context.Context, accountID string, targetIDs []string, opts ...CallOption) error {
	_, err := c.call(ctx, opUpdateAccount, Params{"accountId": accountID, "targetIds": targetIDs}, opts...)
	return err
}

// DeleteAccount deletes a user account.
func (c *Client) DeleteAccount(ctx context.Context, accountID string, opts ...CallOption) error {
	_, err := c.call(ctx, opDeleteAccount, Params{"accountId": accountID}, opts...)
	return err
}

// GetNotificationsSettings returns the notification settings of an account.
func (c *Client) GetNotificationsSettings(ctx context.Context, accountID string, opts ...CallOption) (json.RawMessage, error) {
	return c.call(ctx, opGetNotificationsSettings, Params{"accountId": accountID}, opts...)
}

// ConfigureNotificationsSettings updates the notification settings of an
// account. settings carries the configureNotificationsSettings fields
// (deleteAfter, includeDeviceName, emailAddress, notificationsSettings and
// so on); an empty accountID means the account linked to the API key.
func (c *Client) ConfigureNotificationsSettings(ctx context.Context, accountID string, settings Params, opts ...CallOption) error {
	p := settings.clone()
	p["accountId"] = maybeString(accountID)
	_, err := c.call(ctx, opConfigureNotificationsSettings, p, opts...)
	return err
}
