package gravityzone

import (
	"context"
	"encoding/json"
	"iter"
)

// Service selectors for endpoints that split their surface by machine type.
const (
	ServiceComputers       = "computers"
	ServiceVirtualMachines = "virtualmachines"
)

// operation describes one console API method: where it lives, whether it
// pages, and which sub-services it accepts. The resource methods resolve
// their wire strings exclusively through this table, so endpoint and method
// names live in one place.
type operation struct {
	name      string
	endpoint  string
	method    string
	paginated bool
	services  []string
}

var machineServices = []string{ServiceComputers, ServiceVirtualMachines}

// machineService maps the onlyVM flag of the service-scoped resource methods
// onto the wire service name.
func machineService(onlyVM bool) string {
	if onlyVM {
		return ServiceVirtualMachines
	}
	return ServiceComputers
}

// withService appends a service selector without writing into the caller's
// option slice.
func withService(opts []CallOption, service string) []CallOption {
	return append(opts[:len(opts):len(opts)], WithService(service))
}

var (
	opGetAccountsList                = operation{name: "accounts.list", endpoint: "accounts", method: "getAccountsList", paginated: true}
	opGetAccountDetails              = operation{name: "accounts.details", endpoint: "accounts", method: "getAccountDetails"}
	opCreateAccount                  = operation{name: "accounts.create", endpoint: "accounts", method: "createAccount"}
	opUpdateAccount                  = operation{name: "accounts.update", endpoint: "accounts", method: "updateAccount"}
	opDeleteAccount                  = operation{name: "accounts.delete", endpoint: "accounts", method: "deleteAccount"}
	opGetNotificationsSettings       = operation{name: "accounts.notifications", endpoint: "accounts", method: "getNotificationsSettings"}
	opConfigureNotificationsSettings = operation{name: "accounts.configureNotifications", endpoint: "accounts", method: "configureNotificationsSettings"}

	opGetCompanyDetails       = operation{name: "companies.details", endpoint: "companies", method: "getCompanyDetails"}
	opGetCompanyDetailsByUser = operation{name: "companies.detailsByUser", endpoint: "companies", method: "getCompanyDetailsByUser"}
	opFindCompaniesByName     = operation{name: "companies.find", endpoint: "companies", method: "findCompaniesByName"}
	opCreateCompany           = operation{name: "companies.create", endpoint: "companies", method: "createCompany"}
	opUpdateCompanyDetails    = operation{name: "companies.update", endpoint: "companies", method: "updateCompanyDetails"}
	opDeleteCompany           = operation{name: "companies.delete", endpoint: "companies", method: "deleteCompany"}
	opSuspendCompany          = operation{name: "companies.suspend", endpoint: "companies", method: "suspendCompany"}
	opActivateCompany         = operation{name: "companies.activate", endpoint: "companies", method: "activateCompany"}

	opGetLicenseInfo         = operation{name: "licensing.info", endpoint: "licensing", method: "getLicenseInfo"}
	opSetMonthlySubscription = operation{name: "licensing.setMonthly", endpoint: "licensing", method: "setMonthlySubscription"}
	opSetLicenseKey          = operation{name: "licensing.setKey", endpoint: "licensing", method: "setLicenseKey"}

	opGetRootContainers         = operation{name: "network.rootContainers", endpoint: "network", method: "getRootContainers"}
	opGetNetworkInventoryItems  = operation{name: "network.inventory", endpoint: "network", method: "getNetworkInventoryItems", paginated: true}
	opGetCompaniesList          = operation{name: "network.companies", endpoint: "network", method: "getCompaniesList"}
	opGetCustomGroupsList       = operation{name: "network.customGroups", endpoint: "network", method: "getCustomGroupsList"}
	opGetEndpointsList          = operation{name: "network.endpoints", endpoint: "network", method: "getEndpointsList", paginated: true}
	opGetManagedEndpointDetails = operation{name: "network.endpointDetails", endpoint: "network", method: "getManagedEndpointDetails"}
	opDeleteEndpoint            = operation{name: "network.deleteEndpoint", endpoint: "network", method: "deleteEndpoint"}
	opCreateScanTask            = operation{name: "network.createScan", endpoint: "network", method: "createScanTask"}
	opGetScanTasksList          = operation{name: "network.scanTasks", endpoint: "network", method: "getScanTasksList", paginated: true}

	opGetInstallationLinks = operation{name: "packages.installationLinks", endpoint: "packages", method: "getInstallationLinks"}
	opGetPackagesList      = operation{name: "packages.list", endpoint: "packages", method: "getPackagesList", paginated: true}
	opGetPackageDetails    = operation{name: "packages.details", endpoint: "packages", method: "getPackageDetails"}
	opCreatePackage        = operation{name: "packages.create", endpoint: "packages", method: "createPackage"}
	opDeletePackage        = operation{name: "packages.delete", endpoint: "packages", method: "deletePackage"}

	opGetPoliciesList  = operation{name: "policies.list", endpoint: "policies", method: "getPoliciesList", paginated: true}
	opGetPolicyDetails = operation{name: "policies.details", endpoint: "policies", method: "getPolicyDetails"}

	opGetReportsList   = operation{name: "reports.list", endpoint: "reports", method: "getReportsList", paginated: true, services: machineServices}
	opCreateReport     = operation{name: "reports.create", endpoint: "reports", method: "createReport", services: machineServices}
	opGetDownloadLinks = operation{name: "reports.downloadLinks", endpoint: "reports", method: "getDownloadLinks"}
	opDeleteReport     = operation{name: "reports.delete", endpoint: "reports", method: "deleteReport"}

	opSetPushEventSettings = operation{name: "push.setSettings", endpoint: "push", method: "setPushEventSettings"}
	opGetPushEventSettings = operation{name: "push.settings", endpoint: "push", method: "getPushEventSettings"}
	opSendTestPushEvent    = operation{name: "push.sendTest", endpoint: "push", method: "sendTestPushEvent"}
	opGetPushEventStats    = operation{name: "push.stats", endpoint: "push", method: "getPushEventStats"}
	opResetPushEventStats  = operation{name: "push.resetStats", endpoint: "push", method: "resetPushEventStats"}

	opGetMaintenanceWindowsList   = operation{name: "maintenanceWindows.list", endpoint: "maintenanceWindows", method: "getMaintenanceWindowsList", paginated: true}
	opGetMaintenanceWindowDetails = operation{name: "maintenanceWindows.details", endpoint: "maintenanceWindows", method: "getMaintenanceWindowDetails"}
	opCreateMaintenanceWindow     = operation{name: "maintenanceWindows.create", endpoint: "maintenanceWindows", method: "createMaintenanceWindow"}
	opUpdateMaintenanceWindow     = operation{name: "maintenanceWindows.update", endpoint: "maintenanceWindows", method: "updateMaintenanceWindow"}
	opDeleteMaintenanceWindow     = operation{name: "maintenanceWindows.delete", endpoint: "maintenanceWindows", method: "deleteMaintenanceWindow"}
	opAssignMaintenanceWindow     = operation{name: "maintenanceWindows.assign", endpoint: "maintenanceWindows", method: "assignMaintenanceWindow"}
	opUnassignMaintenanceWindow   = operation{name: "maintenanceWindows.unassign", endpoint: "maintenanceWindows", method: "unassignMaintenanceWindow"}

	opGetQuarantineItemsList = operation{name: "quarantine.list", endpoint: "quarantine", method: "getQuarantineItemsList", paginated: true, services: machineServices}
	opRemoveQuarantineItems  = operation{name: "quarantine.remove", endpoint: "quarantine", method: "createRemoveQuarantineItemsTask", services: machineServices}
	opRestoreQuarantineItems = operation{name: "quarantine.restore", endpoint: "quarantine", method: "createRestoreQuarantineItemTask", services: machineServices}
	opEmptyQuarantine        = operation{name: "quarantine.empty", endpoint: "quarantine", method: "createEmptyQuarantineTask", services: machineServices}

	opGetAPIKeyDetails = operation{name: "general.apiKeyDetails", endpoint: "general", method: "getApiKeyDetails"}
)

// catalog lists every operation for the table integrity checks.
var catalog = []operation{
	opGetAccountsList,
	opGetAccountDetails,
	opCreateAccount,
	opUpdateAccount,
	opDeleteAccount,
	opGetNotificationsSettings,
	opConfigureNotificationsSettings,
	opGetCompanyDetails,
	opGetCompanyDetailsByUser,
	opFindCompaniesByName,
	opCreateCompany,
	opUpdateCompanyDetails,
	opDeleteCompany,
	opSuspendCompany,
	opActivateCompany,
	opGetLicenseInfo,
	opSetMonthlySubscription,
	opSetLicenseKey,
	opGetRootContainers,
	opGetNetworkInventoryItems,
	opGetCompaniesList,
	opGetCustomGroupsList,
	opGetEndpointsList,
	opGetManagedEndpointDetails,
	opDeleteEndpoint,
	opCreateScanTask,
	opGetScanTasksList,
	opGetInstallationLinks,
	opGetPackagesList,
	opGetPackageDetails,
	opCreatePackage,
	opDeletePackage,
	opGetPoliciesList,
	opGetPolicyDetails,
	opGetReportsList,
	opCreateReport,
	opGetDownloadLinks,
	opDeleteReport,
	opSetPushEventSettings,
	opGetPushEventSettings,
	opSendTestPushEvent,
	opGetPushEventStats,
	opResetPushEventStats,
	opGetMaintenanceWindowsList,
	opGetMaintenanceWindowDetails,
	opCreateMaintenanceWindow,
	opUpdateMaintenanceWindow,
	opDeleteMaintenanceWindow,
	opAssignMaintenanceWindow,
	opUnassignMaintenanceWindow,
	opGetQuarantineItemsList,
	opRemoveQuarantineItems,
	opRestoreQuarantineItems,
	opEmptyQuarantine,
	opGetAPIKeyDetails,
}

// call dispatches a cataloged operation.
func (c *Client) call(ctx context.Context, op operation, params Params, opts ...CallOption) (json.RawMessage, error) {
	return c.Call(ctx, op.endpoint, op.method, params, opts...)
}

// paginate walks a cataloged listing.
func (c *Client) paginate(ctx context.Context, op operation, params Params, opts ...CallOption) iter.Seq2[map[string]any, error] {
	return c.Paginate(ctx, op.endpoint, op.method, params, opts...)
}
