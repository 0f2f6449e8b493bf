package gravityzone

import (
	"fmt"
	"iter"

	"github.com/mitchellh/mapstructure"
)

// AccountRole is the privilege level of a console user account.
type AccountRole int

const (
	AccountRoleCompanyAdmin AccountRole = 1
	AccountRoleNetworkAdmin AccountRole = 2
	AccountRoleReporter     AccountRole = 3
	AccountRolePartner      AccountRole = 4
	AccountRoleCustom       AccountRole = 5
)

// CompanyType distinguishes partner companies from customer companies.
type CompanyType int

const (
	CompanyTypePartner  CompanyType = 0
	CompanyTypeCustomer CompanyType = 1
)

// LicenseType identifies how a company is licensed.
type LicenseType int

const (
	LicenseTypeTrial   LicenseType = 1
	LicenseTypeYearly  LicenseType = 2
	LicenseTypeMonthly LicenseType = 3
)

// ScanType selects the kind of scan started by CreateScanTask.
type ScanType int

const (
	ScanTypeQuick  ScanType = 1
	ScanTypeFull   ScanType = 2
	ScanTypeMemory ScanType = 3
	ScanTypeCustom ScanType = 4
)

// PackageType identifies the kind of an installation package.
type PackageType int

const (
	PackageTypeSecurityVirtualAppliance PackageType = 3
	PackageTypeEndpointSecurityTools    PackageType = 4
)

// Package is the summary shape yielded by GetPackages.
type Package struct {
	ID   string      `json:"id"`
	Name string      `json:"name"`
	Type PackageType `json:"type"`
}

// Decode converts a raw item map into a caller-defined struct, matching map
// keys against json tags. JSON numbers arrive as float64 in item maps and
// convert to integer fields as needed.
func Decode(item map[string]any, dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  dst,
		TagName: "json",
	})
	if err != nil {
		return fmt.Errorf("gravityzone: build decoder: %w", err)
	}
	if err := dec.Decode(item); err != nil {
		return fmt.Errorf("gravityzone: decode item: %w", err)
	}
	return nil
}

// DecodeSeq adapts a raw item sequence into a typed one, decoding each item
// with Decode. Errors from the source pass through; a decode failure stops
// the walk.
func DecodeSeq[T any](seq iter.Seq2[map[string]any, error]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for item, err := range seq {
			var v T
			if err != nil {
				yield(v, err)
				return
			}
			if derr := Decode(item, &v); derr != nil {
				yield(v, derr)
				return
			}
			if !yield(v, nil) {
				return
			}
		}
	}
}
