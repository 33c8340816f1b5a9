package sdk

import "strings"

// Address is the stable opaque account identifier handed to the contract by
// the host (a DID-style string such as did:key:z6Mk... or hive:alice).
type Address string

// String returns the literal representation of the address.
// Example payload: sdk.Address("hive:foo").String()
func (a Address) String() string {
	return string(a)
}

type AddressType string

const (
	AddressTypeKey     AddressType = "key"
	AddressTypeHive    AddressType = "hive"
	AddressTypeSystem  AddressType = "system"
	AddressTypeUnknown AddressType = "unknown"
)

// Type inspects the prefix to categorize the address (key, hive, system).
// Example payload: sdk.Address("did:key:z6").Type()
func (a Address) Type() AddressType {
	if strings.HasPrefix(a.String(), "did:key:") {
		return AddressTypeKey
	} else if strings.HasPrefix(a.String(), "hive:") {
		return AddressTypeHive
	} else if strings.HasPrefix(a.String(), "system:") {
		return AddressTypeSystem
	} else {
		return AddressTypeUnknown
	}
}

// IsValid returns false if the address type detection failed, used as a light sanity check.
// Example payload: sdk.Address("foo").IsValid()
func (a Address) IsValid() bool {
	return a != "" && a.Type() != AddressTypeUnknown
}
