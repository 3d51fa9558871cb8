package sdk

import "strings"

// AddressDomain groups addresses into coarse categories based on their prefix.
type AddressDomain string

const (
	AddressDomainUser     AddressDomain = "user"
	AddressDomainContract AddressDomain = "contract"
	AddressDomainSystem   AddressDomain = "system"
)

type Address string

// String returns the literal representation (like hive:alice) of the address.
// Example payload: sdk.Address("hive:foo").String()
func (a Address) String() string {
	return string(a)
}

// Domain quickly checks the prefix to guess if we deal with user/contract/system domain.
// Example payload: sdk.Address("contract:treasury").Domain()
func (a Address) Domain() AddressDomain {
	if strings.HasPrefix(a.String(), "system:") {
		return AddressDomainSystem
	}
	if strings.HasPrefix(a.String(), "contract:") {
		return AddressDomainContract
	}
	return AddressDomainUser
}

// IsValid is a light sanity check: addresses must carry a domain prefix.
// Example payload: sdk.Address("hive:bob").IsValid()
func (a Address) IsValid() bool {
	return strings.Contains(a.String(), ":")
}
