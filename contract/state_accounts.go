package contract

import "bonfire_dao/sdk"

// saveAccount persists the account blob under its address key.
func saveAccount(acct *Account) {
	sdk.StateSetObject(accountKey(acct.Address), toJSON(*acct))
}

// loadAccount returns (nil, false) for unregistered addresses.
func loadAccount(addr sdk.Address) (*Account, bool) {
	ptr := sdk.StateGetObject(accountKey(addr))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	var acct Account
	if err := fromJSON(*ptr, &acct); err != nil {
		sdk.Abort("failed to decode account")
	}
	if acct.Sponsors == nil {
		acct.Sponsors = map[string]uint64{}
	}
	return &acct, true
}

// requireAccount is the common "must be registered" lookup.
func requireAccount(addr sdk.Address) (*Account, error) {
	acct, ok := loadAccount(addr)
	if !ok {
		return nil, ErrNotRegistered.withDetail("%s", addr)
	}
	return acct, nil
}
