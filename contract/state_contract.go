package contract

import "bonfire_dao/sdk"

// -----------------------------------------------------------------------------
// Contract Configuration State
// -----------------------------------------------------------------------------

// isContractInitialized returns true once deploy_global has run.
func isContractInitialized() bool {
	ptr := sdk.StateGetObject(ContractConfigKey)
	return ptr != nil && *ptr != ""
}

// loadContractConfig loads the global DAO record from state.
func loadContractConfig() *ContractConfig {
	ptr := sdk.StateGetObject(ContractConfigKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	var cfg ContractConfig
	if err := fromJSON(*ptr, &cfg); err != nil {
		sdk.Abort("failed to decode contract config")
	}
	return &cfg
}

// saveContractConfig stores the global DAO record to state.
func saveContractConfig(cfg *ContractConfig) {
	sdk.StateSetObject(ContractConfigKey, toJSON(*cfg))
}

// isAdmin scans the admin set; the set stays small so linear is fine.
func (cfg *ContractConfig) isAdmin(addr sdk.Address) bool {
	for _, a := range cfg.Admins {
		if a == addr.String() {
			return true
		}
	}
	return false
}

// isOwner is false once credentials were dropped.
func (cfg *ContractConfig) isOwner(addr sdk.Address) bool {
	return cfg.Owner != nil && *cfg.Owner == addr
}

// -----------------------------------------------------------------------------
// Local instances
// -----------------------------------------------------------------------------

// loadLocalInstance returns nil when the name is free.
func loadLocalInstance(name string) *LocalInstance {
	ptr := sdk.StateGetObject(localInstanceKey(name))
	if ptr == nil || *ptr == "" {
		return nil
	}
	var inst LocalInstance
	if err := fromJSON(*ptr, &inst); err != nil {
		sdk.Abort("failed to decode local instance")
	}
	return &inst
}

func saveLocalInstance(inst *LocalInstance) {
	sdk.StateSetObject(localInstanceKey(inst.Name), toJSON(*inst))
}
