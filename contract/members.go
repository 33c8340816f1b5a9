package contract

import "bonfire_dao/sdk"

// -----------------------------------------------------------------------------
// Membership registry
// -----------------------------------------------------------------------------

// deployGlobal is the one-time bootstrap: the caller becomes owner, the first
// admin and the first (pre-activated) member, and receives the genesis grant
// so tokens exist before any curve activity. A second call fails.
func deployGlobal(caller sdk.Address, args *DeployGlobalArgs, now int64) error {
	if isContractInitialized() {
		return ErrAlreadyInitialized
	}
	if args.FundingFeePct > MaxFundingFeePct {
		return ErrInvalidArgument.withDetail("funding fee %d%% exceeds %d%%", args.FundingFeePct, MaxFundingFeePct)
	}
	period := args.VotingPeriodSecs
	if period <= 0 {
		period = FallbackVotingPeriodSecs
	}

	owner := caller
	cfg := &ContractConfig{
		Owner:            &owner,
		Admins:           []string{caller.String()},
		FundingFeePct:    args.FundingFeePct,
		VotingPeriodSecs: period,
	}
	saveContractConfig(cfg)

	acct := &Account{
		Address:      caller,
		Sponsors:     map[string]uint64{},
		Founder:      true,
		RegisteredAt: now,
	}
	pools := loadPools()
	pools.Genesis = GenesisGrant
	creditTokens(acct, pools, GenesisGrant)
	saveAccount(acct)
	savePools(pools)
	addToIndex(idxMembers, caller.String())
	checkConservation(pools)
	emitDeployed(caller)
	return nil
}

// deployLocal claims a unique name for a local DAO instance and records the
// caller as its owner. Independent of the global bootstrap.
func deployLocal(caller sdk.Address, name string) error {
	if name == "" || len(name) > MaxLocalNameLength {
		return ErrInvalidArgument.withDetail("local dao name must be 1..%d chars", MaxLocalNameLength)
	}
	if loadLocalInstance(name) != nil {
		return ErrNameTaken.withDetail("%s", name)
	}
	saveLocalInstance(&LocalInstance{Name: name, Owner: caller})
	emitLocalDeployed(caller, name)
	return nil
}

// dropCredentials renounces ownership. The caller stays a plain admin; the
// owner slot can never be re-filled.
func dropCredentials(caller sdk.Address) error {
	cfg := loadContractConfig()
	if cfg == nil {
		return ErrNotInitialized
	}
	if !cfg.isOwner(caller) {
		return ErrNotOwner
	}
	cfg.Owner = nil
	if !cfg.isAdmin(caller) {
		cfg.Admins = append(cfg.Admins, caller.String())
	}
	saveContractConfig(cfg)
	emitCredentialsDropped(caller)
	return nil
}

// registerUser creates the account record. Registration alone grants nothing;
// activity needs two sponsors.
func registerUser(caller sdk.Address, now int64) error {
	if !isContractInitialized() {
		return ErrNotInitialized
	}
	if _, ok := loadAccount(caller); ok {
		return ErrAlreadyRegistered.withDetail("%s", caller)
	}
	acct := &Account{
		Address:      caller,
		Sponsors:     map[string]uint64{},
		RegisteredAt: now,
	}
	saveAccount(acct)
	addToIndex(idxMembers, caller.String())
	emitRegistered(caller)
	return nil
}

// addAdministrator grows the admin set. Admin capability is scoped to
// membership administration only; it never touches sponsorship amounts.
func addAdministrator(caller sdk.Address, target sdk.Address) error {
	cfg := loadContractConfig()
	if cfg == nil {
		return ErrNotInitialized
	}
	if !cfg.isAdmin(caller) {
		return ErrNotAdmin
	}
	if _, ok := loadAccount(target); !ok {
		return ErrNotRegistered.withDetail("%s", target)
	}
	if cfg.isAdmin(target) {
		return ErrAlreadyAdmin.withDetail("%s", target)
	}
	cfg.Admins = append(cfg.Admins, target.String())
	saveContractConfig(cfg)
	emitAdminAdded(caller, target)
	return nil
}

// removeAdministrator shrinks the admin set but never to zero, so the DAO can
// not lock itself out of membership administration.
func removeAdministrator(caller sdk.Address, target sdk.Address) error {
	cfg := loadContractConfig()
	if cfg == nil {
		return ErrNotInitialized
	}
	if !cfg.isAdmin(caller) {
		return ErrNotAdmin
	}
	if _, ok := loadAccount(target); !ok {
		return ErrNotRegistered.withDetail("%s", target)
	}
	if !cfg.isAdmin(target) {
		return ErrNotAdmin.withDetail("target %s", target)
	}
	if len(cfg.Admins) == 1 {
		return ErrCannotRemoveLastAdmin
	}
	admins := make([]string, 0, len(cfg.Admins)-1)
	for _, a := range cfg.Admins {
		if a != target.String() {
			admins = append(admins, a)
		}
	}
	cfg.Admins = admins
	saveContractConfig(cfg)
	emitAdminRemoved(caller, target)
	return nil
}

// transferTokens moves spendable balance between registered accounts.
func transferTokens(caller sdk.Address, to sdk.Address, amount uint64) error {
	if caller == to {
		return ErrInvalidArgument.withDetail("transfer to self")
	}
	from, err := requireAccount(caller)
	if err != nil {
		return err
	}
	dest, err := requireAccount(to)
	if err != nil {
		return err
	}
	pools := loadPools()
	if err := debitTokens(from, pools, amount); err != nil {
		return err
	}
	creditTokens(dest, pools, amount)
	saveAccount(from)
	saveAccount(dest)
	savePools(pools)
	checkConservation(pools)
	emitTransfer(caller, to, amount)
	return nil
}

// countActiveMembers walks the registry; activity is derived live so this is
// always consistent with the current lock state.
func countActiveMembers() uint64 {
	var n uint64
	for _, addr := range listIndex(idxMembers) {
		acct, ok := loadAccount(sdk.Address(addr))
		if ok && isActiveAccount(acct) {
			n++
		}
	}
	return n
}
