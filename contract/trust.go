package contract

import "bonfire_dao/sdk"

// -----------------------------------------------------------------------------
// Trust graph
// -----------------------------------------------------------------------------
//
// Sponsorship edges live inside the sponsored account's blob; activity is
// always derived from live lock state, never stored, so eligibility cannot
// drift from the ledger.

// isActiveAccount implements the fixed two-sponsor policy. The bootstrap
// member (deploy_global caller) is pre-activated without sponsors.
func isActiveAccount(a *Account) bool {
	if a.Founder {
		return true
	}
	return a.sponsorCount() >= SponsorThreshold
}

// isActiveAddress resolves the address first; unregistered means inactive.
func isActiveAddress(addr sdk.Address) bool {
	acct, ok := loadAccount(addr)
	if !ok {
		return false
	}
	return isActiveAccount(acct)
}

// sponsorUser locks tokens in favor of the target. Both accounts must be
// registered and distinct; token movement is delegated to the ledger.
func sponsorUser(sponsor sdk.Address, target sdk.Address, amount uint64) error {
	if sponsor == target {
		return ErrSelfSponsorship
	}
	sponsorAcct, err := requireAccount(sponsor)
	if err != nil {
		return err
	}
	targetAcct, err := requireAccount(target)
	if err != nil {
		return err
	}
	pools := loadPools()
	if err := lockTokens(sponsorAcct, targetAcct, pools, amount); err != nil {
		return err
	}
	saveAccount(sponsorAcct)
	saveAccount(targetAcct)
	savePools(pools)
	checkConservation(pools)
	emitSponsored(sponsor, target, amount)
	return nil
}

// withdrawSponsorship releases locked tokens to show disapproval. Dropping
// below the threshold deactivates the target immediately; votes already cast
// by the target stay counted.
func withdrawSponsorship(sponsor sdk.Address, target sdk.Address, amount uint64) error {
	sponsorAcct, err := requireAccount(sponsor)
	if err != nil {
		return err
	}
	targetAcct, err := requireAccount(target)
	if err != nil {
		return err
	}
	pools := loadPools()
	if err := unlockTokens(sponsorAcct, targetAcct, pools, amount); err != nil {
		return err
	}
	saveAccount(sponsorAcct)
	saveAccount(targetAcct)
	savePools(pools)
	checkConservation(pools)
	emitWithdrawn(sponsor, target, amount)
	return nil
}

// stripSponsorships returns every incoming lock to its sponsor and clears the
// target's edge set. This is the complaint enforcement effect: the target
// stays registered but loses activity until re-sponsored. The founder flag is
// cleared too so an upheld complaint also demotes the bootstrap member.
func stripSponsorships(target *Account, pools *TokenPools) {
	for sponsorAddr, amount := range target.Sponsors {
		sponsorAcct, ok := loadAccount(sdk.Address(sponsorAddr))
		if !ok {
			// edges only ever point at registered accounts
			sdk.Abort("sponsor account missing for edge")
		}
		sponsorAcct.LockedOut -= amount
		pools.Locked -= amount
		pools.Circulating += amount
		saveAccount(sponsorAcct)
	}
	target.Sponsors = map[string]uint64{}
	target.Founder = false
	saveAccount(target)
}
