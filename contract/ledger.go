package contract

// -----------------------------------------------------------------------------
// Account ledger
// -----------------------------------------------------------------------------
//
// Balance and lock bookkeeping. All mutations happen on loaded structs; the
// caller persists them only after every validation passed, so a failed call
// never leaves partial state. The Circulating/Locked aggregates on TokenPools
// are maintained here so conservation stays an O(1) check.

// spendable is the balance minus everything locked out toward others.
func (a *Account) spendable() uint64 {
	return a.Tokens - a.LockedOut
}

// sponsorCount counts distinct live sponsors; zero-amount edges never exist.
func (a *Account) sponsorCount() int {
	return len(a.Sponsors)
}

// creditTokens adds to the balance. Cannot fail.
func creditTokens(a *Account, pools *TokenPools, amount uint64) {
	a.Tokens += amount
	pools.Circulating += amount
}

// debitTokens removes from the spendable balance.
func debitTokens(a *Account, pools *TokenPools, amount uint64) error {
	if a.spendable() < amount {
		return ErrInsufficientFunds.withDetail("%s has %d spendable, needs %d", a.Address, a.spendable(), amount)
	}
	a.Tokens -= amount
	pools.Circulating -= amount
	return nil
}

// lockTokens freezes part of the sponsor's spendable balance in favor of the
// sponsored account. Amount zero validates and changes nothing; an edge with
// amount zero is never created.
func lockTokens(sponsor, sponsored *Account, pools *TokenPools, amount uint64) error {
	if sponsor.spendable() < amount {
		return ErrInsufficientFunds.withDetail("%s has %d spendable, needs %d", sponsor.Address, sponsor.spendable(), amount)
	}
	if amount == 0 {
		return nil
	}
	sponsor.LockedOut += amount
	sponsored.Sponsors[sponsor.Address.String()] += amount
	pools.Circulating -= amount
	pools.Locked += amount
	return nil
}

// unlockTokens releases part of an existing lock back to the sponsor's
// spendable balance. The edge is deleted when its amount reaches zero.
func unlockTokens(sponsor, sponsored *Account, pools *TokenPools, amount uint64) error {
	current, ok := sponsored.Sponsors[sponsor.Address.String()]
	if !ok {
		return ErrNoSuchEdge.withDetail("%s -> %s", sponsor.Address, sponsored.Address)
	}
	if amount > current {
		return ErrInsufficientLocked.withDetail("locked %d, requested %d", current, amount)
	}
	if amount == 0 {
		return nil
	}
	sponsor.LockedOut -= amount
	if current == amount {
		delete(sponsored.Sponsors, sponsor.Address.String())
	} else {
		sponsored.Sponsors[sponsor.Address.String()] = current - amount
	}
	pools.Circulating += amount
	pools.Locked -= amount
	return nil
}
