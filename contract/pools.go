package contract

import (
	"github.com/holiman/uint256"

	"bonfire_dao/sdk"
)

// -----------------------------------------------------------------------------
// Token pools and the bonding curve
// -----------------------------------------------------------------------------
//
// The curve is tiered-linear: price(s) = PriceFloor + s/PriceStep, integer
// math throughout. Minting walks the tiers upward spending the caller's
// budget, burning walks them downward refunding from the reserve, so a mint
// followed by a full burn is an exact inverse (modulo an unspent remainder
// below the current price). Intermediate products go through uint256 so tier
// cost arithmetic cannot silently wrap.

// price returns the mint price at curve supply s.
func price(s uint64) uint64 {
	return PriceFloor + s/PriceStep
}

// tierCost multiplies take*price with an overflow guard.
func tierCost(take uint64, p uint64) uint64 {
	cost := new(uint256.Int).Mul(uint256.NewInt(take), uint256.NewInt(p))
	if !cost.IsUint64() {
		sdk.Abort("curve cost overflow")
	}
	return cost.Uint64()
}

// mulDiv computes a*b/c in 256-bit space so fee math cannot wrap either.
func mulDiv(a, b, c uint64) uint64 {
	v := new(uint256.Int).Mul(uint256.NewInt(a), uint256.NewInt(b))
	v.Div(v, uint256.NewInt(c))
	if !v.IsUint64() {
		sdk.Abort("curve fee overflow")
	}
	return v.Uint64()
}

// curveMint walks tiers upward from supply s, returning tokens minted and the
// exact budget consumed. Stops when the budget cannot buy one more token.
func curveMint(s uint64, budget uint64) (out uint64, spent uint64) {
	for {
		p := price(s)
		if budget < p {
			return
		}
		take := PriceStep - s%PriceStep
		if affordable := budget / p; affordable < take {
			take = affordable
		}
		cost := tierCost(take, p)
		out += take
		spent += cost
		budget -= cost
		s += take
	}
}

// curveRefund walks tiers downward, pricing each burned token at the price it
// was minted for.
func curveRefund(s uint64, tokens uint64) uint64 {
	var refund uint64
	remaining := tokens
	for remaining > 0 {
		take := s % PriceStep
		if take == 0 {
			take = PriceStep
		}
		if remaining < take {
			take = remaining
		}
		cost := tierCost(take, price(s-1))
		if refund+cost < refund {
			sdk.Abort("curve refund overflow")
		}
		refund += cost
		s -= take
		remaining -= take
	}
	return refund
}

// mintTokens exchanges spendable balance for curve tokens. The funding fee is
// charged on top of the curve cost and diverted to the funding pool; the
// curve cost itself backs the new tokens in the reserve. Any part of the
// budget below the current price stays with the caller.
func mintTokens(caller sdk.Address, amountIn uint64) (uint64, error) {
	if !isContractInitialized() {
		return 0, ErrNotInitialized
	}
	acct, err := requireAccount(caller)
	if err != nil {
		return 0, err
	}
	cfg := loadContractConfig()
	pools := loadPools()

	budget := amountIn
	if cfg.FundingFeePct > 0 {
		budget = mulDiv(amountIn, 100, 100+cfg.FundingFeePct)
	}
	out, spent := curveMint(pools.TokensMinted, budget)
	if out == 0 {
		return 0, nil
	}
	fee := mulDiv(spent, cfg.FundingFeePct, 100)

	if err := debitTokens(acct, pools, spent+fee); err != nil {
		return 0, err
	}
	pools.Reserve += spent
	pools.Funding += fee
	pools.TokensMinted += out
	creditTokens(acct, pools, out)
	saveAccount(acct)
	savePools(pools)
	checkConservation(pools)
	emitMinted(caller, spent+fee, out)
	return out, nil
}

// burnTokens is the inverse exchange. Redeeming more than the current curve
// supply is rejected up front; the reserve actually running dry below the
// owed refund is a curve arithmetic defect and aborts the call.
func burnTokens(caller sdk.Address, tokensIn uint64) (uint64, error) {
	if !isContractInitialized() {
		return 0, ErrNotInitialized
	}
	acct, err := requireAccount(caller)
	if err != nil {
		return 0, err
	}
	pools := loadPools()
	if tokensIn > pools.TokensMinted {
		return 0, ErrInsufficientReserve.withDetail("curve supply is %d", pools.TokensMinted)
	}
	if tokensIn == 0 {
		return 0, nil
	}
	refund := curveRefund(pools.TokensMinted, tokensIn)

	if err := debitTokens(acct, pools, tokensIn); err != nil {
		return 0, err
	}
	if refund > pools.Reserve {
		sdk.Abort("reserve drained below owed refund")
	}
	pools.Reserve -= refund
	pools.TokensMinted -= tokensIn
	creditTokens(acct, pools, refund)
	saveAccount(acct)
	savePools(pools)
	checkConservation(pools)
	emitBurned(caller, tokensIn, refund)
	return refund, nil
}
