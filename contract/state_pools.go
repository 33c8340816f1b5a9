package contract

import "bonfire_dao/sdk"

// loadPools returns zeroed pools before deploy; deploy writes the first blob.
func loadPools() *TokenPools {
	ptr := sdk.StateGetObject(TokenPoolsKey)
	if ptr == nil || *ptr == "" {
		return &TokenPools{}
	}
	var pools TokenPools
	if err := fromJSON(*ptr, &pools); err != nil {
		sdk.Abort("failed to decode token pools")
	}
	return &pools
}

func savePools(pools *TokenPools) {
	sdk.StateSetObject(TokenPoolsKey, toJSON(*pools))
}

// checkConservation verifies the closed-system identity. A mismatch is a
// defect in curve or ledger arithmetic, not bad input, so it aborts the call
// outright instead of reverting.
func checkConservation(pools *TokenPools) {
	left := pools.Funding + pools.Reserve + pools.Circulating + pools.Locked
	right := pools.Genesis + pools.TokensMinted
	if left != right {
		sdk.Abort("token conservation violated")
	}
}
