package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bonfire_dao/sdk"
)

func TestPriceTiers(t *testing.T) {
	assert.Equal(t, uint64(1), price(0))
	assert.Equal(t, uint64(1), price(PriceStep-1))
	assert.Equal(t, uint64(2), price(PriceStep))
	assert.Equal(t, uint64(3), price(2*PriceStep))
}

func TestCurveMintFirstTier(t *testing.T) {
	out, spent := curveMint(0, 100)
	assert.Equal(t, uint64(100), out)
	assert.Equal(t, uint64(100), spent)
}

func TestCurveMintAcrossTierBoundary(t *testing.T) {
	// one token left at price 1, rest at price 2
	out, spent := curveMint(PriceStep-1, 5)
	assert.Equal(t, uint64(3), out)
	assert.Equal(t, uint64(5), spent)
}

func TestCurveMintKeepsUnspendableRemainder(t *testing.T) {
	// at price 2 an odd budget leaves one unit unspent
	out, spent := curveMint(PriceStep, 7)
	assert.Equal(t, uint64(3), out)
	assert.Equal(t, uint64(6), spent)
}

func TestCurveRefundInvertsMint(t *testing.T) {
	for _, budget := range []uint64{1, 99, 100, 12345} {
		out, spent := curveMint(PriceStep-50, budget)
		refund := curveRefund(PriceStep-50+out, out)
		assert.Equal(t, spent, refund, "budget %d", budget)
	}
}

func TestMintAndBurnRoundTrip(t *testing.T) {
	freshChain(t, 0)

	out, err := mintTokens(founder, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), out)

	pools := loadPools()
	assert.Equal(t, uint64(100), pools.TokensMinted)
	assert.Equal(t, uint64(100), pools.Reserve)
	assert.Equal(t, uint64(0), pools.Funding)
	requireConserved(t)

	back, err := burnTokens(founder, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), back)

	pools = loadPools()
	assert.Equal(t, uint64(0), pools.TokensMinted)
	assert.Equal(t, uint64(0), pools.Reserve)
	assert.Equal(t, uint64(GenesisGrant), getAccount(t, founder).Tokens, "zero-fee round trip is lossless")
	requireConserved(t)
}

func TestMintChargesFeeOnTop(t *testing.T) {
	freshChain(t, 25)

	out, err := mintTokens(founder, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(80), out, "budget shrinks so fee fits inside amount_in")

	pools := loadPools()
	assert.Equal(t, uint64(80), pools.Reserve)
	assert.Equal(t, uint64(20), pools.Funding)
	assert.Equal(t, uint64(GenesisGrant-100+80), getAccount(t, founder).Tokens)
	requireConserved(t)

	// the reserve fully backs the refund even though a fee was taken
	back, err := burnTokens(founder, 80)
	require.NoError(t, err)
	assert.Equal(t, uint64(80), back)
	requireConserved(t)
}

func TestMintValidation(t *testing.T) {
	freshChain(t, 0)
	register(t, alice)

	_, err := mintTokens(carol, 10)
	require.ErrorIs(t, err, ErrNotRegistered)

	_, err = mintTokens(alice, 10)
	require.ErrorIs(t, err, ErrInsufficientFunds, "minting spends existing balance")

	// a budget below the current price mints nothing and moves nothing
	out, err := mintTokens(founder, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), out)
	assert.Equal(t, uint64(0), loadPools().TokensMinted)
}

func TestBurnValidation(t *testing.T) {
	freshChain(t, 0)
	_, err := mintTokens(founder, 100)
	require.NoError(t, err)

	_, err = burnTokens(founder, 101)
	require.ErrorIs(t, err, ErrInsufficientReserve, "cannot redeem beyond curve supply")

	out, err := burnTokens(founder, 0)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), out)
}

func TestBurnRequiresOwnBalance(t *testing.T) {
	freshChain(t, 0)
	register(t, alice)
	_, err := mintTokens(founder, 100)
	require.NoError(t, err)

	// curve supply exists but alice holds nothing
	_, err = burnTokens(alice, 50)
	require.ErrorIs(t, err, ErrInsufficientFunds)
}

func TestMintRequiresInit(t *testing.T) {
	sdk.Mock().Reset()
	_, err := mintTokens(founder, 10)
	require.ErrorIs(t, err, ErrNotInitialized)
	_, err = burnTokens(founder, 10)
	require.ErrorIs(t, err, ErrNotInitialized)
}

func TestConservationAcrossMixedSequence(t *testing.T) {
	freshChain(t, 10)
	setupTrio(t)

	_, err := mintTokens(founder, 5_000)
	require.NoError(t, err)
	requireConserved(t)

	require.NoError(t, transferTokens(founder, alice, 2_000))
	sponsor(t, alice, founder, 300)
	requireConserved(t)

	_, err = burnTokens(alice, 500)
	require.NoError(t, err)
	requireConserved(t)

	require.NoError(t, withdrawSponsorship(alice, founder, 300))
	requireConserved(t)
}
