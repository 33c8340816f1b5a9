package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivationNeedsTwoDistinctSponsors(t *testing.T) {
	freshChain(t, 0)
	register(t, alice)
	register(t, bob)
	fund(t, alice, 100)

	assert.False(t, isActiveAddress(bob))

	sponsor(t, founder, bob, 10)
	assert.False(t, isActiveAddress(bob), "one sponsor is not enough")

	// topping up the same edge does not add a sponsor
	sponsor(t, founder, bob, 15)
	assert.False(t, isActiveAddress(bob))
	assert.Equal(t, uint64(25), getAccount(t, bob).Sponsors[founder.String()])

	sponsor(t, alice, bob, 10)
	assert.True(t, isActiveAddress(bob))
	requireConserved(t)
}

func TestSelfSponsorshipRejected(t *testing.T) {
	freshChain(t, 0)
	require.ErrorIs(t, sponsorUser(founder, founder, 10), ErrSelfSponsorship)
}

func TestSponsorRequiresBothRegistered(t *testing.T) {
	freshChain(t, 0)
	register(t, alice)
	require.ErrorIs(t, sponsorUser(founder, bob, 10), ErrNotRegistered)
	require.ErrorIs(t, sponsorUser(carol, alice, 10), ErrNotRegistered)
}

func TestSponsoredTokensAreNotSpendable(t *testing.T) {
	freshChain(t, 0)
	register(t, alice)
	register(t, bob)
	fund(t, alice, 100)

	sponsor(t, alice, bob, 60)
	a := getAccount(t, alice)
	assert.Equal(t, uint64(100), a.Tokens)
	assert.Equal(t, uint64(40), a.spendable())

	// locked tokens cannot be transferred away
	require.ErrorIs(t, transferTokens(alice, founder, 41), ErrInsufficientFunds)
	// nor locked a second time
	require.ErrorIs(t, sponsorUser(alice, founder, 41), ErrInsufficientFunds)

	// the sponsored side cannot spend them either, they are not its balance
	assert.Equal(t, uint64(0), getAccount(t, bob).spendable())
}

func TestWithdrawalDeactivatesBelowThreshold(t *testing.T) {
	freshChain(t, 0)
	setupTrio(t)
	require.True(t, isActiveAddress(bob))

	// partial withdrawal keeps the edge alive
	require.NoError(t, withdrawSponsorship(founder, bob, 4))
	assert.True(t, isActiveAddress(bob))
	assert.Equal(t, uint64(6), getAccount(t, bob).Sponsors[founder.String()])

	// full withdrawal drops the edge and deactivates immediately
	require.NoError(t, withdrawSponsorship(founder, bob, 6))
	assert.False(t, isActiveAddress(bob))
	assert.Equal(t, uint64(0), getAccount(t, founder).LockedOut)
	requireConserved(t)
}

func TestWithdrawErrors(t *testing.T) {
	freshChain(t, 0)
	setupTrio(t)

	require.ErrorIs(t, withdrawSponsorship(bob, founder, 1), ErrNoSuchEdge)
	require.ErrorIs(t, withdrawSponsorship(founder, bob, 11), ErrInsufficientLocked)
	require.ErrorIs(t, withdrawSponsorship(carol, bob, 1), ErrNotRegistered)
}

func TestStripSponsorshipsReturnsEveryLock(t *testing.T) {
	freshChain(t, 0)
	setupTrio(t)

	aliceBefore := getAccount(t, alice).spendable()
	founderBefore := getAccount(t, founder).spendable()

	pools := loadPools()
	target := getAccount(t, bob)
	stripSponsorships(target, pools)
	savePools(pools)

	assert.False(t, isActiveAddress(bob))
	assert.Empty(t, getAccount(t, bob).Sponsors)
	assert.Equal(t, aliceBefore+10, getAccount(t, alice).spendable())
	assert.Equal(t, founderBefore+10, getAccount(t, founder).spendable())
	assert.Equal(t, uint64(0), loadPools().Locked)
	requireConserved(t)
}
