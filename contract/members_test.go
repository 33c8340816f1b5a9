package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bonfire_dao/sdk"
)

func TestDeployGlobalBootstrapsOnce(t *testing.T) {
	freshChain(t, 0)

	cfg := loadContractConfig()
	require.NotNil(t, cfg)
	require.NotNil(t, cfg.Owner)
	assert.Equal(t, founder, *cfg.Owner)
	assert.Equal(t, []string{founder.String()}, cfg.Admins)
	assert.Equal(t, oneWeek, cfg.VotingPeriodSecs)

	acct := getAccount(t, founder)
	assert.True(t, acct.Founder)
	assert.Equal(t, uint64(GenesisGrant), acct.Tokens)
	assert.True(t, isActiveAccount(acct), "bootstrap member votes without sponsors")

	pools := loadPools()
	assert.Equal(t, uint64(GenesisGrant), pools.Genesis)
	assert.Equal(t, uint64(GenesisGrant), pools.Circulating)
	requireConserved(t)

	err := deployGlobal(alice, &DeployGlobalArgs{}, t0)
	require.ErrorIs(t, err, ErrAlreadyInitialized)
}

func TestDeployGlobalRejectsExcessiveFee(t *testing.T) {
	sdk.Mock().Reset()
	err := deployGlobal(founder, &DeployGlobalArgs{FundingFeePct: MaxFundingFeePct + 1}, t0)
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.False(t, isContractInitialized())
}

func TestDeployGlobalFallbackVotingPeriod(t *testing.T) {
	sdk.Mock().Reset()
	require.NoError(t, deployGlobal(founder, &DeployGlobalArgs{}, t0))
	assert.Equal(t, int64(FallbackVotingPeriodSecs), loadContractConfig().VotingPeriodSecs)
}

func TestRegisterUser(t *testing.T) {
	freshChain(t, 0)

	require.NoError(t, registerUser(alice, t0+5))
	acct := getAccount(t, alice)
	assert.Equal(t, uint64(0), acct.Tokens)
	assert.False(t, acct.Founder)
	assert.Equal(t, t0+5, acct.RegisteredAt)
	assert.False(t, isActiveAccount(acct), "registration alone grants nothing")

	require.ErrorIs(t, registerUser(alice, t0+6), ErrAlreadyRegistered)
}

func TestRegisterRequiresInit(t *testing.T) {
	sdk.Mock().Reset()
	require.ErrorIs(t, registerUser(alice, t0), ErrNotInitialized)
}

func TestDeployLocalClaimsUniqueNames(t *testing.T) {
	sdk.Mock().Reset()

	// local deployments do not need the global bootstrap
	require.NoError(t, deployLocal(alice, "campfire"))
	inst := loadLocalInstance("campfire")
	require.NotNil(t, inst)
	assert.Equal(t, alice, inst.Owner)

	require.ErrorIs(t, deployLocal(bob, "campfire"), ErrNameTaken)
	require.ErrorIs(t, deployLocal(bob, ""), ErrInvalidArgument)
	require.NoError(t, deployLocal(bob, "campfire-2"))
}

func TestDropCredentials(t *testing.T) {
	freshChain(t, 0)
	register(t, alice)

	require.ErrorIs(t, dropCredentials(alice), ErrNotOwner)
	require.NoError(t, dropCredentials(founder))

	cfg := loadContractConfig()
	assert.Nil(t, cfg.Owner)
	assert.True(t, cfg.isAdmin(founder), "ex-owner stays a plain admin")

	// no owner left to renounce
	require.ErrorIs(t, dropCredentials(founder), ErrNotOwner)
}

func TestAdminAddRemove(t *testing.T) {
	freshChain(t, 0)
	register(t, alice)
	register(t, bob)

	require.ErrorIs(t, addAdministrator(alice, bob), ErrNotAdmin)
	require.ErrorIs(t, addAdministrator(founder, carol), ErrNotRegistered)

	require.NoError(t, addAdministrator(founder, alice))
	require.ErrorIs(t, addAdministrator(founder, alice), ErrAlreadyAdmin)
	assert.True(t, loadContractConfig().isAdmin(alice))

	// admins can remove each other, but never the last one
	require.NoError(t, removeAdministrator(alice, founder))
	require.ErrorIs(t, removeAdministrator(alice, alice), ErrCannotRemoveLastAdmin)
	cfg := loadContractConfig()
	assert.Equal(t, []string{alice.String()}, cfg.Admins)
}

func TestRemoveAdminRejectsNonAdminTarget(t *testing.T) {
	freshChain(t, 0)
	register(t, alice)
	require.ErrorIs(t, removeAdministrator(founder, alice), ErrNotAdmin)
}

func TestTransferTokens(t *testing.T) {
	freshChain(t, 0)
	register(t, alice)

	require.ErrorIs(t, transferTokens(founder, founder, 10), ErrInvalidArgument)
	require.ErrorIs(t, transferTokens(founder, bob, 10), ErrNotRegistered)
	require.ErrorIs(t, transferTokens(alice, founder, 1), ErrInsufficientFunds)

	require.NoError(t, transferTokens(founder, alice, 250))
	assert.Equal(t, uint64(250), getAccount(t, alice).Tokens)
	assert.Equal(t, uint64(GenesisGrant-250), getAccount(t, founder).Tokens)
	requireConserved(t)
}

func TestCountActiveMembers(t *testing.T) {
	freshChain(t, 0)
	assert.Equal(t, uint64(1), countActiveMembers())

	setupTrio(t)
	assert.Equal(t, uint64(2), countActiveMembers(), "founder and bob")

	sponsor(t, founder, alice, 10)
	sponsor(t, bob, alice, 10)
	assert.Equal(t, uint64(3), countActiveMembers())
}
