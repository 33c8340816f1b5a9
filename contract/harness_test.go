package contract

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"

	"bonfire_dao/sdk"
)

// Shared fixtures. Every test starts from a reset mock host; the typed
// operations take caller and clock explicitly so most tests never touch the
// env at all. Export tests steer the mock env instead.

const (
	founder = sdk.Address("hive:founder")
	alice   = sdk.Address("hive:alice")
	bob     = sdk.Address("hive:bob")
	carol   = sdk.Address("hive:carol")

	t0       = int64(1_750_000_000)
	oneWeek  = int64(604_800)
	afterEnd = t0 + oneWeek + 1
)

// freshChain resets the host and bootstraps the DAO.
func freshChain(t *testing.T, feePct uint64) {
	t.Helper()
	sdk.Mock().Reset()
	err := deployGlobal(founder, &DeployGlobalArgs{FundingFeePct: feePct, VotingPeriodSecs: oneWeek}, t0)
	require.NoError(t, err)
}

func register(t *testing.T, addr sdk.Address) {
	t.Helper()
	require.NoError(t, registerUser(addr, t0))
}

// fund moves genesis tokens from the founder.
func fund(t *testing.T, addr sdk.Address, amount uint64) {
	t.Helper()
	require.NoError(t, transferTokens(founder, addr, amount))
}

func sponsor(t *testing.T, from, to sdk.Address, amount uint64) {
	t.Helper()
	require.NoError(t, sponsorUser(from, to, amount))
}

// setupTrio registers alice and bob with pocket money and activates bob via
// founder and alice sponsorships. Leaves two active members (founder, bob).
func setupTrio(t *testing.T) {
	t.Helper()
	register(t, alice)
	register(t, bob)
	fund(t, alice, 1_000)
	fund(t, bob, 1_000)
	sponsor(t, founder, bob, 10)
	sponsor(t, alice, bob, 10)
}

func getAccount(t *testing.T, addr sdk.Address) *Account {
	t.Helper()
	acct, err := requireAccount(addr)
	require.NoError(t, err)
	return acct
}

// requireConserved re-checks the pool identity from stored state.
func requireConserved(t *testing.T) {
	t.Helper()
	pools := loadPools()
	left := pools.Funding + pools.Reserve + pools.Circulating + pools.Locked
	require.Equal(t, pools.Genesis+pools.TokensMinted, left)
}

var exportTxSeq int

// callExport drives an export wrapper through the mock env and captures a
// host revert, if any. The tx id is bumped so the env cache refreshes.
func callExport(sender sdk.Address, at string, fn func(*string) *string, payload string) (res string, herr *sdk.HostError) {
	host := sdk.Mock()
	host.Sender = sender
	if at != "" {
		host.Timestamp = at
	}
	exportTxSeq++
	host.TxId = "test-tx-" + strconv.Itoa(exportTxSeq)

	defer func() {
		if r := recover(); r != nil {
			he, ok := r.(sdk.HostError)
			if !ok {
				panic(r)
			}
			herr = &he
		}
	}()

	var p *string
	if payload != "" {
		p = &payload
	}
	out := fn(p)
	if out != nil {
		res = *out
	}
	return
}

// requireRevert asserts the export reverted with the sentinel's symbol.
func requireRevert(t *testing.T, want *ContractError, herr *sdk.HostError) {
	t.Helper()
	require.NotNil(t, herr, "expected revert %s but call succeeded", want.Symbol())
	require.False(t, herr.Aborted, "expected revert, got abort: %s", herr.Message)
	require.Equal(t, want.Symbol(), herr.Symbol)
}
