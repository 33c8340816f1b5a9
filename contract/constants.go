package contract

// -----------------------------------------------------------------------------
// Trust policy
// -----------------------------------------------------------------------------

// SponsorThreshold is the number of distinct live sponsors an account needs
// to be an active voting member. Fixed policy.
const SponsorThreshold = 2

// -----------------------------------------------------------------------------
// Bonding curve
// -----------------------------------------------------------------------------

const (
	// PriceFloor is the curve price at zero supply.
	PriceFloor = 1
	// PriceStep is how many minted tokens it takes for the price to rise by one.
	PriceStep = 1_000_000
)

// -----------------------------------------------------------------------------
// Bootstrap
// -----------------------------------------------------------------------------

// GenesisGrant is credited to the owner on deploy so tokens exist to sponsor
// and mint with before any curve activity. Counted in TokenPools.Genesis.
const GenesisGrant = 1_000_000

// -----------------------------------------------------------------------------
// Validation limits and fallbacks
// -----------------------------------------------------------------------------

const (
	// MaxProposalTextLength bounds the proposal content blob.
	MaxProposalTextLength = 4000
	// MaxLocalNameLength bounds local dao names.
	MaxLocalNameLength = 120

	// FallbackVotingPeriodSecs is used when deploy passes no voting period.
	FallbackVotingPeriodSecs = 60 * 60 * 24 * 7
	// MaxFundingFeePct caps the mint fee so the curve stays usable.
	MaxFundingFeePct = 50
)
