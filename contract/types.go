package contract

import "bonfire_dao/sdk"

// Account is the per-user ledger entry. Sponsors maps sponsor address to the
// amount that sponsor has locked in favor of this account; LockedOut is the
// sum this account has locked toward others. Spendable balance is always
// Tokens minus LockedOut, never stored.
type Account struct {
	Address      sdk.Address
	Tokens       uint64
	LockedOut    uint64
	Sponsors     map[string]uint64
	Founder      bool
	RegisteredAt int64
}

// Proposal is a binary accept/reject record. Complaints carry the targeted
// account in Against; an optional funding payout is applied when the
// proposal passes. Vote receipts live under separate keys, only the tallies
// sit on the blob.
type Proposal struct {
	ID           uint64
	Author       sdk.Address
	Text         string
	IsComplaint  bool
	Against      sdk.Address
	PayoutTo     sdk.Address
	PayoutAmount uint64
	CreatedOn    int64
	ClosesOn     int64
	YesCount     uint64
	NoCount      uint64
	Closed       bool
	Passed       bool
}

// VoteReceipt is the immutable record of a single cast vote.
type VoteReceipt struct {
	Voter   sdk.Address
	Approve bool
	VotedAt int64
}

// TokenPools carries the curve position, both pools and the circulating and
// locked aggregates that make conservation checkable in constant time.
// Invariant after every call: Funding + Reserve + Circulating + Locked ==
// Genesis + TokensMinted.
type TokenPools struct {
	TokensMinted uint64
	Funding      uint64
	Reserve      uint64
	Circulating  uint64
	Locked       uint64
	Genesis      uint64
}

// ContractConfig is the global DAO record: owner (nil once renounced),
// admin set, and governance parameters fixed at deploy time.
type ContractConfig struct {
	Owner            *sdk.Address
	Admins           []string
	FundingFeePct    uint64
	VotingPeriodSecs int64
}

// LocalInstance records a named local DAO deployment.
type LocalInstance struct {
	Name  string
	Owner sdk.Address
}

// -----------------------------------------------------------------------------
// Call payloads
// -----------------------------------------------------------------------------

type DeployGlobalArgs struct {
	FundingFeePct    uint64
	VotingPeriodSecs int64
}

type DeployLocalArgs struct {
	Name string
}

type TargetArgs struct {
	Target sdk.Address
}

type SponsorArgs struct {
	Target sdk.Address
	Amount uint64
}

type TransferArgs struct {
	To     sdk.Address
	Amount uint64
}

type CreateProposalArgs struct {
	Text         string
	IsComplaint  bool
	Against      sdk.Address
	PayoutTo     sdk.Address
	PayoutAmount uint64
}

type VoteArgs struct {
	ProposalID uint64
	Approve    bool
}

type ProposalIDArgs struct {
	ProposalID uint64
}

type AmountArgs struct {
	Amount uint64
}
