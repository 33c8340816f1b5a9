package contract

import "bonfire_dao/sdk"

// -----------------------------------------------------------------------------
// Proposal engine
// -----------------------------------------------------------------------------
//
// Lifecycle per proposal: open for voting until closes_on or an early-closure
// majority, closed exactly once, then archived. A proposal sits in exactly
// one of the active or archived indexes at any time.

// createProposal assigns the next id and opens the voting window. Complaints
// must target a registered account other than the author and cannot carry a
// payout; payouts must point at a registered receiver so passed funds cannot
// strand.
func createProposal(author sdk.Address, args *CreateProposalArgs, now int64) (*Proposal, error) {
	if !isContractInitialized() {
		return nil, ErrNotInitialized
	}
	acct, err := requireAccount(author)
	if err != nil {
		return nil, err
	}
	if !isActiveAccount(acct) {
		return nil, ErrNotActive.withDetail("%s", author)
	}
	if args.Text == "" || len(args.Text) > MaxProposalTextLength {
		return nil, ErrInvalidArgument.withDetail("proposal text must be 1..%d bytes", MaxProposalTextLength)
	}
	if args.IsComplaint {
		if args.Against == "" || args.Against == author {
			return nil, ErrInvalidTarget
		}
		if _, ok := loadAccount(args.Against); !ok {
			return nil, ErrInvalidTarget.withDetail("%s is not registered", args.Against)
		}
		if args.PayoutTo != "" || args.PayoutAmount > 0 {
			return nil, ErrInvalidArgument.withDetail("complaints cannot carry a payout")
		}
	} else if args.Against != "" {
		return nil, ErrInvalidArgument.withDetail("against is only valid on complaints")
	}
	if args.PayoutAmount > 0 {
		if _, ok := loadAccount(args.PayoutTo); !ok {
			return nil, ErrNotRegistered.withDetail("payout receiver %s", args.PayoutTo)
		}
	}

	cfg := loadContractConfig()
	prpsl := &Proposal{
		ID:           nextProposalID(),
		Author:       author,
		Text:         args.Text,
		IsComplaint:  args.IsComplaint,
		Against:      args.Against,
		PayoutTo:     args.PayoutTo,
		PayoutAmount: args.PayoutAmount,
		CreatedOn:    now,
		ClosesOn:     now + cfg.VotingPeriodSecs,
	}
	saveProposal(prpsl)
	addToIndex(idxProposalsActive, UInt64ToString(prpsl.ID))
	emitProposalCreated(prpsl.ID, author, args.IsComplaint)
	return prpsl, nil
}

// voteProposal records one immutable vote. One account, one vote, no changes
// once cast; a voter deactivated later stays counted.
func voteProposal(voter sdk.Address, id uint64, approve bool, now int64) error {
	if !isContractInitialized() {
		return ErrNotInitialized
	}
	acct, err := requireAccount(voter)
	if err != nil {
		return err
	}
	if !isActiveAccount(acct) {
		return ErrNotActive.withDetail("%s", voter)
	}
	prpsl, ok := loadProposal(id)
	if !ok {
		return ErrUnknownProposal.withDetail("id %d", id)
	}
	if prpsl.Closed || now >= prpsl.ClosesOn {
		return ErrProposalClosed.withDetail("id %d", id)
	}
	if hasVoted(id, voter) {
		return ErrAlreadyVoted.withDetail("%s on %d", voter, id)
	}

	saveVoteReceipt(id, &VoteReceipt{Voter: voter, Approve: approve, VotedAt: now})
	if approve {
		prpsl.YesCount++
	} else {
		prpsl.NoCount++
	}
	saveProposal(prpsl)
	emitVoteCast(id, voter, approve)
	return nil
}

// closeProposal tallies and archives. Anyone may call; the gate is the
// deadline or a majority of currently active members having voted. Effects
// are validated before anything mutates, so a failing payout leaves the
// proposal open and retryable.
func closeProposal(id uint64, now int64) error {
	if !isContractInitialized() {
		return ErrNotInitialized
	}
	prpsl, ok := loadProposal(id)
	if !ok {
		return ErrUnknownProposal.withDetail("id %d", id)
	}
	if prpsl.Closed {
		return ErrProposalClosed.withDetail("id %d", id)
	}
	if now < prpsl.ClosesOn {
		votes := prpsl.YesCount + prpsl.NoCount
		if votes*2 <= countActiveMembers() {
			return ErrTooEarly.withDetail("closes at %d", prpsl.ClosesOn)
		}
	}

	passed := prpsl.YesCount > prpsl.NoCount
	pools := loadPools()

	// validate effects up front: archive and effects are all-or-nothing
	if passed && prpsl.PayoutAmount > 0 && pools.Funding < prpsl.PayoutAmount {
		return ErrInsufficientFunds.withDetail("funding pool has %d, payout needs %d", pools.Funding, prpsl.PayoutAmount)
	}

	if passed && prpsl.PayoutAmount > 0 {
		receiver, err := requireAccount(prpsl.PayoutTo)
		if err != nil {
			return err
		}
		pools.Funding -= prpsl.PayoutAmount
		creditTokens(receiver, pools, prpsl.PayoutAmount)
		saveAccount(receiver)
		emitPayout(prpsl.ID, prpsl.PayoutTo, prpsl.PayoutAmount)
	}
	if passed && prpsl.IsComplaint {
		target, err := requireAccount(prpsl.Against)
		if err != nil {
			return err
		}
		stripSponsorships(target, pools)
		emitComplaintUpheld(prpsl.ID, prpsl.Against)
	}

	prpsl.Closed = true
	prpsl.Passed = passed
	saveProposal(prpsl)
	removeFromIndex(idxProposalsActive, UInt64ToString(id))
	addToIndex(idxProposalsClosed, UInt64ToString(id))
	savePools(pools)
	checkConservation(pools)
	emitProposalClosed(id, passed)
	return nil
}
