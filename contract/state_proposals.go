package contract

import "bonfire_dao/sdk"

// saveProposal writes the proposal blob; tallies ride along with the record.
func saveProposal(prpsl *Proposal) {
	sdk.StateSetObject(proposalKey(prpsl.ID), toJSON(*prpsl))
}

// loadProposal returns (nil, false) for ids never assigned.
func loadProposal(id uint64) (*Proposal, bool) {
	ptr := sdk.StateGetObject(proposalKey(id))
	if ptr == nil || *ptr == "" {
		return nil, false
	}
	var prpsl Proposal
	if err := fromJSON(*ptr, &prpsl); err != nil {
		sdk.Abort("failed to decode proposal")
	}
	return &prpsl, true
}

// saveVoteReceipt stores the immutable per-voter record.
func saveVoteReceipt(id uint64, receipt *VoteReceipt) {
	sdk.StateSetObject(voteReceiptKey(id, receipt.Voter), toJSON(*receipt))
}

// hasVoted only checks existence; receipts are never rewritten.
func hasVoted(id uint64, voter sdk.Address) bool {
	ptr := sdk.StateGetObject(voteReceiptKey(id, voter))
	return ptr != nil && *ptr != ""
}
