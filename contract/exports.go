package contract

import (
	"github.com/CosmWasm/tinyjson"
	"github.com/CosmWasm/tinyjson/jwriter"

	"bonfire_dao/sdk"
)

// -----------------------------------------------------------------------------
// Governance facade: wasm export surface
// -----------------------------------------------------------------------------
//
// One wrapper per external operation. Wrappers decode the payload, resolve
// the caller from the env (never from the payload), run the typed operation
// and translate errors to host reverts. The host commits all state writes of
// a call or none, so a revert here guarantees zero observable change.

// strptr is a tiny convenience for wasm return values.
func strptr(s string) *string { return &s }

// decodePayload reverts with invalid_argument when the payload is missing or
// not valid JSON for the expected shape.
func decodePayload(payload *string, v tinyjson.Unmarshaler) {
	if payload == nil || *payload == "" {
		sdk.Revert("payload required", ErrInvalidArgument.Symbol())
	}
	if err := fromJSON(*payload, v); err != nil {
		sdk.Revert("invalid payload: "+err.Error(), ErrInvalidArgument.Symbol())
	}
}

// failOn converts a typed contract error into a host revert.
func failOn(err error) {
	if err == nil {
		return
	}
	if ce, ok := err.(*ContractError); ok {
		sdk.Revert(ce.Error(), ce.Symbol())
	}
	sdk.Revert(err.Error(), "internal_error")
}

func respondOK() *string {
	return strptr(`{"ok":true}`)
}

func respondJSON(v tinyjson.Marshaler) *string {
	return strptr(toJSON(v))
}

// ContractInit bootstraps the global DAO with the caller as owner, first
// admin and first pre-activated member. Callable at most once.
// Payload (optional): {"funding_fee_pct":5,"voting_period_secs":604800}
//
//go:wasmexport contract_init
func ContractInit(payload *string) *string {
	args := DeployGlobalArgs{}
	if payload != nil && *payload != "" {
		if err := fromJSON(*payload, &args); err != nil {
			sdk.Revert("invalid payload: "+err.Error(), ErrInvalidArgument.Symbol())
		}
	}
	failOn(deployGlobal(getSenderAddress(), &args, nowUnix()))
	return respondOK()
}

// DeployLocal claims a unique name for a local DAO owned by the caller.
// Payload: {"name":"my-bonfire"}
//
//go:wasmexport deploy_local
func DeployLocal(payload *string) *string {
	var args DeployLocalArgs
	decodePayload(payload, &args)
	failOn(deployLocal(getSenderAddress(), args.Name))
	return respondOK()
}

// DropCredentials renounces ownership, leaving the caller a plain admin.
//
//go:wasmexport drop_credentials
func DropCredentials(_ *string) *string {
	failOn(dropCredentials(getSenderAddress()))
	return respondOK()
}

// AddAdministrator grows the admin set. Admin only.
// Payload: {"target":"hive:bob"}
//
//go:wasmexport admin_add
func AddAdministrator(payload *string) *string {
	var args TargetArgs
	decodePayload(payload, &args)
	failOn(addAdministrator(getSenderAddress(), args.Target))
	return respondOK()
}

// RemoveAdministrator shrinks the admin set, never below one. Admin only.
// Payload: {"target":"hive:bob"}
//
//go:wasmexport admin_remove
func RemoveAdministrator(payload *string) *string {
	var args TargetArgs
	decodePayload(payload, &args)
	failOn(removeAdministrator(getSenderAddress(), args.Target))
	return respondOK()
}

// RegisterUser creates the caller's account. Voting still needs sponsors.
//
//go:wasmexport user_register
func RegisterUser(_ *string) *string {
	failOn(registerUser(getSenderAddress(), nowUnix()))
	return respondOK()
}

// SponsorUser locks the caller's tokens in favor of the target.
// Payload: {"target":"hive:bob","amount":50}
//
//go:wasmexport user_sponsor
func SponsorUser(payload *string) *string {
	var args SponsorArgs
	decodePayload(payload, &args)
	failOn(sponsorUser(getSenderAddress(), args.Target, args.Amount))
	return respondOK()
}

// WithdrawSponsorship releases part or all of an existing lock.
// Payload: {"target":"hive:bob","amount":50}
//
//go:wasmexport user_withdraw
func WithdrawSponsorship(payload *string) *string {
	var args SponsorArgs
	decodePayload(payload, &args)
	failOn(withdrawSponsorship(getSenderAddress(), args.Target, args.Amount))
	return respondOK()
}

// TransferTokens moves spendable balance to another registered account.
// Payload: {"to":"hive:bob","amount":50}
//
//go:wasmexport user_transfer
func TransferTokens(payload *string) *string {
	var args TransferArgs
	decodePayload(payload, &args)
	failOn(transferTokens(getSenderAddress(), args.To, args.Amount))
	return respondOK()
}

// CreateProposal opens a proposal or complaint for voting and returns the
// stored record including its assigned id.
// Payload: {"text":"...","is_complaint":false,"against":"","payout_to":"","payout_amount":0}
//
//go:wasmexport proposal_create
func CreateProposal(payload *string) *string {
	var args CreateProposalArgs
	decodePayload(payload, &args)
	prpsl, err := createProposal(getSenderAddress(), &args, nowUnix())
	failOn(err)
	return respondJSON(*prpsl)
}

// VoteProposal casts the caller's immutable vote.
// Payload: {"proposal_id":3,"approve":true}
//
//go:wasmexport proposal_vote
func VoteProposal(payload *string) *string {
	var args VoteArgs
	decodePayload(payload, &args)
	failOn(voteProposal(getSenderAddress(), args.ProposalID, args.Approve, nowUnix()))
	return respondOK()
}

// CloseProposal tallies and archives once the time or majority gate is met.
// Payload: {"proposal_id":3}
//
//go:wasmexport proposal_close
func CloseProposal(payload *string) *string {
	var args ProposalIDArgs
	decodePayload(payload, &args)
	failOn(closeProposal(args.ProposalID, nowUnix()))
	return respondOK()
}

// MintTokens exchanges balance for curve tokens.
// Payload: {"amount":100}
//
//go:wasmexport token_mint
func MintTokens(payload *string) *string {
	var args AmountArgs
	decodePayload(payload, &args)
	out, err := mintTokens(getSenderAddress(), args.Amount)
	failOn(err)
	w := jwriter.Writer{}
	w.RawString(`{"ok":true,"tokens_out":`)
	w.Uint64(out)
	w.RawByte('}')
	data, _ := w.BuildBytes()
	return strptr(string(data))
}

// BurnTokens redeems curve tokens against the reserve.
// Payload: {"amount":100}
//
//go:wasmexport token_burn
func BurnTokens(payload *string) *string {
	var args AmountArgs
	decodePayload(payload, &args)
	out, err := burnTokens(getSenderAddress(), args.Amount)
	failOn(err)
	w := jwriter.Writer{}
	w.RawString(`{"ok":true,"amount_out":`)
	w.Uint64(out)
	w.RawByte('}')
	data, _ := w.BuildBytes()
	return strptr(string(data))
}

// GetActive reports derived voting eligibility. Read-only.
// Payload: {"target":"hive:bob"}
//
//go:wasmexport get_active
func GetActive(payload *string) *string {
	var args TargetArgs
	decodePayload(payload, &args)
	w := jwriter.Writer{}
	w.RawString(`{"active":`)
	w.Bool(isActiveAddress(args.Target))
	w.RawByte('}')
	data, _ := w.BuildBytes()
	return strptr(string(data))
}

// GetProposal returns the stored proposal record. Read-only.
// Payload: {"proposal_id":3}
//
//go:wasmexport get_proposal
func GetProposal(payload *string) *string {
	var args ProposalIDArgs
	decodePayload(payload, &args)
	prpsl, ok := loadProposal(args.ProposalID)
	if !ok {
		failOn(ErrUnknownProposal.withDetail("id %d", args.ProposalID))
	}
	return respondJSON(*prpsl)
}

// GetBalance returns balance and lock bookkeeping for an account. Read-only.
// Payload: {"target":"hive:bob"}
//
//go:wasmexport get_balance
func GetBalance(payload *string) *string {
	var args TargetArgs
	decodePayload(payload, &args)
	acct, err := requireAccount(args.Target)
	failOn(err)
	w := jwriter.Writer{}
	w.RawString(`{"tokens":`)
	w.Uint64(acct.Tokens)
	w.RawString(`,"spendable":`)
	w.Uint64(acct.spendable())
	w.RawString(`,"locked_out":`)
	w.Uint64(acct.LockedOut)
	w.RawString(`,"sponsor_count":`)
	w.Uint64(uint64(acct.sponsorCount()))
	w.RawByte('}')
	data, _ := w.BuildBytes()
	return strptr(string(data))
}

// GetPools returns the curve position and pool aggregates. Read-only.
//
//go:wasmexport get_pools
func GetPools(_ *string) *string {
	return respondJSON(*loadPools())
}
