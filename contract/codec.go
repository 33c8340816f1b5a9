package contract

import (
	"sort"

	"github.com/CosmWasm/tinyjson"
	"github.com/CosmWasm/tinyjson/jlexer"
	"github.com/CosmWasm/tinyjson/jwriter"

	"bonfire_dao/sdk"
)

// Hand-written tinyjson codecs for everything that crosses the storage or
// payload boundary. Map keys are emitted sorted so encodings stay
// deterministic across hosts.

// toJSON serializes or aborts; storage writes have no sane partial-failure mode.
func toJSON(v tinyjson.Marshaler) string {
	data, err := tinyjson.Marshal(v)
	if err != nil {
		sdk.Abort("failed to marshal: " + err.Error())
	}
	return string(data)
}

// fromJSON returns the lexer error so payload decoding can revert gracefully.
func fromJSON(data string, v tinyjson.Unmarshaler) error {
	return tinyjson.Unmarshal([]byte(data), v)
}

// encodeStringList backs the chunked indexes.
func encodeStringList(entries []string) string {
	w := jwriter.Writer{}
	w.RawByte('[')
	for i, e := range entries {
		if i > 0 {
			w.RawByte(',')
		}
		w.String(e)
	}
	w.RawByte(']')
	data, _ := w.BuildBytes()
	return string(data)
}

// decodeStringList tolerates corrupt tails, returning whatever parsed cleanly.
func decodeStringList(data string) []string {
	in := jlexer.Lexer{Data: []byte(data)}
	out := []string{}
	in.Delim('[')
	for !in.IsDelim(']') {
		out = append(out, in.String())
		in.WantComma()
	}
	in.Delim(']')
	return out
}

// -----------------------------------------------------------------------------
// Account
// -----------------------------------------------------------------------------

func (v Account) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	out.RawString(`"address":`)
	out.String(v.Address.String())
	out.RawString(`,"tokens":`)
	out.Uint64(v.Tokens)
	out.RawString(`,"locked_out":`)
	out.Uint64(v.LockedOut)
	out.RawString(`,"sponsors":`)
	if v.Sponsors == nil {
		out.RawString("null")
	} else {
		keys := make([]string, 0, len(v.Sponsors))
		for k := range v.Sponsors {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		out.RawByte('{')
		for i, k := range keys {
			if i > 0 {
				out.RawByte(',')
			}
			out.String(k)
			out.RawByte(':')
			out.Uint64(v.Sponsors[k])
		}
		out.RawByte('}')
	}
	out.RawString(`,"founder":`)
	out.Bool(v.Founder)
	out.RawString(`,"registered_at":`)
	out.Int64(v.RegisteredAt)
	out.RawByte('}')
}

func (v *Account) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "address":
			v.Address = sdk.Address(in.String())
		case "tokens":
			v.Tokens = in.Uint64()
		case "locked_out":
			v.LockedOut = in.Uint64()
		case "sponsors":
			if in.IsNull() {
				in.Skip()
				v.Sponsors = nil
			} else {
				in.Delim('{')
				v.Sponsors = make(map[string]uint64)
				for !in.IsDelim('}') {
					k := in.String()
					in.WantColon()
					v.Sponsors[k] = in.Uint64()
					in.WantComma()
				}
				in.Delim('}')
			}
		case "founder":
			v.Founder = in.Bool()
		case "registered_at":
			v.RegisteredAt = in.Int64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

// -----------------------------------------------------------------------------
// Proposal / VoteReceipt
// -----------------------------------------------------------------------------

func (v Proposal) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	out.RawString(`"id":`)
	out.Uint64(v.ID)
	out.RawString(`,"author":`)
	out.String(v.Author.String())
	out.RawString(`,"text":`)
	out.String(v.Text)
	out.RawString(`,"is_complaint":`)
	out.Bool(v.IsComplaint)
	out.RawString(`,"against":`)
	out.String(v.Against.String())
	out.RawString(`,"payout_to":`)
	out.String(v.PayoutTo.String())
	out.RawString(`,"payout_amount":`)
	out.Uint64(v.PayoutAmount)
	out.RawString(`,"created_on":`)
	out.Int64(v.CreatedOn)
	out.RawString(`,"closes_on":`)
	out.Int64(v.ClosesOn)
	out.RawString(`,"yes":`)
	out.Uint64(v.YesCount)
	out.RawString(`,"no":`)
	out.Uint64(v.NoCount)
	out.RawString(`,"closed":`)
	out.Bool(v.Closed)
	out.RawString(`,"passed":`)
	out.Bool(v.Passed)
	out.RawByte('}')
}

func (v *Proposal) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "id":
			v.ID = in.Uint64()
		case "author":
			v.Author = sdk.Address(in.String())
		case "text":
			v.Text = in.String()
		case "is_complaint":
			v.IsComplaint = in.Bool()
		case "against":
			v.Against = sdk.Address(in.String())
		case "payout_to":
			v.PayoutTo = sdk.Address(in.String())
		case "payout_amount":
			v.PayoutAmount = in.Uint64()
		case "created_on":
			v.CreatedOn = in.Int64()
		case "closes_on":
			v.ClosesOn = in.Int64()
		case "yes":
			v.YesCount = in.Uint64()
		case "no":
			v.NoCount = in.Uint64()
		case "closed":
			v.Closed = in.Bool()
		case "passed":
			v.Passed = in.Bool()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (v VoteReceipt) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	out.RawString(`"voter":`)
	out.String(v.Voter.String())
	out.RawString(`,"approve":`)
	out.Bool(v.Approve)
	out.RawString(`,"voted_at":`)
	out.Int64(v.VotedAt)
	out.RawByte('}')
}

func (v *VoteReceipt) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "voter":
			v.Voter = sdk.Address(in.String())
		case "approve":
			v.Approve = in.Bool()
		case "voted_at":
			v.VotedAt = in.Int64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

// -----------------------------------------------------------------------------
// TokenPools
// -----------------------------------------------------------------------------

func (v TokenPools) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	out.RawString(`"minted":`)
	out.Uint64(v.TokensMinted)
	out.RawString(`,"funding":`)
	out.Uint64(v.Funding)
	out.RawString(`,"reserve":`)
	out.Uint64(v.Reserve)
	out.RawString(`,"circulating":`)
	out.Uint64(v.Circulating)
	out.RawString(`,"locked":`)
	out.Uint64(v.Locked)
	out.RawString(`,"genesis":`)
	out.Uint64(v.Genesis)
	out.RawByte('}')
}

func (v *TokenPools) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "minted":
			v.TokensMinted = in.Uint64()
		case "funding":
			v.Funding = in.Uint64()
		case "reserve":
			v.Reserve = in.Uint64()
		case "circulating":
			v.Circulating = in.Uint64()
		case "locked":
			v.Locked = in.Uint64()
		case "genesis":
			v.Genesis = in.Uint64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

// -----------------------------------------------------------------------------
// ContractConfig / LocalInstance
// -----------------------------------------------------------------------------

func (v ContractConfig) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	out.RawString(`"owner":`)
	if v.Owner == nil {
		out.RawString("null")
	} else {
		out.String(v.Owner.String())
	}
	out.RawString(`,"admins":`)
	out.RawByte('[')
	for i, a := range v.Admins {
		if i > 0 {
			out.RawByte(',')
		}
		out.String(a)
	}
	out.RawByte(']')
	out.RawString(`,"funding_fee_pct":`)
	out.Uint64(v.FundingFeePct)
	out.RawString(`,"voting_period_secs":`)
	out.Int64(v.VotingPeriodSecs)
	out.RawByte('}')
}

func (v *ContractConfig) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "owner":
			if in.IsNull() {
				in.Skip()
				v.Owner = nil
			} else {
				addr := sdk.Address(in.String())
				v.Owner = &addr
			}
		case "admins":
			if in.IsNull() {
				in.Skip()
				v.Admins = nil
			} else {
				in.Delim('[')
				v.Admins = []string{}
				for !in.IsDelim(']') {
					v.Admins = append(v.Admins, in.String())
					in.WantComma()
				}
				in.Delim(']')
			}
		case "funding_fee_pct":
			v.FundingFeePct = in.Uint64()
		case "voting_period_secs":
			v.VotingPeriodSecs = in.Int64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (v LocalInstance) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	out.RawString(`"name":`)
	out.String(v.Name)
	out.RawString(`,"owner":`)
	out.String(v.Owner.String())
	out.RawByte('}')
}

func (v *LocalInstance) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "name":
			v.Name = in.String()
		case "owner":
			v.Owner = sdk.Address(in.String())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

// -----------------------------------------------------------------------------
// Call payloads
// -----------------------------------------------------------------------------

func (v DeployGlobalArgs) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	out.RawString(`"funding_fee_pct":`)
	out.Uint64(v.FundingFeePct)
	out.RawString(`,"voting_period_secs":`)
	out.Int64(v.VotingPeriodSecs)
	out.RawByte('}')
}

func (v *DeployGlobalArgs) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "funding_fee_pct":
			v.FundingFeePct = in.Uint64()
		case "voting_period_secs":
			v.VotingPeriodSecs = in.Int64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (v DeployLocalArgs) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	out.RawString(`"name":`)
	out.String(v.Name)
	out.RawByte('}')
}

func (v *DeployLocalArgs) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "name":
			v.Name = in.String()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (v TargetArgs) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	out.RawString(`"target":`)
	out.String(v.Target.String())
	out.RawByte('}')
}

func (v *TargetArgs) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "target":
			v.Target = sdk.Address(in.String())
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (v SponsorArgs) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	out.RawString(`"target":`)
	out.String(v.Target.String())
	out.RawString(`,"amount":`)
	out.Uint64(v.Amount)
	out.RawByte('}')
}

func (v *SponsorArgs) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "target":
			v.Target = sdk.Address(in.String())
		case "amount":
			v.Amount = in.Uint64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (v TransferArgs) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	out.RawString(`"to":`)
	out.String(v.To.String())
	out.RawString(`,"amount":`)
	out.Uint64(v.Amount)
	out.RawByte('}')
}

func (v *TransferArgs) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "to":
			v.To = sdk.Address(in.String())
		case "amount":
			v.Amount = in.Uint64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (v CreateProposalArgs) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	out.RawString(`"text":`)
	out.String(v.Text)
	out.RawString(`,"is_complaint":`)
	out.Bool(v.IsComplaint)
	out.RawString(`,"against":`)
	out.String(v.Against.String())
	out.RawString(`,"payout_to":`)
	out.String(v.PayoutTo.String())
	out.RawString(`,"payout_amount":`)
	out.Uint64(v.PayoutAmount)
	out.RawByte('}')
}

func (v *CreateProposalArgs) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "text":
			v.Text = in.String()
		case "is_complaint":
			v.IsComplaint = in.Bool()
		case "against":
			v.Against = sdk.Address(in.String())
		case "payout_to":
			v.PayoutTo = sdk.Address(in.String())
		case "payout_amount":
			v.PayoutAmount = in.Uint64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (v VoteArgs) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	out.RawString(`"proposal_id":`)
	out.Uint64(v.ProposalID)
	out.RawString(`,"approve":`)
	out.Bool(v.Approve)
	out.RawByte('}')
}

func (v *VoteArgs) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "proposal_id":
			v.ProposalID = in.Uint64()
		case "approve":
			v.Approve = in.Bool()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (v ProposalIDArgs) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	out.RawString(`"proposal_id":`)
	out.Uint64(v.ProposalID)
	out.RawByte('}')
}

func (v *ProposalIDArgs) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "proposal_id":
			v.ProposalID = in.Uint64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}

func (v AmountArgs) MarshalTinyJSON(out *jwriter.Writer) {
	out.RawByte('{')
	out.RawString(`"amount":`)
	out.Uint64(v.Amount)
	out.RawByte('}')
}

func (v *AmountArgs) UnmarshalTinyJSON(in *jlexer.Lexer) {
	if in.IsNull() {
		in.Skip()
		return
	}
	in.Delim('{')
	for !in.IsDelim('}') {
		key := in.UnsafeFieldName(false)
		in.WantColon()
		switch key {
		case "amount":
			v.Amount = in.Uint64()
		default:
			in.SkipRecursive()
		}
		in.WantComma()
	}
	in.Delim('}')
}
