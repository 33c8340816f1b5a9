package contract

import "fmt"

// ContractError is a user-facing validation failure. Every error carries a
// short stable symbol that the export layer hands to sdk.Revert so callers
// can match failures without parsing messages.
type ContractError struct {
	symbol  string
	message string
}

func (e *ContractError) Error() string {
	return e.message
}

// Symbol returns the machine-readable revert code.
func (e *ContractError) Symbol() string {
	return e.symbol
}

// withDetail clones the error with extra context while keeping the symbol.
func (e *ContractError) withDetail(format string, args ...interface{}) *ContractError {
	return &ContractError{
		symbol:  e.symbol,
		message: e.message + ": " + fmt.Sprintf(format, args...),
	}
}

// Is matches wrapped details back to their base sentinel.
func (e *ContractError) Is(target error) bool {
	ce, ok := target.(*ContractError)
	return ok && ce.symbol == e.symbol
}

var (
	ErrNotRegistered       = &ContractError{"not_registered", "account is not registered"}
	ErrAlreadyRegistered   = &ContractError{"already_registered", "account is already registered"}
	ErrNotActive           = &ContractError{"not_active", "account has fewer than two sponsors"}
	ErrSelfSponsorship     = &ContractError{"self_sponsorship", "an account cannot sponsor itself"}
	ErrInsufficientFunds   = &ContractError{"insufficient_funds", "spendable balance too low"}
	ErrInsufficientLocked  = &ContractError{"insufficient_locked", "withdrawal exceeds locked amount"}
	ErrNoSuchEdge          = &ContractError{"no_such_edge", "no sponsorship between these accounts"}
	ErrNotOwner            = &ContractError{"not_owner", "caller is not the owner"}
	ErrNotAdmin            = &ContractError{"not_admin", "caller is not an administrator"}
	ErrAlreadyAdmin        = &ContractError{"already_admin", "account is already an administrator"}
	ErrCannotRemoveLastAdmin = &ContractError{"last_admin", "cannot remove the last administrator"}
	ErrUnknownProposal     = &ContractError{"unknown_proposal", "proposal does not exist"}
	ErrProposalClosed      = &ContractError{"proposal_closed", "proposal is already closed"}
	ErrAlreadyVoted        = &ContractError{"already_voted", "account has already voted on this proposal"}
	ErrInvalidTarget       = &ContractError{"invalid_target", "complaint target is invalid"}
	ErrTooEarly            = &ContractError{"too_early", "proposal cannot be closed yet"}
	ErrInsufficientReserve = &ContractError{"insufficient_reserve", "redemption exceeds curve supply"}
	ErrAlreadyInitialized  = &ContractError{"already_initialized", "contract is already initialized"}
	ErrNotInitialized      = &ContractError{"not_initialized", "contract is not initialized"}
	ErrNameTaken           = &ContractError{"name_taken", "local dao name is already taken"}
	ErrInvalidArgument     = &ContractError{"invalid_argument", "invalid argument"}
)
