package contract

import (
	"fmt"
	"strconv"

	"bonfire_dao/sdk"
)

// Short pipe-delimited event lines so indexers can replay governance state
// from logs without scanning storage diffs.

// emitDeployed marks the one-time global bootstrap.
func emitDeployed(owner sdk.Address) {
	sdk.Log(fmt.Sprintf("in|by:%s", owner))
}

// emitLocalDeployed records a claimed local dao name.
func emitLocalDeployed(owner sdk.Address, name string) {
	sdk.Log(fmt.Sprintf("dl|n:%s|by:%s", name, owner))
}

// emitCredentialsDropped signals the owner renounced to plain admin.
func emitCredentialsDropped(owner sdk.Address) {
	sdk.Log(fmt.Sprintf("dc|by:%s", owner))
}

// emitRegistered pings watchers that a fresh account joined the registry.
func emitRegistered(addr sdk.Address) {
	sdk.Log(fmt.Sprintf("ur|by:%s", addr))
}

func emitAdminAdded(caller sdk.Address, target sdk.Address) {
	sdk.Log(fmt.Sprintf("aa|t:%s|by:%s", target, caller))
}

func emitAdminRemoved(caller sdk.Address, target sdk.Address) {
	sdk.Log(fmt.Sprintf("ar|t:%s|by:%s", target, caller))
}

// emitSponsored carries the lock amount so trust edges can be replayed.
func emitSponsored(sponsor sdk.Address, target sdk.Address, amount uint64) {
	sdk.Log(fmt.Sprintf("sp|t:%s|by:%s|am:%d", target, sponsor, amount))
}

func emitWithdrawn(sponsor sdk.Address, target sdk.Address, amount uint64) {
	sdk.Log(fmt.Sprintf("wd|t:%s|by:%s|am:%d", target, sponsor, amount))
}

func emitTransfer(from sdk.Address, to sdk.Address, amount uint64) {
	sdk.Log(fmt.Sprintf("tx|to:%s|by:%s|am:%d", to, from, amount))
}

// emitProposalCreated flags complaints with a single char.
func emitProposalCreated(id uint64, author sdk.Address, isComplaint bool) {
	kind := "p"
	if isComplaint {
		kind = "c"
	}
	sdk.Log(fmt.Sprintf("pc|id:%d|by:%s|k:%s", id, author, kind))
}

func emitVoteCast(id uint64, voter sdk.Address, approve bool) {
	sdk.Log(fmt.Sprintf("v|id:%d|by:%s|a:%s", id, voter, strconv.FormatBool(approve)))
}

func emitProposalClosed(id uint64, passed bool) {
	sdk.Log(fmt.Sprintf("px|id:%d|r:%s", id, strconv.FormatBool(passed)))
}

// emitComplaintUpheld leaves a trace when an account loses its sponsorships.
func emitComplaintUpheld(id uint64, target sdk.Address) {
	sdk.Log(fmt.Sprintf("cu|id:%d|t:%s", id, target))
}

func emitPayout(id uint64, to sdk.Address, amount uint64) {
	sdk.Log(fmt.Sprintf("po|id:%d|to:%s|am:%d", id, to, amount))
}

func emitMinted(caller sdk.Address, amountIn uint64, tokensOut uint64) {
	sdk.Log(fmt.Sprintf("mt|by:%s|in:%d|out:%d", caller, amountIn, tokensOut))
}

func emitBurned(caller sdk.Address, tokensIn uint64, amountOut uint64) {
	sdk.Log(fmt.Sprintf("bn|by:%s|in:%d|out:%d", caller, tokensIn, amountOut))
}
