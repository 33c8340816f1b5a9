package contract

import "bonfire_dao/sdk"

const (
	// kAccount stores encoded Account blobs keyed by address.
	kAccount byte = 0x01
	// kLocalInstance stores LocalInstance records keyed by name.
	kLocalInstance byte = 0x02
	// kProposal contains encoded Proposal records keyed by id.
	kProposal byte = 0x10
	// kVoteReceipt stores one VoteReceipt per (proposal, voter).
	kVoteReceipt byte = 0x20
)

// Singleton state keys.
const (
	// ContractConfigKey holds the global DAO record (owner, admins, params).
	ContractConfigKey = "cfg"
	// TokenPoolsKey holds the curve position and pool aggregates.
	TokenPoolsKey = "pools"
)

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// packU64LE appends the encoded number to dst and returns the new slice.
func packU64LE(x uint64, dst []byte) []byte {
	return append(dst,
		byte(x),
		byte(x>>8),
		byte(x>>16),
		byte(x>>24),
		byte(x>>32),
		byte(x>>40),
		byte(x>>48),
		byte(x>>56),
	)
}

// accountKey mixes the prefix with raw address bytes, no nested maps in host storage.
func accountKey(addr sdk.Address) string {
	addrStr := addr.String()
	buf := make([]byte, 0, 1+len(addrStr))
	buf = append(buf, kAccount)
	buf = append(buf, addrStr...)
	return string(buf)
}

// localInstanceKey keys local dao records by their unique name.
func localInstanceKey(name string) string {
	buf := make([]byte, 0, 1+len(name))
	buf = append(buf, kLocalInstance)
	buf = append(buf, name...)
	return string(buf)
}

// proposalKey encodes the id under the 0x10 prefix keeping proposal blobs contiguous.
func proposalKey(id uint64) string {
	var buf [9]byte
	buf[0] = kProposal
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// voteReceiptKey appends the voter address behind the proposal id so receipts
// for one proposal share a range.
func voteReceiptKey(id uint64, voter sdk.Address) string {
	addr := voter.String()
	buf := make([]byte, 0, 1+8+len(addr))
	buf = append(buf, kVoteReceipt)
	buf = packU64LE(id, buf)
	buf = append(buf, addr...)
	return string(buf)
}
