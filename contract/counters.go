package contract

import (
	"strconv"

	"bonfire_dao/sdk"
)

// Counter keys for generating monotonic ids.
const (
	// ProposalsCount holds the next proposal id. Ids are never reused.
	ProposalsCount = "count:props"
)

// getCount reads the string counter under the key and defaults to zero, nothing magical here.
func getCount(key string) uint64 {
	ptr := sdk.StateGetObject(key)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

// setCount stores uint64 counters back as decimal strings for the host kv.
func setCount(key string, n uint64) {
	sdk.StateSetObject(key, strconv.FormatUint(n, 10))
}

// nextProposalID hands out the next id and bumps the counter. Ids start at 1
// so zero always means "no proposal".
func nextProposalID() uint64 {
	n := getCount(ProposalsCount) + 1
	setCount(ProposalsCount, n)
	return n
}

// UInt64ToString turns an id back into decimal text for logs or responses.
// Example payload: UInt64ToString(9001)
func UInt64ToString(val uint64) string {
	return strconv.FormatUint(val, 10)
}
