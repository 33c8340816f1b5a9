package contract

// maintaining index lists so sets of entities can be enumerated

import (
	"strconv"

	"bonfire_dao/sdk"
)

// index key prefixes
const (
	// maxChunkSize splits indexes into chunks of X entries to avoid
	// overflowing the max size of a key/value in the contract state.
	maxChunkSize = 2500

	idxMembers         = "idx:members"      // all registered account addresses
	idxProposalsActive = "idx:props:open"   // proposals open for voting
	idxProposalsClosed = "idx:props:closed" // archived proposals
)

// chunkCounterKey stores number of chunks for a base index.
func chunkCounterKey(base string) string {
	return base + ":chunks"
}

func chunkKey(base string, chunk int) string {
	return base + ":" + strconv.Itoa(chunk)
}

// getChunkCount reads the number of chunks for an index.
func getChunkCount(baseKey string) int {
	ptr := sdk.StateGetObject(chunkCounterKey(baseKey))
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.Atoi(*ptr)
	return n
}

// setChunkCount stores the number of chunks.
func setChunkCount(baseKey string, n int) {
	sdk.StateSetObject(chunkCounterKey(baseKey), strconv.Itoa(n))
}

// addToIndex ensures the entry exists across all chunks (no duplicates).
func addToIndex(baseKey string, entry string) {
	chunks := getChunkCount(baseKey)
	for i := 0; i < chunks; i++ {
		key := chunkKey(baseKey, i)
		ptr := sdk.StateGetObject(key)
		if ptr == nil || *ptr == "" {
			continue
		}
		entries := decodeStringList(*ptr)
		for _, e := range entries {
			if e == entry {
				return // already present
			}
		}
		if len(entries) < maxChunkSize {
			entries = append(entries, entry)
			sdk.StateSetObject(key, encodeStringList(entries))
			return
		}
	}
	// all chunks full (or none exist): open a new one
	sdk.StateSetObject(chunkKey(baseKey, chunks), encodeStringList([]string{entry}))
	setChunkCount(baseKey, chunks+1)
}

// removeFromIndex drops the entry wherever it sits; trailing empty chunks stay
// around as cheap tombstones.
func removeFromIndex(baseKey string, entry string) {
	chunks := getChunkCount(baseKey)
	for i := 0; i < chunks; i++ {
		key := chunkKey(baseKey, i)
		ptr := sdk.StateGetObject(key)
		if ptr == nil || *ptr == "" {
			continue
		}
		entries := decodeStringList(*ptr)
		for n, e := range entries {
			if e == entry {
				entries = append(entries[:n], entries[n+1:]...)
				sdk.StateSetObject(key, encodeStringList(entries))
				return
			}
		}
	}
}

// listIndex flattens all chunks into one slice, preserving insertion order.
func listIndex(baseKey string) []string {
	chunks := getChunkCount(baseKey)
	out := []string{}
	for i := 0; i < chunks; i++ {
		ptr := sdk.StateGetObject(chunkKey(baseKey, i))
		if ptr == nil || *ptr == "" {
			continue
		}
		out = append(out, decodeStringList(*ptr)...)
	}
	return out
}

// indexContains short-circuits without flattening every chunk.
func indexContains(baseKey string, entry string) bool {
	chunks := getChunkCount(baseKey)
	for i := 0; i < chunks; i++ {
		ptr := sdk.StateGetObject(chunkKey(baseKey, i))
		if ptr == nil || *ptr == "" {
			continue
		}
		for _, e := range decodeStringList(*ptr) {
			if e == entry {
				return true
			}
		}
	}
	return false
}
