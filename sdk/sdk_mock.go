//go:build !wasm

package sdk

import "fmt"

// MockHost emulates the host environment for tests and the local runner.
// It backs the same package API the wasm build exposes, so contract code
// never knows whether a real chain or this map is behind it.
type MockHost struct {
	State       map[string]string
	Sender      Address
	Timestamp   string
	TxId        string
	BlockId     string
	BlockHeight uint64
	Logs        []string
}

var mockHost = newMockHost()

func newMockHost() *MockHost {
	return &MockHost{
		State:     map[string]string{},
		Sender:    "hive:mock_sender",
		Timestamp: "2025-01-01T00:00:00",
		TxId:      "mock-tx-0",
		BlockId:   "mock-block-0",
	}
}

// Mock exposes the singleton host so tests can steer sender, clock and state.
func Mock() *MockHost {
	return mockHost
}

// Reset drops all state and logs, used between test cases.
func (h *MockHost) Reset() {
	*h = *newMockHost()
}

// HostError is the panic value raised by Abort/Revert on the mock host.
// Test harnesses recover it to assert failure symbols.
type HostError struct {
	Aborted bool
	Symbol  string
	Message string
}

func (e HostError) Error() string {
	if e.Aborted {
		return "abort: " + e.Message
	}
	return fmt.Sprintf("revert(%s): %s", e.Symbol, e.Message)
}

// Log records the line so tests can assert emitted events.
func Log(s string) {
	mockHost.Logs = append(mockHost.Logs, s)
}

// Abort mirrors the wasm host abort: unconditional halt.
func Abort(msg string) {
	panic(HostError{Aborted: true, Message: msg})
}

// Revert mirrors the wasm host revert with a short machine-readable symbol.
func Revert(msg string, symbol string) {
	panic(HostError{Symbol: symbol, Message: msg})
}

// StateSetObject stores a key/value string pair into the mock kv map.
func StateSetObject(key string, value string) {
	mockHost.State[key] = value
}

// StateGetObject fetches a key and returns nil when missing.
func StateGetObject(key string) *string {
	val, ok := mockHost.State[key]
	if !ok {
		return nil
	}
	return &val
}

// StateDeleteObject removes the key entirely.
func StateDeleteObject(key string) {
	delete(mockHost.State, key)
}

// GetEnv assembles an Env snapshot from the mock host fields.
func GetEnv() Env {
	return Env{
		ContractId:  "bonfire-mock",
		TxId:        mockHost.TxId,
		BlockId:     mockHost.BlockId,
		BlockHeight: mockHost.BlockHeight,
		Timestamp:   mockHost.Timestamp,
		Sender:      Sender{Address: mockHost.Sender},
	}
}

// GetEnvKey resolves single env keys the same way the host does.
func GetEnvKey(key string) *string {
	var val string
	switch key {
	case "contract.id":
		val = "bonfire-mock"
	case "tx.id":
		val = mockHost.TxId
	case "block.id":
		val = mockHost.BlockId
	case "block.timestamp":
		val = mockHost.Timestamp
	default:
		return nil
	}
	return &val
}
