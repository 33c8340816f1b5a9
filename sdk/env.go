package sdk

// Sender identifies the authenticated account behind the current call.
type Sender struct {
	Address Address `json:"id"`
}

// Env is the execution environment snapshot the host exposes per call.
type Env struct {
	ContractId  string `json:"contract.id"`
	TxId        string `json:"tx.id"`
	BlockId     string `json:"block.id"`
	BlockHeight uint64 `json:"block.height"`
	Timestamp   string `json:"block.timestamp"`
	Sender      Sender `json:"msg.sender"`
}
