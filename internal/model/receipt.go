package model

// Receipt is the transaction receipt view passed through to the receipt
// formatter after a staking transaction. The renderer treats it as an
// opaque record; field semantics follow the Ethereum receipt shape.
type Receipt struct {
	// TxHash is the transaction hash in 0x-prefixed hex.
	TxHash string `json:"tx_hash" yaml:"tx_hash"`

	// Successful reports whether the transaction succeeded (status 1).
	Successful bool `json:"successful" yaml:"successful"`

	// BlockNumber is the block the transaction was mined in.
	BlockNumber uint64 `json:"block_number" yaml:"block_number"`

	// BlockHash is the mined block's hash in 0x-prefixed hex.
	BlockHash string `json:"block_hash" yaml:"block_hash"`

	// GasUsed is the gas consumed by the transaction.
	GasUsed uint64 `json:"gas_used" yaml:"gas_used"`

	// From is the sending address.
	From string `json:"from" yaml:"from"`

	// To is the receiving contract address.
	To string `json:"to" yaml:"to"`
}
