package domain

import "fmt"

var (
	ErrTxNotFound     = fmt.Errorf("transaction %w", ErrNotFound)
	ErrOutputNotFound = fmt.Errorf("transaction output %w", ErrNotFound)
)

// Tx is the full metadata record the explorer keeps for a transaction.
type Tx struct {
	Txid     string   `json:"txid"`
	Version  int32    `json:"version"`
	Locktime uint32   `json:"locktime"`
	Vin      []TxVin  `json:"vin"`
	Vout     []TxVout `json:"vout"`
	Size     uint64   `json:"size"`
	Weight   uint64   `json:"weight"`
	Fee      uint64   `json:"fee"`
	Status   TxStatus `json:"status"`
}

type TxVin struct {
	Txid       string   `json:"txid"`
	Vout       uint32   `json:"vout"`
	Prevout    *TxVout  `json:"prevout"`
	ScriptSig  string   `json:"scriptsig"`
	Witness    []string `json:"witness,omitempty"`
	Sequence   uint32   `json:"sequence"`
	IsCoinbase bool     `json:"is_coinbase"`
}

type TxVout struct {
	ScriptPubkey        string `json:"scriptpubkey"`
	ScriptPubkeyType    string `json:"scriptpubkey_type"`
	ScriptPubkeyAddress string `json:"scriptpubkey_address,omitempty"`
	Value               uint64 `json:"value"`
}

// TxStatus tells whether a transaction is confirmed and, if so, in which
// block.
type TxStatus struct {
	Confirmed   bool   `json:"confirmed"`
	BlockHeight uint32 `json:"block_height,omitempty"`
	BlockHash   string `json:"block_hash,omitempty"`
	BlockTime   int64  `json:"block_time,omitempty"`
}

// OutputStatus tells whether a transaction output has been spent and by
// which input.
type OutputStatus struct {
	Spent  bool      `json:"spent"`
	Txid   string    `json:"txid,omitempty"`
	Vin    uint32    `json:"vin,omitempty"`
	Status *TxStatus `json:"status,omitempty"`
}

// MerkleProof proves the inclusion of a transaction in a block.
type MerkleProof struct {
	BlockHeight uint32   `json:"block_height"`
	Merkle      []string `json:"merkle"`
	Pos         uint32   `json:"pos"`
}
